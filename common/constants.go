package common

const (
	TPS = 60
	// Dt is the fixed physics step.
	Dt = 1.0 / TPS

	ScreenWidth  = 640
	ScreenHeight = 640
)
