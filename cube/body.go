package cube

// World is one face's independent 2-D physics simulation.
type World interface {
	Step(dt float64)
	SetGravity(g Vec2)
}

// Body is the part of a 2-D rigid body the transition protocol touches.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
	Angle() float64
	SetAngle(a float64)
	Velocity() Vec2
	SetVelocity(v Vec2)
	Mass() float64
	SetMass(m float64)

	// CloneInto copies shape and dynamic state into w. The receiver stays
	// in its own world until Remove is called.
	CloneInto(w World) Body
	Remove()
}

// Solid is static geometry placed on a face by a level loader.
type Solid interface {
	Remove()
}
