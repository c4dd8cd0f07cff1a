package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	assert.InDelta(t, math.Pi/4, LerpAngle(0, math.Pi/2, 0.5), 1e-12)
	// From just below 2π to just above 0 should pass through 2π, not π.
	got := LerpAngle(2*math.Pi-0.2, 0.2, 0.5)
	assert.InDelta(t, 2*math.Pi, got, 1e-12)
	assert.InDelta(t, -math.Pi/4, LerpAngle(0, -math.Pi/2, 0.5), 1e-12)
}
