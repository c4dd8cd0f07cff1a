package cube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionClosure(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, d.Invert().Invert())
			assert.Equal(t, d, d.CCW().CW())
			assert.Equal(t, d, d.CW().CCW())
			assert.Equal(t, d, d.CW().CW().CW().CW())
			assert.Equal(t, d.Invert(), d.CW().CW())
			assert.Equal(t, d.CCW(), d.Rotate(-1))
			assert.Equal(t, d.CCW(), d.Rotate(3))
			assert.Equal(t, North, d.Sub(d))
		})
	}
}

func TestDirectionValues(t *testing.T) {
	assert.Equal(t, East, North.CW())
	assert.Equal(t, West, North.CCW())
	assert.Equal(t, South, North.Invert())
	assert.Equal(t, West, East.Invert())
	assert.Equal(t, West, North.Sub(East))
	assert.Equal(t, East, North.Sub(West))
}

func TestDirectionVectorMatchesAngle(t *testing.T) {
	for _, d := range Directions {
		v := d.Vector()
		// Rotating screen north clockwise by Angle lands on the direction.
		s, c := math.Sincos(d.Angle())
		got := Vec2{X: 0*c - (-1)*s, Y: 0*s + (-1)*c}
		assert.InDelta(t, v.X, got.X, 1e-12, d.String())
		assert.InDelta(t, v.Y, got.Y, 1e-12, d.String())

		assert.Equal(t, d.Vector(), North.Vector().RotateQuarter(d))
	}
}

func TestDirectionTurn(t *testing.T) {
	assert.Equal(t, 0.0, North.Turn())
	assert.Equal(t, math.Pi/2, East.Turn())
	assert.Equal(t, math.Pi, South.Turn())
	assert.Equal(t, -math.Pi/2, West.Turn())
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
	}{
		{"north", North},
		{"E", East},
		{" south ", South},
		{"w", West},
		{"", North},
	}
	for _, c := range cases {
		got, err := ParseDirection(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseDirection("up")
	assert.Error(t, err)
}
