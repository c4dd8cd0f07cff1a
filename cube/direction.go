package cube

import (
	"fmt"
	"math"
	"strings"
)

// Direction is a compass direction on a face. Values form the cyclic group
// Z4 ordered clockwise as seen from outside the cube.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions in clockwise order.
var Directions = [4]Direction{North, East, South, West}

func mod4(n int) Direction {
	return Direction(((n % 4) + 4) % 4)
}

// Invert returns the opposite direction.
func (d Direction) Invert() Direction {
	return d.Rotate(2)
}

// CW returns the direction one quarter turn clockwise.
func (d Direction) CW() Direction {
	return d.Rotate(1)
}

// CCW returns the direction one quarter turn counter-clockwise.
func (d Direction) CCW() Direction {
	return d.Rotate(-1)
}

// Rotate turns d by steps quarter turns; positive is clockwise.
func (d Direction) Rotate(steps int) Direction {
	return mod4(int(d) + steps)
}

// Sub returns (d - o) mod 4, the number of clockwise quarter turns from o to d.
func (d Direction) Sub(o Direction) Direction {
	return mod4(int(d) - int(o))
}

// Angle is the clockwise screen-space angle of d measured from North.
func (d Direction) Angle() float64 {
	return float64(d%4) * math.Pi / 2
}

// Turn returns the rotation d represents as a signed angle in (-pi, pi].
func (d Direction) Turn() float64 {
	if d%4 == West {
		return -math.Pi / 2
	}
	return d.Angle()
}

// Vector is the unit vector for d in y-down physics space.
func (d Direction) Vector() Vec2 {
	switch d % 4 {
	case North:
		return Vec2{X: 0, Y: -1}
	case East:
		return Vec2{X: 1, Y: 0}
	case South:
		return Vec2{X: 0, Y: 1}
	default:
		return Vec2{X: -1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d % 4 {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// ParseDirection accepts full names or single letters, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return North, fmt.Errorf("cube: unknown direction %q", s)
}
