package cube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a point or vector in a face's 2-D physics space (y grows down).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// RotateQuarter turns v by d quarter turns clockwise on screen. The result
// is exact; no trigonometry is involved.
func (v Vec2) RotateQuarter(d Direction) Vec2 {
	switch d % 4 {
	case East:
		return Vec2{-v.Y, v.X}
	case South:
		return Vec2{-v.X, -v.Y}
	case West:
		return Vec2{v.Y, -v.X}
	default:
		return v
	}
}

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// roundVec snaps every component to the nearest integer. Axis vectors that
// went through a rotation come back exact.
func roundVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(v[0]), math.Round(v[1]), math.Round(v[2])}
}

// quarterTurn is the rotation by steps right-handed quarter turns around
// the unit axis. Negative steps turn clockwise when looking down the axis.
func quarterTurn(axis mgl64.Vec3, steps int) mgl64.Mat3 {
	k := ((steps % 4) + 4) % 4
	return snapMat(mgl64.QuatRotate(float64(k)*math.Pi/2, axis).Mat4().Mat3())
}

// canonicalRotation takes the unit normal n onto +Z along the shortest arc.
func canonicalRotation(n mgl64.Vec3) mgl64.Mat3 {
	return snapMat(mgl64.QuatBetweenVectors(n, AxisZ).Mat4().Mat3())
}

// snapMat rounds entries within 1e-12 of an integer, so axis-aligned
// rotations become exact permutation matrices.
func snapMat(m mgl64.Mat3) mgl64.Mat3 {
	for i, v := range m {
		if r := math.Round(v); math.Abs(v-r) < 1e-12 {
			m[i] = r
		}
	}
	return m
}
