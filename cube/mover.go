package cube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mover is a body that travels over the cube surface: an actor, a
// projectile or a dynamic solid.
type Mover struct {
	body         Body
	face         *Face
	cubePosition mgl64.Vec3
	up           Direction

	// OnTransition runs after the mover has been moved onto a new face.
	OnTransition func(m *Mover, from *Face, dir Direction)
}

// NewMover places body on face at cube-local position pos with the given
// up-direction. body must already live in face.World().
func NewMover(face *Face, body Body, pos mgl64.Vec3, up Direction) *Mover {
	m := &Mover{
		body:         body,
		face:         face,
		cubePosition: clampCube(pos),
		up:           up,
	}
	body.SetPosition(face.ToFaceLocal2D(m.cubePosition))
	body.SetAngle(up.Angle())
	face.attach(m)
	return m
}

func (m *Mover) Body() Body { return m.body }

func (m *Mover) Face() *Face { return m.face }

func (m *Mover) CubePosition() mgl64.Vec3 { return m.cubePosition }

func (m *Mover) Up() Direction { return m.up }

// Destroy removes the mover's body from its world and the mover from its
// face.
func (m *Mover) Destroy() {
	if m.face == nil {
		return
	}
	m.body.Remove()
	m.face.detach(m)
	m.face = nil
}

// Alive reports whether the mover is still placed on a face.
func (m *Mover) Alive() bool {
	return m.face != nil
}

// Sync refreshes the cached cube position from the body after a physics
// step and moves the body onto neighboring faces for every axis that left
// the cube. A diagonal overflow produces two crossings.
func (m *Mover) Sync() []Crossing {
	if m.face == nil {
		return nil
	}
	p := m.face.ToCube3D(m.body.Position())

	var crossings []Crossing
	for axis := 0; axis < 3; axis++ {
		c := p[axis]
		if c >= -1 && c <= 1 {
			continue
		}
		sign := 1.0
		if c < 0 {
			sign = -1
		}
		excess := sign*c - 1
		p[axis] = sign
		// Fold the overshoot down the neighbor's plane.
		n := m.face.Normal
		p = p.Sub(n.Mul(excess))
		if k := axisOf(n); p[k] < -1 || p[k] > 1 {
			p[k] = mgl64.Clamp(p[k], -1, 1)
		}

		var edge mgl64.Vec3
		edge[axis] = sign
		dir, ok := m.face.VectorToDirection(edge)
		if !ok {
			panic(fmt.Sprintf("cube: axis %d does not lie in face %s", axis, m.face.Name))
		}
		m.cubePosition = p
		from := m.face
		m.applyRotation(dir)
		crossings = append(crossings, Crossing{Mover: m, From: from, To: m.face, Direction: dir})
	}
	m.cubePosition = p
	return crossings
}

// applyRotation moves the body across edge dir of the current face.
func (m *Mover) applyRotation(dir Direction) {
	from := m.face
	next := from.AdjacentFace(dir)
	back := next.BackwardsDirectionFrom(from)

	angle := m.body.Angle()
	vel := m.body.Velocity()
	mass := m.body.Mass()

	clone := m.body.CloneInto(next.World())
	clone.SetMass(mass)
	m.body.Remove()
	m.body = clone

	newUp := NextUp(m.up, dir, back)
	turn := newUp.Sub(m.up)
	m.up = newUp

	m.body.SetAngle(angle + turn.Turn())
	m.body.SetPosition(next.ToFaceLocal2D(m.cubePosition))
	m.body.SetVelocity(vel.RotateQuarter(turn))

	from.detach(m)
	next.attach(m)
	m.face = next

	if m.OnTransition != nil {
		m.OnTransition(m, from, dir)
	}
}

// NextUp is the up-direction a body has after crossing edge dir onto a face
// whose edge back leads to the face just left. delta is the crossing
// direction measured from the body's up. Its sign follows the clockwise
// numbering of directions, which makes it dir-up and not up-dir.
func NextUp(up, dir, back Direction) Direction {
	delta := dir.Sub(up)
	return back.Rotate(2 - int(delta))
}

func clampCube(p mgl64.Vec3) mgl64.Vec3 {
	for i := range p {
		p[i] = mgl64.Clamp(p[i], -1, 1)
	}
	return p
}

// axisOf returns the index of the dominant component of an axis vector.
func axisOf(v mgl64.Vec3) int {
	idx := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v[i]) > math.Abs(v[idx]) {
			idx = i
		}
	}
	return idx
}
