package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
)

// Object is anything placed on the cube that the simulation ticks.
type Object interface {
	ID() uuid.UUID
	Kind() string
	Mover() *cube.Mover
	Update(tick int)
	Alive() bool
	Destroy()
}

// base is the state every object shares: an identity and the mover that
// carries its body over the cube.
type base struct {
	id    uuid.UUID
	mover *cube.Mover
}

func newBase(face *cube.Face, body *physics.Body, pos mgl64.Vec3, up cube.Direction) base {
	return base{
		id:    uuid.New(),
		mover: cube.NewMover(face, body, OnFace(face, pos), up),
	}
}

func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Mover() *cube.Mover { return b.mover }

func (b *base) Alive() bool { return b.mover.Alive() }

func (b *base) Destroy() { b.mover.Destroy() }

// Body returns the physics body currently carrying the object.
func (b *base) Body() *physics.Body {
	return b.mover.Body().(*physics.Body)
}

// OnFace pins the coordinate along face's normal so pos lies on its plane.
func OnFace(face *cube.Face, pos mgl64.Vec3) mgl64.Vec3 {
	for i, c := range face.Normal {
		if r := math.Round(c); r != 0 {
			pos[i] = r
			break
		}
	}
	return pos
}
