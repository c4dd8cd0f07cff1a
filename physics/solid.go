package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cubescroller/cube"
)

// Solid is a static box fixed to one face. It implements cube.Solid.
type Solid struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
}

var _ cube.Solid = (*Solid)(nil)

// AddSolid places a static box whose top-left corner is (x, y).
func (w *World) AddSolid(x, y, width, height, friction float64) *Solid {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: x + width/2, Y: y + height/2})
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)

	return &Solid{world: w, body: body, shape: shape}
}

// Bounds returns the solid's top-left corner and size.
func (s *Solid) Bounds() (x, y, width, height float64) {
	bb := s.shape.BB()
	return bb.L, bb.B, bb.R - bb.L, bb.T - bb.B
}

// Remove takes the solid out of its space.
func (s *Solid) Remove() {
	if s.world == nil {
		return
	}
	s.world.space.RemoveShape(s.shape)
	s.world.space.RemoveBody(s.body)
	s.world = nil
}
