package obj

import (
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
)

// Crate is a loose box. It has no behavior of its own but is pushed,
// tumbles and crosses edges under physics.
type Crate struct {
	base
}

func NewCrate(face *cube.Face, spec prefabs.CrateSpec) *Crate {
	size := spec.Size
	if size <= 0 {
		size = 24
	}
	body := physics.WorldOf(face).AddBody(physics.BodySpec{
		Width:    size,
		Height:   size,
		Mass:     spec.Mass,
		Friction: spec.Friction,
	}, cube.Vec2{}, 0)
	return &Crate{base: newBase(face, body, spec.Position.Vec3(), spec.Up.Direction)}
}

func (c *Crate) Kind() string { return "crate" }

func (c *Crate) Update(tick int) {}
