package cube

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrBadFace         = errors.New("cube: malformed face")
	ErrMissingNeighbor = errors.New("cube: missing neighbor")
	ErrAsymmetric      = errors.New("cube: asymmetric adjacency")
)

// FaceSpec describes one face before it is wired into a cube.
type FaceSpec struct {
	Name   string
	Normal mgl64.Vec3
	Up     mgl64.Vec3
}

// Layout is the full set of six faces.
type Layout [6]FaceSpec

// DefaultLayout unfolds as a cross: top above front, bottom below, with the
// four side faces sharing the world +Y as north.
func DefaultLayout() Layout {
	return Layout{
		{Name: "front", Normal: mgl64.Vec3{0, 0, 1}, Up: mgl64.Vec3{0, 1, 0}},
		{Name: "right", Normal: mgl64.Vec3{1, 0, 0}, Up: mgl64.Vec3{0, 1, 0}},
		{Name: "back", Normal: mgl64.Vec3{0, 0, -1}, Up: mgl64.Vec3{0, 1, 0}},
		{Name: "left", Normal: mgl64.Vec3{-1, 0, 0}, Up: mgl64.Vec3{0, 1, 0}},
		{Name: "top", Normal: mgl64.Vec3{0, 1, 0}, Up: mgl64.Vec3{0, 0, -1}},
		{Name: "bottom", Normal: mgl64.Vec3{0, -1, 0}, Up: mgl64.Vec3{0, 0, 1}},
	}
}

// Crossing records one body moving from one face to another.
type Crossing struct {
	Mover     *Mover
	From      *Face
	To        *Face
	Direction Direction
}

// Cube is the six faces and their adjacency graph.
type Cube struct {
	faces [6]*Face
}

// NewCube builds faces from layout, derives each face's orientation and
// neighbor table from its normal, and validates the graph. newWorld is
// called once per face after its geometry is fixed.
func NewCube(layout Layout, size float64, newWorld func(f *Face) World) (*Cube, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: face size %v", ErrBadFace, size)
	}
	c := &Cube{}
	for i, spec := range layout {
		f := &Face{
			Name:   spec.Name,
			Normal: spec.Normal,
			Up:     spec.Up,
			Size:   size,
		}
		if math.Abs(f.Normal.Len()-1) > 1e-9 || math.Abs(f.Up.Len()-1) > 1e-9 || math.Abs(f.Normal.Dot(f.Up)) > 1e-9 {
			return nil, fmt.Errorf("%w: %s normal %v up %v", ErrBadFace, f.Name, f.Normal, f.Up)
		}
		if !f.orient() {
			return nil, fmt.Errorf("%w: %s up %v is not an axis", ErrBadFace, f.Name, f.Up)
		}
		c.faces[i] = f
	}

	for _, f := range c.faces {
		for _, d := range Directions {
			f.neighbors[d] = c.faceWithNormal(roundVec(f.DirectionVector(d)))
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if newWorld != nil {
		for _, f := range c.faces {
			f.world = newWorld(f)
		}
	}
	return c, nil
}

func (c *Cube) faceWithNormal(n mgl64.Vec3) *Face {
	for _, f := range c.faces {
		if roundVec(f.Normal) == n {
			return f
		}
	}
	return nil
}

// Validate checks that every face has four neighbors and that every edge
// can be walked back.
func (c *Cube) Validate() error {
	for _, f := range c.faces {
		if f == nil {
			return fmt.Errorf("%w: nil face", ErrBadFace)
		}
		for _, d := range Directions {
			n := f.neighbors[d]
			if n == nil {
				return fmt.Errorf("%w: %s has no %s neighbor", ErrMissingNeighbor, f.Name, d)
			}
			if n == f {
				return fmt.Errorf("%w: %s borders itself to the %s", ErrBadFace, f.Name, d)
			}
			back, ok := n.DirectionTo(f)
			if !ok || n.neighbors[back] != f {
				return fmt.Errorf("%w: %s -> %s (%s) has no way back", ErrAsymmetric, f.Name, n.Name, d)
			}
		}
	}
	return nil
}

// Faces returns the six faces in layout order.
func (c *Cube) Faces() []*Face {
	return c.faces[:]
}

// Face looks a face up by name.
func (c *Cube) Face(name string) (*Face, bool) {
	for _, f := range c.faces {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Step advances every face world, then runs the transition protocol for
// every mover. Worlds are all stepped before any mover is re-parented, so
// no body is integrated twice or skipped within a tick.
func (c *Cube) Step(dt float64) []Crossing {
	for _, f := range c.faces {
		if f.world != nil {
			f.world.Step(dt)
		}
	}

	var pending []*Mover
	for _, f := range c.faces {
		pending = append(pending, f.movers...)
	}

	var crossings []Crossing
	for _, m := range pending {
		crossings = append(crossings, m.Sync()...)
	}
	return crossings
}
