package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is one side of the cube. It owns a 2-D physics world and every mover
// and solid currently placed on it.
type Face struct {
	Name   string
	Normal mgl64.Vec3
	Up     mgl64.Vec3
	// Offset rotates the face's coordinates relative to the canonical
	// projection so that Up lands on screen north.
	Offset Direction
	// Size is the side length of the face in physics units.
	Size float64

	neighbors [4]*Face
	edges     [4]mgl64.Vec3
	toLocal   mgl64.Mat3
	toCube    mgl64.Mat3

	world  World
	movers []*Mover
	solids []Solid
}

// World returns the face's physics world.
func (f *Face) World() World {
	return f.world
}

// AdjacentFace returns the neighbor across edge d.
func (f *Face) AdjacentFace(d Direction) *Face {
	n := f.neighbors[d%4]
	if n == nil {
		panic(fmt.Sprintf("cube: face %s has no %s neighbor", f.Name, d))
	}
	return n
}

// DirectionTo reports which edge of f borders target.
func (f *Face) DirectionTo(target *Face) (Direction, bool) {
	for _, d := range Directions {
		if f.neighbors[d] == target {
			return d, true
		}
	}
	return North, false
}

// BackwardsDirectionFrom returns the edge of f that leads back to src.
func (f *Face) BackwardsDirectionFrom(src *Face) Direction {
	d, ok := f.DirectionTo(src)
	if !ok {
		panic(fmt.Sprintf("cube: face %s is not adjacent to %s", f.Name, src.Name))
	}
	return d
}

// FaceAdjacency returns the edge of source that borders target.
func FaceAdjacency(source, target *Face) (Direction, bool) {
	if source == nil || target == nil {
		return North, false
	}
	return source.DirectionTo(target)
}

// DirectionVector is the 3-D unit vector pointing toward edge d.
func (f *Face) DirectionVector(d Direction) mgl64.Vec3 {
	return f.edges[d%4]
}

// VectorToDirection maps an in-plane axis vector to a compass direction by
// stepping Up clockwise around the normal.
func (f *Face) VectorToDirection(v mgl64.Vec3) (Direction, bool) {
	want := roundVec(v)
	for _, d := range Directions {
		if roundVec(f.edges[d]) == want {
			return d, true
		}
	}
	return North, false
}

// AddSolid places static geometry on the face.
func (f *Face) AddSolid(s Solid) {
	if s == nil {
		return
	}
	f.solids = append(f.solids, s)
}

// Solids returns the static geometry on the face.
func (f *Face) Solids() []Solid {
	return f.solids
}

// ClearSolids removes every solid from the face and its world.
func (f *Face) ClearSolids() {
	for _, s := range f.solids {
		s.Remove()
	}
	f.solids = nil
}

// Movers returns the movers currently owned by the face.
func (f *Face) Movers() []*Mover {
	return f.movers
}

func (f *Face) attach(m *Mover) {
	f.movers = append(f.movers, m)
}

func (f *Face) detach(m *Mover) {
	for i, other := range f.movers {
		if other == m {
			copy(f.movers[i:], f.movers[i+1:])
			f.movers[len(f.movers)-1] = nil
			f.movers = f.movers[:len(f.movers)-1]
			return
		}
	}
}

func (f *Face) String() string {
	if f == nil {
		return "<nil>"
	}
	return f.Name
}
