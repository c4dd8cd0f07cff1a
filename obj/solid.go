package obj

import (
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
)

// PlaceSolids adds a face's static boxes to its world and registers them
// with the face so they can be cleared on reload.
func PlaceSolids(face *cube.Face, specs []prefabs.SolidSpec) {
	w := physics.WorldOf(face)
	for _, s := range specs {
		face.AddSolid(w.AddSolid(s.X, s.Y, s.W, s.H, s.Friction))
	}
}
