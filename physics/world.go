package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cubescroller/cube"
	"go.uber.org/zap"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBody
	collisionTypeFoot
	collisionTypeProjectile
)

// Config tunes every face's Chipmunk space.
type Config struct {
	Gravity    float64
	Iterations int
	Damping    float64
}

// World owns the Chipmunk space for one cube face.
type World struct {
	name          string
	space         *cp.Space
	cfg           Config
	log           *zap.Logger
	handlersReady bool
}

// NewWorld creates the physics world for the face called name. Gravity
// starts pointing at the face's own south edge.
func NewWorld(name string, cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10
	}
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	if cfg.Damping > 0 {
		space.SetDamping(cfg.Damping)
	}

	w := &World{
		name:  name,
		space: space,
		cfg:   cfg,
		log:   log.With(zap.String("face", name)),
	}
	w.SetGravityDirection(cube.South)
	w.setupHandlers()
	return w
}

// WorldOf returns the Chipmunk world behind a face.
func WorldOf(f *cube.Face) *World {
	w, ok := f.World().(*World)
	if !ok {
		panic(fmt.Sprintf("physics: face %s has no chipmunk world (%T)", f.Name, f.World()))
	}
	return w
}

// Name is the face the world belongs to.
func (w *World) Name() string {
	return w.name
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// SetGravity sets the acceleration applied to every dynamic body.
func (w *World) SetGravity(g cube.Vec2) {
	w.space.SetGravity(cp.Vector{X: g.X, Y: g.Y})
}

// Gravity returns the current acceleration.
func (w *World) Gravity() cube.Vec2 {
	g := w.space.Gravity()
	return cube.Vec2{X: g.X, Y: g.Y}
}

// SetGravityDirection points gravity at the face edge down, using the
// configured magnitude.
func (w *World) SetGravityDirection(down cube.Direction) {
	w.SetGravity(down.Vector().Scale(w.cfg.Gravity))
}

func (w *World) setupHandlers() {
	if w == nil || w.handlersReady || w.space == nil {
		return
	}

	for _, other := range []cp.CollisionType{collisionTypeSolid, collisionTypeBody} {
		footHandler := w.space.NewCollisionHandler(collisionTypeFoot, other)
		footHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			a, _ := arb.Shapes()
			if st := stateOf(a); st != nil {
				st.Feet++
			}
			return true
		}
		footHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			a, _ := arb.Shapes()
			if st := stateOf(a); st != nil && st.Feet > 0 {
				st.Feet--
			}
		}

		hitHandler := w.space.NewCollisionHandler(collisionTypeProjectile, other)
		hitHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			a, b := arb.Shapes()
			if st := stateOf(a); st != nil {
				st.Hit = true
			}
			if st := stateOf(b); st != nil {
				st.Struck++
			}
			return true
		}
	}

	w.handlersReady = true
}

func stateOf(shape *cp.Shape) *ContactState {
	if shape == nil {
		return nil
	}
	st, _ := shape.UserData.(*ContactState)
	return st
}
