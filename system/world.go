package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/cubescroller/common"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/obj"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
	"go.uber.org/zap"
)

var ErrUnknownFace = errors.New("system: unknown face")

// World owns the cube, everything on it and the camera view.
type World struct {
	Level   *prefabs.LevelSpec
	Cube    *cube.Cube
	View    *cube.View
	Player  *obj.Player
	Objects []obj.Object

	// Follow keeps the view on the player's face.
	Follow bool
	Tick   int
	Kills  int

	levelName  string
	playerSpec prefabs.PlayerSpec
	log        *zap.Logger
}

// NewWorld loads the named level and the player prefab and builds the cube.
func NewWorld(levelName string, log *zap.Logger) (*World, error) {
	level, player, err := loadSpecs(levelName)
	if err != nil {
		return nil, err
	}
	w, err := NewWorldFromSpec(level, *player, log)
	if err != nil {
		return nil, err
	}
	w.levelName = levelName
	return w, nil
}

// NewWorldFromSpec builds a world from already-loaded specs.
func NewWorldFromSpec(level *prefabs.LevelSpec, player prefabs.PlayerSpec, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{Follow: true, log: log}
	if err := w.Load(level, player); err != nil {
		return nil, err
	}
	return w, nil
}

func loadSpecs(levelName string) (*prefabs.LevelSpec, *prefabs.PlayerSpec, error) {
	level, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return nil, nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, nil, err
	}
	return level, player, nil
}

// Load replaces the cube and all objects. The view starts on the player's
// face with that face's north on top. On error w is left untouched.
func (w *World) Load(level *prefabs.LevelSpec, player prefabs.PlayerSpec) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	next, err := w.build(level, player)
	if err != nil {
		return err
	}
	*w = *next
	return nil
}

// build assembles a fresh world from specs, carrying over w's settings.
func (w *World) build(level *prefabs.LevelSpec, player prefabs.PlayerSpec) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	layout, err := level.CubeLayout()
	if err != nil {
		return nil, err
	}

	cfg := physics.Config{Gravity: level.Gravity, Iterations: level.Iterations, Damping: level.Damping}
	c, err := cube.NewCube(layout, level.FaceSize, func(f *cube.Face) cube.World {
		return physics.NewWorld(f.Name, cfg, w.log)
	})
	if err != nil {
		return nil, fmt.Errorf("system: build cube %s: %w", level.Name, err)
	}

	next := &World{
		Level:      level,
		Cube:       c,
		Follow:     w.Follow,
		levelName:  w.levelName,
		playerSpec: player,
		log:        w.log,
	}
	if err := next.spawn(); err != nil {
		return nil, err
	}
	next.View = cube.NewView(next.Player.Mover().Face())
	w.log.Info("level loaded",
		zap.String("level", level.Name),
		zap.Float64("face_size", level.FaceSize),
		zap.Int("objects", len(next.Objects)),
	)
	return next, nil
}

// Reload rereads the level and player prefabs and rebuilds the world. The
// view keeps its face and orientation when the new level still has that
// face. On error the running world is left untouched.
func (w *World) Reload() error {
	if w.levelName == "" {
		return fmt.Errorf("system: world was not loaded from a prefab")
	}
	level, player, err := loadSpecs(w.levelName)
	if err != nil {
		return err
	}

	next, err := w.build(level, *player)
	if err != nil {
		return err
	}
	if w.View != nil {
		if f, ok := next.Cube.Face(w.View.Face.Name); ok {
			next.View.Face = f
			next.View.Up = w.View.Up
		}
	}
	*w = *next
	return nil
}

// ReloadScripts recompiles every enemy script. Enemies whose script fails
// to compile keep running the old one.
func (w *World) ReloadScripts() error {
	var errs []error
	for _, o := range w.Objects {
		e, ok := o.(*obj.Enemy)
		if !ok || !e.Alive() {
			continue
		}
		if err := e.Reload(); err != nil {
			errs = append(errs, err)
			continue
		}
		w.log.Debug("script reloaded", zap.String("script", e.Script()))
	}
	return errors.Join(errs...)
}

// Update runs one tick: controllers, physics on every face, the transition
// protocol, cleanup and view follow.
func (w *World) Update(in obj.Intent) []cube.Crossing {
	w.Tick++

	if shot := w.Player.Control(in); shot != nil {
		w.Objects = append(w.Objects, shot)
	}
	for _, o := range w.Objects {
		o.Update(w.Tick)
	}

	crossings := w.Cube.Step(common.Dt)
	for _, c := range crossings {
		w.log.Debug("face crossing",
			zap.String("from", c.From.Name),
			zap.String("to", c.To.Name),
			zap.Stringer("dir", c.Direction),
			zap.Stringer("up", c.Mover.Up()),
		)
	}

	w.resolveCombat()

	if w.Follow && w.Player.Alive() {
		w.followFace(w.Player.Mover().Face())
	}
	return crossings
}

// followFace turns the view onto target, going through a shared neighbor
// when target is not adjacent.
func (w *World) followFace(target *cube.Face) {
	if w.View.RotateToFace(target) {
		return
	}
	for _, d := range cube.Directions {
		mid := w.View.Face.AdjacentFace(d)
		if _, ok := cube.FaceAdjacency(mid, target); ok {
			w.View.RotateToFace(mid)
			w.View.RotateToFace(target)
			return
		}
	}
}

// RotateView applies a camera command. Manual turns switch follow off;
// ViewFollow switches it back on.
func (w *World) RotateView(cmd obj.ViewCommand, toward cube.Direction) {
	switch cmd {
	case obj.ViewRotateCW:
		w.View.RotateCW()
	case obj.ViewRotateCCW:
		w.View.RotateCCW()
	case obj.ViewToward:
		w.Follow = false
		w.View.RotateToward(toward)
	case obj.ViewFollow:
		w.Follow = true
		if w.Player.Alive() {
			w.followFace(w.Player.Mover().Face())
		}
	}
}

// Face looks up a face by name.
func (w *World) Face(name string) (*cube.Face, error) {
	f, ok := w.Cube.Face(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFace, name)
	}
	return f, nil
}
