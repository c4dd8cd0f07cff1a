package system

import (
	"fmt"

	"github.com/milk9111/cubescroller/obj"
	"go.uber.org/zap"
)

// spawn places the level's solids and objects on the fresh cube.
func (w *World) spawn() error {
	for name, fs := range w.Level.Faces {
		face, err := w.Face(name)
		if err != nil {
			return fmt.Errorf("system: solids: %w", err)
		}
		obj.PlaceSolids(face, fs.Solids)
	}

	ps := w.Level.Player
	face, err := w.Face(ps.Face)
	if err != nil {
		return fmt.Errorf("system: player: %w", err)
	}
	w.Player = obj.NewPlayer(face, w.playerSpec, ps.Position.Vec3(), ps.Up.Direction, w.log)

	for i, cs := range w.Level.Crates {
		face, err := w.Face(cs.Face)
		if err != nil {
			return fmt.Errorf("system: crate %d: %w", i, err)
		}
		w.Objects = append(w.Objects, obj.NewCrate(face, cs))
	}

	for i, es := range w.Level.Enemies {
		face, err := w.Face(es.Face)
		if err != nil {
			return fmt.Errorf("system: enemy %d: %w", i, err)
		}
		e, err := obj.NewEnemy(face, es, w.log)
		if err != nil {
			return fmt.Errorf("system: enemy %d: %w", i, err)
		}
		w.Objects = append(w.Objects, e)
		w.log.Debug("enemy spawned", zap.String("name", es.Name), zap.String("face", es.Face))
	}
	return nil
}
