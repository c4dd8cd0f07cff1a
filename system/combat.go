package system

import (
	"github.com/milk9111/cubescroller/obj"
	"go.uber.org/zap"
)

// resolveCombat drops objects that died this tick and counts enemy kills.
// Enemies and projectiles destroy themselves in Update when struck or
// spent; this only reconciles the world's list.
func (w *World) resolveCombat() {
	kept := w.Objects[:0]
	for _, o := range w.Objects {
		if o.Alive() {
			kept = append(kept, o)
			continue
		}
		if _, ok := o.(*obj.Enemy); ok {
			w.Kills++
			w.log.Info("enemy killed", zap.Stringer("id", o.ID()), zap.Int("kills", w.Kills))
		}
	}
	for i := len(kept); i < len(w.Objects); i++ {
		w.Objects[i] = nil
	}
	w.Objects = kept

	if hits := w.Player.Body().Contacts().Struck; hits > 0 {
		w.log.Info("player struck", zap.Int("hits", hits))
		w.Player.Body().Contacts().Struck = 0
	}
}
