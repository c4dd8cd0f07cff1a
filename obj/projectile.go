package obj

import (
	"github.com/google/uuid"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"go.uber.org/zap"
)

type ProjectileSpec struct {
	Radius float64
	// TTL is the lifetime in ticks; zero lives until it hits something.
	TTL int
	// Launcher is the object that fired the shot.
	Launcher uuid.UUID
}

// Projectile flies in a straight line, ignoring gravity, and follows the
// cube surface over edges like any other mover.
type Projectile struct {
	base
	spec ProjectileSpec
	age  int
	log  *zap.Logger
}

// NewProjectile launches a shot from face-local point pos with velocity vel.
func NewProjectile(face *cube.Face, pos, vel cube.Vec2, up cube.Direction, spec ProjectileSpec, log *zap.Logger) *Projectile {
	if log == nil {
		log = zap.NewNop()
	}
	if spec.Radius <= 0 {
		spec.Radius = 3
	}
	body := physics.WorldOf(face).AddBody(physics.BodySpec{
		Radius:     spec.Radius,
		Mass:       0.1,
		Projectile: true,
	}, pos, 0)
	body.SetVelocity(vel)

	return &Projectile{
		base: newBase(face, body, face.ToCube3D(pos), up),
		spec: spec,
		log:  log,
	}
}

func (p *Projectile) Kind() string { return "projectile" }

func (p *Projectile) Launcher() uuid.UUID { return p.spec.Launcher }

func (p *Projectile) Update(tick int) {
	if !p.Alive() {
		return
	}
	p.age++
	hit := p.Body().Contacts().Hit
	if !hit && (p.spec.TTL <= 0 || p.age < p.spec.TTL) {
		return
	}
	p.log.Debug("projectile spent",
		zap.Stringer("id", p.id),
		zap.String("face", p.mover.Face().Name),
		zap.Bool("hit", hit),
		zap.Int("age", p.age),
	)
	p.Destroy()
}
