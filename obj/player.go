package obj

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
	"go.uber.org/zap"
)

// Intent is one tick of player input, already reduced to what the
// controller needs.
type Intent struct {
	// MoveX is -1 for left, 0 for none, +1 for right, in the player's own
	// frame.
	MoveX float64
	// Jump is true on the tick the jump key is pressed.
	Jump bool
	// Fire is true on the tick the fire key is pressed.
	Fire bool
}

// Player is the controllable character. Its face's gravity always points
// at its feet, so walking over an edge turns the new face's world to match.
type Player struct {
	base
	spec   prefabs.PlayerSpec
	walk   walker
	log    *zap.Logger
	facing float64

	jumpBuffer int
	cooldown   int
	jumps      int
}

// NewPlayer spawns the player on face at cube position pos.
func NewPlayer(face *cube.Face, spec prefabs.PlayerSpec, pos mgl64.Vec3, up cube.Direction, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	body := physics.WorldOf(face).AddBody(physics.BodySpec{
		Width:         spec.Width,
		Height:        spec.Height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		FixedRotation: true,
		Foot:          true,
	}, cube.Vec2{}, 0)

	p := &Player{
		base:   newBase(face, body, pos, up),
		spec:   spec,
		walk:   walker{moveSpeed: spec.MoveSpeed, jumpSpeed: spec.JumpSpeed, airControl: spec.AirControl},
		facing: 1,
	}
	p.log = log.With(zap.Stringer("player", p.id))
	p.mover.OnTransition = p.onTransition
	applyGravity(p.mover)
	p.log.Info("player spawned", zap.String("face", face.Name), zap.Stringer("up", up))
	return p
}

func (p *Player) Kind() string { return "player" }

// Facing is +1 when the player last moved right in its own frame, -1 for
// left.
func (p *Player) Facing() float64 { return p.facing }

// Jumps counts jumps taken so far.
func (p *Player) Jumps() int { return p.jumps }

// Update runs with no input.
func (p *Player) Update(tick int) {
	p.Control(Intent{})
}

// Control applies one tick of input. A fired shot is returned so the caller
// can track it; nil otherwise.
func (p *Player) Control(in Intent) *Projectile {
	if !p.Alive() {
		return nil
	}
	if in.MoveX > 0 {
		p.facing = 1
	} else if in.MoveX < 0 {
		p.facing = -1
	}

	if in.Jump {
		p.jumpBuffer = p.spec.JumpBuffer + 1
	}
	if p.walk.drive(p.Body(), p.mover.Up(), in.MoveX, p.jumpBuffer > 0) {
		p.jumpBuffer = 0
		p.jumps++
	}
	if p.jumpBuffer > 0 {
		p.jumpBuffer--
	}

	if p.cooldown > 0 {
		p.cooldown--
	}
	if !in.Fire || p.cooldown > 0 {
		return nil
	}
	p.cooldown = p.spec.FireCooldown
	return p.fire()
}

func (p *Player) fire() *Projectile {
	right, _ := frame(p.mover.Up())
	dir := right.Scale(p.facing)
	reach := p.spec.Width/2 + p.spec.ShotRadius + 2
	origin := p.Body().Position().Add(dir.Scale(reach))
	shot := NewProjectile(p.mover.Face(), origin, dir.Scale(p.spec.ShotSpeed), p.mover.Up(), ProjectileSpec{
		Radius:   p.spec.ShotRadius,
		TTL:      p.spec.ShotTTLFrames,
		Launcher: p.id,
	}, p.log)
	return shot
}

func (p *Player) onTransition(m *cube.Mover, from *cube.Face, dir cube.Direction) {
	applyGravity(m)
	p.log.Debug("player crossed edge",
		zap.String("from", from.Name),
		zap.String("to", m.Face().Name),
		zap.Stringer("dir", dir),
		zap.Stringer("up", m.Up()),
	)
}
