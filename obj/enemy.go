package obj

import (
	"github.com/d5/tengo/v2"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
	"go.uber.org/zap"
)

// Enemy is a walker whose intent comes from a tengo script. It dies when a
// projectile strikes it.
type Enemy struct {
	base
	spec   prefabs.EnemySpec
	walk   walker
	script *scriptRuntime
	log    *zap.Logger

	moveX float64
	jump  bool
}

// NewEnemy spawns an enemy and compiles its script.
func NewEnemy(face *cube.Face, spec prefabs.EnemySpec, log *zap.Logger) (*Enemy, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rt, err := compileScript(spec.Script)
	if err != nil {
		return nil, err
	}
	body := physics.WorldOf(face).AddBody(physics.BodySpec{
		Width:         spec.Width,
		Height:        spec.Height,
		Mass:          spec.Mass,
		Friction:      0.9,
		FixedRotation: true,
		Foot:          true,
	}, cube.Vec2{}, 0)

	e := &Enemy{
		base:   newBase(face, body, spec.Position.Vec3(), spec.Up.Direction),
		spec:   spec,
		walk:   walker{moveSpeed: spec.MoveSpeed, jumpSpeed: spec.JumpSpeed},
		script: rt,
	}
	e.log = log.With(zap.Stringer("enemy", e.id), zap.String("name", spec.Name))
	return e, nil
}

func (e *Enemy) Kind() string { return "enemy" }

func (e *Enemy) Script() string { return e.spec.Script }

// Reload recompiles the enemy's script, keeping the old one on failure.
func (e *Enemy) Reload() error {
	rt, err := compileScript(e.spec.Script)
	if err != nil {
		return err
	}
	e.script = rt
	return nil
}

// Update runs the script for one tick and applies what it asked for. A
// script error is logged and the enemy stands still for the tick.
func (e *Enemy) Update(tick int) {
	if !e.Alive() {
		return
	}
	body := e.Body()
	if body.Contacts().Struck > 0 {
		e.log.Info("enemy destroyed", zap.String("face", e.mover.Face().Name))
		e.Destroy()
		return
	}

	e.moveX, e.jump = 0, false
	if err := e.script.run("update", e.engine(tick)); err != nil {
		e.log.Warn("enemy script error", zap.String("script", e.spec.Script), zap.Error(err))
		e.moveX, e.jump = 0, false
	}
	e.walk.drive(body, e.mover.Up(), e.moveX, e.jump)
}

func (e *Enemy) engine(tick int) *tengo.ImmutableMap {
	body := e.Body()
	pos := body.Position()
	values := map[string]tengo.Object{
		"tick":     &tengo.Int{Value: int64(tick)},
		"grounded": boolObject(body.Grounded()),
		"face":     &tengo.String{Value: e.mover.Face().Name},
		"up":       &tengo.String{Value: e.mover.Up().String()},
		"position": &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: pos.X}, &tengo.Float{Value: pos.Y}}},
	}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		x, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		e.moveX = x
		return tengo.TrueValue, nil
	}}

	values["jump"] = &tengo.UserFunction{Name: "jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
		e.jump = true
		return boolObject(body.Grounded()), nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
