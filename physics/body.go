package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cubescroller/cube"
	"go.uber.org/zap"
)

// BodySpec describes the shape and material of a dynamic body. A zero
// Radius means a box of Width x Height.
type BodySpec struct {
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64

	FixedRotation bool
	// Foot adds a sensor strip under the body that counts ground contacts.
	Foot bool
	// Projectile bodies report hits and ignore gravity.
	Projectile bool
	NoGravity  bool
}

// ContactState collects collision callbacks for one body.
type ContactState struct {
	Feet   int
	Hit    bool
	Struck int
}

// Body is a dynamic Chipmunk body on one face. It implements cube.Body.
type Body struct {
	spec  BodySpec
	world *World
	body  *cp.Body
	shape *cp.Shape
	foot  *cp.Shape
	state *ContactState
}

var _ cube.Body = (*Body)(nil)

// AddBody creates a dynamic body centered at pos.
func (w *World) AddBody(spec BodySpec, pos cube.Vec2, angle float64) *Body {
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		spec.Width, spec.Height = 16, 16
	}

	var moment float64
	if spec.Radius > 0 {
		moment = cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, spec.Width, spec.Height)
	}
	if spec.FixedRotation {
		moment = math.Inf(1)
	}

	cpBody := cp.NewBody(mass, moment)
	cpBody.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	cpBody.SetAngle(angle)
	if spec.NoGravity || spec.Projectile {
		cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, 1, dt)
		})
	}

	var shape *cp.Shape
	if spec.Radius > 0 {
		shape = cp.NewCircle(cpBody, spec.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(cpBody, spec.Width, spec.Height, 0)
	}
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Elasticity)
	if spec.Projectile {
		shape.SetCollisionType(collisionTypeProjectile)
	} else {
		shape.SetCollisionType(collisionTypeBody)
	}

	state := &ContactState{}
	shape.UserData = state

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)

	b := &Body{spec: spec, world: w, body: cpBody, shape: shape, state: state}
	if spec.Foot {
		b.foot = w.addFoot(cpBody, spec, state)
	}
	cpBody.UserData = b

	w.log.Debug("physics: add body",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Bool("projectile", spec.Projectile),
	)
	return b
}

// addFoot attaches a sensor strip just below the body in body space, so it
// follows the body's rotation and therefore its up-direction.
func (w *World) addFoot(body *cp.Body, spec BodySpec, state *ContactState) *cp.Shape {
	width, height := spec.Width, spec.Height
	if spec.Radius > 0 {
		width, height = spec.Radius*2, spec.Radius*2
	}
	bb := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}
	foot := cp.NewBox2(body, bb, 0)
	foot.SetSensor(true)
	foot.SetCollisionType(collisionTypeFoot)
	foot.UserData = state
	w.space.AddShape(foot)
	return foot
}

func (b *Body) Position() cube.Vec2 {
	p := b.body.Position()
	return cube.Vec2{X: p.X, Y: p.Y}
}

func (b *Body) SetPosition(p cube.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

func (b *Body) SetAngle(a float64) {
	b.body.SetAngle(a)
}

func (b *Body) Velocity() cube.Vec2 {
	v := b.body.Velocity()
	return cube.Vec2{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v cube.Vec2) {
	b.body.SetVelocity(v.X, v.Y)
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

func (b *Body) SetMass(m float64) {
	if m <= 0 {
		return
	}
	b.body.SetMass(m)
}

// Spec returns the shape description the body was built from.
func (b *Body) Spec() BodySpec {
	return b.spec
}

// World returns the face world the body lives in.
func (b *Body) World() *World {
	return b.world
}

// Grounded reports whether the foot sensor touches anything.
func (b *Body) Grounded() bool {
	return b.state.Feet > 0
}

// Contacts exposes the body's collision flags.
func (b *Body) Contacts() *ContactState {
	return b.state
}

// CloneInto rebuilds the body in another face world with the same shape,
// velocity and spin. Hit flags carry over; foot contacts start fresh since
// the new world has not touched anything yet.
func (b *Body) CloneInto(w cube.World) cube.Body {
	target, ok := w.(*World)
	if !ok {
		panic(fmt.Sprintf("physics: cannot clone body into %T", w))
	}
	clone := target.AddBody(b.spec, b.Position(), b.Angle())
	clone.body.SetVelocityVector(b.body.Velocity())
	clone.body.SetAngularVelocity(b.body.AngularVelocity())
	clone.state.Hit = b.state.Hit
	clone.state.Struck = b.state.Struck
	return clone
}

// Remove takes the body and its shapes out of the space.
func (b *Body) Remove() {
	if b.world == nil {
		return
	}
	space := b.world.space
	if b.foot != nil {
		space.RemoveShape(b.foot)
	}
	space.RemoveShape(b.shape)
	space.RemoveBody(b.body)
	b.world = nil
}

// CP exposes the Chipmunk body for drawing and queries.
func (b *Body) CP() *cp.Body {
	return b.body
}
