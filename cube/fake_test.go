package cube

import "github.com/go-gl/mathgl/mgl64"

// fakeWorld integrates positions with explicit Euler and nothing else.
type fakeWorld struct {
	name    string
	bodies  []*fakeBody
	gravity Vec2
}

func (w *fakeWorld) Step(dt float64) {
	for _, b := range w.bodies {
		b.vel = b.vel.Add(w.gravity.Scale(dt))
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

func (w *fakeWorld) SetGravity(g Vec2) { w.gravity = g }

func (w *fakeWorld) add(b *fakeBody) *fakeBody {
	b.world = w
	w.bodies = append(w.bodies, b)
	return b
}

type fakeBody struct {
	world *fakeWorld
	pos   Vec2
	vel   Vec2
	angle float64
	mass  float64
}

func (b *fakeBody) Position() Vec2 { return b.pos }
func (b *fakeBody) SetPosition(p Vec2) { b.pos = p }
func (b *fakeBody) Angle() float64 { return b.angle }
func (b *fakeBody) SetAngle(a float64) { b.angle = a }
func (b *fakeBody) Velocity() Vec2 { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2) { b.vel = v }
func (b *fakeBody) Mass() float64 { return b.mass }
func (b *fakeBody) SetMass(m float64) { b.mass = m }

func (b *fakeBody) CloneInto(w World) Body {
	fw := w.(*fakeWorld)
	// mass is deliberately not copied; the protocol must restore it.
	return fw.add(&fakeBody{pos: b.pos, vel: b.vel, angle: b.angle, mass: 1})
}

func (b *fakeBody) Remove() {
	if b.world == nil {
		return
	}
	for i, other := range b.world.bodies {
		if other == b {
			b.world.bodies = append(b.world.bodies[:i], b.world.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

func newTestCube(size float64) (*Cube, error) {
	return NewCube(DefaultLayout(), size, func(f *Face) World {
		return &fakeWorld{name: f.Name}
	})
}

func mustFace(c *Cube, name string) *Face {
	f, ok := c.Face(name)
	if !ok {
		panic("no face " + name)
	}
	return f
}

func spawn(f *Face, pos mgl64.Vec3, up Direction, vel Vec2, mass float64) *Mover {
	b := f.World().(*fakeWorld).add(&fakeBody{vel: vel, mass: mass})
	return NewMover(f, b, pos, up)
}
