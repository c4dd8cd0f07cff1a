package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
	"github.com/milk9111/cubescroller/prefabs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestShapeColor(t *testing.T) {
	c := newTestCube(t)
	front := faceNamed(t, c, "front")
	floor(front)
	p := NewPlayer(front, testPlayerSpec(), mgl64.Vec3{0, 0, 1}, cube.North, zaptest.NewLogger(t))
	NewProjectile(front, cube.Vec2{X: 20, Y: 20}, cube.Vec2{X: 1}, cube.North, ProjectileSpec{Launcher: p.ID()}, nil)
	NewCrate(front, prefabs.CrateSpec{
		SpawnSpec: prefabs.SpawnSpec{Face: "front", Position: prefabs.Vec3Spec{X: 0.5, Y: 0.5}},
		Size:      10,
	})

	d := &chipmunkDrawer{player: p.Body().CP()}
	seen := map[cp.FColor]int{}
	physics.WorldOf(front).Space().EachShape(func(s *cp.Shape) {
		seen[d.ShapeColor(s, nil)]++
	})

	assert.Equal(t, 1, seen[solidColor], "floor")
	assert.Equal(t, 1, seen[playerColor], "player hull")
	assert.Equal(t, 1, seen[projectileColor], "shot")
	assert.Equal(t, 1, seen[bodyColor], "crate")
	assert.Equal(t, 1, seen[sensorColor], "player feet")
}

func TestRGBA(t *testing.T) {
	got := rgba(cp.FColor{R: 1, G: 0.5, B: 0, A: 1})
	assert.Equal(t, uint8(0xff), got.R)
	assert.Equal(t, uint8(0x80), got.G)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(0xff), got.A)
}
