package cube

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Enumerated up-direction outcomes for every crossing out of the top face,
// written out by hand from an unfolded cube: up x crossing -> new up.
var topFaceUpTable = []struct {
	up, dir, back, want Direction
}{
	{North, North, North, South},
	{East, North, North, West},
	{South, North, North, North},
	{West, North, North, East},

	{North, East, North, East},
	{East, East, North, South},
	{South, East, North, West},
	{West, East, North, North},

	{North, South, North, North},
	{East, South, North, East},
	{South, South, North, South},
	{West, South, North, West},

	{North, West, North, West},
	{East, West, North, North},
	{South, West, North, East},
	{West, West, North, South},
}

func TestNextUpMatchesEnumeratedTable(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)
	top := mustFace(c, "top")

	for _, row := range topFaceUpTable {
		next := top.AdjacentFace(row.dir)
		require.Equal(t, row.back, next.BackwardsDirectionFrom(top), "back from %s", next.Name)
		assert.Equal(t, row.want, NextUp(row.up, row.dir, row.back), "up=%s dir=%s", row.up, row.dir)
	}
}

// fold carries an in-plane vector of a across the edge toward t, the way a
// sheet of paper bends over the cube's edge.
func fold(v, t, normal mgl64.Vec3) mgl64.Vec3 {
	along := v.Dot(t)
	return v.Sub(t.Mul(along)).Sub(normal.Mul(along))
}

func TestNextUpMatchesFolding(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)

	for _, a := range c.Faces() {
		for _, dir := range Directions {
			b := a.AdjacentFace(dir)
			back := b.BackwardsDirectionFrom(a)
			turn := NextUp(North, dir, back).Sub(North)
			for _, up := range Directions {
				folded := fold(a.DirectionVector(up), a.DirectionVector(dir), a.Normal)
				want, ok := b.VectorToDirection(folded)
				require.True(t, ok)
				got := NextUp(up, dir, back)
				assert.Equal(t, want, got, "%s -> %s up=%s", a.Name, b.Name, up)
				assert.Equal(t, turn, got.Sub(up), "turn depends only on the edge")
			}
		}
	}
}

func TestScenarioFrontToRight(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)
	front := mustFace(c, "front")
	right := mustFace(c, "right")

	m := spawn(front, mgl64.Vec3{0.98, 0, 1}, North, Vec2{X: 2}, 3.5)
	assert.InDelta(t, 1.98, m.Body().Position().X, 1e-12)

	var hooked []Direction
	m.OnTransition = func(_ *Mover, from *Face, dir Direction) {
		assert.Same(t, front, from)
		hooked = append(hooked, dir)
	}

	crossings := c.Step(0.035)
	require.Len(t, crossings, 1)
	assert.Same(t, front, crossings[0].From)
	assert.Same(t, right, crossings[0].To)
	assert.Equal(t, East, crossings[0].Direction)
	assert.Equal(t, []Direction{East}, hooked)

	assert.Same(t, right, m.Face())
	assertVec3InDelta(t, mgl64.Vec3{1, 0, 0.95}, m.CubePosition(), 1e-9)
	assert.Equal(t, 1.0, m.CubePosition().X())

	back := right.BackwardsDirectionFrom(front)
	assert.Equal(t, West, back)
	assert.Equal(t, NextUp(North, East, back), m.Up())
	assert.Equal(t, North, m.Up())

	b := m.Body()
	assert.InDelta(t, 0.05, b.Position().X, 1e-9)
	assert.InDelta(t, 1.0, b.Position().Y, 1e-9)
	assert.InDelta(t, 2.0, b.Velocity().X, 1e-12)
	assert.InDelta(t, 0.0, b.Velocity().Y, 1e-12)
	assert.Equal(t, 3.5, b.Mass())
	assert.Equal(t, 0.0, b.Angle())

	assert.Empty(t, front.Movers())
	assert.Equal(t, []*Mover{m}, right.Movers())
	assert.Empty(t, front.World().(*fakeWorld).bodies)
	assert.Len(t, right.World().(*fakeWorld).bodies, 1)
}

func TestPositionContinuity(t *testing.T) {
	const size = 2.0
	const dt = 0.05

	cases := []struct {
		name  string
		face  string
		start Vec2
		vel   Vec2
		up    Direction
	}{
		{"front_east", "front", Vec2{1.9, 0.7}, Vec2{3, 1}, North},
		{"top_east", "top", Vec2{1.95, 1.2}, Vec2{2, -1.5}, East},
		{"top_north", "top", Vec2{0.4, 0.05}, Vec2{0.5, -4}, South},
		{"bottom_west", "bottom", Vec2{0.02, 1.5}, Vec2{-1.2, 0.3}, West},
		{"left_south", "left", Vec2{1.1, 1.97}, Vec2{-0.4, 2.2}, North},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := newTestCube(size)
			require.NoError(t, err)
			a := mustFace(c, tc.face)

			m := spawn(a, a.ToCube3D(tc.start), tc.up, tc.vel, 1)
			crossings := c.Step(dt)
			require.Len(t, crossings, 1)
			b := m.Face()
			dir := crossings[0].Direction
			turn := m.Up().Sub(tc.up)

			// Unfold b into a's plane around the shared edge midpoint.
			mid := a.Normal.Add(a.DirectionVector(dir))
			ea := a.ToFaceLocal2D(mid)
			eb := b.ToFaceLocal2D(mid)
			unfolded := ea.Add(m.Body().Position().Sub(eb).RotateQuarter(North.Sub(turn)))

			want := tc.start.Add(tc.vel.Scale(dt))
			assert.InDelta(t, want.X, unfolded.X, 1e-9)
			assert.InDelta(t, want.Y, unfolded.Y, 1e-9)
			assert.InDelta(t, tc.vel.Len()*dt, unfolded.Sub(tc.start).Len(), 1e-9)

			// Velocity keeps its heading in the unfolded plane.
			v := m.Body().Velocity().RotateQuarter(North.Sub(turn))
			assert.InDelta(t, tc.vel.X, v.X, 1e-12)
			assert.InDelta(t, tc.vel.Y, v.Y, 1e-12)
			assert.InDelta(t, turn.Turn(), m.Body().Angle()-tc.up.Angle(), 1e-12)
		})
	}
}

func TestDiagonalOverflowCrossesTwice(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)
	front := mustFace(c, "front")

	m := spawn(front, mgl64.Vec3{0.99, 0.99, 1}, North, Vec2{X: 1, Y: -1}, 1)
	crossings := c.Step(0.05)
	require.Len(t, crossings, 2)
	assert.Equal(t, "right", crossings[0].To.Name)
	assert.Equal(t, "top", crossings[1].To.Name)
	assert.Equal(t, "top", m.Face().Name)

	p := m.CubePosition()
	for i := 0; i < 3; i++ {
		assert.LessOrEqual(t, math.Abs(p[i]), 1.0)
	}
	assert.Equal(t, 1.0, p.Y())
	assert.InDelta(t, 0.96, p.X(), 1e-9)
	assert.InDelta(t, 0.96, p.Z(), 1e-9)

	for _, f := range c.Faces() {
		if f.Name == "top" {
			assert.Len(t, f.Movers(), 1)
			assert.Len(t, f.World().(*fakeWorld).bodies, 1)
			continue
		}
		assert.Empty(t, f.Movers(), f.Name)
		assert.Empty(t, f.World().(*fakeWorld).bodies, f.Name)
	}
}

func TestStepWithoutCrossing(t *testing.T) {
	c, err := newTestCube(10)
	require.NoError(t, err)
	back := mustFace(c, "back")

	m := spawn(back, mgl64.Vec3{0.2, -0.1, -1}, East, Vec2{X: -1, Y: 1}, 1)
	start := m.Body().Position()
	for i := 0; i < 3; i++ {
		assert.Empty(t, c.Step(0.1))
	}
	assert.Same(t, back, m.Face())
	assert.Equal(t, East, m.Up())
	assert.InDelta(t, start.X-0.3, m.Body().Position().X, 1e-9)
	assert.InDelta(t, start.Y+0.3, m.Body().Position().Y, 1e-9)
	assertVec3InDelta(t, back.ToCube3D(m.Body().Position()), m.CubePosition(), 0)
}

func TestWalkAroundEquatorRestoresFrame(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)
	front := mustFace(c, "front")

	m := spawn(front, mgl64.Vec3{0, 0.5, 1}, West, Vec2{X: 4}, 1)
	var visited []string
	for i := 0; i < 400 && len(visited) < 4; i++ {
		for _, cr := range c.Step(0.01) {
			visited = append(visited, cr.To.Name)
		}
	}
	assert.Equal(t, []string{"right", "back", "left", "front"}, visited)
	assert.Equal(t, West, m.Up())
	assert.InDelta(t, 4.0, m.Body().Velocity().X, 1e-9)
	assert.InDelta(t, 0.0, m.Body().Velocity().Y, 1e-9)
}

func TestMoverDestroy(t *testing.T) {
	c, err := newTestCube(2)
	require.NoError(t, err)
	left := mustFace(c, "left")

	m := spawn(left, mgl64.Vec3{-1, 0, 0}, North, Vec2{}, 1)
	require.True(t, m.Alive())
	m.Destroy()
	assert.False(t, m.Alive())
	assert.Empty(t, left.Movers())
	assert.Empty(t, left.World().(*fakeWorld).bodies)
	assert.Nil(t, m.Sync())
	m.Destroy()
}
