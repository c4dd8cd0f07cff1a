package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubescroller/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedLevelParses(t *testing.T) {
	spec, err := LoadLevelSpec("cube.yaml")
	require.NoError(t, err)

	assert.Equal(t, 480.0, spec.FaceSize)
	assert.Equal(t, "front", spec.Player.Face)
	assert.Equal(t, cube.North, spec.Player.Up.Direction)
	assert.Len(t, spec.Faces, 6)
	assert.NotEmpty(t, spec.Faces["front"].Solids)
	require.Len(t, spec.Enemies, 1)
	assert.Equal(t, "patrol.tengo", spec.Enemies[0].Script)
	assert.Equal(t, "right", spec.Enemies[0].Face)

	layout, err := spec.CubeLayout()
	require.NoError(t, err)
	assert.Equal(t, cube.DefaultLayout(), layout)

	_, err = cube.NewCube(layout, spec.FaceSize, nil)
	assert.NoError(t, err)
}

func TestEmbeddedPlayerParses(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Greater(t, spec.MoveSpeed, 0.0)
	assert.Greater(t, spec.JumpSpeed, 0.0)
	assert.Greater(t, spec.ShotTTLFrames, 0)
}

func TestEmbeddedScriptLoads(t *testing.T) {
	for _, name := range []string{"patrol.tengo", "scripts/patrol.tengo", "prefabs/scripts/patrol.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "update := func")
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	embedded, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.NotEqual(t, 7.0, embedded.MoveSpeed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("move_speed: 7\n"), 0o644))
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 7.0, spec.MoveSpeed)

	data, err := Load("prefabs/player.yaml")
	require.NoError(t, err)
	assert.Equal(t, "move_speed: 7\n", string(data))
}

func TestDirectionFromYAML(t *testing.T) {
	cases := map[string]cube.Direction{
		"up: north": cube.North,
		"up: E":     cube.East,
		"up: south": cube.South,
		"up: West":  cube.West,
		"{}":        cube.North,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			var s SpawnSpec
			require.NoError(t, yaml.Unmarshal([]byte(src), &s))
			assert.Equal(t, want, s.Up.Direction)
		})
	}

	var s SpawnSpec
	assert.Error(t, yaml.Unmarshal([]byte("up: sideways"), &s))
	assert.Error(t, yaml.Unmarshal([]byte("up: [1, 2]"), &s))
}

func TestLevelValidate(t *testing.T) {
	base := func() LevelSpec {
		return LevelSpec{FaceSize: 100, Player: SpawnSpec{Face: "front"}}
	}

	s := base()
	assert.NoError(t, s.Validate())

	s = base()
	s.FaceSize = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)

	s = base()
	s.Player.Face = ""
	assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)

	s = base()
	s.Enemies = []EnemySpec{{Name: "blank"}}
	assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)

	s = base()
	s.Layout = []FaceLayoutSpec{{Name: "front"}}
	assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)
}

func TestCustomLayout(t *testing.T) {
	s := LevelSpec{FaceSize: 10, Player: SpawnSpec{Face: "a"}}
	def := cube.DefaultLayout()
	for _, f := range def {
		s.Layout = append(s.Layout, FaceLayoutSpec{
			Name:   f.Name,
			Normal: Vec3Spec{X: f.Normal.X(), Y: f.Normal.Y(), Z: f.Normal.Z()},
			Up:     Vec3Spec{X: f.Up.X(), Y: f.Up.Y(), Z: f.Up.Z()},
		})
	}
	s.Layout[4].Up = Vec3Spec{X: 1}

	layout, err := s.CubeLayout()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, layout[4].Up)
	assert.Equal(t, def[0], layout[0])
}

func TestWatchedName(t *testing.T) {
	name, ok := watchedName(filepath.Join("prefabs", "cube.yaml"))
	assert.True(t, ok)
	assert.Equal(t, "cube.yaml", name)
	assert.False(t, IsScript(name))

	name, ok = watchedName(filepath.Join("prefabs", "scripts", "patrol.tengo"))
	assert.True(t, ok)
	assert.Equal(t, "scripts/patrol.tengo", name)
	assert.True(t, IsScript(name))

	_, ok = watchedName("prefabs/notes.txt")
	assert.False(t, ok)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.yaml"), []byte("name: x\n"), 0o644))
	select {
	case name := <-w.Events:
		assert.Equal(t, "cube.yaml", name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for written file")
	}
}
