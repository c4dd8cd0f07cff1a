package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubescroller/cube"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LevelSpec is a whole cube: its geometry, physics tuning and everything
// placed on it.
type LevelSpec struct {
	Name       string              `yaml:"name"`
	FaceSize   float64             `yaml:"face_size"`
	Gravity    float64             `yaml:"gravity"`
	Iterations int                 `yaml:"iterations"`
	Damping    float64             `yaml:"damping"`
	Layout     []FaceLayoutSpec    `yaml:"layout"`
	Player     SpawnSpec           `yaml:"player"`
	Faces      map[string]FaceSpec `yaml:"faces"`
	Crates     []CrateSpec         `yaml:"crates"`
	Enemies    []EnemySpec         `yaml:"enemies"`
}

// FaceLayoutSpec overrides the orientation of one face.
type FaceLayoutSpec struct {
	Name   string   `yaml:"name"`
	Normal Vec3Spec `yaml:"normal"`
	Up     Vec3Spec `yaml:"up"`
}

// FaceSpec is the static content of one face.
type FaceSpec struct {
	Solids []SolidSpec `yaml:"solids"`
}

// SolidSpec is a static box in face pixels, top-left anchored.
type SolidSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Friction float64 `yaml:"friction"`
}

// SpawnSpec places a mover by cube coordinates.
type SpawnSpec struct {
	Face     string        `yaml:"face"`
	Position Vec3Spec      `yaml:"position"`
	Up       YAMLDirection `yaml:"up"`
}

type CrateSpec struct {
	SpawnSpec `yaml:",inline"`
	Size      float64 `yaml:"size"`
	Mass      float64 `yaml:"mass"`
	Friction  float64 `yaml:"friction"`
}

type EnemySpec struct {
	SpawnSpec `yaml:",inline"`
	Name      string  `yaml:"name"`
	Script    string  `yaml:"script"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// PlayerSpec tunes the player body and controller.
type PlayerSpec struct {
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	MoveSpeed     float64 `yaml:"move_speed"`
	AirControl    float64 `yaml:"air_control"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	JumpBuffer    int     `yaml:"jump_buffer_frames"`
	FireCooldown  int     `yaml:"fire_cooldown_frames"`
	ShotSpeed     float64 `yaml:"shot_speed"`
	ShotRadius    float64 `yaml:"shot_radius"`
	ShotTTLFrames int     `yaml:"shot_ttl_frames"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CubeLayout returns the configured face orientations, or the default
// cross layout when none are given.
func (s *LevelSpec) CubeLayout() (cube.Layout, error) {
	if len(s.Layout) == 0 {
		return cube.DefaultLayout(), nil
	}
	var layout cube.Layout
	if len(s.Layout) != len(layout) {
		return layout, fmt.Errorf("%w: layout has %d faces, want %d", ErrInvalidSpec, len(s.Layout), len(layout))
	}
	for i, f := range s.Layout {
		layout[i] = cube.FaceSpec{Name: f.Name, Normal: f.Normal.Vec3(), Up: f.Up.Vec3()}
	}
	return layout, nil
}

// Validate checks the fields a level cannot run without.
func (s *LevelSpec) Validate() error {
	if s.FaceSize <= 0 {
		return fmt.Errorf("%w: face_size must be positive", ErrInvalidSpec)
	}
	if s.Player.Face == "" {
		return fmt.Errorf("%w: player face is required", ErrInvalidSpec)
	}
	for i, e := range s.Enemies {
		if strings.TrimSpace(e.Script) == "" {
			return fmt.Errorf("%w: enemy %d has no script", ErrInvalidSpec, i)
		}
	}
	if _, err := s.CubeLayout(); err != nil {
		return err
	}
	return nil
}

// YAMLDirection reads a compass name such as "north" or "W".
type YAMLDirection struct {
	cube.Direction
}

func (d *YAMLDirection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("direction must be a string")
	}
	dir, err := cube.ParseDirection(value.Value)
	if err != nil {
		return err
	}
	d.Direction = dir
	return nil
}
