package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlayerFile is the prefab the player entity is built from.
const PlayerFile = "player.yaml"

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

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Velocity  VectorSpec    `yaml:"velocity"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
	Hitbox    HitboxSpec    `yaml:"hitbox"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

// Validate checks the fields the entity cannot work without.
func (s *PlayerSpec) Validate() error {
	if s.Sprite.Image == "" {
		return fmt.Errorf("sprite.image is required")
	}
	if s.Sprite.FrameW <= 0 || s.Sprite.FrameH <= 0 {
		return fmt.Errorf("sprite frame size must be positive, got %dx%d", s.Sprite.FrameW, s.Sprite.FrameH)
	}
	if s.Animation.FrameDuration <= 0 {
		return fmt.Errorf("animation.frame_duration must be positive")
	}
	for _, dir := range []string{"down", "left", "right", "up"} {
		if _, ok := s.Animation.Walk[dir]; !ok {
			return fmt.Errorf("animation.walk.%s is missing", dir)
		}
	}
	return nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SpriteSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
}

type AnimationSpec struct {
	FrameDuration float64                     `yaml:"frame_duration"`
	Loop          bool                        `yaml:"loop"`
	Walk          map[string]AnimationDefSpec `yaml:"walk"`
}

type AnimationDefSpec struct {
	Row        int `yaml:"row"`
	FrameCount int `yaml:"frame_count"`
}

// HitboxSpec shrinks the sprite frame into a collision box. Reductions are
// fractions of the frame size; values outside (0,1) keep the full frame.
type HitboxSpec struct {
	WidthReduction  float64   `yaml:"width_reduction"`
	HeightReduction float64   `yaml:"height_reduction"`
	DebugColor      YAMLColor `yaml:"debug_color"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
