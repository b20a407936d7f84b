package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// ErrUnknownStage is returned by Stage for ids not in the config.
var ErrUnknownStage = errors.New("config: unknown stage")

// LoadWorld loads the world configuration.
// Search order: customPath -> ~/.tilewalk/configs/world.yaml -> ./configs/world.yaml -> embedded default
func LoadWorld(customPath string) (WorldConfig, error) {
	// Try custom path first; failures here are fatal
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WorldConfig{}, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return WorldConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("world.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "world.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWorldYAML)
	if err != nil {
		return DefaultWorldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes world.yaml on top of the built-in defaults and validates the
// result. Keys missing from data keep their default values; a stage block
// only overrides the keys it sets, a ground or props palette replaces the
// default palette.
func Parse(data []byte) (WorldConfig, error) {
	var probe struct {
		Stages map[string]yaml.Node `yaml:"stages"`
		Theme  struct {
			Ground map[int]yaml.Node `yaml:"ground"`
			Props  map[int]yaml.Node `yaml:"props"`
		} `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return WorldConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	cfg := DefaultWorldConfig()
	stages := cfg.Stages
	cfg.Stages = nil
	if probe.Theme.Ground != nil {
		cfg.Theme.Ground = nil
	}
	if probe.Theme.Props != nil {
		cfg.Theme.Props = nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	for id, node := range probe.Stages {
		st := stages[id]
		if err := node.Decode(&st); err != nil {
			return WorldConfig{}, fmt.Errorf("yaml unmarshal: stage %s: %w", id, err)
		}
		stages[id] = st
	}
	cfg.Stages = stages

	if err := cfg.Validate(); err != nil {
		return WorldConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilewalk", "configs", filename)
}

// Validate checks sizes, palettes and spawn points.
func (c WorldConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("config: negative frame_delay %s", c.FrameDelay)
	}
	if err := c.Generation.validate("generation"); err != nil {
		return err
	}
	for _, id := range StageIDs {
		st, ok := c.Stages[id]
		if !ok {
			return fmt.Errorf("config: missing stage %q", id)
		}
		if err := st.validate(id); err != nil {
			return err
		}
	}
	return c.Theme.validate()
}

func (g GenerationConfig) validate(where string) error {
	if len(g.Ground) == 0 {
		return fmt.Errorf("config: %s: ground palette is empty", where)
	}
	if g.Density < 0 || g.Density > 100 {
		return fmt.Errorf("config: %s: density %d not in 0..100", where, g.Density)
	}
	if g.Density > 0 && len(g.Props) == 0 {
		return fmt.Errorf("config: %s: density %d with an empty props palette", where, g.Density)
	}
	return nil
}

func (s StageConfig) validate(id string) error {
	t := s.Tiles
	if t.Cols <= 0 || t.Rows <= 0 || t.Base <= 0 || t.Scale <= 0 {
		return fmt.Errorf("config: stage %s: tiles must be positive, got %+v", id, t)
	}
	w, h := t.Cols*t.Base*t.Scale, t.Rows*t.Base*t.Scale
	if s.PlayerSize <= 0 || s.PlayerSize > w || s.PlayerSize > h {
		return fmt.Errorf("config: stage %s: player_size %d does not fit %dx%d", id, s.PlayerSize, w, h)
	}
	if s.Step <= 0 {
		return fmt.Errorf("config: stage %s: step must be positive", id)
	}
	if s.Spawn.X < 0 || s.Spawn.Y < 0 || s.Spawn.X >= w || s.Spawn.Y >= h {
		return fmt.Errorf("config: stage %s: spawn (%d,%d) outside %dx%d world", id, s.Spawn.X, s.Spawn.Y, w, h)
	}
	if s.Sprite.Base <= 0 || s.Sprite.Scale <= 0 {
		return fmt.Errorf("config: stage %s: sprite must be positive", id)
	}
	if s.Layers.Overlay && !s.Layers.Map {
		return fmt.Errorf("config: stage %s: overlay layer needs a map layer", id)
	}
	if s.Generation != nil {
		return s.Generation.validate("stage " + id + " generation")
	}
	return nil
}

func (t ThemeConfig) validate() error {
	if err := t.Background.validate("background"); err != nil {
		return err
	}
	for id, g := range t.Ground {
		if err := g.validate(fmt.Sprintf("ground %d", id)); err != nil {
			return err
		}
	}
	for id, g := range t.Props {
		if err := g.validate(fmt.Sprintf("prop %d", id)); err != nil {
			return err
		}
	}
	p := t.Player
	for name, glyphs := range map[string]string{
		"north": p.North, "south": p.South, "east": p.East, "west": p.West, "none": p.None,
	} {
		if glyphs == "" {
			return fmt.Errorf("config: theme: player %s glyphs are empty", name)
		}
	}
	if _, ok := core.ParseColor(p.Color); !ok {
		return fmt.Errorf("config: theme: player: unknown color %q", p.Color)
	}
	return nil
}

func (g Glyph) validate(where string) error {
	if len([]rune(g.Char)) != 1 {
		return fmt.Errorf("config: theme: %s: char must be a single rune, got %q", where, g.Char)
	}
	if _, ok := core.ParseColor(g.Color); !ok {
		return fmt.Errorf("config: theme: %s: unknown color %q", where, g.Color)
	}
	return nil
}

// Stage returns a deep copy of the named stage with its generation block
// resolved against the root one. The copy shares no slices with c.
func (c WorldConfig) Stage(id string) (StageConfig, error) {
	base, ok := c.Stages[id]
	if !ok {
		return StageConfig{}, fmt.Errorf("%w: %s", ErrUnknownStage, id)
	}

	var st StageConfig
	if err := copier.CopyWithOption(&st, &base, copier.Option{DeepCopy: true}); err != nil {
		return StageConfig{}, fmt.Errorf("config: copying stage %s: %w", id, err)
	}
	if st.Generation == nil {
		gen := new(GenerationConfig)
		if err := copier.CopyWithOption(gen, &c.Generation, copier.Option{DeepCopy: true}); err != nil {
			return StageConfig{}, fmt.Errorf("config: copying generation: %w", err)
		}
		st.Generation = gen
	}
	return st, nil
}

// WithSeed returns a copy of the stage whose generation seed is seed.
// A zero seed leaves the configured one.
func (s StageConfig) WithSeed(seed int64) StageConfig {
	if seed == 0 || s.Generation == nil {
		return s
	}
	gen := *s.Generation
	gen.Ground = append([]int(nil), s.Generation.Ground...)
	gen.Props = append([]int(nil), s.Generation.Props...)
	gen.Seed = seed
	s.Generation = &gen
	return s
}
