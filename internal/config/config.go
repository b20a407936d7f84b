// Package config provides YAML-based world configuration loading for the
// tile-walk stages.
package config

import "time"

// Stage identifiers.
const (
	StageWalk   = "walk"
	StageScroll = "scroll"
	StageWorld  = "world"
)

// StageIDs lists the stages in play order.
var StageIDs = []string{StageWalk, StageScroll, StageWorld}

// WorldConfig is the root of world.yaml.
type WorldConfig struct {
	Screen     ScreenConfig           `yaml:"screen"`
	FrameDelay time.Duration          `yaml:"frame_delay"`
	Generation GenerationConfig       `yaml:"generation"`
	Stages     map[string]StageConfig `yaml:"stages"`
	Theme      ThemeConfig            `yaml:"theme"`
}

// ScreenConfig is the virtual screen in pixels. The camera is this size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GenerationConfig controls seeded world generation.
type GenerationConfig struct {
	Seed    int64 `yaml:"seed"`
	Density int   `yaml:"density"` // Percent of tiles that get a prop
	Ground  []int `yaml:"ground"`  // Map layer tile ids
	Props   []int `yaml:"props"`   // Overlay tile ids, all blocking
}

// StageConfig defines one stage.
type StageConfig struct {
	Title      string            `yaml:"title"`
	Tiles      TileConfig        `yaml:"tiles"`
	PlayerSize int               `yaml:"player_size"`
	Step       int               `yaml:"step"`
	Spawn      PointConfig       `yaml:"spawn"`
	Sprite     SpriteConfig      `yaml:"sprite"`
	Layers     LayersConfig      `yaml:"layers"`
	Generation *GenerationConfig `yaml:"generation,omitempty"` // Overrides the root generation block
}

// TileConfig is the tile grid geometry.
type TileConfig struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Base  int `yaml:"base"`  // Source tile size in pixels
	Scale int `yaml:"scale"` // Drawn tile size = base * scale
}

// PointConfig is a pixel position.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpriteConfig is the player sprite cell.
type SpriteConfig struct {
	Base     int  `yaml:"base"`
	Scale    int  `yaml:"scale"`
	Centered bool `yaml:"centered"`
}

// LayersConfig selects which layers a stage has.
type LayersConfig struct {
	Map     bool `yaml:"map"`
	Overlay bool `yaml:"overlay"` // Overlay tiles block movement
}

// ThemeConfig maps tile ids to terminal glyphs.
type ThemeConfig struct {
	Background Glyph         `yaml:"background"` // Cells with no map tile
	Ground     map[int]Glyph `yaml:"ground"`
	Props      map[int]Glyph `yaml:"props"`
	Player     PlayerTheme   `yaml:"player"`
}

// Glyph is a single rune with a color name.
type Glyph struct {
	Char  string `yaml:"char"`
	Color string `yaml:"color"`
}

// PlayerTheme holds one glyph string per facing; each rune is an animation
// frame.
type PlayerTheme struct {
	North string `yaml:"north"`
	South string `yaml:"south"`
	East  string `yaml:"east"`
	West  string `yaml:"west"`
	None  string `yaml:"none"`
	Color string `yaml:"color"`
}
