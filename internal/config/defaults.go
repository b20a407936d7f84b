package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultFrameDelay matches the classic 80 ms SDL_Delay loop.
const DefaultFrameDelay = 80 * time.Millisecond

// DefaultWorldConfig returns the built-in world configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		FrameDelay: DefaultFrameDelay,
		Generation: GenerationConfig{
			Seed:    141,
			Density: 12,
			Ground:  []int{1, 2, 3},
			Props:   []int{4, 5, 6, 7},
		},
		Stages: map[string]StageConfig{
			StageWalk: {
				Title:      "Walk",
				Tiles:      TileConfig{Cols: 32, Rows: 24, Base: 20, Scale: 1},
				PlayerSize: 20,
				Step:       20,
				Spawn:      PointConfig{X: 55, Y: 55},
				Sprite:     SpriteConfig{Base: 16, Scale: 4},
			},
			StageScroll: {
				Title:      "Scroll",
				Tiles:      TileConfig{Cols: 80, Rows: 80, Base: 16, Scale: 4},
				PlayerSize: 64,
				Step:       10,
				Spawn:      PointConfig{X: 400, Y: 400},
				Sprite:     SpriteConfig{Base: 16, Scale: 4, Centered: true},
				Layers:     LayersConfig{Map: true},
			},
			StageWorld: {
				Title:      "World",
				Tiles:      TileConfig{Cols: 80, Rows: 80, Base: 16, Scale: 4},
				PlayerSize: 64,
				Step:       10,
				Spawn:      PointConfig{X: 400, Y: 400},
				Sprite:     SpriteConfig{Base: 16, Scale: 4, Centered: true},
				Layers:     LayersConfig{Map: true, Overlay: true},
			},
		},
		Theme: ThemeConfig{
			Background: Glyph{Char: " ", Color: "default"},
			Ground: map[int]Glyph{
				1: {Char: ".", Color: "green"},
				2: {Char: ",", Color: "bright_green"},
				3: {Char: "'", Color: "yellow"},
			},
			Props: map[int]Glyph{
				4: {Char: "♣", Color: "bright_green"},
				5: {Char: "▲", Color: "gray"},
				6: {Char: "≈", Color: "bright_blue"},
				7: {Char: "■", Color: "orange"},
			},
			Player: PlayerTheme{
				North: "▲△▲",
				South: "▼▽▼",
				East:  "▶▷▶",
				West:  "◀◁◀",
				None:  "●",
				Color: "bright_yellow",
			},
		},
	}
}
