package tilewalk

import (
	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// Fallback glyphs for tile ids missing from the theme.
var (
	unknownGround = core.Cell{Rune: '?', Color: core.ColorGray}
	unknownProp   = core.Cell{Rune: '#', Color: core.ColorWhite}
)

// Theme is a resolved glyph theme.
type Theme struct {
	Background  core.Cell
	Ground      map[int]core.Cell
	Props       map[int]core.Cell
	Player      map[world.Direction][]rune
	PlayerColor core.Color
}

// NewTheme resolves color names and glyph strings. The config is expected
// to be validated; unknown colors fall back to the default color.
func NewTheme(tc config.ThemeConfig) Theme {
	t := Theme{
		Background: glyphCell(tc.Background),
		Ground:     make(map[int]core.Cell, len(tc.Ground)),
		Props:      make(map[int]core.Cell, len(tc.Props)),
		Player: map[world.Direction][]rune{
			world.DirNorth: []rune(tc.Player.North),
			world.DirSouth: []rune(tc.Player.South),
			world.DirEast:  []rune(tc.Player.East),
			world.DirWest:  []rune(tc.Player.West),
			world.DirNone:  []rune(tc.Player.None),
		},
	}
	t.PlayerColor, _ = core.ParseColor(tc.Player.Color)

	for id, g := range tc.Ground {
		t.Ground[id] = glyphCell(g)
	}
	for id, g := range tc.Props {
		t.Props[id] = glyphCell(g)
	}
	return t
}

func glyphCell(g config.Glyph) core.Cell {
	c, _ := core.ParseColor(g.Color)
	r := ' '
	if rs := []rune(g.Char); len(rs) > 0 {
		r = rs[0]
	}
	return core.Cell{Rune: r, Color: c}
}

// TileCell returns the glyph for a grid cell: a prop when the overlay is
// set, otherwise the ground tile, otherwise the background.
func (t Theme) TileCell(tc world.TileCell) core.Cell {
	if tc.Overlay != 0 {
		if c, ok := t.Props[tc.Overlay]; ok {
			return c
		}
		return unknownProp
	}
	if tc.Map == 0 {
		return t.Background
	}
	if c, ok := t.Ground[tc.Map]; ok {
		return c
	}
	return unknownGround
}

// PlayerCell returns the player glyph for a facing and walk frame.
func (t Theme) PlayerCell(facing world.Direction, frame int) core.Cell {
	glyphs := t.Player[facing]
	if len(glyphs) == 0 {
		glyphs = t.Player[world.DirNone]
	}
	if len(glyphs) == 0 {
		return core.Cell{Rune: '@', Color: t.PlayerColor}
	}
	return core.Cell{Rune: glyphs[frame%len(glyphs)], Color: t.PlayerColor}
}
