package world

import "github.com/vovakirdan/tilewalk/internal/core"

// Sprite selects the player's sprite: Facing picks one of the four direction
// strips (see SpriteRow) and Frame the walk-cycle step within it.
type Sprite struct {
	Facing int
	Frame  int
}

// SheetLayout locates the player strips on a sprite sheet.
type SheetLayout struct {
	FirstCol int // Sheet column of the west-facing strip
	Cell     int // Cell size in source pixels
}

// DefaultSheet matches the packed 16px tilemap: player strips start at
// column 23, one column per facing, one row per walk frame.
var DefaultSheet = SheetLayout{FirstCol: 23, Cell: 16}

// Source returns the sprite's rectangle on the sheet.
func (s Sprite) Source(sheet SheetLayout) core.Rect {
	return core.NewRect((sheet.FirstCol+s.Facing)*sheet.Cell, s.Frame*sheet.Cell, sheet.Cell, sheet.Cell)
}

// TileCell is one visible grid cell with both layer identifiers.
type TileCell struct {
	Col, Row int
	Index    int
	Map      int
	Overlay  int       // 0 when empty
	Screen   core.Rect // Screen-space pixels
}

// Frame is everything a renderer needs to draw one frame. It is a value
// snapshot; renderers never touch State.
type Frame struct {
	Player    core.Rect // Screen-space sprite rectangle
	Sprite    Sprite
	Facing    Direction
	Position  Point // Player world position
	TileIndex int   // Tile under the player
	Tiles     []TileCell
	Camera    Camera
	WorldW    int
	WorldH    int
	TilePx    int
	Debug     bool
}

// Frame builds the render contract for the current state.
func (s *State) Frame() Frame {
	g := s.stage.Geometry
	size := s.stage.Sprite.Size()

	sx, sy := s.camera.ToScreen(s.player.X, s.player.Y)
	if s.stage.Sprite.Centered {
		sx -= size / 2
		sy -= size / 2
	}

	return Frame{
		Player:    core.NewRect(sx, sy, size, size),
		Sprite:    Sprite{Facing: SpriteRow(s.player.Facing), Frame: s.player.Frame},
		Facing:    s.player.Facing,
		Position:  s.player.Pos(),
		TileIndex: s.TileIndex(),
		Tiles:     s.visibleTiles(),
		Camera:    s.camera,
		WorldW:    g.Width(),
		WorldH:    g.Height(),
		TilePx:    g.TilePx(),
		Debug:     s.debug,
	}
}

// visibleTiles lists the cells intersecting the camera viewport.
func (s *State) visibleTiles() []TileCell {
	if s.mapLayer == nil && s.overlay == nil {
		return nil
	}

	g := s.stage.Geometry
	tile := g.TilePx()
	c0 := core.Clamp(core.FloorDiv(s.camera.X, tile), 0, g.Cols-1)
	r0 := core.Clamp(core.FloorDiv(s.camera.Y, tile), 0, g.Rows-1)
	c1 := core.Clamp(core.FloorDiv(s.camera.X+s.camera.W-1, tile), 0, g.Cols-1)
	r1 := core.Clamp(core.FloorDiv(s.camera.Y+s.camera.H-1, tile), 0, g.Rows-1)

	cells := make([]TileCell, 0, (c1-c0+1)*(r1-r0+1))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := TileCell{
				Col:    col,
				Row:    row,
				Index:  row*g.Cols + col,
				Screen: g.TileRect(col, row).Translate(-s.camera.X, -s.camera.Y),
			}
			if s.mapLayer != nil {
				cell.Map, _ = s.mapLayer.AtCell(col, row)
			}
			if s.overlay != nil {
				cell.Overlay, _ = s.overlay.AtCell(col, row)
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
