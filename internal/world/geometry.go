package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// ErrOutOfBounds is returned when a pixel position lies outside the world.
var ErrOutOfBounds = errors.New("world: position out of bounds")

// Point is a position in world pixels.
type Point struct {
	X, Y int
}

// Geometry describes the tile grid: its size in tiles and the pixel size of
// one tile (BaseTile scaled by Scale).
type Geometry struct {
	Cols     int
	Rows     int
	BaseTile int // Source tile size in pixels (e.g. 16)
	Scale    int // On-screen multiplier (e.g. 4)
}

// TilePx returns the on-screen size of a tile in pixels.
func (g Geometry) TilePx() int {
	return g.BaseTile * g.Scale
}

// Width returns the world width in pixels.
func (g Geometry) Width() int {
	return g.Cols * g.TilePx()
}

// Height returns the world height in pixels.
func (g Geometry) Height() int {
	return g.Rows * g.TilePx()
}

// Size returns the number of tiles in one layer.
func (g Geometry) Size() int {
	return g.Cols * g.Rows
}

// Validate checks that every dimension is positive.
func (g Geometry) Validate() error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("world: grid must be at least 1x1, got %dx%d", g.Cols, g.Rows)
	}
	if g.BaseTile <= 0 || g.Scale <= 0 {
		return fmt.Errorf("world: tile size must be positive, got base %d scale %d", g.BaseTile, g.Scale)
	}
	return nil
}

// Contains reports whether the pixel position lies inside the world.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// TileIndex converts a pixel position to a row-major tile index:
// floor(y/tile)*cols + floor(x/tile). Positions outside the world return
// ErrOutOfBounds.
func (g Geometry) TileIndex(x, y int) (int, error) {
	if !g.Contains(x, y) {
		return -1, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}
	tile := g.TilePx()
	return core.FloorDiv(y, tile)*g.Cols + core.FloorDiv(x, tile), nil
}

// TileCoord converts a tile index back to its column and row.
func (g Geometry) TileCoord(index int) (col, row int) {
	return index % g.Cols, index / g.Cols
}

// TileRect returns the tile's area in world pixels.
func (g Geometry) TileRect(col, row int) core.Rect {
	tile := g.TilePx()
	return core.NewRect(col*tile, row*tile, tile, tile)
}
