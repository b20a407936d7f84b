package world

import "fmt"

// Layer is a fixed-size grid of tile identifiers stored in row-major order:
// index = row*cols + col. Zero means "no tile". A Layer cannot be modified
// once built.
type Layer struct {
	cols  int
	rows  int
	tiles []int
}

func newLayer(cols, rows int) *Layer {
	return &Layer{
		cols:  cols,
		rows:  rows,
		tiles: make([]int, cols*rows),
	}
}

// NewLayer builds a layer from a flat row-major slice. The slice is copied.
func NewLayer(cols, rows int, tiles []int) (*Layer, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("world: layer must be at least 1x1, got %dx%d", cols, rows)
	}
	if len(tiles) != cols*rows {
		return nil, fmt.Errorf("world: layer %dx%d needs %d tiles, got %d", cols, rows, cols*rows, len(tiles))
	}
	l := newLayer(cols, rows)
	copy(l.tiles, tiles)
	return l, nil
}

// LayerFromRows builds a layer from a slice of equal-length rows.
func LayerFromRows(rows [][]int) (*Layer, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: layer has no rows")
	}
	cols := len(rows[0])
	flat := make([]int, 0, cols*len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("world: row %d has %d tiles, expected %d", y, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return NewLayer(cols, len(rows), flat)
}

// Cols returns the layer width in tiles.
func (l *Layer) Cols() int { return l.cols }

// Rows returns the layer height in tiles.
func (l *Layer) Rows() int { return l.rows }

// Len returns the number of tiles.
func (l *Layer) Len() int { return len(l.tiles) }

// At returns the tile at a flat index. ok is false when the index is outside
// the layer.
func (l *Layer) At(index int) (id int, ok bool) {
	if index < 0 || index >= len(l.tiles) {
		return 0, false
	}
	return l.tiles[index], true
}

// AtCell returns the tile at (col, row).
func (l *Layer) AtCell(col, row int) (id int, ok bool) {
	if col < 0 || col >= l.cols || row < 0 || row >= l.rows {
		return 0, false
	}
	return l.tiles[row*l.cols+col], true
}

// NonZero returns the number of occupied tiles.
func (l *Layer) NonZero() int {
	n := 0
	for _, id := range l.tiles {
		if id != 0 {
			n++
		}
	}
	return n
}

// Equal reports whether two layers have the same size and contents.
func (l *Layer) Equal(other *Layer) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.cols != other.cols || l.rows != other.rows {
		return false
	}
	for i, id := range l.tiles {
		if id != other.tiles[i] {
			return false
		}
	}
	return true
}

// Grid returns a copy of the layer as a slice of rows.
func (l *Layer) Grid() [][]int {
	out := make([][]int, l.rows)
	for y := range out {
		out[y] = append([]int(nil), l.tiles[y*l.cols:(y+1)*l.cols]...)
	}
	return out
}

// fits reports whether the layer matches the geometry's grid size.
func (l *Layer) fits(g Geometry) bool {
	return l.cols == g.Cols && l.rows == g.Rows
}
