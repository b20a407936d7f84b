// Package world implements the tile world: layered tile grids, the overlay
// collision check, player motion and the follow camera. It is UI-agnostic and
// deterministic; renderers consume the Frame it produces.
package world

// Direction is the player's facing direction.
type Direction uint8

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the unit (dx, dy) step for this direction.
// North decreases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// SpriteRow maps a facing direction to its sprite-sheet offset.
// Sheet order is west, south, north, east. An idle player is drawn facing
// south.
func SpriteRow(d Direction) int {
	switch d {
	case DirWest:
		return 0
	case DirSouth:
		return 1
	case DirNorth:
		return 2
	case DirEast:
		return 3
	default:
		return 1
	}
}
