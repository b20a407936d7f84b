package world

import "github.com/vovakirdan/tilewalk/internal/core"

// AnimFrames is the number of walk-cycle frames per direction.
const AnimFrames = 3

// Player is the walking character. X and Y are world pixels.
type Player struct {
	X, Y   int
	Facing Direction
	Frame  int // Walk-cycle frame, 0..AnimFrames-1
}

// Pos returns the player's position.
func (p Player) Pos() Point {
	return Point{X: p.X, Y: p.Y}
}

// Input is the directional key state sampled once per frame.
type Input struct {
	North, South, East, West bool
}

// Any reports whether any direction is held.
func (in Input) Any() bool {
	return in.North || in.South || in.East || in.West
}

// axisMove describes one directional branch of the motion rule.
type axisMove struct {
	held func(Input) bool
	dir  Direction
}

// moveOrder is the order directional inputs are applied in. Later branches
// overwrite the facing set by earlier ones.
var moveOrder = []axisMove{
	{func(in Input) bool { return in.East }, DirEast},
	{func(in Input) bool { return in.West }, DirWest},
	{func(in Input) bool { return in.North }, DirNorth},
	{func(in Input) bool { return in.South }, DirSouth},
}

// move applies one frame of input to the player.
// Each held direction moves its axis by step; a move whose new position is
// blocked is undone, then the axis is clamped into the world.
func (s *State) move(in Input) {
	p := &s.player
	step := s.stage.Step
	maxX := s.stage.Geometry.Width() - s.stage.PlayerSize
	maxY := s.stage.Geometry.Height() - s.stage.PlayerSize

	for _, m := range moveOrder {
		if !m.held(in) {
			continue
		}
		p.Facing = m.dir
		dx, dy := m.dir.Delta()

		if dx != 0 {
			prev := p.X
			p.X += dx * step
			if s.Blocked(p.X, p.Y) {
				p.X = prev
			}
			p.X = core.Clamp(p.X, 0, maxX)
		} else {
			prev := p.Y
			p.Y += dy * step
			if s.Blocked(p.X, p.Y) {
				p.Y = prev
			}
			p.Y = core.Clamp(p.Y, 0, maxY)
		}
	}

	if in.Any() {
		p.Frame = (p.Frame + 1) % AnimFrames
	} else {
		p.Frame = 0
		p.Facing = DirNone
	}
}
