package tilewalk

import "github.com/vovakirdan/tilewalk/internal/world"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frames    uint64
	X, Y      int
	Facing    world.Direction
	AnimFrame int
	TileIndex int
	CameraX   int
	CameraY   int
	Explored  int
	Paused    bool
	Debug     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{TileIndex: -1}
	}
	p := g.world.Player()
	cam := g.world.Camera()
	return Snapshot{
		Frames:    g.world.Frames(),
		X:         p.X,
		Y:         p.Y,
		Facing:    p.Facing,
		AnimFrame: p.Frame,
		TileIndex: g.world.TileIndex(),
		CameraX:   cam.X,
		CameraY:   cam.Y,
		Explored:  len(g.explored),
		Paused:    g.paused,
		Debug:     g.world.Debug(),
	}
}
