package world

import (
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// SpriteSpec describes the player's sprite cell: BaseSize source pixels drawn
// Scale times larger.
type SpriteSpec struct {
	BaseSize int
	Scale    int
	Centered bool // Draw centered on the player position instead of at its top-left
}

// Size returns the on-screen sprite size in pixels.
func (s SpriteSpec) Size() int {
	return s.BaseSize * s.Scale
}

// Stage holds the fixed parameters of one world.
type Stage struct {
	Geometry   Geometry
	ScreenW    int // Camera width in pixels
	ScreenH    int // Camera height in pixels
	PlayerSize int // Collision/clamp size in pixels
	Step       int // Pixels moved per frame per held direction
	Spawn      Point
	Sprite     SpriteSpec
}

// Validate checks the stage parameters.
func (st Stage) Validate() error {
	if err := st.Geometry.Validate(); err != nil {
		return err
	}
	if st.ScreenW <= 0 || st.ScreenH <= 0 {
		return fmt.Errorf("world: screen must be positive, got %dx%d", st.ScreenW, st.ScreenH)
	}
	if st.PlayerSize <= 0 || st.PlayerSize > st.Geometry.Width() || st.PlayerSize > st.Geometry.Height() {
		return fmt.Errorf("world: player size %d does not fit a %dx%d world",
			st.PlayerSize, st.Geometry.Width(), st.Geometry.Height())
	}
	if st.Step <= 0 {
		return fmt.Errorf("world: step must be positive, got %d", st.Step)
	}
	return nil
}

// State is the complete world simulation. It is owned by a single frame loop
// and is not safe for concurrent use.
type State struct {
	stage    Stage
	mapLayer *Layer // Background; nil when the stage has no tiles
	overlay  *Layer // Foreground and collision mask; nil when nothing blocks
	player   Player
	camera   Camera
	debug    bool
	frames   uint64
}

// New creates a world. Either layer may be nil; a non-nil layer must match
// the stage geometry. The spawn point is clamped into the world.
func New(stage Stage, mapLayer, overlay *Layer) (*State, error) {
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	if mapLayer != nil && !mapLayer.fits(stage.Geometry) {
		return nil, fmt.Errorf("world: map layer is %dx%d, stage grid is %dx%d",
			mapLayer.Cols(), mapLayer.Rows(), stage.Geometry.Cols, stage.Geometry.Rows)
	}
	if overlay != nil && !overlay.fits(stage.Geometry) {
		return nil, fmt.Errorf("world: overlay layer is %dx%d, stage grid is %dx%d",
			overlay.Cols(), overlay.Rows(), stage.Geometry.Cols, stage.Geometry.Rows)
	}

	s := &State{
		stage:    stage,
		mapLayer: mapLayer,
		overlay:  overlay,
		camera:   Camera{W: stage.ScreenW, H: stage.ScreenH},
	}
	s.player = Player{
		X: core.Clamp(stage.Spawn.X, 0, s.maxX()),
		Y: core.Clamp(stage.Spawn.Y, 0, s.maxY()),
	}
	s.updateCamera()
	return s, nil
}

func (s *State) maxX() int { return s.stage.Geometry.Width() - s.stage.PlayerSize }
func (s *State) maxY() int { return s.stage.Geometry.Height() - s.stage.PlayerSize }

// Step advances one frame: player motion (with collision), then the camera.
func (s *State) Step(in Input) {
	s.frames++
	s.move(in)
	s.updateCamera()
}

func (s *State) updateCamera() {
	s.camera.Follow(s.player.X, s.player.Y, s.stage.Geometry.Width(), s.stage.Geometry.Height())
}

// Blocked reports whether the overlay tile under (x, y) is non-zero.
// Positions outside the world are never blocked; motion clamps them back.
func (s *State) Blocked(x, y int) bool {
	if s.overlay == nil {
		return false
	}
	idx, err := s.stage.Geometry.TileIndex(x, y)
	if err != nil {
		return false
	}
	id, _ := s.overlay.At(idx)
	return id != 0
}

// TileIndex returns the tile under the player.
func (s *State) TileIndex() int {
	idx, err := s.stage.Geometry.TileIndex(s.player.X, s.player.Y)
	if err != nil {
		// Unreachable while the player invariant holds.
		return -1
	}
	return idx
}

// Player returns a copy of the player.
func (s *State) Player() Player { return s.player }

// Camera returns a copy of the camera.
func (s *State) Camera() Camera { return s.camera }

// Stage returns the stage parameters.
func (s *State) Stage() Stage { return s.stage }

// MapLayer returns the background layer, or nil.
func (s *State) MapLayer() *Layer { return s.mapLayer }

// Overlay returns the overlay layer, or nil.
func (s *State) Overlay() *Layer { return s.overlay }

// Frames returns the number of steps taken.
func (s *State) Frames() uint64 { return s.frames }

// Debug reports whether the debug overlay is on.
func (s *State) Debug() bool { return s.debug }

// ToggleDebug flips the debug overlay.
func (s *State) ToggleDebug() { s.debug = !s.debug }
