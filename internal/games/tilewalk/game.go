// Package tilewalk runs the tile-world stages on the platform: a player
// walking a fixed screen, a scrolling tile map, and a tile map with
// collision props.
package tilewalk

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/world"
	"github.com/vovakirdan/tilewalk/internal/world/maps"
)

var titles = map[string]string{
	config.StageWalk:   "Walk",
	config.StageScroll: "Scroll",
	config.StageWorld:  "World",
}

// Package-level settings applied by the CLI before games are created.
var (
	worldConfig *config.WorldConfig
	customMap   *maps.Map
	logger      = log.New(io.Discard)
)

// SetConfig sets the world configuration used by every new game.
func SetConfig(cfg config.WorldConfig) {
	worldConfig = &cfg
}

// SetMap replaces generated layers with a loaded map. nil restores generation.
func SetMap(m *maps.Map) {
	customMap = m
}

// SetLogger sets the logger for stage events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// currentConfig returns the configured world, loading the default search
// path when the CLI did not set one.
func currentConfig() config.WorldConfig {
	if worldConfig != nil {
		return *worldConfig
	}
	cfg, err := config.LoadWorld("")
	if err != nil {
		return config.DefaultWorldConfig()
	}
	return cfg
}

// Game adapts a world stage to the platform.
type Game struct {
	id         string
	world      *world.State
	theme      Theme
	title      string
	frameDelay time.Duration
	explored   map[int]struct{}
	lastTile   int
	paused     bool
	err        error // Build failure, shown instead of the world
}

// New creates the game for a stage id.
func New(id string) *Game {
	title, ok := titles[id]
	if !ok {
		title = id
	}
	return &Game{id: id, title: title}
}

func init() {
	for _, id := range config.StageIDs {
		id := id
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// ID returns the stage identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// FrameDelay returns the configured delay between frames.
func (g *Game) FrameDelay() time.Duration {
	return g.frameDelay
}

// Reset builds the world. The runtime seed overrides the configured one
// when non-zero.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	wc := currentConfig()

	g.theme = NewTheme(wc.Theme)
	g.frameDelay = wc.FrameDelay
	g.explored = make(map[int]struct{})
	g.paused = false
	g.lastTile = -1
	if st, ok := wc.Stages[g.id]; ok && st.Title != "" {
		g.title = st.Title
	}

	g.world, g.err = BuildWorld(wc, g.id, customMap, cfg.Seed)
	if g.err != nil {
		logger.Error("stage build failed", "stage", g.id, "err", g.err)
		return
	}

	stage := g.world.Stage()
	logger.Info("stage reset",
		"stage", g.id,
		"world", [2]int{stage.Geometry.Width(), stage.Geometry.Height()},
		"layers", g.world.MapLayer() != nil,
		"collision", g.world.Overlay() != nil,
		"seed", cfg.Seed,
	)
	g.visit()
}

// Step advances the world by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.world.ToggleDebug()
		logger.Debug("debug overlay", "stage", g.id, "on", g.world.Debug())
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(world.Input{
		North: in.Has(core.ActionUp),
		South: in.Has(core.ActionDown),
		East:  in.Has(core.ActionRight),
		West:  in.Has(core.ActionLeft),
	})
	g.visit()

	return core.StepResult{State: g.State()}
}

// visit records the tile under the player.
func (g *Game) visit() {
	idx := g.world.TileIndex()
	if idx < 0 || idx == g.lastTile {
		return
	}
	g.lastTile = idx
	if _, seen := g.explored[idx]; !seen {
		g.explored[idx] = struct{}{}
		logger.Debug("tile explored", "stage", g.id, "tile", idx, "explored", len(g.explored))
	}
}

// State returns the current game state. The score is the number of
// distinct tiles the player has stood on.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  len(g.explored),
		Paused: g.paused,
	}
}

// Frame returns the render contract for the current frame.
func (g *Game) Frame() (world.Frame, bool) {
	if g.world == nil {
		return world.Frame{}, false
	}
	return g.world.Frame(), true
}

// Err returns the error from the last Reset, if the world failed to build.
func (g *Game) Err() error {
	return g.err
}
