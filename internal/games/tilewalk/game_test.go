package tilewalk

import (
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/world"
	"github.com/vovakirdan/tilewalk/internal/world/maps"
)

func TestMain(m *testing.M) {
	SetConfig(config.DefaultWorldConfig())
	os.Exit(m.Run())
}

func newGame(t *testing.T, id string) *Game {
	t.Helper()
	g := New(id)
	g.Reset(core.DefaultConfig())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset(%s): %v", id, err)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestStagesRegistered(t *testing.T) {
	var ids []string
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	want := []string{"walk", "scroll", "world"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("registered stages = %v, want %v", ids, want)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, config.StageWorld)
	g2 := newGame(t, config.StageWorld)

	script := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}
	for i := 0; i < 400; i++ {
		in := press(script[(i/25)%len(script)])
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestWalkStageMovesTwentyPixels(t *testing.T) {
	g := newGame(t, config.StageWalk)

	snap := g.Snapshot()
	if snap.X != 55 || snap.Y != 55 {
		t.Fatalf("spawn = (%d,%d), want (55,55)", snap.X, snap.Y)
	}
	if snap.TileIndex != 2*32+2 {
		t.Errorf("spawn tile = %d, want 66", snap.TileIndex)
	}

	g.Step(press(core.ActionRight))
	snap = g.Snapshot()
	if snap.X != 75 || snap.Y != 55 {
		t.Errorf("after right: (%d,%d), want (75,55)", snap.X, snap.Y)
	}
	if snap.Facing != world.DirEast || snap.AnimFrame != 1 {
		t.Errorf("facing %v frame %d, want east frame 1", snap.Facing, snap.AnimFrame)
	}
	if got := g.State().Score; got != 2 {
		t.Errorf("explored = %d, want 2", got)
	}
}

func TestWalkStageClampsToScreen(t *testing.T) {
	g := newGame(t, config.StageWalk)

	for i := 0; i < 50; i++ {
		g.Step(press(core.ActionRight, core.ActionDown))
	}
	snap := g.Snapshot()
	if snap.X != 620 || snap.Y != 460 {
		t.Errorf("position = (%d,%d), want (620,460)", snap.X, snap.Y)
	}
	if snap.CameraX != 0 || snap.CameraY != 0 {
		t.Errorf("camera moved on a screen-sized world: (%d,%d)", snap.CameraX, snap.CameraY)
	}

	for i := 0; i < 50; i++ {
		g.Step(press(core.ActionLeft, core.ActionUp))
	}
	snap = g.Snapshot()
	if snap.X != 0 || snap.Y != 0 {
		t.Errorf("position = (%d,%d), want (0,0)", snap.X, snap.Y)
	}
}

func TestIdleFrameResetsAnimation(t *testing.T) {
	g := newGame(t, config.StageScroll)

	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionDown))
	if s := g.Snapshot(); s.AnimFrame != 2 || s.Facing != world.DirSouth {
		t.Fatalf("walking: %+v", s)
	}

	g.Step(core.NewInputFrame())
	if s := g.Snapshot(); s.AnimFrame != 0 || s.Facing != world.DirNone {
		t.Errorf("idle: frame %d facing %v, want 0 and none", s.AnimFrame, s.Facing)
	}
}

func TestScrollCameraFollows(t *testing.T) {
	g := newGame(t, config.StageScroll)

	s := g.Snapshot()
	if s.CameraX != 80 || s.CameraY != 160 {
		t.Errorf("camera = (%d,%d), want (80,160)", s.CameraX, s.CameraY)
	}

	g.Step(press(core.ActionRight))
	s = g.Snapshot()
	if s.X != 410 || s.CameraX != 90 {
		t.Errorf("x=%d cam=%d, want 410 and 90", s.X, s.CameraX)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newGame(t, config.StageScroll)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not toggle")
	}
	before := g.Snapshot()
	g.Step(press(core.ActionRight))
	after := g.Snapshot()
	if before.X != after.X || before.Frames != after.Frames {
		t.Error("world advanced while paused")
	}

	g.Step(press(core.ActionPause, core.ActionRight))
	if g.State().Paused {
		t.Error("pause did not toggle back")
	}
	if g.Snapshot().X != before.X+10 {
		t.Error("unpause frame should also move")
	}
}

func TestDebugToggle(t *testing.T) {
	g := newGame(t, config.StageWorld)

	g.Step(press(core.ActionDebug))
	if !g.Snapshot().Debug {
		t.Fatal("debug not enabled")
	}
	f, ok := g.Frame()
	if !ok || !f.Debug {
		t.Error("frame does not carry the debug flag")
	}

	g.Step(press(core.ActionDebug))
	if g.Snapshot().Debug {
		t.Error("debug not disabled")
	}
}

func TestSeedOverride(t *testing.T) {
	a := New(config.StageWorld)
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	b := New(config.StageWorld)
	b.Reset(core.DefaultConfig())

	if a.world.Overlay().Equal(b.world.Overlay()) {
		t.Error("seed 7 produced the same overlay as the configured seed")
	}
}

func TestBuildWorldLayers(t *testing.T) {
	wc := config.DefaultWorldConfig()

	tests := []struct {
		id        string
		hasMap    bool
		collision bool
	}{
		{config.StageWalk, false, false},
		{config.StageScroll, true, false},
		{config.StageWorld, true, true},
	}

	for _, tt := range tests {
		w, err := BuildWorld(wc, tt.id, nil, 0)
		if err != nil {
			t.Fatalf("%s: %v", tt.id, err)
		}
		if (w.MapLayer() != nil) != tt.hasMap {
			t.Errorf("%s: map layer present = %v", tt.id, w.MapLayer() != nil)
		}
		if (w.Overlay() != nil) != tt.collision {
			t.Errorf("%s: overlay present = %v", tt.id, w.Overlay() != nil)
		}
	}

	if _, err := BuildWorld(wc, "moon", nil, 0); err == nil {
		t.Error("unknown stage should fail")
	}
}

func TestBuildWorldCustomMap(t *testing.T) {
	m, err := maps.Parse([]byte(`
id: box
size: {cols: 12, rows: 10}
spawn: {x: 70, y: 70}
map:
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
  - [1,1,1,1,1,1,1,1,1,1,1,1]
overlay:
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,4,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
  - [0,0,0,0,0,0,0,0,0,0,0,0]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	SetMap(&m)
	defer SetMap(nil)

	g := newGame(t, config.StageWorld)
	s := g.Snapshot()
	if s.X != 70 || s.Y != 70 {
		t.Fatalf("spawn = (%d,%d), want the map spawn (70,70)", s.X, s.Y)
	}

	// Tile (2,1) starts at x=128; one step east from 120 would enter it.
	for i := 0; i < 10; i++ {
		g.Step(press(core.ActionRight))
	}
	if s := g.Snapshot(); s.X != 120 {
		t.Errorf("x = %d, want 120 (blocked by the prop at tile 14)", s.X)
	}

	// Scroll ignores the overlay of the same map.
	sc := newGame(t, config.StageScroll)
	if sc.world.Overlay() != nil {
		t.Error("scroll stage should not collide with map props")
	}
	// Walk has no layers and keeps its own geometry.
	wk := newGame(t, config.StageWalk)
	if wk.world.Stage().Geometry.Cols != 32 {
		t.Error("walk stage should ignore the custom map")
	}
}

func TestBrokenConfigShowsError(t *testing.T) {
	wc := config.DefaultWorldConfig()
	st := wc.Stages[config.StageWorld]
	st.Generation = &config.GenerationConfig{Ground: []int{1}, Props: []int{0}, Density: 50}
	wc.Stages[config.StageWorld] = st
	SetConfig(wc)
	defer SetConfig(config.DefaultWorldConfig())

	g := New(config.StageWorld)
	g.Reset(core.DefaultConfig())
	if g.Err() == nil {
		t.Fatal("expected a build error for prop id 0")
	}

	g.Step(press(core.ActionRight))
	if _, ok := g.Frame(); ok {
		t.Error("Frame should report no world")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Q to quit") {
		t.Error("error overlay not rendered")
	}
}
