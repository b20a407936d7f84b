package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/games/tilewalk"
	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

func TestMain(m *testing.M) {
	tilewalk.SetConfig(config.DefaultWorldConfig())
	os.Exit(m.Run())
}

// stubGame scores one point per unpaused step.
type stubGame struct {
	resets int
	steps  int
	score  int
	paused bool
	delay  time.Duration
}

func (g *stubGame) ID() string                { return "stub" }
func (g *stubGame) Title() string             { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)  { g.resets++; g.score = 0 }
func (g *stubGame) FrameDelay() time.Duration { return g.delay }
func (g *stubGame) State() core.GameState     { return core.GameState{Score: g.score, Paused: g.paused} }
func (g *stubGame) Render(dst *core.Screen)   { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.score++
	}
	return core.StepResult{State: g.State()}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{runes("k"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("s"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("d"), core.ActionRight},
		{runes("p"), core.ActionPause},
		{runes("i"), core.ActionDebug},
		{tea.KeyMsg{Type: tea.KeyF3}, core.ActionDebug},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestModelInterval(t *testing.T) {
	g := &stubGame{delay: 80 * time.Millisecond}

	m := NewModel(g, nil, testConfig())
	assert.Equal(t, 80*time.Millisecond, m.interval())

	cfg := testConfig()
	cfg.TickRate = 20
	m = NewModel(g, nil, cfg)
	assert.Equal(t, 50*time.Millisecond, m.interval())
}

func TestModelInputAccumulatesUntilTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("w"))
	assert.True(t, m.inputFrame.Has(core.ActionRight))
	assert.True(t, m.inputFrame.Has(core.ActionUp))
	assert.Equal(t, 0, g.steps)

	m, cmd := update(t, m, TickMsg{loop: m.loop})
	assert.Equal(t, 1, g.steps)
	assert.True(t, m.inputFrame.Empty())
	assert.NotNil(t, cmd)
}

func TestModelCountsUnpausedFrames(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m, _ = update(t, m, TickMsg{loop: m.loop})
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg{loop: m.loop})
	m, _ = update(t, m, TickMsg{loop: m.loop})

	assert.Equal(t, 3, g.steps)
	assert.Equal(t, uint64(1), m.Frames())
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, TickMsg{loop: m.loop + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, g.steps)
	assert.Equal(t, uint64(0), m.Frames())
}

func TestModelQuitSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewModel(g, store, testConfig())
	m.Init()

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{loop: m.loop})
	}
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Empty(t, m.View())

	m, _ = update(t, m, runes("q"))
	m, _ = update(t, m, TickMsg{loop: m.loop})
	assert.Equal(t, 3, g.steps)

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].Score)
	assert.Equal(t, int64(7), scores[0].Seed)
	assert.Equal(t, uint64(3), scores[0].Frames)
}

func TestModelQuitWithoutScoreSkipsSave(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(&stubGame{}, store, testConfig())
	m.Init()

	_, _ = update(t, m, runes("q"))

	best, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestModelHelpFooter(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	assert.Equal(t, 23, m.screen.Height())

	m, _ = update(t, m, runes("?"))
	assert.Equal(t, 20, m.screen.Height())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 3})
	assert.Equal(t, 3, m.screen.Height())
	assert.Equal(t, 40, m.screen.Width())
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	view := m.View()
	assert.Contains(t, view, "stub")
	assert.Contains(t, view, "quit")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "cd")
	assert.Contains(t, lines[1], "xyz")
}

func TestMenuNavigation(t *testing.T) {
	stages := registry.List()
	require.NotEmpty(t, stages)

	m := NewMenuModel(nil, testConfig())
	require.Len(t, m.items, len(stages))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < len(stages)+2; i++ {
		next, _ = m.Update(runes("j"))
		m = next.(MenuModel)
	}
	assert.Equal(t, len(stages)-1, m.cursor)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, stages[len(stages)-1].ID, m.Selected().GameID)
}

func TestMenuShowsBest(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{StageID: config.StageWalk, Score: 42})
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig())
	for _, item := range m.items {
		if item.GameID == config.StageWalk {
			assert.Equal(t, 42, item.Best)
		} else {
			assert.Equal(t, 0, item.Best)
		}
	}
	assert.Contains(t, m.View(), "42")
}

func TestScoreboardStages(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{StageID: config.StageScroll, Score: 9, Frames: 30})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No runs recorded yet")

	for m.stages[m.cursor].ID != config.StageScroll {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	require.Len(t, m.scores, 1)
	require.NotNil(t, m.stats)
	assert.Equal(t, 1, m.stats.GamesCount)
	assert.Contains(t, m.statsLine(), "runs 1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, testConfig())

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		var ok bool
		s, ok = next.(SessionModel)
		require.True(t, ok)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenStage, s.screen)
	assert.Equal(t, registry.List()[0].ID, s.stage.game.ID())

	step(runes("d"))
	step(TickMsg{loop: s.stage.loop})
	step(runes("q"))
	assert.Equal(t, screenMenu, s.screen)
	assert.False(t, s.quitting)

	best, err := store.HighScore(registry.List()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, best)

	step(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, screenScores, s.screen)
	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.screen)

	cmd := step(runes("q"))
	assert.True(t, s.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, s.View())
}
