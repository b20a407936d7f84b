package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger for platform events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// framePacer is implemented by games with their own frame delay.
type framePacer interface {
	FrameDelay() time.Duration
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one stage.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	frames     uint64 // Unpaused frames simulated
	keys       KeyMap
	help       help.Model
	loop       uint64
	standalone bool // Quit ends the program rather than returning to a menu
	done       bool
	quitting   bool
	runSaved   bool
}

// NewModel creates a standalone model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := newStageModel(game, store, cfg)
	m.standalone = true
	return m
}

func newStageModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		loop:       loopSeq.Add(1),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.stageHeight())
	return m
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Info("stage started", "stage", m.game.ID(), "interval", m.interval())
	return tickCmd(m.loop, m.interval())
}

// interval is the delay between frames: --fps when given, otherwise the
// game's own frame delay.
func (m Model) interval() time.Duration {
	var fallback time.Duration
	if p, ok := m.game.(framePacer); ok {
		fallback = p.FrameDelay()
	}
	return m.config.FrameInterval(fallback)
}

// footerRows is the height reserved for the help footer.
func (m Model) footerRows() int {
	if m.config.ScreenH < 4 {
		return 0
	}
	if m.help.ShowAll {
		return 4
	}
	return 1
}

func (m Model) stageHeight() int {
	return max(0, m.config.ScreenH-m.footerRows())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.stageHeight())
		return m, nil

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey accumulates actions until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.stageHeight())
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		return m.exit()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.Paused {
		m.frames++
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.loop, m.interval())
}

// exit leaves the stage and records the run once.
func (m Model) exit() (Model, tea.Cmd) {
	m.gameState = m.game.State()
	m.saveRun()
	m.runSaved = true
	m.done = true

	logger.Info("stage exited", "stage", m.game.ID(), "explored", m.gameState.Score, "frames", m.frames)

	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) saveRun() {
	if m.runSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		StageID: m.game.ID(),
		Score:   m.gameState.Score,
		Seed:    m.config.Seed,
		Frames:  m.frames,
	})
	if err != nil {
		logger.Warn("could not save run", "stage", m.game.ID(), "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.footerRows() > 0 {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Done reports whether the player left the stage.
func (m Model) Done() bool {
	return m.done
}

// Frames returns the number of unpaused frames simulated.
func (m Model) Frames() uint64 {
	return m.frames
}

// Run starts a standalone Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
