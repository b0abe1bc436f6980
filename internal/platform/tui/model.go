package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// keyBuffer is how many key presses can queue between two input windows.
const keyBuffer = 16

// session is one running game: an engine goroutine plus its channels.
type session struct {
	id     int
	keys   chan core.Key
	frames *frameSink
	engine *snake.Engine
	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(parent context.Context, id int, seed int64, logger *log.Logger) *session {
	ctx, cancel := context.WithCancel(parent)
	s := &session{
		id:     id,
		keys:   make(chan core.Key, keyBuffer),
		frames: newFrameSink(),
		ctx:    ctx,
		cancel: cancel,
	}

	opts := []snake.Option{
		snake.WithRenderer(s.frames),
		snake.WithLogger(logger.With("game", id)),
	}
	if seed != 0 {
		opts = append(opts, snake.WithSeed(seed))
	}
	s.engine = snake.New(s.keys, opts...)
	return s
}

func (s *session) start() tea.Cmd {
	return tea.Batch(
		runEngine(s.ctx, s.id, s.engine, s.frames),
		waitForFrame(s.id, s.frames),
	)
}

// send queues a key for the engine. Keys are dropped when the buffer is
// full; the arbiter only uses one per window anyway.
func (s *session) send(k core.Key) {
	select {
	case s.keys <- k:
	default:
	}
}

// Model is the Bubble Tea model for a snake session.
type Model struct {
	ctx      context.Context
	settings config.Settings
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	palette  palette
	screen   *core.Screen
	session  *session
	frame    snake.Frame
	hasFrame bool
	result   *snake.Outcome
	tooSmall bool
	quitting bool
}

// NewModel creates a model and prepares the first game. Games stop when ctx
// is cancelled. Styles are built from r so colors match the terminal the
// model is displayed on.
func NewModel(ctx context.Context, settings config.Settings, cfg core.RuntimeConfig, logger *log.Logger, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		ctx:      ctx,
		settings: settings,
		config:   cfg,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		palette:  newPalette(r),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
	}
	m.tooSmall = !fits(cfg.ScreenW, cfg.ScreenH)
	m.session = newSession(ctx, 1, cfg.Seed, logger)
	return m
}

// Init starts the first game.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.session.id, "seed", m.config.Seed)
	return m.session.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameMsg:
		if msg.session != m.session.id {
			return m, nil
		}
		m.frame = msg.frame
		m.hasFrame = true
		return m, waitForFrame(m.session.id, m.session.frames)

	case endedMsg:
		return m.handleEnded(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.result != nil {
			return m.restart()
		}
		return m, nil
	}

	if m.result == nil {
		m.session.send(m.keys.Translate(msg))
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running
// while the terminal is too small; only drawing is suspended.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	m.tooSmall = !fits(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleEnded(msg endedMsg) (tea.Model, tea.Cmd) {
	if msg.session != m.session.id {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Debug("game stopped", "game", msg.session, "error", msg.err)
		return m, nil
	}

	out := msg.outcome
	m.result = &out
	m.keys.Restart.SetEnabled(true)
	m.logger.Info("game over",
		"game", msg.session,
		"score", out.Score,
		"cause", out.Cause,
		"ticks", out.Tick,
	)
	// Run has returned, so the engine is no longer touched by its goroutine
	m.logger.Debug("final state\n" + m.session.engine.DebugState())
	return m, nil
}

// restart abandons the current session and starts a new game with a fresh
// time-based seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.session.cancel()

	m.config.Seed = time.Now().UnixNano()
	m.session = newSession(m.ctx, m.session.id+1, m.config.Seed, m.logger)
	m.frame = snake.Frame{}
	m.hasFrame = false
	m.result = nil
	m.keys.Restart.SetEnabled(false)

	m.logger.Info("game started", "game", m.session.id, "seed", m.config.Seed)
	return m, m.session.start()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nPress q to quit.",
			minScreenW, minScreenH, m.config.ScreenW, m.config.ScreenH)
	}
	if !m.hasFrame {
		return ""
	}

	drawFrame(m.screen, m.frame, m.settings.Theme)
	if m.frame.GameOver {
		drawOverlay(m.screen,
			fmt.Sprintf("Game over, Score: %d", m.frame.Score),
			"Press R to play again",
		)
	}

	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func fits(w, h int) bool {
	return w >= minScreenW && h >= minScreenH
}

// Run starts the Bubble Tea program on the local terminal.
func Run(settings config.Settings, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(context.Background(), settings, cfg, logger, lipgloss.DefaultRenderer())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
