package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

// helpHeight is the number of rows reserved under the playfield.
const helpHeight = 1

// ModelOptions holds the optional collaborators of a Model.
type ModelOptions struct {
	// Runs records finished runs. Nil disables run history.
	Runs storage.RunStore
	// Logger receives warnings. Nil discards them.
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes frames.
	// Empty means ~/.javirun/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a Javi Run session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	palette    Palette
	keys       *KeyMapper
	help       help.Model
	clock      *core.Clock
	config     core.RuntimeConfig
	opts       ModelOptions
	inputFrame core.InputFrame
	quitting   bool
	runSaved   bool // Whether the current finished run has been recorded
	lastRunID  string
	lastShot   string
}

// NewModel creates a new Bubble Tea model driving game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	gameCfg := game.Config()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		palette:    NewPalette(gameCfg.Theme),
		keys:       NewKeyMapper(),
		help:       h,
		clock:      core.NewClock(gameCfg.Clock.MaxStep),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Intents wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.lastShot = path
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The logical viewport is
// fixed, so only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the clamped time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	res := m.game.Step(dt, m.inputFrame)
	m.inputFrame.Clear()

	if res.Started {
		m.runSaved = false
	}
	if res.Ended && !m.runSaved {
		m.recordRun(res.Score)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished run. Best-effort: play continues regardless.
func (m *Model) recordRun(score int) {
	if m.opts.Runs == nil {
		return
	}
	duration := time.Duration(m.game.Elapsed() * float64(time.Second))
	id, err := m.opts.Runs.SaveRun(score, duration)
	if err != nil {
		m.opts.Logger.Warn("could not record run", "score", score, "err", err)
		return
	}
	m.lastRunID = id
	m.opts.Logger.Debug("run recorded", "run", id, "score", score, "duration", duration)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".javirun", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("javirun_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, m.palette) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Game returns the driven game.
func (m Model) Game() *runner.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LastRunID returns the ID of the most recently recorded run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given game.
func Run(game *runner.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks act as taps
	)

	_, err := p.Run()
	return err
}

// LastScreenshot returns the path of the most recent screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}
