package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/logging"
)

// Model is the Bubble Tea model for a Breakout session.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	surface  *core.CellSurface
	keys     *KeyMapper
	help     help.Model
	input    core.InputFrame
	recorder *logging.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game, err := breakout.New(cfg, rt)
	if err != nil {
		return Model{}, err
	}

	fieldW, fieldH := game.Field()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)

	m := Model{
		game:     game,
		screen:   screen,
		surface:  core.NewCellSurface(screen, fieldW, fieldH),
		keys:     NewKeyMapper(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		recorder: logging.NewRecorder(logger, game.State()),
		logger:   logger,
		config:   rt,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
	m.layout()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	paddle := m.game.Paddle()
	if m.keys.MapKeyToFrame(msg, &m.input, paddle.CenterX(), m.game.Panel()) {
		m.quitting = true
		m.logger.Info("session ended", "score", m.game.HUD().Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse processes pointer motion and clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.keys.MapMouseToFrame(msg, &m.input, m.surface.FieldX, m.game.Panel())
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the field buffer to the rows left between HUD and help.
func (m *Model) layout() {
	helpH := max(lipgloss.Height(m.help.View(m.keys.Keys)), helpRows)
	rows := max(m.height-hudRows-helpH, 0)
	m.screen.Resize(max(m.width, 0), rows)
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input)
	m.recorder.Record(m.game.State(), res)

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current field to a text file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".brickbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}

	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minCols || m.height < minRows {
		return RenderTooSmall(m.width, m.height)
	}

	var field string
	if content, ok := m.game.PanelContent(); ok {
		confirm := m.keys.Keys.Confirm.Help().Key
		field = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center,
			RenderPanel(content, confirm))
	} else {
		m.game.Render(m.surface)
		field = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHUD(m.game.HUD(), m.width),
		field,
		m.help.View(m.keys.Keys),
	)
}

// Run starts the Bubble Tea program for a new session.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer moves the paddle without a button held
	)

	_, err = p.Run()
	return err
}
