package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/game"
)

// Model is the Bubble Tea model for a skycat session.
type Model struct {
	cfg       config.SkycatConfig
	runtime   core.RuntimeConfig
	logger    *log.Logger
	session   *game.Session
	screen    *core.Screen
	layout    Layout
	keys      KeyMap
	help      help.Model
	fixedSeed bool
	mounts    int
	quitting  bool
	now       func() time.Time
}

// NewModel creates a model and mounts the first session.
func NewModel(cfg config.SkycatConfig, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		cfg:       cfg,
		runtime:   rc,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fixedSeed: rc.Seed != 0,
		now:       time.Now,
	}
	m.help.Width = rc.ScreenW
	m.resize(rc.ScreenW, rc.ScreenH)

	if err := m.mount(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// mount replaces the current session with a fresh one. The old session, if
// any, is closed first.
func (m *Model) mount() error {
	if m.session != nil {
		m.session.Close()
	}

	seed := m.runtime.Seed
	if !m.fixedSeed {
		seed = m.now().UnixNano()
	}
	s, err := game.New(m.cfg, game.Options{Seed: seed, Start: m.now(), Logger: m.logger})
	if err != nil {
		return fmt.Errorf("failed to mount session: %w", err)
	}
	m.session = s
	m.mounts++
	m.keys.SetState(s.State())
	return nil
}

// Session returns the mounted session.
func (m Model) Session() *game.Session {
	return m.session
}

// Close tears down the mounted session. Safe to call more than once.
func (m Model) Close() {
	if m.session != nil {
		m.session.Close()
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	return m.dispatch(m.keys.Action(msg))
}

// handleMouse treats a left press on a control panel button as pointer-down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	b, ok := m.layout.ButtonAt(m.session.State(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	return m.dispatch(b.Action)
}

func (m Model) dispatch(action core.Action) (tea.Model, tea.Cmd) {
	now := m.now()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case core.ActionStart:
		if err := m.session.Start(); err != nil {
			m.logger.Debug("start ignored", "error", err)
		}

	case core.ActionJump:
		m.session.Jump(now)

	case core.ActionStrongJump:
		m.session.StrongJump(now)

	case core.ActionRestart:
		if m.session.State() == game.Dead {
			if err := m.mount(); err != nil {
				m.logger.Error("restart failed", "error", err)
				m.quitting = true
				return m, tea.Quit
			}
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	m.keys.SetState(m.session.State())
	return m, nil
}

// handleTick advances the session clock to the frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Advance(now)
	m.keys.SetState(m.session.State())
	return m, tickCmd(m.runtime.FrameRate)
}

// resize fits the screen buffer to the terminal, leaving the last row for help.
func (m *Model) resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	bufH := core.Max(h-1, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(w, bufH)
	} else {
		m.screen.Resize(w, bufH)
	}
	m.layout = NewLayout(w, bufH)
}

// draw renders the session, the score line and the control panel.
func (m Model) draw() {
	m.screen.Clear()
	m.session.Draw(m.screen, m.layout.Playground)

	m.screen.DrawText(m.layout.Score.X+1, m.layout.Score.Y,
		fmt.Sprintf("Score: %d", m.session.Score()), core.ColorBrightYellow)

	state := m.session.State()
	if state == game.Dead {
		m.screen.DrawTextCentered(m.layout.Panel.Y, LabelDead, core.ColorRed)
		return
	}
	for _, b := range m.layout.Buttons(state) {
		m.screen.DrawText(b.Rect.X, b.Rect.Y, b.Label, core.ColorBrightBlue)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".skycat", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skycat_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits. The
// mounted session is closed on every exit path.
func Run(cfg config.SkycatConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	} else {
		model.Close()
	}
	return err
}
