package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/config"
	"github.com/1broseidon/dockwm/internal/desktop"
	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
	"github.com/1broseidon/dockwm/internal/window"
)

// mousePointer is the pointer ID used for the terminal mouse.
const mousePointer = 1

type tickMsg time.Time

// Model is the bubbletea model of the terminal desktop. The scene is built
// from the first WindowSizeMsg and keeps that layout for its lifetime.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
	grid   desktop.Grid
	keys   keyMap
	help   help.Model

	backend *platform.MemoryBackend
	desk    *desktop.Desktop

	width    int
	height   int
	focused  string
	cursor   platform.Cursor
	showHelp bool
	ticking  bool
	flash    string
}

// NewModel creates the model. A nil now uses the wall clock.
func NewModel(cfg *config.Config, logger *slog.Logger, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		cfg:    cfg,
		logger: logger,
		now:    now,
		grid: desktop.Grid{
			CellWidth:  float64(cfg.Terminal.CellWidth),
			CellHeight: float64(cfg.Terminal.CellHeight),
		},
		keys:   newKeyMap(),
		help:   help.New(),
		cursor: platform.CursorDefault,
	}
}

// Desktop returns the desktop once the scene is built, or nil.
func (m Model) Desktop() *desktop.Desktop { return m.desk }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.desk == nil {
			m.buildScene()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.desk == nil || m.showHelp {
			return m, nil
		}
		m.handleMouse(msg)
		cmd := m.scheduleTick()
		return m, cmd

	case tickMsg:
		m.ticking = false
		if m.backend != nil {
			m.backend.Timeline().Step(m.now())
		}
		cmd := m.scheduleTick()
		return m, cmd

	case requestMsg:
		v, err := msg.fn(&m)
		msg.reply <- response{value: v, err: err}
		cmd := m.scheduleTick()
		return m, cmd
	}

	return m, nil
}

func (m *Model) buildScene() {
	timeline := anim.NewTimeline(m.now)
	m.backend = desktop.NewScene(m.cfg, m.width, m.height, timeline)
	m.desk = desktop.New(m.backend, m.cfg.WindowSettings(), m.logger)
	if ids := m.desk.Windows(); len(ids) > 0 {
		m.focused = ids[len(ids)-1]
	}
	m.logger.Info("scene built", "cols", m.width, "rows", m.height, "windows", len(m.desk.Windows()))
}

// scheduleTick starts the animation clock while anything is animating.
func (m *Model) scheduleTick() tea.Cmd {
	if m.ticking || m.backend == nil || !m.backend.Timeline().Active() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.cfg.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case m.showHelp:
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
			m.help.ShowAll = false
		}
		return m, nil
	case m.desk == nil:
		return m, nil
	}

	m.flash = ""
	switch {
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus()
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(desktop.HeadingUp)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(desktop.HeadingDown)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(desktop.HeadingLeft)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(desktop.HeadingRight)
	case key.Matches(msg, m.keys.Maximize):
		m.report(m.desk.Perform(m.focused, window.ControlMaximize))
	case key.Matches(msg, m.keys.Minimize):
		m.report(m.desk.Perform(m.focused, window.ControlMinimize))
	case key.Matches(msg, m.keys.Close):
		m.report(m.desk.Perform(m.focused, window.ControlClose))
	case key.Matches(msg, m.keys.Dock):
		m.report(m.desk.ClickIcon(m.focused))
	case key.Matches(msg, m.keys.Cancel):
		m.desk.ContextMenu()
		m.backend.ReleasePointer(mousePointer)
	}
	cmd := m.scheduleTick()
	return m, cmd
}

func (m *Model) cycleFocus() {
	var open []string
	for _, st := range m.desk.Statuses() {
		if !st.Closed {
			open = append(open, st.ID)
		}
	}
	if len(open) == 0 {
		return
	}
	next := 0
	for i, id := range open {
		if id == m.focused {
			next = (i + 1) % len(open)
			break
		}
	}
	m.focused = open[next]
}

func (m *Model) moveFocus(h desktop.Heading) {
	if id := m.desk.Neighbor(m.focused, h); id != "" {
		m.focused = id
	}
}

func (m *Model) report(err error) {
	if err != nil {
		m.flash = err.Error()
		m.logger.Debug("action failed", "window", m.focused, "error", err)
	}
}

func (m *Model) event(el *platform.MemoryElement, p geom.Point) platform.PointerEvent {
	return platform.PointerEvent{
		PointerID: mousePointer,
		X:         p.X,
		Y:         p.Y,
		Target:    el.TargetAt(p),
	}
}

// pointerTarget returns the window holding the mouse capture, or else the
// topmost window under p.
func (m *Model) pointerTarget(p geom.Point) *platform.MemoryElement {
	if el := m.backend.Captured(mousePointer); el != nil {
		return el
	}
	return m.backend.WindowAt(p)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := m.grid.Center(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonRight:
			m.desk.ContextMenu()
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		m.flash = ""

		if icon := m.backend.IconAt(p); icon != nil {
			m.focused = icon.ID()
			m.report(m.desk.ClickIcon(icon.ID()))
			return
		}
		el := m.backend.WindowAt(p)
		if el == nil {
			return
		}
		m.focused = el.ID()
		ev := m.event(el, p)
		// Terminals only report motion on cell changes; refresh the hover
		// zone so a press without prior motion still resizes.
		m.report(m.desk.PointerMove(el.ID(), ev))
		m.report(m.desk.PointerDown(el.ID(), ev))

	case tea.MouseActionMotion:
		el := m.pointerTarget(p)
		if el == nil {
			m.cursor = platform.CursorDefault
			return
		}
		m.report(m.desk.PointerMove(el.ID(), m.event(el, p)))
		m.cursor = el.Cursor()

	case tea.MouseActionRelease:
		el := m.pointerTarget(p)
		m.backend.ReleasePointer(mousePointer)
		if el == nil {
			return
		}
		m.report(m.desk.PointerUp(el.ID(), m.event(el, p)))
		m.cursor = el.Cursor()
	}
}

func (m Model) title(id string) string {
	for _, el := range m.backend.Windows() {
		if el.ID() == id {
			if el.Title() != "" {
				return el.Title()
			}
			break
		}
	}
	return id
}

func (m Model) statusLine() string {
	if m.focused == "" {
		return ""
	}
	st, err := m.desk.Status(m.focused)
	if err != nil {
		return ""
	}
	line := fmt.Sprintf("%s · %s", m.title(m.focused), st.State)
	if st.Maximized {
		line += " · maximized"
	}
	if st.Minimized {
		line += " · minimized"
	}
	if m.cursor != platform.CursorDefault {
		line += " · " + string(m.cursor)
	}
	return line
}
