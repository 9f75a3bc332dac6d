package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
	"github.com/1broseidon/dockwm/internal/window"
)

// buttonCells is the width of each header control in cells.
const buttonCells = 3

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 || m.desk == nil {
		return ""
	}
	if m.showHelp {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Render("dockwm")
		box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			"drag a header to move, drag an edge or corner to resize,",
			"click the header buttons or a dock icon to manage windows.",
			"",
			m.help.View(m.keys),
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return m.draw().Render()
}

func (m Model) draw() *canvas {
	c := newCanvas(m.width, m.height)
	m.drawWindows(c)
	m.drawDock(c)
	m.drawPanel(c)
	return c
}

// cellRect converts a pixel rectangle to cell coordinates.
func (m Model) cellRect(r geom.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X / m.grid.CellWidth))
	y = int(math.Round(r.Y / m.grid.CellHeight))
	w = int(math.Round(r.Width / m.grid.CellWidth))
	h = int(math.Round(r.Height / m.grid.CellHeight))
	return x, y, w, h
}

func (m Model) drawPanel(c *canvas) {
	rows := m.cfg.Terminal.PanelRows
	if rows <= 0 {
		return
	}
	c.fill(0, 0, m.width, rows, ' ', stylePanel)
	x := c.text(1, 0, "dockwm", stylePanel)
	if line := m.statusLine(); line != "" {
		x = c.text(x+2, 0, line, stylePanelDim)
	}
	if m.flash != "" {
		c.text(x+2, 0, m.flash, styleFlash)
	}

	hint := "? help  q quit"
	if hx := m.width - len(hint) - 1; hx > x+2 {
		c.text(hx, 0, hint, stylePanelDim)
	}
}

func (m Model) drawWindows(c *canvas) {
	statuses := make(map[string]window.Status)
	for _, st := range m.desk.Statuses() {
		statuses[st.ID] = st
	}

	for _, el := range m.backend.Windows() {
		st, ok := statuses[el.ID()]
		if !ok || !el.Visible() {
			continue
		}
		m.drawWindow(c, el, st)
	}
}

func (m Model) drawWindow(c *canvas, el *platform.MemoryElement, st window.Status) {
	x, y, w, h := m.cellRect(el.Bounds())
	dim := el.ComputedStyle().Opacity < 0.5

	if w < 2 || h < 2 {
		c.fill(x, y, max(w, 1), max(h, 1), '▪', styleFaint)
		return
	}

	border := styleBorder
	switch {
	case dim:
		border = styleFaint
	case st.Direction != window.DirNone || st.State == window.StateResizing:
		border = styleBorderResize
	case st.ID == m.focused:
		border = styleBorderFocused
	}
	body := styleBody
	if dim {
		body = styleBodyDim
	}

	c.box(x, y, w, h, border)
	c.fill(x+1, y+1, w-2, h-2, ' ', body)
	if h < 3 || w < 3 {
		return
	}

	inner := w - 2
	header := styleHeader
	if dim {
		header = styleBodyDim
	}
	c.fill(x+1, y+1, inner, 1, ' ', header)

	buttons := 0
	if inner >= 3*buttonCells+1 && el.Scale() == 1 {
		buttons = 3 * buttonCells
	}
	title := truncate(el.Title(), inner-buttons)
	if dim {
		c.text(x+1, y+1, title, styleBodyDim)
	} else {
		c.text(x+1, y+1, title, styleTitle)
	}

	if buttons > 0 {
		bx := x + 1 + inner - buttons
		for _, b := range []struct {
			ctl   window.Control
			label string
			style styleID
		}{
			{window.ControlMinimize, " _ ", styleButton},
			{window.ControlMaximize, " + ", styleButton},
			{window.ControlClose, " x ", styleClose},
		} {
			s := b.style
			if st.Selected == b.ctl {
				s = styleButtonActive
			}
			bx = c.text(bx, y+1, b.label, s)
		}
	}

	if h >= 4 {
		r := el.Bounds()
		info := fmt.Sprintf(" %s  %.0fx%.0f", st.State, r.Width, r.Height)
		c.text(x+1, y+2, truncate(info, inner), body)
	}
}

func (m Model) drawDock(c *canvas) {
	dock := m.backend.Dock().Bounds()
	x, y, w, h := m.cellRect(dock)
	c.fill(x, y, w, h, ' ', styleDock)

	for _, icon := range m.backend.Icons() {
		ix, iy, iw, ih := m.cellRect(icon.Bounds())
		style := styleIcon
		if st, err := m.desk.Status(icon.ID()); err == nil {
			switch {
			case st.Closed:
				style = styleIconClosed
			case st.Minimized:
				style = styleIconMinimized
			case st.ID == m.focused:
				style = styleIconFocused
			}
		}
		c.fill(ix, iy, iw, ih, ' ', style)

		label := truncate(icon.Title(), iw)
		lx := ix + (iw-len([]rune(label)))/2
		c.text(lx, iy+ih/2, label, style)
	}
}
