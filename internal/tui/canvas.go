package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styleID int

const (
	styleDesktop styleID = iota
	stylePanel
	stylePanelDim
	styleDock
	styleIcon
	styleIconFocused
	styleIconMinimized
	styleIconClosed
	styleBorder
	styleBorderFocused
	styleBorderResize
	styleHeader
	styleTitle
	styleButton
	styleButtonActive
	styleClose
	styleBody
	styleBodyDim
	styleFaint
	styleFlash
	styleCount
)

var palette = func() [styleCount]lipgloss.Style {
	var p [styleCount]lipgloss.Style
	base := lipgloss.NewStyle()
	p[styleDesktop] = base.Background(lipgloss.Color("235"))
	p[stylePanel] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(true)
	p[stylePanelDim] = base.Foreground(lipgloss.Color("189")).Background(lipgloss.Color("62"))
	p[styleDock] = base.Background(lipgloss.Color("236"))
	p[styleIcon] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("239"))
	p[styleIconFocused] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(true)
	p[styleIconMinimized] = base.Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238"))
	p[styleIconClosed] = base.Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")).Strikethrough(true)
	p[styleBorder] = base.Foreground(lipgloss.Color("244")).Background(lipgloss.Color("234"))
	p[styleBorderFocused] = base.Foreground(lipgloss.Color("62")).Background(lipgloss.Color("234"))
	p[styleBorderResize] = base.Foreground(lipgloss.Color("214")).Background(lipgloss.Color("234"))
	p[styleHeader] = base.Background(lipgloss.Color("237"))
	p[styleTitle] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("237")).Bold(true)
	p[styleButton] = base.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("239"))
	p[styleButtonActive] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	p[styleClose] = base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124"))
	p[styleBody] = base.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("234"))
	p[styleBodyDim] = base.Foreground(lipgloss.Color("241")).Background(lipgloss.Color("234"))
	p[styleFaint] = base.Foreground(lipgloss.Color("239")).Background(lipgloss.Color("235"))
	p[styleFlash] = base.Foreground(lipgloss.Color("196")).Background(lipgloss.Color("62")).Bold(true)
	return p
}()

type cell struct {
	r     rune
	style styleID
}

// canvas is a fixed-size grid of styled cells. Writes outside it are clipped.
type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.fill(0, 0, width, height, ' ', styleDesktop)
	return c
}

func (c *canvas) set(x, y int, r rune, s styleID) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: s}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *canvas) fill(x, y, w, h int, r rune, s styleID) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, r, s)
		}
	}
}

// text writes s starting at x and returns the column after the last rune.
func (c *canvas) text(x, y int, s string, st styleID) int {
	for _, r := range s {
		c.set(x, y, r, st)
		x++
	}
	return x
}

func (c *canvas) box(x, y, w, h int, s styleID) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		c.set(col, y, '─', s)
		c.set(col, bottom, '─', s)
	}
	for row := y + 1; row < bottom; row++ {
		c.set(x, row, '│', s)
		c.set(right, row, '│', s)
	}
	c.set(x, y, '╭', s)
	c.set(right, y, '╮', s)
	c.set(x, bottom, '╰', s)
	c.set(right, bottom, '╯', s)
}

// Render joins each row's runs of equal style through lipgloss.
func (c *canvas) Render() string {
	rows := make([]string, c.height)
	var b, run strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		cur := styleID(-1)
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.style != cur && run.Len() > 0 {
				b.WriteString(palette[cur].Render(run.String()))
				run.Reset()
			}
			cur = cl.style
			run.WriteRune(cl.r)
		}
		if run.Len() > 0 {
			b.WriteString(palette[cur].Render(run.String()))
			run.Reset()
		}
		rows[y] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Plain returns the canvas runes without styling.
func (c *canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			b.WriteRune(c.cells[y*c.width+x].r)
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
