package desktop

import (
	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/config"
	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
)

// iconPadCells is the horizontal padding of a dock icon around its title.
const iconPadCells = 2

// Grid maps terminal cells to pixels.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// Col returns the cell column containing x.
func (g Grid) Col(x float64) int { return floorDiv(x, g.CellWidth) }

// Row returns the cell row containing y.
func (g Grid) Row(y float64) int { return floorDiv(y, g.CellHeight) }

// Center returns the pixel position of the center of a cell.
func (g Grid) Center(col, row int) geom.Point {
	return geom.Point{
		X: (float64(col) + 0.5) * g.CellWidth,
		Y: (float64(row) + 0.5) * g.CellHeight,
	}
}

func floorDiv(v, size float64) int {
	if size <= 0 {
		return 0
	}
	n := int(v / size)
	if v < 0 && float64(n)*size != v {
		n--
	}
	return n
}

// Chrome returns window decorations sized to whole cells: a one-cell border,
// a header on the second row and three-cell buttons.
func (g Grid) Chrome() platform.Chrome {
	return platform.Chrome{
		PadX:           g.CellWidth,
		PadY:           g.CellHeight,
		HeaderHeight:   g.CellHeight,
		ButtonWidth:    3 * g.CellWidth,
		LabelCharWidth: g.CellWidth,
	}
}

// NewScene builds an in-memory document for a viewport of cols x rows cells
// from the configured scene. The stack covers the whole viewport, the panel
// spans the top rows and the dock is centred on the bottom rows.
func NewScene(cfg *config.Config, cols, rows int, timeline *anim.Timeline) *platform.MemoryBackend {
	g := Grid{CellWidth: float64(cfg.Terminal.CellWidth), CellHeight: float64(cfg.Terminal.CellHeight)}
	width := float64(cols) * g.CellWidth
	height := float64(rows) * g.CellHeight

	stack := geom.Rect{Width: width, Height: height}
	panel := geom.Rect{Width: width, Height: float64(cfg.Terminal.PanelRows) * g.CellHeight}

	type iconSpec struct {
		id, title string
		width     float64
	}
	var icons []iconSpec
	var dockWidth float64
	for _, w := range cfg.Scene.Windows {
		if w.NoIcon {
			continue
		}
		iw := float64(len([]rune(iconTitle(w)))+2*iconPadCells) * g.CellWidth
		icons = append(icons, iconSpec{id: w.ID, title: iconTitle(w), width: iw})
		dockWidth += iw + g.CellWidth
	}
	if dockWidth > 0 {
		dockWidth += g.CellWidth
	} else {
		dockWidth = 4 * g.CellWidth
	}
	dockHeight := float64(cfg.Terminal.DockRows) * g.CellHeight
	dockX := float64(g.Col((width - dockWidth) / 2)) * g.CellWidth
	if dockX < 0 {
		dockX = 0
	}
	dock := geom.Rect{X: dockX, Y: height - dockHeight, Width: dockWidth, Height: dockHeight}

	b := platform.NewMemoryBackend(stack, dock, panel, g.Chrome(), timeline)
	for _, w := range cfg.Scene.Windows {
		b.AddWindow(platform.WindowSpec{
			ID:        w.ID,
			Title:     w.Title,
			Rect:      geom.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height},
			MinWidth:  w.MinWidth,
			MinHeight: w.MinHeight,
		})
	}

	x := dock.X + g.CellWidth
	for _, ic := range icons {
		b.AddIcon(ic.id, ic.title, geom.Rect{X: x, Y: dock.Y, Width: ic.width, Height: dockHeight})
		x += ic.width + g.CellWidth
	}
	return b
}

func iconTitle(w config.WindowSpec) string {
	if w.Title != "" {
		return w.Title
	}
	return w.ID
}
