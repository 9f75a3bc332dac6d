package desktop

import (
	"math"

	"github.com/1broseidon/dockwm/internal/geom"
)

// Heading is a keyboard focus direction.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Focusable returns the IDs of windows that are neither closed nor minimized,
// in stacking order.
func (d *Desktop) Focusable() []string {
	var out []string
	for _, st := range d.Statuses() {
		if !st.Closed && !st.Minimized {
			out = append(out, st.ID)
		}
	}
	return out
}

// Neighbor returns the focusable window whose centre lies closest to from's
// centre in direction h, by Manhattan distance. With nothing in that
// direction it wraps to the window furthest the other way, preferring the
// same row or column. An unknown or unfocusable from yields the first
// focusable window. Empty means no window can take focus.
func (d *Desktop) Neighbor(from string, h Heading) string {
	ids := d.Focusable()
	if len(ids) == 0 {
		return ""
	}

	centers := make(map[string]geom.Point, len(ids))
	for _, id := range ids {
		centers[id] = d.controllers[id].Status().Bounds.Center()
	}
	cur, ok := centers[from]
	if !ok {
		return ids[0]
	}

	best := ""
	bestDist := 0.0
	for _, id := range ids {
		if id == from {
			continue
		}
		c := centers[id]
		if !ahead(cur, c, h) {
			continue
		}
		dist := math.Abs(c.X-cur.X) + math.Abs(c.Y-cur.Y)
		if best == "" || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	if best != "" {
		return best
	}

	// Wrap to the opposite edge.
	bestScore := 0.0
	for _, id := range ids {
		if id == from {
			continue
		}
		c := centers[id]
		var score float64
		switch h {
		case HeadingUp:
			score = c.Y*10000 - math.Abs(c.X-cur.X)
		case HeadingDown:
			score = -c.Y*10000 - math.Abs(c.X-cur.X)
		case HeadingLeft:
			score = c.X*10000 - math.Abs(c.Y-cur.Y)
		case HeadingRight:
			score = -c.X*10000 - math.Abs(c.Y-cur.Y)
		}
		if best == "" || score > bestScore {
			best, bestScore = id, score
		}
	}
	if best != "" {
		return best
	}
	return from
}

func ahead(from, to geom.Point, h Heading) bool {
	switch h {
	case HeadingUp:
		return to.Y < from.Y
	case HeadingDown:
		return to.Y > from.Y
	case HeadingLeft:
		return to.X < from.X
	case HeadingRight:
		return to.X > from.X
	}
	return false
}
