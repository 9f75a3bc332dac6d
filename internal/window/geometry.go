package window

import "github.com/1broseidon/dockwm/internal/geom"

// detectDirection returns the resize zone under p. Each edge owns a band of
// width 2*tolerance centred offset pixels inside it; corners win over edges.
func detectDirection(r geom.Rect, p geom.Point, offset, tolerance float64) Direction {
	left := geom.Within(p.X, r.Left()+offset, tolerance)
	right := geom.Within(p.X, r.Right()-offset, tolerance)
	top := geom.Within(p.Y, r.Top()+offset, tolerance)
	bottom := geom.Within(p.Y, r.Bottom()-offset, tolerance)

	switch {
	case top && left:
		return DirTopLeft
	case top && right:
		return DirTopRight
	case bottom && left:
		return DirBottomLeft
	case bottom && right:
		return DirBottomRight
	case left:
		return DirLeft
	case right:
		return DirRight
	case top:
		return DirTop
	case bottom:
		return DirBottom
	default:
		return DirNone
	}
}

// resizeRect applies a pointer delta to start. dx and dy are start minus
// current pointer position, so dragging left or up yields positive deltas.
func resizeRect(dir Direction, start geom.Rect, dx, dy float64) (geom.Rect, bool) {
	r := start
	switch dir {
	case DirTopLeft:
		r.Height += dy
		r.Y -= dy
		r.Width += dx
		r.X -= dx
	case DirTopRight:
		r.Height += dy
		r.Y -= dy
		r.Width -= dx
	case DirBottomLeft:
		r.Height -= dy
		r.Width += dx
		r.X -= dx
	case DirBottomRight:
		r.Height -= dy
		r.Width -= dx
	case DirLeft:
		r.Width += dx
		r.X -= dx
	case DirRight:
		r.Width -= dx
	case DirTop:
		r.Height += dy
		r.Y -= dy
	case DirBottom:
		r.Height -= dy
	default:
		return start, false
	}
	return r, true
}
