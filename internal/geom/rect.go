package geom

import "strconv"

// Rect is a rectangle in CSS pixel space. Values are fractional because hosts
// report sub-pixel geometry.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point is a pointer position in CSS pixel space.
type Point struct {
	X float64
	Y float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Scale returns r scaled by factor around the given origin.
func (r Rect) Scale(factor float64, origin Point) Rect {
	return Rect{
		X:      origin.X + (r.X-origin.X)*factor,
		Y:      origin.Y + (r.Y-origin.Y)*factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Within reports whether v lies in [center-tolerance, center+tolerance].
func Within(v, center, tolerance float64) bool {
	return v >= center-tolerance && v <= center+tolerance
}

// Px formats v as a CSS pixel length ("12px", "-8px", "10.5px").
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
