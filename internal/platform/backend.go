package platform

import (
	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/geom"
)

// Cursor is a pointer cursor shown over an element.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorNResize  Cursor = "n-resize"
	CursorSResize  Cursor = "s-resize"
	CursorEResize  Cursor = "e-resize"
	CursorWResize  Cursor = "w-resize"
	CursorNEResize Cursor = "ne-resize"
	CursorNWResize Cursor = "nw-resize"
	CursorSEResize Cursor = "se-resize"
	CursorSWResize Cursor = "sw-resize"
)

// TransformOrigin is the fixed point for scale transforms.
type TransformOrigin int

const (
	OriginCenter TransformOrigin = iota
	OriginTopLeft
)

func (o TransformOrigin) String() string {
	switch o {
	case OriginCenter:
		return "center center"
	case OriginTopLeft:
		return "top left"
	default:
		return "unknown"
	}
}

// TargetKind classifies the part of a window under the pointer.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBody
	TargetHeader
	TargetHeaderLabel
	TargetButton
)

func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetBody:
		return "body"
	case TargetHeader:
		return "header"
	case TargetHeaderLabel:
		return "header-label"
	case TargetButton:
		return "button"
	default:
		return "unknown"
	}
}

// Target is the event target inside a window. Classes carries the class
// list of button targets.
type Target struct {
	Kind    TargetKind
	Classes []string
}

// IsHeader reports whether the target is the header bar or its label.
func (t Target) IsHeader() bool {
	return t.Kind == TargetHeader || t.Kind == TargetHeaderLabel
}

// PointerEvent is a pointer down/move/up delivered to a window.
type PointerEvent struct {
	PointerID int
	X         float64
	Y         float64
	Target    Target
}

// Point returns the pointer position.
func (e PointerEvent) Point() geom.Point {
	return geom.Point{X: e.X, Y: e.Y}
}

// ComputedStyle is the resolved style of an element, animations included.
type ComputedStyle struct {
	Top       float64
	Left      float64
	Width     float64
	Height    float64
	MinWidth  float64
	MinHeight float64
	Opacity   float64
}

// Element is a styled surface owned by the host.
type Element interface {
	ID() string
	HasClass(name string) bool
	// Bounds returns the on-screen rectangle including running animations
	// and scale transforms.
	Bounds() geom.Rect
	ComputedStyle() ComputedStyle
	// Apply commits values as static inline style.
	Apply(props anim.Props)
	SetCursor(c Cursor)
	SetTransformOrigin(o TransformOrigin)
	// Hide removes the element from display and hit testing.
	Hide()
	CapturePointer(pointerID int)
	// Animate plays keyframes without committing them; onFinish runs once
	// the animation has completed and its effect has been removed.
	Animate(frames []anim.Props, opts anim.Options, onFinish func())
}

// Container is a layout container with element children.
type Container interface {
	Bounds() geom.Rect
	Children() []Element
}

// Document exposes the three desktop containers.
type Document interface {
	Stack() Container
	Dock() Container
	Panel() Container
}
