package window

import (
	"errors"
	"time"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
)

// Phase is the pointer gesture a window is in. Moving and resizing are
// mutually exclusive by construction.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseResizing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// State is the externally visible interaction state of a window.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateResizing
	StateMinimizeAnimating
	StateMaximizeAnimating
	StateCloseAnimating
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	case StateMinimizeAnimating:
		return "minimize-animating"
	case StateMaximizeAnimating:
		return "maximize-animating"
	case StateCloseAnimating:
		return "close-animating"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Direction is the edge or corner zone a resize drags.
type Direction int

const (
	DirNone Direction = iota
	DirTopLeft
	DirTopRight
	DirBottomLeft
	DirBottomRight
	DirTop
	DirBottom
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirTopLeft:
		return "top-left"
	case DirTopRight:
		return "top-right"
	case DirBottomLeft:
		return "bottom-left"
	case DirBottomRight:
		return "bottom-right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor returns the hover cursor shown for the zone.
func (d Direction) Cursor() platform.Cursor {
	switch d {
	case DirTopLeft:
		return platform.CursorSEResize
	case DirTopRight:
		return platform.CursorSWResize
	case DirBottomLeft:
		return platform.CursorNEResize
	case DirBottomRight:
		return platform.CursorNWResize
	case DirLeft:
		return platform.CursorEResize
	case DirRight:
		return platform.CursorWResize
	case DirTop:
		return platform.CursorNResize
	case DirBottom:
		return platform.CursorSResize
	default:
		return platform.CursorDefault
	}
}

// Control is a header button action.
type Control string

const (
	ControlNone     Control = ""
	ControlClose    Control = "close"
	ControlMaximize Control = "maximize"
	ControlMinimize Control = "minimize"
)

// ParseControl returns the control named s, or ControlNone.
func ParseControl(s string) Control {
	switch Control(s) {
	case ControlClose, ControlMaximize, ControlMinimize:
		return Control(s)
	default:
		return ControlNone
	}
}

// ControlFromClasses returns the first class that names a control.
func ControlFromClasses(classes []string) Control {
	for _, c := range classes {
		if ctl := ParseControl(c); ctl != ControlNone {
			return ctl
		}
	}
	return ControlNone
}

var (
	// ErrUnknownControl is returned by Perform for an unrecognized control.
	ErrUnknownControl = errors.New("unknown window control")
	// ErrClosed is returned when acting on a closed window.
	ErrClosed = errors.New("window is closed")
	// ErrNoIcon is returned when a dock action targets a window without icon.
	ErrNoIcon = errors.New("window has no dock icon")
)

// Snapshot is the geometry saved before maximize or minimize.
type Snapshot struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func (s Snapshot) props() anim.Props {
	return anim.Props{
		anim.PropTop:    s.Top,
		anim.PropLeft:   s.Left,
		anim.PropWidth:  s.Width,
		anim.PropHeight: s.Height,
	}
}

// Layout holds the container rectangles measured once at startup.
type Layout struct {
	Stack geom.Rect
	Dock  geom.Rect
	Panel geom.Rect
}

// Settings tunes thresholds and animation timing.
type Settings struct {
	// WindowOffset is the distance of the resize line from each edge.
	WindowOffset float64
	// ResizeOffset is the hover tolerance on either side of that line.
	ResizeOffset     float64
	MinimizeDuration time.Duration
	MaximizeDuration time.Duration
	CloseDuration    time.Duration
	Easing           anim.Easing
	CloseScale       float64
}

// DefaultSettings returns the stock thresholds and timings.
func DefaultSettings() Settings {
	return Settings{
		WindowOffset:     8,
		ResizeOffset:     4,
		MinimizeDuration: 300 * time.Millisecond,
		MaximizeDuration: 500 * time.Millisecond,
		CloseDuration:    500 * time.Millisecond,
		Easing:           anim.CubicBezier{X1: 0.26, Y1: 0, X2: 0.06, Y2: 1.01},
		CloseScale:       0.7,
	}
}

// Status is a read-only view of a controller.
type Status struct {
	ID        string
	State     State
	Maximized bool
	Minimized bool
	Closed    bool
	Direction Direction
	Selected  Control
	Bounds    geom.Rect
}
