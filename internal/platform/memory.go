package platform

import (
	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/geom"
)

// Control class names carried by window header buttons.
var controlClasses = []string{"minimize", "maximize", "close"}

// Chrome describes the window decoration geometry used for hit testing.
type Chrome struct {
	// PadX and PadY inset the header from the window frame.
	PadX float64
	PadY float64
	// HeaderHeight is the height of the header bar.
	HeaderHeight float64
	// ButtonWidth is the width of each header control button.
	ButtonWidth float64
	// LabelCharWidth sizes the title label; zero disables label targets.
	LabelCharWidth float64
}

// WindowSpec describes a window added to a MemoryBackend.
type WindowSpec struct {
	ID        string
	Title     string
	Classes   []string
	Rect      geom.Rect
	MinWidth  float64
	MinHeight float64
}

// MemoryBackend is an in-memory Document. Animations run on its timeline,
// which the owner advances.
type MemoryBackend struct {
	timeline *anim.Timeline
	chrome   Chrome
	stack    *memContainer
	dock     *memContainer
	panel    *memContainer
	captures map[int]*MemoryElement
}

var _ Document = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty desktop with the given container rects.
// A nil timeline gets one on the wall clock.
func NewMemoryBackend(stack, dock, panel geom.Rect, chrome Chrome, timeline *anim.Timeline) *MemoryBackend {
	if timeline == nil {
		timeline = anim.NewTimeline(nil)
	}
	return &MemoryBackend{
		timeline: timeline,
		chrome:   chrome,
		stack:    &memContainer{rect: stack},
		dock:     &memContainer{rect: dock},
		panel:    &memContainer{rect: panel},
		captures: make(map[int]*MemoryElement),
	}
}

func (b *MemoryBackend) Stack() Container { return b.stack }
func (b *MemoryBackend) Dock() Container  { return b.dock }
func (b *MemoryBackend) Panel() Container { return b.panel }

// Timeline returns the animation timeline driving this backend.
func (b *MemoryBackend) Timeline() *anim.Timeline { return b.timeline }

// Chrome returns the decoration geometry.
func (b *MemoryBackend) Chrome() Chrome { return b.chrome }

// AddWindow appends a window to the stack. Later windows are on top.
func (b *MemoryBackend) AddWindow(spec WindowSpec) *MemoryElement {
	classes := spec.Classes
	if classes == nil {
		classes = []string{"window"}
	}
	el := newMemoryElement(b, spec.ID, spec.Title, classes, spec.Rect)
	el.minWidth = spec.MinWidth
	el.minHeight = spec.MinHeight
	b.stack.children = append(b.stack.children, el)
	return el
}

// AddIcon appends a dock icon.
func (b *MemoryBackend) AddIcon(id, title string, rect geom.Rect) *MemoryElement {
	el := newMemoryElement(b, id, title, []string{"icon"}, rect)
	b.dock.children = append(b.dock.children, el)
	return el
}

// Windows returns the stack children in stacking order.
func (b *MemoryBackend) Windows() []*MemoryElement {
	return append([]*MemoryElement(nil), b.stack.children...)
}

// Icons returns the dock children in order.
func (b *MemoryBackend) Icons() []*MemoryElement {
	return append([]*MemoryElement(nil), b.dock.children...)
}

// WindowAt returns the topmost visible window containing p, or nil.
func (b *MemoryBackend) WindowAt(p geom.Point) *MemoryElement {
	for i := len(b.stack.children) - 1; i >= 0; i-- {
		el := b.stack.children[i]
		if el.Visible() && el.Bounds().Contains(p) {
			return el
		}
	}
	return nil
}

// IconAt returns the dock icon containing p, or nil.
func (b *MemoryBackend) IconAt(p geom.Point) *MemoryElement {
	for _, el := range b.dock.children {
		if el.Visible() && el.Bounds().Contains(p) {
			return el
		}
	}
	return nil
}

// Captured returns the element holding pointerID, or nil.
func (b *MemoryBackend) Captured(pointerID int) *MemoryElement {
	return b.captures[pointerID]
}

// ReleasePointer drops any capture held for pointerID.
func (b *MemoryBackend) ReleasePointer(pointerID int) {
	delete(b.captures, pointerID)
}

type memContainer struct {
	rect     geom.Rect
	children []*MemoryElement
}

func (c *memContainer) Bounds() geom.Rect { return c.rect }

func (c *memContainer) Children() []Element {
	out := make([]Element, len(c.children))
	for i, el := range c.children {
		out[i] = el
	}
	return out
}

// MemoryElement is an Element held in memory.
type MemoryElement struct {
	backend    *MemoryBackend
	id         string
	title      string
	classes    []string
	inline     anim.Props
	minWidth   float64
	minHeight  float64
	cursor     Cursor
	origin     TransformOrigin
	hidden     bool
	animations []*anim.Animation
}

var _ Element = (*MemoryElement)(nil)

func newMemoryElement(b *MemoryBackend, id, title string, classes []string, r geom.Rect) *MemoryElement {
	return &MemoryElement{
		backend: b,
		id:      id,
		title:   title,
		classes: classes,
		inline: anim.Props{
			anim.PropTop:     r.Y,
			anim.PropLeft:    r.X,
			anim.PropWidth:   r.Width,
			anim.PropHeight:  r.Height,
			anim.PropOpacity: 1,
			anim.PropScale:   1,
		},
		cursor: CursorDefault,
	}
}

func (e *MemoryElement) ID() string    { return e.id }
func (e *MemoryElement) Title() string { return e.title }

func (e *MemoryElement) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// presented returns inline style overlaid with every running animation, in
// start order.
func (e *MemoryElement) presented() anim.Props {
	out := e.inline.Clone()
	kept := e.animations[:0]
	for _, a := range e.animations {
		if a.Finished() {
			continue
		}
		kept = append(kept, a)
		for k, v := range a.Value() {
			out[k] = v
		}
	}
	e.animations = kept
	return out
}

// Layout returns the unscaled layout rectangle.
func (e *MemoryElement) Layout() geom.Rect {
	p := e.presented()
	return geom.Rect{X: p[anim.PropLeft], Y: p[anim.PropTop], Width: p[anim.PropWidth], Height: p[anim.PropHeight]}
}

func (e *MemoryElement) Bounds() geom.Rect {
	p := e.presented()
	r := geom.Rect{X: p[anim.PropLeft], Y: p[anim.PropTop], Width: p[anim.PropWidth], Height: p[anim.PropHeight]}
	scale := p[anim.PropScale]
	if scale == 1 {
		return r
	}
	origin := r.Center()
	if e.origin == OriginTopLeft {
		origin = geom.Point{X: r.X, Y: r.Y}
	}
	return r.Scale(scale, origin)
}

func (e *MemoryElement) ComputedStyle() ComputedStyle {
	p := e.presented()
	return ComputedStyle{
		Top:       p[anim.PropTop],
		Left:      p[anim.PropLeft],
		Width:     p[anim.PropWidth],
		Height:    p[anim.PropHeight],
		MinWidth:  e.minWidth,
		MinHeight: e.minHeight,
		Opacity:   p[anim.PropOpacity],
	}
}

// Inline returns a copy of the committed inline style.
func (e *MemoryElement) Inline() anim.Props { return e.inline.Clone() }

// Scale returns the presented scale factor.
func (e *MemoryElement) Scale() float64 { return e.presented()[anim.PropScale] }

func (e *MemoryElement) Apply(props anim.Props) {
	for k, v := range props {
		e.inline[k] = v
	}
}

func (e *MemoryElement) SetCursor(c Cursor)                   { e.cursor = c }
func (e *MemoryElement) Cursor() Cursor                       { return e.cursor }
func (e *MemoryElement) SetTransformOrigin(o TransformOrigin) { e.origin = o }
func (e *MemoryElement) TransformOrigin() TransformOrigin     { return e.origin }
func (e *MemoryElement) Hide()                                { e.hidden = true }
func (e *MemoryElement) Hidden() bool                         { return e.hidden }

// Animating reports whether any animation is running on the element.
func (e *MemoryElement) Animating() bool {
	e.presented()
	return len(e.animations) > 0
}

// Visible reports whether the element is displayed and not fully transparent.
func (e *MemoryElement) Visible() bool {
	return !e.hidden && e.presented()[anim.PropOpacity] > 0
}

func (e *MemoryElement) CapturePointer(pointerID int) {
	e.backend.captures[pointerID] = e
}

func (e *MemoryElement) Animate(frames []anim.Props, opts anim.Options, onFinish func()) {
	a := e.backend.timeline.Play(frames, e.presented(), opts, onFinish)
	e.animations = append(e.animations, a)
}

// HeaderRect returns the header bar rectangle in presented coordinates.
func (e *MemoryElement) HeaderRect() geom.Rect {
	r := e.Layout()
	c := e.backend.chrome
	return geom.Rect{
		X:      r.X + c.PadX,
		Y:      r.Y + c.PadY,
		Width:  r.Width - 2*c.PadX,
		Height: c.HeaderHeight,
	}
}

// ButtonRects returns the header control buttons keyed by control class,
// right-aligned in minimize, maximize, close order.
func (e *MemoryElement) ButtonRects() map[string]geom.Rect {
	h := e.HeaderRect()
	w := e.backend.chrome.ButtonWidth
	out := make(map[string]geom.Rect, len(controlClasses))
	if w <= 0 {
		return out
	}
	x := h.Right() - w*float64(len(controlClasses))
	for _, name := range controlClasses {
		out[name] = geom.Rect{X: x, Y: h.Y, Width: w, Height: h.Height}
		x += w
	}
	return out
}

// TargetAt classifies the part of the element under p.
func (e *MemoryElement) TargetAt(p geom.Point) Target {
	if !e.Visible() || !e.Bounds().Contains(p) {
		return Target{Kind: TargetNone}
	}
	header := e.HeaderRect()
	if !header.Contains(p) || p.Y >= header.Bottom() {
		return Target{Kind: TargetBody}
	}
	for name, r := range e.ButtonRects() {
		if p.X >= r.X && p.X < r.Right() {
			return Target{Kind: TargetButton, Classes: []string{"control", name}}
		}
	}
	label := float64(len([]rune(e.title))) * e.backend.chrome.LabelCharWidth
	if label > 0 && p.X < header.X+label {
		return Target{Kind: TargetHeaderLabel}
	}
	return Target{Kind: TargetHeader}
}
