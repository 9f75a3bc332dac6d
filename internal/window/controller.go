package window

import (
	"log/slog"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
)

// Controller runs the interaction state machine of one window and keeps its
// dock icon in sync. All methods must be called from a single goroutine.
type Controller struct {
	el       platform.Element
	icon     platform.Element
	layout   Layout
	settings Settings
	logger   *slog.Logger

	minWidth  float64
	minHeight float64

	phase     Phase
	direction Direction
	selected  Control

	maximized  bool
	minimized  bool
	minimizing bool
	closing    bool
	closed     bool
	// maximizing counts maximize animations in flight; retriggering
	// mid-animation is allowed.
	maximizing int

	prev Snapshot

	// offset is the pointer position inside the window while moving.
	offset geom.Point
	// resizeStart and resizeFrom are the pointer position and window rect
	// at the start of a resize.
	resizeStart geom.Point
	resizeFrom  geom.Rect
}

// NewController binds a controller to a window element and its dock icon.
// icon may be nil, in which case minimize and dock clicks are ignored.
func NewController(el, icon platform.Element, layout Layout, settings Settings, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.Easing == nil {
		settings.Easing = anim.Linear{}
	}
	style := el.ComputedStyle()
	return &Controller{
		el:        el,
		icon:      icon,
		layout:    layout,
		settings:  settings,
		logger:    logger.With("window", el.ID()),
		minWidth:  style.MinWidth,
		minHeight: style.MinHeight,
	}
}

// ID returns the window identifier.
func (c *Controller) ID() string { return c.el.ID() }

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase { return c.phase }

// State returns the combined interaction state.
func (c *Controller) State() State {
	switch {
	case c.closed:
		return StateClosed
	case c.closing:
		return StateCloseAnimating
	case c.minimizing:
		return StateMinimizeAnimating
	case c.maximizing > 0:
		return StateMaximizeAnimating
	case c.phase == PhaseMoving:
		return StateMoving
	case c.phase == PhaseResizing:
		return StateResizing
	default:
		return StateIdle
	}
}

func (c *Controller) Maximized() bool { return c.maximized }
func (c *Controller) Minimized() bool { return c.minimized }
func (c *Controller) Closed() bool    { return c.closed }

// Direction returns the resize zone detected by the last hover.
func (c *Controller) Direction() Direction { return c.direction }

// Selected returns the control pressed but not yet released.
func (c *Controller) Selected() Control { return c.selected }

// HasIcon reports whether the window is paired with a dock icon.
func (c *Controller) HasIcon() bool { return c.icon != nil }

// PrevStyle returns the last saved geometry snapshot.
func (c *Controller) PrevStyle() Snapshot { return c.prev }

// Status returns a snapshot of the controller for reporting.
func (c *Controller) Status() Status {
	return Status{
		ID:        c.el.ID(),
		State:     c.State(),
		Maximized: c.maximized,
		Minimized: c.minimized,
		Closed:    c.closed,
		Direction: c.direction,
		Selected:  c.selected,
		Bounds:    c.el.Bounds(),
	}
}

func (c *Controller) inert() bool {
	return c.closing || c.closed
}

// PointerDown starts a resize, a move or a control press depending on the
// hover zone and the event target.
func (c *Controller) PointerDown(ev platform.PointerEvent) {
	if ev.Target.Kind == platform.TargetNone || c.inert() {
		return
	}

	rect := c.el.Bounds()
	c.el.CapturePointer(ev.PointerID)

	switch {
	case c.direction != DirNone:
		c.phase = PhaseResizing
		c.resizeStart = ev.Point()
		c.resizeFrom = rect
		c.logger.Debug("resize started", "direction", c.direction.String())
	case ev.Target.IsHeader():
		c.offset = geom.Point{X: ev.X - rect.Left(), Y: ev.Y - rect.Top()}
		c.phase = PhaseMoving
		c.logger.Debug("move started")
	case ev.Target.Kind == platform.TargetButton:
		if ctl := ControlFromClasses(ev.Target.Classes); ctl != ControlNone {
			c.selected = ctl
		}
	}
}

// PointerMove drags, resizes or updates the hover zone.
func (c *Controller) PointerMove(ev platform.PointerEvent) {
	if c.inert() {
		return
	}
	rect := c.el.Bounds()

	if c.phase == PhaseMoving {
		if c.maximized {
			c.offset.X = c.prev.Width * ev.X / rect.Width
			c.el.Apply(anim.Props{
				anim.PropWidth:  c.prev.Width,
				anim.PropHeight: c.prev.Height,
			})
			c.maximized = false
			c.logger.Debug("unmaximized by drag")
		}
		c.el.Apply(anim.Props{
			anim.PropLeft: ev.X - c.offset.X,
			anim.PropTop:  ev.Y - c.offset.Y,
		})
		return
	}

	if ev.Target.Kind != platform.TargetButton {
		c.selected = ControlNone
	}
	if c.maximized {
		return
	}

	if c.phase == PhaseResizing {
		c.resize(ev.Point())
		return
	}

	c.direction = detectDirection(rect, ev.Point(), c.settings.WindowOffset, c.settings.ResizeOffset)
	c.el.SetCursor(c.direction.Cursor())
}

func (c *Controller) resize(p geom.Point) {
	dx := c.resizeStart.X - p.X
	dy := c.resizeStart.Y - p.Y

	next, ok := resizeRect(c.direction, c.resizeFrom, dx, dy)
	if !ok {
		c.logger.Warn("unknown resize direction", "direction", int(c.direction))
		return
	}

	props := anim.Props{}
	if next.Width >= c.minWidth {
		props[anim.PropWidth] = next.Width
		props[anim.PropLeft] = next.X
	}
	if next.Height >= c.minHeight {
		props[anim.PropHeight] = next.Height
		props[anim.PropTop] = next.Y
	}
	if len(props) > 0 {
		c.el.Apply(props)
	}
}

// PointerUp ends the gesture and fires the pressed control, if any.
func (c *Controller) PointerUp(ev platform.PointerEvent) {
	c.StopGesture()

	if c.selected == ControlNone {
		return
	}
	ctl := c.selected
	c.selected = ControlNone
	if err := c.Perform(ctl); err != nil {
		c.logger.Debug("control ignored", "control", string(ctl), "error", err)
	}
}

// StopGesture ends any move or resize and resets the hover zone.
func (c *Controller) StopGesture() {
	c.phase = PhaseIdle
	c.direction = DirNone
	c.el.SetCursor(platform.CursorDefault)
}

// Perform runs a control action as if its button had been released.
func (c *Controller) Perform(ctl Control) error {
	if c.inert() {
		return ErrClosed
	}
	switch ctl {
	case ControlClose:
		c.close()
	case ControlMinimize:
		return c.minimize()
	case ControlMaximize:
		c.toggleMaximize()
	default:
		return ErrUnknownControl
	}
	return nil
}

func (c *Controller) snapshot() Snapshot {
	s := c.el.ComputedStyle()
	return Snapshot{Top: s.Top, Left: s.Left, Width: s.Width, Height: s.Height}
}

func (c *Controller) close() {
	c.closing = true
	c.logger.Info("closing")
	c.el.Animate(
		[]anim.Props{{anim.PropScale: c.settings.CloseScale, anim.PropOpacity: 0}},
		anim.Options{Duration: c.settings.CloseDuration, Easing: c.settings.Easing},
		func() {
			c.el.Hide()
			c.closing = false
			c.closed = true
		},
	)
}

func (c *Controller) minimize() error {
	if c.icon == nil {
		c.logger.Warn("minimize without dock icon")
		return ErrNoIcon
	}
	if c.minimizing || c.minimized {
		return nil
	}

	rect := c.el.Bounds()
	iconRect := c.icon.Bounds()

	c.minimizing = true
	// A maximized window keeps its pre-maximize snapshot.
	if !c.maximized {
		c.prev = c.snapshot()
	}
	c.el.SetTransformOrigin(platform.OriginTopLeft)
	c.el.Animate(
		[]anim.Props{c.iconFrame(iconRect, rect)},
		anim.Options{Duration: c.settings.MinimizeDuration, Easing: c.settings.Easing},
		func() {
			c.el.Apply(anim.Props{anim.PropOpacity: 0})
			c.minimizing = false
		},
	)
	c.minimized = true
	c.logger.Info("minimized")
	return nil
}

func (c *Controller) iconFrame(iconRect, rect geom.Rect) anim.Props {
	return anim.Props{
		anim.PropTop:   iconRect.Top(),
		anim.PropLeft:  iconRect.Left(),
		anim.PropScale: iconRect.Width / rect.Width,
	}
}

func (c *Controller) maximizedProps() anim.Props {
	l := c.layout
	off := c.settings.WindowOffset
	return anim.Props{
		anim.PropTop:    l.Panel.Height,
		anim.PropLeft:   -off,
		anim.PropWidth:  l.Stack.Width + off*2,
		anim.PropHeight: l.Dock.Top() - l.Panel.Height,
	}
}

func (c *Controller) toggleMaximize() {
	var props anim.Props
	if c.maximized {
		props = c.prev.props()
		c.maximized = false
		c.logger.Info("restoring from maximized")
	} else {
		c.prev = c.snapshot()
		props = c.maximizedProps()
		c.maximized = true
		c.logger.Info("maximizing")
	}

	c.maximizing++
	c.el.Animate(
		[]anim.Props{props},
		anim.Options{Duration: c.settings.MaximizeDuration, Easing: c.settings.Easing},
		func() {
			c.el.Apply(props)
			c.maximizing--
		},
	)
}

// DockClick toggles between minimized and restored. Clicks that arrive
// while a minimize or restore animation is running are dropped.
func (c *Controller) DockClick() error {
	if c.icon == nil {
		return ErrNoIcon
	}
	if c.inert() {
		return ErrClosed
	}

	rect := c.el.Bounds()
	iconRect := c.icon.Bounds()

	c.el.SetTransformOrigin(platform.OriginTopLeft)
	if c.minimizing {
		c.logger.Debug("dock click ignored, transition in flight")
		return nil
	}
	c.minimizing = true
	opts := anim.Options{Duration: c.settings.MinimizeDuration, Easing: c.settings.Easing}

	if c.minimized {
		c.el.Apply(anim.Props{anim.PropOpacity: 1})
		style := c.el.ComputedStyle()
		c.el.Animate(
			[]anim.Props{
				c.iconFrame(iconRect, rect),
				{anim.PropTop: style.Top, anim.PropLeft: style.Left, anim.PropScale: 1},
			},
			opts,
			func() {
				c.minimizing = false
				c.el.SetTransformOrigin(platform.OriginCenter)
			},
		)
		c.minimized = false
		c.logger.Info("restored from dock")
		return nil
	}

	c.el.Animate(
		[]anim.Props{c.iconFrame(iconRect, rect)},
		opts,
		func() {
			c.el.Apply(anim.Props{anim.PropOpacity: 0})
			c.minimizing = false
		},
	)
	c.minimized = true
	c.logger.Info("minimized from dock")
	return nil
}
