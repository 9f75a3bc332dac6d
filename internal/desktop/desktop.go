// Package desktop owns the window controllers of one document and routes
// pointer, dock and programmatic events to them.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/dockwm/internal/platform"
	"github.com/1broseidon/dockwm/internal/window"
)

var (
	// ErrWindowNotFound is returned for IDs without a controller.
	ErrWindowNotFound = errors.New("window not found")
	// ErrUnknownAction is returned by Action for unrecognized action names.
	ErrUnknownAction = errors.New("unknown window action")
)

// ActionDock toggles a window through its dock icon.
const ActionDock = "dock"

// Actions lists the names accepted by Action.
var Actions = []string{
	string(window.ControlClose),
	string(window.ControlMinimize),
	string(window.ControlMaximize),
	ActionDock,
}

// Desktop is the set of window controllers for a document. It is not safe
// for concurrent use.
type Desktop struct {
	doc    platform.Document
	layout window.Layout
	logger *slog.Logger

	order       []string
	controllers map[string]*window.Controller
}

// New measures the document containers once and binds a controller to every
// stack child with the "window" class. Each window is paired with the dock
// child sharing its ID.
func New(doc platform.Document, settings window.Settings, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Desktop{
		doc: doc,
		layout: window.Layout{
			Stack: doc.Stack().Bounds(),
			Dock:  doc.Dock().Bounds(),
			Panel: doc.Panel().Bounds(),
		},
		logger:      logger,
		controllers: make(map[string]*window.Controller),
	}

	icons := make(map[string]platform.Element)
	for _, icon := range doc.Dock().Children() {
		icons[icon.ID()] = icon
	}

	for _, el := range doc.Stack().Children() {
		if !el.HasClass("window") {
			continue
		}
		id := el.ID()
		if _, dup := d.controllers[id]; dup {
			logger.Warn("duplicate window id, skipping", "window", id)
			continue
		}
		icon, ok := icons[id]
		if !ok {
			logger.Warn("no dock icon for window", "window", id)
		}
		d.controllers[id] = window.NewController(el, icon, d.layout, settings, logger)
		d.order = append(d.order, id)
	}

	logger.Debug("desktop ready", "windows", len(d.order))
	return d
}

// Layout returns the container rectangles measured at construction.
func (d *Desktop) Layout() window.Layout { return d.layout }

// Windows returns the window IDs in stacking order.
func (d *Desktop) Windows() []string {
	return append([]string(nil), d.order...)
}

// Controller returns the controller for id.
func (d *Desktop) Controller(id string) (*window.Controller, error) {
	c, ok := d.controllers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	return c, nil
}

// Status returns the status of one window.
func (d *Desktop) Status(id string) (window.Status, error) {
	c, err := d.Controller(id)
	if err != nil {
		return window.Status{}, err
	}
	return c.Status(), nil
}

// Statuses returns the status of every window in stacking order.
func (d *Desktop) Statuses() []window.Status {
	out := make([]window.Status, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.controllers[id].Status())
	}
	return out
}

func (d *Desktop) PointerDown(id string, ev platform.PointerEvent) error {
	c, err := d.Controller(id)
	if err != nil {
		return err
	}
	c.PointerDown(ev)
	return nil
}

func (d *Desktop) PointerMove(id string, ev platform.PointerEvent) error {
	c, err := d.Controller(id)
	if err != nil {
		return err
	}
	c.PointerMove(ev)
	return nil
}

func (d *Desktop) PointerUp(id string, ev platform.PointerEvent) error {
	c, err := d.Controller(id)
	if err != nil {
		return err
	}
	c.PointerUp(ev)
	return nil
}

// ClickIcon delivers a dock icon click to the window sharing its ID.
func (d *Desktop) ClickIcon(id string) error {
	c, err := d.Controller(id)
	if err != nil {
		return err
	}
	return c.DockClick()
}

// Perform runs a window control without a pointer gesture.
func (d *Desktop) Perform(id string, ctl window.Control) error {
	c, err := d.Controller(id)
	if err != nil {
		return err
	}
	return c.Perform(ctl)
}

// Action runs a named action: close, minimize, maximize or dock.
func (d *Desktop) Action(id, action string) error {
	name := strings.ToLower(strings.TrimSpace(action))
	if name == ActionDock {
		return d.ClickIcon(id)
	}
	ctl := window.ParseControl(name)
	if ctl == window.ControlNone {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return d.Perform(id, ctl)
}

// ContextMenu ends every drag and resize in progress.
func (d *Desktop) ContextMenu() {
	for _, id := range d.order {
		d.controllers[id].StopGesture()
	}
}
