package window

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
)

type manualClock struct{ t time.Time }

func (c *manualClock) Now() time.Time { return c.t }

type fixture struct {
	clock   *manualClock
	backend *platform.MemoryBackend
	win     *platform.MemoryElement
	icon    *platform.MemoryElement
	ctl     *Controller
}

var testLayout = Layout{
	Stack: geom.Rect{X: 0, Y: 0, Width: 1280, Height: 720},
	Dock:  geom.Rect{X: 400, Y: 680, Width: 480, Height: 40},
	Panel: geom.Rect{X: 0, Y: 0, Width: 1280, Height: 24},
}

func newFixture(t *testing.T, logger *slog.Logger) *fixture {
	t.Helper()
	clock := &manualClock{t: time.Unix(1000, 0)}
	b := platform.NewMemoryBackend(
		testLayout.Stack, testLayout.Dock, testLayout.Panel,
		platform.Chrome{PadX: 8, PadY: 8, HeaderHeight: 24, ButtonWidth: 24},
		anim.NewTimeline(clock.Now),
	)
	win := b.AddWindow(platform.WindowSpec{
		ID:        "term",
		Title:     "Terminal",
		Rect:      geom.Rect{X: 100, Y: 100, Width: 400, Height: 300},
		MinWidth:  200,
		MinHeight: 150,
	})
	icon := b.AddIcon("term", "Terminal", geom.Rect{X: 420, Y: 684, Width: 32, Height: 32})
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fixture{
		clock:   clock,
		backend: b,
		win:     win,
		icon:    icon,
		ctl:     NewController(win, icon, testLayout, DefaultSettings(), logger),
	}
}

// event builds a pointer event with the target the backend reports at x,y.
func (f *fixture) event(x, y float64) platform.PointerEvent {
	p := geom.Point{X: x, Y: y}
	return platform.PointerEvent{PointerID: 1, X: x, Y: y, Target: f.win.TargetAt(p)}
}

func (f *fixture) finish() {
	f.backend.Timeline().Finish()
}

func assertInline(t *testing.T, el *platform.MemoryElement, want Snapshot) {
	t.Helper()
	in := el.Inline()
	got := Snapshot{
		Top:    in[anim.PropTop],
		Left:   in[anim.PropLeft],
		Width:  in[anim.PropWidth],
		Height: in[anim.PropHeight],
	}
	const eps = 1e-9
	if math.Abs(got.Top-want.Top) > eps || math.Abs(got.Left-want.Left) > eps ||
		math.Abs(got.Width-want.Width) > eps || math.Abs(got.Height-want.Height) > eps {
		t.Fatalf("inline geometry = %+v, want %+v", got, want)
	}
}

func TestResizeDirections(t *testing.T) {
	// Window at 100,100 400x300; edge lines sit 8px inside each edge.
	tests := []struct {
		name   string
		hover  geom.Point
		dir    Direction
		cursor platform.Cursor
		want   Snapshot
	}{
		{"top-left", geom.Point{X: 108, Y: 108}, DirTopLeft, platform.CursorSEResize, Snapshot{Top: 130, Left: 120, Width: 380, Height: 270}},
		{"top-right", geom.Point{X: 492, Y: 108}, DirTopRight, platform.CursorSWResize, Snapshot{Top: 130, Left: 100, Width: 420, Height: 270}},
		{"bottom-left", geom.Point{X: 108, Y: 392}, DirBottomLeft, platform.CursorNEResize, Snapshot{Top: 100, Left: 120, Width: 380, Height: 330}},
		{"bottom-right", geom.Point{X: 492, Y: 392}, DirBottomRight, platform.CursorNWResize, Snapshot{Top: 100, Left: 100, Width: 420, Height: 330}},
		{"top", geom.Point{X: 300, Y: 108}, DirTop, platform.CursorNResize, Snapshot{Top: 130, Left: 100, Width: 400, Height: 270}},
		{"bottom", geom.Point{X: 300, Y: 392}, DirBottom, platform.CursorSResize, Snapshot{Top: 100, Left: 100, Width: 400, Height: 330}},
		{"left", geom.Point{X: 108, Y: 250}, DirLeft, platform.CursorEResize, Snapshot{Top: 100, Left: 120, Width: 380, Height: 300}},
		{"right", geom.Point{X: 492, Y: 250}, DirRight, platform.CursorWResize, Snapshot{Top: 100, Left: 100, Width: 420, Height: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			f.ctl.PointerMove(f.event(tt.hover.X, tt.hover.Y))
			if f.ctl.Direction() != tt.dir {
				t.Fatalf("hover direction = %v, want %v", f.ctl.Direction(), tt.dir)
			}
			if f.win.Cursor() != tt.cursor {
				t.Fatalf("cursor = %q, want %q", f.win.Cursor(), tt.cursor)
			}

			f.ctl.PointerDown(f.event(tt.hover.X, tt.hover.Y))
			if f.ctl.Phase() != PhaseResizing {
				t.Fatalf("phase = %v, want resizing", f.ctl.Phase())
			}

			// Drag 20px right and 30px down.
			f.ctl.PointerMove(f.event(tt.hover.X+20, tt.hover.Y+30))
			assertInline(t, f.win, tt.want)
		})
	}
}

func TestResizeClampsEachAxisIndependently(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerMove(f.event(492, 392))
	f.ctl.PointerDown(f.event(492, 392))

	// Width would drop to 150 (< 200) while height grows to 350.
	f.ctl.PointerMove(f.event(242, 442))
	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 400, Height: 350})

	// Both axes under their minimum: nothing changes.
	f.ctl.PointerMove(f.event(192, 192))
	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 400, Height: 350})

	// Exactly the minimum is accepted.
	f.ctl.PointerMove(f.event(292, 242))
	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 200, Height: 150})
}

func TestResizeFromTopLeftNeverGoesBelowMinimum(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerMove(f.event(108, 108))
	f.ctl.PointerDown(f.event(108, 108))

	for _, step := range []float64{50, 150, 200, 250, 400} {
		f.ctl.PointerMove(f.event(108+step, 108+step))
		s := f.win.ComputedStyle()
		if s.Width < 200 || s.Height < 150 {
			t.Fatalf("step %v: size %vx%v below minimum", step, s.Width, s.Height)
		}
		// Left edge moves with width so the right edge stays put.
		if right := s.Left + s.Width; right != 500 {
			t.Fatalf("step %v: right edge = %v, want 500", step, right)
		}
	}
}

func TestUnknownResizeDirectionWarnsAndSkips(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, slog.New(slog.NewTextHandler(&buf, nil)))

	f.ctl.phase = PhaseResizing
	f.ctl.direction = Direction(99)
	f.ctl.resizeStart = geom.Point{X: 300, Y: 300}
	f.ctl.resizeFrom = f.win.Bounds()

	f.ctl.PointerMove(f.event(350, 350))

	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 400, Height: 300})
	if !strings.Contains(buf.String(), "unknown resize direction") {
		t.Fatalf("expected warning, got log %q", buf.String())
	}
}

func TestDetectDirectionCornerWins(t *testing.T) {
	r := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		p    geom.Point
		want Direction
	}{
		{geom.Point{X: 8, Y: 8}, DirTopLeft},
		{geom.Point{X: 4, Y: 12}, DirTopLeft},
		{geom.Point{X: 92, Y: 8}, DirTopRight},
		{geom.Point{X: 8, Y: 92}, DirBottomLeft},
		{geom.Point{X: 92, Y: 92}, DirBottomRight},
		{geom.Point{X: 8, Y: 50}, DirLeft},
		{geom.Point{X: 92, Y: 50}, DirRight},
		{geom.Point{X: 50, Y: 8}, DirTop},
		{geom.Point{X: 50, Y: 92}, DirBottom},
		{geom.Point{X: 50, Y: 50}, DirNone},
		{geom.Point{X: 3, Y: 50}, DirNone},
		{geom.Point{X: 13, Y: 50}, DirNone},
	}

	for _, tt := range tests {
		if got := detectDirection(r, tt.p, 8, 4); got != tt.want {
			t.Errorf("detectDirection(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDetectDirectionSmallWindowPrefersFirstCorner(t *testing.T) {
	// In a 16x16 window every zone overlaps; top-left is checked first.
	r := geom.Rect{X: 0, Y: 0, Width: 16, Height: 16}
	if got := detectDirection(r, geom.Point{X: 8, Y: 8}, 8, 4); got != DirTopLeft {
		t.Fatalf("got %v, want top-left", got)
	}
}

func TestMoveByHeader(t *testing.T) {
	f := newFixture(t, nil)

	ev := f.event(200, 120)
	if !ev.Target.IsHeader() {
		t.Fatalf("expected header target, got %v", ev.Target.Kind)
	}
	f.ctl.PointerMove(ev)
	f.ctl.PointerDown(ev)
	if f.ctl.State() != StateMoving {
		t.Fatalf("state = %v, want moving", f.ctl.State())
	}

	f.ctl.PointerMove(f.event(300, 220))
	assertInline(t, f.win, Snapshot{Top: 200, Left: 200, Width: 400, Height: 300})

	f.ctl.PointerUp(f.event(300, 220))
	if f.ctl.State() != StateIdle {
		t.Fatalf("state = %v, want idle", f.ctl.State())
	}
	if f.backend.Captured(1) != f.win {
		t.Fatal("expected pointer to be captured by the window")
	}
}

func TestMovingSkipsHoverDetection(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerDown(f.event(200, 120))
	// The pointer passes over what would be the window's left edge zone.
	f.ctl.PointerMove(f.event(208, 250))
	if f.ctl.Direction() != DirNone {
		t.Fatalf("direction = %v while moving, want none", f.ctl.Direction())
	}
}

func TestDragMaximizedWindowRestoresSizeFirst(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.ctl.Perform(ControlMaximize); err != nil {
		t.Fatalf("maximize: %v", err)
	}
	f.finish()
	if !f.ctl.Maximized() {
		t.Fatal("expected maximized")
	}

	f.ctl.PointerDown(f.event(640, 40))
	if f.ctl.Phase() != PhaseMoving {
		t.Fatalf("phase = %v, want moving", f.ctl.Phase())
	}
	f.ctl.PointerMove(f.event(640, 60))

	if f.ctl.Maximized() {
		t.Fatal("expected drag to clear maximized")
	}
	offsetX := 400 * 640 / 1296.0
	assertInline(t, f.win, Snapshot{Top: 60 - (40 - 24), Left: 640 - offsetX, Width: 400, Height: 300})
}

func TestMaximizeRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	orig := Snapshot{Top: 100, Left: 100, Width: 400, Height: 300}

	if err := f.ctl.Perform(ControlMaximize); err != nil {
		t.Fatalf("maximize: %v", err)
	}
	if f.ctl.State() != StateMaximizeAnimating {
		t.Fatalf("state = %v, want maximize-animating", f.ctl.State())
	}
	// Animation does not commit until it finishes.
	assertInline(t, f.win, orig)

	f.finish()
	assertInline(t, f.win, Snapshot{Top: 24, Left: -8, Width: 1296, Height: 656})
	if f.ctl.PrevStyle() != orig {
		t.Fatalf("prev style = %+v, want %+v", f.ctl.PrevStyle(), orig)
	}

	if err := f.ctl.Perform(ControlMaximize); err != nil {
		t.Fatalf("restore: %v", err)
	}
	f.finish()
	assertInline(t, f.win, orig)
	if f.ctl.Maximized() || f.ctl.State() != StateIdle {
		t.Fatalf("expected idle and not maximized, got %v maximized=%v", f.ctl.State(), f.ctl.Maximized())
	}
}

func TestMaximizedWindowIgnoresHover(t *testing.T) {
	f := newFixture(t, nil)
	_ = f.ctl.Perform(ControlMaximize)
	f.finish()

	// The left edge line of the maximized rect is at x=0.
	f.ctl.PointerMove(f.event(0, 300))
	if f.ctl.Direction() != DirNone {
		t.Fatalf("direction = %v, want none while maximized", f.ctl.Direction())
	}
}

func TestMinimizeThenDockRestore(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.ctl.Perform(ControlMinimize); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if f.ctl.State() != StateMinimizeAnimating || !f.ctl.Minimized() {
		t.Fatalf("state = %v minimized=%v", f.ctl.State(), f.ctl.Minimized())
	}
	if f.win.TransformOrigin() != platform.OriginTopLeft {
		t.Fatal("expected top-left transform origin while minimizing")
	}

	f.finish()
	if got := f.win.ComputedStyle().Opacity; got != 0 {
		t.Fatalf("opacity = %v, want 0", got)
	}
	if f.ctl.State() != StateIdle {
		t.Fatalf("state = %v, want idle", f.ctl.State())
	}

	if err := f.ctl.DockClick(); err != nil {
		t.Fatalf("dock click: %v", err)
	}
	if got := f.win.Inline()[anim.PropOpacity]; got != 1 {
		t.Fatalf("opacity = %v, want 1 as soon as restore starts", got)
	}
	// Restore starts from the icon rectangle.
	if b := f.win.Bounds(); math.Abs(b.X-420) > 1e-9 || math.Abs(b.Y-684) > 1e-9 || math.Abs(b.Width-32) > 1e-9 {
		t.Fatalf("restore start bounds = %+v, want icon rect", b)
	}

	f.finish()
	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 400, Height: 300})
	if f.ctl.Minimized() {
		t.Fatal("expected restored")
	}
	if f.win.TransformOrigin() != platform.OriginCenter {
		t.Fatal("expected transform origin reset to center")
	}
	if b := f.win.Bounds(); b != (geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}) {
		t.Fatalf("bounds = %+v after restore", b)
	}
}

func TestDockClickMinimizesAndRestores(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.ctl.DockClick(); err != nil {
		t.Fatalf("dock click: %v", err)
	}
	f.finish()
	if !f.ctl.Minimized() || f.win.Visible() {
		t.Fatal("expected first dock click to minimize")
	}

	_ = f.ctl.DockClick()
	f.finish()
	if f.ctl.Minimized() || !f.win.Visible() {
		t.Fatal("expected second dock click to restore")
	}
}

func TestDockDoubleClickDuringAnimationIsNoOp(t *testing.T) {
	f := newFixture(t, nil)

	_ = f.ctl.DockClick()
	_ = f.ctl.DockClick()

	if n := len(f.backend.Timeline().Running()); n != 1 {
		t.Fatalf("running animations = %d, want 1", n)
	}
	f.finish()
	if !f.ctl.Minimized() {
		t.Fatal("expected exactly one transition to minimized")
	}
	if got := f.win.ComputedStyle().Opacity; got != 0 {
		t.Fatalf("opacity = %v, want 0", got)
	}
}

func TestPointerUpOnButtonDispatchesControl(t *testing.T) {
	f := newFixture(t, nil)

	ev := f.event(430, 120)
	if ev.Target.Kind != platform.TargetButton {
		t.Fatalf("target = %v, want button", ev.Target.Kind)
	}
	f.ctl.PointerMove(ev)
	f.ctl.PointerDown(ev)
	if f.ctl.Selected() != ControlMinimize {
		t.Fatalf("selected = %q, want minimize", f.ctl.Selected())
	}
	f.ctl.PointerUp(ev)
	if f.ctl.Selected() != ControlNone {
		t.Fatal("expected selection cleared after pointer up")
	}
	if !f.ctl.Minimized() {
		t.Fatal("expected minimize to be dispatched")
	}
}

func TestLeavingButtonCancelsControl(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerDown(f.event(480, 120))
	if f.ctl.Selected() != ControlClose {
		t.Fatalf("selected = %q, want close", f.ctl.Selected())
	}
	f.ctl.PointerMove(f.event(300, 250))
	f.ctl.PointerUp(f.event(300, 250))

	if f.ctl.State() != StateIdle || f.backend.Timeline().Active() {
		t.Fatal("expected no control to fire after leaving the button")
	}
}

func TestCloseIsTerminal(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.ctl.Perform(ControlClose); err != nil {
		t.Fatalf("close: %v", err)
	}
	if f.ctl.State() != StateCloseAnimating {
		t.Fatalf("state = %v, want close-animating", f.ctl.State())
	}
	f.finish()

	if !f.win.Hidden() || !f.ctl.Closed() {
		t.Fatal("expected window hidden and closed")
	}
	if err := f.ctl.Perform(ControlMaximize); err != ErrClosed {
		t.Fatalf("maximize after close = %v, want ErrClosed", err)
	}
	if err := f.ctl.Perform(ControlMinimize); err != ErrClosed {
		t.Fatalf("minimize after close = %v, want ErrClosed", err)
	}
	if err := f.ctl.DockClick(); err != ErrClosed {
		t.Fatalf("dock click after close = %v, want ErrClosed", err)
	}
	f.ctl.PointerDown(f.event(200, 120))
	if f.ctl.Phase() != PhaseIdle || !f.win.Hidden() {
		t.Fatal("closed window must stay hidden and idle")
	}
}

func TestPointerUpAlwaysResetsHover(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerMove(f.event(108, 108))
	if f.win.Cursor() != platform.CursorSEResize {
		t.Fatalf("cursor = %q", f.win.Cursor())
	}
	f.ctl.PointerUp(f.event(108, 108))
	if f.ctl.Direction() != DirNone || f.win.Cursor() != platform.CursorDefault {
		t.Fatalf("direction=%v cursor=%q after pointer up", f.ctl.Direction(), f.win.Cursor())
	}
}

func TestStopGestureEndsResize(t *testing.T) {
	f := newFixture(t, nil)

	f.ctl.PointerMove(f.event(492, 250))
	f.ctl.PointerDown(f.event(492, 250))
	f.ctl.StopGesture()
	f.ctl.PointerMove(f.event(600, 250))

	assertInline(t, f.win, Snapshot{Top: 100, Left: 100, Width: 400, Height: 300})
}

func TestMinimizeWhileMaximizedKeepsSnapshot(t *testing.T) {
	f := newFixture(t, nil)
	orig := Snapshot{Top: 100, Left: 100, Width: 400, Height: 300}

	_ = f.ctl.Perform(ControlMaximize)
	f.finish()
	_ = f.ctl.Perform(ControlMinimize)
	f.finish()
	_ = f.ctl.DockClick()
	f.finish()

	if !f.ctl.Maximized() {
		t.Fatal("expected window to stay maximized through minimize/restore")
	}
	_ = f.ctl.Perform(ControlMaximize)
	f.finish()
	assertInline(t, f.win, orig)
}

func TestMissingIcon(t *testing.T) {
	f := newFixture(t, nil)
	ctl := NewController(f.win, nil, testLayout, DefaultSettings(), nil)

	if err := ctl.Perform(ControlMinimize); err != ErrNoIcon {
		t.Fatalf("minimize = %v, want ErrNoIcon", err)
	}
	if err := ctl.DockClick(); err != ErrNoIcon {
		t.Fatalf("dock click = %v, want ErrNoIcon", err)
	}
	if err := ctl.Perform(Control("fullscreen")); err != ErrUnknownControl {
		t.Fatalf("perform = %v, want ErrUnknownControl", err)
	}
}

func TestControlFromClasses(t *testing.T) {
	tests := []struct {
		classes []string
		want    Control
	}{
		{[]string{"control", "close"}, ControlClose},
		{[]string{"maximize", "minimize"}, ControlMaximize},
		{[]string{"control"}, ControlNone},
		{nil, ControlNone},
	}
	for _, tt := range tests {
		if got := ControlFromClasses(tt.classes); got != tt.want {
			t.Errorf("ControlFromClasses(%v) = %q, want %q", tt.classes, got, tt.want)
		}
	}
}
