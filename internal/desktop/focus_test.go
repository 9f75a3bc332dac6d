package desktop

import (
	"testing"
	"time"

	"github.com/1broseidon/dockwm/internal/anim"

	"github.com/1broseidon/dockwm/internal/geom"
	"github.com/1broseidon/dockwm/internal/platform"
	"github.com/1broseidon/dockwm/internal/window"
)

// newGrid lays out four windows in a 2x2 arrangement:
//
//	tl tr
//	bl br
func newGrid(t *testing.T) (*Desktop, *platform.MemoryBackend) {
	t.Helper()
	now := time.Unix(1000, 0)
	b := platform.NewMemoryBackend(
		geom.Rect{Width: 1000, Height: 600},
		geom.Rect{X: 300, Y: 560, Width: 400, Height: 40},
		geom.Rect{Width: 1000, Height: 20},
		platform.Chrome{PadX: 10, PadY: 20, HeaderHeight: 20, ButtonWidth: 30},
		anim.NewTimeline(func() time.Time { return now }),
	)
	for _, w := range []struct {
		id   string
		x, y float64
	}{
		{"tl", 40, 50}, {"tr", 550, 60}, {"bl", 40, 300}, {"br", 560, 310},
	} {
		b.AddWindow(platform.WindowSpec{ID: w.id, Rect: geom.Rect{X: w.x, Y: w.y, Width: 300, Height: 200}})
		b.AddIcon(w.id, w.id, geom.Rect{X: 310, Y: 560, Width: 50, Height: 40})
	}
	return New(b, window.DefaultSettings(), discardLogger()), b
}

func TestNeighborMovesSpatially(t *testing.T) {
	d, _ := newGrid(t)

	tests := []struct {
		from string
		h    Heading
		want string
	}{
		{"tl", HeadingRight, "tr"},
		{"tl", HeadingDown, "bl"},
		{"br", HeadingUp, "tr"},
		{"br", HeadingLeft, "bl"},
	}
	for _, tt := range tests {
		if got := d.Neighbor(tt.from, tt.h); got != tt.want {
			t.Errorf("Neighbor(%s, %s) = %q, want %q", tt.from, tt.h, got, tt.want)
		}
	}
}

func TestNeighborWraps(t *testing.T) {
	d, _ := newGrid(t)

	if got := d.Neighbor("tr", HeadingRight); got != "tl" {
		t.Fatalf("wrap right from tr = %q, want tl", got)
	}
	if got := d.Neighbor("bl", HeadingDown); got != "tl" {
		t.Fatalf("wrap down from bl = %q, want tl", got)
	}
}

func TestNeighborSkipsClosedAndMinimized(t *testing.T) {
	d, b := newGrid(t)
	if err := d.Perform("tr", window.ControlClose); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	b.Timeline().Step(time.Unix(1001, 0))
	if err := d.Action("bl", "minimize"); err != nil {
		t.Fatalf("Action: %v", err)
	}
	b.Timeline().Step(time.Unix(1002, 0))

	if got := d.Focusable(); len(got) != 2 || got[0] != "tl" || got[1] != "br" {
		t.Fatalf("Focusable() = %v, want [tl br]", got)
	}
	if got := d.Neighbor("tl", HeadingRight); got == "tr" {
		t.Fatalf("closed window received focus")
	}

	if got := d.Neighbor("missing", HeadingUp); got != d.Focusable()[0] {
		t.Fatalf("unknown origin = %q, want first focusable", got)
	}
}
