package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 200, Height: 150}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{150, 175}, true},
		{Point{100, 100}, true},
		{Point{300, 250}, true},
		{Point{99.5, 100}, false},
		{Point{300.5, 100}, false},
		{Point{100, 99}, false},
		{Point{100, 251}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectScale(t *testing.T) {
	r := Rect{X: 100, Y: 50, Width: 400, Height: 200}

	got := r.Scale(0.5, Point{X: 100, Y: 50})
	want := Rect{X: 100, Y: 50, Width: 200, Height: 100}
	if got != want {
		t.Fatalf("top-left scale = %+v, want %+v", got, want)
	}

	got = r.Scale(0.5, r.Center())
	want = Rect{X: 200, Y: 100, Width: 200, Height: 100}
	if got != want {
		t.Fatalf("center scale = %+v, want %+v", got, want)
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12, "12px"},
		{-8, "-8px"},
		{10.5, "10.5px"},
		{0, "0px"},
	}
	for _, tt := range tests {
		if got := Px(tt.in); got != tt.want {
			t.Errorf("Px(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithin(t *testing.T) {
	if !Within(12, 8, 4) || !Within(4, 8, 4) {
		t.Fatal("expected tolerance bounds to be inclusive")
	}
	if Within(12.01, 8, 4) {
		t.Fatal("expected 12.01 to be outside 8±4")
	}
}
