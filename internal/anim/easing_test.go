package anim

import (
	"math"
	"testing"
)

func TestParseEasing(t *testing.T) {
	tests := []struct {
		in      string
		want    Easing
		wantErr bool
	}{
		{"linear", Linear{}, false},
		{"", Linear{}, false},
		{"ease-in-out", EaseInOut, false},
		{"cubic-bezier(.26,0,.06,1.01)", CubicBezier{0.26, 0, 0.06, 1.01}, false},
		{"cubic-bezier( 0.1 , 0.2 , 0.3 , 0.4 )", CubicBezier{0.1, 0.2, 0.3, 0.4}, false},
		{"cubic-bezier(1.2,0,0,1)", nil, true},
		{"cubic-bezier(0,0,1)", nil, true},
		{"cubic-bezier(a,0,1,1)", nil, true},
		{"steps(4)", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseEasing(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseEasing(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEasing(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEasing(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestCubicBezierEndpointsAndMonotonic(t *testing.T) {
	curves := []CubicBezier{Ease, EaseIn, EaseOut, EaseInOut, {0.26, 0, 0.06, 1.01}}
	for _, c := range curves {
		if got := c.Ease(0); got != 0 {
			t.Errorf("%s.Ease(0) = %v", c, got)
		}
		if got := c.Ease(1); got != 1 {
			t.Errorf("%s.Ease(1) = %v", c, got)
		}
		prev := 0.0
		for i := 1; i < 100; i++ {
			v := c.Ease(float64(i) / 100)
			if v+1e-9 < prev && c.Y2 <= 1 {
				t.Fatalf("%s not monotonic at %d: %v < %v", c, i, v, prev)
			}
			prev = v
		}
	}
}

func TestCubicBezierLinearCurve(t *testing.T) {
	c := CubicBezier{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3}
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := c.Ease(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("Ease(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestCubicBezierString(t *testing.T) {
	c := CubicBezier{0.26, 0, 0.06, 1.01}
	if got := c.String(); got != "cubic-bezier(0.26,0,0.06,1.01)" {
		t.Fatalf("String() = %q", got)
	}
}
