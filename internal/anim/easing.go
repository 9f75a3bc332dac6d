package anim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing interface {
	Ease(t float64) float64
}

// Linear is the identity easing.
type Linear struct{}

func (Linear) Ease(t float64) float64 { return clamp01(t) }

// CubicBezier is a CSS cubic-bezier timing function with fixed end points
// (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Named CSS timing functions.
var (
	Ease      = CubicBezier{0.25, 0.1, 0.25, 1}
	EaseIn    = CubicBezier{0.42, 0, 1, 1}
	EaseOut   = CubicBezier{0, 0, 0.58, 1}
	EaseInOut = CubicBezier{0.42, 0, 0.58, 1}
)

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 40
)

func bezierCoord(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// Ease solves x(s) = t for the curve parameter and returns y(s).
func (c CubicBezier) Ease(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}

	s := t
	for i := 0; i < newtonIterations; i++ {
		x := bezierCoord(s, c.X1, c.X2) - t
		if math.Abs(x) < newtonEpsilon {
			return bezierCoord(s, c.Y1, c.Y2)
		}
		d := bezierSlope(s, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
	}

	// Newton failed to converge; fall back to bisection on [0,1].
	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < bisectIterations; i++ {
		x := bezierCoord(s, c.X1, c.X2)
		if math.Abs(x-t) < newtonEpsilon {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezierCoord(s, c.Y1, c.Y2)
}

func (c CubicBezier) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("cubic-bezier(%s,%s,%s,%s)", f(c.X1), f(c.Y1), f(c.X2), f(c.Y2))
}

// ParseEasing parses a CSS timing function. Supported: linear, ease, ease-in,
// ease-out, ease-in-out and cubic-bezier(x1,y1,x2,y2).
func ParseEasing(s string) (Easing, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "linear":
		return Linear{}, nil
	case "ease":
		return Ease, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}

	if !strings.HasPrefix(s, "cubic-bezier(") || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("unsupported easing %q", s)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "cubic-bezier("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("cubic-bezier needs 4 values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("cubic-bezier value %q: %w", strings.TrimSpace(p), err)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return nil, fmt.Errorf("cubic-bezier x values must be in [0,1]: %s", s)
	}
	return CubicBezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
