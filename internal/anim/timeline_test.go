package anim

import (
	"math"
	"testing"
	"time"
)

type manualClock struct{ t time.Time }

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func TestTimelineImplicitFromFrame(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	tl := NewTimeline(clock.Now)

	finished := false
	a := tl.Play(
		[]Props{{PropTop: 100}},
		Props{PropTop: 0, PropLeft: 50},
		Options{Duration: 100 * time.Millisecond},
		func() { finished = true },
	)

	tl.Step(clock.Advance(50 * time.Millisecond))
	if got := a.Value()[PropTop]; math.Abs(got-50) > 1e-9 {
		t.Fatalf("midway top = %v, want 50", got)
	}
	if _, ok := a.Value()[PropLeft]; ok {
		t.Fatal("left is not animated and must not appear in values")
	}
	if finished {
		t.Fatal("finished too early")
	}

	tl.Step(clock.Advance(50 * time.Millisecond))
	if !finished || !a.Finished() {
		t.Fatal("expected animation to finish")
	}
	if got := a.Value()[PropTop]; got != 100 {
		t.Fatalf("final top = %v, want 100", got)
	}
	if tl.Active() {
		t.Fatal("expected timeline to be idle")
	}
}

func TestTimelineMultipleKeyframes(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	tl := NewTimeline(clock.Now)

	a := tl.Play(
		[]Props{{PropScale: 0.5, PropTop: 10}, {PropScale: 1}, {PropScale: 2, PropTop: 30}},
		nil,
		Options{Duration: 200 * time.Millisecond},
		nil,
	)

	tl.Step(clock.Advance(50 * time.Millisecond))
	// Quarter of the way: halfway through the first segment.
	if got := a.Value()[PropScale]; math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("scale = %v, want 0.75", got)
	}
	// Top carries forward through the middle frame.
	if got := a.Value()[PropTop]; math.Abs(got-10) > 1e-9 {
		t.Fatalf("top = %v, want 10", got)
	}

	tl.Step(clock.Advance(100 * time.Millisecond))
	if got := a.Value()[PropTop]; math.Abs(got-20) > 1e-9 {
		t.Fatalf("top = %v, want 20", got)
	}
}

func TestTimelineCallbackMayStartAnimation(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	tl := NewTimeline(clock.Now)

	second := false
	tl.Play([]Props{{PropOpacity: 0}}, Props{PropOpacity: 1}, Options{Duration: 10 * time.Millisecond}, func() {
		tl.Play([]Props{{PropOpacity: 1}}, Props{PropOpacity: 0}, Options{Duration: 10 * time.Millisecond}, func() {
			second = true
		})
	})

	tl.Step(clock.Advance(10 * time.Millisecond))
	if !tl.Active() {
		t.Fatal("expected chained animation to be running")
	}
	tl.Finish()
	if !second || tl.Active() {
		t.Fatal("expected chained animation to finish")
	}
}

func TestTimelineZeroDurationFinishesOnFirstStep(t *testing.T) {
	tl := NewTimeline(nil)
	done := false
	tl.Play([]Props{{PropWidth: 10}}, Props{PropWidth: 0}, Options{}, func() { done = true })
	tl.Step(time.Now())
	if !done {
		t.Fatal("expected zero-duration animation to finish")
	}
}
