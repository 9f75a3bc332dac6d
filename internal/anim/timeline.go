package anim

import (
	"time"
)

// Options configures a single animation.
type Options struct {
	Duration time.Duration
	Easing   Easing
}

// Animation is one running keyframe animation.
type Animation struct {
	frames   []Props
	start    time.Time
	duration time.Duration
	easing   Easing
	value    Props
	onFinish func()
	finished bool
}

// Value returns the animated property values at the last Step.
func (a *Animation) Value() Props {
	return a.value
}

// Finished reports whether the animation has completed.
func (a *Animation) Finished() bool {
	return a.finished
}

// Timeline plays animations against a clock. It is not safe for concurrent
// use; callers drive it from their event loop.
type Timeline struct {
	now     func() time.Time
	running []*Animation
}

// NewTimeline creates a timeline. A nil clock uses time.Now.
func NewTimeline(now func() time.Time) *Timeline {
	if now == nil {
		now = time.Now
	}
	return &Timeline{now: now}
}

// Play starts an animation over frames. from supplies the starting values
// for an implicit first keyframe. onFinish may be nil.
func (t *Timeline) Play(frames []Props, from Props, opts Options, onFinish func()) *Animation {
	easing := opts.Easing
	if easing == nil {
		easing = Linear{}
	}
	norm := normalize(frames, from)
	a := &Animation{
		frames:   norm,
		start:    t.now(),
		duration: opts.Duration,
		easing:   easing,
		onFinish: onFinish,
	}
	if len(norm) > 0 {
		a.value = norm[0].Clone()
	} else {
		a.value = Props{}
	}
	t.running = append(t.running, a)
	return a
}

// Active reports whether any animation is still running.
func (t *Timeline) Active() bool {
	return len(t.running) > 0
}

// Running returns the running animations in start order.
func (t *Timeline) Running() []*Animation {
	out := make([]*Animation, len(t.running))
	copy(out, t.running)
	return out
}

// Step advances every animation to now. Finished animations are removed
// before their callbacks run, so a callback may start new animations.
func (t *Timeline) Step(now time.Time) {
	var done []*Animation
	kept := t.running[:0]
	for _, a := range t.running {
		progress := 1.0
		if a.duration > 0 {
			progress = float64(now.Sub(a.start)) / float64(a.duration)
		}
		if progress >= 1 {
			a.finished = true
			if len(a.frames) > 0 {
				a.value = a.frames[len(a.frames)-1].Clone()
			}
			done = append(done, a)
			continue
		}
		if len(a.frames) > 0 {
			a.value = sample(a.frames, a.easing.Ease(progress))
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(t.running); i++ {
		t.running[i] = nil
	}
	t.running = kept

	for _, a := range done {
		if a.onFinish != nil {
			a.onFinish()
		}
	}
}

// Finish completes every running animation immediately, including any
// started by completion callbacks.
func (t *Timeline) Finish() {
	for guard := 0; t.Active() && guard < 64; guard++ {
		t.Step(t.now().Add(24 * time.Hour))
	}
}
