// Package hosttest provides an in-memory host bridge for tests.
// Animations and timers never run on their own; the test advances them
// explicitly, which keeps every sequencing scenario deterministic.
package hosttest

import (
	"time"

	"github.com/jquag/banner/internal/host"
)

// pendingAnimation is a queued Animate call whose completion has not run yet.
type pendingAnimation struct {
	duration   time.Duration
	onComplete func()
}

// pendingTimer is a scheduled timer that has not fired or been cancelled.
type pendingTimer struct {
	handle   host.TimerHandle
	duration time.Duration
	fn       func()
}

// Bridge is a fake host.Bridge that records every call.
type Bridge struct {
	// Width returned by ContainerWidth.
	Width float64
	// Measure overrides text measurement; defaults to one unit per byte.
	Measure func(s string) float64

	elements   map[host.Element]bool
	frames     map[host.Element]host.Rect
	transforms map[host.Element]host.Transform
	alphas     map[host.Element]float64

	animations []pendingAnimation
	timers     []pendingTimer
	nextHandle host.TimerHandle

	// Counters for assertions.
	AnimateCalls int
	TimersFired  int
	Cancelled    int
}

// New creates a fake bridge with the given container width.
func New(width float64) *Bridge {
	return &Bridge{
		Width:      width,
		elements:   make(map[host.Element]bool),
		frames:     make(map[host.Element]host.Rect),
		transforms: make(map[host.Element]host.Transform),
		alphas:     make(map[host.Element]float64),
	}
}

func (b *Bridge) AddElement(e host.Element) { b.elements[e] = true }

func (b *Bridge) RemoveElement(e host.Element) { delete(b.elements, e) }

func (b *Bridge) SetFrame(e host.Element, frame host.Rect) { b.frames[e] = frame }

func (b *Bridge) SetTransform(e host.Element, t host.Transform) { b.transforms[e] = t }

func (b *Bridge) SetAlpha(e host.Element, alpha float64) { b.alphas[e] = alpha }

// Animate applies the mutation immediately and queues the completion.
func (b *Bridge) Animate(d time.Duration, mutate func(), onComplete func()) {
	b.AnimateCalls++
	if mutate != nil {
		mutate()
	}
	b.animations = append(b.animations, pendingAnimation{duration: d, onComplete: onComplete})
}

func (b *Bridge) MeasureText(s string) float64 {
	if b.Measure != nil {
		return b.Measure(s)
	}
	return float64(len(s))
}

func (b *Bridge) ContainerWidth() float64 { return b.Width }

func (b *Bridge) ScheduleTimer(d time.Duration, fn func()) host.TimerHandle {
	b.nextHandle++
	b.timers = append(b.timers, pendingTimer{handle: b.nextHandle, duration: d, fn: fn})
	return b.nextHandle
}

func (b *Bridge) CancelTimer(h host.TimerHandle) {
	if h == 0 {
		return
	}
	for i, t := range b.timers {
		if t.handle == h {
			b.timers = append(b.timers[:i], b.timers[i+1:]...)
			b.Cancelled++
			return
		}
	}
	// Already fired or never scheduled: no-op.
}

// CompleteNextAnimation runs the oldest pending animation completion.
// Returns false if none are pending.
func (b *Bridge) CompleteNextAnimation() bool {
	if len(b.animations) == 0 {
		return false
	}
	a := b.animations[0]
	b.animations = b.animations[1:]
	if a.onComplete != nil {
		a.onComplete()
	}
	return true
}

// Settle runs animation completions until none remain. Completions may queue
// further animations; those are run too. Timers are left untouched.
func (b *Bridge) Settle() {
	for b.CompleteNextAnimation() {
	}
}

// FireNextTimer fires the oldest pending timer. Returns false if none.
func (b *Bridge) FireNextTimer() bool {
	if len(b.timers) == 0 {
		return false
	}
	t := b.timers[0]
	b.timers = b.timers[1:]
	b.TimersFired++
	if t.fn != nil {
		t.fn()
	}
	return true
}

// PendingAnimations returns the number of queued animation completions.
func (b *Bridge) PendingAnimations() int { return len(b.animations) }

// PendingTimers returns the number of scheduled, unfired timers.
func (b *Bridge) PendingTimers() int { return len(b.timers) }

// NextTimerDuration returns the delay of the oldest pending timer.
func (b *Bridge) NextTimerDuration() time.Duration {
	if len(b.timers) == 0 {
		return 0
	}
	return b.timers[0].duration
}

// Contains reports whether the element is currently attached.
func (b *Bridge) Contains(e host.Element) bool { return b.elements[e] }

// Frame returns the last frame set for the element.
func (b *Bridge) Frame(e host.Element) host.Rect { return b.frames[e] }

// Transform returns the last transform set for the element.
func (b *Bridge) Transform(e host.Element) host.Transform { return b.transforms[e] }

// Alpha returns the last alpha set for the element.
func (b *Bridge) Alpha(e host.Element) float64 { return b.alphas[e] }

var _ host.Bridge = (*Bridge)(nil)
