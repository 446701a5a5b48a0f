// Package host defines the bridge between the banner core and the view
// system that actually renders it. The core drives elements, frames,
// transforms, animations, and timers through this interface and never touches
// a concrete toolkit; internal/termhost is the shipped terminal
// implementation and hosttest provides an in-memory fake.
package host

import "time"

// Element is an opaque handle to a view object owned by the host.
type Element interface {
	// Name identifies the element for logging.
	Name() string
}

// Rect is an element frame in host coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Transform is an affine transform applied to an element.
type Transform struct {
	ScaleX     float64
	ScaleY     float64
	TranslateY float64
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Scaled returns a uniform scale transform.
func Scaled(s float64) Transform {
	return Transform{ScaleX: s, ScaleY: s}
}

// TimerHandle identifies a scheduled timer. The zero handle is invalid and
// cancelling it is a no-op.
type TimerHandle uint64

// Bridge is the capability the banner core consumes from its host.
//
// All methods are called from the host's event loop; implementations must
// deliver Animate completions and timer callbacks back on that same loop.
// Animate applies mutate immediately (or over the duration, for hosts that
// interpolate) and invokes onComplete once the duration has elapsed.
type Bridge interface {
	AddElement(e Element)
	RemoveElement(e Element)

	SetFrame(e Element, frame Rect)
	SetTransform(e Element, transform Transform)
	SetAlpha(e Element, alpha float64)

	Animate(d time.Duration, mutate func(), onComplete func())

	// MeasureText returns the rendered width of s in host units.
	MeasureText(s string) float64

	// ContainerWidth returns the width available to the banner, queried once
	// at banner construction and cached by the core.
	ContainerWidth() float64

	ScheduleTimer(d time.Duration, fn func()) TimerHandle
	CancelTimer(h TimerHandle)
}
