// Package anim orchestrates the banner's timed visual transitions.
// It drives the host bridge, never blocks the caller, and reports completion
// through callbacks. Every transition carries a generation number; a
// completion or timer that belongs to a superseded generation is discarded,
// so overlapping transitions converge on the most recently requested state.
package anim

import (
	"log/slog"

	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/host"
)

// Entrance animations start from this uniform scale.
const entranceScale = 0.1

// Exit animations collapse to this uniform scale.
const exitScale = 0.01

// Elements groups the host elements a transition manipulates.
type Elements struct {
	// Root is the banner container; its frame is animated.
	Root host.Element
	// Content are the scaled/faded elements: title plus image or loader.
	Content []host.Element
}

// Sequencer runs ordered, time-boxed transitions for one banner.
// It owns the banner's single auto-hide timer: starting any transition
// cancels a pending timer first.
type Sequencer struct {
	bridge host.Bridge
	timing config.TimingConfig
	logger *slog.Logger

	generation uint64
	autoHide   host.TimerHandle
}

// NewSequencer creates a sequencer bound to a host bridge.
func NewSequencer(bridge host.Bridge, timing config.TimingConfig, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{
		bridge: bridge,
		timing: timing,
		logger: logger,
	}
}

// SetTiming replaces the animation durations for subsequent transitions.
func (s *Sequencer) SetTiming(timing config.TimingConfig) {
	s.timing = timing
}

// Generation returns the identifier of the most recently started transition.
func (s *Sequencer) Generation() uint64 {
	return s.generation
}

// begin supersedes any in-flight transition and cancels a pending auto-hide
// timer. Returns the new active generation.
func (s *Sequencer) begin(name string) uint64 {
	s.CancelAutoHide()
	s.generation++
	s.logger.Debug("transition started", "op", name, "generation", s.generation)
	return s.generation
}

// stale reports whether a completion belongs to a superseded transition.
func (s *Sequencer) stale(gen uint64, name string) bool {
	if gen != s.generation {
		s.logger.Debug("discarded stale completion", "op", name, "generation", gen, "active", s.generation)
		return true
	}
	return false
}

// CancelAutoHide invalidates the pending auto-hide timer, if any.
// Cancelling an already-fired timer is a no-op.
func (s *Sequencer) CancelAutoHide() {
	if s.autoHide != 0 {
		s.bridge.CancelTimer(s.autoHide)
		s.autoHide = 0
	}
}

// PresentIn animates the banner into view without scheduling auto-hide.
// Elements start at a scaled-down transform with a zero-height root frame and
// settle at identity with the full target frame.
func (s *Sequencer) PresentIn(els Elements, target host.Rect, onSettled func()) {
	gen := s.begin("present")
	s.enter(els, target, gen, func() {
		if s.stale(gen, "present") {
			return
		}
		if onSettled != nil {
			onSettled()
		}
	})
}

// ShowIn runs the same entrance animation as PresentIn, then schedules the
// auto-hide timer. When the timer fires, autoHide runs; the caller is
// expected to notify its delegate and hide.
func (s *Sequencer) ShowIn(els Elements, target host.Rect, autoHide, onSettled func()) {
	gen := s.begin("show")
	s.enter(els, target, gen, func() {
		if s.stale(gen, "show") {
			return
		}
		s.autoHide = s.bridge.ScheduleTimer(s.timing.PopUp, func() {
			if s.stale(gen, "auto-hide") {
				return
			}
			s.autoHide = 0
			if autoHide != nil {
				autoHide()
			}
		})
		if onSettled != nil {
			onSettled()
		}
	})
}

// enter places elements in the pre-entrance state and animates to rest.
func (s *Sequencer) enter(els Elements, target host.Rect, gen uint64, onComplete func()) {
	collapsed := target
	collapsed.H = 0

	for _, e := range els.Content {
		s.bridge.SetTransform(e, host.Scaled(entranceScale))
	}
	s.bridge.SetFrame(els.Root, collapsed)
	s.bridge.SetAlpha(els.Root, 1)

	s.bridge.Animate(s.timing.Movement, func() {
		for _, e := range els.Content {
			s.bridge.SetTransform(e, host.Identity())
			s.bridge.SetAlpha(e, 1)
		}
		s.bridge.SetFrame(els.Root, target)
	}, onComplete)
}

// CrossFadeChange shrinks the content, applies the new content while scaled
// down (no visible jump), and grows back. elements is re-queried after the
// swap so elements the new content adds are snapped down and grown back with
// the rest. The pending auto-hide timer is cancelled because it belongs to
// the replaced content; no new timer is started here.
func (s *Sequencer) CrossFadeChange(elements func() Elements, applyContent, onSettled func()) {
	gen := s.begin("change")

	s.bridge.Animate(s.timing.Switcher, func() {
		for _, e := range elements().Content {
			s.bridge.SetTransform(e, host.Scaled(entranceScale))
		}
	}, func() {
		if s.stale(gen, "change") {
			return
		}
		if applyContent != nil {
			applyContent()
		}
		els := elements()
		for _, e := range els.Content {
			s.bridge.SetTransform(e, host.Scaled(entranceScale))
		}
		s.bridge.Animate(s.timing.Switcher, func() {
			for _, e := range els.Content {
				s.bridge.SetTransform(e, host.Identity())
			}
		}, func() {
			if s.stale(gen, "change") {
				return
			}
			if onSettled != nil {
				onSettled()
			}
		})
	})
}

// HideOut fades the content out while lifting and collapsing it, and
// simultaneously collapses the root frame. On completion the root is fully
// transparent; detaching the elements is left to the caller.
func (s *Sequencer) HideOut(els Elements, collapsed host.Rect, lift float64, onHidden func()) {
	gen := s.begin("hide")

	s.bridge.Animate(s.timing.Movement, func() {
		for _, e := range els.Content {
			s.bridge.SetAlpha(e, 0)
			s.bridge.SetTransform(e, host.Transform{
				ScaleX:     exitScale,
				ScaleY:     exitScale,
				TranslateY: -lift,
			})
		}
		frame := collapsed
		frame.H = 0
		s.bridge.SetFrame(els.Root, frame)
	}, func() {
		if s.stale(gen, "hide") {
			return
		}
		s.bridge.SetAlpha(els.Root, 0)
		if onHidden != nil {
			onHidden()
		}
	})
}
