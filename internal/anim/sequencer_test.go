package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/host"
	"github.com/jquag/banner/internal/host/hosttest"
)

func testElements() Elements {
	return Elements{
		Root:    &host.RootElement{Color: "#333333"},
		Content: []host.Element{&host.TitleElement{Text: "hello"}},
	}
}

func testTiming() config.TimingConfig {
	return config.DefaultConfig().Timing
}

func TestPresentIn_NoTimer(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()

	settled := false
	seq.PresentIn(els, host.Rect{X: 0, Y: 20, W: 320, H: 30}, func() { settled = true })

	bridge.Settle()
	assert.True(t, settled)
	assert.Equal(t, 0, bridge.PendingTimers())
	assert.Equal(t, host.Identity(), bridge.Transform(els.Content[0]))
	assert.Equal(t, host.Rect{X: 0, Y: 20, W: 320, H: 30}, bridge.Frame(els.Root))
}

func TestShowIn_SchedulesAutoHide(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()

	fired := 0
	seq.ShowIn(els, host.Rect{W: 320, H: 30}, func() { fired++ }, nil)

	assert.Equal(t, 0, bridge.PendingTimers())
	bridge.Settle()
	assert.Equal(t, 1, bridge.PendingTimers())
	assert.Equal(t, 1500*time.Millisecond, bridge.NextTimerDuration())

	bridge.FireNextTimer()
	assert.Equal(t, 1, fired)
}

func TestShowIn_NewTransitionCancelsTimer(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()

	fired := 0
	seq.ShowIn(els, host.Rect{W: 320, H: 30}, func() { fired++ }, nil)
	bridge.Settle()
	assert.Equal(t, 1, bridge.PendingTimers())

	// Starting another show cancels the pending timer.
	seq.ShowIn(els, host.Rect{W: 320, H: 30}, func() { fired++ }, nil)
	assert.Equal(t, 0, bridge.PendingTimers())

	bridge.Settle()
	bridge.FireNextTimer()
	assert.Equal(t, 1, fired)
}

func TestCrossFadeChange_AppliesContentWhileShrunk(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()
	title := els.Content[0].(*host.TitleElement)

	var scaleAtApply host.Transform
	applied := false
	settled := false
	seq.CrossFadeChange(func() Elements { return els }, func() {
		applied = true
		scaleAtApply = bridge.Transform(els.Content[0])
		title.Text = "changed"
	}, func() { settled = true })

	// First half: shrink. Content not applied yet.
	assert.False(t, applied)
	bridge.CompleteNextAnimation()
	assert.True(t, applied)
	assert.Equal(t, host.Scaled(0.1), scaleAtApply)
	assert.False(t, settled)

	// Second half: grow back to identity.
	bridge.CompleteNextAnimation()
	assert.True(t, settled)
	assert.Equal(t, "changed", title.Text)
	assert.Equal(t, host.Identity(), bridge.Transform(els.Content[0]))
}

func TestCrossFadeChange_GrowsElementsAddedBySwap(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)

	root := &host.RootElement{}
	title := &host.TitleElement{Text: "hello"}
	loader := &host.LoaderElement{}
	content := []host.Element{title}

	settled := false
	seq.CrossFadeChange(func() Elements {
		return Elements{Root: root, Content: content}
	}, func() {
		bridge.AddElement(loader)
		content = append(content, loader)
	}, func() { settled = true })

	// The loader does not exist during the shrink half; the grow half must
	// still cover it.
	bridge.Settle()
	assert.True(t, settled)
	assert.Equal(t, host.Identity(), bridge.Transform(loader))
	assert.Equal(t, host.Identity(), bridge.Transform(title))
}

func TestHideOut_CollapsesAndClearsAlpha(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()
	bridge.AddElement(els.Root)

	hidden := false
	seq.HideOut(els, host.Rect{W: 320, H: 30}, 7.5, func() { hidden = true })

	// Mutation runs immediately in the fake: content lifted and faded.
	tr := bridge.Transform(els.Content[0])
	assert.Equal(t, 0.01, tr.ScaleX)
	assert.Equal(t, -7.5, tr.TranslateY)
	assert.Equal(t, 0.0, bridge.Alpha(els.Content[0]))
	assert.Equal(t, 0.0, bridge.Frame(els.Root).H)

	bridge.Settle()
	assert.True(t, hidden)
	assert.Equal(t, 0.0, bridge.Alpha(els.Root))
	// Removing the elements is the caller's job.
	assert.True(t, bridge.Contains(els.Root))
}

func TestStaleCompletionDiscarded(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()
	bridge.AddElement(els.Root)

	presented := false
	seq.PresentIn(els, host.Rect{W: 320, H: 30}, func() { presented = true })

	// Hide while the entrance is still in flight: last transition wins.
	hidden := false
	seq.HideOut(els, host.Rect{W: 320, H: 30}, 7.5, func() { hidden = true })

	bridge.Settle()
	assert.False(t, presented, "superseded entrance completion must be discarded")
	assert.True(t, hidden)
	assert.Equal(t, 0.0, bridge.Alpha(els.Root))
}

func TestStaleAutoHideTimerDiscarded(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()

	fired := 0
	seq.ShowIn(els, host.Rect{W: 320, H: 30}, func() { fired++ }, nil)
	bridge.Settle()
	assert.Equal(t, 1, bridge.PendingTimers())

	// A change supersedes the shown content; the sequencer cancels the
	// timer, but even a timer that escaped cancellation would be rejected
	// by the generation guard.
	seq.CrossFadeChange(func() Elements { return els }, nil, nil)
	bridge.Settle()
	bridge.FireNextTimer()
	assert.Equal(t, 0, fired)
}

func TestCancelAutoHide_Idempotent(t *testing.T) {
	bridge := hosttest.New(320)
	seq := NewSequencer(bridge, testTiming(), nil)
	els := testElements()

	seq.ShowIn(els, host.Rect{W: 320, H: 30}, nil, nil)
	bridge.Settle()

	seq.CancelAutoHide()
	seq.CancelAutoHide()
	assert.Equal(t, 0, bridge.PendingTimers())
	assert.Equal(t, 1, bridge.Cancelled)
}
