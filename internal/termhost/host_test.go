package termhost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquag/banner/internal/host"
)

func TestMeasureText_UsesDisplayCells(t *testing.T) {
	h := New(80)
	assert.Equal(t, 5.0, h.MeasureText("hello"))
	// CJK characters are double width.
	assert.Equal(t, 4.0, h.MeasureText("你好"))
	assert.Equal(t, 0.0, h.MeasureText(""))
}

func TestContainerWidth(t *testing.T) {
	h := New(120)
	assert.Equal(t, 120.0, h.ContainerWidth())

	h.SetWidth(80)
	assert.Equal(t, 80.0, h.ContainerWidth())
}

func TestAnimate_CompletionDeliveredViaMessage(t *testing.T) {
	h := New(80)

	mutated := false
	completed := false
	h.Animate(100*time.Millisecond, func() { mutated = true }, func() { completed = true })

	assert.True(t, mutated, "mutation applies immediately")
	assert.False(t, completed)
	require.NotNil(t, h.Flush(), "a tick command must be queued")

	h.Update(animDoneMsg{id: 1})
	assert.True(t, completed)

	// A repeated message for the same id is ignored.
	completed = false
	h.Update(animDoneMsg{id: 1})
	assert.False(t, completed)
}

func TestScheduleTimer_FireAndCancel(t *testing.T) {
	h := New(80)

	fired := 0
	handle := h.ScheduleTimer(time.Second, func() { fired++ })
	require.NotZero(t, handle)

	h.Update(timerMsg{handle: handle})
	assert.Equal(t, 1, fired)

	// Firing again after delivery is a no-op.
	h.Update(timerMsg{handle: handle})
	assert.Equal(t, 1, fired)

	// Cancelled timers never fire even if the tick message arrives.
	second := h.ScheduleTimer(time.Second, func() { fired++ })
	h.CancelTimer(second)
	h.Update(timerMsg{handle: second})
	assert.Equal(t, 1, fired)

	// Cancelling a fired or unknown handle is a no-op.
	h.CancelTimer(handle)
	h.CancelTimer(0)
}

func TestView_EmptyWhenHidden(t *testing.T) {
	h := New(80)
	assert.Empty(t, h.View())
}

func TestView_RendersAfterReveal(t *testing.T) {
	h := New(40)

	root := &host.RootElement{Color: "#AA3355"}
	title := &host.TitleElement{Text: "Connected"}
	h.AddElement(root)
	h.AddElement(title)
	h.SetFrame(root, host.Rect{W: 40, H: 30})
	h.SetFrame(title, host.Rect{W: 40, H: 30})

	// Drive the spring until it settles.
	for i := 0; i < 300 && !h.settledSpring(); i++ {
		h.step()
	}

	view := h.View()
	assert.Contains(t, view, "Connected")
}

func TestView_HiddenAfterAlphaZero(t *testing.T) {
	h := New(40)

	root := &host.RootElement{}
	h.AddElement(root)
	h.SetFrame(root, host.Rect{W: 40, H: 30})
	h.SetAlpha(root, 0)

	assert.Empty(t, h.View())
}

func TestRevealTarget_FollowsRootFrame(t *testing.T) {
	h := New(40)
	assert.Equal(t, 0.0, h.revealTarget())

	root := &host.RootElement{}
	h.AddElement(root)
	h.SetFrame(root, host.Rect{W: 40, H: 30})
	assert.Equal(t, 1.0, h.revealTarget())

	h.SetFrame(root, host.Rect{W: 40, H: 0})
	assert.Equal(t, 0.0, h.revealTarget())
}

func TestAddElement_LoaderQueuesSpinnerTick(t *testing.T) {
	h := New(40)
	h.AddElement(&host.LoaderElement{})
	assert.NotNil(t, h.Flush())
}
