// Package termhost implements the host bridge for terminals.
// It renders the banner as a styled strip with bubbletea driving the event
// loop: animation completions and timer fires are delivered as messages, so
// the banner core stays confined to the program's Update goroutine. Visual
// easing uses a harmonica spring sampled on a fixed frame tick.
package termhost

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jquag/banner/internal/host"
)

// frameInterval is the spring animation frame rate.
const frameInterval = time.Second / 60

// imageFrameInterval is the cycle rate for animated image sequences.
const imageFrameInterval = 150 * time.Millisecond

// animDoneMsg signals that an Animate call's duration has elapsed.
type animDoneMsg struct{ id uint64 }

// timerMsg signals that a scheduled timer has elapsed.
type timerMsg struct{ handle host.TimerHandle }

// frameMsg advances the reveal spring.
type frameMsg struct{}

// imageFrameMsg advances an animated image sequence.
type imageFrameMsg struct{}

// elementState is the bridge-visible state of one element.
type elementState struct {
	frame     host.Rect
	transform host.Transform
	alpha     float64
}

// Host is a terminal implementation of host.Bridge.
//
// Bridge methods queue bubbletea commands instead of running timers
// themselves; the embedding model must return Flush() after any call into
// the banner core and route messages through Update.
type Host struct {
	width int

	elements map[host.Element]*elementState
	root     *host.RootElement
	title    *host.TitleElement
	image    *host.ImageElement
	loader   *host.LoaderElement

	// Reveal spring: position follows the root frame height fraction.
	spring   harmonica.Spring
	reveal   float64
	velocity float64
	ticking  bool

	spin       spinner.Model
	imageFrame int

	pending   []tea.Cmd
	callbacks map[uint64]func()
	nextAnim  uint64

	timers     map[host.TimerHandle]func()
	nextHandle host.TimerHandle
}

// New creates a terminal host for the given banner strip width.
func New(width int) *Host {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &Host{
		width:     width,
		elements:  make(map[host.Element]*elementState),
		spring:    harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.65),
		spin:      sp,
		callbacks: make(map[uint64]func()),
		timers:    make(map[host.TimerHandle]func()),
	}
}

// SetWidth resizes the banner strip (on tea.WindowSizeMsg).
func (h *Host) SetWidth(width int) {
	h.width = width
}

// Flush returns the commands queued by bridge calls since the last flush.
// The embedding model must return this from Update after driving the banner.
func (h *Host) Flush() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

// Bridge implementation.

func (h *Host) AddElement(e host.Element) {
	h.elements[e] = &elementState{transform: host.Identity(), alpha: 1}

	switch el := e.(type) {
	case *host.RootElement:
		h.root = el
	case *host.TitleElement:
		h.title = el
	case *host.ImageElement:
		h.image = el
		if len(el.Frames) > 1 {
			h.queue(tea.Tick(imageFrameInterval, func(time.Time) tea.Msg { return imageFrameMsg{} }))
		}
	case *host.LoaderElement:
		h.loader = el
		h.queue(h.spin.Tick)
	}
}

func (h *Host) RemoveElement(e host.Element) {
	delete(h.elements, e)

	switch e.(type) {
	case *host.RootElement:
		h.root = nil
	case *host.TitleElement:
		h.title = nil
	case *host.ImageElement:
		h.image = nil
		h.imageFrame = 0
	case *host.LoaderElement:
		h.loader = nil
	}
}

func (h *Host) SetFrame(e host.Element, frame host.Rect) {
	if st, ok := h.elements[e]; ok {
		st.frame = frame
	}
	if e == h.root {
		h.startTicking()
	}
}

func (h *Host) SetTransform(e host.Element, t host.Transform) {
	if st, ok := h.elements[e]; ok {
		st.transform = t
	}
}

func (h *Host) SetAlpha(e host.Element, alpha float64) {
	if st, ok := h.elements[e]; ok {
		st.alpha = alpha
	}
}

// Animate applies the target state immediately and schedules the completion
// after the duration. The spring smooths the visible reveal in between.
func (h *Host) Animate(d time.Duration, mutate func(), onComplete func()) {
	if mutate != nil {
		mutate()
	}
	if onComplete == nil {
		return
	}
	h.nextAnim++
	id := h.nextAnim
	h.callbacks[id] = onComplete
	h.queue(tea.Tick(d, func(time.Time) tea.Msg { return animDoneMsg{id: id} }))
}

func (h *Host) MeasureText(s string) float64 {
	return float64(runewidth.StringWidth(s))
}

func (h *Host) ContainerWidth() float64 {
	return float64(h.width)
}

func (h *Host) ScheduleTimer(d time.Duration, fn func()) host.TimerHandle {
	h.nextHandle++
	handle := h.nextHandle
	h.timers[handle] = fn
	h.queue(tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{handle: handle} }))
	return handle
}

// CancelTimer drops the callback; the already-queued tick message for the
// handle is ignored when it arrives.
func (h *Host) CancelTimer(handle host.TimerHandle) {
	delete(h.timers, handle)
}

// Update routes bubbletea messages to the host. The returned command must be
// propagated; banner callbacks invoked here may queue further commands,
// which are included.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case animDoneMsg:
		if cb, ok := h.callbacks[msg.id]; ok {
			delete(h.callbacks, msg.id)
			cb()
		}
		return h.Flush()

	case timerMsg:
		if fn, ok := h.timers[msg.handle]; ok {
			delete(h.timers, msg.handle)
			fn()
		}
		return h.Flush()

	case frameMsg:
		h.ticking = false
		h.step()
		h.startTicking()
		return h.Flush()

	case imageFrameMsg:
		if h.image == nil || len(h.image.Frames) < 2 {
			return nil
		}
		h.imageFrame = (h.imageFrame + 1) % len(h.image.Frames)
		return tea.Tick(imageFrameInterval, func(time.Time) tea.Msg { return imageFrameMsg{} })

	case spinner.TickMsg:
		if h.loader == nil {
			return nil
		}
		var cmd tea.Cmd
		h.spin, cmd = h.spin.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		h.SetWidth(msg.Width)
		return nil
	}

	return nil
}

// queue appends a command for the next Flush.
func (h *Host) queue(cmd tea.Cmd) {
	h.pending = append(h.pending, cmd)
}

// revealTarget is the fraction of the banner currently meant to be shown.
func (h *Host) revealTarget() float64 {
	if h.root == nil {
		return 0
	}
	st, ok := h.elements[h.root]
	if !ok || st.alpha == 0 || st.frame.H <= 0 {
		// Height collapses to zero during hides; follow it down.
		return 0
	}
	return 1
}

// step advances the reveal spring one frame.
func (h *Host) step() {
	h.reveal, h.velocity = h.spring.Update(h.reveal, h.velocity, h.revealTarget())
}

// settledSpring reports whether the spring has come to rest on its target.
func (h *Host) settledSpring() bool {
	target := h.revealTarget()
	diff := h.reveal - target
	if diff < 0 {
		diff = -diff
	}
	v := h.velocity
	if v < 0 {
		v = -v
	}
	return diff < 0.005 && v < 0.005
}

// startTicking queues a frame tick unless one is in flight or the spring is
// at rest.
func (h *Host) startTicking() {
	if h.ticking || h.settledSpring() {
		return
	}
	h.ticking = true
	h.queue(tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} }))
}

// View renders the banner strip. An empty string means fully hidden.
func (h *Host) View() string {
	if h.root == nil {
		return ""
	}
	st := h.elements[h.root]
	if st == nil || st.alpha == 0 {
		return ""
	}
	if h.reveal < 0.02 && h.revealTarget() == 0 {
		return ""
	}

	content := h.renderContent()

	// Reveal left to right while the spring is in motion.
	if h.reveal < 1 {
		visible := int(float64(h.width) * h.reveal)
		content = truncate(content, visible)
	}

	style := lipgloss.NewStyle().Width(h.width)
	if h.root.Color != "" {
		style = style.Background(lipgloss.Color(h.root.Color))
	}
	return style.Render(content)
}

// renderContent lays the spinner/image and title onto the strip using the
// frames the core computed.
func (h *Host) renderContent() string {
	if h.title == nil {
		return ""
	}
	titleState := h.elements[h.title]
	if titleState == nil {
		return ""
	}

	var lead string
	var leadX float64
	switch {
	case h.loader != nil:
		if st, ok := h.elements[h.loader]; ok {
			lead = h.spin.View()
			leadX = st.frame.X
		}
	case h.image != nil:
		if st, ok := h.elements[h.image]; ok && len(h.image.Frames) > 0 {
			lead = h.image.Frames[h.imageFrame%len(h.image.Frames)]
			leadX = st.frame.X
		}
	}

	if lead == "" {
		// Title alone: center it on the strip.
		return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, h.title.Text)
	}

	pad := int(leadX)
	if pad < 0 {
		pad = 0
	}
	gap := int(titleState.frame.X - leadX - float64(runewidth.StringWidth(lead)))
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", pad) + lead + strings.Repeat(" ", gap) + h.title.Text
}

// truncate cuts s to at most w display cells.
func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}

var _ host.Bridge = (*Host)(nil)
