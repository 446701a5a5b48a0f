// Package banner implements the notification presentation state machine.
// A Banner owns its phase, mediates present/show/change/hide requests,
// manages the auto-hide timer through the animation sequencer, and derives
// element layout from the current content.
package banner

import (
	"errors"
	"log/slog"

	"github.com/jquag/banner/internal/anim"
	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/host"
	"github.com/jquag/banner/internal/layout"
	"github.com/jquag/banner/internal/model"
)

// Presenter is the operation surface a banner exposes to application code.
// Anything satisfying it is interchangeable with a Banner, including the
// coalescing Manager.
type Presenter interface {
	Present(req model.Request)
	Show(req model.Request)
	Change(req model.Request)
	Hide()
}

// Construction errors.
var (
	ErrNilBridge = errors.New("host bridge must not be nil")
	ErrNilConfig = errors.New("config must not be nil")
)

// Banner is one notification banner instance. It is confined to its host's
// event loop; none of its methods are safe for concurrent use.
type Banner struct {
	bridge host.Bridge
	seq    *anim.Sequencer
	cfg    *config.Config
	logger *slog.Logger

	// height is the vertical offset at which the banner settles, supplied at
	// construction and immutable for the banner's lifetime.
	height float64
	// width is the container width, queried once at construction.
	width float64

	phase    Phase
	current  *model.Request
	attached bool

	root   *host.RootElement
	title  *host.TitleElement
	image  *host.ImageElement
	loader *host.LoaderElement

	// willHide is invoked right before an auto-hide or explicit hide begins.
	// Non-owning: the banner never outlives decisions made by its caller.
	willHide func()
	// settled is invoked whenever the banner reaches an at-rest phase.
	settled func()
}

// New creates a banner bound to a host bridge. height is the vertical offset
// at which the banner settles (below a status bar, for instance).
func New(bridge host.Bridge, cfg *config.Config, height float64, logger *slog.Logger) (*Banner, error) {
	if bridge == nil {
		return nil, ErrNilBridge
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Banner{
		bridge: bridge,
		seq:    anim.NewSequencer(bridge, cfg.Timing, logger),
		cfg:    cfg,
		logger: logger,
		height: height,
		width:  bridge.ContainerWidth(),
		phase:  PhaseHidden,
		root:   &host.RootElement{},
		title:  &host.TitleElement{},
	}, nil
}

// SetWillHideCallback sets the callback invoked right before the hide
// animation begins.
func (b *Banner) SetWillHideCallback(cb func()) {
	b.willHide = cb
}

// SetSettledCallback sets the callback invoked whenever the banner comes to
// rest (Visible or Hidden).
func (b *Banner) SetSettledCallback(cb func()) {
	b.settled = cb
}

// SetConfig applies a new configuration to subsequent transitions and
// layout passes. In-flight animations keep their original timings.
func (b *Banner) SetConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	b.cfg = cfg
	b.seq.SetTiming(cfg.Timing)
}

// Phase returns the banner's current phase.
func (b *Banner) Phase() Phase {
	return b.phase
}

// Current returns the request being displayed, or nil when hidden.
func (b *Banner) Current() *model.Request {
	return b.current
}

// Present shows the notification and keeps it on screen until an explicit
// Hide. Allowed in any phase; re-presenting while visible restarts the full
// entrance animation.
func (b *Banner) Present(req model.Request) {
	b.logger.Debug("present", "id", req.ID, "title", req.Title, "kind", req.Kind.String())
	b.setContent(req)
	b.attach()
	b.applyLayout()
	b.phase = PhasePresenting
	b.seq.PresentIn(b.elements(), b.targetFrame(), func() {
		b.rest(PhaseVisible)
	})
}

// Show presents the notification and auto-hides it after the configured
// pop-up delay. Allowed in any phase.
func (b *Banner) Show(req model.Request) {
	b.logger.Debug("show", "id", req.ID, "title", req.Title, "kind", req.Kind.String())
	b.setContent(req)
	b.attach()
	b.applyLayout()
	b.phase = PhasePresenting
	b.seq.ShowIn(b.elements(), b.targetFrame(), b.autoHide, func() {
		b.rest(PhaseVisible)
	})
}

// Change cross-fades to new content. A banner with no prior content (empty
// current title) cannot change; the call is silently ignored. If the banner
// is hiding or hidden, the previous content is effectively gone, so the
// change is promoted to a full Show.
func (b *Banner) Change(req model.Request) {
	if b.current == nil || b.current.Title == "" {
		b.logger.Debug("change ignored: no prior content", "id", req.ID)
		return
	}
	if b.phase == PhaseHiding || b.phase == PhaseHidden {
		b.logger.Debug("change promoted to show", "id", req.ID, "phase", b.phase.String())
		b.Show(req)
		return
	}

	b.logger.Debug("change", "id", req.ID, "title", req.Title)
	b.phase = PhaseChanging
	b.seq.CrossFadeChange(b.elements, func() {
		b.setContent(req)
		b.applyLayout()
	}, func() {
		b.rest(PhaseVisible)
	})
}

// Hide animates the banner out. Allowed in any phase; the pending auto-hide
// timer, if any, is cancelled.
func (b *Banner) Hide() {
	b.logger.Debug("hide", "phase", b.phase.String())
	b.phase = PhaseHiding
	b.seq.HideOut(b.elements(), b.targetFrame(), b.cfg.Dimensions.HideLift, func() {
		b.detach()
		b.current = nil
		b.rest(PhaseHidden)
	})
}

// autoHide runs when the pop-up timer fires: notify the delegate, then hide.
func (b *Banner) autoHide() {
	if b.phase != PhaseVisible {
		return
	}
	if b.willHide != nil {
		b.willHide()
	}
	b.Hide()
}

// rest records an at-rest phase and notifies the settled callback.
func (b *Banner) rest(p Phase) {
	b.phase = p
	b.logger.Debug("settled", "phase", p.String())
	if b.settled != nil {
		b.settled()
	}
}

// setContent replaces the displayed content and reconciles the optional
// image and loader elements against the new request.
func (b *Banner) setContent(req model.Request) {
	b.current = &req
	b.root.Color = req.Color
	b.title.Text = req.Title

	wantLoader := req.Kind == model.KindSearching
	wantImage := req.Kind == model.KindDefault && req.HasImage()

	if wantLoader && b.loader == nil {
		b.loader = &host.LoaderElement{}
		b.bridge.AddElement(b.loader)
	}
	if !wantLoader && b.loader != nil {
		b.bridge.RemoveElement(b.loader)
		b.loader = nil
	}

	if wantImage {
		frames := make([]string, len(req.Images))
		for i, img := range req.Images {
			frames[i] = img.Name
		}
		if b.image == nil {
			b.image = &host.ImageElement{}
			b.bridge.AddElement(b.image)
		}
		b.image.Frames = frames
	} else if b.image != nil {
		b.bridge.RemoveElement(b.image)
		b.image = nil
	}
}

// attach adds the root and title to the host if they are not already there.
func (b *Banner) attach() {
	if b.attached {
		return
	}
	b.bridge.AddElement(b.root)
	b.bridge.AddElement(b.title)
	b.attached = true
}

// detach removes every element from the host.
func (b *Banner) detach() {
	if b.loader != nil {
		b.bridge.RemoveElement(b.loader)
		b.loader = nil
	}
	if b.image != nil {
		b.bridge.RemoveElement(b.image)
		b.image = nil
	}
	if b.attached {
		b.bridge.RemoveElement(b.title)
		b.bridge.RemoveElement(b.root)
		b.attached = false
	}
}

// applyLayout measures the title and positions all content elements.
func (b *Banner) applyLayout() {
	titleWidth := b.bridge.MeasureText(b.title.Text)
	hasImage := b.image != nil

	kind := model.KindDefault
	if b.current != nil {
		kind = b.current.Kind
	}

	result := layout.Compute(kind, titleWidth, hasImage, b.width, b.cfg.Dimensions)

	if result.Loader.Present && b.loader != nil {
		b.bridge.SetFrame(b.loader, result.Loader.Frame)
	}
	if result.Image.Present && b.image != nil {
		b.bridge.SetFrame(b.image, result.Image.Frame)
	}
	if result.Title.Present {
		b.bridge.SetFrame(b.title, result.Title.Frame)
	}
}

// elements collects the root and currently live content elements for the
// sequencer.
func (b *Banner) elements() anim.Elements {
	content := []host.Element{b.title}
	if b.image != nil {
		content = append(content, b.image)
	}
	if b.loader != nil {
		content = append(content, b.loader)
	}
	return anim.Elements{Root: b.root, Content: content}
}

// targetFrame is the banner's at-rest frame: full width at the configured
// settle height.
func (b *Banner) targetFrame() host.Rect {
	return host.Rect{X: 0, Y: b.height, W: b.width, H: b.cfg.Dimensions.BannerHeight}
}
