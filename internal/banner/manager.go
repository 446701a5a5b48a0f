package banner

import (
	"log/slog"

	"github.com/jquag/banner/internal/model"
)

// opKind identifies a queued banner operation.
type opKind int

const (
	opPresent opKind = iota
	opShow
	opChange
	opHide
)

var opNames = map[opKind]string{
	opPresent: "present",
	opShow:    "show",
	opChange:  "change",
	opHide:    "hide",
}

// queuedOp is a parked operation waiting for the banner to settle.
type queuedOp struct {
	kind opKind
	req  model.Request
}

// Manager serializes rapid successive requests for one banner. While a
// transition is in flight the newest request is parked; a newer request
// replaces a parked one (newest wins) and the superseded request is dropped.
// The parked operation is dispatched when the banner comes to rest.
type Manager struct {
	banner *Banner
	logger *slog.Logger

	pending *queuedOp
	// Dropped counts superseded parked requests, for observability.
	Dropped int
}

// NewManager wraps a banner with request coalescing. It takes over the
// banner's settled callback.
func NewManager(b *Banner, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{banner: b, logger: logger}
	b.SetSettledCallback(m.dispatchPending)
	return m
}

// Present passes through or parks a sticky presentation.
func (m *Manager) Present(req model.Request) { m.submit(opPresent, req) }

// Show passes through or parks an auto-hiding presentation.
func (m *Manager) Show(req model.Request) { m.submit(opShow, req) }

// Change passes through or parks a content change.
func (m *Manager) Change(req model.Request) { m.submit(opChange, req) }

// Hide passes through or parks a hide. A parked hide supersedes any parked
// presentation: the caller's last word is that the banner should be gone.
func (m *Manager) Hide() { m.submit(opHide, model.Request{}) }

// Pending reports whether an operation is parked.
func (m *Manager) Pending() bool {
	return m.pending != nil
}

// Banner returns the wrapped banner.
func (m *Manager) Banner() *Banner {
	return m.banner
}

func (m *Manager) submit(kind opKind, req model.Request) {
	if m.banner.Phase().busy() {
		if m.pending != nil {
			m.Dropped++
			m.logger.Debug("superseded parked request",
				"dropped_op", opNames[m.pending.kind],
				"dropped_id", m.pending.req.ID,
				"parked_op", opNames[kind],
			)
		}
		m.pending = &queuedOp{kind: kind, req: req}
		return
	}
	m.run(kind, req)
}

// dispatchPending runs the parked operation once the banner settles.
func (m *Manager) dispatchPending() {
	if m.pending == nil {
		return
	}
	op := *m.pending
	m.pending = nil
	m.logger.Debug("dispatching parked request", "op", opNames[op.kind], "id", op.req.ID)
	m.run(op.kind, op.req)
}

func (m *Manager) run(kind opKind, req model.Request) {
	switch kind {
	case opPresent:
		m.banner.Present(req)
	case opShow:
		m.banner.Show(req)
	case opChange:
		m.banner.Change(req)
	case opHide:
		m.banner.Hide()
	}
}

// Both the banner and its manager satisfy the public operation surface.
var (
	_ Presenter = (*Banner)(nil)
	_ Presenter = (*Manager)(nil)
)
