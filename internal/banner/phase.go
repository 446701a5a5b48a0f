package banner

// Phase is the banner's current stage in the presentation state machine.
type Phase int

const (
	// PhaseHidden is the initial state, re-entered after every hide.
	PhaseHidden Phase = iota
	// PhasePresenting covers the entrance animation.
	PhasePresenting
	// PhaseVisible is the at-rest, on-screen state.
	PhaseVisible
	// PhaseChanging covers a content cross-fade.
	PhaseChanging
	// PhaseHiding covers the exit animation.
	PhaseHiding
)

// phaseNames maps phases to log-friendly names.
var phaseNames = map[Phase]string{
	PhaseHidden:     "hidden",
	PhasePresenting: "presenting",
	PhaseVisible:    "visible",
	PhaseChanging:   "changing",
	PhaseHiding:     "hiding",
}

// String returns the phase name.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// busy reports whether a transition is in flight. Hidden and Visible are the
// only at-rest phases.
func (p Phase) busy() bool {
	return p == PhasePresenting || p == PhaseChanging || p == PhaseHiding
}
