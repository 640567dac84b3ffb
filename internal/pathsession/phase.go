package pathsession

// Phase is the controller state.
type Phase int

const (
	PhaseEmpty      Phase = iota // No plan yet
	PhaseGenerating              // Full generation in flight
	PhaseReady                   // A plan is shown
	PhaseAdapting                // Adaptation in flight, previous plan still shown
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	case PhaseAdapting:
		return "adapting"
	}
	return "unknown"
}

// InFlight reports whether a plan request is outstanding in this phase.
func (p Phase) InFlight() bool {
	return p == PhaseGenerating || p == PhaseAdapting
}
