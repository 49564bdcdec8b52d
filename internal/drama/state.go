// Package drama generates the campaign's narrative pressure: crises with
// weighted choices, resource discoveries, environmental events, the nuclear
// readiness ladder, and achievements. All checks run once per turn from the
// orchestrator; nothing here fires between turns.
package drama

// NuclearReadiness is a 5-level ordinal ladder. The engine only ratchets it
// upward; de-escalation is player-initiated.
type NuclearReadiness int

const (
	Peacetime NuclearReadiness = iota
	Elevated
	Defcon3
	Defcon2
	Defcon1
)

var readinessNames = [...]string{"Peacetime", "Elevated", "DEFCON 3", "DEFCON 2", "DEFCON 1"}

func (n NuclearReadiness) String() string {
	if n < Peacetime || n > Defcon1 {
		return "Unknown"
	}
	return readinessNames[n]
}

// State is the drama side-car: at most one active crisis, at most one
// pending discovery and environmental event each, the unlocked-achievement
// set, and the nuclear ladder position.
type State struct {
	NuclearReadiness   NuclearReadiness   `json:"nuclear_readiness"`
	ActiveCrisis       *Crisis            `json:"active_crisis,omitempty"`
	PendingDiscovery   *Discovery         `json:"pending_discovery,omitempty"`
	PendingEnvironment *EnvironmentalEvent `json:"pending_environment,omitempty"`
	Unlocked           map[string]bool    `json:"unlocked"`
}

// NewState starts at peacetime with nothing pending.
func NewState() *State {
	return &State{
		NuclearReadiness: Peacetime,
		Unlocked:         make(map[string]bool),
	}
}
