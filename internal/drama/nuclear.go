package drama

import (
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// escalationThresholds maps the NEXT readiness level to the minimum board
// severity required to ratchet into it.
var escalationThresholds = map[NuclearReadiness]float64{
	Elevated: 1,
	Defcon3:  3,
	Defcon2:  5,
	Defcon1:  7,
}

// boardSeverity scores how close the board is to nuclear war: each
// crisis-level pair counts 1, each conflict-level pair 3, plus 1 for a
// conflict pair sitting at maximum tension.
func boardSeverity(s *world.State) float64 {
	severity := 0.0
	for _, r := range s.Relations {
		switch {
		case r.Level >= world.Conflict:
			severity += 3
			if r.Value >= 100 {
				severity++
			}
		case r.Level == world.Crisis:
			severity++
		}
	}
	return severity
}

// CheckNuclearEscalation ratchets the readiness ladder up at most one level
// per call when board severity crosses the next threshold. It never moves
// the ladder down.
func CheckNuclearEscalation(s *world.State, d *State) {
	if d.NuclearReadiness >= Defcon1 {
		return
	}
	next := d.NuclearReadiness + 1
	if boardSeverity(s) < escalationThresholds[next] {
		return
	}
	d.NuclearReadiness = next
	s.Notify("nuclear", "Nuclear posture raised",
		"Strategic forces worldwide have moved to %s", next)
	slog.Warn("nuclear escalation", "readiness", next.String(), "turn", s.Turn)
}

// Deescalate steps the ladder down one level. Player-initiated only; the
// turn engine never calls this.
func Deescalate(s *world.State, d *State) {
	if d.NuclearReadiness <= Peacetime {
		return
	}
	d.NuclearReadiness--
	s.Notify("nuclear", "Nuclear posture lowered",
		"Strategic forces have stepped down to %s", d.NuclearReadiness)
}
