package military

import "github.com/talgya/frostline/internal/entropy"

// Surprise is an injected random modifier to one combat resolution. The
// multiplier scales the rolling side's power; Effect carries a bonus tag.
type Surprise struct {
	Name       string
	Multiplier float64
	Effect     string // "", "self_damage", "mutual_damage", "defender_boost"
}

// SurpriseRoll returns at most one surprise for the named side ("attacker"
// or "defender"), or nil. Injected so tests can force or suppress surprises.
type SurpriseRoll func(side string) *Surprise

// NoSurprise suppresses surprises entirely.
func NoSurprise(string) *Surprise { return nil }

var attackerSurprises = []Surprise{
	{Name: "White-out ambush", Multiplier: 1.4},
	{Name: "Ice fog cover", Multiplier: 1.25},
	{Name: "Equipment failure in extreme cold", Multiplier: 0.75, Effect: "self_damage"},
	{Name: "Collision in pack ice", Multiplier: 1.1, Effect: "mutual_damage"},
}

var defenderSurprises = []Surprise{
	{Name: "Prepared positions", Multiplier: 1.3, Effect: "defender_boost"},
	{Name: "Early-warning radar contact", Multiplier: 1.2},
	{Name: "Garrison caught refueling", Multiplier: 0.8},
}

// DefaultSurpriseRoll is the production surprise hook: ~15% per side.
func DefaultSurpriseRoll(rng *entropy.Source) SurpriseRoll {
	return func(side string) *Surprise {
		if !rng.Chance(15) {
			return nil
		}
		if side == "defender" {
			s := defenderSurprises[rng.Intn(len(defenderSurprises))]
			return &s
		}
		s := attackerSurprises[rng.Intn(len(attackerSurprises))]
		return &s
	}
}
