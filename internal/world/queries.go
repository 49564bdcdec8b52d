package world

// Derived-state queries shared by the achievement checker, the victory
// evaluator, and the AI. Both end-state subsystems read these instead of
// recomputing zone fractions and relation counts independently.

// ControlledZoneFraction returns the share of catalog zones the faction
// controls, in [0, 1].
func (s *State) ControlledZoneFraction(id FactionID) float64 {
	f := s.Factions[id]
	if f == nil || len(s.Zones) == 0 {
		return 0
	}
	return float64(len(f.Zones)) / float64(len(s.Zones))
}

// AllRelationsAtOrBelow reports whether every relation involving the
// faction sits at or below the given tension level.
func (s *State) AllRelationsAtOrBelow(id FactionID, level TensionLevel) bool {
	for _, r := range s.Relations {
		if (r.A == id || r.B == id) && r.Level > level {
			return false
		}
	}
	return true
}

// CountRelationsAtLeast counts faction pairs (across the whole board) whose
// tension level is at or above the given level.
func (s *State) CountRelationsAtLeast(level TensionLevel) int {
	n := 0
	for _, r := range s.Relations {
		if r.Level >= level {
			n++
		}
	}
	return n
}

// TotalMilitaryStrength sums effective strength of a faction's live units.
func (s *State) TotalMilitaryStrength(id FactionID) float64 {
	total := 0.0
	for _, u := range s.Units {
		if u.Owner == id && u.Status != StatusDestroyed {
			total += u.Strength
		}
	}
	return total
}

// zoneTypePoints weights victory scoring by strategic value: chokepoints
// over territory, territory over open water.
var zoneTypePoints = map[ZoneType]float64{
	ZoneChokepoint:       12,
	ZoneTerritorial:      10,
	ZoneContinentalShelf: 8,
	ZoneEEZ:              8,
	ZoneInternational:    6,
}

// RecomputeVictoryPoints rescores every faction from zones held, resource
// richness under control, and current standing.
func (s *State) RecomputeVictoryPoints() {
	for _, f := range s.Factions {
		points := 0.0
		for _, zid := range f.Zones {
			z := s.Zones[zid]
			if z == nil {
				continue
			}
			points += zoneTypePoints[z.Type]
			points += (z.Resources.Oil + z.Resources.Gas + z.Resources.Minerals +
				z.Resources.Fish + z.Resources.Shipping) * 0.5
		}
		points += f.Resources.EconomicOutput * 0.1
		points += f.Resources.Influence * 0.1
		points += f.Resources.Legitimacy * 0.05
		f.VictoryPoints = points
	}
}

// UnclaimedZones returns uncontrolled zones in authored order; callers
// apply their own weighting.
func (s *State) UnclaimedZones() []*Zone {
	var out []*Zone
	for _, id := range ZoneIDs() {
		if z := s.Zones[id]; z != nil && z.Controller == "" {
			out = append(out, z)
		}
	}
	return out
}
