package ai

import (
	"sort"

	"github.com/talgya/frostline/internal/world"
)

// ThreatKind classifies what is worrying a faction.
type ThreatKind string

const (
	ThreatHostileRelation ThreatKind = "hostile_relation"
	ThreatBorderPressure  ThreatKind = "border_pressure"
	ThreatEconomicGap     ThreatKind = "economic_gap"
)

// Threat is one scored worry. Zone is set only for border pressure.
type Threat struct {
	Kind     ThreatKind
	Rival    world.FactionID
	Zone     world.ZoneID
	Severity float64
}

// AssessThreats scans the board from one faction's point of view and
// returns threats sorted by descending severity. Three sources: relations
// at crisis or conflict, enemy military presence adjacent to owned zones,
// and the player outgrowing this faction economically by more than 30%.
func AssessThreats(s *world.State, p Profile) []Threat {
	f := s.FactionByID(p.Faction)
	if f == nil {
		return nil
	}
	var threats []Threat

	for _, r := range s.Relations {
		if r.Level < world.Crisis || (r.A != p.Faction && r.B != p.Faction) {
			continue
		}
		rival := r.A
		if rival == p.Faction {
			rival = r.B
		}
		severity := 50 + r.Value/2
		if r.Level >= world.Conflict {
			severity += 25
		}
		threats = append(threats, Threat{Kind: ThreatHostileRelation, Rival: rival, Severity: severity})
	}

	// Any rival buildup one move away from an owned zone.
	for _, zid := range f.Zones {
		for _, nid := range AdjacentZones(zid) {
			nz := s.ZoneByID(nid)
			if nz == nil {
				continue
			}
			for rival, presence := range nz.MilitaryPresence {
				if rival == p.Faction || presence <= 0 {
					continue
				}
				threats = append(threats, Threat{
					Kind: ThreatBorderPressure, Rival: rival, Zone: zid,
					Severity: presence,
				})
			}
			for _, u := range s.Units {
				if u.Zone == nid && u.Owner != p.Faction && u.Status != world.StatusDestroyed {
					threats = append(threats, Threat{
						Kind: ThreatBorderPressure, Rival: u.Owner, Zone: zid,
						Severity: u.Strength * 0.4,
					})
				}
			}
		}
	}

	if player := s.FactionByID(s.Player); player != nil && s.Player != p.Faction {
		if player.Resources.EconomicOutput > f.Resources.EconomicOutput*1.3 {
			gap := player.Resources.EconomicOutput - f.Resources.EconomicOutput
			threats = append(threats, Threat{
				Kind: ThreatEconomicGap, Rival: s.Player,
				Severity: 20 + gap*0.2,
			})
		}
	}

	sort.SliceStable(threats, func(i, j int) bool {
		return threats[i].Severity > threats[j].Severity
	})
	return threats
}
