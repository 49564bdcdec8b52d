package ai

import (
	"sort"

	"github.com/talgya/frostline/internal/military"
	"github.com/talgya/frostline/internal/world"
)

// OpportunityKind classifies what a faction could gain.
type OpportunityKind string

const (
	OppClaimZone  OpportunityKind = "claim_zone"
	OppAttackZone OpportunityKind = "attack_zone"
	OppAlliance   OpportunityKind = "alliance"
	OppBuild      OpportunityKind = "build_forces"
	OppInvest     OpportunityKind = "invest"
)

// Opportunity is one scored option. Zone and Target are set where they
// apply.
type Opportunity struct {
	Kind   OpportunityKind
	Zone   world.ZoneID
	Target world.FactionID
	Unit   world.UnitType
	Value  float64
}

// buildReserve keeps the AI from spending itself to zero on procurement.
const buildReserve = 20

// AssessOpportunities scores what the faction could pursue this turn,
// sorted by descending value. Attack opportunities only appear for
// profiles with risk tolerance above 50; personality biases the unit type
// on builds, not the scores.
func AssessOpportunities(s *world.State, p Profile) []Opportunity {
	f := s.FactionByID(p.Faction)
	if f == nil {
		return nil
	}
	var opps []Opportunity

	// Unclaimed zones, weighted by the preferred-expansion list.
	for _, z := range s.UnclaimedZones() {
		value := zoneRichness(z)
		if p.prefersZone(z.ID) {
			value += 15
		}
		opps = append(opps, Opportunity{Kind: OppClaimZone, Zone: z.ID, Value: value})
	}

	// Weakly defended rival zones reachable from an owned zone.
	if p.RiskTolerance > 50 {
		for _, zid := range f.Zones {
			for _, nid := range AdjacentZones(zid) {
				nz := s.ZoneByID(nid)
				if nz == nil || nz.Controller == "" || nz.Controller == p.Faction {
					continue
				}
				defense := 0.0
				for _, u := range s.UnitsInZone(nid, nz.Controller) {
					defense += u.Strength
				}
				attack := 0.0
				for _, u := range s.UnitsInZone(zid, p.Faction) {
					attack += u.Strength
				}
				if attack <= defense {
					continue
				}
				opps = append(opps, Opportunity{
					Kind: OppAttackZone, Zone: nid, Target: nz.Controller,
					Value: zoneRichness(nz) + 10 + (attack-defense)*0.1,
				})
			}
		}
	}

	// Court factions still in normal standing.
	for _, other := range world.AllFactions {
		if other == p.Faction {
			continue
		}
		rel := s.RelationBetween(p.Faction, other)
		if rel == nil || rel.Level != world.Competition {
			continue
		}
		opps = append(opps, Opportunity{
			Kind: OppAlliance, Target: other,
			Value: 15 + (100-rel.Value)*0.1,
		})
	}

	// Procurement, gated by affordability and the military-priority-derived
	// target force size.
	spec := military.SpecFor(p.PreferredUnit)
	live := len(s.ActiveUnits(p.Faction))
	want := int(p.MilitaryPriority / 12)
	if live < want && f.Resources.EconomicOutput > spec.Cost+buildReserve {
		opps = append(opps, Opportunity{
			Kind: OppBuild, Unit: p.PreferredUnit,
			Value: p.MilitaryPriority*0.5 + float64(want-live)*5,
		})
	}

	// Plain economic development when cash allows.
	if f.Resources.EconomicOutput > 50 {
		opps = append(opps, Opportunity{Kind: OppInvest, Value: p.EconomicPriority * 0.4})
	}

	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].Value > opps[j].Value
	})
	return opps
}

func zoneRichness(z *world.Zone) float64 {
	return z.Resources.Oil + z.Resources.Gas + z.Resources.Minerals +
		z.Resources.Fish + z.Resources.Shipping
}
