// Package ai drives the autonomous factions: once per turn each opponent
// assesses threats and opportunities, produces at most one candidate action
// per category, and the orchestrator executes the top two. Personality
// biases unit choice and risk gating, never the scoring formulas.
package ai

import "github.com/talgya/frostline/internal/world"

// Personality is a coarse behavioral archetype.
type Personality string

const (
	Aggressive   Personality = "aggressive"
	Diplomatic   Personality = "diplomatic"
	Economic     Personality = "economic"
	Expansionist Personality = "expansionist"
	Defensive    Personality = "defensive"
)

// Profile is a faction's static decision-making bias. Priorities are
// weights in [0, 100]; RiskTolerance above 50 unlocks attack opportunities.
type Profile struct {
	Faction            world.FactionID
	Personality        Personality
	RiskTolerance      float64
	MilitaryPriority   float64
	EconomicPriority   float64
	DiplomaticPriority float64
	PreferredZones     []world.ZoneID
	PreferredUnit      world.UnitType
}

var profiles = map[world.FactionID]Profile{
	world.FactionRussia: {
		Faction: world.FactionRussia, Personality: Aggressive,
		RiskTolerance: 80, MilitaryPriority: 80, EconomicPriority: 50, DiplomaticPriority: 30,
		PreferredZones: []world.ZoneID{world.ZoneLomonosovRidge, world.ZoneCentralBasin, world.ZoneNorthPole, world.ZoneChukchiSea},
		PreferredUnit:  world.UnitSubmarine,
	},
	world.FactionChina: {
		Faction: world.FactionChina, Personality: Economic,
		RiskTolerance: 40, MilitaryPriority: 40, EconomicPriority: 85, DiplomaticPriority: 55,
		PreferredZones: []world.ZoneID{world.ZoneBeringStrait, world.ZoneCentralBasin, world.ZoneFramStrait},
		PreferredUnit:  world.UnitIcebreakerCombat,
	},
	world.FactionUSA: {
		Faction: world.FactionUSA, Personality: Defensive,
		RiskTolerance: 60, MilitaryPriority: 70, EconomicPriority: 60, DiplomaticPriority: 50,
		PreferredZones: []world.ZoneID{world.ZoneChukchiSea, world.ZoneBeringStrait, world.ZoneCentralBasin},
		PreferredUnit:  world.UnitSurfaceFleet,
	},
	world.FactionEU: {
		Faction: world.FactionEU, Personality: Diplomatic,
		RiskTolerance: 30, MilitaryPriority: 35, EconomicPriority: 70, DiplomaticPriority: 85,
		PreferredZones: []world.ZoneID{world.ZoneFramStrait, world.ZoneGreenlandShelf, world.ZoneNorthPole},
		PreferredUnit:  world.UnitSurfaceFleet,
	},
	world.FactionCanada: {
		Faction: world.FactionCanada, Personality: Expansionist,
		RiskTolerance: 35, MilitaryPriority: 40, EconomicPriority: 60, DiplomaticPriority: 60,
		PreferredZones: []world.ZoneID{world.ZoneBeaufortSea, world.ZoneNorthPole, world.ZoneLomonosovRidge},
		PreferredUnit:  world.UnitIcebreakerCombat,
	},
	world.FactionNorway: {
		Faction: world.FactionNorway, Personality: Diplomatic,
		RiskTolerance: 30, MilitaryPriority: 35, EconomicPriority: 65, DiplomaticPriority: 75,
		PreferredZones: []world.ZoneID{world.ZoneFramStrait, world.ZoneNorthPole},
		PreferredUnit:  world.UnitSurfaceFleet,
	},
	world.FactionDenmark: {
		Faction: world.FactionDenmark, Personality: Defensive,
		RiskTolerance: 25, MilitaryPriority: 30, EconomicPriority: 55, DiplomaticPriority: 70,
		PreferredZones: []world.ZoneID{world.ZoneLomonosovRidge, world.ZoneNorthPole, world.ZoneFramStrait},
		PreferredUnit:  world.UnitGroundForces,
	},
}

// ProfileFor returns the faction's decision profile. Unknown factions get a
// cautious zero-bias profile rather than a panic.
func ProfileFor(id world.FactionID) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return Profile{Faction: id, Personality: Defensive, RiskTolerance: 20,
		MilitaryPriority: 30, EconomicPriority: 50, DiplomaticPriority: 50,
		PreferredUnit: world.UnitSurfaceFleet}
}

func (p Profile) prefersZone(id world.ZoneID) bool {
	for _, z := range p.PreferredZones {
		if z == id {
			return true
		}
	}
	return false
}
