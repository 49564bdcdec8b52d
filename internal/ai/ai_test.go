package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

func TestAdjacencyIsSymmetric(t *testing.T) {
	for a, neighbors := range zoneAdjacency {
		for _, b := range neighbors {
			assert.True(t, Adjacent(b, a), "%s -> %s listed but not the reverse", a, b)
		}
	}
}

func TestAdjacencyCoversEveryZone(t *testing.T) {
	for _, id := range world.ZoneIDs() {
		assert.NotEmpty(t, AdjacentZones(id), "zone %s has no neighbors", id)
	}
}

func TestAdjacencyStaysWithinHexDistanceTwo(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	for a, neighbors := range zoneAdjacency {
		za := s.ZoneByID(a)
		require.NotNil(t, za)
		for _, b := range neighbors {
			zb := s.ZoneByID(b)
			require.NotNil(t, zb, "unknown zone %s in adjacency table", b)
			d := world.Distance(za.Coord, zb.Coord)
			assert.LessOrEqual(t, d, 2, "%s - %s are %d hexes apart", a, b, d)
		}
	}
}

func TestAdjacentSelfAndUnknown(t *testing.T) {
	assert.False(t, Adjacent(world.ZoneNorthPole, world.ZoneNorthPole))
	assert.False(t, Adjacent("mariana_trench", world.ZoneNorthPole))
}

func TestAssessThreatsSortedDescending(t *testing.T) {
	s := world.NewState(world.FactionRussia) // russia is the player
	s.RelationBetween(world.FactionUSA, world.FactionRussia).Level = world.Crisis
	s.RelationBetween(world.FactionUSA, world.FactionChina).Level = world.Conflict
	s.ZoneByID(world.ZoneChukchiSea).MilitaryPresence[world.FactionRussia] = 30

	threats := AssessThreats(s, ProfileFor(world.FactionUSA))
	require.NotEmpty(t, threats)
	for i := 1; i < len(threats); i++ {
		assert.GreaterOrEqual(t, threats[i-1].Severity, threats[i].Severity)
	}
}

func TestHostileRelationThreatScoring(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	r := s.RelationBetween(world.FactionUSA, world.FactionRussia)
	r.Level = world.Conflict
	r.Value = 80

	threats := AssessThreats(s, ProfileFor(world.FactionUSA))
	require.NotEmpty(t, threats)
	top := threats[0]
	assert.Equal(t, ThreatHostileRelation, top.Kind)
	assert.Equal(t, world.FactionRussia, top.Rival)
	assert.Equal(t, 50+80.0/2+25, top.Severity)
}

func TestBorderPressureFromAdjacentUnits(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	// A Russian fleet in the Chukchi Sea presses the adjacent US Beaufort Sea.
	s.Units = append(s.Units, &world.MilitaryUnit{
		ID: "ru-1", Type: world.UnitSurfaceFleet, Owner: world.FactionRussia,
		Zone: world.ZoneChukchiSea, Strength: 90, Morale: 80, Status: world.StatusReady,
	})

	threats := AssessThreats(s, ProfileFor(world.FactionUSA))
	var found *Threat
	for i := range threats {
		if threats[i].Kind == ThreatBorderPressure && threats[i].Rival == world.FactionRussia {
			found = &threats[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, world.ZoneBeaufortSea, found.Zone)
	assert.InDelta(t, 90*0.4, found.Severity, 1e-9)
}

func TestEconomicGapThreatOnlyAgainstRicherPlayer(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	s.FactionByID(world.FactionUSA).Resources.EconomicOutput = 300
	s.FactionByID(world.FactionRussia).Resources.EconomicOutput = 100

	threats := AssessThreats(s, ProfileFor(world.FactionRussia))
	var gap *Threat
	for i := range threats {
		if threats[i].Kind == ThreatEconomicGap {
			gap = &threats[i]
		}
	}
	require.NotNil(t, gap)
	assert.Equal(t, world.FactionUSA, gap.Rival)
	assert.InDelta(t, 20+200*0.2, gap.Severity, 1e-9)

	// The player never fears itself.
	for _, th := range AssessThreats(s, ProfileFor(world.FactionUSA)) {
		assert.NotEqual(t, ThreatEconomicGap, th.Kind)
	}
}

func TestAttackOpportunitiesGatedByRiskTolerance(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	// Give the EU overwhelming force next to a Russian zone; its risk
	// tolerance of 30 must still suppress the attack option.
	s.TransferZone(world.ZoneBarentsSea, world.FactionEU)
	s.Units = append(s.Units, &world.MilitaryUnit{
		ID: "eu-1", Type: world.UnitSurfaceFleet, Owner: world.FactionEU,
		Zone: world.ZoneBarentsSea, Strength: 100, Morale: 80, Status: world.StatusReady,
	})

	for _, o := range AssessOpportunities(s, ProfileFor(world.FactionEU)) {
		assert.NotEqual(t, OppAttackZone, o.Kind)
	}

	// The same posture under an aggressive profile produces the attack.
	s2 := world.NewState(world.FactionUSA)
	s2.Units = append(s2.Units, &world.MilitaryUnit{
		ID: "ru-1", Type: world.UnitSurfaceFleet, Owner: world.FactionRussia,
		Zone: world.ZoneKaraSea, Strength: 100, Morale: 80, Status: world.StatusReady,
	})
	found := false
	for _, o := range AssessOpportunities(s2, ProfileFor(world.FactionRussia)) {
		if o.Kind == OppAttackZone {
			found = true
			assert.NotEqual(t, world.FactionRussia, o.Target)
		}
	}
	assert.True(t, found, "undefended neighbor zones invite an aggressive profile")
}

func TestClaimOpportunityPrefersListedZones(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	opps := AssessOpportunities(s, ProfileFor(world.FactionRussia))

	values := map[world.ZoneID]float64{}
	for _, o := range opps {
		if o.Kind == OppClaimZone {
			values[o.Zone] = o.Value
		}
	}
	// Lomonosov Ridge (richness 22) is on Russia's preferred list; Chukchi
	// Sea (richness 26) is too. The North Pole (8) is preferred but poor.
	require.Contains(t, values, world.ZoneLomonosovRidge)
	assert.InDelta(t, 22+15, values[world.ZoneLomonosovRidge], 1e-9)
	require.Contains(t, values, world.ZoneBeringStrait) // not preferred
	assert.InDelta(t, 16, values[world.ZoneBeringStrait], 1e-9)
}

func TestBuildOpportunityRespectsReserve(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionRussia)
	// Submarine costs 50; with the 20 reserve, 65 output is not enough.
	f.Resources.EconomicOutput = 65

	for _, o := range AssessOpportunities(s, ProfileFor(world.FactionRussia)) {
		assert.NotEqual(t, OppBuild, o.Kind)
	}

	f.Resources.EconomicOutput = 80
	found := false
	for _, o := range AssessOpportunities(s, ProfileFor(world.FactionRussia)) {
		if o.Kind == OppBuild {
			found = true
			assert.Equal(t, world.UnitSubmarine, o.Unit)
		}
	}
	assert.True(t, found)
}

func TestDecideTurnAtMostOnePerCategory(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	s.RelationBetween(world.FactionRussia, world.FactionUSA).Level = world.Crisis

	ds := DecideTurn(s, world.FactionRussia)
	assert.LessOrEqual(t, len(ds), 5)
	seen := map[string]bool{}
	for _, d := range ds {
		assert.False(t, seen[d.Category], "duplicate category %s", d.Category)
		seen[d.Category] = true
		assert.Equal(t, world.FactionRussia, d.Faction)
	}
}

func TestExecuteDecisionsCapsAtTwo(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	rng := entropy.NewSource(4)

	ds := []Decision{
		{Faction: world.FactionRussia, Category: CategoryThreatResponse, Action: "bilateral_summit", TargetFaction: world.FactionUSA},
		{Faction: world.FactionRussia, Category: CategoryOpportunity, Action: "infrastructure_investment"},
		{Faction: world.FactionRussia, Category: CategoryDiplomacy, Action: "science_mission", TargetFaction: world.FactionEU},
		{Faction: world.FactionRussia, Category: CategoryDiplomacy, Action: "science_mission", TargetFaction: world.FactionNorway},
	}
	assert.Equal(t, 2, ExecuteDecisions(s, ds, rng))
}

func TestExecuteDecisionsSkipsUnaffordable(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionRussia)
	f.Resources.Influence = 0
	f.Resources.EconomicOutput = 0
	rng := entropy.NewSource(4)

	ds := []Decision{
		{Faction: world.FactionRussia, Category: CategoryThreatResponse, Action: "bilateral_summit", TargetFaction: world.FactionUSA},
	}
	assert.Zero(t, ExecuteDecisions(s, ds, rng))
}

func TestExecuteClaimTransfersZone(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionRussia)
	f.Resources.Influence = 100
	f.Resources.Legitimacy = 60
	rng := entropy.NewSource(4)

	ds := []Decision{{
		Faction: world.FactionRussia, Category: CategoryExpansion,
		Claim: true, TargetZone: world.ZoneNorthPole,
	}}
	require.Equal(t, 1, ExecuteDecisions(s, ds, rng))
	assert.Equal(t, world.FactionRussia, s.ZoneByID(world.ZoneNorthPole).Controller)

	// A claim on a controlled zone fails outright.
	ds[0].TargetZone = world.ZoneBeaufortSea
	assert.Zero(t, ExecuteDecisions(s, ds, rng))
	assert.Equal(t, world.FactionUSA, s.ZoneByID(world.ZoneBeaufortSea).Controller)
}

func TestExecuteBuildAddsUnit(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionRussia)
	f.Resources.EconomicOutput = 100
	rng := entropy.NewSource(4)

	ds := []Decision{{
		Faction: world.FactionRussia, Category: CategoryBuild,
		BuildUnit: world.UnitSubmarine,
	}}
	require.Equal(t, 1, ExecuteDecisions(s, ds, rng))
	require.Len(t, s.Units, 1)
	assert.Equal(t, world.FactionRussia, s.Units[0].Owner)
	assert.Equal(t, 50.0, f.Resources.EconomicOutput, "cost deducted")

	// Below cost plus reserve the build is refused.
	f.Resources.EconomicOutput = 60
	assert.Zero(t, ExecuteDecisions(s, ds, rng))
}

func TestRunAITurnsSkipsPlayerAndGatesMinors(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	rng := entropy.NewSource(6)
	usa := s.FactionByID(world.FactionUSA)
	influenceBefore := usa.Resources.Influence
	outputBefore := usa.Resources.EconomicOutput

	s.Turn = 1 // odd turn: minors sit out
	canadaInfl := s.FactionByID(world.FactionCanada).Resources.Influence
	canadaOut := s.FactionByID(world.FactionCanada).Resources.EconomicOutput
	canadaZones := len(s.FactionByID(world.FactionCanada).Zones)
	RunAITurns(s, rng)

	assert.Equal(t, influenceBefore, usa.Resources.Influence, "the player faction never acts autonomously")
	assert.Equal(t, outputBefore, usa.Resources.EconomicOutput)
	assert.Equal(t, canadaInfl, s.FactionByID(world.FactionCanada).Resources.Influence)
	assert.Equal(t, canadaOut, s.FactionByID(world.FactionCanada).Resources.EconomicOutput)
	assert.Equal(t, canadaZones, len(s.FactionByID(world.FactionCanada).Zones))
}

func TestProfileForUnknownFaction(t *testing.T) {
	p := ProfileFor("atlantis")
	assert.Equal(t, world.FactionID("atlantis"), p.Faction)
	assert.LessOrEqual(t, p.RiskTolerance, 50.0)
	assert.Equal(t, world.UnitSurfaceFleet, p.PreferredUnit)
}
