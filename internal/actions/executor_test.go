package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/frostline/internal/world"
)

func TestAvailableFiltersByCost(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Influence = 5
	f.Resources.EconomicOutput = 5

	for _, a := range Available(s, world.FactionUSA) {
		assert.LessOrEqual(t, a.Cost.Influence, 5.0, "action %s too expensive", a.ID)
		assert.LessOrEqual(t, a.Cost.EconomicOutput, 5.0, "action %s too expensive", a.ID)
	}
}

func TestAvailableFiltersByLegitimacy(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Influence = 1000
	f.Resources.EconomicOutput = 1000
	f.Resources.Legitimacy = 35

	ids := map[ActionID]bool{}
	for _, a := range Available(s, world.FactionUSA) {
		ids[a.ID] = true
	}
	// ClaimZone needs 50 legitimacy, ArcticCouncilMotion needs 40.
	assert.False(t, ids[ClaimZone])
	assert.False(t, ids[ArcticCouncilMotion])
	assert.True(t, ids[BilateralSummit])
	assert.True(t, ids[DeployForces]) // needs only 30
}

func TestAvailableFiltersByZoneControl(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	// China starts with no zones.
	f := s.FactionByID(world.FactionChina)
	require.Empty(t, f.Zones)
	f.Resources.Influence = 1000
	f.Resources.EconomicOutput = 1000

	for _, a := range Available(s, world.FactionChina) {
		assert.False(t, a.Requirements.ControlsAnyZone, "action %s requires a zone", a.ID)
	}
}

func TestAvailableUnknownActor(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	assert.Nil(t, Available(s, "atlantis"))
}

func TestExecuteAppliesCostAndEffects(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Influence = 100
	f.Resources.Legitimacy = 50

	a := ByID(BilateralSummit)
	require.NotNil(t, a)
	Execute(s, a, world.FactionUSA, "", "")

	assert.Equal(t, 85.0, f.Resources.Influence) // 100 - 15 cost
	assert.Equal(t, 53.0, f.Resources.Legitimacy)
}

func TestExecuteTensionOnlyWithTarget(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Influence = 200

	r := s.RelationBetween(world.FactionUSA, world.FactionRussia)
	before := r.Value

	a := ByID(BilateralSummit)
	Execute(s, a, world.FactionUSA, "", "")
	assert.Equal(t, before, r.Value, "no target faction means no tension change")

	Execute(s, a, world.FactionUSA, world.FactionRussia, "")
	assert.Equal(t, before-15, r.Value)
}

func TestExecuteClampsLegitimacyAndReadiness(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.EconomicOutput = 200
	f.Resources.MilitaryReadiness = 95

	a := ByID(MilitaryExercise) // +10 readiness
	Execute(s, a, world.FactionUSA, "", "")
	assert.Equal(t, 100.0, f.Resources.MilitaryReadiness)

	f.Resources.Legitimacy = 1
	f.Resources.Influence = 100
	d := ByID(Disinformation) // -5 legitimacy
	Execute(s, d, world.FactionUSA, "", "")
	assert.Equal(t, 0.0, f.Resources.Legitimacy)
}

func TestExecuteMilitaryActionRaisesPresence(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	f := s.FactionByID(world.FactionUSA)
	f.Resources.EconomicOutput = 200

	z := s.ZoneByID(world.ZoneBeaufortSea)
	require.NotNil(t, z)
	before := z.MilitaryPresence[world.FactionUSA]

	a := ByID(MilitaryExercise)
	Execute(s, a, world.FactionUSA, "", world.ZoneBeaufortSea)
	assert.Equal(t, before+5, z.MilitaryPresence[world.FactionUSA])

	// Non-military actions never touch presence even with a zone target.
	s2 := world.NewState(world.FactionUSA)
	s2.FactionByID(world.FactionUSA).Resources.Influence = 200
	z2 := s2.ZoneByID(world.ZoneBeaufortSea)
	p := z2.MilitaryPresence[world.FactionUSA]
	Execute(s2, ByID(BilateralSummit), world.FactionUSA, "", world.ZoneBeaufortSea)
	assert.Equal(t, p, z2.MilitaryPresence[world.FactionUSA])
}

func TestExecuteUnknownActorNoOps(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	Execute(s, ByID(BilateralSummit), "atlantis", world.FactionRussia, "")
	r := s.RelationBetween(world.FactionUSA, world.FactionRussia)
	assert.NotNil(t, r)
}

func TestByIDUnknown(t *testing.T) {
	assert.Nil(t, ByID("orbital_strike"))
}
