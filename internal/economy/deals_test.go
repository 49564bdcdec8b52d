package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/frostline/internal/world"
)

func TestCreateTradeDealRejectsLowLegitimacyWithoutMutation(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Legitimacy = 30
	influenceBefore := f.Resources.Influence

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada)

	assert.False(t, res.OK)
	assert.Equal(t, "Requires 40 legitimacy", res.Reason)
	assert.Empty(t, econ.Deals)
	assert.Equal(t, influenceBefore, f.Resources.Influence)
}

func TestCreateTradeDealRejectsLowInfluence(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	f := s.FactionByID(world.FactionUSA)
	f.Resources.Influence = 5

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada)
	assert.False(t, res.OK)
	assert.Equal(t, "Requires 15 influence points", res.Reason)
	assert.Empty(t, econ.Deals)
}

func TestCreateTradeDealDeductsInfluenceOnSuccess(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	f := s.FactionByID(world.FactionUSA)
	before := f.Resources.Influence

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada)

	require.True(t, res.OK)
	assert.Equal(t, before-15, f.Resources.Influence)
	require.Len(t, econ.Deals, 1)
	d := econ.Deals[0]
	assert.True(t, d.Active)
	assert.Equal(t, -1, d.TurnsLeft, "indefinite deals carry -1")
	assert.Equal(t, Gain{Economic: 6, Influence: 1}, d.Gains[world.FactionUSA])
}

func TestCreateTradeDealRegistersTreaty(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada)
	require.True(t, res.OK)

	rel := s.RelationBetween(world.FactionUSA, world.FactionCanada)
	assert.Equal(t, []string{"Arctic Trade Agreement"}, rel.Treaties)
}

func TestResearchPactRequiresCooperation(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	// usa-russia opens at competition.
	res := CreateTradeDeal(s, econ, DealResearchPact, world.FactionUSA, world.FactionRussia)
	assert.False(t, res.OK)
	assert.Equal(t, "Requires cooperation-level relations", res.Reason)

	// usa-canada opens at cooperation.
	res = CreateTradeDeal(s, econ, DealResearchPact, world.FactionUSA, world.FactionCanada)
	assert.True(t, res.OK)
}

func TestTradeDealBlockedByHostileRelations(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	s.RelationBetween(world.FactionUSA, world.FactionRussia).Level = world.Confrontation

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionRussia)
	assert.False(t, res.OK)
	assert.Empty(t, econ.Deals)
}

func TestTradeDealBlockedByActiveSanction(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	econ.Sanctions = append(econ.Sanctions, &Sanction{
		ID: "sanction-1", Type: SanctionTradeEmbargo,
		Imposers: []world.FactionID{world.FactionCanada},
		Target:   world.FactionUSA,
		Active:   true,
	})

	res := CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada)
	assert.False(t, res.OK)
	assert.Equal(t, "Active sanctions block new deals", res.Reason)
}

func TestEnergyContractRoutesLargerShareToExporter(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()

	// Russia proposes to China: the exporter keeps the larger share.
	res := CreateTradeDeal(s, econ, DealEnergyContract, world.FactionRussia, world.FactionChina)
	require.True(t, res.OK)
	d := econ.Deals[0]
	assert.Equal(t, Gain{Economic: 10, Influence: 2}, d.Gains[world.FactionRussia])
	assert.Equal(t, Gain{Economic: 4}, d.Gains[world.FactionChina])

	// China proposes to Russia: the template already favors the partner.
	res = CreateTradeDeal(s, econ, DealEnergyContract, world.FactionChina, world.FactionRussia)
	require.True(t, res.OK)
	d = econ.Deals[1]
	assert.Equal(t, Gain{Economic: 4}, d.Gains[world.FactionChina])
	assert.Equal(t, Gain{Economic: 10, Influence: 2}, d.Gains[world.FactionRussia])
}

func TestCreateTradeDealInvalidParties(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	assert.False(t, CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionUSA).OK)
	assert.False(t, CreateTradeDeal(s, econ, DealTradeAgreement, "atlantis", world.FactionUSA).OK)
	assert.False(t, CreateTradeDeal(s, econ, "barter", world.FactionUSA, world.FactionCanada).OK)
}

func TestCancelTradeDeal(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	require.True(t, CreateTradeDeal(s, econ, DealTradeAgreement, world.FactionUSA, world.FactionCanada).OK)
	id := econ.Deals[0].ID

	assert.True(t, CancelTradeDeal(econ, id).OK)
	assert.False(t, econ.Deals[0].Active)
	assert.False(t, CancelTradeDeal(econ, id).OK, "already inactive")
	assert.False(t, CancelTradeDeal(econ, "deal-99").OK)
}

func TestImposeSanctionValidation(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	f := s.FactionByID(world.FactionRussia)
	f.Resources.Legitimacy = 30 // below the 45 the embargo needs

	res := ImposeSanction(s, econ, SanctionTradeEmbargo, world.FactionRussia, world.FactionUSA)
	assert.False(t, res.OK)
	assert.Equal(t, "Requires 45 legitimacy", res.Reason)
	assert.Empty(t, econ.Sanctions)
}

func TestImposeSanctionReactionTracksStanding(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()

	// Sanctioning a cooperative partner draws opposition.
	res := ImposeSanction(s, econ, SanctionTradeEmbargo, world.FactionUSA, world.FactionCanada)
	require.True(t, res.OK)
	assert.Equal(t, ReactionOpposed, econ.Sanctions[0].WorldReaction)

	// Sanctioning an open adversary reads as justified.
	s.RelationBetween(world.FactionUSA, world.FactionRussia).Level = world.Crisis
	res = ImposeSanction(s, econ, SanctionFinancialFreeze, world.FactionUSA, world.FactionRussia)
	require.True(t, res.OK)
	assert.Equal(t, ReactionSupported, econ.Sanctions[1].WorldReaction)
}

func TestImposeSanctionJoinsExisting(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	require.True(t, ImposeSanction(s, econ, SanctionTechExportBan, world.FactionUSA, world.FactionRussia).OK)
	require.True(t, ImposeSanction(s, econ, SanctionTechExportBan, world.FactionEU, world.FactionRussia).OK)

	require.Len(t, econ.Sanctions, 1, "same type and target joins, never stacks")
	sn := econ.Sanctions[0]
	assert.True(t, sn.ImposedBy(world.FactionUSA))
	assert.True(t, sn.ImposedBy(world.FactionEU))

	res := ImposeSanction(s, econ, SanctionTechExportBan, world.FactionUSA, world.FactionRussia)
	assert.False(t, res.OK)
	assert.Equal(t, "Already imposing this sanction", res.Reason)
}

func TestLiftSanction(t *testing.T) {
	s := world.NewState(world.FactionUSA)
	econ := NewState()
	require.True(t, ImposeSanction(s, econ, SanctionTechExportBan, world.FactionUSA, world.FactionRussia).OK)
	id := econ.Sanctions[0].ID

	assert.True(t, LiftSanction(econ, id).OK)
	assert.False(t, econ.Sanctions[0].Active)
	assert.False(t, LiftSanction(econ, id).OK)
}
