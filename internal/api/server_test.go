package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/frostline/internal/drama"
	"github.com/talgya/frostline/internal/engine"
	"github.com/talgya/frostline/internal/reputation"
	"github.com/talgya/frostline/internal/world"
)

func testServer() *Server {
	return &Server{
		Game:     engine.NewGame(world.FactionUSA, 42),
		AdminKey: "sekrit",
	}
}

func TestStatusPayloadFields(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["turn"])
	assert.Equal(t, "Winter", body["season"])
	assert.Equal(t, float64(2030), body["year"])
	assert.Equal(t, "usa", body["player"])
	assert.Equal(t, "Peacetime", body["nuclear_readiness"])
	assert.Equal(t, false, body["active_crisis"])
	assert.NotContains(t, body, "ended")
}

func TestFactionsEndpoint(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleFactions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/factions", nil))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, len(world.AllFactions))
	assert.Equal(t, "usa", body[0]["id"])
}

func TestZonesEndpointIncludesNavigability(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleZones(rec, httptest.NewRequest(http.MethodGet, "/api/v1/zones", nil))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 18)
	for _, z := range body {
		nav, ok := z["navigability"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, nav, 0.1)
		assert.LessOrEqual(t, nav, 1.0)
	}
}

func TestUnitsEndpointFiltersByFaction(t *testing.T) {
	s := testServer()
	s.Game.World.Units = append(s.Game.World.Units,
		&world.MilitaryUnit{ID: "a", Owner: world.FactionUSA, Zone: world.ZoneBeaufortSea, Status: world.StatusReady},
		&world.MilitaryUnit{ID: "b", Owner: world.FactionRussia, Zone: world.ZoneKaraSea, Status: world.StatusReady},
	)

	rec := httptest.NewRecorder()
	s.handleUnits(rec, httptest.NewRequest(http.MethodGet, "/api/v1/units?faction=russia", nil))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "b", body[0]["id"])
}

func TestAdminOnlyRejectsNonPost(t *testing.T) {
	s := testServer()
	h := s.adminOnly(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/advance", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAdminOnlyRejectsBadToken(t *testing.T) {
	s := testServer()
	called := false
	h := s.adminOnly(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/advance", nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/advance", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/advance", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnlyDisabledWithoutKey(t *testing.T) {
	s := testServer()
	s.AdminKey = ""
	h := s.adminOnly(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/advance", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleActionRejectsUnavailable(t *testing.T) {
	s := testServer()
	s.Game.World.FactionByID(world.FactionUSA).Resources.Influence = 0
	s.Game.World.FactionByID(world.FactionUSA).Resources.EconomicOutput = 0

	req := httptest.NewRequest(http.MethodPost, "/api/v1/action",
		strings.NewReader(`{"action":"bilateral_summit","target_faction":"russia"}`))
	rec := httptest.NewRecorder()
	s.handleAction(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Action unavailable", body["reason"])
}

func TestHandleActionExecutes(t *testing.T) {
	s := testServer()
	usa := s.Game.World.FactionByID(world.FactionUSA)
	influenceBefore := usa.Resources.Influence

	req := httptest.NewRequest(http.MethodPost, "/api/v1/action",
		strings.NewReader(`{"action":"bilateral_summit","target_faction":"russia"}`))
	rec := httptest.NewRecorder()
	s.handleAction(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, influenceBefore-15, usa.Resources.Influence)
}

func TestHandleActionBadJSON(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	s.handleAction(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCrisisResolveWithoutCrisis(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/crisis/resolve",
		strings.NewReader(`{"choice":"apologize"}`))
	rec := httptest.NewRecorder()
	s.handleCrisisResolve(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No active crisis", body["reason"])
}

func TestHandleResearchStartAndCancel(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/research",
		strings.NewReader(`{"tech":"polar_logistics"}`))
	rec := httptest.NewRecorder()
	s.handleResearch(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "polar_logistics", s.Game.Tech.CurrentResearch)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/research",
		strings.NewReader(`{"cancel":true}`))
	rec = httptest.NewRecorder()
	s.handleResearch(rec, req)
	assert.Empty(t, s.Game.Tech.CurrentResearch)
}

func TestHandleDealCreateAndCancel(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/deal",
		strings.NewReader(`{"type":"trade_agreement","partner":"canada"}`))
	rec := httptest.NewRecorder()
	s.handleDeal(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Len(t, s.Game.Econ.Deals, 1)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/deal",
		strings.NewReader(`{"cancel":"`+s.Game.Econ.Deals[0].ID+`"}`))
	rec = httptest.NewRecorder()
	s.handleDeal(rec, req)
	assert.False(t, s.Game.Econ.Deals[0].Active)
}

func TestHandleSanctionImposeAndLift(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sanction",
		strings.NewReader(`{"type":"tech_export_ban","target":"russia"}`))
	rec := httptest.NewRecorder()
	s.handleSanction(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Len(t, s.Game.Econ.Sanctions, 1)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sanction",
		strings.NewReader(`{"lift":"`+s.Game.Econ.Sanctions[0].ID+`"}`))
	rec = httptest.NewRecorder()
	s.handleSanction(rec, req)
	assert.False(t, s.Game.Econ.Sanctions[0].Active)
}

func TestSanctionMovesReputation(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sanction",
		strings.NewReader(`{"type":"tech_export_ban","target":"russia"}`))
	rec := httptest.NewRecorder()
	s.handleSanction(rec, req)

	rep := s.Game.Rep
	require.Len(t, rep.History, 1)
	assert.Equal(t, reputation.EconomicChoice, rep.History[0].Kind)
	assert.Equal(t, 44.0, rep.EconomicFairness)
	assert.Equal(t, 48.0, rep.Diplomacy)
}

func TestDealLifecycleMovesReputation(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/deal",
		strings.NewReader(`{"type":"trade_agreement","partner":"canada"}`))
	rec := httptest.NewRecorder()
	s.handleDeal(rec, req)

	rep := s.Game.Rep
	assert.Equal(t, 54.0, rep.EconomicFairness)
	assert.Equal(t, 52.0, rep.Reliability)
	rel := s.Game.World.RelationBetween(world.FactionUSA, world.FactionCanada)
	assert.Contains(t, rel.Treaties, "Arctic Trade Agreement")

	req = httptest.NewRequest(http.MethodPost, "/api/v1/deal",
		strings.NewReader(`{"cancel":"`+s.Game.Econ.Deals[0].ID+`"}`))
	rec = httptest.NewRecorder()
	s.handleDeal(rec, req)

	assert.Equal(t, 1, rep.TreatiesBroken)
	assert.Equal(t, 42.0, rep.Reliability)
	assert.Equal(t, 46.0, rep.Diplomacy)
	require.Len(t, rep.History, 2)
	assert.Equal(t, reputation.TreatyBroken, rep.History[1].Kind)
}

func TestClaimZoneRecordsConquest(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/action",
		strings.NewReader(`{"action":"claim_zone","target_zone":"north_pole"}`))
	rec := httptest.NewRecorder()
	s.handleAction(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])

	rep := s.Game.Rep
	assert.Equal(t, 1, rep.ZonesConquered)
	assert.Equal(t, 55.0, rep.Militarism)
	assert.Equal(t, 47.0, rep.Diplomacy)
}

func TestSummitLeavesReputationUntouched(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/action",
		strings.NewReader(`{"action":"bilateral_summit","target_faction":"russia"}`))
	rec := httptest.NewRecorder()
	s.handleAction(rec, req)

	assert.Empty(t, s.Game.Rep.History, "only commands with a reputational reading are recorded")
}

func TestCrisisResolutionRecordsDecision(t *testing.T) {
	s := testServer()
	s.Game.Drama.ActiveCrisis = &drama.Crisis{
		ID: "port_dispute", Title: "Port Access Dispute",
		Choices: []drama.CrisisChoice{{
			ID: "mediate", Label: "Mediate between the parties",
			Success: drama.Consequences{Resources: world.Resources{Legitimacy: 2}},
		}},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/crisis/resolve",
		strings.NewReader(`{"choice":"mediate"}`))
	rec := httptest.NewRecorder()
	s.handleCrisisResolve(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["outcome"], "no success chance means the choice always succeeds")

	rep := s.Game.Rep
	require.Len(t, rep.History, 1)
	assert.Equal(t, reputation.Humanitarian, rep.History[0].Kind)
	assert.Equal(t, 53.0, rep.Reliability)
	assert.Equal(t, 52.0, rep.Diplomacy)
}

func TestTreatyProposalUsesReputationOdds(t *testing.T) {
	s := testServer()
	s.Game.Rep.Reliability = 100 // +20 acceptance bonus

	req := httptest.NewRequest(http.MethodPost, "/api/v1/treaty",
		strings.NewReader(`{"target":"canada"}`))
	rec := httptest.NewRecorder()
	s.handleTreaty(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Cooperation base 80 plus the reliability bonus, clamped to the ceiling.
	assert.Equal(t, 95.0, body["chance"])

	rel := s.Game.World.RelationBetween(world.FactionUSA, world.FactionCanada)
	if body["success"] == true {
		assert.Contains(t, rel.Treaties, "Arctic Non-Aggression Pact")
		assert.Equal(t, 1, s.Game.Rep.TreatiesHonored)
		assert.Equal(t, 10.0, rel.Value, "pact relief cools the pair")
	} else {
		assert.Empty(t, rel.Treaties)
		assert.Equal(t, 20.0, rel.Value)
	}
}

func TestTreatyChanceFloorsAfterBreaks(t *testing.T) {
	s := testServer()
	s.Game.Rep.TreatiesBroken = 30

	req := httptest.NewRequest(http.MethodPost, "/api/v1/treaty",
		strings.NewReader(`{"target":"canada"}`))
	rec := httptest.NewRecorder()
	s.handleTreaty(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5.0, body["chance"], "break history drives the chance to the floor")
}

func TestTreatyRejectsUnknownTarget(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/treaty",
		strings.NewReader(`{"target":"atlantis"}`))
	rec := httptest.NewRecorder()
	s.handleTreaty(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No relation with target", body["reason"])
}

func TestReputationEndpoint(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleReputation(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reputation", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	profile, ok := body["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 50.0, profile["overall"])
	mods, ok := body["modifiers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.0, mods["treaty_accept_bonus"])
}

func TestAdvanceAndSaveWithoutDB(t *testing.T) {
	s := testServer()
	payload, _ := s.AdvanceAndSave()
	assert.Equal(t, 2, payload["turn"])
	assert.Equal(t, 2, s.Game.World.Turn)
	assert.Empty(t, s.Game.World.Notifications, "drained into the save path")
}
