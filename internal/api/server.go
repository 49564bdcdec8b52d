// Package api serves the campaign over HTTP. GET endpoints are public
// read-only views; POST endpoints mutate the game and require a bearer
// token. A websocket hub pushes a snapshot after every turn.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/talgya/frostline/internal/actions"
	"github.com/talgya/frostline/internal/drama"
	"github.com/talgya/frostline/internal/economy"
	"github.com/talgya/frostline/internal/engine"
	"github.com/talgya/frostline/internal/persistence"
	"github.com/talgya/frostline/internal/reputation"
	"github.com/talgya/frostline/internal/tech"
	"github.com/talgya/frostline/internal/world"
)

// Server serves one campaign. The mutex makes player actions and turn
// advances mutually exclusive; sub-engines assume single-owner access.
type Server struct {
	Game     *engine.Game
	DB       *persistence.DB
	Hub      *Hub
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	mu sync.Mutex
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	// Public read-only views.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/factions", s.handleFactions)
	mux.HandleFunc("/api/v1/zones", s.handleZones)
	mux.HandleFunc("/api/v1/relations", s.handleRelations)
	mux.HandleFunc("/api/v1/units", s.handleUnits)
	mux.HandleFunc("/api/v1/actions", s.handleActions)
	mux.HandleFunc("/api/v1/economy", s.handleEconomy)
	mux.HandleFunc("/api/v1/tech", s.handleTech)
	mux.HandleFunc("/api/v1/crisis", s.handleCrisis)
	mux.HandleFunc("/api/v1/reputation", s.handleReputation)
	mux.HandleFunc("/api/v1/notifications", s.handleNotifications)

	// Live updates.
	mux.HandleFunc("/api/v1/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(s.Hub, w, r)
	})

	// Mutating endpoints (POST, bearer token).
	mux.HandleFunc("/api/v1/advance", s.adminOnly(s.handleAdvance))
	mux.HandleFunc("/api/v1/action", s.adminOnly(s.handleAction))
	mux.HandleFunc("/api/v1/crisis/resolve", s.adminOnly(s.handleCrisisResolve))
	mux.HandleFunc("/api/v1/research", s.adminOnly(s.handleResearch))
	mux.HandleFunc("/api/v1/deal", s.adminOnly(s.handleDeal))
	mux.HandleFunc("/api/v1/sanction", s.adminOnly(s.handleSanction))
	mux.HandleFunc("/api/v1/treaty", s.adminOnly(s.handleTreaty))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires a bearer token on POST; other methods are rejected.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "control endpoints disabled (no admin key set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) statusPayload() map[string]any {
	g := s.Game
	st := g.World
	payload := map[string]any{
		"turn":              st.Turn,
		"season":            world.SeasonName(st.Season),
		"year":              st.Year,
		"player":            st.Player,
		"nuclear_readiness": g.Drama.NuclearReadiness.String(),
		"prices":            g.Econ.Prices,
		"ice_extent":        g.Ice.Extent(st.Year, st.Season),
		"active_crisis":     g.Drama.ActiveCrisis != nil,
	}
	if g.Ended != nil {
		payload["ended"] = g.Ended
	}
	return payload
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.statusPayload())
}

func (s *Server) handleFactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type factionSummary struct {
		ID            world.FactionID `json:"id"`
		Name          string          `json:"name"`
		Color         string          `json:"color"`
		Resources     world.Resources `json:"resources"`
		Zones         []world.ZoneID  `json:"zones"`
		VictoryPoints float64         `json:"victory_points"`
		UnitCount     int             `json:"unit_count"`
	}

	st := s.Game.World
	var result []factionSummary
	for _, fid := range world.AllFactions {
		f := st.FactionByID(fid)
		if f == nil {
			continue
		}
		result = append(result, factionSummary{
			ID: f.ID, Name: f.Name, Color: f.Color,
			Resources: f.Resources, Zones: f.Zones,
			VictoryPoints: f.VictoryPoints,
			UnitCount:     len(st.ActiveUnits(fid)),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Game.World
	type zoneSummary struct {
		*world.Zone
		Navigability float64 `json:"navigability"`
	}
	var result []zoneSummary
	for _, id := range world.ZoneIDs() {
		z := st.ZoneByID(id)
		result = append(result, zoneSummary{
			Zone:         z,
			Navigability: s.Game.Ice.Navigable(z, st.Year, st.Season),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleRelations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type relationSummary struct {
		A        world.FactionID `json:"a"`
		B        world.FactionID `json:"b"`
		Level    string          `json:"level"`
		Value    float64         `json:"value"`
		Treaties []string        `json:"treaties,omitempty"`
	}
	var result []relationSummary
	for _, rel := range s.Game.World.Relations {
		result = append(result, relationSummary{
			A: rel.A, B: rel.B, Level: rel.Level.String(), Value: rel.Value,
			Treaties: rel.Treaties,
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := world.FactionID(r.URL.Query().Get("faction"))
	var result []*world.MilitaryUnit
	for _, u := range s.Game.World.Units {
		if owner != "" && u.Owner != owner {
			continue
		}
		result = append(result, u)
	}
	writeJSON(w, result)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, actions.Available(s.Game.World, s.Game.World.Player))
}

func (s *Server) handleEconomy(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	econ := s.Game.Econ
	writeJSON(w, map[string]any{
		"prices":        econ.Prices,
		"deals":         econ.Deals,
		"sanctions":     econ.Sanctions,
		"supply_chains": econ.SupplyChains,
	})
}

func (s *Server) handleTech(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, map[string]any{
		"tree":  tech.Tree,
		"state": s.Game.Tech,
	})
}

func (s *Server) handleCrisis(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, map[string]any{
		"active":      s.Game.Drama.ActiveCrisis,
		"discovery":   s.Game.Drama.PendingDiscovery,
		"environment": s.Game.Drama.PendingEnvironment,
	})
}

func (s *Server) handleReputation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, map[string]any{
		"profile":   s.Game.Rep,
		"modifiers": s.Game.Rep.GetModifiers(),
	})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}
	notes, err := s.DB.RecentNotifications(limit)
	if err != nil {
		slog.Error("notification query failed", "error", err)
		writeJSON(w, []world.Notification{})
		return
	}
	if notes == nil {
		notes = []world.Notification{}
	}
	writeJSON(w, notes)
}

// AdvanceAndSave runs one turn under the server lock, persists the result,
// and pushes a snapshot to websocket clients. Shared by the POST endpoint
// and the auto-advance loop so both serialize through the same mutex.
func (s *Server) AdvanceAndSave() (map[string]any, []world.Notification) {
	s.mu.Lock()
	s.Game.AdvanceTurn()
	payload := s.statusPayload()
	notes := s.Game.World.DrainNotifications()
	s.mu.Unlock()

	if s.DB != nil {
		if err := s.DB.SaveNotifications(notes); err != nil {
			slog.Error("notification save failed", "error", err)
		}
		if err := s.DB.SaveCampaign(s.Game); err != nil {
			slog.Error("campaign save failed", "error", err)
		}
	}
	s.broadcast("turn", payload)
	return payload, notes
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	payload, notes := s.AdvanceAndSave()
	payload["notifications"] = notes
	writeJSON(w, payload)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action        actions.ActionID `json:"action"`
		TargetFaction world.FactionID  `json:"target_faction"`
		TargetZone    world.ZoneID     `json:"target_zone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Game.World
	a := actions.ByID(req.Action)
	if a == nil {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	available := false
	for _, av := range actions.Available(st, st.Player) {
		if av.ID == req.Action {
			available = true
			break
		}
	}
	if !available {
		writeJSON(w, map[string]any{"success": false, "reason": "Action unavailable"})
		return
	}
	actions.Execute(st, a, st.Player, req.TargetFaction, req.TargetZone)
	if d := actionReputation(st.Turn, a); d != nil {
		s.Game.Rep.RecordDecision(*d)
	}
	writeJSON(w, map[string]any{"success": true})
}

// actionReputation maps a player command to its reputation decision. Only
// commands with a clear reputational reading are recorded.
func actionReputation(turn int, a *actions.Action) *reputation.Decision {
	d := reputation.Decision{Turn: turn, Description: a.Name}
	switch a.ID {
	case actions.ClaimZone:
		d.Kind = reputation.ZoneConquered
		d.Effects = reputation.AxisEffects{Militarism: 5, Diplomacy: -3}
	case actions.DeployForces:
		d.Kind = reputation.WarDeclared
		d.Effects = reputation.AxisEffects{Militarism: 8, Diplomacy: -4}
	case actions.ResourceExtraction:
		d.Kind = reputation.Environmental
		d.Effects = reputation.AxisEffects{Environmentalism: -6}
	case actions.ScienceMission:
		d.Kind = reputation.Environmental
		d.Effects = reputation.AxisEffects{Environmentalism: 4, Diplomacy: 2}
	default:
		return nil
	}
	return &d
}

func (s *Server) handleCrisisResolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Choice string `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Game.Drama.ActiveCrisis == nil {
		writeJSON(w, map[string]any{"success": false, "reason": "No active crisis"})
		return
	}
	title := s.Game.Drama.ActiveCrisis.Title
	outcome := drama.ResolveCrisisChoice(s.Game.World, s.Game.Drama, req.Choice, s.Game.RNG)
	if s.Game.Drama.ActiveCrisis != nil {
		writeJSON(w, map[string]any{"success": false, "reason": "Unknown choice"})
		return
	}

	effects := reputation.AxisEffects{Reliability: -3}
	if outcome {
		effects = reputation.AxisEffects{Reliability: 3, Diplomacy: 2}
	}
	s.Game.Rep.RecordDecision(reputation.Decision{
		Turn: s.Game.World.Turn, Kind: reputation.Humanitarian,
		Description: fmt.Sprintf("%s: %s", title, req.Choice),
		Effects:     effects,
	})
	writeJSON(w, map[string]any{"success": true, "outcome": outcome})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tech   string `json:"tech"`
		Cancel bool   `json:"cancel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.Game.World.FactionByID(s.Game.World.Player)
	if player == nil {
		http.Error(w, "no player faction", http.StatusInternalServerError)
		return
	}
	if req.Cancel {
		tech.CancelResearch(player, s.Game.Tech)
		writeJSON(w, map[string]any{"success": true})
		return
	}
	res := tech.StartResearch(player, s.Game.Tech, req.Tech)
	writeJSON(w, map[string]any{"success": res.OK, "reason": res.Reason})
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type    economy.DealType `json:"type"`
		Partner world.FactionID  `json:"partner"`
		Cancel  string           `json:"cancel"` // deal id to cancel instead
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Cancel != "" {
		res := economy.CancelTradeDeal(s.Game.Econ, req.Cancel)
		if res.OK {
			// Walking out on a signed deal is the live treaty-break path.
			s.Game.Rep.RecordDecision(reputation.Decision{
				Turn: s.Game.World.Turn, Kind: reputation.TreatyBroken,
				Description: fmt.Sprintf("Cancelled deal %s", req.Cancel),
				Effects:     reputation.AxisEffects{Reliability: -10, Diplomacy: -4},
			})
		}
		writeJSON(w, map[string]any{"success": res.OK, "reason": res.Reason})
		return
	}
	res := economy.CreateTradeDeal(s.Game.World, s.Game.Econ, req.Type, s.Game.World.Player, req.Partner)
	if res.OK {
		s.Game.Rep.RecordDecision(reputation.Decision{
			Turn: s.Game.World.Turn, Kind: reputation.EconomicChoice,
			Description: fmt.Sprintf("Signed %s with %s", req.Type, req.Partner),
			Effects:     reputation.AxisEffects{EconomicFairness: 4, Reliability: 2},
		})
	}
	writeJSON(w, map[string]any{"success": res.OK, "reason": res.Reason})
}

func (s *Server) handleSanction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type   economy.SanctionType `json:"type"`
		Target world.FactionID      `json:"target"`
		Lift   string               `json:"lift"` // sanction id to lift instead
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Lift != "" {
		res := economy.LiftSanction(s.Game.Econ, req.Lift)
		writeJSON(w, map[string]any{"success": res.OK, "reason": res.Reason})
		return
	}
	res := economy.ImposeSanction(s.Game.World, s.Game.Econ, req.Type, s.Game.World.Player, req.Target)
	if res.OK {
		s.Game.Rep.RecordDecision(reputation.Decision{
			Turn: s.Game.World.Turn, Kind: reputation.EconomicChoice,
			Description: fmt.Sprintf("Sanctioned %s", req.Target),
			Effects:     reputation.AxisEffects{EconomicFairness: -6, Diplomacy: -2},
		})
	}
	writeJSON(w, map[string]any{"success": res.OK, "reason": res.Reason})
}

// treatyPactName and treatyTensionRelief describe the one pact the player
// can propose over the API. Relief scales with the diplomacy modifier.
const (
	treatyPactName      = "Arctic Non-Aggression Pact"
	treatyTensionRelief = 10.0
)

// handleTreaty lets the player propose a non-aggression pact. The target's
// answer is rolled from the pair's tension level and the player's
// reputation; acceptance registers the treaty and cools the relation.
func (s *Server) handleTreaty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target world.FactionID `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Game.World
	rel := st.RelationBetween(st.Player, req.Target)
	if rel == nil {
		writeJSON(w, map[string]any{"success": false, "reason": "No relation with target"})
		return
	}
	accepted, chance := s.Game.Rep.WouldAcceptTreaty(rel.Level, s.Game.RNG)
	if !accepted {
		writeJSON(w, map[string]any{"success": false, "reason": "Proposal declined", "chance": chance})
		return
	}

	st.AddTreaty(st.Player, req.Target, treatyPactName)
	mods := s.Game.Rep.GetModifiers()
	st.AdjustTension(st.Player, req.Target, -(treatyTensionRelief + mods.TensionReduction))
	s.Game.Rep.RecordDecision(reputation.Decision{
		Turn: st.Turn, Kind: reputation.TreatyHonored,
		Description: fmt.Sprintf("Signed %s with %s", treatyPactName, req.Target),
		Effects:     reputation.AxisEffects{Reliability: 3, Diplomacy: 4},
	})
	st.Notify("diplomacy", "Pact signed", "%s agreed to the %s", req.Target, treatyPactName)
	writeJSON(w, map[string]any{"success": true, "chance": chance})
}

func (s *Server) broadcast(kind string, payload any) {
	if s.Hub == nil {
		return
	}
	msg, err := json.Marshal(map[string]any{"type": kind, "payload": payload})
	if err != nil {
		return
	}
	select {
	case s.Hub.Broadcast <- msg:
	default:
	}
}
