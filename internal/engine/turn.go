// Package engine owns the campaign aggregate and the turn orchestrator:
// one AdvanceTurn call runs the full deterministic phase sequence against
// the shared world state. Player actions between turns go through the
// actions and economy packages directly; this package only sequences.
package engine

import (
	"log/slog"

	"github.com/talgya/frostline/internal/ai"
	"github.com/talgya/frostline/internal/drama"
	"github.com/talgya/frostline/internal/economy"
	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/reputation"
	"github.com/talgya/frostline/internal/tech"
	"github.com/talgya/frostline/internal/world"
)

// lowOutputThreshold and lowOutputDefeatTurns define the economic-collapse
// defeat: output below the threshold for that many consecutive turns.
const (
	lowOutputThreshold   = 5
	lowOutputDefeatTurns = 3
)

// Game is one campaign: the world state plus every sub-engine side-car and
// the injected entropy source. Single-owner, no internal locking; callers
// serialize access.
type Game struct {
	World *world.State
	Econ  *economy.State
	Tech  *tech.State
	Rep   *reputation.Profile
	Drama *drama.State
	Ice   *world.IceModel
	RNG   *entropy.Source

	OutputLowTurns int
	Ended          *GameEndState
}

// NewGame starts a fresh 2030 campaign. Seed 0 gives a non-reproducible
// run; any other seed replays exactly.
func NewGame(player world.FactionID, seed int64) *Game {
	return &Game{
		World: world.NewState(player),
		Econ:  economy.NewState(),
		Tech:  tech.NewState(),
		Rep:   reputation.NewProfile(),
		Drama: drama.NewState(),
		Ice:   world.NewIceModel(seed),
		RNG:   entropy.NewSource(seed),
	}
}

// AdvanceTurn runs one full turn in fixed phase order: world events, AI
// factions, drama checks, achievements, research and tech effects, resource
// regeneration and economic effects, victory-point rescoring, calendar
// advance, then end-of-game evaluation. No-op once the game has ended.
func (g *Game) AdvanceTurn() {
	if g.Ended != nil {
		return
	}
	s := g.World

	applyWorldEvents(g)

	ai.RunAITurns(s, g.RNG)

	drama.GenerateCrisis(s, g.Drama, g.RNG)
	drama.CheckResourceDiscovery(s, g.Drama, g.RNG)
	drama.CheckEnvironmentalEvent(s, g.Drama, g.RNG)
	drama.CheckNuclearEscalation(s, g.Drama)

	drama.CheckAchievements(s, g.Drama)

	if t := tech.ProcessResearch(g.Tech); t != nil {
		s.Notify("research", "Research complete", "%s is now operational", t.Name)
	}
	if player := s.FactionByID(s.Player); player != nil {
		tech.ApplyTechEffects(player, g.Tech)
	}

	// Baseline regeneration for every faction, then the economic pass
	// (deals, sanctions, supply chains, prices, zone income).
	for _, f := range s.Factions {
		f.Resources.EconomicOutput += tech.BaselineEconomicGain
		f.Resources.Influence += tech.BaselineInfluenceGain
	}
	economy.ApplyEffects(s, g.Econ, g.Ice, g.RNG)

	s.RecomputeVictoryPoints()

	g.trackLowOutput()
	g.advanceCalendar()

	g.Ended = EvaluateEnd(g)
	if g.Ended != nil {
		slog.Info("campaign over",
			"turn", s.Turn, "year", s.Year,
			"victory", g.Ended.Victory, "defeat", g.Ended.Defeat,
		)
	}
}

func (g *Game) trackLowOutput() {
	player := g.World.FactionByID(g.World.Player)
	if player == nil {
		return
	}
	if player.Resources.EconomicOutput < lowOutputThreshold {
		g.OutputLowTurns++
	} else {
		g.OutputLowTurns = 0
	}
}

func (g *Game) advanceCalendar() {
	s := g.World
	s.Turn++
	s.Season++
	if s.Season > world.SeasonAutumn {
		s.Season = world.SeasonWinter
		s.Year++
	}
}
