package tech

import (
	"fmt"
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// Baseline per-turn resource gains; tech bonuses are expressed as a net
// percentage on top of these. The orchestrator applies the baseline itself
// during resource regeneration.
const (
	BaselineEconomicGain  = 10.0
	BaselineInfluenceGain = 15.0
)

// Result mirrors the economy package's validator outcome.
type Result struct {
	OK     bool
	Reason string
}

// State is one faction's research side-car. In the current design only the
// player researches.
type State struct {
	Researched      []string `json:"researched"`
	CurrentResearch string   `json:"current_research"` // "" = idle
	Progress        int      `json:"progress"`
	TechPoints      float64  `json:"tech_points"`
}

// NewState returns an empty research state.
func NewState() *State {
	return &State{}
}

// HasResearched reports whether the tech id is completed.
func (ts *State) HasResearched(id string) bool {
	for _, r := range ts.Researched {
		if r == id {
			return true
		}
	}
	return false
}

// StartResearch validates and begins researching a tech, deducting the full
// cost immediately (not on completion). Prerequisites are checked before
// resources, so a missing prereq rejects regardless of wealth.
func StartResearch(f *world.Faction, ts *State, id string) Result {
	t := ByID(id)
	if t == nil {
		return Result{Reason: fmt.Sprintf("Unknown technology %q", id)}
	}
	if ts.HasResearched(id) {
		return Result{Reason: "Already researched"}
	}
	if ts.CurrentResearch != "" {
		return Result{Reason: "Research already in progress"}
	}
	for _, p := range t.Prereqs {
		if !ts.HasResearched(p) {
			return Result{Reason: fmt.Sprintf("Missing prerequisite: %s", p)}
		}
	}
	if f.Resources.Influence < t.CostInfluence {
		return Result{Reason: fmt.Sprintf("Requires %.0f influence points", t.CostInfluence)}
	}
	if f.Resources.EconomicOutput < t.CostEconomic {
		return Result{Reason: fmt.Sprintf("Requires %.0f economic output", t.CostEconomic)}
	}

	f.Resources.Influence -= t.CostInfluence
	f.Resources.EconomicOutput -= t.CostEconomic
	ts.CurrentResearch = id
	ts.Progress = 0
	slog.Info("research started", "faction", f.ID, "tech", id, "turns", t.TurnsToResearch)
	return Result{OK: true}
}

// ProcessResearch advances the current research by one turn. Returns the
// completed technology when it finishes, nil otherwise.
func ProcessResearch(ts *State) *Technology {
	if ts.CurrentResearch == "" {
		return nil
	}
	t := ByID(ts.CurrentResearch)
	if t == nil {
		// Stale id; drop it rather than stall forever.
		ts.CurrentResearch = ""
		ts.Progress = 0
		return nil
	}
	ts.Progress++
	if ts.Progress < t.TurnsToResearch {
		return nil
	}
	ts.Researched = append(ts.Researched, t.ID)
	ts.CurrentResearch = ""
	ts.Progress = 0
	ts.TechPoints += float64(t.TurnsToResearch)
	return t
}

// CancelResearch abandons the current research, refunding 50% of the cost
// proportional to the turns remaining, for both currencies.
func CancelResearch(f *world.Faction, ts *State) {
	if ts.CurrentResearch == "" {
		return
	}
	t := ByID(ts.CurrentResearch)
	if t != nil && t.TurnsToResearch > 0 {
		remaining := float64(t.TurnsToResearch-ts.Progress) / float64(t.TurnsToResearch)
		f.Resources.Influence += t.CostInfluence * remaining * 0.5
		f.Resources.EconomicOutput += t.CostEconomic * remaining * 0.5
	}
	ts.CurrentResearch = ""
	ts.Progress = 0
}

// ApplyTechEffects applies the per-turn cumulative bonuses of all researched
// techs: the net percentage bonus over the baseline gains (the baseline
// itself is added during regeneration), plus flat legitimacy and scaled
// readiness, clamped to [0, 100].
func ApplyTechEffects(f *world.Faction, ts *State) {
	var econPct, inflPct, legitimacy, readiness float64
	for _, id := range ts.Researched {
		t := ByID(id)
		if t == nil {
			continue
		}
		econPct += t.EconomicBonus
		inflPct += t.InfluenceBonus
		legitimacy += t.LegitimacyBonus
		readiness += t.ReadinessBonus
	}
	f.Resources.EconomicOutput += BaselineEconomicGain * econPct / 100
	f.Resources.Influence += BaselineInfluenceGain * inflPct / 100
	f.Resources.Legitimacy += legitimacy
	f.Resources.MilitaryReadiness += readiness * 0.5
	world.ClampFactionBounds(f)
}

// AllResearched reports whether the whole tree is complete.
func (ts *State) AllResearched() bool {
	return len(ts.Researched) >= len(Tree)
}
