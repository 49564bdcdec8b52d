// Package reputation tracks the player's six-axis standing derived from
// decision history. The profile feeds back into diplomacy odds and AI
// posture through advisory modifiers; nothing here is auto-applied.
package reputation

import (
	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

// DecisionKind classifies a recorded decision and drives counter updates.
type DecisionKind string

const (
	TreatyHonored  DecisionKind = "treaty_honored"
	TreatyBroken   DecisionKind = "treaty_broken"
	WarDeclared    DecisionKind = "war_declared"
	ZoneConquered  DecisionKind = "zone_conquered"
	ZoneLiberated  DecisionKind = "zone_liberated"
	Humanitarian   DecisionKind = "humanitarian"
	Environmental  DecisionKind = "environmental"
	EconomicChoice DecisionKind = "economic"
)

// AxisEffects is a sparse delta across the six axes.
type AxisEffects struct {
	Militarism       float64 `json:"militarism,omitempty"`
	Reliability      float64 `json:"reliability,omitempty"`
	Diplomacy        float64 `json:"diplomacy,omitempty"`
	Environmentalism float64 `json:"environmentalism,omitempty"`
	HumanRights      float64 `json:"human_rights,omitempty"`
	EconomicFairness float64 `json:"economic_fairness,omitempty"`
}

// Decision is one history entry.
type Decision struct {
	Turn        int          `json:"turn"`
	Kind        DecisionKind `json:"kind"`
	Description string       `json:"description"`
	Effects     AxisEffects  `json:"effects"`
}

// Profile is the player's reputation side-car. All axes live in [0, 100].
type Profile struct {
	Militarism       float64 `json:"militarism"`
	Reliability      float64 `json:"reliability"`
	Diplomacy        float64 `json:"diplomacy"`
	Environmentalism float64 `json:"environmentalism"`
	HumanRights      float64 `json:"human_rights"`
	EconomicFairness float64 `json:"economic_fairness"`

	Overall float64 `json:"overall"`

	TreatiesHonored int `json:"treaties_honored"`
	TreatiesBroken  int `json:"treaties_broken"`
	WarsDeclared    int `json:"wars_declared"`
	ZonesConquered  int `json:"zones_conquered"`
	ZonesLiberated  int `json:"zones_liberated"`

	History []Decision `json:"history"`
}

// NewProfile starts every axis at a neutral 50.
func NewProfile() *Profile {
	p := &Profile{
		Militarism: 50, Reliability: 50, Diplomacy: 50,
		Environmentalism: 50, HumanRights: 50, EconomicFairness: 50,
	}
	p.recalculate()
	return p
}

// RecordDecision appends to history, applies the sparse axis deltas
// (clamped to [0, 100]), bumps the matching counter, and recalculates the
// overall score.
func (p *Profile) RecordDecision(d Decision) {
	p.History = append(p.History, d)

	p.Militarism = clampAxis(p.Militarism + d.Effects.Militarism)
	p.Reliability = clampAxis(p.Reliability + d.Effects.Reliability)
	p.Diplomacy = clampAxis(p.Diplomacy + d.Effects.Diplomacy)
	p.Environmentalism = clampAxis(p.Environmentalism + d.Effects.Environmentalism)
	p.HumanRights = clampAxis(p.HumanRights + d.Effects.HumanRights)
	p.EconomicFairness = clampAxis(p.EconomicFairness + d.Effects.EconomicFairness)

	switch d.Kind {
	case TreatyHonored:
		p.TreatiesHonored++
	case TreatyBroken:
		p.TreatiesBroken++
	case WarDeclared:
		p.WarsDeclared++
	case ZoneConquered:
		p.ZonesConquered++
	case ZoneLiberated:
		p.ZonesLiberated++
	}

	p.recalculate()
}

// recalculate derives the weighted overall score. Militarism counts
// inverted: restraint is reputable.
func (p *Profile) recalculate() {
	p.Overall = (100-p.Militarism)*0.10 +
		p.Reliability*0.25 +
		p.Diplomacy*0.20 +
		p.Environmentalism*0.15 +
		p.HumanRights*0.15 +
		p.EconomicFairness*0.15
}

// Modifiers are advisory linear adjustments consumed by diplomacy and AI
// code; they are never auto-applied by this package.
type Modifiers struct {
	TreatyAcceptBonus   float64 `json:"treaty_accept_bonus"`
	TensionReduction    float64 `json:"tension_reduction"`
	EconomicDealBonus   float64 `json:"economic_deal_bonus"`
	AllianceChanceBonus float64 `json:"alliance_chance_bonus"`
	AggressionPenalty   float64 `json:"aggression_penalty"`
}

// GetModifiers derives the five linear modifiers from the axes.
func (p *Profile) GetModifiers() Modifiers {
	return Modifiers{
		TreatyAcceptBonus:   (p.Reliability - 50) / 2.5,
		TensionReduction:    (p.Diplomacy - 50) / 10,
		EconomicDealBonus:   (p.EconomicFairness - 50) / 5,
		AllianceChanceBonus: (p.Overall - 50) / 4,
		AggressionPenalty:   (p.Militarism - 50) / 2,
	}
}

// treatyBaseChance by the pair's current tension level.
var treatyBaseChance = map[world.TensionLevel]float64{
	world.Cooperation:   80,
	world.Competition:   60,
	world.Confrontation: 35,
	world.Crisis:        15,
	world.Conflict:      5,
}

// WouldAcceptTreaty combines the tension-level base chance with reputation
// modifiers and treaty-break history into a probability clamped to [5, 95],
// then rolls it. Returns the roll result and the probability used.
func (p *Profile) WouldAcceptTreaty(level world.TensionLevel, rng *entropy.Source) (bool, float64) {
	chance := treatyBaseChance[level]
	chance += p.GetModifiers().TreatyAcceptBonus
	chance -= float64(p.TreatiesBroken) * 5
	if chance < 5 {
		chance = 5
	}
	if chance > 95 {
		chance = 95
	}
	return rng.Chance(chance), chance
}

func clampAxis(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
