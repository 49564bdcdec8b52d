package drama

import (
	"log/slog"

	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

// crisisChancePct is the per-turn generation probability while no crisis is
// active.
const crisisChancePct = 12

// Consequences is one outcome bundle: tension deltas against named
// factions (applied between that faction and the player), resource deltas
// applied to the player, and an optional achievement unlock.
type Consequences struct {
	Tension     map[world.FactionID]float64 `json:"tension,omitempty"`
	Resources   world.Resources             `json:"resources,omitempty"`
	Achievement string                      `json:"achievement,omitempty"`
}

// CrisisChoice is one way out of a crisis. SuccessChance 0 means the choice
// always succeeds. Success and Failure are distinct bundles.
type CrisisChoice struct {
	ID            string       `json:"id"`
	Label         string       `json:"label"`
	SuccessChance float64      `json:"success_chance,omitempty"`
	Success       Consequences `json:"success"`
	Failure       Consequences `json:"failure"`
}

// Crisis is an active incident awaiting a player decision.
type Crisis struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Choices     []CrisisChoice `json:"choices"`
}

// crisisCatalog is the static template pool. Faction ids named in tension
// maps are resolved against the player at apply time; a template targeting
// the player's own faction is skipped at generation.
var crisisCatalog = []Crisis{
	{
		ID:    "submarine_collision",
		Title: "Submarine Collision Under the Ice",
		Description: "One of your attack submarines has collided with a Russian boat beneath the polar cap. " +
			"Both crews survived. Moscow demands an explanation.",
		Choices: []CrisisChoice{
			{
				ID: "apologize", Label: "Issue a formal apology and share transit data",
				Success: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: -15},
					Resources: world.Resources{Legitimacy: 3},
				},
			},
			{
				ID: "deny", Label: "Deny any submarine was in the area", SuccessChance: 50,
				Success: Consequences{Resources: world.Resources{Influence: 5}},
				Failure: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: 25},
					Resources: world.Resources{Legitimacy: -8},
				},
			},
			{
				ID: "blame", Label: "Blame reckless Russian seamanship", SuccessChance: 30,
				Success: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: 10},
					Resources: world.Resources{Influence: 10},
				},
				Failure: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: 35},
					Resources: world.Resources{Legitimacy: -5},
				},
			},
		},
	},
	{
		ID:    "stranded_research_station",
		Title: "Stranded Research Station",
		Description: "A multinational research station on the drifting pack has lost power. " +
			"Forty scientists from six nations need evacuation before the next storm front.",
		Choices: []CrisisChoice{
			{
				ID: "full_rescue", Label: "Divert icebreakers for a full rescue", SuccessChance: 75,
				Success: Consequences{
					Resources:   world.Resources{Legitimacy: 8, Influence: 10},
					Achievement: "arctic_samaritan",
				},
				Failure: Consequences{Resources: world.Resources{Legitimacy: -4, EconomicOutput: -5}},
			},
			{
				ID: "coordinate", Label: "Coordinate a joint international effort",
				Success: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: -8, world.FactionChina: -8},
					Resources: world.Resources{Legitimacy: 4},
				},
			},
			{
				ID: "decline", Label: "Decline; your fleet has other priorities",
				Success: Consequences{Resources: world.Resources{Legitimacy: -10}},
			},
		},
	},
	{
		ID:    "disputed_seabed_claim",
		Title: "Disputed Seabed Claim",
		Description: "A rival survey vessel has planted a flag on seabed your geologists mapped last year. " +
			"The UN commission wants filings within the week.",
		Choices: []CrisisChoice{
			{
				ID: "legal_filing", Label: "File a meticulous legal claim", SuccessChance: 65,
				Success: Consequences{Resources: world.Resources{Legitimacy: 5, Influence: 8}},
				Failure: Consequences{Resources: world.Resources{Influence: -5}},
			},
			{
				ID: "naval_presence", Label: "Park a surface fleet over the site",
				Success: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: 12, world.FactionChina: 12},
					Resources: world.Resources{MilitaryReadiness: 5, Legitimacy: -3},
				},
			},
		},
	},
	{
		ID:    "icebreaker_hostage",
		Title: "Detained Icebreaker Crew",
		Description: "A foreign coast guard has detained one of your icebreakers for alleged EEZ violations. " +
			"The crew is being held pending 'investigation'.",
		Choices: []CrisisChoice{
			{
				ID: "negotiate", Label: "Negotiate quietly through back channels", SuccessChance: 70,
				Success: Consequences{Resources: world.Resources{Legitimacy: 2}},
				Failure: Consequences{Resources: world.Resources{Influence: -8, Legitimacy: -3}},
			},
			{
				ID: "ultimatum", Label: "Issue a 48-hour ultimatum", SuccessChance: 45,
				Success: Consequences{Resources: world.Resources{Influence: 12, MilitaryReadiness: 5}},
				Failure: Consequences{
					Tension:   map[world.FactionID]float64{world.FactionRussia: 20},
					Resources: world.Resources{Legitimacy: -6},
				},
			},
		},
	},
}

// GenerateCrisis rolls the per-turn crisis check. Skipped entirely while a
// crisis is already active.
func GenerateCrisis(s *world.State, d *State, rng *entropy.Source) {
	if d.ActiveCrisis != nil {
		return
	}
	if !rng.Chance(crisisChancePct) {
		return
	}
	c := crisisCatalog[rng.Intn(len(crisisCatalog))]
	d.ActiveCrisis = &c
	s.Notify("crisis", c.Title, "%s", c.Description)
	slog.Info("crisis generated", "crisis", c.ID, "turn", s.Turn)
}

// ResolveCrisisChoice rolls the chosen choice's success chance (100% when
// unspecified) and applies the matching bundle via ApplyCrisisChoice.
// Reports whether the choice succeeded; false when no crisis is active or
// the choice id is unknown.
func ResolveCrisisChoice(s *world.State, d *State, choiceID string, rng *entropy.Source) bool {
	c := d.ActiveCrisis
	if c == nil {
		return false
	}
	choice := c.choiceByID(choiceID)
	if choice == nil {
		return false
	}
	success := choice.SuccessChance == 0 || rng.Chance(choice.SuccessChance)
	ApplyCrisisChoice(s, d, choiceID, success)
	return success
}

// ApplyCrisisChoice applies the success or failure bundle of the named
// choice and clears the active crisis unconditionally, even for unknown
// choice ids.
func ApplyCrisisChoice(s *world.State, d *State, choiceID string, success bool) {
	c := d.ActiveCrisis
	if c == nil {
		return
	}
	d.ActiveCrisis = nil

	choice := c.choiceByID(choiceID)
	if choice == nil {
		return
	}
	bundle := choice.Failure
	if success {
		bundle = choice.Success
	}
	applyConsequences(s, d, bundle)
	slog.Info("crisis resolved", "crisis", c.ID, "choice", choiceID, "success", success)
}

func (c *Crisis) choiceByID(id string) *CrisisChoice {
	for i := range c.Choices {
		if c.Choices[i].ID == id {
			return &c.Choices[i]
		}
	}
	return nil
}

func applyConsequences(s *world.State, d *State, cq Consequences) {
	for fid, delta := range cq.Tension {
		if fid == s.Player {
			continue
		}
		s.AdjustTension(s.Player, fid, delta)
	}
	if p := s.FactionByID(s.Player); p != nil {
		p.Resources.Influence += cq.Resources.Influence
		p.Resources.EconomicOutput += cq.Resources.EconomicOutput
		p.Resources.Icebreakers += cq.Resources.Icebreakers
		p.Resources.MilitaryReadiness += cq.Resources.MilitaryReadiness
		p.Resources.Legitimacy += cq.Resources.Legitimacy
		world.ClampFactionBounds(p)
	}
	if cq.Achievement != "" {
		Unlock(s, d, cq.Achievement)
	}
}
