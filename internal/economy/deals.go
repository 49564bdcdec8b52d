package economy

import (
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// CreateTradeDeal validates and constructs a deal between proposer and
// partner. Fully rejects before any mutation: on a false Result the economic
// state and both factions are untouched.
func CreateTradeDeal(s *world.State, econ *State, dealType DealType, proposer, partner world.FactionID) Result {
	tpl, known := dealTemplates[dealType]
	if !known {
		return reject("Unknown deal type %q", dealType)
	}
	pf := s.FactionByID(proposer)
	tf := s.FactionByID(partner)
	if pf == nil || tf == nil || proposer == partner {
		return reject("Invalid parties")
	}
	if pf.Resources.Legitimacy < tpl.LegitimacyRequired {
		return reject("Requires %.0f legitimacy", tpl.LegitimacyRequired)
	}
	if pf.Resources.Influence < tpl.InfluenceCost {
		return reject("Requires %.0f influence points", tpl.InfluenceCost)
	}
	rel := s.RelationBetween(proposer, partner)
	if rel == nil {
		return reject("No relation between parties")
	}
	switch tpl.Policy {
	case PolicyCooperationOnly:
		if rel.Level > world.Cooperation {
			return reject("Requires cooperation-level relations")
		}
	case PolicyCompetitionOrBetter:
		if rel.Level > world.Competition {
			return reject("Relations too hostile for %s", tpl.Name)
		}
	}
	if econ.ActiveSanctionBetween(proposer, partner) != nil {
		return reject("Active sanctions block new deals")
	}

	pf.Resources.Influence -= tpl.InfluenceCost

	gains := map[world.FactionID]Gain{
		proposer: tpl.ProposerGain,
		partner:  tpl.PartnerGain,
	}
	// Energy contracts route the larger economic share to the exporter.
	if dealType == DealEnergyContract && energyExporters[proposer] && !energyExporters[partner] {
		gains[proposer], gains[partner] = tpl.PartnerGain, tpl.ProposerGain
	}

	turns := tpl.Duration
	if turns == 0 {
		turns = -1
	}
	deal := &TradeDeal{
		ID:               econ.newID("deal"),
		Type:             dealType,
		Proposer:         proposer,
		Partner:          partner,
		Gains:            gains,
		TensionReduction: tpl.TensionReduction,
		TurnsLeft:        turns,
		Active:           true,
	}
	econ.Deals = append(econ.Deals, deal)
	s.AddTreaty(proposer, partner, tpl.Name)
	s.Notify("economy", "Deal signed", "%s between %s and %s", tpl.Name, pf.Name, tf.Name)
	slog.Info("trade deal created", "type", dealType, "proposer", proposer, "partner", partner)
	return ok()
}

// CancelTradeDeal deactivates a deal. Unknown or inactive ids no-op with a
// rejection rather than an error.
func CancelTradeDeal(econ *State, id string) Result {
	for _, d := range econ.Deals {
		if d.ID == id && d.Active {
			d.Active = false
			return ok()
		}
	}
	return reject("No active deal %q", id)
}
