package economy

import (
	"log/slog"

	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

// sanctionOutputFloor is the hard floor on economic output after sanction
// penalties; no faction is starved below it by sanctions alone.
const sanctionOutputFloor = 10

// majorOilProducers raise the oil multiplier when sanctioned.
var majorOilProducers = map[world.FactionID]bool{
	world.FactionRussia: true,
	world.FactionUSA:    true,
	world.FactionNorway: true,
}

// ApplyEffects runs the once-per-turn economic pass, in a fixed order:
// active deals, sanction penalties, supply-chain disruption, market price
// update, then market-adjusted zone income. iceExtent is the current
// normalized ice extent from the world ice model.
func ApplyEffects(s *world.State, econ *State, ice *world.IceModel, rng *entropy.Source) {
	applyDeals(s, econ)
	applySanctions(s, econ)
	applySupplyChains(s, econ)
	updateMarketPrices(s, econ, ice, rng)
	applyZoneIncome(s, econ, ice)
}

func applyDeals(s *world.State, econ *State) {
	for _, d := range econ.Deals {
		if !d.Active {
			continue
		}
		for fid, gain := range d.Gains {
			if f := s.FactionByID(fid); f != nil {
				f.Resources.EconomicOutput += gain.Economic
				f.Resources.Influence += gain.Influence
			}
		}
		if d.TensionReduction > 0 {
			s.AdjustTension(d.Proposer, d.Partner, -d.TensionReduction)
		}
		if d.TurnsLeft > 0 {
			d.TurnsLeft--
			if d.TurnsLeft == 0 {
				d.Active = false
				s.Notify("economy", "Deal expired", "A %s between %s and %s has run its course", d.Type, d.Proposer, d.Partner)
			}
		}
	}
}

func applySanctions(s *world.State, econ *State) {
	for _, sn := range econ.Sanctions {
		if !sn.Active {
			continue
		}
		tgt := s.FactionByID(sn.Target)
		if tgt == nil {
			continue
		}
		hit := tgt.Resources.EconomicOutput * sn.EconomicPenalty / 100
		tgt.Resources.EconomicOutput -= hit
		if tgt.Resources.EconomicOutput < sanctionOutputFloor {
			tgt.Resources.EconomicOutput = sanctionOutputFloor
		}
		tgt.Resources.Influence -= sn.InfluencePenalty
		if tgt.Resources.Influence < 0 {
			tgt.Resources.Influence = 0
		}
		tgt.Resources.Legitimacy -= sn.LegitimacyPenalty
		world.ClampFactionBounds(tgt)

		// Unpopular sanctions cost the imposers standing too.
		if sn.WorldReaction == ReactionOpposed {
			for _, impID := range sn.Imposers {
				if imp := s.FactionByID(impID); imp != nil {
					imp.Resources.Legitimacy -= 2
					world.ClampFactionBounds(imp)
				}
			}
		}
	}
}

func applySupplyChains(s *world.State, econ *State) {
	for _, sc := range econ.SupplyChains {
		f := s.FactionByID(sc.Faction)
		if f == nil {
			continue
		}
		disrupted := false
		if rel := s.RelationBetween(sc.Faction, sc.DependsOn); rel != nil && rel.Level >= world.Crisis {
			disrupted = true
		}
		if sn := econ.ActiveSanctionBetween(sc.Faction, sc.DependsOn); sn != nil && sn.BansTrade {
			disrupted = true
		}
		sc.Disrupted = disrupted
		if !disrupted {
			continue
		}
		penalty := sc.EconomicImpact / 100 * sc.Vulnerability / 100 * f.Resources.EconomicOutput
		f.Resources.EconomicOutput -= penalty
		if f.Resources.EconomicOutput < 0 {
			f.Resources.EconomicOutput = 0
		}
		slog.Debug("supply chain disrupted",
			"faction", sc.Faction, "type", sc.Type, "depends_on", sc.DependsOn,
			"penalty", penalty,
		)
	}
}

func updateMarketPrices(s *world.State, econ *State, ice *world.IceModel, rng *entropy.Source) {
	hotPairs := s.CountRelationsAtLeast(world.Crisis)
	conflicts := s.CountRelationsAtLeast(world.Conflict)

	sanctionedProducers := 0
	chinaSanctioned := false
	for _, sn := range econ.Sanctions {
		if !sn.Active {
			continue
		}
		if majorOilProducers[sn.Target] {
			sanctionedProducers++
		}
		if sn.Target == world.FactionChina {
			chinaSanctioned = true
		}
	}

	oil := 1 + 0.12*float64(hotPairs) + 0.2*float64(sanctionedProducers)
	gas := oil * rng.Uniform(0.9, 1.1)
	minerals := 1 + 0.05*float64(hotPairs)
	if chinaSanctioned {
		minerals += 0.5
	}
	extent := ice.Extent(s.Year, s.Season)
	shipping := 1 + (extent-0.5)*0.6 + 0.15*float64(conflicts)

	econ.Prices = MarketPrices{
		Oil:      clampPrice(oil),
		Gas:      clampPrice(gas),
		Minerals: clampPrice(minerals),
		Shipping: clampPrice(shipping),
	}
}

// Prices stay within a floor and ceiling so a runaway turn can't zero out or
// explode the income pass.
func clampPrice(p float64) float64 {
	if p < 0.5 {
		return 0.5
	}
	if p > 3 {
		return 3
	}
	return p
}

// incomeScale converts richness-times-price into per-turn output.
const incomeScale = 0.25

func applyZoneIncome(s *world.State, econ *State, ice *world.IceModel) {
	for _, id := range world.ZoneIDs() {
		z := s.ZoneByID(id)
		if z == nil || z.Controller == "" {
			continue
		}
		f := s.FactionByID(z.Controller)
		if f == nil {
			continue
		}
		gross := z.Resources.Oil*econ.Prices.Oil +
			z.Resources.Gas*econ.Prices.Gas +
			z.Resources.Minerals*econ.Prices.Minerals +
			z.Resources.Fish +
			z.Resources.Shipping*econ.Prices.Shipping
		income := gross * incomeScale * ice.Navigable(z, s.Year, s.Season)
		f.Resources.EconomicOutput += income
	}
}
