package engine

import (
	"github.com/talgya/frostline/internal/world"
)

// worldEventChancePct is the per-turn probability of one random global
// event, independent of the scripted ones.
const worldEventChancePct = 15

// scriptedEvents fire once, in the winter turn of their year.
var scriptedEvents = map[int]func(g *Game){
	2035: func(g *Game) {
		// Arctic treaty conference cools every pair a notch.
		s := g.World
		for _, r := range s.Relations {
			s.AdjustTension(r.A, r.B, -8)
		}
		s.Notify("world", "Arctic Treaty Conference",
			"A UN-sponsored conference in Reykjavik eases tensions across the region")
	},
	2040: func(g *Game) {
		// Accelerated melt opens every lane a month earlier.
		s := g.World
		for _, z := range s.Zones {
			if z.IceMonths > 2 {
				z.IceMonths--
			}
		}
		s.Notify("world", "Melt acceleration",
			"Satellite data confirms the ice pack is retreating decades ahead of projections")
	},
	2045: func(g *Game) {
		// Late-game resource squeeze rewards whoever holds extraction zones.
		s := g.World
		for _, f := range s.Factions {
			for _, zid := range f.Zones {
				if z := s.ZoneByID(zid); z != nil && z.Resources.Oil+z.Resources.Gas >= 10 {
					f.Resources.EconomicOutput += 5
				}
			}
		}
		s.Notify("world", "Global energy squeeze",
			"Conventional fields are declining worldwide; Arctic reserves surge in value")
	},
}

// applyWorldEvents runs the scripted event for the year (winter turns only)
// and rolls one random global event.
func applyWorldEvents(g *Game) {
	s := g.World
	if s.Season == world.SeasonWinter {
		if ev, ok := scriptedEvents[s.Year]; ok {
			ev(g)
		}
	}
	if !g.RNG.Chance(worldEventChancePct) {
		return
	}

	switch g.RNG.Intn(4) {
	case 0:
		// Demand surge pays the big producers.
		for _, fid := range []world.FactionID{world.FactionRussia, world.FactionUSA, world.FactionNorway} {
			if f := s.FactionByID(fid); f != nil {
				f.Resources.EconomicOutput += 6
			}
		}
		s.Notify("world", "Energy demand surge", "Cold snaps across three continents spike hydrocarbon demand")
	case 1:
		// A thaw between a random non-player pair.
		pair := s.Relations[g.RNG.Intn(len(s.Relations))]
		s.AdjustTension(pair.A, pair.B, -10)
		s.Notify("world", "Diplomatic thaw", "Back-channel talks between %s and %s bear fruit", pair.A, pair.B)
	case 2:
		// Shipping insurance shock.
		pair := s.Relations[g.RNG.Intn(len(s.Relations))]
		s.AdjustTension(pair.A, pair.B, 8)
		s.Notify("world", "Incident at sea", "A near-collision between %s and %s vessels raises insurance rates", pair.A, pair.B)
	default:
		// Science windfall for the player.
		if f := s.FactionByID(s.Player); f != nil {
			f.Resources.Influence += 8
		}
		s.Notify("world", "Research breakthrough", "Your polar institutes publish landmark findings, raising your standing")
	}
}
