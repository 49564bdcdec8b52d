package drama

import (
	"log/slog"

	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

const (
	discoveryChancePct   = 8
	environmentChancePct = 10
)

// Discovery records a resource find in a zone. The zone's richness is
// already updated when this is pending; the struct exists for the UI.
type Discovery struct {
	Zone     world.ZoneID `json:"zone"`
	Resource string       `json:"resource"`
	Amount   float64      `json:"amount"`
}

// EnvironmentalEvent records an environmental shock that already applied.
type EnvironmentalEvent struct {
	Kind string       `json:"kind"`
	Zone world.ZoneID `json:"zone,omitempty"`
}

// CheckResourceDiscovery rolls the per-turn discovery check. A hit picks a
// random zone and permanently raises one of its extractive resources.
func CheckResourceDiscovery(s *world.State, d *State, rng *entropy.Source) {
	d.PendingDiscovery = nil
	if !rng.Chance(discoveryChancePct) {
		return
	}
	ids := world.ZoneIDs()
	z := s.ZoneByID(ids[rng.Intn(len(ids))])
	if z == nil {
		return
	}
	amount := rng.Uniform(1, 4)
	var resource string
	switch rng.Intn(3) {
	case 0:
		z.Resources.Oil += amount
		resource = "oil"
	case 1:
		z.Resources.Gas += amount
		resource = "gas"
	default:
		z.Resources.Minerals += amount
		resource = "minerals"
	}
	d.PendingDiscovery = &Discovery{Zone: z.ID, Resource: resource, Amount: amount}
	s.Notify("discovery", "Resource survey breakthrough",
		"Major %s deposits confirmed in %s", resource, z.Name)
	slog.Info("resource discovery", "zone", z.ID, "resource", resource, "amount", amount)
}

// CheckEnvironmentalEvent rolls the per-turn environmental check. Events
// apply immediately; the pending record is informational.
func CheckEnvironmentalEvent(s *world.State, d *State, rng *entropy.Source) {
	d.PendingEnvironment = nil
	if !rng.Chance(environmentChancePct) {
		return
	}
	ids := world.ZoneIDs()
	z := s.ZoneByID(ids[rng.Intn(len(ids))])
	if z == nil {
		return
	}

	switch rng.Intn(3) {
	case 0:
		// Ice shelf collapse opens the lane year-round.
		if z.IceMonths > 0 {
			z.IceMonths--
		}
		z.Resources.Shipping += 0.5
		d.PendingEnvironment = &EnvironmentalEvent{Kind: "ice_shelf_collapse", Zone: z.ID}
		s.Notify("environment", "Ice shelf collapse",
			"A major ice shelf has collapsed near %s, opening new shipping lanes", z.Name)
	case 1:
		// Spill lands on whoever controls the zone.
		d.PendingEnvironment = &EnvironmentalEvent{Kind: "oil_spill", Zone: z.ID}
		if f := s.FactionByID(z.Controller); f != nil {
			f.Resources.Legitimacy -= 6
			f.Resources.EconomicOutput -= 4
			world.ClampFactionBounds(f)
			s.Notify("environment", "Arctic oil spill",
				"A drilling accident in %s has spilled crude under the ice; %s faces international outrage", z.Name, f.Name)
		} else {
			s.Notify("environment", "Arctic oil spill",
				"A passing tanker has spilled crude in %s", z.Name)
		}
	default:
		// Polar storm batters deployed units in the zone.
		d.PendingEnvironment = &EnvironmentalEvent{Kind: "polar_storm", Zone: z.ID}
		for _, u := range s.Units {
			if u.Zone == z.ID && u.Status != world.StatusDestroyed {
				u.Strength -= rng.Uniform(5, 15)
				switch {
				case u.Strength <= 0:
					u.Strength = 0
					u.Status = world.StatusDestroyed
				case u.Strength < 50:
					u.Status = world.StatusDamaged
				}
			}
		}
		s.Notify("environment", "Polar storm",
			"A severe polar storm has battered forces deployed in %s", z.Name)
	}
	slog.Info("environmental event", "kind", d.PendingEnvironment.Kind, "zone", z.ID)
}
