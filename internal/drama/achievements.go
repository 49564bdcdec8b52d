package drama

import (
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// Achievement pairs a derived-state predicate with a one-time reward. The
// checker and the victory evaluator share the same world queries, so the
// two never drift on what "controls half the Arctic" means.
type Achievement struct {
	ID     string
	Name   string
	Reward world.Resources
	Check  func(s *world.State, player world.FactionID) bool
}

var achievementCatalog = []Achievement{
	{
		ID: "first_foothold", Name: "First Foothold",
		Reward: world.Resources{Influence: 10},
		Check: func(s *world.State, p world.FactionID) bool {
			f := s.FactionByID(p)
			return f != nil && len(f.Zones) >= 3
		},
	},
	{
		ID: "arctic_power", Name: "Arctic Power",
		Reward: world.Resources{Influence: 15, Legitimacy: 3},
		Check: func(s *world.State, p world.FactionID) bool {
			return s.ControlledZoneFraction(p) >= 0.25
		},
	},
	{
		ID: "polar_hegemon", Name: "Polar Hegemon",
		Reward: world.Resources{Influence: 25},
		Check: func(s *world.State, p world.FactionID) bool {
			return s.ControlledZoneFraction(p) >= 0.5
		},
	},
	{
		ID: "peacemaker", Name: "Peacemaker",
		Reward: world.Resources{Legitimacy: 8},
		Check: func(s *world.State, p world.FactionID) bool {
			return s.AllRelationsAtOrBelow(p, world.Competition)
		},
	},
	{
		ID: "cold_peace", Name: "Cold Peace",
		Reward: world.Resources{Influence: 20, Legitimacy: 5},
		Check: func(s *world.State, p world.FactionID) bool {
			return s.AllRelationsAtOrBelow(p, world.Cooperation)
		},
	},
	{
		ID: "industrial_titan", Name: "Industrial Titan",
		Reward: world.Resources{EconomicOutput: 20},
		Check: func(s *world.State, p world.FactionID) bool {
			f := s.FactionByID(p)
			return f != nil && f.Resources.EconomicOutput >= 200
		},
	},
	{
		ID: "fleet_admiral", Name: "Fleet Admiral",
		Reward: world.Resources{MilitaryReadiness: 10},
		Check: func(s *world.State, p world.FactionID) bool {
			return s.TotalMilitaryStrength(p) >= 500
		},
	},
	{
		ID: "chokepoint_master", Name: "Master of the Straits",
		Reward: world.Resources{EconomicOutput: 15, Influence: 10},
		Check: func(s *world.State, p world.FactionID) bool {
			f := s.FactionByID(p)
			if f == nil {
				return false
			}
			n := 0
			for _, zid := range f.Zones {
				if z := s.ZoneByID(zid); z != nil && z.Type == world.ZoneChokepoint {
					n++
				}
			}
			return n >= 2
		},
	},
	{
		ID: "respected_voice", Name: "Respected Voice",
		Reward: world.Resources{Influence: 15},
		Check: func(s *world.State, p world.FactionID) bool {
			f := s.FactionByID(p)
			return f != nil && f.Resources.Legitimacy >= 90
		},
	},
	// Unlocked only through crisis outcomes; never by the turn checker.
	{
		ID: "arctic_samaritan", Name: "Arctic Samaritan",
		Reward: world.Resources{Legitimacy: 5},
		Check:  nil,
	},
}

// AchievementByID returns the catalog entry or nil.
func AchievementByID(id string) *Achievement {
	for i := range achievementCatalog {
		if achievementCatalog[i].ID == id {
			return &achievementCatalog[i]
		}
	}
	return nil
}

// Unlock marks an achievement unlocked and applies its reward to the
// player. Idempotent: a second call with the same id is a no-op.
func Unlock(s *world.State, d *State, id string) {
	if d.Unlocked[id] {
		return
	}
	a := AchievementByID(id)
	if a == nil {
		return
	}
	d.Unlocked[id] = true
	if f := s.FactionByID(s.Player); f != nil {
		f.Resources.Influence += a.Reward.Influence
		f.Resources.EconomicOutput += a.Reward.EconomicOutput
		f.Resources.MilitaryReadiness += a.Reward.MilitaryReadiness
		f.Resources.Legitimacy += a.Reward.Legitimacy
		world.ClampFactionBounds(f)
	}
	s.Notify("achievement", "Achievement unlocked", "%s", a.Name)
	slog.Info("achievement unlocked", "achievement", id, "turn", s.Turn)
}

// CheckAchievements evaluates every predicate-bearing achievement for the
// player and unlocks the ones that newly hold.
func CheckAchievements(s *world.State, d *State) {
	for i := range achievementCatalog {
		a := &achievementCatalog[i]
		if a.Check == nil || d.Unlocked[a.ID] {
			continue
		}
		if a.Check(s, s.Player) {
			Unlock(s, d, a.ID)
		}
	}
}
