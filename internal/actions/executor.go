package actions

import (
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// militaryPresenceGain is added to the actor's presence in the target zone
// by military-category actions.
const militaryPresenceGain = 5

// Available filters the catalog to actions the actor can currently afford
// and qualifies for. Pure view, no mutation.
func Available(s *world.State, actor world.FactionID) []Action {
	f := s.FactionByID(actor)
	if f == nil {
		return nil
	}
	var out []Action
	for _, a := range Catalog {
		if f.Resources.Influence < a.Cost.Influence {
			continue
		}
		if f.Resources.EconomicOutput < a.Cost.EconomicOutput {
			continue
		}
		if f.Resources.Legitimacy < a.Requirements.MinLegitimacy {
			continue
		}
		if a.Requirements.ControlsAnyZone && len(f.Zones) == 0 {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Execute applies an action for the actor. Cost is deducted unconditionally:
// affordability must have been established through Available beforehand, and
// Execute does not re-validate it. Legitimacy and readiness clamp to
// [0, 100]; influence and economic output are not clamped here. The tension
// delta applies only when a target faction is given. Military actions with a
// target zone raise the actor's presence there. Unknown actor ids no-op.
func Execute(s *world.State, action *Action, actor, targetFaction world.FactionID, targetZone world.ZoneID) {
	f := s.FactionByID(actor)
	if f == nil || action == nil {
		return
	}

	f.Resources.Influence -= action.Cost.Influence
	f.Resources.EconomicOutput -= action.Cost.EconomicOutput

	f.Resources.Influence += action.Effects.Influence
	f.Resources.EconomicOutput += action.Effects.EconomicOutput
	f.Resources.Legitimacy += action.Effects.Legitimacy
	f.Resources.MilitaryReadiness += action.Effects.MilitaryReadiness
	world.ClampFactionBounds(f)

	if targetFaction != "" && action.Effects.TensionDelta != 0 {
		s.AdjustTension(actor, targetFaction, action.Effects.TensionDelta)
	}

	if action.Category == Military && targetZone != "" {
		if z := s.ZoneByID(targetZone); z != nil {
			z.MilitaryPresence[actor] += militaryPresenceGain
		}
	}

	slog.Debug("action executed",
		"actor", actor,
		"action", action.ID,
		"target_faction", targetFaction,
		"target_zone", targetZone,
	)
}
