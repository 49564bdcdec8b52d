package economy

import (
	"log/slog"

	"github.com/talgya/frostline/internal/world"
)

// ImposeSanction validates and constructs a sanction by imposer against
// target, classifying the world reaction from the pair's standing. Fully
// rejects before any mutation.
func ImposeSanction(s *world.State, econ *State, sanctionType SanctionType, imposer, target world.FactionID) Result {
	tpl, known := sanctionTemplates[sanctionType]
	if !known {
		return reject("Unknown sanction type %q", sanctionType)
	}
	imp := s.FactionByID(imposer)
	tgt := s.FactionByID(target)
	if imp == nil || tgt == nil || imposer == target {
		return reject("Invalid parties")
	}
	if imp.Resources.Legitimacy < tpl.LegitimacyRequired {
		return reject("Requires %.0f legitimacy", tpl.LegitimacyRequired)
	}
	if imp.Resources.Influence < tpl.InfluenceCost {
		return reject("Requires %.0f influence points", tpl.InfluenceCost)
	}

	// Joining an existing sanction of the same type instead of stacking.
	for _, sn := range econ.Sanctions {
		if sn.Active && sn.Type == sanctionType && sn.Target == target {
			if sn.ImposedBy(imposer) {
				return reject("Already imposing this sanction")
			}
			imp.Resources.Influence -= tpl.InfluenceCost
			sn.Imposers = append(sn.Imposers, imposer)
			return ok()
		}
	}

	imp.Resources.Influence -= tpl.InfluenceCost

	sn := &Sanction{
		ID:                econ.newID("sanction"),
		Type:              sanctionType,
		Imposers:          []world.FactionID{imposer},
		Target:            target,
		EconomicPenalty:   tpl.EconomicPenalty,
		InfluencePenalty:  tpl.InfluencePenalty,
		LegitimacyPenalty: tpl.LegitimacyPenalty,
		BansTrade:         tpl.BansTrade,
		WorldReaction:     classifySanctionReaction(s, imposer, target),
		Active:            true,
	}
	econ.Sanctions = append(econ.Sanctions, sn)
	s.Notify("economy", "Sanctions imposed", "%s sanctions %s (%s)", imp.Name, tgt.Name, tpl.Name)
	slog.Info("sanction imposed", "type", sanctionType, "imposer", imposer, "target", target, "reaction", sn.WorldReaction)
	return ok()
}

// LiftSanction deactivates a sanction.
func LiftSanction(econ *State, id string) Result {
	for _, sn := range econ.Sanctions {
		if sn.ID == id && sn.Active {
			sn.Active = false
			return ok()
		}
	}
	return reject("No active sanction %q", id)
}

// classifySanctionReaction: sanctioning an open adversary reads as
// justified; sanctioning a partner draws opposition.
func classifySanctionReaction(s *world.State, imposer, target world.FactionID) WorldReaction {
	rel := s.RelationBetween(imposer, target)
	if rel == nil {
		return ReactionMixed
	}
	switch {
	case rel.Level >= world.Crisis:
		return ReactionSupported
	case rel.Level == world.Confrontation:
		return ReactionMixed
	default:
		return ReactionOpposed
	}
}
