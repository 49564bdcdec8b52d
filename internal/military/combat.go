package military

import (
	"fmt"
	"log/slog"

	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/world"
)

// Casualty records damage taken by one unit during a resolution.
// Zero-damage entries are omitted from outcomes.
type Casualty struct {
	UnitID    string  `json:"unit_id"`
	UnitType  world.UnitType `json:"unit_type"`
	Damage    float64 `json:"damage"`
	Destroyed bool    `json:"destroyed"`
}

// OperationOutcome is the full result of one combat resolution.
type OperationOutcome struct {
	Operation          OperationType `json:"operation"`
	Success            bool          `json:"success"`
	AttackerCasualties []Casualty    `json:"attacker_casualties"`
	DefenderCasualties []Casualty    `json:"defender_casualties"`
	TensionIncrease    float64       `json:"tension_increase"`
	WorldReaction      WorldReaction `json:"world_reaction"`
	ZoneCaptured       bool          `json:"zone_captured"`
	Narrative          string        `json:"narrative"`
}

// ResolveCombat adjudicates one operation between two unit groups in a zone.
// It mutates unit strength/status in place, transfers zone control on a
// successful invasion, raises tension between the two factions, and logs
// the engagement on the pair's incident record. The
// surprise hook and RNG are injected so resolutions replay under a seed.
func ResolveCombat(
	s *world.State,
	attackers, defenders []*world.MilitaryUnit,
	attacker, defender world.FactionID,
	zone *world.Zone,
	op OperationType,
	rng *entropy.Source,
	roll SurpriseRoll,
) OperationOutcome {
	spec := OpSpecFor(op)

	if roll == nil {
		roll = NoSurprise
	}
	atkSurprise := roll("attacker")
	defSurprise := roll("defender")

	atkPower := groupPower(attackers, true)
	defPower := groupPower(defenders, false)

	// Terrain favors the defender, hardest on sovereign territory.
	if zone != nil && zone.Type == world.ZoneTerritorial {
		defPower *= 1.5
	} else {
		defPower *= 1.2
	}

	if atkSurprise != nil {
		atkPower *= atkSurprise.Multiplier
		switch atkSurprise.Effect {
		case "self_damage":
			atkPower *= 0.7
		case "mutual_damage":
			defPower *= 0.8
		}
	}
	// Defender surprise applies as (2 - multiplier). A multiplier above 1
	// therefore reduces defender power; pinned by tests, do not "fix"
	// without a product decision.
	defInverse := 1.0
	if defSurprise != nil {
		defInverse = 2 - defSurprise.Multiplier
		defPower *= defInverse
		if defSurprise.Effect == "defender_boost" {
			defPower *= 1.3
		}
	}

	atkRoll := atkPower * rng.Uniform(0.8, 1.2)
	defRoll := defPower * rng.Uniform(0.8, 1.2)

	success := atkRoll > defRoll
	ratio := 1.0
	if atkRoll > 0 && defRoll > 0 {
		if success {
			ratio = atkRoll / defRoll
		} else {
			ratio = defRoll / atkRoll
		}
	}

	outcome := OperationOutcome{Operation: op, Success: success}

	// Attacker casualties: the loser bleeds harder.
	for _, u := range attackers {
		base := rng.Uniform(20, 60)
		if success {
			base = rng.Uniform(10, 30)
		}
		dmg := base / ratio
		if atkSurprise != nil {
			dmg *= atkSurprise.Multiplier
		}
		if dmg > u.Strength {
			dmg = u.Strength
		}
		if dmg <= 0 {
			continue
		}
		applyDamage(u, dmg)
		outcome.AttackerCasualties = append(outcome.AttackerCasualties, Casualty{
			UnitID: u.ID, UnitType: u.Type, Damage: dmg, Destroyed: u.Status == world.StatusDestroyed,
		})
	}

	// Defender casualties scale with the winner's margin on success only.
	for _, u := range defenders {
		base := rng.Uniform(10, 25)
		if success {
			base = rng.Uniform(20, 50) * ratio
		}
		dmg := base * defInverse
		if dmg > u.Strength {
			dmg = u.Strength
		}
		if dmg <= 0 {
			continue
		}
		applyDamage(u, dmg)
		outcome.DefenderCasualties = append(outcome.DefenderCasualties, Casualty{
			UnitID: u.ID, UnitType: u.Type, Damage: dmg, Destroyed: u.Status == world.StatusDestroyed,
		})
	}

	outcome.TensionIncrease = spec.BaseTension
	if len(outcome.AttackerCasualties) > 0 || len(outcome.DefenderCasualties) > 0 {
		outcome.TensionIncrease += 20
	}
	if op == OpInvasion && success {
		outcome.TensionIncrease += 30
	}

	outcome.WorldReaction = classifyReaction(op, outcome.TensionIncrease)

	if op == OpInvasion && zone != nil {
		if success {
			s.TransferZone(zone.ID, attacker)
			outcome.ZoneCaptured = true
			zone.ContestedBy = withoutFaction(zone.ContestedBy, attacker)
		} else {
			// A repulsed invasion leaves the attacker's claim on the zone live.
			zone.ContestedBy = withFaction(zone.ContestedBy, attacker)
		}
	}

	s.AdjustTension(attacker, defender, outcome.TensionIncrease)

	outcome.Narrative = buildNarrative(op, success, atkSurprise, defSurprise, zone)
	s.RecordIncident(attacker, defender, outcome.Narrative)

	slog.Debug("combat resolved",
		"operation", op,
		"attacker", attacker,
		"defender", defender,
		"success", success,
		"tension_increase", outcome.TensionIncrease,
		"reaction", outcome.WorldReaction,
	)
	return outcome
}

// groupPower sums effective unit power: stat scaled by strength, morale,
// and a modest veterancy bonus.
func groupPower(units []*world.MilitaryUnit, attacking bool) float64 {
	total := 0.0
	for _, u := range units {
		spec := SpecFor(u.Type)
		stat := spec.Defense
		if attacking {
			stat = spec.Attack
		}
		total += stat * (u.Strength / 100) * (u.Morale / 100) * (1 + u.Experience/200)
	}
	return total
}

// classifyReaction maps an operation and its total tension cost to a world
// reaction. Only overt aggression draws responses; a nuclear alert always
// triggers intervention.
func classifyReaction(op OperationType, tension float64) WorldReaction {
	if op == OpNuclearAlert {
		return ReactionIntervention
	}
	if op != OpStrike && op != OpInvasion {
		return ReactionIgnored
	}
	switch {
	case tension > 80:
		return ReactionSanctions
	case tension > 60:
		return ReactionCondemned
	default:
		return ReactionIgnored
	}
}

func withFaction(list []world.FactionID, f world.FactionID) []world.FactionID {
	for _, id := range list {
		if id == f {
			return list
		}
	}
	return append(list, f)
}

func withoutFaction(list []world.FactionID, f world.FactionID) []world.FactionID {
	out := list[:0]
	for _, id := range list {
		if id != f {
			out = append(out, id)
		}
	}
	return out
}

func buildNarrative(op OperationType, success bool, atk, def *Surprise, zone *world.Zone) string {
	where := "the high Arctic"
	if zone != nil {
		where = zone.Name
	}
	verb := "failed"
	if success {
		verb = "succeeded"
	}
	// Attacker's surprise takes narrative precedence when both sides roll one.
	switch {
	case atk != nil:
		return fmt.Sprintf("%s in %s %s: %s", OpSpecFor(op).Name, where, verb, atk.Name)
	case def != nil:
		return fmt.Sprintf("%s in %s %s: %s", OpSpecFor(op).Name, where, verb, def.Name)
	default:
		return fmt.Sprintf("%s in %s %s", OpSpecFor(op).Name, where, verb)
	}
}
