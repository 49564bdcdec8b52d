package ai

import (
	"log/slog"

	"github.com/talgya/frostline/internal/actions"
	"github.com/talgya/frostline/internal/entropy"
	"github.com/talgya/frostline/internal/military"
	"github.com/talgya/frostline/internal/world"
)

// Decision categories, in the order a faction produces them. At most one
// decision per category per turn.
const (
	CategoryThreatResponse = "threat_response"
	CategoryOpportunity    = "opportunity"
	CategoryBuild          = "build"
	CategoryExpansion      = "expansion"
	CategoryDiplomacy      = "diplomacy"
)

// maxExecutedPerTurn caps how many of a faction's candidate decisions
// actually run each turn.
const maxExecutedPerTurn = 2

// Decision is one executable candidate. Exactly one of Attack, BuildUnit,
// Claim, or Action drives execution.
type Decision struct {
	Faction       world.FactionID
	Category      string
	Priority      float64
	Action        actions.ActionID
	TargetFaction world.FactionID
	TargetZone    world.ZoneID
	BuildUnit     world.UnitType
	Attack        bool
	Claim         bool
}

// DecideTurn runs one faction's full assessment cycle and returns up to
// five candidate decisions in priority order (threat response first).
func DecideTurn(s *world.State, fid world.FactionID) []Decision {
	p := ProfileFor(fid)
	f := s.FactionByID(fid)
	if f == nil {
		return nil
	}

	threats := AssessThreats(s, p)
	opps := AssessOpportunities(s, p)

	var out []Decision
	if d := respondToThreat(s, p, threats); d != nil {
		out = append(out, *d)
	}
	if d := pursueOpportunity(p, opps); d != nil {
		out = append(out, *d)
	}
	if d := planBuild(p, opps); d != nil {
		out = append(out, *d)
	}
	if d := planExpansion(p, opps); d != nil {
		out = append(out, *d)
	}
	if d := planDiplomacy(s, p); d != nil {
		out = append(out, *d)
	}
	return out
}

func respondToThreat(s *world.State, p Profile, threats []Threat) *Decision {
	if len(threats) == 0 {
		return nil
	}
	top := threats[0]
	d := Decision{Faction: p.Faction, Category: CategoryThreatResponse, Priority: 100 + top.Severity}
	switch top.Kind {
	case ThreatHostileRelation:
		// Talk a dangerous pair down before it tips into war.
		d.Action = actions.BilateralSummit
		d.TargetFaction = top.Rival
	case ThreatBorderPressure:
		d.Action = actions.DeployForces
		d.TargetFaction = top.Rival
		d.TargetZone = top.Zone
	case ThreatEconomicGap:
		d.Action = actions.InfrastructureInvest
	}
	return &d
}

func pursueOpportunity(p Profile, opps []Opportunity) *Decision {
	for _, o := range opps {
		switch o.Kind {
		case OppAttackZone:
			return &Decision{
				Faction: p.Faction, Category: CategoryOpportunity, Priority: 80 + o.Value,
				Attack: true, TargetZone: o.Zone, TargetFaction: o.Target,
			}
		case OppClaimZone:
			return &Decision{
				Faction: p.Faction, Category: CategoryOpportunity, Priority: 80 + o.Value,
				Claim: true, TargetZone: o.Zone,
			}
		case OppAlliance:
			return &Decision{
				Faction: p.Faction, Category: CategoryOpportunity, Priority: 80 + o.Value,
				Action: actions.BilateralSummit, TargetFaction: o.Target,
			}
		case OppInvest:
			return &Decision{
				Faction: p.Faction, Category: CategoryOpportunity, Priority: 80 + o.Value,
				Action: actions.InfrastructureInvest,
			}
		}
	}
	return nil
}

func planBuild(p Profile, opps []Opportunity) *Decision {
	for _, o := range opps {
		if o.Kind == OppBuild {
			return &Decision{
				Faction: p.Faction, Category: CategoryBuild, Priority: 60 + o.Value,
				BuildUnit: o.Unit,
			}
		}
	}
	return nil
}

func planExpansion(p Profile, opps []Opportunity) *Decision {
	for _, o := range opps {
		if o.Kind == OppClaimZone {
			return &Decision{
				Faction: p.Faction, Category: CategoryExpansion, Priority: 40 + o.Value,
				Claim: true, TargetZone: o.Zone,
			}
		}
	}
	return nil
}

func planDiplomacy(s *world.State, p Profile) *Decision {
	// De-escalate the hottest relation, or court the coolest one.
	var hottest *world.Relation
	for _, r := range s.Relations {
		if r.A != p.Faction && r.B != p.Faction {
			continue
		}
		if r.Level >= world.Confrontation && (hottest == nil || r.Level > hottest.Level) {
			hottest = r
		}
	}
	if hottest == nil {
		return nil
	}
	other := hottest.A
	if other == p.Faction {
		other = hottest.B
	}
	return &Decision{
		Faction: p.Faction, Category: CategoryDiplomacy,
		Priority: 20 + p.DiplomaticPriority*0.5,
		Action:   actions.ScienceMission, TargetFaction: other,
	}
}

// ExecuteDecisions runs at most two of the candidates, preserving the order
// they were produced in. Returns how many actually executed.
func ExecuteDecisions(s *world.State, ds []Decision, rng *entropy.Source) int {
	executed := 0
	for i := range ds {
		if executed >= maxExecutedPerTurn {
			break
		}
		if executeDecision(s, &ds[i], rng) {
			executed++
		}
	}
	return executed
}

func executeDecision(s *world.State, d *Decision, rng *entropy.Source) bool {
	f := s.FactionByID(d.Faction)
	if f == nil {
		return false
	}
	switch {
	case d.Attack:
		return executeAttack(s, d, rng)
	case d.BuildUnit != "":
		return executeBuild(s, f, d)
	case d.Claim:
		return executeClaim(s, f, d)
	case d.Action != "":
		a := actions.ByID(d.Action)
		if a == nil || !canAfford(f, a) {
			return false
		}
		actions.Execute(s, a, d.Faction, d.TargetFaction, d.TargetZone)
		return true
	}
	return false
}

func executeAttack(s *world.State, d *Decision, rng *entropy.Source) bool {
	target := s.ZoneByID(d.TargetZone)
	if target == nil || target.Controller != d.TargetFaction {
		return false
	}
	// Stage every ready unit from owned zones one move out.
	var attackers []*world.MilitaryUnit
	f := s.FactionByID(d.Faction)
	for _, zid := range f.Zones {
		if !Adjacent(zid, d.TargetZone) {
			continue
		}
		attackers = append(attackers, s.UnitsInZone(zid, d.Faction)...)
	}
	if len(attackers) == 0 {
		return false
	}
	defenders := s.UnitsInZone(d.TargetZone, d.TargetFaction)

	outcome := military.ResolveCombat(s, attackers, defenders, d.Faction, d.TargetFaction,
		target, military.OpInvasion, rng, military.DefaultSurpriseRoll(rng))
	if outcome.ZoneCaptured {
		for _, u := range attackers {
			if u.Status != world.StatusDestroyed {
				u.Zone = d.TargetZone
				u.Status = world.StatusDeployed
			}
		}
	}
	s.Notify("military", "Arctic clash", "%s", outcome.Narrative)
	slog.Info("ai attack", "faction", d.Faction, "zone", d.TargetZone, "captured", outcome.ZoneCaptured)
	return true
}

func executeBuild(s *world.State, f *world.Faction, d *Decision) bool {
	if len(f.Zones) == 0 {
		return false
	}
	spec := military.SpecFor(d.BuildUnit)
	if spec.Cost <= 0 || f.Resources.EconomicOutput < spec.Cost+buildReserve {
		return false
	}
	f.Resources.EconomicOutput -= spec.Cost
	s.Units = append(s.Units, military.NewUnit(d.BuildUnit, f.ID, f.Zones[0]))
	slog.Debug("ai build", "faction", f.ID, "unit", d.BuildUnit)
	return true
}

func executeClaim(s *world.State, f *world.Faction, d *Decision) bool {
	z := s.ZoneByID(d.TargetZone)
	if z == nil || z.Controller != "" {
		return false
	}
	a := actions.ByID(actions.ClaimZone)
	if a == nil || !canAfford(f, a) || f.Resources.Legitimacy < a.Requirements.MinLegitimacy {
		return false
	}
	actions.Execute(s, a, f.ID, "", d.TargetZone)
	s.TransferZone(d.TargetZone, f.ID)
	s.Notify("diplomacy", "Territorial claim", "%s has claimed %s", f.Name, z.Name)
	return true
}

func canAfford(f *world.Faction, a *actions.Action) bool {
	return f.Resources.Influence >= a.Cost.Influence &&
		f.Resources.EconomicOutput >= a.Cost.EconomicOutput
}

// RunFactionTurn runs one faction's full decide-and-execute cycle.
func RunFactionTurn(s *world.State, fid world.FactionID, rng *entropy.Source) int {
	return ExecuteDecisions(s, DecideTurn(s, fid), rng)
}

// RunAITurns drives every autonomous faction for the current turn: majors
// every turn, minors on even turns only.
func RunAITurns(s *world.State, rng *entropy.Source) {
	for _, fid := range world.MajorFactions {
		if fid == s.Player {
			continue
		}
		RunFactionTurn(s, fid, rng)
	}
	if s.Turn%2 == 0 {
		for _, fid := range world.MinorFactions {
			if fid == s.Player {
				continue
			}
			RunFactionTurn(s, fid, rng)
		}
	}
}
