package engine

import (
	"github.com/talgya/frostline/internal/drama"
	"github.com/talgya/frostline/internal/world"
)

// VictoryType names how the player won.
type VictoryType string

const (
	VictoryEconomic   VictoryType = "economic_dominance"
	VictoryTerritory  VictoryType = "territorial_control"
	VictoryDiplomatic VictoryType = "diplomatic_hegemony"
	VictoryScientific VictoryType = "scientific_supremacy"
	VictoryOnPoints   VictoryType = "points"
)

// DefeatType names how the player lost.
type DefeatType string

const (
	DefeatLegitimacy  DefeatType = "legitimacy_collapse"
	DefeatEconomic    DefeatType = "economic_collapse"
	DefeatNuclearWar  DefeatType = "nuclear_war"
	DefeatTerritorial DefeatType = "territorial_loss"
)

// campaignEndYear is the last playable year; the campaign resolves on
// points if nothing decisive happened by then.
const campaignEndYear = 2050

// territorialGraceTurns delays the zero-zone defeat so an opening without
// territory is survivable.
const territorialGraceTurns = 12

// GameEndState describes a finished campaign. Exactly one of Victory or
// Defeat is set, except a points finish where Victory is set only if the
// player leads.
type GameEndState struct {
	Victory VictoryType     `json:"victory,omitempty"`
	Defeat  DefeatType      `json:"defeat,omitempty"`
	Winner  world.FactionID `json:"winner,omitempty"`
	Turn    int             `json:"turn"`
	Year    int             `json:"year"`
}

// CheckVictory returns the player's victory type, or "" if none holds.
// Victory is evaluated before defeat by EvaluateEnd.
func CheckVictory(g *Game) VictoryType {
	s := g.World
	player := s.FactionByID(s.Player)
	if player == nil {
		return ""
	}

	dominant := true
	for id, f := range s.Factions {
		if id == s.Player {
			continue
		}
		if player.Resources.EconomicOutput < f.Resources.EconomicOutput*3 {
			dominant = false
			break
		}
	}
	if dominant {
		return VictoryEconomic
	}

	if s.ControlledZoneFraction(s.Player) >= 0.5 {
		return VictoryTerritory
	}

	if s.AllRelationsAtOrBelow(s.Player, world.Cooperation) && player.Resources.Legitimacy >= 80 {
		return VictoryDiplomatic
	}

	if g.Tech.AllResearched() {
		return VictoryScientific
	}

	return ""
}

// CheckDefeat returns the player's defeat type, or "" if none holds.
func CheckDefeat(g *Game) DefeatType {
	s := g.World
	player := s.FactionByID(s.Player)
	if player == nil {
		return ""
	}

	if player.Resources.Legitimacy < 10 {
		return DefeatLegitimacy
	}
	if g.OutputLowTurns >= lowOutputDefeatTurns {
		return DefeatEconomic
	}
	if g.Drama != nil && g.Drama.NuclearReadiness >= drama.Defcon1 {
		for _, r := range s.Relations {
			if r.Level >= world.Conflict && r.Value >= 100 {
				return DefeatNuclearWar
			}
		}
	}
	if s.Turn > territorialGraceTurns && len(player.Zones) == 0 {
		return DefeatTerritorial
	}
	return ""
}

// EvaluateEnd composes victory and defeat checks, victory first, plus the
// end-of-campaign points resolution.
func EvaluateEnd(g *Game) *GameEndState {
	s := g.World
	if v := CheckVictory(g); v != "" {
		return &GameEndState{Victory: v, Winner: s.Player, Turn: s.Turn, Year: s.Year}
	}
	if d := CheckDefeat(g); d != "" {
		return &GameEndState{Defeat: d, Turn: s.Turn, Year: s.Year}
	}
	if s.Year > campaignEndYear {
		winner := pointsLeader(s)
		end := &GameEndState{Winner: winner, Turn: s.Turn, Year: s.Year}
		if winner == s.Player {
			end.Victory = VictoryOnPoints
		}
		return end
	}
	return nil
}

func pointsLeader(s *world.State) world.FactionID {
	var leader world.FactionID
	best := -1.0
	for _, fid := range world.AllFactions {
		if f := s.FactionByID(fid); f != nil && f.VictoryPoints > best {
			best = f.VictoryPoints
			leader = fid
		}
	}
	return leader
}
