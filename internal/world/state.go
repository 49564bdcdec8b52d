package world

import "fmt"

// Season index within a year. One turn = one season; the campaign runs
// 2030-2050.
const (
	SeasonWinter = iota
	SeasonSpring
	SeasonSummer
	SeasonAutumn
)

var seasonNames = [4]string{"Winter", "Spring", "Summer", "Autumn"}

// SeasonName returns a display name for a season index.
func SeasonName(season int) string {
	return seasonNames[((season%4)+4)%4]
}

// StartYear is the first campaign year.
const StartYear = 2030

// State is the canonical world state for one campaign. It has a single
// owner (the orchestrating caller); sub-engines take it by reference and
// mutate in place. There is no internal copying or snapshotting.
type State struct {
	Turn   int       `json:"turn"`
	Season int       `json:"season"`
	Year   int       `json:"year"`
	Player FactionID `json:"player"`

	Factions map[FactionID]*Faction `json:"factions"`
	Zones    map[ZoneID]*Zone       `json:"zones"`
	Relations []*Relation           `json:"relations"`
	Units    []*MilitaryUnit        `json:"units"`

	Notifications []Notification `json:"notifications"`
}

// NewState builds a fresh 2030 campaign with the given human player.
func NewState(player FactionID) *State {
	if !player.Valid() {
		player = FactionUSA
	}
	zones := newZones()
	return &State{
		Turn:      1,
		Season:    SeasonWinter,
		Year:      StartYear,
		Player:    player,
		Factions:  newFactions(zones),
		Zones:     zones,
		Relations: newRelations(),
	}
}

// FactionByID returns the faction or nil for unknown ids.
func (s *State) FactionByID(id FactionID) *Faction {
	return s.Factions[id]
}

// ZoneByID returns the zone or nil for unknown ids.
func (s *State) ZoneByID(id ZoneID) *Zone {
	return s.Zones[id]
}

// UnitsInZone returns non-destroyed units of one faction in a zone.
func (s *State) UnitsInZone(zone ZoneID, owner FactionID) []*MilitaryUnit {
	var units []*MilitaryUnit
	for _, u := range s.Units {
		if u.Zone == zone && u.Owner == owner && u.Status != StatusDestroyed {
			units = append(units, u)
		}
	}
	return units
}

// ActiveUnits returns all non-destroyed units of a faction.
func (s *State) ActiveUnits(owner FactionID) []*MilitaryUnit {
	var units []*MilitaryUnit
	for _, u := range s.Units {
		if u.Owner == owner && u.Status != StatusDestroyed {
			units = append(units, u)
		}
	}
	return units
}

// TransferZone hands control of a zone to the winner. The donor loses the
// zone id from its list and the zone's controller flips in the same call,
// keeping the one-controller invariant observable at every point.
func (s *State) TransferZone(zone ZoneID, to FactionID) {
	z := s.Zones[zone]
	winner := s.Factions[to]
	if z == nil || winner == nil {
		return
	}
	if prev := s.Factions[z.Controller]; prev != nil {
		kept := z.Controller != to
		if kept {
			filtered := prev.Zones[:0]
			for _, id := range prev.Zones {
				if id != zone {
					filtered = append(filtered, id)
				}
			}
			prev.Zones = filtered
		}
	}
	z.Controller = to
	if !winner.ControlsZone(zone) {
		winner.Zones = append(winner.Zones, zone)
	}
}

// Notify appends a notification for the UI layer to drain.
func (s *State) Notify(kind, title, format string, args ...any) {
	s.Notifications = append(s.Notifications, Notification{
		Turn:  s.Turn,
		Kind:  kind,
		Title: title,
		Body:  fmt.Sprintf(format, args...),
	})
}

// DrainNotifications returns queued notifications and clears the queue.
func (s *State) DrainNotifications() []Notification {
	out := s.Notifications
	s.Notifications = nil
	return out
}

// ClampFactionBounds re-applies the [0,100] bounds on legitimacy and
// readiness for one faction. Influence and economic output are left alone.
func ClampFactionBounds(f *Faction) {
	f.Resources.Legitimacy = clamp(f.Resources.Legitimacy, 0, 100)
	f.Resources.MilitaryReadiness = clamp(f.Resources.MilitaryReadiness, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
