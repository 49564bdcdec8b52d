package world

// TensionLevel is the ordinal relationship state between two factions.
type TensionLevel int

const (
	Cooperation TensionLevel = iota
	Competition
	Confrontation
	Crisis
	Conflict
)

var tensionLevelNames = [...]string{
	"cooperation", "competition", "confrontation", "crisis", "conflict",
}

func (l TensionLevel) String() string {
	if l < Cooperation || l > Conflict {
		return "unknown"
	}
	return tensionLevelNames[l]
}

// TensionLevelFromName maps a stored name back to its level. Unknown names
// map to Cooperation, keeping loads resilient rather than fatal.
func TensionLevelFromName(name string) TensionLevel {
	for i, n := range tensionLevelNames {
		if n == name {
			return TensionLevel(i)
		}
	}
	return Cooperation
}

// Relation tracks one unordered faction pair. Created once per pair at game
// start, never removed. Value is confined to [0, 100] within the current
// level; crossing a bound moves the level one step and resets to 50.
type Relation struct {
	A, B      FactionID    `json:"-"` // normalized: A sorts before B
	Level     TensionLevel `json:"level"`
	Value     float64      `json:"value"`
	Treaties  []string     `json:"treaties,omitempty"`
	Incidents []string     `json:"incidents,omitempty"`
}

// Involves reports whether the relation is between f1 and f2, either order.
func (r *Relation) Involves(f1, f2 FactionID) bool {
	return (r.A == f1 && r.B == f2) || (r.A == f2 && r.B == f1)
}

// RelationBetween is the order-independent lookup. Returns nil for an
// unknown pair or a faction related to itself.
func (s *State) RelationBetween(f1, f2 FactionID) *Relation {
	if f1 == f2 {
		return nil
	}
	for _, r := range s.Relations {
		if r.Involves(f1, f2) {
			return r
		}
	}
	return nil
}

// AdjustTension adds delta to the pair's tension value. Crossing 100
// promotes the level and resets the value to 50; crossing 0 demotes and
// resets to 50. At the extreme levels the value clamps instead. A relation
// can therefore swing one full level from a single large delta but never
// skips two levels in one call. No-op on an unknown pair.
func (s *State) AdjustTension(f1, f2 FactionID, delta float64) {
	r := s.RelationBetween(f1, f2)
	if r == nil {
		return
	}
	r.Value += delta
	switch {
	case r.Value >= 100:
		if r.Level == Conflict {
			r.Value = 100
		} else {
			r.Level++
			r.Value = 50
		}
	case r.Value <= 0:
		if r.Level == Cooperation {
			r.Value = 0
		} else {
			r.Level--
			r.Value = 50
		}
	}
}

// RecordIncident appends a named incident to the pair's history.
func (s *State) RecordIncident(f1, f2 FactionID, incident string) {
	if r := s.RelationBetween(f1, f2); r != nil {
		r.Incidents = append(r.Incidents, incident)
	}
}

// AddTreaty registers a treaty name on the pair. No-op on unknown pairs.
func (s *State) AddTreaty(f1, f2 FactionID, name string) {
	if r := s.RelationBetween(f1, f2); r != nil {
		r.Treaties = append(r.Treaties, name)
	}
}

// normalizePair orders a faction pair for storage.
func normalizePair(f1, f2 FactionID) (FactionID, FactionID) {
	if f2 < f1 {
		return f2, f1
	}
	return f1, f2
}
