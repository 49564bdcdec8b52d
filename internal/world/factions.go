package world

// Faction templates. NewState deep-copies these so no two sessions share
// slices or maps.

type factionTemplate struct {
	ID        FactionID
	Name      string
	Color     string
	Resources Resources
}

var factionTemplates = []factionTemplate{
	{
		ID: FactionUSA, Name: "United States", Color: "#3c6ee0",
		Resources: Resources{Influence: 120, EconomicOutput: 100, Icebreakers: 3, MilitaryReadiness: 70, Legitimacy: 65},
	},
	{
		ID: FactionRussia, Name: "Russian Federation", Color: "#d3342e",
		Resources: Resources{Influence: 100, EconomicOutput: 80, Icebreakers: 12, MilitaryReadiness: 80, Legitimacy: 50},
	},
	{
		ID: FactionChina, Name: "People's Republic of China", Color: "#e8b322",
		Resources: Resources{Influence: 110, EconomicOutput: 110, Icebreakers: 4, MilitaryReadiness: 60, Legitimacy: 55},
	},
	{
		ID: FactionEU, Name: "European Union", Color: "#2d5fa8",
		Resources: Resources{Influence: 105, EconomicOutput: 95, Icebreakers: 2, MilitaryReadiness: 45, Legitimacy: 75},
	},
	{
		ID: FactionCanada, Name: "Canada", Color: "#c8472b",
		Resources: Resources{Influence: 70, EconomicOutput: 60, Icebreakers: 6, MilitaryReadiness: 50, Legitimacy: 80},
	},
	{
		ID: FactionNorway, Name: "Norway", Color: "#3f7f9e",
		Resources: Resources{Influence: 65, EconomicOutput: 65, Icebreakers: 4, MilitaryReadiness: 55, Legitimacy: 85},
	},
	{
		ID: FactionDenmark, Name: "Kingdom of Denmark", Color: "#a04a66",
		Resources: Resources{Influence: 55, EconomicOutput: 50, Icebreakers: 3, MilitaryReadiness: 40, Legitimacy: 80},
	},
}

// initialTension seeds the 2030 starting posture per unordered pair.
// Pairs not listed start at cooperation 30.
var initialTension = map[[2]FactionID]struct {
	Level TensionLevel
	Value float64
}{
	pairKey(FactionUSA, FactionRussia):    {Competition, 70},
	pairKey(FactionUSA, FactionChina):     {Competition, 60},
	pairKey(FactionRussia, FactionEU):     {Competition, 55},
	pairKey(FactionRussia, FactionNorway): {Competition, 45},
	pairKey(FactionChina, FactionEU):      {Competition, 35},
	pairKey(FactionRussia, FactionCanada): {Competition, 40},
	pairKey(FactionUSA, FactionCanada):    {Cooperation, 20},
	pairKey(FactionUSA, FactionEU):        {Cooperation, 25},
	pairKey(FactionEU, FactionNorway):     {Cooperation, 10},
	pairKey(FactionEU, FactionDenmark):    {Cooperation, 10},
	pairKey(FactionCanada, FactionDenmark): {Cooperation, 35},
}

func pairKey(a, b FactionID) [2]FactionID {
	a, b = normalizePair(a, b)
	return [2]FactionID{a, b}
}

// newFactions instantiates templates and assigns initial zone ownership
// from the zone catalog.
func newFactions(zones map[ZoneID]*Zone) map[FactionID]*Faction {
	factions := make(map[FactionID]*Faction, len(factionTemplates))
	for _, t := range factionTemplates {
		factions[t.ID] = &Faction{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			Resources: t.Resources,
		}
	}
	for _, id := range ZoneIDs() {
		z := zones[id]
		if z.Controller == "" {
			continue
		}
		if f, ok := factions[z.Controller]; ok {
			f.Zones = append(f.Zones, z.ID)
		}
	}
	return factions
}

// newRelations creates exactly one relation per unordered faction pair.
func newRelations() []*Relation {
	var relations []*Relation
	for i := 0; i < len(AllFactions); i++ {
		for j := i + 1; j < len(AllFactions); j++ {
			a, b := normalizePair(AllFactions[i], AllFactions[j])
			rel := &Relation{A: a, B: b, Level: Cooperation, Value: 30}
			if seed, ok := initialTension[[2]FactionID{a, b}]; ok {
				rel.Level = seed.Level
				rel.Value = seed.Value
			}
			relations = append(relations, rel)
		}
	}
	return relations
}
