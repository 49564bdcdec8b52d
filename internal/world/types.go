package world

// FactionID identifies one of the seven Arctic states. The set is closed:
// factions are never created or destroyed mid-game.
type FactionID string

const (
	FactionUSA     FactionID = "usa"
	FactionRussia  FactionID = "russia"
	FactionChina   FactionID = "china"
	FactionEU      FactionID = "eu"
	FactionCanada  FactionID = "canada"
	FactionNorway  FactionID = "norway"
	FactionDenmark FactionID = "denmark"
)

// MajorFactions run a full AI decision cycle every turn (minus the player).
var MajorFactions = []FactionID{FactionUSA, FactionRussia, FactionChina, FactionEU}

// MinorFactions run a decision cycle on alternating turns.
var MinorFactions = []FactionID{FactionCanada, FactionNorway, FactionDenmark}

// AllFactions lists every faction in a stable order.
var AllFactions = []FactionID{
	FactionUSA, FactionRussia, FactionChina, FactionEU,
	FactionCanada, FactionNorway, FactionDenmark,
}

// Valid reports whether id belongs to the closed faction set.
func (id FactionID) Valid() bool {
	for _, f := range AllFactions {
		if f == id {
			return true
		}
	}
	return false
}

// Resources is the per-faction resource bundle. Influence and economic
// output are unbounded above; readiness and legitimacy live in [0, 100].
type Resources struct {
	Influence         float64 `json:"influence"`
	EconomicOutput    float64 `json:"economic_output"`
	Icebreakers       int     `json:"icebreakers"`
	MilitaryReadiness float64 `json:"military_readiness"`
	Legitimacy        float64 `json:"legitimacy"`
}

// Faction is one Arctic state. Created once at game start from a template
// (deep-copied, so sessions never share references) and mutated continuously.
type Faction struct {
	ID            FactionID `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Resources     Resources `json:"resources"`
	Zones         []ZoneID  `json:"zones"`
	VictoryPoints float64   `json:"victory_points"`
}

// ControlsZone reports whether the faction controls the given zone id.
func (f *Faction) ControlsZone(id ZoneID) bool {
	for _, z := range f.Zones {
		if z == id {
			return true
		}
	}
	return false
}

// ZoneID identifies a zone from the static catalog.
type ZoneID string

// ZoneType affects combat terrain bonus and victory scoring.
type ZoneType string

const (
	ZoneTerritorial      ZoneType = "territorial"
	ZoneEEZ              ZoneType = "eez"
	ZoneContinentalShelf ZoneType = "continental_shelf"
	ZoneInternational    ZoneType = "international"
	ZoneChokepoint       ZoneType = "chokepoint"
)

// ZoneResources is richness per resource class, each 0-10+.
type ZoneResources struct {
	Oil      float64 `json:"oil"`
	Gas      float64 `json:"gas"`
	Minerals float64 `json:"minerals"`
	Fish     float64 `json:"fish"`
	Shipping float64 `json:"shipping"`
}

// Zone is a discrete controllable Arctic territory or sea lane.
// Invariant: at most one controller; control transfers are atomic and
// happen only through successful invasion or an explicit claim.
type Zone struct {
	ID          ZoneID      `json:"id"`
	Name        string      `json:"name"`
	Type        ZoneType    `json:"type"`
	Coord       HexCoord    `json:"coord"`
	Controller  FactionID   `json:"controller"` // "" = uncontrolled
	ContestedBy []FactionID `json:"contested_by,omitempty"`

	Resources ZoneResources `json:"resources"`
	IceMonths int           `json:"ice_months"` // months of ice cover per year

	// Non-unit military footprint per faction (patrols, installations).
	MilitaryPresence map[FactionID]float64 `json:"military_presence"`
}

// UnitType enumerates the six military unit variants.
type UnitType string

const (
	UnitSurfaceFleet     UnitType = "surface_fleet"
	UnitSubmarine        UnitType = "submarine"
	UnitAircraft         UnitType = "aircraft"
	UnitGroundForces     UnitType = "ground_forces"
	UnitIcebreakerCombat UnitType = "icebreaker_combat"
	UnitMissileBattery   UnitType = "missile_battery"
)

// UnitStatus is the unit lifecycle state. Destroyed is terminal; destroyed
// units stay in the collection as inert records and are filtered everywhere
// that matters.
type UnitStatus string

const (
	StatusReady     UnitStatus = "ready"
	StatusDeployed  UnitStatus = "deployed"
	StatusDamaged   UnitStatus = "damaged"
	StatusDestroyed UnitStatus = "destroyed"
)

// MilitaryUnit is a single unit. Strength and status are mutated only by
// combat resolution.
type MilitaryUnit struct {
	ID         string     `json:"id"`
	Type       UnitType   `json:"type"`
	Owner      FactionID  `json:"owner"`
	Zone       ZoneID     `json:"zone"`
	Strength   float64    `json:"strength"` // 0-100, destroyed at <= 0
	Experience float64    `json:"experience"`
	Morale     float64    `json:"morale"`
	Status     UnitStatus `json:"status"`
	Stealth    bool       `json:"stealth,omitempty"`
}

// Notification is a queued UI-facing message. The queue is append-only from
// the core's perspective; the consumer drains it.
type Notification struct {
	Turn  int    `json:"turn"`
	Kind  string `json:"kind"` // "combat", "economy", "crisis", "discovery", "achievement", ...
	Title string `json:"title"`
	Body  string `json:"body"`
}
