package world

// The zone catalog is the authored game board: eighteen Arctic territories,
// shelves, and sea lanes on a hex grid centered on the pole. Richness values
// are on the 0-10 scale; ice months are pre-melt 2030 baselines.

// ZoneTemplate is the immutable catalog entry a session's Zone is built from.
type ZoneTemplate struct {
	ID         ZoneID
	Name       string
	Type       ZoneType
	Coord      HexCoord
	Controller FactionID
	Resources  ZoneResources
	IceMonths  int
}

const (
	ZoneNorthPole          ZoneID = "north_pole"
	ZoneCentralBasin       ZoneID = "central_arctic_basin"
	ZoneLomonosovRidge     ZoneID = "lomonosov_ridge"
	ZoneBarentsSea         ZoneID = "barents_sea"
	ZoneKaraSea            ZoneID = "kara_sea"
	ZoneLaptevSea          ZoneID = "laptev_sea"
	ZoneEastSiberianSea    ZoneID = "east_siberian_sea"
	ZoneChukchiSea         ZoneID = "chukchi_sea"
	ZoneBeaufortSea        ZoneID = "beaufort_sea"
	ZoneNorthernSeaRoute   ZoneID = "northern_sea_route"
	ZoneNorthwestPassage   ZoneID = "northwest_passage"
	ZoneBeringStrait       ZoneID = "bering_strait"
	ZoneFramStrait         ZoneID = "fram_strait"
	ZoneSvalbard           ZoneID = "svalbard"
	ZoneYamalPeninsula     ZoneID = "yamal_peninsula"
	ZoneAlaskaNorthSlope   ZoneID = "alaska_north_slope"
	ZoneCanadianArctic     ZoneID = "canadian_archipelago"
	ZoneGreenlandShelf     ZoneID = "greenland_shelf"
)

var zoneCatalog = []ZoneTemplate{
	{
		ID: ZoneNorthPole, Name: "North Pole", Type: ZoneInternational,
		Coord:     HexCoord{Q: 0, R: 0},
		Resources: ZoneResources{Oil: 2, Gas: 2, Minerals: 3, Fish: 0, Shipping: 1},
		IceMonths: 12,
	},
	{
		ID: ZoneCentralBasin, Name: "Central Arctic Basin", Type: ZoneInternational,
		Coord:     HexCoord{Q: 0, R: -1},
		Resources: ZoneResources{Oil: 3, Gas: 3, Minerals: 2, Fish: 4, Shipping: 2},
		IceMonths: 11,
	},
	{
		ID: ZoneLomonosovRidge, Name: "Lomonosov Ridge", Type: ZoneContinentalShelf,
		Coord:     HexCoord{Q: 1, R: -1},
		Resources: ZoneResources{Oil: 6, Gas: 7, Minerals: 8, Fish: 1, Shipping: 0},
		IceMonths: 12,
	},
	{
		ID: ZoneBarentsSea, Name: "Barents Sea", Type: ZoneEEZ,
		Coord: HexCoord{Q: 2, R: -3}, Controller: FactionNorway,
		Resources: ZoneResources{Oil: 7, Gas: 8, Minerals: 2, Fish: 9, Shipping: 6},
		IceMonths: 4,
	},
	{
		ID: ZoneKaraSea, Name: "Kara Sea", Type: ZoneEEZ,
		Coord: HexCoord{Q: 3, R: -2}, Controller: FactionRussia,
		Resources: ZoneResources{Oil: 8, Gas: 9, Minerals: 3, Fish: 5, Shipping: 4},
		IceMonths: 8,
	},
	{
		ID: ZoneLaptevSea, Name: "Laptev Sea", Type: ZoneEEZ,
		Coord: HexCoord{Q: 3, R: -1}, Controller: FactionRussia,
		Resources: ZoneResources{Oil: 5, Gas: 6, Minerals: 4, Fish: 4, Shipping: 3},
		IceMonths: 9,
	},
	{
		ID: ZoneEastSiberianSea, Name: "East Siberian Sea", Type: ZoneEEZ,
		Coord: HexCoord{Q: 3, R: 0}, Controller: FactionRussia,
		Resources: ZoneResources{Oil: 4, Gas: 5, Minerals: 5, Fish: 3, Shipping: 3},
		IceMonths: 10,
	},
	{
		ID: ZoneChukchiSea, Name: "Chukchi Sea", Type: ZoneEEZ,
		Coord:     HexCoord{Q: 2, R: 1},
		Resources: ZoneResources{Oil: 6, Gas: 5, Minerals: 3, Fish: 7, Shipping: 5},
		IceMonths: 8,
	},
	{
		ID: ZoneBeaufortSea, Name: "Beaufort Sea", Type: ZoneEEZ,
		Coord: HexCoord{Q: 0, R: 2}, Controller: FactionUSA,
		Resources: ZoneResources{Oil: 7, Gas: 6, Minerals: 2, Fish: 5, Shipping: 3},
		IceMonths: 9,
	},
	{
		ID: ZoneNorthernSeaRoute, Name: "Northern Sea Route", Type: ZoneChokepoint,
		Coord: HexCoord{Q: 2, R: -2}, Controller: FactionRussia,
		Resources: ZoneResources{Oil: 1, Gas: 1, Minerals: 0, Fish: 2, Shipping: 10},
		IceMonths: 7,
	},
	{
		ID: ZoneNorthwestPassage, Name: "Northwest Passage", Type: ZoneChokepoint,
		Coord: HexCoord{Q: -1, R: 2}, Controller: FactionCanada,
		Resources: ZoneResources{Oil: 1, Gas: 1, Minerals: 1, Fish: 3, Shipping: 9},
		IceMonths: 9,
	},
	{
		ID: ZoneBeringStrait, Name: "Bering Strait", Type: ZoneChokepoint,
		Coord:     HexCoord{Q: 1, R: 2},
		Resources: ZoneResources{Oil: 0, Gas: 0, Minerals: 0, Fish: 6, Shipping: 10},
		IceMonths: 5,
	},
	{
		ID: ZoneFramStrait, Name: "Fram Strait", Type: ZoneChokepoint,
		Coord:     HexCoord{Q: 0, R: -2},
		Resources: ZoneResources{Oil: 0, Gas: 0, Minerals: 0, Fish: 5, Shipping: 8},
		IceMonths: 6,
	},
	{
		ID: ZoneSvalbard, Name: "Svalbard", Type: ZoneTerritorial,
		Coord: HexCoord{Q: 1, R: -3}, Controller: FactionNorway,
		Resources: ZoneResources{Oil: 2, Gas: 2, Minerals: 6, Fish: 6, Shipping: 4},
		IceMonths: 6,
	},
	{
		ID: ZoneYamalPeninsula, Name: "Yamal Peninsula", Type: ZoneTerritorial,
		Coord: HexCoord{Q: 4, R: -2}, Controller: FactionRussia,
		Resources: ZoneResources{Oil: 9, Gas: 10, Minerals: 4, Fish: 1, Shipping: 2},
		IceMonths: 8,
	},
	{
		ID: ZoneAlaskaNorthSlope, Name: "Alaska North Slope", Type: ZoneTerritorial,
		Coord: HexCoord{Q: 1, R: 3}, Controller: FactionUSA,
		Resources: ZoneResources{Oil: 9, Gas: 7, Minerals: 5, Fish: 2, Shipping: 2},
		IceMonths: 8,
	},
	{
		ID: ZoneCanadianArctic, Name: "Canadian Archipelago", Type: ZoneTerritorial,
		Coord: HexCoord{Q: -2, R: 2}, Controller: FactionCanada,
		Resources: ZoneResources{Oil: 4, Gas: 4, Minerals: 7, Fish: 4, Shipping: 3},
		IceMonths: 10,
	},
	{
		ID: ZoneGreenlandShelf, Name: "Greenland Shelf", Type: ZoneTerritorial,
		Coord: HexCoord{Q: -1, R: -1}, Controller: FactionDenmark,
		Resources: ZoneResources{Oil: 3, Gas: 4, Minerals: 9, Fish: 7, Shipping: 3},
		IceMonths: 9,
	},
}

// newZones instantiates the catalog for one session.
func newZones() map[ZoneID]*Zone {
	zones := make(map[ZoneID]*Zone, len(zoneCatalog))
	for _, t := range zoneCatalog {
		zones[t.ID] = &Zone{
			ID:               t.ID,
			Name:             t.Name,
			Type:             t.Type,
			Coord:            t.Coord,
			Controller:       t.Controller,
			Resources:        t.Resources,
			IceMonths:        t.IceMonths,
			MilitaryPresence: make(map[FactionID]float64),
		}
	}
	return zones
}

// ZoneIDs returns catalog ids in authored order.
func ZoneIDs() []ZoneID {
	ids := make([]ZoneID, len(zoneCatalog))
	for i, t := range zoneCatalog {
		ids[i] = t.ID
	}
	return ids
}
