package ai

import "github.com/talgya/frostline/internal/world"

// zoneAdjacency is a hand-authored reachability table: which zones a force
// can reinforce or threaten from which. It is deliberately not derived from
// hex coordinates; sea lanes and straits connect places raw geometry would
// not. Every listed pair still sits within hex distance 2, which the tests
// assert so the table cannot drift away from the board.
var zoneAdjacency = map[world.ZoneID][]world.ZoneID{
	world.ZoneNorthPole:        {world.ZoneCentralBasin, world.ZoneLomonosovRidge, world.ZoneFramStrait, world.ZoneGreenlandShelf},
	world.ZoneCentralBasin:     {world.ZoneNorthPole, world.ZoneLomonosovRidge, world.ZoneFramStrait},
	world.ZoneLomonosovRidge:   {world.ZoneNorthPole, world.ZoneCentralBasin, world.ZoneLaptevSea, world.ZoneGreenlandShelf, world.ZoneFramStrait},
	world.ZoneBarentsSea:       {world.ZoneSvalbard, world.ZoneKaraSea, world.ZoneFramStrait, world.ZoneNorthernSeaRoute},
	world.ZoneKaraSea:          {world.ZoneBarentsSea, world.ZoneLaptevSea, world.ZoneYamalPeninsula, world.ZoneNorthernSeaRoute},
	world.ZoneLaptevSea:        {world.ZoneKaraSea, world.ZoneEastSiberianSea, world.ZoneLomonosovRidge, world.ZoneNorthernSeaRoute},
	world.ZoneEastSiberianSea:  {world.ZoneLaptevSea, world.ZoneChukchiSea},
	world.ZoneChukchiSea:       {world.ZoneEastSiberianSea, world.ZoneBeaufortSea, world.ZoneBeringStrait},
	world.ZoneBeaufortSea:      {world.ZoneChukchiSea, world.ZoneAlaskaNorthSlope, world.ZoneCanadianArctic, world.ZoneNorthwestPassage, world.ZoneBeringStrait},
	world.ZoneNorthernSeaRoute: {world.ZoneBarentsSea, world.ZoneKaraSea, world.ZoneLaptevSea},
	world.ZoneNorthwestPassage: {world.ZoneBeaufortSea, world.ZoneCanadianArctic, world.ZoneBeringStrait},
	world.ZoneBeringStrait:     {world.ZoneChukchiSea, world.ZoneBeaufortSea, world.ZoneAlaskaNorthSlope, world.ZoneNorthwestPassage},
	world.ZoneFramStrait:       {world.ZoneSvalbard, world.ZoneGreenlandShelf, world.ZoneBarentsSea, world.ZoneCentralBasin, world.ZoneNorthPole, world.ZoneLomonosovRidge},
	world.ZoneSvalbard:         {world.ZoneBarentsSea, world.ZoneFramStrait},
	world.ZoneYamalPeninsula:   {world.ZoneKaraSea},
	world.ZoneAlaskaNorthSlope: {world.ZoneBeaufortSea, world.ZoneBeringStrait},
	world.ZoneCanadianArctic:   {world.ZoneBeaufortSea, world.ZoneNorthwestPassage},
	world.ZoneGreenlandShelf:   {world.ZoneFramStrait, world.ZoneNorthPole, world.ZoneLomonosovRidge},
}

// AdjacentZones returns the authored neighbors of a zone.
func AdjacentZones(id world.ZoneID) []world.ZoneID {
	return zoneAdjacency[id]
}

// Adjacent reports whether b is reachable from a in one move.
func Adjacent(a, b world.ZoneID) bool {
	for _, n := range zoneAdjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}
