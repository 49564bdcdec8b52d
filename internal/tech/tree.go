// Package tech implements the research tree: prerequisite-gated nodes,
// per-turn progression, and cumulative bonus aggregation.
package tech

// Technology is one static node in the tree.
type Technology struct {
	ID              string
	Name            string
	CostInfluence   float64
	CostEconomic    float64
	TurnsToResearch int
	Prereqs         []string

	// Sparse effects bundle; zero fields mean no effect.
	EconomicBonus   float64 // % on the baseline economic gain
	InfluenceBonus  float64 // % on the baseline influence gain
	LegitimacyBonus float64 // flat per turn
	ReadinessBonus  float64 // scaled per turn
	Unlocks         string  // free-form capability tag
}

// Tree is the static catalog, ordered roughly by era.
var Tree = []Technology{
	{
		ID: "polar_logistics", Name: "Polar Logistics Network",
		CostInfluence: 20, CostEconomic: 25, TurnsToResearch: 3,
		EconomicBonus: 10,
	},
	{
		ID: "nuclear_icebreakers", Name: "Nuclear Icebreaker Fleet",
		CostInfluence: 30, CostEconomic: 40, TurnsToResearch: 5,
		Prereqs:       []string{"polar_logistics"},
		EconomicBonus: 15, Unlocks: "deep_ice_transit",
	},
	{
		ID: "arctic_drilling", Name: "Deepwater Arctic Drilling",
		CostInfluence: 25, CostEconomic: 50, TurnsToResearch: 4,
		Prereqs:       []string{"polar_logistics"},
		EconomicBonus: 20, LegitimacyBonus: -0.5,
	},
	{
		ID: "green_extraction", Name: "Low-Impact Extraction",
		CostInfluence: 35, CostEconomic: 30, TurnsToResearch: 4,
		Prereqs:         []string{"arctic_drilling"},
		EconomicBonus:   5, LegitimacyBonus: 1,
	},
	{
		ID: "satellite_surveillance", Name: "Polar Satellite Constellation",
		CostInfluence: 40, CostEconomic: 35, TurnsToResearch: 4,
		InfluenceBonus: 15, ReadinessBonus: 2, Unlocks: "full_map_intel",
	},
	{
		ID: "under_ice_drones", Name: "Under-Ice Drone Swarms",
		CostInfluence: 45, CostEconomic: 45, TurnsToResearch: 5,
		Prereqs:        []string{"satellite_surveillance"},
		ReadinessBonus: 4, Unlocks: "stealth_detection",
	},
	{
		ID: "missile_defense", Name: "Arctic Missile Shield",
		CostInfluence: 50, CostEconomic: 60, TurnsToResearch: 6,
		Prereqs:        []string{"satellite_surveillance"},
		ReadinessBonus: 6,
	},
	{
		ID: "ai_navigation", Name: "Autonomous Ice Navigation",
		CostInfluence: 35, CostEconomic: 40, TurnsToResearch: 4,
		Prereqs:       []string{"nuclear_icebreakers"},
		EconomicBonus: 12, InfluenceBonus: 5,
	},
	{
		ID: "arctic_diplomacy_corps", Name: "Arctic Diplomacy Corps",
		CostInfluence: 30, CostEconomic: 15, TurnsToResearch: 3,
		InfluenceBonus: 20, LegitimacyBonus: 1,
	},
	{
		ID: "climate_engineering", Name: "Regional Climate Engineering",
		CostInfluence: 60, CostEconomic: 80, TurnsToResearch: 8,
		Prereqs:         []string{"green_extraction", "ai_navigation"},
		EconomicBonus:   10, LegitimacyBonus: 2, Unlocks: "ice_stabilization",
	},
}

// ByID returns the tree node, or nil for unknown ids.
func ByID(id string) *Technology {
	for i := range Tree {
		if Tree[i].ID == id {
			return &Tree[i]
		}
	}
	return nil
}
