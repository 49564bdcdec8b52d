// Package military holds unit and operation specifications and the
// stochastic combat resolver. Combat never errors: every input combination
// produces a definite outcome, and degenerate inputs (empty unit lists) are
// the caller's responsibility to avoid.
package military

import (
	"github.com/google/uuid"

	"github.com/talgya/frostline/internal/world"
)

// UnitSpec carries the per-type combat and procurement stats.
type UnitSpec struct {
	Type       world.UnitType
	Name       string
	Attack     float64
	Defense    float64
	Mobility   int
	Cost       float64 // economic output to build
	BuildTurns int
	Stealth    bool
}

var unitSpecs = map[world.UnitType]UnitSpec{
	world.UnitSurfaceFleet: {
		Type: world.UnitSurfaceFleet, Name: "Surface Fleet",
		Attack: 70, Defense: 60, Mobility: 3, Cost: 40, BuildTurns: 3,
	},
	world.UnitSubmarine: {
		Type: world.UnitSubmarine, Name: "Attack Submarine",
		Attack: 80, Defense: 40, Mobility: 4, Cost: 50, BuildTurns: 4, Stealth: true,
	},
	world.UnitAircraft: {
		Type: world.UnitAircraft, Name: "Air Wing",
		Attack: 75, Defense: 35, Mobility: 6, Cost: 35, BuildTurns: 2,
	},
	world.UnitGroundForces: {
		Type: world.UnitGroundForces, Name: "Arctic Ground Forces",
		Attack: 60, Defense: 70, Mobility: 1, Cost: 25, BuildTurns: 2,
	},
	world.UnitIcebreakerCombat: {
		Type: world.UnitIcebreakerCombat, Name: "Armed Icebreaker",
		Attack: 45, Defense: 55, Mobility: 2, Cost: 30, BuildTurns: 3,
	},
	world.UnitMissileBattery: {
		Type: world.UnitMissileBattery, Name: "Coastal Missile Battery",
		Attack: 85, Defense: 50, Mobility: 0, Cost: 45, BuildTurns: 3,
	},
}

// SpecFor returns the spec for a unit type. Unknown types get a zero-value
// spec rather than a panic, matching the no-op discipline for bad ids.
func SpecFor(t world.UnitType) UnitSpec {
	return unitSpecs[t]
}

// NewUnit builds a fresh, full-strength unit stationed in a zone.
func NewUnit(t world.UnitType, owner world.FactionID, zone world.ZoneID) *world.MilitaryUnit {
	spec := unitSpecs[t]
	return &world.MilitaryUnit{
		ID:         uuid.NewString(),
		Type:       t,
		Owner:      owner,
		Zone:       zone,
		Strength:   100,
		Experience: 0,
		Morale:     80,
		Status:     world.StatusReady,
		Stealth:    spec.Stealth,
	}
}

// applyDamage reduces a unit's strength and runs the status machine:
// destroyed iff strength <= 0 (terminal), damaged iff strength in (0, 50).
func applyDamage(u *world.MilitaryUnit, dmg float64) {
	u.Strength -= dmg
	switch {
	case u.Strength <= 0:
		u.Strength = 0
		u.Status = world.StatusDestroyed
	case u.Strength < 50:
		u.Status = world.StatusDamaged
	}
}
