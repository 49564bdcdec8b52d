package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// IceModel projects Arctic sea-ice extent across the campaign. The long-term
// decline is linear; seasonal swing and year-to-year variability come from
// smooth simplex noise so consecutive turns never jump discontinuously.
type IceModel struct {
	noise opensimplex.Noise
}

// NewIceModel creates the ice projection for one campaign seed.
func NewIceModel(seed int64) *IceModel {
	return &IceModel{noise: opensimplex.NewNormalized(seed)}
}

// Extent returns normalized ice extent in [0, 1] for a year and season.
// 1.0 is full 2030 winter pack; the secular trend loses about a third of
// extent by 2050.
func (m *IceModel) Extent(year, season int) float64 {
	t := float64(year - StartYear)

	// Secular decline: 0.75 baseline in 2030 down to ~0.45 by 2050.
	base := 0.75 - 0.015*t

	// Seasonal swing peaks in winter (season 0), bottoms in summer.
	seasonal := 0.18 * math.Cos(2*math.Pi*float64(season)/4)

	// Interannual variability, +-0.06.
	wobble := (m.noise.Eval2(t*0.35, float64(season)*0.25) - 0.5) * 0.12

	extent := base + seasonal + wobble
	if extent < 0 {
		return 0
	}
	if extent > 1 {
		return 1
	}
	return extent
}

// Navigable reports how passable a zone is this turn, in [0,1]. Zones with
// long ice seasons open up as extent collapses.
func (m *IceModel) Navigable(z *Zone, year, season int) float64 {
	extent := m.Extent(year, season)
	iceLoad := float64(z.IceMonths) / 12 * extent
	return clamp(1-iceLoad, 0.1, 1)
}
