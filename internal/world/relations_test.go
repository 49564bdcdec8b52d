package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustTensionPromotesOnCrossing(t *testing.T) {
	s := NewState(FactionUSA)
	r := s.RelationBetween(FactionUSA, FactionRussia)
	require.NotNil(t, r)

	r.Level = Competition
	r.Value = 90

	s.AdjustTension(FactionUSA, FactionRussia, 20)

	assert.Equal(t, Confrontation, r.Level)
	assert.Equal(t, 50.0, r.Value)
}

func TestAdjustTensionClampsAtCooperationFloor(t *testing.T) {
	s := NewState(FactionUSA)
	r := s.RelationBetween(FactionUSA, FactionCanada)
	require.NotNil(t, r)

	r.Level = Cooperation
	r.Value = 10

	s.AdjustTension(FactionUSA, FactionCanada, -20)

	assert.Equal(t, Cooperation, r.Level)
	assert.Equal(t, 0.0, r.Value)
}

func TestAdjustTensionClampsAtConflictCeiling(t *testing.T) {
	s := NewState(FactionUSA)
	r := s.RelationBetween(FactionUSA, FactionRussia)
	require.NotNil(t, r)

	r.Level = Conflict
	r.Value = 95

	s.AdjustTension(FactionUSA, FactionRussia, 50)

	assert.Equal(t, Conflict, r.Level)
	assert.Equal(t, 100.0, r.Value)
}

func TestAdjustTensionNeverSkipsLevels(t *testing.T) {
	s := NewState(FactionUSA)
	r := s.RelationBetween(FactionUSA, FactionRussia)
	require.NotNil(t, r)

	r.Level = Cooperation
	r.Value = 50

	// A huge delta still moves at most one level per call.
	s.AdjustTension(FactionUSA, FactionRussia, 500)
	assert.Equal(t, Competition, r.Level)
	assert.Equal(t, 50.0, r.Value)

	s.AdjustTension(FactionUSA, FactionRussia, -500)
	assert.Equal(t, Cooperation, r.Level)
	assert.Equal(t, 50.0, r.Value)
}

func TestAdjustTensionStaysInBounds(t *testing.T) {
	s := NewState(FactionUSA)
	deltas := []float64{37, -80, 120, 5, -5, 99, -99, 44, 200, -300}

	for i := 0; i < 50; i++ {
		for _, d := range deltas {
			s.AdjustTension(FactionUSA, FactionRussia, d)
			r := s.RelationBetween(FactionUSA, FactionRussia)
			assert.GreaterOrEqual(t, r.Value, 0.0)
			assert.LessOrEqual(t, r.Value, 100.0)
			assert.GreaterOrEqual(t, r.Level, Cooperation)
			assert.LessOrEqual(t, r.Level, Conflict)
		}
	}
}

func TestAdjustTensionUnknownPairNoOps(t *testing.T) {
	s := NewState(FactionUSA)
	// Self-pair and unknown ids must not panic or mutate anything.
	s.AdjustTension(FactionUSA, FactionUSA, 50)
	s.AdjustTension("atlantis", FactionRussia, 50)
}

func TestRelationBetweenIsOrderIndependent(t *testing.T) {
	s := NewState(FactionUSA)
	r1 := s.RelationBetween(FactionUSA, FactionRussia)
	r2 := s.RelationBetween(FactionRussia, FactionUSA)
	require.NotNil(t, r1)
	assert.Same(t, r1, r2)
}

func TestRelationsCreatedOncePerPair(t *testing.T) {
	s := NewState(FactionUSA)
	n := len(AllFactions)
	assert.Len(t, s.Relations, n*(n-1)/2)
}

func TestTreatiesAndIncidents(t *testing.T) {
	s := NewState(FactionUSA)
	s.AddTreaty(FactionUSA, FactionCanada, "Beaufort Accord")
	s.RecordIncident(FactionUSA, FactionRussia, "airspace violation")

	assert.Contains(t, s.RelationBetween(FactionCanada, FactionUSA).Treaties, "Beaufort Accord")
	assert.Contains(t, s.RelationBetween(FactionUSA, FactionRussia).Incidents, "airspace violation")
}
