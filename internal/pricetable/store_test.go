package pricetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookprice-service/internal/model"
)

func TestStoreReplaceGenerationGuard(t *testing.T) {
	s := NewStore()

	// Two refreshes race: both reserve a generation, the newer one lands
	// first, the older response must be dropped.
	older := s.NextGeneration()
	newer := s.NextGeneration()

	require.NoError(t, s.Replace([]model.PriceRecord{rec("new", "fresh data")}, newer))

	err := s.Replace([]model.PriceRecord{rec("old", "stale data")}, older)
	require.ErrorIs(t, err, ErrStaleGeneration)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "new", snap[0].ProductID)
}

func TestStoreReplaceInOrder(t *testing.T) {
	s := NewStore()

	g1 := s.NextGeneration()
	require.NoError(t, s.Replace([]model.PriceRecord{rec("a", "")}, g1))

	g2 := s.NextGeneration()
	require.NoError(t, s.Replace([]model.PriceRecord{rec("b", "")}, g2))

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "b", snap[0].ProductID)
}

func TestStoreLoadAlwaysApplies(t *testing.T) {
	s := NewStore()

	pending := s.NextGeneration()
	s.Load([]model.PriceRecord{rec("direct", "")})

	// The refresh that reserved its generation before the load is stale now.
	err := s.Replace([]model.PriceRecord{rec("late", "")}, pending)
	assert.ErrorIs(t, err, ErrStaleGeneration)
	assert.Equal(t, 1, s.Len())
}

func TestStoreAssignsFallbackKeys(t *testing.T) {
	s := NewStore()
	s.Load([]model.PriceRecord{
		rec("BK-1", "has id"),
		rec("", "no id"),
		rec("", "also no id"),
	})

	snap := s.Snapshot()
	assert.Equal(t, []string{"BK-1", "#1", "#2"}, ids(snap))

	r, ok := s.ByID("#2")
	require.True(t, ok)
	assert.Equal(t, "also no id", r.Title)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.Load([]model.PriceRecord{rec("a", "original")})

	snap := s.Snapshot()
	snap[0].Title = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "original", again[0].Title)
}

func TestStoreByIDMissing(t *testing.T) {
	s := NewStore()
	_, ok := s.ByID("nothing")
	assert.False(t, ok)
}
