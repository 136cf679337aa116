package pricetable

import (
	"errors"
	"fmt"
	"sync"

	"bookprice-service/internal/model"
)

// ErrStaleGeneration is returned by Replace when a newer record set has
// already been applied.
var ErrStaleGeneration = errors.New("stale record generation")

// Store holds the current record set in memory. The set is replaced
// wholesale; individual records are never mutated after load.
//
// Replacements carry a generation number taken from NextGeneration before
// the data was fetched. If two refreshes race, the slower response arrives
// with an older generation and is dropped, so the store can never move
// backwards to stale data.
type Store struct {
	mu      sync.RWMutex
	records []model.PriceRecord

	issued  uint64 // last generation handed out
	applied uint64 // generation of the current record set
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NextGeneration reserves the next generation number. Callers must take it
// before starting the fetch that will produce the replacement set.
func (s *Store) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Replace installs a new record set if generation is newer than the one
// currently applied. Records without a product id get a positional
// fallback key so selection and dedup still work.
func (s *Store) Replace(records []model.PriceRecord, generation uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation <= s.applied {
		return fmt.Errorf("%w: got %d, have %d", ErrStaleGeneration, generation, s.applied)
	}

	s.records = withFallbackKeys(records)
	s.applied = generation
	return nil
}

// Load replaces the record set unconditionally, reserving a fresh
// generation so any in-flight refresh started earlier becomes stale.
func (s *Store) Load(records []model.PriceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.records = withFallbackKeys(records)
	s.applied = s.issued
}

func withFallbackKeys(records []model.PriceRecord) []model.PriceRecord {
	copied := make([]model.PriceRecord, len(records))
	copy(copied, records)
	for i := range copied {
		if copied[i].ProductID == "" {
			copied[i].ProductID = fmt.Sprintf("#%d", i)
		}
	}
	return copied
}

// Snapshot returns a copy of the current record set.
func (s *Store) Snapshot() []model.PriceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PriceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ByID finds a record by its product id.
func (s *Store) ByID(id string) (model.PriceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ProductID == id {
			return r, true
		}
	}
	return model.PriceRecord{}, false
}
