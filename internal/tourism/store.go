package tourism

import (
	"errors"
	"fmt"
)

// ErrEmptyStore indicates the store was constructed with no records.
// Surfaced once, at startup; an empty store is a fatal initialization
// condition, distinct from an empty per-query filter result.
var ErrEmptyStore = errors.New("record store is empty")

// Store is the validated, immutable in-memory collection of weekly tourism
// records. Insertion order equals dataset file order. Read-only after
// construction; safe for unsynchronized concurrent reads.
type Store struct {
	records []Record
}

// NewStore validates every record and builds the store.
// Returns ErrEmptyStore when records is empty, or the first validation
// failure with its record index.
func NewStore(records []Record) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmptyStore
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	// Private copy so the caller's slice cannot mutate the store.
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Store{records: owned}, nil
}

// Records returns the full record sequence in dataset order.
// Callers must treat the returned slice as read-only.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}
