package records

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store is a keyed collection of records that iterates in insertion order.
// Overwriting an existing id keeps its position.
type Store struct {
	m *orderedmap.OrderedMap[ID, Record]
}

// NewStore creates a store holding recs in the given order.
// A later record with an id already seen replaces the earlier one in place.
func NewStore(recs ...Record) *Store {
	s := &Store{m: orderedmap.New[ID, Record]()}
	for _, r := range recs {
		s.Put(r)
	}
	return s
}

// Put inserts r, or overwrites the record with the same id.
// It reports whether the id was already present.
func (s *Store) Put(r Record) bool {
	_, present := s.m.Set(r.ID, r)
	return present
}

// Get returns the record stored under id.
func (s *Store) Get(id ID) (Record, bool) {
	return s.m.Get(id)
}

// Has reports whether id is a key of the store.
func (s *Store) Has(id ID) bool {
	_, ok := s.m.Get(id)
	return ok
}

// Delete removes id and reports whether it was present.
func (s *Store) Delete(id ID) bool {
	_, present := s.m.Delete(id)
	return present
}

// Len returns the number of records.
func (s *Store) Len() int {
	return s.m.Len()
}

// First returns the oldest record still in the store.
func (s *Store) First() (Record, bool) {
	p := s.m.Oldest()
	if p == nil {
		return Record{}, false
	}
	return p.Value, true
}

// Records returns the records in insertion order. The slice is a copy.
func (s *Store) Records() []Record {
	out := make([]Record, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// IDs returns the keys in insertion order.
func (s *Store) IDs() []ID {
	out := make([]ID, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}
