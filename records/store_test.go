package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore(
		Record{ID: "c", Name: "Carl"},
		Record{ID: "a", Name: "Ann"},
		Record{ID: "b", Name: "Bob"},
	)

	assert.Equal(t, []ID{"c", "a", "b"}, s.IDs())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, ID("c"), first.ID)
}

func TestStorePutOverwritesInPlace(t *testing.T) {
	s := NewStore(Record{ID: "a", Name: "Ann"}, Record{ID: "b", Name: "Bob"})

	present := s.Put(Record{ID: "a", Name: "Anna"})
	assert.True(t, present)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []ID{"a", "b"}, s.IDs())

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Anna", got.Name)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(Record{ID: "a"}, Record{ID: "b"})

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.False(t, s.Has("a"))
	assert.Equal(t, []ID{"b"}, s.IDs())

	s.Delete("b")
	_, ok := s.First()
	assert.False(t, ok)
	assert.Empty(t, s.Records())
}

func TestStoreRecordsIsACopy(t *testing.T) {
	s := NewStore(Record{ID: "a", Name: "Ann"})
	recs := s.Records()
	recs[0].Name = "mutated"

	got, _ := s.Get("a")
	assert.Equal(t, "Ann", got.Name)
}

func TestRecordSummary(t *testing.T) {
	assert.Equal(t, "Mickey Mouse", Record{Name: "Mickey", Surname: "Mouse"}.Summary())
	assert.Equal(t, "Walt", Record{Name: "Walt"}.Summary())
	assert.Equal(t, "", Record{}.Summary())
}

func TestSequenceGenerator(t *testing.T) {
	gen := Sequence("rec")
	assert.Equal(t, ID("rec-1"), gen())
	assert.Equal(t, ID("rec-2"), gen())
}

func TestNewUUIDIsUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewUUID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
