package favorites

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvinen/moviedeck/internal/event"
	"github.com/tkarvinen/moviedeck/internal/movie"
	"github.com/tkarvinen/moviedeck/internal/storage"
)

// failingWrites wraps a working store but rejects mutations, simulating a
// full or broken disk.
type failingWrites struct {
	*storage.MemoryStore
	fail bool
}

func (s *failingWrites) Set(key string, data []byte) error {
	if s.fail {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Set(key, data)
}

func (s *failingWrites) Delete(key string) error {
	if s.fail {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Delete(key)
}

func sample(id, title string) movie.Movie {
	return movie.Movie{ID: id, Title: title, MediaType: "movie"}
}

func TestAddIsUniqueByID(t *testing.T) {
	s := New(storage.NewMemoryStore(), nil)

	m := sample("tt0468569", "The Dark Knight")
	assert.True(t, s.Add(m))
	assert.False(t, s.Add(m), "second add of the same id must fail")

	assert.Len(t, s.List(), 1)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New(storage.NewMemoryStore(), nil)

	require.True(t, s.Add(sample("tt0468569", "The Dark Knight")))

	assert.True(t, s.Remove("tt0468569"))
	assert.True(t, s.Remove("tt0468569"), "removing a non-member succeeds trivially")
	assert.Empty(t, s.List())
}

func TestMembershipTracksMutations(t *testing.T) {
	s := New(storage.NewMemoryStore(), nil)

	assert.False(t, s.IsFavorite("tt0468569"))

	s.Add(sample("tt0468569", "The Dark Knight"))
	assert.True(t, s.IsFavorite("tt0468569"))

	s.Remove("tt0468569")
	assert.False(t, s.IsFavorite("tt0468569"))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New(storage.NewMemoryStore(), nil)

	s.Add(sample("tt1", "First"))
	s.Add(sample("tt2", "Second"))
	s.Add(sample("tt3", "Third"))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "tt1", list[0].ID)
	assert.Equal(t, "tt2", list[1].ID)
	assert.Equal(t, "tt3", list[2].ID)
}

func TestClear(t *testing.T) {
	s := New(storage.NewMemoryStore(), nil)

	s.Add(sample("tt1", "First"))
	s.Add(sample("tt2", "Second"))

	assert.True(t, s.Clear())
	assert.Empty(t, s.List())
	assert.False(t, s.IsFavorite("tt1"))
}

func TestListSurvivesCorruptDocument(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set("movie_favorites", []byte("{definitely not json")))

	s := New(mem, nil)
	assert.Empty(t, s.List())
}

func TestFailedWriteLeavesPriorState(t *testing.T) {
	backing := &failingWrites{MemoryStore: storage.NewMemoryStore()}
	s := New(backing, nil)

	require.True(t, s.Add(sample("tt1", "First")))

	backing.fail = true
	assert.False(t, s.Add(sample("tt2", "Second")))
	assert.False(t, s.Remove("tt1"))
	assert.False(t, s.Clear())

	backing.fail = false
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "tt1", list[0].ID)
}

func TestMutationsNotifyBus(t *testing.T) {
	bus := event.NewBus()
	changes := 0
	bus.OnFavoritesChanged(func() { changes++ })

	s := New(storage.NewMemoryStore(), bus)

	s.Add(sample("tt1", "First"))  // notify
	s.Add(sample("tt1", "First"))  // duplicate, no notify
	s.Remove("tt1")                // notify
	s.Clear()                      // notify

	assert.Equal(t, 3, changes)
}
