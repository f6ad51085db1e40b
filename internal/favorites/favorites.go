// Package favorites persists the user's favorite movies as one ordered
// document in local storage. The set is unique by movie id; all operations
// degrade quietly on persistence failure so a broken disk never takes the
// UI down with it.
package favorites

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/tkarvinen/moviedeck/internal/event"
	"github.com/tkarvinen/moviedeck/internal/movie"
	"github.com/tkarvinen/moviedeck/internal/storage"
)

const storageKey = "movie_favorites"

// Store is the durable favorites set. The storage document is the single
// source of truth: a failed write leaves the prior state intact because
// nothing is mutated in memory first.
type Store struct {
	mu    sync.Mutex
	store storage.Store
	bus   *event.Bus
}

// New returns a favorites store over the given storage. bus may be nil when
// no one cares about change notifications.
func New(store storage.Store, bus *event.Bus) *Store {
	return &Store{store: store, bus: bus}
}

// List returns the favorites in insertion order. Any read failure yields an
// empty list, never an error.
func (s *Store) List() []movie.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends m to the set. It returns false without mutating anything when
// a movie with the same id is already present or the write fails.
func (s *Store) Add(m movie.Movie) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load()
	for _, existing := range current {
		if existing.ID == m.ID {
			return false
		}
	}

	if !s.persist(append(current, m)) {
		return false
	}
	s.notify()
	return true
}

// Remove deletes every entry with the given id. Removing a non-member is a
// successful no-op; only a failed write returns false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load()
	kept := current[:0:0]
	for _, m := range current {
		if m.ID != id {
			kept = append(kept, m)
		}
	}

	if !s.persist(kept) {
		return false
	}
	s.notify()
	return true
}

// IsFavorite reports whether a movie with the given id is in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.load() {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the set entirely.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(storageKey); err != nil {
		slog.Warn("Failed to clear favorites", "error", err)
		return false
	}
	s.notify()
	return true
}

// load reads the persisted document. Callers must hold s.mu.
func (s *Store) load() []movie.Movie {
	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		slog.Warn("Failed to read favorites", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var favorites []movie.Movie
	if err := json.Unmarshal(data, &favorites); err != nil {
		slog.Warn("Discarding unreadable favorites document", "error", err)
		return nil
	}
	return favorites
}

// persist writes the document back. Callers must hold s.mu.
func (s *Store) persist(favorites []movie.Movie) bool {
	if favorites == nil {
		favorites = []movie.Movie{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		slog.Warn("Failed to marshal favorites", "error", err)
		return false
	}
	if err := s.store.Set(storageKey, data); err != nil {
		slog.Warn("Failed to write favorites", "error", err)
		return false
	}
	return true
}

func (s *Store) notify() {
	if s.bus != nil {
		s.bus.FavoritesChanged()
	}
}
