// Package prefs persists user interface preferences as one YAML document in
// local storage. Unreadable or partial documents fall back to defaults
// field by field.
package prefs

import (
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tkarvinen/moviedeck/internal/staticdata"
	"github.com/tkarvinen/moviedeck/internal/storage"
)

const (
	storageKey = "ui_prefs"

	// DefaultTheme is the theme used until the user picks one.
	DefaultTheme = "dark"
)

// Preferences holds the user's UI settings.
type Preferences struct {
	Theme     string   `yaml:"theme"`
	Languages []string `yaml:"languages"`
}

// Store reads and writes the preferences document.
type Store struct {
	mu    sync.Mutex
	store storage.Store
}

// New returns a preferences store over the given storage.
func New(store storage.Store) *Store {
	return &Store{store: store}
}

// Defaults returns the out-of-the-box preferences: dark theme, every bundled
// language enabled.
func Defaults() Preferences {
	return Preferences{
		Theme:     DefaultTheme,
		Languages: staticdata.Languages(),
	}
}

// Load returns the persisted preferences. Missing or unreadable documents
// and empty fields resolve to defaults, never an error.
func (s *Store) Load() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save persists p wholesale.
func (s *Store) Save(p Preferences) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(p)
}

// SetTheme updates only the theme, keeping the other fields.
func (s *Store) SetTheme(theme string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	p.Theme = theme
	return s.persist(p)
}

// SetLanguages updates only the enabled languages, keeping the other fields.
func (s *Store) SetLanguages(languages []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	p.Languages = languages
	return s.persist(p)
}

func (s *Store) load() Preferences {
	defaults := Defaults()

	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		slog.Warn("Failed to read preferences", "error", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		slog.Warn("Discarding unreadable preferences document", "error", err)
		return defaults
	}

	if p.Theme == "" {
		p.Theme = defaults.Theme
	}
	if len(p.Languages) == 0 {
		p.Languages = defaults.Languages
	}
	return p
}

func (s *Store) persist(p Preferences) bool {
	data, err := yaml.Marshal(p)
	if err != nil {
		slog.Warn("Failed to marshal preferences", "error", err)
		return false
	}
	if err := s.store.Set(storageKey, data); err != nil {
		slog.Warn("Failed to write preferences", "error", err)
		return false
	}
	return true
}
