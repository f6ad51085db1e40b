// Package cache implements a best-effort expiring cache on top of the
// storage port. Entries carry their own expiry timestamp; an expired entry
// is treated as absent on read and overwritten on the next write. Caching is
// strictly a performance optimization, so every persistence failure degrades
// to a cache miss instead of surfacing to the caller.
package cache

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/tkarvinen/moviedeck/internal/storage"
)

const (
	// DefaultListingTTL applies to search and listing results, which may
	// change upstream.
	DefaultListingTTL = time.Hour
	// DefaultDetailTTL applies to single-movie detail lookups, which
	// change far less often.
	DefaultDetailTTL = 24 * time.Hour

	keyPrefix = "movie_cache_"
)

// envelope is the persisted form of one cache entry. Expiry is stored as
// unix milliseconds.
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	ExpiresAt int64           `json:"expiresAt"`
}

// Cache is an expiring key/value cache over a storage.Store.
type Cache struct {
	store storage.Store
	now   func() time.Time
}

// New returns a cache backed by store.
func New(store storage.Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// ListingTTL returns the configured TTL for search/listing entries.
func ListingTTL() time.Duration {
	return ttlFromConfig("cache.listing_ttl", DefaultListingTTL)
}

// DetailTTL returns the configured TTL for detail entries.
func DetailTTL() time.Duration {
	return ttlFromConfig("cache.detail_ttl", DefaultDetailTTL)
}

func ttlFromConfig(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	if raw == "" {
		return fallback
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid cache TTL, using default", "key", key, "value", raw, "error", err)
		return fallback
	}
	return ttl
}

// Get returns the cached value under key. The second return is false when
// the entry is missing, expired, or unreadable for any reason.
func Get[T any](c *Cache, key string) (T, bool) {
	var zero T

	data, ok, err := c.store.Get(keyPrefix + key)
	if err != nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var entry envelope
	if err := json.Unmarshal(data, &entry); err != nil {
		slog.Warn("Discarding unreadable cache entry", "key", key, "error", err)
		return zero, false
	}

	if c.now().UnixMilli() >= entry.ExpiresAt {
		slog.Debug("Cache entry expired", "key", key)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(entry.Payload, &value); err != nil {
		slog.Warn("Discarding unreadable cache payload", "key", key, "error", err)
		return zero, false
	}
	return value, true
}

// Set stores value under key with the given TTL, unconditionally replacing
// any prior entry. Failures are logged and swallowed.
func Set[T any](c *Cache, key string, value T, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to marshal value for caching", "key", key, "error", err)
		return
	}

	entry := envelope{
		Payload:   payload,
		ExpiresAt: c.now().Add(ttl).UnixMilli(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		slog.Warn("Failed to marshal cache entry", "key", key, "error", err)
		return
	}

	if err := c.store.Set(keyPrefix+key, data); err != nil {
		slog.Warn("Failed to write cache entry", "key", key, "error", err)
	}
}

// Clear drops every cache entry. User-visible state (favorites,
// preferences) lives outside the cache prefix and is untouched.
func (c *Cache) Clear() error {
	return c.store.DeletePrefix(keyPrefix)
}
