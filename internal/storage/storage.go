// Package storage defines the local persistence port shared by the cache,
// favorites and preference stores, with a durable SQLite implementation and
// an in-memory one for tests.
package storage

// Store is a document-oriented key/value port. Every consumer keeps its
// whole state in one or more named documents; reads and writes are atomic at
// document granularity, which is the only guarantee the callers rely on.
type Store interface {
	// Get returns the document stored under key. ok is false when no
	// document exists.
	Get(key string) (data []byte, ok bool, err error)
	// Set stores data under key, replacing any prior document.
	Set(key string, data []byte) error
	// Delete removes the document under key. Deleting a missing document
	// is not an error.
	Delete(key string) error
	// DeletePrefix removes every document whose key starts with prefix.
	DeletePrefix(prefix string) error
	// Close releases the underlying resources.
	Close() error
}
