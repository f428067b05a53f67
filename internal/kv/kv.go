// Package kv provides whole-value key-value stores. A store only knows how to
// get and set a complete string value under a key; there are no partial
// updates and no transactions. Callers that need read-modify-write build it
// on top of Get and Set.
package kv

import "context"

// Store is a whole-value key-value store.
type Store interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value stored under key in a single write.
	Set(ctx context.Context, key, value string) error
}
