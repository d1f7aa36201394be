// Package kv provides the opaque key-value persistence behind the
// application state mirror. Values are opaque byte slices (JSON in
// practice); keys are plain strings. The state store treats every backend
// identically, so storage drivers are interchangeable via config.
package kv

import (
	"context"
)

// Store is a string-keyed blob store with get/set/remove semantics.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent;
	// absence is not an error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
