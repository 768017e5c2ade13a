// Package metadata is the client's local string key/value store. It holds
// the per-attempt draft slots and the last-payment marker.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// List returns the pairs whose key starts with prefix ("" for all).
	List(ctx context.Context, prefix string) (map[string]string, error)
	Clear(ctx context.Context) error
}
