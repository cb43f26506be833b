// Package metadata is a small key/value table in the local SQLite store.
// The session store keeps the admin token and the serialized user here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key. Get returns "" for a
// missing key; callers treat an empty value as absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
