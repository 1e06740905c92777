// Package metadata stores opaque device-local key/value pairs.
package metadata

import (
	"context"
)

// Repository is a byte-oriented key/value table.
//
// Get returns (nil, nil) for an absent key; Delete of an absent key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
