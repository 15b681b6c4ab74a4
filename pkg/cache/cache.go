// Package cache stores rendered chart artifacts.
//
// Rendering is deterministic: the same definition, canvas size, and output
// options always give the same bytes. The pipeline therefore keys artifacts
// by a hash of the definition plus those options and can skip layout and
// drawing entirely on a hit.
//
// Backends:
//
//   - [NullCache]: caching disabled (the default)
//   - [MemoryCache]: bounded in-process cache for the HTTP service
//   - [FileCache]: on-disk cache for repeated CLI runs
//   - [RedisCache]: shared cache for several service replicas
//
// Keys come from a [Keyer]; [ScopedKeyer] prefixes them, which the service
// uses to keep artifacts of different releases apart.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 24 * time.Hour

// Cache is a byte store with expiry. Get reports a miss with ok == false
// and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache stores nothing; every Get misses.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
