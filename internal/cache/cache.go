// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the caching layer behind the public site.
// Values are []byte so in-memory and Redis backends are interchangeable.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cacher is implemented by all cache backends. Implementations must be
// safe for concurrent use.
type Cacher interface {
	// Get returns the value for key, or ErrMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero TTL uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry this cache owns.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Error is a sentinel cache error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrMiss means the key was not found or has expired.
	ErrMiss Error = "cache miss"

	// ErrClosed means the cache has been closed.
	ErrClosed Error = "cache closed"
)

// Stats holds hit counters for a cache backend.
type Stats struct {
	Hits   int64
	Misses int64
	Sets   int64
	Items  int
}

// StatsProvider is implemented by backends that track statistics.
type StatsProvider interface {
	Stats() Stats
}

// GetJSON fetches key and unmarshals it into dest.
func GetJSON(ctx context.Context, c Cacher, key string, dest any) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, c Cacher, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}
