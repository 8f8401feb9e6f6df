// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"time"
)

// Options selects and configures a cache backend.
type Options struct {
	// RedisURL selects the Redis backend when non-empty; otherwise the
	// in-process memory backend is used.
	RedisURL string

	// Prefix namespaces Redis keys. Ignored by the memory backend.
	Prefix string

	// DefaultTTL applies when Set is called with a zero TTL.
	DefaultTTL time.Duration
}

// New builds the cache backend described by opts.
func New(opts Options) (Cacher, error) {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = 5 * time.Minute
	}

	if opts.RedisURL != "" {
		c, err := NewRedis(opts.RedisURL, opts.Prefix, opts.DefaultTTL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return c, nil
	}
	return NewMemory(opts.DefaultTTL), nil
}
