// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package ttlcache provides a small in-process cache with fetch-through reads
and a fixed time-to-live per entry.

It backs the filter-option menus: option lists change rarely, so each
(dimension, language) key is fetched from the database at most once per TTL
window and served from memory in between.

Semantics:

  - A live entry is returned without invoking the fetch function.
  - An expired or missing entry triggers exactly one fetch; concurrent
    callers for the same key share that single in-flight fetch.
  - A failed fetch stores nothing — the next call retries from scratch.
  - Clear removes every entry unconditionally.
*/
package ttlcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry is a cached value plus the time it was fetched.
type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Cache is a TTL-bound, fetch-through cache keyed by string.
//
// The zero value is not usable; construct with [New].
type Cache[T any] struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry[T]

	// flight coalesces concurrent fetches for the same key.
	flight singleflight.Group

	// now is swapped out in tests to drive TTL expiry deterministically.
	now func() time.Time
}

// New constructs an empty cache whose entries stay live for ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// GetOrFetch returns the live value for key, fetching it if absent or expired.
//
// The fetch function is invoked at most once per key per TTL window, also
// under concurrent access: same-key callers wait on the one in-flight fetch
// and receive its result. Fetch errors propagate to every waiting caller and
// are never cached.
func (cache *Cache[T]) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {

	// Fast path: serve a live entry without touching the fetch function.
	if value, ok := cache.lookup(key); ok {
		return value, nil
	}

	// Slow path: coalesce concurrent misses for the same key into one fetch.
	result, err, _ := cache.flight.Do(key, func() (any, error) {

		// A previous flight may have populated the entry while we waited.
		if value, ok := cache.lookup(key); ok {
			return value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		cache.mu.Lock()
		cache.entries[key] = entry[T]{value: value, fetchedAt: cache.now()}
		cache.mu.Unlock()

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Clear removes all entries and their timestamps unconditionally.
//
// It exists for explicit invalidation (reference data republished) and for
// test resets; TTL expiry itself is continuous and needs no Clear calls.
func (cache *Cache[T]) Clear() {
	cache.mu.Lock()
	cache.entries = make(map[string]entry[T])
	cache.mu.Unlock()
}

// Len reports the number of stored entries, live or expired.
func (cache *Cache[T]) Len() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return len(cache.entries)
}

// lookup returns the value for key if a live entry exists.
func (cache *Cache[T]) lookup(key string) (T, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	stored, ok := cache.entries[key]
	if !ok {
		var zero T
		return zero, false
	}

	// Expired entries are treated as absent; the stale value is dropped on
	// the next successful fetch rather than eagerly evicted.
	if cache.now().Sub(stored.fetchedAt) >= cache.ttl {
		var zero T
		return zero, false
	}

	return stored.value, true
}
