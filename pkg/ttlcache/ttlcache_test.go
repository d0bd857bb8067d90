// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package ttlcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestCache_FetchOncePerWindow verifies the core cache law: two reads of the
same key within the TTL invoke the fetch function exactly once.
*/
func TestCache_FetchOncePerWindow(t *testing.T) {
	cache := New[[]string](5 * time.Minute)
	fetchCount := 0

	fetch := func(context.Context) ([]string, error) {
		fetchCount++
		return []string{"France", "Italy"}, nil
	}

	first, err := cache.GetOrFetch(context.Background(), "countries_de", fetch)
	require.NoError(t, err)

	second, err := cache.GetOrFetch(context.Background(), "countries_de", fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, fetchCount)
	assert.Equal(t, first, second)
}

/*
TestCache_RefetchAfterExpiry verifies that a read past the TTL window issues
a second fetch.
*/
func TestCache_RefetchAfterExpiry(t *testing.T) {
	cache := New[[]string](5 * time.Minute)

	// Drive the clock manually instead of sleeping.
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	fetchCount := 0
	fetch := func(context.Context) ([]string, error) {
		fetchCount++
		return []string{"trocken"}, nil
	}

	_, err := cache.GetOrFetch(context.Background(), "sweetness_de", fetch)
	require.NoError(t, err)

	// Still inside the window: served from memory.
	current = current.Add(4 * time.Minute)
	_, err = cache.GetOrFetch(context.Background(), "sweetness_de", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCount)

	// Past the window: refetched.
	current = current.Add(2 * time.Minute)
	_, err = cache.GetOrFetch(context.Background(), "sweetness_de", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetchCount)
}

/*
TestCache_ErrorNotCached verifies that a failed fetch poisons nothing: the
error propagates and the next call retries from scratch.
*/
func TestCache_ErrorNotCached(t *testing.T) {
	cache := New[[]string](5 * time.Minute)
	fetchCount := 0

	failing := errors.New("option table unreachable")
	fetch := func(context.Context) ([]string, error) {
		fetchCount++
		if fetchCount == 1 {
			return nil, failing
		}
		return []string{"red"}, nil
	}

	_, err := cache.GetOrFetch(context.Background(), "colors_en", fetch)
	assert.ErrorIs(t, err, failing)
	assert.Zero(t, cache.Len())

	value, err := cache.GetOrFetch(context.Background(), "colors_en", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, value)
	assert.Equal(t, 2, fetchCount)
}

/*
TestCache_Clear verifies that Clear drops every entry so the next read
refetches even inside the TTL window.
*/
func TestCache_Clear(t *testing.T) {
	cache := New[[]string](5 * time.Minute)
	fetchCount := 0

	fetch := func(context.Context) ([]string, error) {
		fetchCount++
		return []string{"0.75L"}, nil
	}

	_, err := cache.GetOrFetch(context.Background(), "units_en", fetch)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())

	_, err = cache.GetOrFetch(context.Background(), "units_en", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetchCount)
}

/*
TestCache_IndependentKeys verifies that distinct keys fetch independently and
do not share entries.
*/
func TestCache_IndependentKeys(t *testing.T) {
	cache := New[[]string](5 * time.Minute)
	fetched := map[string]int{}

	fetchFor := func(key string, value []string) func(context.Context) ([]string, error) {
		return func(context.Context) ([]string, error) {
			fetched[key]++
			return value, nil
		}
	}

	de, err := cache.GetOrFetch(context.Background(), "countries_de", fetchFor("countries_de", []string{"Frankreich"}))
	require.NoError(t, err)

	en, err := cache.GetOrFetch(context.Background(), "countries_en", fetchFor("countries_en", []string{"France"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Frankreich"}, de)
	assert.Equal(t, []string{"France"}, en)
	assert.Equal(t, 1, fetched["countries_de"])
	assert.Equal(t, 1, fetched["countries_en"])
}

/*
TestCache_ConcurrentSameKey verifies that simultaneous misses for one key
converge on a single fetch.
*/
func TestCache_ConcurrentSameKey(t *testing.T) {
	cache := New[[]string](5 * time.Minute)

	var fetchCount int
	var countMu sync.Mutex

	fetch := func(context.Context) ([]string, error) {
		countMu.Lock()
		fetchCount++
		countMu.Unlock()

		// Hold the flight open long enough for the other goroutines to pile up.
		time.Sleep(20 * time.Millisecond)
		return []string{"Mosel"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := cache.GetOrFetch(context.Background(), "regions_de", fetch)
			assert.NoError(t, err)
			assert.Equal(t, []string{"Mosel"}, value)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fetchCount)
}
