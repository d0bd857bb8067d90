// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package reference_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinera/vinera/internal/reference"
)

// fakeRepository counts fetches and can be told to fail.
type fakeRepository struct {
	colors    []*reference.Entry
	wineTypes []*reference.Entry

	colorCalls int32
	typeCalls  int32
	failWith   error
}

func (f *fakeRepository) ListColors(context.Context) ([]*reference.Entry, error) {
	atomic.AddInt32(&f.colorCalls, 1)
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.colors, nil
}

func (f *fakeRepository) ListWineTypes(context.Context) ([]*reference.Entry, error) {
	atomic.AddInt32(&f.typeCalls, 1)
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.wineTypes, nil
}

func testRepository() *fakeRepository {
	return &fakeRepository{
		colors: []*reference.Entry{
			{CanonicalName: "red", Translations: map[string]string{"de": "Rot", "en": "Red", "fr": "Rouge", "it": "Rosso"}},
			{CanonicalName: "white", Translations: map[string]string{"de": "Weiß", "en": "White"}},
		},
		wineTypes: []*reference.Entry{
			{CanonicalName: "sparkling", Translations: map[string]string{"de": "Schaumwein", "en": "Sparkling"}},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestResolver_ResolveAcrossLanguages verifies that a label resolves regardless
of which supported language (or the canonical name itself) produced it, and
regardless of casing.
*/
func TestResolver_ResolveAcrossLanguages(t *testing.T) {
	repo := testRepository()
	resolver := reference.NewResolver(repo, testLogger())
	require.NoError(t, resolver.Initialize(context.Background()))

	tests := []struct {
		name  string
		label string
	}{
		{"german_label", "rot"},
		{"canonical_upper", "RED"},
		{"canonical", "red"},
		{"french_label", "Rouge"},
		{"padded", "  Rot  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, ok := resolver.Resolve(reference.DimensionColor, tt.label)
			assert.True(t, ok)
			assert.Equal(t, "red", canonical)
		})
	}
}

/*
TestResolver_ResolveMiss verifies that unknown labels return not-found
without error — the caller drops them from the filter.
*/
func TestResolver_ResolveMiss(t *testing.T) {
	resolver := reference.NewResolver(testRepository(), testLogger())
	require.NoError(t, resolver.Initialize(context.Background()))

	canonical, ok := resolver.Resolve(reference.DimensionColor, "orange")
	assert.False(t, ok)
	assert.Empty(t, canonical)

	// Dimensions do not bleed into each other.
	_, ok = resolver.Resolve(reference.DimensionWineType, "rot")
	assert.False(t, ok)

	// Blank input is a miss, never a panic.
	_, ok = resolver.Resolve(reference.DimensionColor, "   ")
	assert.False(t, ok)
}

/*
TestResolver_InitializeIdempotent verifies that a second Initialize performs
no additional backend fetches and leaves the index unchanged.
*/
func TestResolver_InitializeIdempotent(t *testing.T) {
	repo := testRepository()
	resolver := reference.NewResolver(repo, testLogger())

	require.NoError(t, resolver.Initialize(context.Background()))
	require.NoError(t, resolver.Initialize(context.Background()))

	assert.Equal(t, int32(1), repo.colorCalls)
	assert.Equal(t, int32(1), repo.typeCalls)

	canonical, ok := resolver.Resolve(reference.DimensionWineType, "schaumwein")
	assert.True(t, ok)
	assert.Equal(t, "sparkling", canonical)
}

/*
TestResolver_InitializeFailureRetries verifies that a failed load leaves the
resolver empty and retryable: the error propagates, lookups miss, and the
next Initialize loads cleanly.
*/
func TestResolver_InitializeFailureRetries(t *testing.T) {
	repo := testRepository()
	repo.failWith = errors.New("reference tables unreachable")

	resolver := reference.NewResolver(repo, testLogger())

	err := resolver.Initialize(context.Background())
	require.Error(t, err)
	assert.False(t, resolver.Ready())

	_, ok := resolver.Resolve(reference.DimensionColor, "rot")
	assert.False(t, ok)

	// Backend recovers; the retry succeeds.
	repo.failWith = nil
	require.NoError(t, resolver.Initialize(context.Background()))
	assert.True(t, resolver.Ready())

	canonical, ok := resolver.Resolve(reference.DimensionColor, "rot")
	assert.True(t, ok)
	assert.Equal(t, "red", canonical)
}

/*
TestResolver_ConcurrentInitialize verifies the single-flight guarantee:
racing callers end with a fully resolved index from one shared load.
*/
func TestResolver_ConcurrentInitialize(t *testing.T) {
	repo := testRepository()
	resolver := reference.NewResolver(repo, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, resolver.Initialize(context.Background()))
		}()
	}
	wg.Wait()

	assert.True(t, resolver.Ready())
	assert.Equal(t, int32(1), repo.colorCalls)
	assert.Equal(t, int32(1), repo.typeCalls)
}

/*
TestResolver_Labels verifies localized option labels with canonical fallback.
*/
func TestResolver_Labels(t *testing.T) {
	resolver := reference.NewResolver(testRepository(), testLogger())
	require.NoError(t, resolver.Initialize(context.Background()))

	assert.Equal(t, []string{"Rot", "Weiß"}, resolver.Labels(reference.DimensionColor, "de"))

	// "white" has no italian translation: canonical name fills the gap.
	assert.Equal(t, []string{"Rosso", "white"}, resolver.Labels(reference.DimensionColor, "it"))

	// Uninitialized resolver yields nothing.
	cold := reference.NewResolver(testRepository(), testLogger())
	assert.Nil(t, cold.Labels(reference.DimensionColor, "de"))
}
