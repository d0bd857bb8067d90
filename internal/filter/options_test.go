// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/reference"
)

// fakeOptionRepository serves canned option lists and counts fetches so the
// tests can observe cache behavior.
type fakeOptionRepository struct {
	calls     int64
	grapesErr error
}

func (f *fakeOptionRepository) list(values ...string) ([]string, error) {
	atomic.AddInt64(&f.calls, 1)
	return values, nil
}

func (f *fakeOptionRepository) ListGrapes(context.Context) ([]string, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.grapesErr != nil {
		return nil, f.grapesErr
	}
	return []string{"Riesling", "Syrah"}, nil
}

func (f *fakeOptionRepository) ListCountries(context.Context) ([]string, error) {
	return f.list("DE", "FR")
}

func (f *fakeOptionRepository) ListRegions(context.Context) ([]string, error) {
	return f.list("Mosel", "Rhône")
}

func (f *fakeOptionRepository) ListSweetnessLevels(context.Context) ([]string, error) {
	return f.list("dry", "sweet")
}

func (f *fakeOptionRepository) ListAlcoholLevels(context.Context) ([]string, error) {
	return f.list("light", "strong")
}

func (f *fakeOptionRepository) ListProductionTypes(context.Context) ([]string, error) {
	return f.list("conventional", "organic")
}

func (f *fakeOptionRepository) ListPriceRanges(context.Context) ([]string, error) {
	return f.list("budget", "premium")
}

func (f *fakeOptionRepository) ListUnits(context.Context) ([]string, error) {
	return f.list("0.75L", "1.50L")
}

// fakeLabeler serves resolver labels, or nothing when cold.
type fakeLabeler struct {
	cold bool
}

func (f *fakeLabeler) Labels(dimension reference.Dimension, language string) []string {
	if f.cold {
		return nil
	}
	if dimension == reference.DimensionColor {
		return []string{"Rot", "Weiß"}
	}
	return []string{"Schaumwein", "Stillwein"}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestOptionService_AssemblesAllDimensions verifies that one call populates
every menu, with colors and wine types coming from the resolver.
*/
func TestOptionService_AssemblesAllDimensions(t *testing.T) {
	repo := &fakeOptionRepository{}
	service := filter.NewOptionService(repo, &fakeLabeler{}, discardLogger())

	options := service.Options(context.Background(), "de")

	assert.Equal(t, []string{"Riesling", "Syrah"}, options.Grapes)
	assert.Equal(t, []string{"DE", "FR"}, options.Countries)
	assert.Equal(t, []string{"Mosel", "Rhône"}, options.Regions)
	assert.Equal(t, []string{"dry", "sweet"}, options.Sweetness)
	assert.Equal(t, []string{"conventional", "organic"}, options.ProductionTypes)
	assert.Equal(t, []string{"light", "strong"}, options.AlcoholLevels)
	assert.Equal(t, []string{"budget", "premium"}, options.PriceRanges)
	assert.Equal(t, []string{"0.75L", "1.50L"}, options.Units)
	assert.Equal(t, []string{"Rot", "Weiß"}, options.Colors)
	assert.Equal(t, []string{"Schaumwein", "Stillwein"}, options.WineTypes)
}

/*
TestOptionService_CachesWithinWindow verifies that a second assembly for the
same language performs no backend fetches, while a different language misses
the cache, and that ClearCache forces a refetch.
*/
func TestOptionService_CachesWithinWindow(t *testing.T) {
	repo := &fakeOptionRepository{}
	service := filter.NewOptionService(repo, &fakeLabeler{}, discardLogger())

	service.Options(context.Background(), "de")
	fetched := atomic.LoadInt64(&repo.calls)
	assert.Equal(t, int64(8), fetched)

	// Same language: served entirely from cache.
	service.Options(context.Background(), "de")
	assert.Equal(t, fetched, atomic.LoadInt64(&repo.calls))

	// Different language: separate cache keys, fresh fetches.
	service.Options(context.Background(), "fr")
	assert.Equal(t, fetched*2, atomic.LoadInt64(&repo.calls))

	service.ClearCache()
	service.Options(context.Background(), "de")
	assert.Equal(t, fetched*3, atomic.LoadInt64(&repo.calls))
}

/*
TestOptionService_DegradesFailedDimension verifies that one failing dimension
arrives as an empty list without disturbing the others, and that the failure
is not memoized — the next assembly retries it.
*/
func TestOptionService_DegradesFailedDimension(t *testing.T) {
	repo := &fakeOptionRepository{grapesErr: assert.AnError}
	service := filter.NewOptionService(repo, &fakeLabeler{}, discardLogger())

	options := service.Options(context.Background(), "en")
	assert.Empty(t, options.Grapes)
	assert.NotNil(t, options.Grapes)
	assert.Equal(t, []string{"DE", "FR"}, options.Countries)

	// Backend recovers: the cached failure must not stick.
	repo.grapesErr = nil
	options = service.Options(context.Background(), "en")
	assert.Equal(t, []string{"Riesling", "Syrah"}, options.Grapes)
}

/*
TestOptionService_ColdResolver verifies that an uninitialized resolver yields
empty color and wine type menus instead of nils.
*/
func TestOptionService_ColdResolver(t *testing.T) {
	service := filter.NewOptionService(&fakeOptionRepository{}, &fakeLabeler{cold: true}, discardLogger())

	options := service.Options(context.Background(), "en")
	assert.NotNil(t, options.Colors)
	assert.Empty(t, options.Colors)
	assert.NotNil(t, options.WineTypes)
	assert.Empty(t, options.WineTypes)
}
