// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vinera/vinera/internal/locale"
	"github.com/vinera/vinera/internal/platform/constants"
	"github.com/vinera/vinera/internal/reference"
	"github.com/vinera/vinera/pkg/ttlcache"
)

// OptionLabeler supplies the localized labels of a reference dimension.
// Satisfied by [reference.Resolver].
type OptionLabeler interface {
	Labels(dimension reference.Dimension, language string) []string
}

// Options carries one display list per filter dimension. Dimensions that
// could not be loaded are present as empty lists so the client can always
// render every menu.
type Options struct {
	Grapes          []string `json:"grapes"`
	Countries       []string `json:"countries"`
	Regions         []string `json:"regions"`
	WineTypes       []string `json:"wine_types"`
	Colors          []string `json:"colors"`
	Sweetness       []string `json:"sweetness"`
	ProductionTypes []string `json:"production_types"`
	AlcoholLevels   []string `json:"alcohol_levels"`
	PriceRanges     []string `json:"price_ranges"`
	Units           []string `json:"units"`
}

// OptionService assembles the per-language filter option lists behind a
// TTL cache, so the filter screen never hammers the catalog with distinct
// scans on every open.
type OptionService struct {
	repo     OptionRepository
	resolver OptionLabeler
	cache    *ttlcache.Cache[[]string]
	logger   *slog.Logger
}

// NewOptionService constructs an [OptionService] with the standard
// option TTL.
func NewOptionService(repo OptionRepository, resolver OptionLabeler, logger *slog.Logger) *OptionService {
	return &OptionService{
		repo:     repo,
		resolver: resolver,
		cache:    ttlcache.New[[]string](constants.FilterOptionTTL),
		logger:   logger,
	}
}

// optionJob binds one cacheable dimension to its fetch and its slot in the
// assembled result.
type optionJob struct {
	dimension string
	fetch     func(context.Context) ([]string, error)
	assign    func(values []string)
}

/*
Options assembles every filter option list for one language.

Description: Dimensions are loaded concurrently through the TTL cache; a
cache hit inside the freshness window costs no query at all. The assembly
never fails as a whole — a dimension whose load errors is logged and
delivered as an empty list, because one broken menu must not blank the
entire filter screen. Color and wine type labels come from the in-memory
reference resolver rather than the cache.

Parameters:
  - ctx: context.Context
  - language: string (normalized internally)

Returns:
  - *Options: Fully populated option lists, empty slices for failed loads
*/
func (service *OptionService) Options(ctx context.Context, language string) *Options {
	language = locale.Normalize(language)
	options := &Options{}

	jobs := []optionJob{
		{"grapes", service.repo.ListGrapes, func(values []string) { options.Grapes = values }},
		{"countries", service.repo.ListCountries, func(values []string) { options.Countries = values }},
		{"regions", service.repo.ListRegions, func(values []string) { options.Regions = values }},
		{"sweetness", service.repo.ListSweetnessLevels, func(values []string) { options.Sweetness = values }},
		{"production_types", service.repo.ListProductionTypes, func(values []string) { options.ProductionTypes = values }},
		{"alcohol_levels", service.repo.ListAlcoholLevels, func(values []string) { options.AlcoholLevels = values }},
		{"price_ranges", service.repo.ListPriceRanges, func(values []string) { options.PriceRanges = values }},
		{"units", service.repo.ListUnits, func(values []string) { options.Units = values }},
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job optionJob) {
			defer wg.Done()

			values, err := service.cache.GetOrFetch(ctx, job.dimension+"_"+language, job.fetch)
			if err != nil {
				service.logger.Error("filter_options_dimension_failed",
					slog.String("dimension", job.dimension),
					slog.String("language", language),
					slog.Any("error", err),
				)
				job.assign([]string{})
				return
			}
			job.assign(values)
		}(job)
	}
	wg.Wait()

	options.Colors = service.localizedLabels(reference.DimensionColor, language)
	options.WineTypes = service.localizedLabels(reference.DimensionWineType, language)

	return options
}

// ClearCache drops every cached option list. The next request per
// dimension and language refetches from the catalog.
func (service *OptionService) ClearCache() {
	service.cache.Clear()
	service.logger.Info("filter_options_cache_cleared")
}

func (service *OptionService) localizedLabels(dimension reference.Dimension, language string) []string {
	labels := service.resolver.Labels(dimension, language)
	if labels == nil {
		service.logger.Warn("filter_options_resolver_not_ready",
			slog.String("dimension", string(dimension)),
		)
		return []string{}
	}
	return labels
}
