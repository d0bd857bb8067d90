// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package wine

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/locale"
	"github.com/vinera/vinera/pkg/pointer"
)

// unknownRegion is the display fallback when a wine carries no region name
// in any language.
const unknownRegion = "Unknown Region"

// Service assembles wine listings.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the wine listing service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
FetchWines assembles the filtered, localized wine listing.

Description: The grape and producer dimensions cannot be answered by the
catalog view, so they run first as junction-table queries; an empty ID set
from either short-circuits the whole listing to empty without touching the
view. The surviving ID intersection narrows the primary query. Grape
attribution loads in one batch afterwards and degrades to wines without
grape names if it fails. The listing as a whole fails soft: any primary
query error is logged and delivered as an empty result, because the swipe
deck must keep rendering through a catalog outage.

Parameters:
  - ctx: context.Context
  - backendFilter: filter.BackendFilter (canonical, from the translator)
  - language: string (display language, normalized internally)
  - limit: int (<= 0 for unbounded)
  - offset: int

Returns:
  - []Wine: Localized listing entries, never nil
  - int: Total match count across all pages
*/
func (service *Service) FetchWines(ctx context.Context, backendFilter filter.BackendFilter, language string, limit, offset int) ([]Wine, int) {
	language = locale.Normalize(language)

	wineIDs, constrained, err := service.junctionWineIDs(ctx, backendFilter)
	if err != nil {
		service.logger.Error("wine_listing_failed",
			slog.String("stage", "junction"),
			slog.Any("error", err),
		)
		return []Wine{}, 0
	}
	if constrained && len(wineIDs) == 0 {
		// A junction dimension matched nothing: the intersection is empty
		// by definition, skip the view query entirely.
		return []Wine{}, 0
	}
	if !constrained {
		wineIDs = nil
	}

	rows, totalCount, err := service.repo.FetchWines(ctx, backendFilter, wineIDs, limit, offset)
	if err != nil {
		service.logger.Error("wine_listing_failed",
			slog.String("stage", "view"),
			slog.Any("error", err),
		)
		return []Wine{}, 0
	}
	if len(rows) == 0 {
		return []Wine{}, totalCount
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	grapes, err := service.repo.GrapesByWineIDs(ctx, ids)
	if err != nil {
		// Degrade: the listing ships without grape names rather than empty.
		service.logger.Warn("wine_grape_attribution_failed",
			slog.Int("wines", len(ids)),
			slog.Any("error", err),
		)
		grapes = nil
	}

	wines := make([]Wine, 0, len(rows))
	for _, row := range rows {
		wines = append(wines, buildWine(row, grapes[row.ID], language))
	}

	return wines, totalCount
}

// ResolveRef resolves a client-facing wine reference to the catalog ID.
// Unlike listings this fails loud: addressing a missing wine is a client
// error, not a degraded experience.
func (service *Service) ResolveRef(ctx context.Context, externalRef string) (int64, error) {
	return service.repo.WineIDByRef(ctx, externalRef)
}

// junctionWineIDs resolves the grape and producer dimensions to a wine ID
// intersection. constrained reports whether any junction dimension was
// present; an empty constrained set means the listing is empty.
func (service *Service) junctionWineIDs(ctx context.Context, backendFilter filter.BackendFilter) (ids []int64, constrained bool, err error) {
	var sets [][]int64

	if len(backendFilter.Grapes) > 0 {
		grapeIDs, err := service.repo.WineIDsByGrapes(ctx, backendFilter.Grapes)
		if err != nil {
			return nil, true, err
		}
		if len(grapeIDs) == 0 {
			return []int64{}, true, nil
		}
		sets = append(sets, grapeIDs)
	}

	if len(backendFilter.Producers) > 0 {
		producerIDs, err := service.repo.WineIDsByProducers(ctx, backendFilter.Producers)
		if err != nil {
			return nil, true, err
		}
		if len(producerIDs) == 0 {
			return []int64{}, true, nil
		}
		sets = append(sets, producerIDs)
	}

	if len(sets) == 0 {
		return nil, false, nil
	}

	return intersect(sets), true, nil
}

// intersect returns the IDs present in every set, preserving the order of
// the first.
func intersect(sets [][]int64) []int64 {
	result := sets[0]
	for _, set := range sets[1:] {
		members := make(map[int64]struct{}, len(set))
		for _, id := range set {
			members[id] = struct{}{}
		}

		var next []int64
		for _, id := range result {
			if _, ok := members[id]; ok {
				next = append(next, id)
			}
		}
		result = next
	}

	if result == nil {
		return []int64{}
	}
	return result
}

// # Row Transformation

// buildWine localizes one view row into its client shape.
func buildWine(row *Row, grapes []string, language string) Wine {
	return Wine{
		ID:      row.ID,
		Ref:     row.ExternalRef,
		Name:    row.Name,
		Year:    row.Year,
		Region:  regionName(row, language),
		Country: pointer.Val(row.CountryCode),
		Grapes:  strings.Join(grapes, ", "),
		Tags:    buildTags(row, language),
	}
}

// regionName picks the localized region name, falling back to the default
// name and finally to the unknown-region placeholder.
func regionName(row *Row, language string) string {
	if name := row.RegionNames[language]; name != "" {
		return name
	}
	if name := pointer.Val(row.RegionDefaultName); name != "" {
		return name
	}
	return unknownRegion
}

// buildTags renders the characteristic tags in their fixed display order.
// A characteristic the wine does not carry contributes no tag.
func buildTags(row *Row, language string) []string {
	tags := make([]string, 0, 7)

	if tag, ok := localizedTag(row.WineType, row.WineTypeLabels, language); ok {
		tags = append(tags, tag)
	}
	if tag, ok := localizedTag(row.Color, row.ColorLabels, language); ok {
		tags = append(tags, tag)
	}
	if tag, ok := localizedTag(row.Sweetness, row.SweetnessLabels, language); ok {
		tags = append(tags, tag)
	}
	if tag, ok := localizedTag(row.AlcoholLevel, row.AlcoholLabels, language); ok {
		if row.AlcoholMin != nil && row.AlcoholMax != nil {
			tag += " (" + formatRange(*row.AlcoholMin, *row.AlcoholMax) + "% vol)"
		}
		tags = append(tags, tag)
	}
	if tag, ok := localizedTag(row.ProductionType, row.ProductionTypeLabels, language); ok {
		tags = append(tags, tag)
	}
	if tag, ok := localizedTag(row.PriceRange, row.PriceRangeLabels, language); ok {
		if row.PriceMin != nil && row.PriceMax != nil {
			tag += " (" + formatRange(*row.PriceMin, *row.PriceMax) + " €)"
		}
		tags = append(tags, tag)
	}
	if row.UnitVolume != nil {
		tags = append(tags, filter.FormatUnitVolume(*row.UnitVolume))
	}

	return tags
}

// localizedTag picks the label for one characteristic from its per-row
// translation map, falling back to the canonical key when the language is
// missing from the map.
func localizedTag(canonical *string, labels map[string]string, language string) (string, bool) {
	if canonical == nil || *canonical == "" {
		return "", false
	}
	if label := labels[language]; label != "" {
		return label, true
	}
	return *canonical, true
}

// formatRange renders a numeric range without trailing zeros, e.g. "11.5-14".
func formatRange(low, high float64) string {
	return strconv.FormatFloat(low, 'f', -1, 64) + "-" + strconv.FormatFloat(high, 'f', -1, 64)
}
