// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import (
	"log/slog"
	"strings"

	"github.com/vinera/vinera/internal/reference"
	"github.com/vinera/vinera/pkg/slice"
)

// LabelResolver resolves a localized label to its canonical reference key.
// Satisfied by [reference.Resolver].
type LabelResolver interface {
	Resolve(dimension reference.Dimension, label string) (string, bool)
}

// Translator converts user-facing selections into backend filters.
type Translator struct {
	resolver LabelResolver
	logger   *slog.Logger
}

// NewTranslator constructs a [Translator] on top of the reference resolver.
func NewTranslator(resolver LabelResolver, logger *slog.Logger) *Translator {
	return &Translator{
		resolver: resolver,
		logger:   logger,
	}
}

/*
Translate builds the sparse [BackendFilter] for a [Selection].

Description: Every dimension is sanitized first — entries are trimmed and
blank ones dropped. A dimension that ends up empty is omitted entirely, so
the result never carries a "match nothing" constraint. Color and wine type
labels are resolved to canonical keys; labels the resolver does not know are
dropped silently, because a stale client label must narrow the filter, never
break the query.

Parameters:
  - selection: Selection (user-facing filter state, any supported language)

Returns:
  - BackendFilter: Sparse canonical filter; zero value when nothing survived
*/
func (translator *Translator) Translate(selection Selection) BackendFilter {
	return BackendFilter{
		Grapes:          Sanitize(selection.Grapes),
		Countries:       Sanitize(selection.Countries),
		Regions:         Sanitize(selection.Regions),
		WineTypes:       translator.resolveLabels(reference.DimensionWineType, selection.WineTypes),
		Colors:          translator.resolveLabels(reference.DimensionColor, selection.Colors),
		Sweetness:       Sanitize(selection.Sweetness),
		ProductionTypes: Sanitize(selection.ProductionTypes),
		AlcoholLevels:   Sanitize(selection.AlcoholLevels),
		PriceRanges:     Sanitize(selection.PriceRanges),
		Units:           Sanitize(selection.Units),
		Producers:       Sanitize(selection.Producers),
	}
}

// resolveLabels sanitizes one localized dimension and maps each surviving
// label to its canonical key, dropping misses.
func (translator *Translator) resolveLabels(dimension reference.Dimension, values []string) []string {
	sanitized := Sanitize(values)
	if len(sanitized) == 0 {
		return nil
	}

	canonical := make([]string, 0, len(sanitized))
	for _, label := range sanitized {
		key, ok := translator.resolver.Resolve(dimension, label)
		if !ok {
			translator.logger.Debug("filter_label_dropped",
				slog.String("dimension", string(dimension)),
				slog.String("label", label),
			)
			continue
		}
		canonical = append(canonical, key)
	}

	if len(canonical) == 0 {
		return nil
	}
	return canonical
}

// Sanitize trims every entry and drops the blank ones, preserving order.
// Returns nil when nothing survives so the dimension is omitted.
func Sanitize(values []string) []string {
	trimmed := slice.Filter(slice.Map(values, strings.TrimSpace), func(value string) bool {
		return value != ""
	})
	if len(trimmed) == 0 {
		return nil
	}
	return trimmed
}
