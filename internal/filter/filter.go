// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package filter turns the mobile client's filter selections into backend
filters the wine query assembler can execute.

It owns three concerns:

  - Translation: Sanitizes the user-facing [Selection] and canonicalizes
    color/wine-type labels through the reference resolver.
  - Options: Supplies the per-language option lists the filter menus render,
    behind a TTL cache.
  - Shape: Defines the sparse [BackendFilter] contract — an absent dimension
    means unconstrained, never "matches nothing".
*/
package filter

// # Selection

// Selection is the user-facing filter state, one independent string slice
// per dimension. Every field defaults to empty, meaning "no constraint on
// this dimension". Values are display text as the client rendered it; color
// and wine type may arrive in any supported language.
type Selection struct {
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
	Producers       []string `json:"producers"`

	// Legacy numeric ranges, kept for older client versions that filtered
	// on raw bounds before the categorical ranges existed. New code paths
	// ignore them.
	PriceMin    *float64 `json:"price_min,omitempty"`
	PriceMax    *float64 `json:"price_max,omitempty"`
	VintageFrom *int     `json:"vintage_from,omitempty"`
	VintageTo   *int     `json:"vintage_to,omitempty"`
	AlcoholFrom *float64 `json:"alcohol_from,omitempty"`
	AlcoholTo   *float64 `json:"alcohol_to,omitempty"`
}

// # Backend Filter

// BackendFilter is the sparse, ephemeral query-side filter derived from a
// [Selection]. A nil slice means the dimension is unconstrained; the zero
// value therefore behaves identically to no filter at all. Color and wine
// type hold canonical keys, every other dimension holds sanitized values
// matching the wine view's columns.
type BackendFilter struct {
	Grapes          []string `json:"grapes,omitempty"`
	Countries       []string `json:"countries,omitempty"`
	Regions         []string `json:"regions,omitempty"`
	WineTypes       []string `json:"wine_types,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Sweetness       []string `json:"sweetness,omitempty"`
	ProductionTypes []string `json:"production_types,omitempty"`
	AlcoholLevels   []string `json:"alcohol_levels,omitempty"`
	PriceRanges     []string `json:"price_ranges,omitempty"`
	Units           []string `json:"units,omitempty"`
	Producers       []string `json:"producers,omitempty"`
}

// IsEmpty reports whether no dimension carries a constraint.
func (f BackendFilter) IsEmpty() bool {
	return len(f.Grapes) == 0 &&
		len(f.Countries) == 0 &&
		len(f.Regions) == 0 &&
		len(f.WineTypes) == 0 &&
		len(f.Colors) == 0 &&
		len(f.Sweetness) == 0 &&
		len(f.ProductionTypes) == 0 &&
		len(f.AlcoholLevels) == 0 &&
		len(f.PriceRanges) == 0 &&
		len(f.Units) == 0 &&
		len(f.Producers) == 0
}
