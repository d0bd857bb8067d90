// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package wine assembles filtered wine listings from the pre-joined catalog
view.

The package splits the listing into a primary query over the view and
secondary queries over the grape and producer junction tables. Secondary
dimensions narrow the primary query to an ID set and short-circuit to an
empty listing when nothing matches; grape attribution is loaded in one
batch afterwards. Listings fail soft: a broken catalog yields an empty
deck, never a client-facing error.
*/
package wine

// # Raw Row

// Row is one wine scanned from the catalog view, translation maps included.
// Nullable view columns stay pointers so a sparse wine survives the scan.
type Row struct {
	ID          int64
	ExternalRef string
	Name        string
	Year        *int

	RegionID          *int64
	RegionNames       map[string]string
	RegionDefaultName *string
	CountryCode       *string

	WineType             *string
	WineTypeLabels       map[string]string
	Color                *string
	ColorLabels          map[string]string
	Sweetness            *string
	SweetnessLabels      map[string]string
	AlcoholLevel         *string
	AlcoholLabels        map[string]string
	ProductionType       *string
	ProductionTypeLabels map[string]string
	PriceRange           *string
	PriceRangeLabels     map[string]string

	AlcoholMin *float64
	AlcoholMax *float64
	PriceMin   *float64
	PriceMax   *float64
	UnitVolume *float64
}

// # Client Shape

// Wine is the client-facing listing entry. Ref is the stable external
// identifier the client addresses a wine by; the numeric catalog ID stays
// server-side.
type Wine struct {
	ID      int64    `json:"-"`
	Ref     string   `json:"id"`
	Name    string   `json:"name"`
	Year    *int     `json:"year,omitempty"`
	Region  string   `json:"region"`
	Country string   `json:"country,omitempty"`
	Grapes  string   `json:"grapes,omitempty"`
	Tags    []string `json:"tags"`
}
