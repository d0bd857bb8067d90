// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import "context"

// # Filter Option Access

// OptionRepository defines the data access contract for the distinct values
// behind each filter menu.
//
// Every listing returns the raw values the wine view filters on — country
// codes, canonical sweetness keys, formatted unit labels — so that a value
// picked from a menu round-trips into a predicate unchanged. An empty list
// is an error, not a valid state: a catalog with wines but no distinct
// countries signals a broken view, and the cache must not memoize it.
type OptionRepository interface {

	// ListGrapes retrieves every distinct grape name in the catalog.
	ListGrapes(context context.Context) ([]string, error)

	// ListCountries retrieves every distinct country code carried by a wine.
	ListCountries(context context.Context) ([]string, error)

	// ListRegions retrieves every distinct region default name.
	ListRegions(context context.Context) ([]string, error)

	// ListSweetnessLevels retrieves every distinct sweetness key.
	ListSweetnessLevels(context context.Context) ([]string, error)

	// ListAlcoholLevels retrieves every distinct alcohol level key.
	ListAlcoholLevels(context context.Context) ([]string, error)

	// ListProductionTypes retrieves every distinct production type key.
	ListProductionTypes(context context.Context) ([]string, error)

	// ListPriceRanges retrieves every distinct price range key.
	ListPriceRanges(context context.Context) ([]string, error)

	// ListUnits retrieves every distinct bottle volume, formatted as a
	// unit label such as "0.75L".
	ListUnits(context context.Context) ([]string, error)
}
