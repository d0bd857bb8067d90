// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package wine

import (
	"context"

	"github.com/vinera/vinera/internal/filter"
)

// # Wine Data Access

// Repository defines the data access contract for the wine catalog.
type Repository interface {

	/*
		FetchWines retrieves wines from the catalog view matching the direct
		filter dimensions plus an optional ID inclusion set.

		Description: Only dimensions the view carries as columns become
		predicates; the grape and producer dimensions are resolved separately
		into wineIDs by the caller. A nil wineIDs slice means no ID
		constraint. limit <= 0 disables the row cap.

		Parameters:
		  - context: context.Context
		  - backendFilter: filter.BackendFilter (sparse; zero value matches all)
		  - wineIDs: []int64 (pre-resolved inclusion set, nil for none)
		  - limit: int (row cap, <= 0 for unbounded)
		  - offset: int

		Returns:
		  - []*Row: Matching rows ordered by catalog ID
		  - int: Total match count across all pages
		  - error: Database retrieval failures
	*/
	FetchWines(context context.Context, backendFilter filter.BackendFilter, wineIDs []int64, limit, offset int) ([]*Row, int, error)

	/*
		WineIDsByGrapes retrieves the IDs of wines made from any of the given
		grapes.

		Parameters:
		  - context: context.Context
		  - grapes: []string (sanitized grape names, case-insensitive match)

		Returns:
		  - []int64: Distinct matching wine IDs, possibly empty
		  - error: Database retrieval failures
	*/
	WineIDsByGrapes(context context.Context, grapes []string) ([]int64, error)

	/*
		WineIDsByProducers retrieves the IDs of wines made by any of the given
		producers.

		Parameters:
		  - context: context.Context
		  - producers: []string (sanitized producer names, case-insensitive match)

		Returns:
		  - []int64: Distinct matching wine IDs, possibly empty
		  - error: Database retrieval failures
	*/
	WineIDsByProducers(context context.Context, producers []string) ([]int64, error)

	/*
		GrapesByWineIDs retrieves the grape attribution for a batch of wines.

		Parameters:
		  - context: context.Context
		  - wineIDs: []int64

		Returns:
		  - map[int64][]string: Grape names per wine ID, ordered by name;
		    wines without grapes are absent
		  - error: Database retrieval failures
	*/
	GrapesByWineIDs(context context.Context, wineIDs []int64) (map[int64][]string, error)

	/*
		WineIDByRef resolves a client-facing external reference to the
		catalog ID.

		Parameters:
		  - context: context.Context
		  - externalRef: string

		Returns:
		  - int64: The catalog wine ID
		  - error: dberr.ErrNotFound when no wine carries the reference
	*/
	WineIDByRef(context context.Context, externalRef string) (int64, error)
}
