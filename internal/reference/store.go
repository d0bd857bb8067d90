// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for canonical reference data.
//
// Each listing hydrates a full dimension: the base entities plus their
// translations joined by foreign key. An empty reference table is an error,
// not an empty result — an empty dropdown must stay distinguishable from an
// unreachable backend at the logging layer.
type Repository interface {

	/*
		ListColors retrieves every wine color with its translations.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Entry: Hydrated color entries
		  - error: Database retrieval failures, or ErrNotFound on an empty table
	*/
	ListColors(context context.Context) ([]*Entry, error)

	/*
		ListWineTypes retrieves every wine type with its translations.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Entry: Hydrated wine type entries
		  - error: Database retrieval failures, or ErrNotFound on an empty table
	*/
	ListWineTypes(context context.Context) ([]*Entry, error)
}
