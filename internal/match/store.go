// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package match

import "context"

// # Match Data Access

// Repository defines the data access contract for swipe results.
type Repository interface {

	/*
		RatedWineIDs retrieves every wine ID the user has swiped, liked or
		passed alike.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []int64: Rated wine IDs, empty for a fresh user
		  - error: Database retrieval failures
	*/
	RatedWineIDs(context context.Context, userID string) ([]int64, error)

	/*
		Upsert records a swipe result, overwriting an earlier swipe on the
		same wine.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - wineID: int64
		  - liked: bool

		Returns:
		  - error: Database execution errors
	*/
	Upsert(context context.Context, userID string, wineID int64, liked bool) error

	/*
		Delete removes a swipe result so the wine becomes unrated again.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - wineID: int64

		Returns:
		  - error: dberr.ErrNotFound when no swipe exists, or execution errors
	*/
	Delete(context context.Context, userID string, wineID int64) error
}
