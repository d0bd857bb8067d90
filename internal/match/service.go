// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package match

import (
	"context"
	"log/slog"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/wine"
)

// WineLister is the slice of the wine service the match service needs.
// Satisfied by [wine.Service].
type WineLister interface {
	FetchWines(ctx context.Context, backendFilter filter.BackendFilter, language string, limit, offset int) ([]wine.Wine, int)
	ResolveRef(ctx context.Context, externalRef string) (int64, error)
}

// Service records swipes and selects unrated wines.
type Service struct {
	repo   Repository
	wines  WineLister
	logger *slog.Logger
}

// NewService constructs the match service.
func NewService(repo Repository, wines WineLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		wines:  wines,
		logger: logger,
	}
}

/*
GetUnrated selects up to limit wines matching the filter that the user has
not swiped yet.

Description: The filtered listing is fetched unbounded, the user's rated
set is subtracted, and the remainder is truncated to the limit. When the
rated set cannot be loaded the selection degrades instead of failing: the
truncated unfiltered listing ships and the failure is logged — a deck that
repeats a few seen wines beats an empty one.

Parameters:
  - ctx: context.Context
  - userID: string
  - backendFilter: filter.BackendFilter
  - language: string
  - limit: int (maximum deck size, must be positive)

Returns:
  - []wine.Wine: Up to limit unrated wines, never nil
*/
func (service *Service) GetUnrated(ctx context.Context, userID string, backendFilter filter.BackendFilter, language string, limit int) []wine.Wine {
	wines, _ := service.wines.FetchWines(ctx, backendFilter, language, 0, 0)
	if len(wines) == 0 {
		return []wine.Wine{}
	}

	ratedIDs, err := service.repo.RatedWineIDs(ctx, userID)
	if err != nil {
		service.logger.Warn("rated_set_unavailable",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return truncate(wines, limit)
	}

	rated := make(map[int64]struct{}, len(ratedIDs))
	for _, id := range ratedIDs {
		rated[id] = struct{}{}
	}

	unrated := make([]wine.Wine, 0, len(wines))
	for _, candidate := range wines {
		if _, seen := rated[candidate.ID]; seen {
			continue
		}
		unrated = append(unrated, candidate)
	}

	return truncate(unrated, limit)
}

// SetMatch records a swipe for the wine behind the external reference.
func (service *Service) SetMatch(ctx context.Context, userID, externalRef string, liked bool) error {
	wineID, err := service.wines.ResolveRef(ctx, externalRef)
	if err != nil {
		return err
	}
	return service.repo.Upsert(ctx, userID, wineID, liked)
}

// RemoveMatch deletes a swipe so the wine becomes unrated again.
func (service *Service) RemoveMatch(ctx context.Context, userID, externalRef string) error {
	wineID, err := service.wines.ResolveRef(ctx, externalRef)
	if err != nil {
		return err
	}
	return service.repo.Delete(ctx, userID, wineID)
}

func truncate(wines []wine.Wine, limit int) []wine.Wine {
	if limit > 0 && len(wines) > limit {
		return wines[:limit]
	}
	return wines
}
