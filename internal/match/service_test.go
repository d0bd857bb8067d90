// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package match_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/match"
	"github.com/vinera/vinera/internal/wine"
)

// fakeLister serves a fixed listing and resolves refs "w-<id>".
type fakeLister struct {
	wines []wine.Wine
}

func (f *fakeLister) FetchWines(context.Context, filter.BackendFilter, string, int, int) ([]wine.Wine, int) {
	return f.wines, len(f.wines)
}

func (f *fakeLister) ResolveRef(_ context.Context, externalRef string) (int64, error) {
	for _, w := range f.wines {
		if w.Ref == externalRef {
			return w.ID, nil
		}
	}
	return 0, assert.AnError
}

// fakeMatchRepository keeps swipes in memory.
type fakeMatchRepository struct {
	rated    []int64
	ratedErr error

	upserts map[int64]bool
}

func (f *fakeMatchRepository) RatedWineIDs(context.Context, string) ([]int64, error) {
	if f.ratedErr != nil {
		return nil, f.ratedErr
	}
	return f.rated, nil
}

func (f *fakeMatchRepository) Upsert(_ context.Context, _ string, wineID int64, liked bool) error {
	if f.upserts == nil {
		f.upserts = make(map[int64]bool)
	}
	f.upserts[wineID] = liked
	return nil
}

func (f *fakeMatchRepository) Delete(context.Context, string, int64) error {
	return nil
}

func listingOf(count int) []wine.Wine {
	wines := make([]wine.Wine, 0, count)
	for i := 1; i <= count; i++ {
		wines = append(wines, wine.Wine{ID: int64(i), Ref: fmt.Sprintf("w-%d", i)})
	}
	return wines
}

func newService(repo *fakeMatchRepository, lister *fakeLister) *match.Service {
	return match.NewService(repo, lister, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_GetUnratedSubtractsAndTruncates verifies the core selection:
with 15 matching wines, 5 of them rated and a limit of 10, exactly 10 wines
come back and none of them is rated.
*/
func TestService_GetUnratedSubtractsAndTruncates(t *testing.T) {
	repo := &fakeMatchRepository{rated: []int64{1, 3, 5, 7, 9}}
	service := newService(repo, &fakeLister{wines: listingOf(15)})

	deck := service.GetUnrated(context.Background(), "user-1", filter.BackendFilter{}, "en", 10)

	require.Len(t, deck, 10)
	rated := map[int64]struct{}{1: {}, 3: {}, 5: {}, 7: {}, 9: {}}
	for _, entry := range deck {
		_, seen := rated[entry.ID]
		assert.False(t, seen, "wine %d is already rated", entry.ID)
	}
}

/*
TestService_GetUnratedFewerThanLimit verifies that the deck simply runs
short when fewer unrated wines exist than the limit asks for.
*/
func TestService_GetUnratedFewerThanLimit(t *testing.T) {
	repo := &fakeMatchRepository{rated: []int64{1, 2}}
	service := newService(repo, &fakeLister{wines: listingOf(5)})

	deck := service.GetUnrated(context.Background(), "user-1", filter.BackendFilter{}, "en", 10)

	assert.Len(t, deck, 3)
}

/*
TestService_GetUnratedDegradesOnRatedFailure verifies the degrade path: when
the rated set cannot be loaded, the truncated unfiltered deck ships instead
of an error or an empty screen.
*/
func TestService_GetUnratedDegradesOnRatedFailure(t *testing.T) {
	repo := &fakeMatchRepository{ratedErr: assert.AnError}
	service := newService(repo, &fakeLister{wines: listingOf(15)})

	deck := service.GetUnrated(context.Background(), "user-1", filter.BackendFilter{}, "en", 10)

	assert.Len(t, deck, 10)
	assert.Equal(t, int64(1), deck[0].ID)
}

/*
TestService_GetUnratedEmptyListing verifies that an empty listing yields an
empty, non-nil deck without consulting the rated set.
*/
func TestService_GetUnratedEmptyListing(t *testing.T) {
	repo := &fakeMatchRepository{ratedErr: assert.AnError}
	service := newService(repo, &fakeLister{})

	deck := service.GetUnrated(context.Background(), "user-1", filter.BackendFilter{}, "en", 10)

	assert.NotNil(t, deck)
	assert.Empty(t, deck)
}

/*
TestService_SetMatchResolvesRef verifies that a swipe lands under the
catalog ID behind the external reference, and that an unknown reference
fails loud.
*/
func TestService_SetMatchResolvesRef(t *testing.T) {
	repo := &fakeMatchRepository{}
	service := newService(repo, &fakeLister{wines: listingOf(3)})

	require.NoError(t, service.SetMatch(context.Background(), "user-1", "w-2", true))
	assert.Equal(t, map[int64]bool{2: true}, repo.upserts)

	assert.Error(t, service.SetMatch(context.Background(), "user-1", "w-404", true))
}
