// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package reference

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolver maps localized labels to canonical reference keys.
//
// # Lifecycle
//
// A Resolver starts empty. [Resolver.Initialize] loads both dimensions and
// builds the lookup index; until it succeeds, every Resolve call misses.
// The index is immutable after construction — rebuilding requires a full
// reload of both backing dimensions via a fresh Initialize after the ready
// flag has been cleared by a failure (or a new process).
type Resolver struct {
	repo   Repository
	logger *slog.Logger

	// flight ensures concurrent Initialize callers share one load.
	flight singleflight.Group

	mu      sync.RWMutex
	ready   bool
	entries map[Dimension][]*Entry
	// index maps a lowercased canonical name or translation label to its
	// canonical name, per dimension.
	index map[Dimension]map[string]string
}

// NewResolver constructs an uninitialized [Resolver].
func NewResolver(repo Repository, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

/*
Initialize loads the reference dimensions and builds the lookup index.

Description: Idempotent — once the resolver is ready, further calls return
immediately without touching the backend. Concurrent callers before
completion share a single in-flight load (singleflight), so the reference
tables are fetched exactly once per successful initialization. On failure
the resolver holds no partial state: the ready flag stays unset and the next
call retries from scratch.

Parameters:
  - context: context.Context

Returns:
  - error: Repository failures; nil once the index is fully populated
*/
func (resolver *Resolver) Initialize(context context.Context) error {

	// Fast path: already loaded.
	if resolver.Ready() {
		return nil
	}

	_, err, _ := resolver.flight.Do("initialize", func() (any, error) {

		// A concurrent caller may have completed the load while we queued.
		if resolver.Ready() {
			return nil, nil
		}

		colors, err := resolver.repo.ListColors(context)
		if err != nil {
			return nil, err
		}

		wineTypes, err := resolver.repo.ListWineTypes(context)
		if err != nil {
			return nil, err
		}

		entries := map[Dimension][]*Entry{
			DimensionColor:    colors,
			DimensionWineType: wineTypes,
		}

		index := make(map[Dimension]map[string]string, len(entries))
		for dimension, dimensionEntries := range entries {
			lookup := make(map[string]string)
			for _, entry := range dimensionEntries {
				lookup[normalizeLabel(entry.CanonicalName)] = entry.CanonicalName
				for _, label := range entry.Translations {
					lookup[normalizeLabel(label)] = entry.CanonicalName
				}
			}
			index[dimension] = lookup
		}

		// Publish atomically: either the full index or nothing.
		resolver.mu.Lock()
		resolver.entries = entries
		resolver.index = index
		resolver.ready = true
		resolver.mu.Unlock()

		resolver.logger.Info("reference_resolver_initialized",
			slog.Int("colors", len(colors)),
			slog.Int("wine_types", len(wineTypes)),
		)

		return nil, nil
	})

	return err
}

// Ready reports whether the resolver has a fully populated index.
func (resolver *Resolver) Ready() bool {
	resolver.mu.RLock()
	defer resolver.mu.RUnlock()
	return resolver.ready
}

/*
Resolve maps a user-facing label to its canonical backend key.

Description: Matching is case-insensitive and language-insensitive — the
label is compared against the canonical name and every translation in every
supported language, because the client cannot guarantee which language
produced a stored filter value. A miss is a designed outcome, not an error:
callers drop the value from the filter.

Parameters:
  - dimension: Dimension (color or wine type)
  - label: string (trimmed and lower-cased internally)

Returns:
  - string: The canonical name, or "" on a miss
  - bool: Whether the label resolved
*/
func (resolver *Resolver) Resolve(dimension Dimension, label string) (string, bool) {
	normalized := normalizeLabel(label)
	if normalized == "" {
		return "", false
	}

	resolver.mu.RLock()
	defer resolver.mu.RUnlock()

	if !resolver.ready {
		return "", false
	}

	canonical, ok := resolver.index[dimension][normalized]
	return canonical, ok
}

// Labels returns the display labels of a dimension for the given language,
// sorted alphabetically. Used to populate the filter option menus.
func (resolver *Resolver) Labels(dimension Dimension, language string) []string {
	resolver.mu.RLock()
	defer resolver.mu.RUnlock()

	if !resolver.ready {
		return nil
	}

	labels := make([]string, 0, len(resolver.entries[dimension]))
	for _, entry := range resolver.entries[dimension] {
		labels = append(labels, entry.Label(language))
	}
	sort.Strings(labels)

	return labels
}

// normalizeLabel canonicalizes a label for index storage and lookup.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
