// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vinera/vinera/internal/locale"
	"github.com/vinera/vinera/internal/platform/respond"
	"github.com/vinera/vinera/pkg/convert"
	"github.com/vinera/vinera/pkg/query"
)

// Handler exposes the filter option endpoints.
type Handler struct {
	options *OptionService
}

// NewHandler constructs the filter HTTP handler.
func NewHandler(options *OptionService) *Handler {
	return &Handler{options: options}
}

// Routes wires the filter endpoints:
//
//	GET    /options  - option lists for every filter menu
//	DELETE /options  - drop the option cache (operational escape hatch)
func (handler *Handler) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/options", handler.listOptions)
	router.Delete("/options", handler.clearOptions)

	return router
}

// listOptions handles GET /options.
func (handler *Handler) listOptions(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, handler.options.Options(r.Context(), locale.FromRequest(r)))
}

// clearOptions handles DELETE /options.
func (handler *Handler) clearOptions(w http.ResponseWriter, r *http.Request) {
	handler.options.ClearCache()
	respond.NoContent(w)
}

// SelectionFromQuery parses a filter [Selection] from the query string.
// Multi-value dimensions arrive comma-separated (?color=Rot,Weiß); sanitizing
// happens later in the translator.
func SelectionFromQuery(r *http.Request) Selection {
	values := r.URL.Query()

	selection := Selection{
		Grapes:          query.StringSlice(values.Get("grape")),
		Countries:       query.StringSlice(values.Get("country")),
		Regions:         query.StringSlice(values.Get("region")),
		WineTypes:       query.StringSlice(values.Get("winetype")),
		Colors:          query.StringSlice(values.Get("color")),
		Sweetness:       query.StringSlice(values.Get("sweetness")),
		ProductionTypes: query.StringSlice(values.Get("production")),
		AlcoholLevels:   query.StringSlice(values.Get("alcohol")),
		PriceRanges:     query.StringSlice(values.Get("price")),
		Units:           query.StringSlice(values.Get("unit")),
		Producers:       query.StringSlice(values.Get("producer")),
	}

	if raw := values.Get("price_min"); raw != "" {
		min := convert.ToFloat64(raw)
		selection.PriceMin = &min
	}
	if raw := values.Get("price_max"); raw != "" {
		max := convert.ToFloat64(raw)
		selection.PriceMax = &max
	}

	return selection
}
