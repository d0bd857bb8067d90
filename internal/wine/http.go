// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package wine

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/locale"
	"github.com/vinera/vinera/internal/platform/respond"
	"github.com/vinera/vinera/pkg/pagination"
)

// Handler exposes the wine listing endpoint.
type Handler struct {
	service    *Service
	translator *filter.Translator
}

// NewHandler constructs the wine HTTP handler.
func NewHandler(service *Service, translator *filter.Translator) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
	}
}

// Routes wires the wine endpoints:
//
//	GET / - filtered, paginated wine listing
func (handler *Handler) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", handler.listWines)

	return router
}

// listWines handles GET /.
func (handler *Handler) listWines(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	backendFilter := handler.translator.Translate(filter.SelectionFromQuery(r))
	wines, total := handler.service.FetchWines(
		r.Context(),
		backendFilter,
		locale.FromRequest(r),
		params.Limit,
		params.Offset(),
	)

	respond.Paginated(w, wines, pagination.NewMeta(params.Page, params.Limit, total))
}
