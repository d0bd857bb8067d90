// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package match

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/locale"
	"github.com/vinera/vinera/internal/platform/middleware"
	requestutil "github.com/vinera/vinera/internal/platform/request"
	"github.com/vinera/vinera/internal/platform/respond"
	"github.com/vinera/vinera/pkg/convert"
)

const (
	// DefaultDeckSize is the number of unrated wines one deck refill serves.
	DefaultDeckSize = 10
	// MaxDeckSize bounds a single refill.
	MaxDeckSize = 50
)

// Handler exposes the personal match endpoints. Every route requires a
// session user.
type Handler struct {
	service    *Service
	translator *filter.Translator
}

// NewHandler constructs the match HTTP handler.
func NewHandler(service *Service, translator *filter.Translator) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
	}
}

// Routes wires the match endpoints:
//
//	GET    /wines/unrated - filtered deck of wines the user has not swiped
//	PUT    /matches/{ref} - record a swipe (like or pass)
//	DELETE /matches/{ref} - undo a swipe
func (handler *Handler) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequireUser)

	router.Get("/wines/unrated", handler.listUnrated)
	router.Put("/matches/{ref}", handler.upsertMatch)
	router.Delete("/matches/{ref}", handler.removeMatch)

	return router
}

// listUnrated handles GET /wines/unrated.
func (handler *Handler) listUnrated(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	limit := convert.ToIntD(r.URL.Query().Get("limit"), DefaultDeckSize)
	if limit < 1 || limit > MaxDeckSize {
		limit = DefaultDeckSize
	}

	backendFilter := handler.translator.Translate(filter.SelectionFromQuery(r))
	deck := handler.service.GetUnrated(r.Context(), userID, backendFilter, locale.FromRequest(r), limit)

	respond.OK(w, deck)
}

// matchBody is the PUT payload.
type matchBody struct {
	Liked bool `json:"liked"`
}

// upsertMatch handles PUT /matches/{ref}.
func (handler *Handler) upsertMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var body matchBody
	if err := requestutil.DecodeJSON(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.SetMatch(r.Context(), userID, requestutil.Param(r, "ref"), body.Liked); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}

// removeMatch handles DELETE /matches/{ref}.
func (handler *Handler) removeMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.RemoveMatch(r.Context(), userID, requestutil.Param(r, "ref")); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}
