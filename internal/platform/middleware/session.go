// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vinera/vinera/internal/platform/apperr"
	"github.com/vinera/vinera/internal/platform/ctxutil"
	"github.com/vinera/vinera/internal/platform/respond"
)

// SessionResolver resolves an opaque bearer token to a user identifier.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the `session`
// store implementation, allowing us to inject fakes during unit testing.
// Token issuance belongs to the external authentication service; this side
// only ever reads.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (userID string, err error)
}

// Authenticate resolves the bearer session token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as guest — discovery endpoints work without identity.
//  3. If present, resolve the token via [SessionResolver].
//  4. Inject the user ID into the request context for downstream use.
//
// An unresolvable token proceeds as guest rather than failing: an expired
// session degrades a swipe feed to anonymous mode, and the endpoints that
// genuinely need identity enforce it with [RequireUser].
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Guest Access ───────────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Session Resolution ─────────────────────────────────────────
			userID, err := resolver.Resolve(request.Context(), parts[1])
			if err != nil || userID == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithUserID(request.Context(), userID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireUser blocks requests that carry no resolved user identity.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetUserID(request.Context()) == "" {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
