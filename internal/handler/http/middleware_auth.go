// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, ownership checks, logging, tracing,
// and CORS concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the embedded JWT via
// [service.AuthService.ParseToken], and, on success, stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent.
//   - The token has expired.
//   - The token is otherwise invalid or cannot be parsed.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			writeAPIError(w, ErrNoSessionCookie)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
			default:
				log.Err(err).Msg("error occurred during parsing token")
			}
			writeAPIError(w, err)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireOwner gates identity-scoped routes: the authenticated user ID from
// the context must equal the {id} path parameter. A mismatch is 403: the
// caller is authenticated, just not the resource owner. The middleware does
// not fetch the record itself.
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Err(ErrNoSessionCookie).Msg("owner check without authenticated identity")
			writeAPIError(w, ErrNoSessionCookie)
			return
		}

		targetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Err(err).Msg("invalid user id in path")
			writeAPIError(w, ErrInvalidUserID)
			return
		}

		if targetID != userID {
			log.Warn().
				Str("authenticated", userID.String()).
				Str("target", targetID.String()).
				Msg("attempt to modify another user's account")
			writeAPIError(w, ErrNotResourceOwner)
			return
		}

		next.ServeHTTP(w, r)
	})
}
