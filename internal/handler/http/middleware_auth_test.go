// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// parseTokenFor returns a ParseToken stub accepting exactly one token string.
func parseTokenFor(valid string, userID uuid.UUID) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString == valid {
			return models.Token{UserID: userID, SignedString: tokenString}, nil
		}
		return models.Token{}, service.ErrTokenIsInvalid
	}
}

// nextSpy records whether the wrapped handler ran and what identity it saw.
type nextSpy struct {
	called bool
	userID uuid.UUID
	found  bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.found = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_ValidCookie(t *testing.T) {
	userID := uuid.New()
	auth := &mockAuthService{parseTokenFn: parseTokenFor("good-token", userID)}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/update/"+userID.String(), nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.found, "user ID must be planted in the context")
	assert.Equal(t, userID, spy.userID)
}

func TestAuth_MissingCookie(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/update/abc", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenFor("good-token", uuid.New())}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/update/abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "forged-token"})
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
	assert.Equal(t, "invalid session", decodeErrorResponse(t, rec).Message)
}

func TestAuth_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/update/abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "session expired", decodeErrorResponse(t, rec).Message)
}

// ─────────────────────────────────────────────
// requireOwner (through the real router, so chi
// fills the {id} parameter)
// ─────────────────────────────────────────────

func ownerTestRouter(t *testing.T, userID uuid.UUID) (http.Handler, *nextSpy) {
	t.Helper()

	auth := &mockAuthService{parseTokenFn: parseTokenFor("good-token", userID)}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	spy := &nextSpy{}
	router := h.Init()
	// shadow the production handler with the spy to observe the middleware
	// chain in isolation
	router.With(h.auth, h.requireOwner).Post("/test/owned/{id}", spy.handler().ServeHTTP)

	return router, spy
}

func TestRequireOwner_OwnAccount(t *testing.T) {
	userID := uuid.New()
	router, spy := ownerTestRouter(t, userID)

	req := httptest.NewRequest(http.MethodPost, "/test/owned/"+userID.String(), nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, spy.called)
}

func TestRequireOwner_OtherAccount(t *testing.T) {
	router, spy := ownerTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/test/owned/"+uuid.NewString(), nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, spy.called)
	assert.Equal(t, "you can only modify your own account", decodeErrorResponse(t, rec).Message)
}

func TestRequireOwner_MalformedID(t *testing.T) {
	router, spy := ownerTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/test/owned/not-a-uuid", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, spy.called)
}
