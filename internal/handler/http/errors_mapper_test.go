package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

func TestWriteAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid data",
			err:         service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
		{
			name:        "invalid credentials",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid email or password",
		},
		{
			name:        "expired session",
			err:         service.ErrTokenIsExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "session expired",
		},
		{
			name:        "duplicate email is distinguishable",
			err:         store.ErrEmailAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "email already registered",
		},
		{
			name:        "duplicate username stays generic",
			err:         store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "duplicate field value",
		},
		{
			name:        "wrapped sentinel is still recognised",
			err:         fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "email already registered",
		},
		{
			name:        "owner mismatch",
			err:         ErrNotResourceOwner,
			wantStatus:  http.StatusForbidden,
			wantMessage: "you can only modify your own account",
		},
		{
			name:        "unknown error stays generic",
			err:         errors.New("pq: relation users does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeAPIError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			envelope := decodeErrorResponse(t, rec)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantMessage, envelope.Message)
			assert.Equal(t, tt.wantStatus, envelope.StatusCode)
		})
	}
}

// TestWriteAPIError_NeverLeaksInternalText guards the envelope against
// leaking raw driver or SQL detail.
func TestWriteAPIError_NeverLeaksInternalText(t *testing.T) {
	rec := httptest.NewRecorder()

	writeAPIError(rec, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
