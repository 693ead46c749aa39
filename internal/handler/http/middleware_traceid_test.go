package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/service"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id must be a UUID")
}

func TestWithTraceID_PropagatesIncoming(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "caller-supplied-id")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(traceIDHeader))
}
