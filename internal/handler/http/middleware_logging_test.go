package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusTeapot)
	n, err := lw.Write([]byte("short and stout"))

	assert.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, http.StatusTeapot, lw.status)
	assert.Equal(t, 15, lw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	_, _ = lw.Write([]byte("body without explicit status"))

	assert.Equal(t, http.StatusOK, lw.status)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	_, _ = lw.Write([]byte("first "))
	_, _ = lw.Write([]byte("second"))

	assert.Equal(t, 12, lw.size)
}
