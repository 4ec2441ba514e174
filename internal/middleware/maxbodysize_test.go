package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilhabr/home-aggregator/internal/middleware"
)

// bodyReadingHandler reads the full request body and answers 413 if the read
// fails, as it does once http.MaxBytesReader trips.
var bodyReadingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler_SmallBody_PassesThrough(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodGet, "/home", strings.NewReader(strings.Repeat("x", 50)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestMaxBodySizeHandler_ContentLengthExceedsLimit_Returns413 verifies that an
// oversized Content-Length is rejected before the handler runs.
func TestMaxBodySizeHandler_ContentLengthExceedsLimit_Returns413(t *testing.T) {
	var reached bool
	h := middleware.NewMaxBodySizeHandler(100)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = 200
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, reached)
}

// TestMaxBodySizeHandler_StreamingBodyExceedsLimit_Returns413 verifies that a
// body without Content-Length fails to read once it crosses the limit.
func TestMaxBodySizeHandler_StreamingBodyExceedsLimit_Returns413(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodGet, "/home", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
