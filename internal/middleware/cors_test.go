package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilhabr/home-aggregator/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

const renderOrigin = "http://localhost:3000"

// TestCORSHandler_GET_AllowedOrigin verifies that a GET from the rendering
// layer's origin receives the Access-Control-Allow-Origin header.
func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{renderOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Origin", renderOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, renderOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Language", rec.Header().Get("Access-Control-Expose-Headers"))
}

// TestCORSHandler_OPTIONS_Preflight verifies that a GET preflight is answered
// with a 2xx status and the allowed methods.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{renderOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/home", nil)
	req.Header.Set("Origin", renderOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	// Browsers send Access-Control-Request-Headers in lowercase.
	req.Header.Set("Access-Control-Request-Headers", "accept-language")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, renderOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

// TestCORSHandler_OPTIONS_WriteMethodRejected verifies that the read-only API
// does not grant cross-origin POSTs.
func TestCORSHandler_OPTIONS_WriteMethodRejected(t *testing.T) {
	h := middleware.NewCORSHandler([]string{renderOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/home", nil)
	req.Header.Set("Origin", renderOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that an unknown origin does not
// receive the Access-Control-Allow-Origin header.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{renderOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
