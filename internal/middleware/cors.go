// Package middleware provides HTTP middleware for the homepage API server.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that lets the rendering layer, served
// from allowedOrigins, read the API from a browser. Each entry must be a full
// origin (scheme + host, no trailing slash). The API is read-only, so only
// GET, HEAD and OPTIONS are allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language"},
		ExposedHeaders: []string{"Content-Language"},
		MaxAge:         300,
	})
	return c.Handler
}
