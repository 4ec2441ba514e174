// Package testutil provides shared helpers for tests that talk to the
// upstream services over real HTTP.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// Upstream fakes the CMS, catalog and booking services on one httptest.Server.
// Paths without a registered handler answer 404. Every request is counted
// per path, including 404s.
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  map[string]int
	last   map[string]*http.Request
}

// NewUpstream starts a fake upstream that is closed when the test finishes.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		routes: make(map[string]http.HandlerFunc),
		calls:  make(map[string]int),
		last:   make(map[string]*http.Request),
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

// Handle registers h for requests to path, replacing any previous handler.
func (u *Upstream) Handle(path string, h http.HandlerFunc) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = h
}

// Calls returns how many requests path has received.
func (u *Upstream) Calls(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

// LastRequest returns the most recent request to path, or nil.
func (u *Upstream) LastRequest(path string) *http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.last[path]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls[r.URL.Path]++
	u.last[r.URL.Path] = r.Clone(r.Context())
	h, ok := u.routes[r.URL.Path]
	u.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// JSON answers with status and body as application/json.
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// Status answers with an empty body and the given status code.
func Status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

// Delay waits d before running h. It gives up early if the client goes away,
// so slow handlers never keep the test server from closing.
func Delay(d time.Duration, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(d):
			h(w, r)
		case <-r.Context().Done():
		}
	}
}
