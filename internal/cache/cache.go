// Package cache is a keyed time-to-live cache that coalesces concurrent loads
// of the same key into one call.
//
// Only successful loads are stored. A failed load stores nothing and every
// waiter receives the caller-supplied fallback, so the next call goes back to
// the loader instead of replaying the failure.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

type entry struct {
	value   any
	expires time.Time
}

// flight tracks the callers waiting on one in-progress load. The load runs
// under ctx, which is cancelled once every waiter has gone away.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Cache is safe for concurrent use. The zero value is not usable; call New.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	fmu     sync.Mutex
	flights map[string]*flight

	group singleflight.Group
	now   func() time.Time
	log   *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, for tests that need to move past a TTL.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger used to report absorbed load failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// New constructs an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		flights: make(map[string]*flight),
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value stored under key, or runs load to produce it.
//
// Concurrent callers for the same key share a single load. A successful
// result is stored for ttl; a ttl of zero or less shares the load but stores
// nothing. If load fails, or ctx ends before the load completes, fallback is
// returned. The load itself is detached from any single caller's
// cancellation and is only cancelled when no caller is waiting for it.
func Get[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fallback T, load func(context.Context) (T, error)) T {
	if v, ok := lookup[T](c, key); ok {
		c.log.DebugContext(ctx, "cache hit", "key", key)
		return v
	}

	fctx, release := c.join(ctx, key)
	defer release()

	ch := c.group.DoChan(key, func() (any, error) {
		// Another flight may have committed while this one was queued.
		if v, ok := lookup[T](c, key); ok {
			return v, nil
		}
		v, err := load(fctx)
		if err != nil {
			return nil, err
		}
		if ttl > 0 {
			c.store(key, v, ttl)
		}
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			attrs := []any{"key", key, "error", res.Err}
			if kind, ok := domain.FetchErrorKindOf(res.Err); ok {
				attrs = append(attrs, "kind", kind.String())
			}
			c.log.WarnContext(ctx, "cache load failed, serving fallback", attrs...)
			return fallback
		}
		v, ok := res.Val.(T)
		if !ok {
			return fallback
		}
		return v
	case <-ctx.Done():
		c.log.DebugContext(ctx, "caller gave up waiting for load", "key", key, "error", ctx.Err())
		return fallback
	}
}

// Len reports the number of stored entries, live or expired.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Invalidate drops the entry stored under key, if any.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func lookup[T any](c *Cache, key string) (T, bool) {
	var zero T
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expires) {
		return zero, false
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func (c *Cache) store(key string, v any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: v, expires: c.now().Add(ttl)}
}

// join registers the caller as a waiter on key's flight and returns the
// flight's context plus a release func the caller must invoke when done.
func (c *Cache) join(ctx context.Context, key string) (context.Context, func()) {
	c.fmu.Lock()
	defer c.fmu.Unlock()

	f, ok := c.flights[key]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel}
		c.flights[key] = f
	}
	f.waiters++

	return f.ctx, func() {
		c.fmu.Lock()
		defer c.fmu.Unlock()
		f.waiters--
		if f.waiters > 0 {
			return
		}
		f.cancel()
		if c.flights[key] == f {
			delete(c.flights, key)
		}
		// A cancelled load must not be joined by later callers.
		c.group.Forget(key)
	}
}
