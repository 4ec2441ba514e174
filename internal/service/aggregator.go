// Package service orchestrates upstream reads and turns them into the
// homepage view model.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trilhabr/home-aggregator/internal/cache"
	"github.com/trilhabr/home-aggregator/internal/domain"
	"github.com/trilhabr/home-aggregator/internal/source"
)

// Sources is the set of upstream reads the aggregator depends on.
// *source.Client satisfies it; tests substitute a hand-written double.
type Sources interface {
	FetchHero(ctx context.Context, locale string, timeout time.Duration) (*domain.HeroContent, error)
	FetchTrails(ctx context.Context, limit int, timeout time.Duration) ([]domain.TrailSummary, error)
	FetchExpeditions(ctx context.Context, limit int, timeout time.Duration) ([]domain.ExpeditionSummary, error)
}

// SourcePolicy bounds one source: how long a result is cached and how long a
// single upstream call may take.
type SourcePolicy struct {
	TTL     time.Duration
	Timeout time.Duration
}

// AggregatorConfig holds the per-source policies and request parameters.
type AggregatorConfig struct {
	Locale          string
	TrailLimit      int
	ExpeditionLimit int

	Hero        SourcePolicy
	Trails      SourcePolicy
	Expeditions SourcePolicy
}

// Aggregator fans out to the three sources through the cache.
type Aggregator struct {
	src   Sources
	cache *cache.Cache
	cfg   AggregatorConfig
	log   *slog.Logger
}

// NewAggregator constructs an Aggregator.
func NewAggregator(src Sources, c *cache.Cache, cfg AggregatorConfig, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{src: src, cache: c, cfg: cfg, log: log}
}

// LoadAll reads hero, trails and expeditions concurrently and returns once
// all three have settled. A failing or slow source resolves to its fallback
// (nil hero, empty list) and never affects the other two, so the call takes
// as long as the slowest source, not the sum.
func (a *Aggregator) LoadAll(ctx context.Context) (*domain.HeroContent, []domain.TrailSummary, []domain.ExpeditionSummary) {
	var (
		wg          sync.WaitGroup
		hero        *domain.HeroContent
		trails      []domain.TrailSummary
		expeditions []domain.ExpeditionSummary
	)

	start := time.Now()

	wg.Go(func() {
		ep := source.HeroEndpoint(a.cfg.Locale)
		hero = cache.Get(ctx, a.cache, ep.Key(), a.cfg.Hero.TTL, (*domain.HeroContent)(nil),
			func(ctx context.Context) (*domain.HeroContent, error) {
				return a.src.FetchHero(ctx, a.cfg.Locale, a.cfg.Hero.Timeout)
			})
	})
	wg.Go(func() {
		ep := source.TrailsEndpoint(a.cfg.TrailLimit)
		trails = cache.Get(ctx, a.cache, ep.Key(), a.cfg.Trails.TTL, []domain.TrailSummary{},
			func(ctx context.Context) ([]domain.TrailSummary, error) {
				return a.src.FetchTrails(ctx, a.cfg.TrailLimit, a.cfg.Trails.Timeout)
			})
	})
	wg.Go(func() {
		ep := source.ExpeditionsEndpoint(a.cfg.ExpeditionLimit)
		expeditions = cache.Get(ctx, a.cache, ep.Key(), a.cfg.Expeditions.TTL, []domain.ExpeditionSummary{},
			func(ctx context.Context) ([]domain.ExpeditionSummary, error) {
				return a.src.FetchExpeditions(ctx, a.cfg.ExpeditionLimit, a.cfg.Expeditions.Timeout)
			})
	})

	wg.Wait()

	a.log.DebugContext(ctx, "sources settled",
		"hero", hero != nil,
		"trails", len(trails),
		"expeditions", len(expeditions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return hero, trails, expeditions
}
