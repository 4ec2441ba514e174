package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilhabr/home-aggregator/internal/cache"
	"github.com/trilhabr/home-aggregator/internal/domain"
	"github.com/trilhabr/home-aggregator/internal/service"
)

// mockSources is a hand-written test double for service.Sources.
// Each method is a function field; set only the ones your test needs.
type mockSources struct {
	hero        func(ctx context.Context) (*domain.HeroContent, error)
	trails      func(ctx context.Context) ([]domain.TrailSummary, error)
	expeditions func(ctx context.Context) ([]domain.ExpeditionSummary, error)

	heroCalls, trailCalls, expeditionCalls atomic.Int32
}

func (m *mockSources) FetchHero(ctx context.Context, _ string, _ time.Duration) (*domain.HeroContent, error) {
	m.heroCalls.Add(1)
	return m.hero(ctx)
}

func (m *mockSources) FetchTrails(ctx context.Context, _ int, _ time.Duration) ([]domain.TrailSummary, error) {
	m.trailCalls.Add(1)
	return m.trails(ctx)
}

func (m *mockSources) FetchExpeditions(ctx context.Context, _ int, _ time.Duration) ([]domain.ExpeditionSummary, error) {
	m.expeditionCalls.Add(1)
	return m.expeditions(ctx)
}

// compile-time check: mockSources must satisfy service.Sources.
var _ service.Sources = (*mockSources)(nil)

// ---- helpers ---------------------------------------------------------------

func testConfig() service.AggregatorConfig {
	policy := service.SourcePolicy{TTL: time.Minute, Timeout: time.Second}
	return service.AggregatorConfig{
		Locale:          "pt-BR",
		TrailLimit:      12,
		ExpeditionLimit: 8,
		Hero:            policy,
		Trails:          policy,
		Expeditions:     policy,
	}
}

func healthySources() *mockSources {
	return &mockSources{
		hero: func(context.Context) (*domain.HeroContent, error) {
			return &domain.HeroContent{Title: "Hero", Subtitle: "Sub"}, nil
		},
		trails: func(context.Context) ([]domain.TrailSummary, error) {
			return []domain.TrailSummary{{ID: "t1"}, {ID: "t2"}}, nil
		},
		expeditions: func(context.Context) ([]domain.ExpeditionSummary, error) {
			return []domain.ExpeditionSummary{{ID: "e1", MaxPeople: 4}}, nil
		},
	}
}

// ---- tests -----------------------------------------------------------------

func TestLoadAll_AllSourcesHealthy(t *testing.T) {
	src := healthySources()
	agg := service.NewAggregator(src, cache.New(), testConfig(), nil)

	hero, trails, exps := agg.LoadAll(context.Background())

	require.NotNil(t, hero)
	assert.Equal(t, "Hero", hero.Title)
	assert.Len(t, trails, 2)
	assert.Len(t, exps, 1)
}

func TestLoadAll_FailingSourceDoesNotAffectOthers(t *testing.T) {
	kinds := []domain.FetchErrorKind{domain.Unreachable, domain.Timeout, domain.BadStatus, domain.MalformedPayload}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			fail := &domain.FetchError{Source: "test", Kind: kind}

			heroDown := healthySources()
			heroDown.hero = func(context.Context) (*domain.HeroContent, error) { return nil, fail }
			hero, trails, exps := service.NewAggregator(heroDown, cache.New(), testConfig(), nil).LoadAll(context.Background())
			assert.Nil(t, hero)
			assert.Len(t, trails, 2)
			assert.Len(t, exps, 1)

			trailsDown := healthySources()
			trailsDown.trails = func(context.Context) ([]domain.TrailSummary, error) { return nil, fail }
			hero, trails, exps = service.NewAggregator(trailsDown, cache.New(), testConfig(), nil).LoadAll(context.Background())
			assert.NotNil(t, hero)
			assert.NotNil(t, trails)
			assert.Empty(t, trails)
			assert.Len(t, exps, 1)

			expsDown := healthySources()
			expsDown.expeditions = func(context.Context) ([]domain.ExpeditionSummary, error) { return nil, fail }
			hero, trails, exps = service.NewAggregator(expsDown, cache.New(), testConfig(), nil).LoadAll(context.Background())
			assert.NotNil(t, hero)
			assert.Len(t, trails, 2)
			assert.NotNil(t, exps)
			assert.Empty(t, exps)
		})
	}
}

// TestLoadAll_ReadsRunConcurrently makes every source wait until all three
// have started. A sequential implementation would never get past the first.
func TestLoadAll_ReadsRunConcurrently(t *testing.T) {
	arrived := make(chan struct{}, 3)
	barrier := func(ctx context.Context) error {
		arrived <- struct{}{}
		deadline := time.After(2 * time.Second)
		for len(arrived) < 3 {
			select {
			case <-deadline:
				return errors.New("sources were not read concurrently")
			case <-time.After(time.Millisecond):
			}
		}
		return nil
	}

	src := &mockSources{
		hero: func(ctx context.Context) (*domain.HeroContent, error) {
			if err := barrier(ctx); err != nil {
				return nil, err
			}
			return &domain.HeroContent{Title: "Hero"}, nil
		},
		trails: func(ctx context.Context) ([]domain.TrailSummary, error) {
			if err := barrier(ctx); err != nil {
				return nil, err
			}
			return []domain.TrailSummary{{ID: "t1"}}, nil
		},
		expeditions: func(ctx context.Context) ([]domain.ExpeditionSummary, error) {
			if err := barrier(ctx); err != nil {
				return nil, err
			}
			return []domain.ExpeditionSummary{{ID: "e1"}}, nil
		},
	}

	hero, trails, exps := service.NewAggregator(src, cache.New(), testConfig(), nil).LoadAll(context.Background())

	assert.NotNil(t, hero)
	assert.Len(t, trails, 1)
	assert.Len(t, exps, 1)
}

func TestLoadAll_UsesCacheWithinTTL(t *testing.T) {
	src := healthySources()
	agg := service.NewAggregator(src, cache.New(), testConfig(), nil)

	agg.LoadAll(context.Background())
	agg.LoadAll(context.Background())

	assert.EqualValues(t, 1, src.heroCalls.Load())
	assert.EqualValues(t, 1, src.trailCalls.Load())
	assert.EqualValues(t, 1, src.expeditionCalls.Load())
}

func TestLoadAll_RetriesFailedSourceOnly(t *testing.T) {
	src := healthySources()
	var trailsUp atomic.Bool
	src.trails = func(context.Context) ([]domain.TrailSummary, error) {
		if !trailsUp.Load() {
			return nil, &domain.FetchError{Source: "trails", Kind: domain.BadStatus, Status: 503}
		}
		return []domain.TrailSummary{{ID: "t1"}}, nil
	}
	agg := service.NewAggregator(src, cache.New(), testConfig(), nil)

	_, trails, _ := agg.LoadAll(context.Background())
	assert.Empty(t, trails)

	trailsUp.Store(true)
	_, trails, _ = agg.LoadAll(context.Background())

	assert.Len(t, trails, 1)
	assert.EqualValues(t, 2, src.trailCalls.Load())
	assert.EqualValues(t, 1, src.heroCalls.Load())
	assert.EqualValues(t, 1, src.expeditionCalls.Load())
}
