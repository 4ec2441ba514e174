package service

import (
	"context"

	"github.com/trilhabr/home-aggregator/internal/domain"
	"github.com/trilhabr/home-aggregator/internal/presenter"
)

// Loader is the fan-out step HomeService depends on.
type Loader interface {
	LoadAll(ctx context.Context) (*domain.HeroContent, []domain.TrailSummary, []domain.ExpeditionSummary)
}

// HomeService produces the homepage view model.
type HomeService struct {
	loader    Loader
	builder   *presenter.Builder
	assembler *presenter.Assembler
}

// NewHomeService constructs a HomeService.
func NewHomeService(l Loader, b *presenter.Builder, a *presenter.Assembler) *HomeService {
	return &HomeService{loader: l, builder: b, assembler: a}
}

// Home loads every source and assembles the result. It cannot fail: an
// unavailable source shows up as a default hero or an empty section.
func (s *HomeService) Home(ctx context.Context) domain.ViewModel {
	hero, trails, expeditions := s.loader.LoadAll(ctx)
	return s.assembler.Assemble(
		s.builder.Hero(hero),
		s.builder.Trails(trails),
		s.builder.Expeditions(expeditions),
	)
}
