package presenter

import (
	"time"

	"github.com/google/uuid"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

// Assembler orders built cards into the homepage sections. It never sorts or
// filters; upstream order is kept as received.
type Assembler struct {
	copy   Copy
	locale string
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewAssembler constructs an Assembler stamping view models with locale.
func NewAssembler(c Copy, locale string) *Assembler {
	return &Assembler{copy: c, locale: locale, now: time.Now, newID: uuid.New}
}

// Assemble builds the view model and sets each section's empty flag.
func (a *Assembler) Assemble(hero domain.HeroView, trails []domain.TrailCard, expeditions []domain.ExpeditionCard) domain.ViewModel {
	if trails == nil {
		trails = []domain.TrailCard{}
	}
	if expeditions == nil {
		expeditions = []domain.ExpeditionCard{}
	}

	return domain.ViewModel{
		ID:          a.newID(),
		GeneratedAt: a.now().UTC(),
		Locale:      a.locale,
		Hero:        hero,
		Trails: domain.TrailSection{
			Header:       header(a.copy.Trails),
			Items:        trails,
			IsEmpty:      len(trails) == 0,
			EmptyMessage: a.copy.Trails.EmptyMessage,
		},
		Expeditions: domain.ExpeditionSection{
			Header:       header(a.copy.Expeditions),
			Items:        expeditions,
			IsEmpty:      len(expeditions) == 0,
			EmptyMessage: a.copy.Expeditions.EmptyMessage,
		},
		GuideCTA: a.copy.GuideCallout,
	}
}

func header(s SectionCopy) domain.SectionHeader {
	return domain.SectionHeader{Title: s.Title, Subtitle: s.Subtitle, Href: s.Href}
}
