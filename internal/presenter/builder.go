package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trilhabr/home-aggregator/internal/domain"
	"github.com/trilhabr/home-aggregator/internal/format"
)

// Builder maps upstream records onto view model cards.
type Builder struct {
	copy Copy
	fmt  format.Formatter
}

// NewBuilder constructs a Builder that renders with f.
func NewBuilder(c Copy, f format.Formatter) *Builder {
	return &Builder{copy: c, fmt: f}
}

// Hero applies the configured defaults to h. A nil h yields the default hero
// with IsDefault set; a partial h keeps what the CMS sent and fills the gaps.
func (b *Builder) Hero(h *domain.HeroContent) domain.HeroView {
	d := b.copy.Hero
	if h == nil {
		return domain.HeroView{
			Title:        d.Title,
			Subtitle:     d.Subtitle,
			CTAPrimary:   d.Primary,
			CTASecondary: d.Secondary,
			IsDefault:    true,
		}
	}

	v := domain.HeroView{
		Title:        orDefault(h.Title, d.Title),
		Subtitle:     orDefault(h.Subtitle, d.Subtitle),
		CTAPrimary:   linkOrDefault(h.CTAPrimary, d.Primary),
		CTASecondary: linkOrDefault(h.CTASecondary, d.Secondary),
	}
	if h.Background != nil && h.Background.URL != "" {
		v.Background = &domain.Image{
			URL: h.Background.URL,
			Alt: orDefault(h.Background.Alt, d.BackgroundAlt),
		}
	}
	return v
}

// Trail copies t and picks its first photo, or the placeholder when it has none.
func (b *Builder) Trail(t domain.TrailSummary) domain.TrailCard {
	card := domain.TrailCard{
		ID:               t.ID,
		Name:             t.Name,
		State:            t.Region.State,
		City:             t.Region.City,
		LocationLabel:    locationLabel(t.Region),
		DistanceKm:       t.DistanceKm,
		ElevationGain:    t.ElevationGain,
		ElevationLabel:   strconv.Itoa(t.ElevationGain) + " m",
		Difficulty:       string(t.Difficulty),
		Level:            t.Level,
		DurationHours:    t.DurationHours,
		DurationLabel:    strconv.FormatFloat(t.DurationHours, 'f', -1, 64) + " h",
		WaterPoints:      t.WaterPoints,
		Camping:          t.Camping,
		Photo:            domain.Image{URL: b.copy.TrailPlaceholder, Alt: t.Name},
		ExpeditionsCount: t.ExpeditionsCount,
		DetailHref:       b.copy.TrailHrefPrefix + t.ID,
	}
	if len(t.Photos) > 0 && t.Photos[0].URL != "" {
		card.Photo = domain.Image{URL: t.Photos[0].URL, Alt: orDefault(t.Photos[0].Alt, t.Name)}
		card.HasPhoto = true
	}
	return card
}

// Trails maps every trail, preserving order.
func (b *Builder) Trails(ts []domain.TrailSummary) []domain.TrailCard {
	out := make([]domain.TrailCard, 0, len(ts))
	for _, t := range ts {
		out = append(out, b.Trail(t))
	}
	return out
}

// Expedition computes availability and the formatted price and date range.
func (b *Builder) Expedition(e domain.ExpeditionSummary) domain.ExpeditionCard {
	booked := 0
	if e.Booked != nil {
		booked = *e.Booked
	}
	slots := e.AvailableSlots()

	card := domain.ExpeditionCard{
		ID:             e.ID,
		Title:          e.Title,
		TrailID:        e.Trail.ID,
		TrailName:      e.Trail.Name,
		LocationLabel:  locationLabel(e.Trail.Region) + " • " + e.Trail.Name,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		DateRange:      b.dateRange(e),
		PricePerHead:   e.PricePerHead,
		Price:          b.price(e.PricePerHead),
		MaxPeople:      e.MaxPeople,
		Booked:         booked,
		AvailableSlots: slots,
		SoldOut:        slots == 0,
		GuideID:        e.Guide.ID,
		GuideName:      e.Guide.Name,
		GuideVerified:  e.Guide.Verified,
		BookingHref:    b.copy.ExpeditionHrefPrefix + e.ID,
	}
	card.PriceLabel = strings.TrimSpace(card.Price + " " + b.copy.PriceSuffix)
	if card.SoldOut {
		card.AvailabilityLabel = b.copy.SoldOutLabel
	} else {
		card.AvailabilityLabel = fmt.Sprintf(b.copy.SlotsFormat, slots)
	}
	return card
}

// Expeditions maps every expedition, preserving order.
func (b *Builder) Expeditions(es []domain.ExpeditionSummary) []domain.ExpeditionCard {
	out := make([]domain.ExpeditionCard, 0, len(es))
	for _, e := range es {
		out = append(out, b.Expedition(e))
	}
	return out
}

func (b *Builder) price(minor int64) string {
	s, err := b.fmt.Currency(minor)
	if err != nil {
		return format.FixedCurrency(b.fmt.Symbol(), minor)
	}
	return s
}

func (b *Builder) dateRange(e domain.ExpeditionSummary) string {
	s, err := b.fmt.DateRange(e.StartDate, e.EndDate)
	if err != nil {
		return format.FixedDateRange(e.StartDate, e.EndDate)
	}
	return s
}

func locationLabel(r domain.Region) string {
	switch {
	case r.City == "":
		return r.State
	case r.State == "":
		return r.City
	default:
		return r.City + ", " + r.State
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func linkOrDefault(l *domain.Link, def domain.Link) domain.Link {
	if l == nil || l.Href == "" || l.Label == "" {
		return def
	}
	return *l
}
