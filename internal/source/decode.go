package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

// Upstream wire shapes. Optional fields are pointers so that "absent" and
// "zero" stay distinguishable until mapping.

type linkDTO struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type imageDTO struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type heroDTO struct {
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	CTAPrimary   *linkDTO  `json:"ctaPrimary"`
	CTASecondary *linkDTO  `json:"ctaSecondary"`
	Background   *imageDTO `json:"background"`
}

type trailDTO struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	State            string     `json:"state"`
	City             string     `json:"city"`
	DistanceKm       float64    `json:"distanceKm"`
	ElevationGain    float64    `json:"elevationGain"`
	Level            string     `json:"level"`
	DurationH        float64    `json:"durationH"`
	WaterPoints      bool       `json:"waterPoints"`
	Camping          bool       `json:"camping"`
	Photos           []imageDTO `json:"photos"`
	ExpeditionsCount *int       `json:"expeditionsCount"`
}

type trailRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
	City  string `json:"city"`
}

type guideDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified *bool  `json:"verified"`
}

type expeditionDTO struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Trail        trailRefDTO `json:"trail"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	PricePerHead float64     `json:"pricePerHead"`
	MaxPeople    int         `json:"maxPeople"`
	Booked       *int        `json:"booked"`
	Guide        guideDTO    `json:"guide"`
}

// FetchHero reads the CMS hero for locale. A nil hero with a nil error means
// the CMS has no hero configured.
func (c *Client) FetchHero(ctx context.Context, locale string, timeout time.Duration) (*domain.HeroContent, error) {
	ep := HeroEndpoint(locale)
	raw, err := c.Fetch(ctx, ep, timeout)
	if err != nil || raw == nil {
		return nil, err
	}

	var dto heroDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, malformed(ep, err)
	}
	return heroFromDTO(dto), nil
}

// FetchTrails reads up to limit published trails in catalog order.
func (c *Client) FetchTrails(ctx context.Context, limit int, timeout time.Duration) ([]domain.TrailSummary, error) {
	ep := TrailsEndpoint(limit)
	raw, err := c.Fetch(ctx, ep, timeout)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.TrailSummary{}, nil
	}

	var dtos []trailDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, malformed(ep, err)
	}

	trails := make([]domain.TrailSummary, 0, len(dtos))
	for i, d := range dtos {
		if strings.TrimSpace(d.ID) == "" {
			c.log.Warn("dropping trail without id", "source", ep.Name, "index", i)
			continue
		}
		trails = append(trails, trailFromDTO(d))
	}
	return trails, nil
}

// FetchExpeditions reads up to limit upcoming expeditions in listing order.
// Items with unparsable dates, an end before the start, a non-positive
// capacity or a negative price are dropped and logged; the rest are kept.
func (c *Client) FetchExpeditions(ctx context.Context, limit int, timeout time.Duration) ([]domain.ExpeditionSummary, error) {
	ep := ExpeditionsEndpoint(limit)
	raw, err := c.Fetch(ctx, ep, timeout)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.ExpeditionSummary{}, nil
	}

	var dtos []expeditionDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, malformed(ep, err)
	}

	exps := make([]domain.ExpeditionSummary, 0, len(dtos))
	for i, d := range dtos {
		e, err := expeditionFromDTO(d)
		if err != nil {
			c.log.Warn("dropping invalid expedition", "source", ep.Name, "index", i, "id", d.ID, "error", err)
			continue
		}
		exps = append(exps, e)
	}
	return exps, nil
}

func malformed(ep Endpoint, err error) error {
	return &domain.FetchError{Source: ep.Name, Kind: domain.MalformedPayload, Err: err}
}

// --- mapping helpers --------------------------------------------------------

func heroFromDTO(d heroDTO) *domain.HeroContent {
	h := &domain.HeroContent{Title: d.Title, Subtitle: d.Subtitle}
	if d.CTAPrimary != nil {
		h.CTAPrimary = &domain.Link{Label: d.CTAPrimary.Label, Href: d.CTAPrimary.Href}
	}
	if d.CTASecondary != nil {
		h.CTASecondary = &domain.Link{Label: d.CTASecondary.Label, Href: d.CTASecondary.Href}
	}
	if d.Background != nil && d.Background.URL != "" {
		h.Background = &domain.Image{URL: d.Background.URL, Alt: d.Background.Alt}
	}
	return h
}

func trailFromDTO(d trailDTO) domain.TrailSummary {
	photos := make([]domain.Image, 0, len(d.Photos))
	for _, p := range d.Photos {
		photos = append(photos, domain.Image{URL: p.URL, Alt: p.Alt})
	}
	return domain.TrailSummary{
		ID:               d.ID,
		Name:             d.Name,
		Region:           domain.Region{State: d.State, City: d.City},
		DistanceKm:       d.DistanceKm,
		ElevationGain:    int(math.Round(d.ElevationGain)),
		Difficulty:       domain.ParseDifficulty(d.Level),
		Level:            d.Level,
		DurationHours:    d.DurationH,
		WaterPoints:      d.WaterPoints,
		Camping:          d.Camping,
		Photos:           photos,
		ExpeditionsCount: d.ExpeditionsCount,
	}
}

func expeditionFromDTO(d expeditionDTO) (domain.ExpeditionSummary, error) {
	start, err := parseDate(d.StartDate)
	if err != nil {
		return domain.ExpeditionSummary{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := parseDate(d.EndDate)
	if err != nil {
		return domain.ExpeditionSummary{}, fmt.Errorf("endDate: %w", err)
	}
	if end.Before(start) {
		return domain.ExpeditionSummary{}, fmt.Errorf("endDate %s is before startDate %s", d.EndDate, d.StartDate)
	}
	if d.MaxPeople <= 0 {
		return domain.ExpeditionSummary{}, fmt.Errorf("maxPeople must be positive, got %d", d.MaxPeople)
	}
	if d.PricePerHead < 0 || math.IsNaN(d.PricePerHead) {
		return domain.ExpeditionSummary{}, fmt.Errorf("pricePerHead must not be negative, got %v", d.PricePerHead)
	}

	e := domain.ExpeditionSummary{
		ID:    d.ID,
		Title: d.Title,
		Trail: domain.TrailRef{
			ID:     d.Trail.ID,
			Name:   d.Trail.Name,
			Region: domain.Region{State: d.Trail.State, City: d.Trail.City},
		},
		StartDate:    start,
		EndDate:      end,
		PricePerHead: int64(math.Round(d.PricePerHead * 100)),
		MaxPeople:    d.MaxPeople,
		Guide:        domain.GuideRef{ID: d.Guide.ID, Name: d.Guide.Name},
	}
	if d.Booked != nil {
		b := max(*d.Booked, 0)
		e.Booked = &b
	}
	if d.Guide.Verified != nil {
		e.Guide.Verified = *d.Guide.Verified
	}
	return e, nil
}

// parseDate accepts RFC 3339 timestamps and bare calendar dates.
// Bare dates are kept as UTC midnight so the calendar day never shifts.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
