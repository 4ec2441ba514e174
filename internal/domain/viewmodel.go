package domain

import (
	"time"

	"github.com/google/uuid"
)

// HeroView is the hero block after defaults have been applied.
// Every field is populated; IsDefault reports that no CMS content was available.
type HeroView struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	CTAPrimary   Link   `json:"ctaPrimary"`
	CTASecondary Link   `json:"ctaSecondary"`
	Background   *Image `json:"background,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

// TrailCard is a render-ready trail.
type TrailCard struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	State            string  `json:"state"`
	City             string  `json:"city"`
	LocationLabel    string  `json:"locationLabel"`
	DistanceKm       float64 `json:"distanceKm"`
	ElevationGain    int     `json:"elevationGain"`
	ElevationLabel   string  `json:"elevationLabel"`
	Difficulty       string  `json:"difficulty"`
	Level            string  `json:"level"`
	DurationHours    float64 `json:"durationHours"`
	DurationLabel    string  `json:"durationLabel"`
	WaterPoints      bool    `json:"waterPoints"`
	Camping          bool    `json:"camping"`
	Photo            Image   `json:"photo"`
	HasPhoto         bool    `json:"hasPhoto"`
	ExpeditionsCount *int    `json:"expeditionsCount,omitempty"`
	DetailHref       string  `json:"detailHref"`
}

// ExpeditionCard is a render-ready expedition with derived fields.
type ExpeditionCard struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	TrailID           string    `json:"trailId"`
	TrailName         string    `json:"trailName"`
	LocationLabel     string    `json:"locationLabel"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	DateRange         string    `json:"dateRange"`
	PricePerHead      int64     `json:"pricePerHead"`
	Price             string    `json:"price"`
	PriceLabel        string    `json:"priceLabel"`
	MaxPeople         int       `json:"maxPeople"`
	Booked            int       `json:"booked"`
	AvailableSlots    int       `json:"availableSlots"`
	AvailabilityLabel string    `json:"availabilityLabel"`
	SoldOut           bool      `json:"soldOut"`
	GuideID           string    `json:"guideId"`
	GuideName         string    `json:"guideName"`
	GuideVerified     bool      `json:"guideVerified"`
	BookingHref       string    `json:"bookingHref"`
}

// SectionHeader is the title row above a list section.
type SectionHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Href     string `json:"href,omitempty"`
}

// TrailSection is the "trail highlights" section.
type TrailSection struct {
	Header       SectionHeader `json:"header"`
	Items        []TrailCard   `json:"items"`
	IsEmpty      bool          `json:"isEmpty"`
	EmptyMessage string        `json:"emptyMessage"`
}

// ExpeditionSection is the "upcoming expeditions" section.
type ExpeditionSection struct {
	Header       SectionHeader    `json:"header"`
	Items        []ExpeditionCard `json:"items"`
	IsEmpty      bool             `json:"isEmpty"`
	EmptyMessage string           `json:"emptyMessage"`
}

// Callout is a static call-to-action block.
type Callout struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	CTA   Link   `json:"cta"`
}

// ViewModel is the complete homepage handed to the rendering layer.
// It is built fresh for every request and never mutated after assembly.
type ViewModel struct {
	ID          uuid.UUID         `json:"id"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Locale      string            `json:"locale"`
	Hero        HeroView          `json:"hero"`
	Trails      TrailSection      `json:"trails"`
	Expeditions ExpeditionSection `json:"expeditions"`
	GuideCTA    Callout           `json:"guideCallout"`
}
