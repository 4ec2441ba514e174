package domain

import "time"

// TrailRef is the trail embedded in an expedition listing.
type TrailRef struct {
	ID     string
	Name   string
	Region Region
}

// GuideRef identifies the guide leading an expedition.
type GuideRef struct {
	ID       string
	Name     string
	Verified bool
}

// ExpeditionSummary is one bookable expedition.
// PricePerHead is held in minor currency units (cents).
// Booked is nil when the listing did not report bookings; it may exceed MaxPeople.
type ExpeditionSummary struct {
	ID           string
	Title        string
	Trail        TrailRef
	StartDate    time.Time
	EndDate      time.Time
	PricePerHead int64
	MaxPeople    int
	Booked       *int
	Guide        GuideRef
}

// AvailableSlots is MaxPeople minus bookings, clamped at zero.
// Overbooking is hidden by the clamp rather than reported.
func (e ExpeditionSummary) AvailableSlots() int {
	booked := 0
	if e.Booked != nil {
		booked = *e.Booked
	}
	return max(e.MaxPeople-booked, 0)
}
