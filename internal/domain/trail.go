package domain

import (
	"encoding/json"
	"strings"
)

// Difficulty is the effort level of a trail.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	// DifficultyUnknown is used when the catalog sends a level we do not recognise.
	DifficultyUnknown Difficulty = ""
)

// ParseDifficulty maps catalog level strings, English or Portuguese, onto a
// Difficulty. Matching ignores case and surrounding whitespace.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "fácil", "facil":
		return DifficultyEasy
	case "medium", "médio", "medio", "moderate":
		return DifficultyMedium
	case "hard", "difícil", "dificil":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// UnmarshalJSON accepts any level string and normalises it.
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = ParseDifficulty(s)
	return nil
}

// Region locates a trail: a two-letter state code and a city.
type Region struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// TrailSummary is one entry of the published trail catalog.
// ExpeditionsCount is nil when the catalog did not compute it.
type TrailSummary struct {
	ID               string
	Name             string
	Region           Region
	DistanceKm       float64
	ElevationGain    int
	Difficulty       Difficulty
	Level            string // level text as sent by the catalog
	DurationHours    float64
	WaterPoints      bool
	Camping          bool
	Photos           []Image
	ExpeditionsCount *int
}
