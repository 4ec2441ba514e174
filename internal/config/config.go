// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SourceConfig bounds one upstream source.
type SourceConfig struct {
	// TTL is how long a successful response is cached. Defaults to 60s.
	TTL time.Duration

	// Timeout bounds a single upstream call. Defaults to 3s.
	Timeout time.Duration
}

// HeroCopy is the hero text shown when the CMS has nothing usable.
type HeroCopy struct {
	Title          string
	Subtitle       string
	PrimaryLabel   string
	PrimaryHref    string
	SecondaryLabel string
	SecondaryHref  string
}

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of origins the rendering layer is served from.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// UpstreamBaseURL is the base URL of the CMS, catalog and booking services. Required.
	UpstreamBaseURL string

	// Locale is the display locale and the CMS locale parameter. Defaults to "pt-BR".
	Locale string

	// Currency is the ISO 4217 code prices are shown in. Defaults to "BRL".
	Currency string

	// TrailLimit and ExpeditionLimit cap the list sizes requested upstream.
	TrailLimit      int
	ExpeditionLimit int

	Hero        SourceConfig
	Trails      SourceConfig
	Expeditions SourceConfig

	// HeroDefaults replaces the CMS hero when it is unavailable.
	HeroDefaults HeroCopy

	// TrailPlaceholderImage is shown for trails without photos.
	TrailPlaceholderImage string
}

// Load reads an optional .env file, then configuration from environment
// variables. Variables already set in the environment win over .env.
// Returns an error naming every required variable that is missing and every
// value that cannot be parsed.
func Load() (Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	var problems []string

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Locale:          getEnv("LOCALE", "pt-BR"),
		Currency:        strings.ToUpper(getEnv("CURRENCY", "BRL")),
		TrailLimit:      getInt("TRAIL_LIMIT", 12, &problems),
		ExpeditionLimit: getInt("EXPEDITION_LIMIT", 8, &problems),
		Hero: SourceConfig{
			TTL:     getDuration("HERO_TTL", 60*time.Second, &problems),
			Timeout: getDuration("HERO_TIMEOUT", 3*time.Second, &problems),
		},
		Trails: SourceConfig{
			TTL:     getDuration("TRAILS_TTL", 60*time.Second, &problems),
			Timeout: getDuration("TRAILS_TIMEOUT", 3*time.Second, &problems),
		},
		Expeditions: SourceConfig{
			TTL:     getDuration("EXPEDITIONS_TTL", 60*time.Second, &problems),
			Timeout: getDuration("EXPEDITIONS_TIMEOUT", 3*time.Second, &problems),
		},
		HeroDefaults: HeroCopy{
			Title:          getEnv("HERO_DEFAULT_TITLE", "Descubra trilhas reais, reserve expedições com guias verificados"),
			Subtitle:       getEnv("HERO_DEFAULT_SUBTITLE", "Conectamos você a parques e montanhas do Brasil com segurança, transparência e suporte."),
			PrimaryLabel:   getEnv("HERO_DEFAULT_PRIMARY_LABEL", "Explorar trilhas"),
			PrimaryHref:    getEnv("HERO_DEFAULT_PRIMARY_HREF", "/trilhas"),
			SecondaryLabel: getEnv("HERO_DEFAULT_SECONDARY_LABEL", "Organizar expedições"),
			SecondaryHref:  getEnv("HERO_DEFAULT_SECONDARY_HREF", "/guias"),
		},
		TrailPlaceholderImage: getEnv("TRAIL_PLACEHOLDER_IMAGE", "/images/placeholder-trail.jpg"),
	}

	cfg.UpstreamBaseURL = os.Getenv("UPSTREAM_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		problems = append(problems, "UPSTREAM_BASE_URL is required")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses key with time.ParseDuration. Bare integers are read as
// seconds. Unparsable or negative values are recorded in problems.
func getDuration(key string, fallback time.Duration, problems *[]string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*problems = append(*problems, fmt.Sprintf("%s must be a non-negative duration, got %q", key, v))
		return fallback
	}
	return d
}

// getInt parses key as a positive integer.
func getInt(key string, fallback int, problems *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		*problems = append(*problems, fmt.Sprintf("%s must be a positive integer, got %q", key, v))
		return fallback
	}
	return n
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
