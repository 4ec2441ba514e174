// Package main is the entry point for the homepage aggregator API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/trilhabr/home-aggregator/internal/cache"
	"github.com/trilhabr/home-aggregator/internal/config"
	"github.com/trilhabr/home-aggregator/internal/domain"
	"github.com/trilhabr/home-aggregator/internal/format"
	"github.com/trilhabr/home-aggregator/internal/handler"
	"github.com/trilhabr/home-aggregator/internal/middleware"
	"github.com/trilhabr/home-aggregator/internal/presenter"
	"github.com/trilhabr/home-aggregator/internal/service"
	"github.com/trilhabr/home-aggregator/internal/source"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Formatting -------------------------------------------------------
	formatter, err := format.New(cfg.Locale, cfg.Currency)
	if err != nil {
		slog.Error("invalid currency", "error", err)
		os.Exit(1)
	}
	if _, err := formatter.Currency(0); errors.Is(err, domain.ErrUnsupportedLocale) {
		slog.Warn("no locale data, using fixed formats", "locale", cfg.Locale)
	}

	// --- Aggregation ------------------------------------------------------
	// The http.Client carries no timeout of its own; each source call is
	// bounded by its configured timeout instead.
	client := source.NewClient(cfg.UpstreamBaseURL, &http.Client{}, logger)
	responses := cache.New(cache.WithLogger(logger))
	aggregator := service.NewAggregator(client, responses, service.AggregatorConfig{
		Locale:          cfg.Locale,
		TrailLimit:      cfg.TrailLimit,
		ExpeditionLimit: cfg.ExpeditionLimit,
		Hero:            service.SourcePolicy{TTL: cfg.Hero.TTL, Timeout: cfg.Hero.Timeout},
		Trails:          service.SourcePolicy{TTL: cfg.Trails.TTL, Timeout: cfg.Trails.Timeout},
		Expeditions:     service.SourcePolicy{TTL: cfg.Expeditions.TTL, Timeout: cfg.Expeditions.Timeout},
	}, logger)

	homeCopy := presenter.DefaultCopy()
	homeCopy.Hero.Title = cfg.HeroDefaults.Title
	homeCopy.Hero.Subtitle = cfg.HeroDefaults.Subtitle
	homeCopy.Hero.Primary = domain.Link{Label: cfg.HeroDefaults.PrimaryLabel, Href: cfg.HeroDefaults.PrimaryHref}
	homeCopy.Hero.Secondary = domain.Link{Label: cfg.HeroDefaults.SecondaryLabel, Href: cfg.HeroDefaults.SecondaryHref}
	homeCopy.TrailPlaceholder = cfg.TrailPlaceholderImage

	home := service.NewHomeService(
		aggregator,
		presenter.NewBuilder(homeCopy, formatter),
		presenter.NewAssembler(homeCopy, cfg.Locale),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(1 << 20))

	r.Mount("/", handler.NewServer(home).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "upstream", cfg.UpstreamBaseURL, "locale", cfg.Locale)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
