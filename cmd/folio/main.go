// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/folio-go/internal/cache"
	"github.com/olegiv/folio-go/internal/config"
	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/handler/api"
	"github.com/olegiv/folio-go/internal/logging"
	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/session"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/version"
	"github.com/olegiv/folio-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "folio - portfolio site with admin editor\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DB_PATH          SQLite database path (default: ./data/folio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_UPLOADS_DIR      Uploaded media directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_REDIS_URL        Redis URL for snapshot caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DO_SEED          Seed demo content on startup (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/folio-go\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("folio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log table
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Snapshot cache: Redis when configured, in-process memory otherwise
	siteCache, err := cache.New(cache.Options{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() { _ = siteCache.Close() }()
	if cfg.UseRedisCache() {
		slog.Info("snapshot cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("snapshot cache initialized", "backend", "memory")
	}

	// Services shared across handlers
	contentService := service.NewContentService(db)
	singletonService := service.NewSingletonService(db)
	layoutService := service.NewLayoutService(db)
	if err := layoutService.LoadAll(ctx); err != nil {
		return fmt.Errorf("loading section layouts: %w", err)
	}
	snapshotService := service.NewSnapshotService(contentService, singletonService,
		layoutService, siteCache, time.Duration(cfg.CacheTTL)*time.Second)

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Login protection: per-IP rate limit plus account lockout
	loginProtection := middleware.NewLoginProtection(middleware.LoginProtectionConfig{})
	slog.Info("login protection initialized",
		"ip_rate_limit", "0.5 req/s",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)

	// Handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer)
	contentHandler := handler.NewContentHandler(db, renderer, layoutService)
	layoutsHandler := handler.NewLayoutsHandler(db, renderer, layoutService, snapshotService)
	singletonsHandler := handler.NewSingletonsHandler(db, renderer, snapshotService)
	subscribersHandler := handler.NewSubscribersHandler(db, renderer)
	mediaHandler := handler.NewMediaHandler(db, renderer, cfg.UploadsDir)
	eventsHandler := handler.NewEventsHandler(db, renderer)
	frontendHandler := handler.NewFrontendHandler(db, renderer, snapshotService, cfg.BaseURL, cfg.IsDevelopment())
	healthHandler := handler.NewHealthHandler(db, siteCache, cfg.UploadsDir, versionInfo)
	apiHandler := api.NewHandler(db, layoutService, snapshotService)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Public site
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.With(middleware.IPRateLimit(1, 3)).Post(handler.RouteSubscribe, frontendHandler.Subscribe)
	})

	r.Get("/sitemap.xml", frontendHandler.Sitemap)
	r.Get("/robots.txt", frontendHandler.Robots)
	r.Get("/.well-known/security.txt", frontendHandler.SecurityTxt)

	r.Get("/health", healthHandler.Health)

	// Admin area
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)

		// Sign-in is the only unauthenticated admin route
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, db))
			r.Use(middleware.RequireAdmin())

			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			r.Post(handler.RouteLogout, authHandler.Logout)

			r.Get(handler.RouteContent, contentHandler.Index)
			r.Get(handler.RouteContentSection, contentHandler.Section)

			r.Get(handler.RouteLayouts, layoutsHandler.Index)
			r.Post(handler.RouteLayoutsSection, layoutsHandler.Save)

			r.Get(handler.RouteHero, singletonsHandler.HeroForm)
			r.Post(handler.RouteHero, singletonsHandler.SaveHero)
			r.Get(handler.RouteAbout, singletonsHandler.AboutForm)
			r.Post(handler.RouteAbout, singletonsHandler.SaveAbout)
			r.Get(handler.RouteCommunity, singletonsHandler.CommunityForm)
			r.Post(handler.RouteCommunity, singletonsHandler.SaveCommunity)
			r.Get(handler.RouteFooter, singletonsHandler.FooterForm)
			r.Post(handler.RouteFooter, singletonsHandler.SaveFooter)

			r.Get(handler.RouteSubscribers, subscribersHandler.Index)
			r.Post(handler.RouteSubscribers, subscribersHandler.Create)
			r.Get(handler.RouteSubscribers+handler.RouteSuffixExport, subscribersHandler.Export)
			r.Post(handler.RouteSubscribersID, subscribersHandler.Update)
			r.Post(handler.RouteSubscribersID+"/delete", subscribersHandler.Delete)

			r.Get(handler.RouteMedia, mediaHandler.Index)
			r.Post(handler.RouteMedia+handler.RouteSuffixUpload, mediaHandler.Upload)
			r.Post(handler.RouteMediaID+"/delete", mediaHandler.Delete)

			r.Get(handler.RouteEvents, eventsHandler.Index)

			// JSON API used by the admin editor
			r.Route("/api", func(r chi.Router) {
				r.Get("/status", apiHandler.Status)

				r.Get("/sections/{section}", apiHandler.GetSection)
				r.Put("/sections/{section}", apiHandler.SaveSection)
				r.Delete("/sections/{section}/{id}", apiHandler.DeleteSectionItem)

				r.Get("/layouts", apiHandler.GetLayouts)
				r.Get("/layouts/{section}", apiHandler.GetSectionLayout)
				r.Put("/layouts/{section}", apiHandler.SaveSectionLayout)

				r.Get("/hero", apiHandler.GetHero)
				r.Put("/hero", apiHandler.SaveHero)
				r.Get("/about", apiHandler.GetAbout)
				r.Put("/about", apiHandler.SaveAbout)
				r.Get("/community", apiHandler.GetCommunity)
				r.Put("/community", apiHandler.SaveCommunity)
				r.Get("/footer", apiHandler.GetFooter)
				r.Put("/footer", apiHandler.SaveFooter)
			})
		})
	})

	// Static assets from the embedded filesystem, cached for 1 year
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", staticCache(31536000)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))

	// Uploaded media from disk, cached for 1 week
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}
	r.Handle("/uploads/*", staticCache(604800)(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// staticCache sets a long-lived Cache-Control header on static responses.
func staticCache(maxAge int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
			next.ServeHTTP(w, r)
		})
	}
}
