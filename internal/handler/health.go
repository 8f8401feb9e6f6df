// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/olegiv/folio-go/internal/cache"
	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/version"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db         *sql.DB
	cache      cache.Cacher
	uploadsDir string
	version    version.Info
	startTime  time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *sql.DB, c cache.Cacher, uploadsDir string, v version.Info) *HealthHandler {
	return &HealthHandler{
		db:         db,
		cache:      c,
		uploadsDir: uploadsDir,
		version:    v,
		startTime:  time.Now(),
	}
}

// HealthStatusPublic is the minimal health response for unauthenticated callers.
type HealthStatusPublic struct {
	Status string `json:"status"`
}

// Check represents one component health check.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthStatus is the detailed health response for authenticated callers.
type HealthStatus struct {
	Status     string           `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
	Uptime     string           `json:"uptime"`
	Version    string           `json:"version"`
	Checks     map[string]Check `json:"checks"`
	Goroutines int              `json:"goroutines"`
}

// Health reports service health. Anonymous callers get only an
// up/down status; authenticated admins get component checks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]Check{
		"database": h.checkDatabase(r),
		"uploads":  h.checkUploads(),
		"cache":    h.checkCache(r),
	}

	status := "ok"
	httpStatus := http.StatusOK
	for _, c := range checks {
		if c.Status != "ok" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if middleware.GetUser(r) == nil {
		_ = json.NewEncoder(w).Encode(HealthStatusPublic{Status: status})
		return
	}

	_ = json.NewEncoder(w).Encode(HealthStatus{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		Version:    h.version.String(),
		Checks:     checks,
		Goroutines: runtime.NumGoroutine(),
	})
}

func (h *HealthHandler) checkDatabase(r *http.Request) Check {
	if err := h.db.PingContext(r.Context()); err != nil {
		return Check{Status: "error", Message: err.Error()}
	}
	return Check{Status: "ok"}
}

func (h *HealthHandler) checkUploads() Check {
	probe := filepath.Join(h.uploadsDir, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return Check{Status: "error", Message: "uploads directory not writable"}
	}
	_ = os.Remove(probe)
	return Check{Status: "ok"}
}

func (h *HealthHandler) checkCache(r *http.Request) Check {
	if c, ok := h.cache.(*cache.Redis); ok {
		if err := c.Ping(r.Context()); err != nil {
			return Check{Status: "error", Message: err.Error()}
		}
	}
	return Check{Status: "ok"}
}
