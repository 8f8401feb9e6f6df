// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/folio-go/internal/auth"
	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		eventService:    service.NewEventService(db),
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Already-authenticated admins are
// sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		if _, err := h.queries.GetUserByID(r.Context(), userID); err == nil {
			http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
			return
		}
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Sign In",
	}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login processes the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := formValue(r, "email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	// Check account lockout before touching the database.
	if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
		slog.Warn("login attempt on locked account", "email", email)
		flashError(w, r, h.renderer, redirectLogin,
			fmt.Sprintf("Account temporarily locked. Try again in %s.", formatDuration(remaining)))
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Record the failed attempt even for unknown accounts so
			// the response timing does not reveal which emails exist.
			if lockedNow, lockDuration := h.loginProtection.RecordFailedAttempt(email); lockedNow {
				flashError(w, r, h.renderer, redirectLogin,
					fmt.Sprintf("Too many failed attempts. Account locked for %s.", formatDuration(lockDuration)))
				return
			}
			flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
			return
		}
		logAndInternalError(w, "failed to get user by email", "error", err)
		return
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		logAndInternalError(w, "failed to verify password", "error", err, "user_id", user.ID)
		return
	}
	if !ok {
		lockedNow, lockDuration := h.loginProtection.RecordFailedAttempt(email)
		_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning,
			"Failed login attempt", &user.ID, map[string]any{"email": email})
		if lockedNow {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Account locked for %s.", formatDuration(lockDuration)))
			return
		}
		if remaining := h.loginProtection.RemainingAttempts(email); remaining <= 2 {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Invalid email or password. %d attempts remaining.", remaining))
			return
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	h.loginProtection.RecordSuccessfulLogin(email)

	// Upgrade legacy hashes transparently on successful login.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Error("failed to upgrade password hash", "error", err, "user_id", user.ID)
			} else {
				slog.Info("password hash upgraded to argon2id", "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID); err != nil {
		slog.Error("failed to update last login", "error", err, "user_id", user.ID)
	}

	// Renew the session token to prevent session fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo,
		"User logged in", &user.ID, map[string]any{"email": user.Email})

	http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDPtr(r)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "failed to destroy session", "error", err)
		return
	}

	_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo,
		"User logged out", userID, nil)

	http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
}

// formatDuration renders a lockout duration in whole minutes or seconds.
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		m := int(d.Round(time.Minute).Minutes())
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	s := int(d.Round(time.Second).Seconds())
	if s <= 1 {
		return "1 second"
	}
	return fmt.Sprintf("%d seconds", s)
}
