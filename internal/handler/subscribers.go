// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
)

// SubscribersHandler serves the admin subscriber management pages.
type SubscribersHandler struct {
	renderer     *render.Renderer
	subscribers  *service.SubscriberService
	eventService *service.EventService
}

// NewSubscribersHandler creates a new SubscribersHandler.
func NewSubscribersHandler(db *sql.DB, renderer *render.Renderer) *SubscribersHandler {
	return &SubscribersHandler{
		renderer:     renderer,
		subscribers:  service.NewSubscriberService(db),
		eventService: service.NewEventService(db),
	}
}

// SubscribersData holds the subscriber list page data.
type SubscribersData struct {
	Subscribers []model.Subscriber
	ActiveCount int64
}

// Index renders the subscriber list.
func (h *SubscribersHandler) Index(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscribers.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list subscribers", "error", err)
		return
	}
	active, err := h.subscribers.CountActive(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count subscribers", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/subscribers", render.TemplateData{
		Title: "Subscribers",
		User:  userFromRequest(r),
		Data:  SubscribersData{Subscribers: subs, ActiveCount: active},
	}); err != nil {
		logAndInternalError(w, "failed to render subscribers page", "error", err)
	}
}

// Create adds a subscriber manually from the admin form.
func (h *SubscribersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSubscribers) {
		return
	}

	sub, err := h.subscribers.Add(r.Context(), formValue(r, "email"), formValue(r, "name"), formValue(r, "notes"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			flashError(w, r, h.renderer, redirectAdminSubscribers, "Invalid email address")
		case errors.Is(err, service.ErrAlreadySubscribed):
			flashError(w, r, h.renderer, redirectAdminSubscribers, "Email is already subscribed")
		default:
			logAndInternalError(w, "failed to add subscriber", "error", err)
		}
		return
	}

	_ = h.eventService.LogSubscriberEvent(r.Context(), model.EventLevelInfo,
		"Subscriber added", middleware.GetUserIDPtr(r), map[string]any{"email": sub.Email})
	flashSuccess(w, r, h.renderer, redirectAdminSubscribers, "Subscriber added")
}

// Update edits a subscriber's name, notes and active flag.
func (h *SubscribersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSubscribers) {
		return
	}

	if err := h.subscribers.Update(r.Context(), id,
		formValue(r, "name"), formValue(r, "notes"), formBool(r, "is_active")); err != nil {
		logAndInternalError(w, "failed to update subscriber", "error", err, "subscriber_id", id)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminSubscribers, "Subscriber updated")
}

// Delete removes a subscriber.
func (h *SubscribersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.subscribers.Delete(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete subscriber", "error", err, "subscriber_id", id)
		return
	}

	_ = h.eventService.LogSubscriberEvent(r.Context(), model.EventLevelInfo,
		"Subscriber deleted", middleware.GetUserIDPtr(r), map[string]any{"subscriber_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminSubscribers, "Subscriber deleted")
}

// Export streams the active subscriber list as a CSV download.
func (h *SubscribersHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("subscribers-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.subscribers.ExportCSV(r.Context(), w); err != nil {
		// Headers are already written; log and abort the stream.
		logAndHTTPError(w, "export failed", http.StatusInternalServerError,
			"failed to export subscribers", "error", err)
	}
}
