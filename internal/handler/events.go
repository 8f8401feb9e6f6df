// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/uikit"
)

// eventsPerPage is the event log page size.
const eventsPerPage = 50

// EventsHandler serves the admin event log.
type EventsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, renderer *render.Renderer) *EventsHandler {
	return &EventsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// EventsData holds the event log page data.
type EventsData struct {
	Events     []model.Event
	Category   string
	Categories []string
	Pagination uikit.Pagination
}

// Index renders the event log, optionally filtered by category.
func (h *EventsHandler) Index(w http.ResponseWriter, r *http.Request) {
	category := formValue(r, "category")
	page := uikit.ParsePageParam(r)

	total, err := h.queries.CountEvents(r.Context(), category)
	if err != nil {
		logAndInternalError(w, "failed to count events", "error", err)
		return
	}

	totalPages := uikit.CalculateTotalPages(int(total), eventsPerPage)
	page = uikit.ClampPage(page, totalPages)

	events, err := h.queries.ListEvents(r.Context(), store.ListEventsParams{
		Category: category,
		Limit:    eventsPerPage,
		Offset:   int64(page-1) * eventsPerPage,
	})
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	data := EventsData{
		Events:   events,
		Category: category,
		Categories: []string{
			model.EventCategoryAuth,
			model.EventCategoryContent,
			model.EventCategoryLayout,
			model.EventCategorySubscriber,
			model.EventCategoryMedia,
			model.EventCategorySystem,
		},
		Pagination: uikit.BuildPagination(page, int(total), eventsPerPage, r.URL.Path, r.URL.Query()),
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title: "Events",
		User:  userFromRequest(r),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render events page", "error", err)
	}
}
