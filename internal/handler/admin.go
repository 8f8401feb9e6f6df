// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	queries     *store.Queries
	renderer    *render.Renderer
	content     *service.ContentService
	subscribers *service.SubscriberService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:     store.New(db),
		renderer:    renderer,
		content:     service.NewContentService(db),
		subscribers: service.NewSubscriberService(db),
	}
}

// DashboardData holds the counts shown on the admin dashboard.
type DashboardData struct {
	SectionCounts     map[string]int
	ActiveSubscribers int64
	EventCount        int64
	Sections          []string
}

// Dashboard renders the admin dashboard with per-section entry counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := DashboardData{
		SectionCounts: make(map[string]int),
		Sections:      model.Sections,
	}

	counts := []struct {
		section string
		count   func() (int, error)
	}{
		{model.SectionProjects, func() (int, error) {
			items, err := h.content.ListProjects(ctx)
			return len(items), err
		}},
		{model.SectionLeadership, func() (int, error) {
			items, err := h.content.ListLeadership(ctx)
			return len(items), err
		}},
		{model.SectionAwards, func() (int, error) {
			items, err := h.content.ListAwards(ctx)
			return len(items), err
		}},
		{model.SectionSpecialAwards, func() (int, error) {
			items, err := h.content.ListSpecialAwards(ctx)
			return len(items), err
		}},
		{model.SectionPress, func() (int, error) {
			items, err := h.content.ListPress(ctx)
			return len(items), err
		}},
		{model.SectionPublications, func() (int, error) {
			items, err := h.content.ListPublications(ctx)
			return len(items), err
		}},
		{model.SectionEndorsements, func() (int, error) {
			items, err := h.content.ListEndorsements(ctx)
			return len(items), err
		}},
		{model.SectionNewsletterIssues, func() (int, error) {
			items, err := h.content.ListNewsletterIssues(ctx)
			return len(items), err
		}},
		{model.SectionCommunityEvents, func() (int, error) {
			items, err := h.content.ListCommunityEvents(ctx)
			return len(items), err
		}},
		{model.SectionHeroImages, func() (int, error) {
			items, err := h.content.ListHeroImages(ctx)
			return len(items), err
		}},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			logAndInternalError(w, "failed to count section entries", "error", err, "section", c.section)
			return
		}
		data.SectionCounts[c.section] = n
	}

	subscribers, err := h.subscribers.CountActive(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count subscribers", "error", err)
		return
	}
	data.ActiveSubscribers = subscribers

	eventCount, err := h.queries.CountEvents(ctx, "")
	if err != nil {
		logAndInternalError(w, "failed to count events", "error", err)
		return
	}
	data.EventCount = eventCount

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		User:  userFromRequest(r),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
