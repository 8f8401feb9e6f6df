// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
)

// ContentHandler serves the admin content section editors. The editor
// pages render the current entries as JSON for the client-side editor;
// saves go through the JSON API, which returns a per-item report.
type ContentHandler struct {
	renderer *render.Renderer
	content  *service.ContentService
	layouts  *service.LayoutService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(db *sql.DB, renderer *render.Renderer, layouts *service.LayoutService) *ContentHandler {
	return &ContentHandler{
		renderer: renderer,
		content:  service.NewContentService(db),
		layouts:  layouts,
	}
}

// SectionEditorData holds everything the section editor page needs.
type SectionEditorData struct {
	Section  string
	Title    string
	Items    any
	Layout   model.SectionLayout
	Style    model.CardStyle
	Sections []string
}

// Index redirects to the first section editor.
func (h *ContentHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, redirectAdminContent+"/"+model.SectionProjects, http.StatusSeeOther)
}

// Section renders the editor page for one content section.
func (h *ContentHandler) Section(w http.ResponseWriter, r *http.Request) {
	section := sectionParam(r)
	if !model.IsValidSection(section) {
		http.NotFound(w, r)
		return
	}

	items, err := h.listSection(r.Context(), section)
	if err != nil {
		logAndInternalError(w, "failed to list section entries", "error", err, "section", section)
		return
	}

	data := SectionEditorData{
		Section:  section,
		Title:    sectionTitle(section),
		Items:    items,
		Layout:   h.layouts.GetLayout(section),
		Style:    h.layouts.GetCardStyle(section),
		Sections: model.Sections,
	}

	if err := h.renderer.Render(w, r, "admin/content", render.TemplateData{
		Title: data.Title,
		User:  userFromRequest(r),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render content editor", "error", err, "section", section)
	}
}

// listSection loads the entries of one section as a typed slice.
func (h *ContentHandler) listSection(ctx context.Context, section string) (any, error) {
	switch section {
	case model.SectionProjects:
		return h.content.ListProjects(ctx)
	case model.SectionLeadership:
		return h.content.ListLeadership(ctx)
	case model.SectionAwards:
		return h.content.ListAwards(ctx)
	case model.SectionSpecialAwards:
		return h.content.ListSpecialAwards(ctx)
	case model.SectionPress:
		return h.content.ListPress(ctx)
	case model.SectionPublications:
		return h.content.ListPublications(ctx)
	case model.SectionEndorsements:
		return h.content.ListEndorsements(ctx)
	case model.SectionNewsletterIssues:
		return h.content.ListNewsletterIssues(ctx)
	case model.SectionCommunityEvents:
		return h.content.ListCommunityEvents(ctx)
	case model.SectionHeroImages:
		return h.content.ListHeroImages(ctx)
	default:
		return nil, nil
	}
}
