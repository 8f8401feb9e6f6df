// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
)

// LayoutsHandler serves the admin layout settings pages.
type LayoutsHandler struct {
	renderer     *render.Renderer
	layouts      *service.LayoutService
	snapshot     *service.SnapshotService
	eventService *service.EventService
}

// NewLayoutsHandler creates a new LayoutsHandler.
func NewLayoutsHandler(db *sql.DB, renderer *render.Renderer, layouts *service.LayoutService, snapshot *service.SnapshotService) *LayoutsHandler {
	return &LayoutsHandler{
		renderer:     renderer,
		layouts:      layouts,
		snapshot:     snapshot,
		eventService: service.NewEventService(db),
	}
}

// LayoutsData holds all section layouts and card styles for the settings page.
type LayoutsData struct {
	Sections []string
	Layouts  map[string]model.SectionLayout
	Styles   map[string]model.CardStyle
	Previews map[string]render.SectionView
}

// Index renders the layout settings overview. Each section's form
// carries a preview built from the same resolved SectionView the
// public page renders, so a save shows its effect immediately.
func (h *LayoutsHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot.Get(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load content snapshot", "error", err)
		return
	}

	data := LayoutsData{
		Sections: model.Sections,
		Layouts:  h.layouts.GetAllLayouts(),
		Styles:   h.layouts.GetAllCardStyles(),
		Previews: buildSections(snap),
	}

	if err := h.renderer.Render(w, r, "admin/layouts", render.TemplateData{
		Title: "Layouts",
		User:  userFromRequest(r),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render layouts page", "error", err)
	}
}

// Save processes a layout settings form for one section.
func (h *LayoutsHandler) Save(w http.ResponseWriter, r *http.Request) {
	section := sectionParam(r)
	if !model.IsValidSection(section) {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminLayouts) {
		return
	}

	layout := model.SectionLayout{
		SectionName:   section,
		Arrangement:   formValue(r, "arrangement"),
		Orientation:   formValue(r, "orientation"),
		Spacing:       formInt64(r, "spacing", model.SpacingRelaxed),
		ShowImage:     formBool(r, "show_image"),
		ImagePosition: formValue(r, "image_position"),
		ImageSize:     formValue(r, "image_size"),
	}

	style := model.CardStyle{
		BorderRadius: formValue(r, "border_radius"),
		Padding:      formInt64(r, "padding", 6),
		Shadow:       formValue(r, "shadow"),
		TextAlign:    formValue(r, "text_align"),
		TitleSize:    formValue(r, "title_size"),
		DescSize:     formValue(r, "desc_size"),
	}

	// Validate both halves before writing either.
	if err := layout.Validate(); err != nil {
		flashError(w, r, h.renderer, redirectAdminLayouts, "Invalid layout: "+err.Error())
		return
	}
	if err := style.Validate(); err != nil {
		flashError(w, r, h.renderer, redirectAdminLayouts, "Invalid card style: "+err.Error())
		return
	}

	if err := h.layouts.SetLayout(r.Context(), section, layout); err != nil {
		flashError(w, r, h.renderer, redirectAdminLayouts, "Invalid layout: "+err.Error())
		return
	}
	if err := h.layouts.SetCardStyle(r.Context(), section, style); err != nil {
		flashError(w, r, h.renderer, redirectAdminLayouts, "Invalid card style: "+err.Error())
		return
	}

	h.snapshot.Invalidate(r.Context())
	_ = h.eventService.LogLayoutEvent(r.Context(), model.EventLevelInfo,
		"Section layout updated", middleware.GetUserIDPtr(r), map[string]any{"section": section})

	flashSuccess(w, r, h.renderer, redirectAdminLayouts, "Layout saved")
}
