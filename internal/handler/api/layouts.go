// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
)

// SectionAppearance pairs a section's layout with its card style.
type SectionAppearance struct {
	Layout model.SectionLayout `json:"layout"`
	Style  model.CardStyle     `json:"style"`
}

// GetLayouts returns the layout and card style of every section,
// with built-in defaults filled in for sections never saved.
func (h *Handler) GetLayouts(w http.ResponseWriter, _ *http.Request) {
	layouts := h.layouts.GetAllLayouts()
	styles := h.layouts.GetAllCardStyles()

	out := make(map[string]SectionAppearance, len(model.Sections))
	for _, section := range model.Sections {
		out[section] = SectionAppearance{
			Layout: layouts[section],
			Style:  styles[section],
		}
	}
	WriteSuccess(w, out)
}

// GetSectionLayout returns the layout and card style of one section.
func (h *Handler) GetSectionLayout(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !model.IsValidSection(section) {
		WriteNotFound(w, "Unknown section")
		return
	}
	WriteSuccess(w, SectionAppearance{
		Layout: h.layouts.GetLayout(section),
		Style:  h.layouts.GetCardStyle(section),
	})
}

// SaveSectionLayout replaces the layout and card style of one section.
// Both parts validate their enums; invalid values reject the whole
// request and leave the stored appearance untouched.
func (h *Handler) SaveSectionLayout(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !model.IsValidSection(section) {
		WriteNotFound(w, "Unknown section")
		return
	}

	var body SectionAppearance
	if !decodeBody(w, r, &body) {
		return
	}

	// Both halves validate before either one is written, so a bad
	// style cannot leave a half-updated appearance behind.
	body.Layout.SectionName = section
	if err := body.Layout.Validate(); err != nil {
		WriteValidationError(w, map[string]string{"layout": err.Error()})
		return
	}
	if err := body.Style.Validate(); err != nil {
		WriteValidationError(w, map[string]string{"style": err.Error()})
		return
	}

	if err := h.layouts.SetLayout(r.Context(), section, body.Layout); err != nil {
		WriteValidationError(w, map[string]string{"layout": err.Error()})
		return
	}
	if err := h.layouts.SetCardStyle(r.Context(), section, body.Style); err != nil {
		WriteValidationError(w, map[string]string{"style": err.Error()})
		return
	}

	h.snapshot.Invalidate(r.Context())
	_ = h.events.LogLayoutEvent(r.Context(), model.EventLevelInfo,
		"Section layout updated", middleware.GetUserIDPtr(r),
		map[string]any{"section": section})

	WriteSuccess(w, SectionAppearance{
		Layout: h.layouts.GetLayout(section),
		Style:  h.layouts.GetCardStyle(section),
	})
}
