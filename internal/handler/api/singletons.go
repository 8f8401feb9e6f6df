// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
)

// GetHero returns the hero content block.
func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.singletons.GetHero(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load hero content")
		return
	}
	WriteSuccess(w, hero)
}

// SaveHero replaces the hero content block.
func (h *Handler) SaveHero(w http.ResponseWriter, r *http.Request) {
	var body model.HeroContent
	if !decodeBody(w, r, &body) {
		return
	}
	body.ID = model.SingletonID

	if err := h.singletons.SaveHero(r.Context(), body); err != nil {
		WriteInternalError(w, "Failed to save hero content")
		return
	}
	h.afterSave(w, r, "hero", body)
}

// GetAbout returns the about content block.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.singletons.GetAbout(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load about content")
		return
	}
	WriteSuccess(w, about)
}

// SaveAbout replaces the about content block.
func (h *Handler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	var body model.AboutContent
	if !decodeBody(w, r, &body) {
		return
	}
	body.ID = model.SingletonID

	if err := h.singletons.SaveAbout(r.Context(), body); err != nil {
		WriteInternalError(w, "Failed to save about content")
		return
	}
	h.afterSave(w, r, "about", body)
}

// GetCommunity returns the community content block.
func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	community, err := h.singletons.GetCommunity(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load community content")
		return
	}
	WriteSuccess(w, community)
}

// SaveCommunity replaces the community content block.
func (h *Handler) SaveCommunity(w http.ResponseWriter, r *http.Request) {
	var body model.CommunityContent
	if !decodeBody(w, r, &body) {
		return
	}
	body.ID = model.SingletonID

	if err := h.singletons.SaveCommunity(r.Context(), body); err != nil {
		WriteInternalError(w, "Failed to save community content")
		return
	}
	h.afterSave(w, r, "community", body)
}

// GetFooter returns the footer content block.
func (h *Handler) GetFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := h.singletons.GetFooter(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load footer content")
		return
	}
	WriteSuccess(w, footer)
}

// SaveFooter replaces the footer content block.
func (h *Handler) SaveFooter(w http.ResponseWriter, r *http.Request) {
	var body model.FooterContent
	if !decodeBody(w, r, &body) {
		return
	}
	body.ID = model.SingletonID

	if err := h.singletons.SaveFooter(r.Context(), body); err != nil {
		WriteInternalError(w, "Failed to save footer content")
		return
	}
	h.afterSave(w, r, "footer", body)
}

func (h *Handler) afterSave(w http.ResponseWriter, r *http.Request, block string, data any) {
	h.snapshot.Invalidate(r.Context())
	_ = h.events.LogContentEvent(r.Context(), model.EventLevelInfo,
		"Content block updated", middleware.GetUserIDPtr(r),
		map[string]any{"block": block})
	WriteSuccess(w, data)
}
