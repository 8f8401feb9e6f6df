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

// SingletonsHandler serves the admin editors for the one-per-site
// content blocks: hero, about, community and footer.
type SingletonsHandler struct {
	renderer     *render.Renderer
	singletons   *service.SingletonService
	snapshot     *service.SnapshotService
	eventService *service.EventService
}

// NewSingletonsHandler creates a new SingletonsHandler.
func NewSingletonsHandler(db *sql.DB, renderer *render.Renderer, snapshot *service.SnapshotService) *SingletonsHandler {
	return &SingletonsHandler{
		renderer:     renderer,
		singletons:   service.NewSingletonService(db),
		snapshot:     snapshot,
		eventService: service.NewEventService(db),
	}
}

// HeroForm renders the hero content editor.
func (h *SingletonsHandler) HeroForm(w http.ResponseWriter, r *http.Request) {
	hero, err := h.singletons.GetHero(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to get hero content", "error", err)
		return
	}
	h.renderForm(w, r, "admin/hero", "Hero", hero)
}

// SaveHero processes the hero content form.
func (h *SingletonsHandler) SaveHero(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminHero) {
		return
	}

	hero := model.HeroContent{
		ID:               model.SingletonID,
		BadgeText:        formValue(r, "badge_text"),
		Subtitle:         formValue(r, "subtitle"),
		Name:             formValue(r, "name"),
		Tagline:          formValue(r, "tagline"),
		TaglineHighlight: formValue(r, "tagline_highlight"),
		Stat1Value:       formValue(r, "stat_1_value"),
		Stat1Label:       formValue(r, "stat_1_label"),
		Stat2Value:       formValue(r, "stat_2_value"),
		Stat2Label:       formValue(r, "stat_2_label"),
		Stat3Value:       formValue(r, "stat_3_value"),
		Stat3Label:       formValue(r, "stat_3_label"),
		Stat4Value:       formValue(r, "stat_4_value"),
		Stat4Label:       formValue(r, "stat_4_label"),
	}

	if err := h.singletons.SaveHero(r.Context(), hero); err != nil {
		logAndInternalError(w, "failed to save hero content", "error", err)
		return
	}
	h.afterSave(w, r, redirectAdminHero, "hero")
}

// AboutForm renders the about content editor.
func (h *SingletonsHandler) AboutForm(w http.ResponseWriter, r *http.Request) {
	about, err := h.singletons.GetAbout(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to get about content", "error", err)
		return
	}
	h.renderForm(w, r, "admin/about", "About", about)
}

// SaveAbout processes the about content form.
func (h *SingletonsHandler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminAbout) {
		return
	}

	about := model.AboutContent{
		ID:         model.SingletonID,
		Paragraph1: formValue(r, "paragraph_1"),
		Paragraph2: formValue(r, "paragraph_2"),
		ImageURL:   formValue(r, "image_url"),
		Tags:       splitLines(r.FormValue("tags")),
	}

	if err := h.singletons.SaveAbout(r.Context(), about); err != nil {
		logAndInternalError(w, "failed to save about content", "error", err)
		return
	}
	h.afterSave(w, r, redirectAdminAbout, "about")
}

// CommunityForm renders the community block editor.
func (h *SingletonsHandler) CommunityForm(w http.ResponseWriter, r *http.Request) {
	community, err := h.singletons.GetCommunity(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to get community content", "error", err)
		return
	}
	h.renderForm(w, r, "admin/community", "Community", community)
}

// SaveCommunity processes the community block form.
func (h *SingletonsHandler) SaveCommunity(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminCommunity) {
		return
	}

	community := model.CommunityContent{
		ID:          model.SingletonID,
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		CTAText:     formValue(r, "cta_text"),
		CTALink:     formValue(r, "cta_link"),
	}

	if err := h.singletons.SaveCommunity(r.Context(), community); err != nil {
		logAndInternalError(w, "failed to save community content", "error", err)
		return
	}
	h.afterSave(w, r, redirectAdminCommunity, "community")
}

// FooterForm renders the footer content editor.
func (h *SingletonsHandler) FooterForm(w http.ResponseWriter, r *http.Request) {
	footer, err := h.singletons.GetFooter(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to get footer content", "error", err)
		return
	}
	h.renderForm(w, r, "admin/footer", "Footer", footer)
}

// SaveFooter processes the footer content form.
func (h *SingletonsHandler) SaveFooter(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminFooter) {
		return
	}

	footer := model.FooterContent{
		ID:              model.SingletonID,
		Name:            formValue(r, "name"),
		Roles:           splitLines(r.FormValue("roles")),
		Location:        formValue(r, "location"),
		EducationTitle:  formValue(r, "education_title"),
		EducationItems:  splitLines(r.FormValue("education_items")),
		StatusText:      formValue(r, "status_text"),
		StatusAvailable: formBool(r, "status_available"),
		ContactEmail:    formValue(r, "contact_email"),
		LinkedInURL:     formValue(r, "linkedin_url"),
		GitHubURL:       formValue(r, "github_url"),
		EmailURL:        formValue(r, "email_url"),
	}

	if err := h.singletons.SaveFooter(r.Context(), footer); err != nil {
		logAndInternalError(w, "failed to save footer content", "error", err)
		return
	}
	h.afterSave(w, r, redirectAdminFooter, "footer")
}

func (h *SingletonsHandler) renderForm(w http.ResponseWriter, r *http.Request, template, title string, data any) {
	if err := h.renderer.Render(w, r, template, render.TemplateData{
		Title: title,
		User:  userFromRequest(r),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render "+template, "error", err)
	}
}

func (h *SingletonsHandler) afterSave(w http.ResponseWriter, r *http.Request, redirect, block string) {
	h.snapshot.Invalidate(r.Context())
	_ = h.eventService.LogContentEvent(r.Context(), model.EventLevelInfo,
		"Content block updated", middleware.GetUserIDPtr(r), map[string]any{"block": block})
	flashSuccess(w, r, h.renderer, redirect, "Saved")
}
