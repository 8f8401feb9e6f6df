// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/seo"
	"github.com/olegiv/folio-go/internal/service"
)

// FrontendHandler serves the public portfolio site. All page data
// comes from the content snapshot, so a page view costs at most one
// cache read.
type FrontendHandler struct {
	renderer     *render.Renderer
	snapshot     *service.SnapshotService
	subscribers  *service.SubscriberService
	eventService *service.EventService
	baseURL      string
	isDev        bool
}

// NewFrontendHandler creates a new FrontendHandler. baseURL is the
// public origin used in sitemap and robots output.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, snapshot *service.SnapshotService,
	baseURL string, isDev bool) *FrontendHandler {
	return &FrontendHandler{
		renderer:     renderer,
		snapshot:     snapshot,
		subscribers:  service.NewSubscriberService(db),
		eventService: service.NewEventService(db),
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		isDev:        isDev,
	}
}

// HomeData holds everything the single-page portfolio template needs.
type HomeData struct {
	Hero       model.HeroContent
	About      model.AboutContent
	Community  model.CommunityContent
	Footer     model.FooterContent
	HeroImages []model.HeroImage
	Sections   map[string]render.SectionView
}

// Home renders the portfolio page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot.Get(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load content snapshot", "error", err)
		return
	}

	data := HomeData{
		Hero:       snap.Hero,
		About:      snap.About,
		Community:  snap.Community,
		Footer:     snap.Footer,
		HeroImages: snap.HeroImages,
		Sections:   buildSections(snap),
	}

	if err := h.renderer.Render(w, r, "site/index", render.TemplateData{
		Title: snap.Hero.Name,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render home page", "error", err)
	}
}

// Subscribe handles the public newsletter signup form.
func (h *FrontendHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteRoot) {
		return
	}

	sub, err := h.subscribers.Subscribe(r.Context(), r.FormValue("email"), model.SubscriberSourceWebsite)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			flashError(w, r, h.renderer, RouteRoot+"#newsletter", "Please enter a valid email address.")
		case errors.Is(err, service.ErrAlreadySubscribed):
			// Same response as success, so the form does not reveal
			// which emails are on the list.
			flashSuccess(w, r, h.renderer, RouteRoot+"#newsletter", "Thanks for subscribing!")
		default:
			logAndInternalError(w, "failed to subscribe", "error", err)
		}
		return
	}

	_ = h.eventService.LogSubscriberEvent(r.Context(), model.EventLevelInfo,
		"New subscriber", nil, map[string]any{"email": sub.Email})

	flashSuccess(w, r, h.renderer, RouteRoot+"#newsletter", "Thanks for subscribing!")
}

// Sitemap serves sitemap.xml with the snapshot's generation time as
// the homepage lastmod.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot.Get(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load content snapshot", "error", err)
		return
	}

	out, err := seo.GenerateSitemap(h.baseURL, snap.GeneratedAt)
	if err != nil {
		logAndInternalError(w, "failed to generate sitemap", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// Robots serves robots.txt. Development instances ask crawlers to
// stay away entirely.
func (h *FrontendHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	out := seo.GenerateRobots(seo.RobotsConfig{
		SiteURL:     h.baseURL,
		DisallowAll: h.isDev,
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// SecurityTxt serves /.well-known/security.txt using the footer's
// contact email. Responds 404 when no contact is published.
func (h *FrontendHandler) SecurityTxt(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot.Get(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load content snapshot", "error", err)
		return
	}

	contact := ""
	if snap.Footer.ContactEmail != "" {
		contact = "mailto:" + snap.Footer.ContactEmail
	}
	out := seo.GenerateSecurityTxt(seo.SecurityTxtConfig{
		Contact:   contact,
		Canonical: h.baseURL + "/.well-known/security.txt",
	})
	if out == "" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// buildSections resolves every content section of the snapshot against
// its layout and card style.
func buildSections(snap service.Snapshot) map[string]render.SectionView {
	layoutFor := func(section string) model.SectionLayout {
		if l, ok := snap.Layouts[section]; ok {
			return l
		}
		return model.DefaultLayout(section)
	}
	styleFor := func(section string) model.CardStyle {
		if s, ok := snap.CardStyles[section]; ok {
			return s
		}
		return model.DefaultCardStyle()
	}

	build := func(section string, cards []render.Card) render.SectionView {
		return render.BuildSection(section, layoutFor(section), styleFor(section), cards)
	}

	views := make(map[string]render.SectionView, len(model.Sections))

	cards := make([]render.Card, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		cards = append(cards, render.FromProject(p))
	}
	views[model.SectionProjects] = build(model.SectionProjects, cards)

	cards = cards[:0]
	for _, l := range snap.Leadership {
		cards = append(cards, render.FromLeadership(l))
	}
	views[model.SectionLeadership] = build(model.SectionLeadership, cards)

	cards = cards[:0]
	for _, a := range snap.Awards {
		cards = append(cards, render.FromAward(a))
	}
	views[model.SectionAwards] = build(model.SectionAwards, cards)

	cards = cards[:0]
	for _, a := range snap.SpecialAwards {
		cards = append(cards, render.FromSpecialAward(a))
	}
	views[model.SectionSpecialAwards] = build(model.SectionSpecialAwards, cards)

	cards = cards[:0]
	for _, p := range snap.Press {
		cards = append(cards, render.FromPress(p))
	}
	views[model.SectionPress] = build(model.SectionPress, cards)

	cards = cards[:0]
	for _, p := range snap.Publications {
		cards = append(cards, render.FromPublication(p))
	}
	views[model.SectionPublications] = build(model.SectionPublications, cards)

	cards = cards[:0]
	for _, e := range snap.Endorsements {
		cards = append(cards, render.FromEndorsement(e))
	}
	views[model.SectionEndorsements] = build(model.SectionEndorsements, cards)

	cards = cards[:0]
	for _, n := range snap.NewsletterIssues {
		cards = append(cards, render.FromNewsletterIssue(n))
	}
	views[model.SectionNewsletterIssues] = build(model.SectionNewsletterIssues, cards)

	cards = cards[:0]
	for _, e := range snap.CommunityEvents {
		cards = append(cards, render.FromCommunityEvent(e))
	}
	views[model.SectionCommunityEvents] = build(model.SectionCommunityEvents, cards)

	return views
}
