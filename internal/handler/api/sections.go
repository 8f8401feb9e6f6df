// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/service"
)

// SaveOutcomeJSON is the wire form of one per-item save outcome.
type SaveOutcomeJSON struct {
	Index   int    `json:"index"`
	ID      int64  `json:"id"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

// SaveReportJSON is the wire form of a batch save report. Saved is
// the number of items written; Failed items keep their error text so
// the editor can flag them inline.
type SaveReportJSON struct {
	Outcomes []SaveOutcomeJSON `json:"outcomes"`
	Saved    int               `json:"saved"`
	Failed   int               `json:"failed"`
}

func toReportJSON(report service.SaveReport) SaveReportJSON {
	out := SaveReportJSON{
		Outcomes: make([]SaveOutcomeJSON, 0, len(report.Outcomes)),
		Failed:   report.Failed,
		Saved:    len(report.Outcomes) - report.Failed,
	}
	for _, o := range report.Outcomes {
		j := SaveOutcomeJSON{Index: o.Index, ID: o.ID, Created: o.Created}
		if o.Err != nil {
			j.Error = o.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, j)
	}
	return out
}

// GetSection returns the entries of one content section in display order.
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	ctx := r.Context()

	var (
		items any
		err   error
	)
	switch section {
	case model.SectionProjects:
		items, err = h.content.ListProjects(ctx)
	case model.SectionLeadership:
		items, err = h.content.ListLeadership(ctx)
	case model.SectionAwards:
		items, err = h.content.ListAwards(ctx)
	case model.SectionSpecialAwards:
		items, err = h.content.ListSpecialAwards(ctx)
	case model.SectionPress:
		items, err = h.content.ListPress(ctx)
	case model.SectionPublications:
		items, err = h.content.ListPublications(ctx)
	case model.SectionEndorsements:
		items, err = h.content.ListEndorsements(ctx)
	case model.SectionNewsletterIssues:
		items, err = h.content.ListNewsletterIssues(ctx)
	case model.SectionCommunityEvents:
		items, err = h.content.ListCommunityEvents(ctx)
	case model.SectionHeroImages:
		items, err = h.content.ListHeroImages(ctx)
	default:
		WriteNotFound(w, "Unknown section")
		return
	}
	if err != nil {
		WriteInternalError(w, "Failed to list section entries")
		return
	}
	WriteSuccess(w, items)
}

// SaveSection replaces one content section with the submitted entries.
// Entries are saved in array order; order indexes are assigned from
// positions. The save is best-effort: a failing entry is reported in
// the outcome list and the rest are still written.
func (h *Handler) SaveSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	ctx := r.Context()

	var report service.SaveReport
	switch section {
	case model.SectionProjects:
		var body struct {
			Items []model.Project `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveProjects(ctx, body.Items)
	case model.SectionLeadership:
		var body struct {
			Items []model.Leadership `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveLeadership(ctx, body.Items)
	case model.SectionAwards:
		var body struct {
			Items []model.Award `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveAwards(ctx, body.Items)
	case model.SectionSpecialAwards:
		var body struct {
			Items []model.SpecialAward `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveSpecialAwards(ctx, body.Items)
	case model.SectionPress:
		var body struct {
			Items []model.Press `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SavePress(ctx, body.Items)
	case model.SectionPublications:
		var body struct {
			Items []model.Publication `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SavePublications(ctx, body.Items)
	case model.SectionEndorsements:
		var body struct {
			Items []model.Endorsement `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveEndorsements(ctx, body.Items)
	case model.SectionNewsletterIssues:
		var body struct {
			Items []model.NewsletterIssue `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveNewsletterIssues(ctx, body.Items)
	case model.SectionCommunityEvents:
		var body struct {
			Items []model.CommunityEvent `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveCommunityEvents(ctx, body.Items)
	case model.SectionHeroImages:
		var body struct {
			Items []model.HeroImage `json:"items"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		report = h.content.SaveHeroImages(ctx, body.Items)
	default:
		WriteNotFound(w, "Unknown section")
		return
	}

	h.snapshot.Invalidate(ctx)
	_ = h.events.LogContentEvent(ctx, model.EventLevelInfo,
		"Section saved", middleware.GetUserIDPtr(r),
		map[string]any{"section": section, "failed": report.Failed})

	WriteSuccess(w, toReportJSON(report))
}

// DeleteSectionItem removes a single entry from a content section.
// Remaining entries keep their stored order indexes until the next
// save renumbers them.
func (h *Handler) DeleteSectionItem(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "Invalid entry ID", nil)
		return
	}
	ctx := r.Context()

	switch section {
	case model.SectionProjects:
		err = h.content.DeleteProject(ctx, id)
	case model.SectionLeadership:
		err = h.content.DeleteLeadership(ctx, id)
	case model.SectionAwards:
		err = h.content.DeleteAward(ctx, id)
	case model.SectionSpecialAwards:
		err = h.content.DeleteSpecialAward(ctx, id)
	case model.SectionPress:
		err = h.content.DeletePress(ctx, id)
	case model.SectionPublications:
		err = h.content.DeletePublication(ctx, id)
	case model.SectionEndorsements:
		err = h.content.DeleteEndorsement(ctx, id)
	case model.SectionNewsletterIssues:
		err = h.content.DeleteNewsletterIssue(ctx, id)
	case model.SectionCommunityEvents:
		err = h.content.DeleteCommunityEvent(ctx, id)
	case model.SectionHeroImages:
		err = h.content.DeleteHeroImage(ctx, id)
	default:
		WriteNotFound(w, "Unknown section")
		return
	}
	if err != nil {
		WriteInternalError(w, "Failed to delete entry")
		return
	}

	h.snapshot.Invalidate(ctx)
	_ = h.events.LogContentEvent(ctx, model.EventLevelInfo,
		"Section entry deleted", middleware.GetUserIDPtr(r),
		map[string]any{"section": section, "id": id})

	WriteSuccess(w, map[string]any{"deleted": id})
}
