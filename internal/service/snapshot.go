// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/folio-go/internal/cache"
	"github.com/olegiv/folio-go/internal/model"
)

// snapshotKey is the cache key for the assembled public site data.
// Bump the version suffix when the Snapshot shape changes.
const snapshotKey = "snapshot:v1"

// Snapshot is everything the public site needs to render one page
// view, assembled in a single pass so the page is internally
// consistent even while an admin is editing.
type Snapshot struct {
	Hero      model.HeroContent      `json:"hero"`
	About     model.AboutContent     `json:"about"`
	Community model.CommunityContent `json:"community"`
	Footer    model.FooterContent    `json:"footer"`

	Projects         []model.Project         `json:"projects"`
	Leadership       []model.Leadership      `json:"leadership"`
	Awards           []model.Award           `json:"awards"`
	SpecialAwards    []model.SpecialAward    `json:"specialAwards"`
	Press            []model.Press           `json:"press"`
	Publications     []model.Publication     `json:"publications"`
	Endorsements     []model.Endorsement     `json:"endorsements"`
	NewsletterIssues []model.NewsletterIssue `json:"newsletterIssues"`
	CommunityEvents  []model.CommunityEvent  `json:"communityEvents"`
	HeroImages       []model.HeroImage       `json:"heroImages"`

	Layouts    map[string]model.SectionLayout `json:"layouts"`
	CardStyles map[string]model.CardStyle     `json:"cardStyles"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// SnapshotService assembles and caches the public site snapshot.
// Admin writes call Invalidate so the next page view rebuilds.
type SnapshotService struct {
	content    *ContentService
	singletons *SingletonService
	layouts    *LayoutService
	cache      cache.Cacher
	ttl        time.Duration
}

// NewSnapshotService creates a SnapshotService.
func NewSnapshotService(content *ContentService, singletons *SingletonService,
	layouts *LayoutService, c cache.Cacher, ttl time.Duration) *SnapshotService {
	return &SnapshotService{
		content:    content,
		singletons: singletons,
		layouts:    layouts,
		cache:      c,
		ttl:        ttl,
	}
}

// Get returns the cached snapshot, rebuilding it on a miss. A cache
// read error is logged and treated as a miss so the site stays up when
// the cache backend is down.
func (s *SnapshotService) Get(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := cache.GetJSON(ctx, s.cache, snapshotKey, &snap)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("snapshot cache read failed", "error", err)
	}

	snap, err = s.Build(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if err := cache.SetJSON(ctx, s.cache, snapshotKey, snap, s.ttl); err != nil {
		slog.Warn("snapshot cache write failed", "error", err)
	}
	return snap, nil
}

// Build assembles a fresh snapshot from the database, bypassing the
// cache.
func (s *SnapshotService) Build(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		Layouts:     s.layouts.GetAllLayouts(),
		CardStyles:  s.layouts.GetAllCardStyles(),
		GeneratedAt: time.Now().UTC(),
	}

	var err error
	if snap.Hero, err = s.singletons.GetHero(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading hero content: %w", err)
	}
	if snap.About, err = s.singletons.GetAbout(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading about content: %w", err)
	}
	if snap.Community, err = s.singletons.GetCommunity(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading community content: %w", err)
	}
	if snap.Footer, err = s.singletons.GetFooter(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading footer content: %w", err)
	}

	if snap.Projects, err = s.content.ListProjects(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading projects: %w", err)
	}
	if snap.Leadership, err = s.content.ListLeadership(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading leadership: %w", err)
	}
	if snap.Awards, err = s.content.ListAwards(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading awards: %w", err)
	}
	if snap.SpecialAwards, err = s.content.ListSpecialAwards(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading special awards: %w", err)
	}
	if snap.Press, err = s.content.ListPress(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading press: %w", err)
	}
	if snap.Publications, err = s.content.ListPublications(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading publications: %w", err)
	}
	if snap.Endorsements, err = s.content.ListEndorsements(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading endorsements: %w", err)
	}
	if snap.NewsletterIssues, err = s.content.ListNewsletterIssues(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading newsletter issues: %w", err)
	}
	if snap.CommunityEvents, err = s.content.ListCommunityEvents(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading community events: %w", err)
	}
	if snap.HeroImages, err = s.content.ListActiveHeroImages(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("loading hero images: %w", err)
	}

	return snap, nil
}

// Invalidate drops the cached snapshot. Call after any content,
// layout, or singleton write.
func (s *SnapshotService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, snapshotKey); err != nil {
		slog.Warn("snapshot cache invalidation failed", "error", err)
	}
}
