// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// ContentService persists the ordered content collections. Saves are
// batch-oriented: the admin UI submits a whole section at once and the
// slice order becomes the display order.
type ContentService struct {
	queries *store.Queries
}

// NewContentService creates a ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{queries: store.New(db)}
}

// SaveOutcome records what happened to one item of a batch save.
type SaveOutcome struct {
	Index   int
	ID      int64
	Created bool
	Err     error
}

// SaveReport summarizes a batch save. Failed counts items whose write
// errored; the rest were persisted.
type SaveReport struct {
	Outcomes []SaveOutcome
	Failed   int
}

// OK reports whether every item in the batch was persisted.
func (r SaveReport) OK() bool { return r.Failed == 0 }

// FirstErr returns the first per-item error, or nil.
func (r SaveReport) FirstErr() error {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}

// saveOrdered walks items in slice order, renumbering display order
// from zero, and persists each one individually. An item with a
// persisted identity is updated in place; the rest are inserted and the
// assigned ID written back into the slice. A failed write is recorded
// and the walk continues, so one bad item cannot block the rest of the
// batch.
func saveOrdered[T any](
	ctx context.Context,
	items []T,
	itemID func(*T) *int64,
	save func(ctx context.Context, item *T, order int64) (int64, bool, error),
) SaveReport {
	report := SaveReport{Outcomes: make([]SaveOutcome, 0, len(items))}
	for i := range items {
		id, created, err := save(ctx, &items[i], int64(i))
		if err != nil {
			report.Failed++
			report.Outcomes = append(report.Outcomes, SaveOutcome{Index: i, ID: *itemID(&items[i]), Err: err})
			continue
		}
		*itemID(&items[i]) = id
		report.Outcomes = append(report.Outcomes, SaveOutcome{Index: i, ID: id, Created: created})
	}
	return report
}

// --- Projects ---

// ListProjects returns all projects in display order.
func (s *ContentService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.queries.ListProjects(ctx)
}

// SaveProjects persists the full project list. Slice order becomes the
// display order; inserted items get their assigned IDs written back.
func (s *ContentService) SaveProjects(ctx context.Context, items []model.Project) SaveReport {
	return saveOrdered(ctx, items,
		func(p *model.Project) *int64 { return &p.ID },
		func(ctx context.Context, p *model.Project, order int64) (int64, bool, error) {
			p.OrderIndex = order
			arg := store.ProjectParams{
				Title: p.Title, Subtitle: p.Subtitle, Description: p.Description,
				ImageURL: p.ImageURL, Tags: p.Tags, Awards: p.Awards,
				Funding: p.Funding, Status: p.Status, Color: p.Color, Link: p.Link,
				OrderIndex: order,
			}
			if p.ID > 0 {
				return p.ID, false, s.queries.UpdateProject(ctx, p.ID, arg)
			}
			id, err := s.queries.CreateProject(ctx, arg)
			return id, true, err
		})
}

// DeleteProject removes a project. Items that were never persisted
// have no ID and nothing to delete.
func (s *ContentService) DeleteProject(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteProject(ctx, id)
}

// --- Leadership ---

// ListLeadership returns all leadership entries in display order.
func (s *ContentService) ListLeadership(ctx context.Context) ([]model.Leadership, error) {
	return s.queries.ListLeadership(ctx)
}

// SaveLeadership persists the full leadership list.
func (s *ContentService) SaveLeadership(ctx context.Context, items []model.Leadership) SaveReport {
	return saveOrdered(ctx, items,
		func(l *model.Leadership) *int64 { return &l.ID },
		func(ctx context.Context, l *model.Leadership, order int64) (int64, bool, error) {
			l.OrderIndex = order
			arg := store.LeadershipParams{
				Title: l.Title, Date: l.Date, Role: l.Role,
				Organization: l.Organization, Icon: l.Icon, Color: l.Color,
				Link: l.Link, OrderIndex: order,
			}
			if l.ID > 0 {
				return l.ID, false, s.queries.UpdateLeadership(ctx, l.ID, arg)
			}
			id, err := s.queries.CreateLeadership(ctx, arg)
			return id, true, err
		})
}

// DeleteLeadership removes a leadership entry.
func (s *ContentService) DeleteLeadership(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteLeadership(ctx, id)
}

// --- Awards ---

// ListAwards returns all awards in display order.
func (s *ContentService) ListAwards(ctx context.Context) ([]model.Award, error) {
	return s.queries.ListAwards(ctx)
}

// SaveAwards persists the full award list.
func (s *ContentService) SaveAwards(ctx context.Context, items []model.Award) SaveReport {
	return saveOrdered(ctx, items,
		func(a *model.Award) *int64 { return &a.ID },
		func(ctx context.Context, a *model.Award, order int64) (int64, bool, error) {
			a.OrderIndex = order
			arg := store.AwardParams{
				Title: a.Title, Description: a.Description,
				IsFeatured: a.IsFeatured, Link: a.Link, OrderIndex: order,
			}
			if a.ID > 0 {
				return a.ID, false, s.queries.UpdateAward(ctx, a.ID, arg)
			}
			id, err := s.queries.CreateAward(ctx, arg)
			return id, true, err
		})
}

// DeleteAward removes an award.
func (s *ContentService) DeleteAward(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteAward(ctx, id)
}

// --- Special awards ---

// ListSpecialAwards returns all special awards in display order.
func (s *ContentService) ListSpecialAwards(ctx context.Context) ([]model.SpecialAward, error) {
	return s.queries.ListSpecialAwards(ctx)
}

// SaveSpecialAwards persists the full special award list.
func (s *ContentService) SaveSpecialAwards(ctx context.Context, items []model.SpecialAward) SaveReport {
	return saveOrdered(ctx, items,
		func(a *model.SpecialAward) *int64 { return &a.ID },
		func(ctx context.Context, a *model.SpecialAward, order int64) (int64, bool, error) {
			a.OrderIndex = order
			arg := store.SpecialAwardParams{Name: a.Name, Link: a.Link, OrderIndex: order}
			if a.ID > 0 {
				return a.ID, false, s.queries.UpdateSpecialAward(ctx, a.ID, arg)
			}
			id, err := s.queries.CreateSpecialAward(ctx, arg)
			return id, true, err
		})
}

// DeleteSpecialAward removes a special award.
func (s *ContentService) DeleteSpecialAward(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteSpecialAward(ctx, id)
}

// --- Press ---

// ListPress returns all press items in display order.
func (s *ContentService) ListPress(ctx context.Context) ([]model.Press, error) {
	return s.queries.ListPress(ctx)
}

// SavePress persists the full press list.
func (s *ContentService) SavePress(ctx context.Context, items []model.Press) SaveReport {
	return saveOrdered(ctx, items,
		func(p *model.Press) *int64 { return &p.ID },
		func(ctx context.Context, p *model.Press, order int64) (int64, bool, error) {
			p.OrderIndex = order
			arg := store.PressParams{
				Title: p.Title, Description: p.Description, Source: p.Source,
				Link: p.Link, IsFeatured: p.IsFeatured, IsVideo: p.IsVideo,
				Color: p.Color, OrderIndex: order,
			}
			if p.ID > 0 {
				return p.ID, false, s.queries.UpdatePress(ctx, p.ID, arg)
			}
			id, err := s.queries.CreatePress(ctx, arg)
			return id, true, err
		})
}

// DeletePress removes a press item.
func (s *ContentService) DeletePress(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeletePress(ctx, id)
}

// --- Publications ---

// ListPublications returns all publications in display order.
func (s *ContentService) ListPublications(ctx context.Context) ([]model.Publication, error) {
	return s.queries.ListPublications(ctx)
}

// SavePublications persists the full publication list.
func (s *ContentService) SavePublications(ctx context.Context, items []model.Publication) SaveReport {
	return saveOrdered(ctx, items,
		func(p *model.Publication) *int64 { return &p.ID },
		func(ctx context.Context, p *model.Publication, order int64) (int64, bool, error) {
			p.OrderIndex = order
			arg := store.PublicationParams{
				Title: p.Title, Description: p.Description,
				Platform: p.Platform, Link: p.Link, OrderIndex: order,
			}
			if p.ID > 0 {
				return p.ID, false, s.queries.UpdatePublication(ctx, p.ID, arg)
			}
			id, err := s.queries.CreatePublication(ctx, arg)
			return id, true, err
		})
}

// DeletePublication removes a publication.
func (s *ContentService) DeletePublication(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeletePublication(ctx, id)
}

// --- Endorsements ---

// ListEndorsements returns all endorsements in display order.
func (s *ContentService) ListEndorsements(ctx context.Context) ([]model.Endorsement, error) {
	return s.queries.ListEndorsements(ctx)
}

// SaveEndorsements persists the full endorsement list.
func (s *ContentService) SaveEndorsements(ctx context.Context, items []model.Endorsement) SaveReport {
	return saveOrdered(ctx, items,
		func(e *model.Endorsement) *int64 { return &e.ID },
		func(ctx context.Context, e *model.Endorsement, order int64) (int64, bool, error) {
			e.OrderIndex = order
			arg := store.EndorsementParams{
				Name: e.Name, Role: e.Role, Initial: e.Initial,
				Quote: e.Quote, Color: e.Color, Link: e.Link, OrderIndex: order,
			}
			if e.ID > 0 {
				return e.ID, false, s.queries.UpdateEndorsement(ctx, e.ID, arg)
			}
			id, err := s.queries.CreateEndorsement(ctx, arg)
			return id, true, err
		})
}

// DeleteEndorsement removes an endorsement.
func (s *ContentService) DeleteEndorsement(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteEndorsement(ctx, id)
}

// --- Newsletter issues ---

// ListNewsletterIssues returns all newsletter issues in display order.
// The first issue is the current one.
func (s *ContentService) ListNewsletterIssues(ctx context.Context) ([]model.NewsletterIssue, error) {
	return s.queries.ListNewsletterIssues(ctx)
}

// SaveNewsletterIssues persists the full newsletter issue list.
func (s *ContentService) SaveNewsletterIssues(ctx context.Context, items []model.NewsletterIssue) SaveReport {
	return saveOrdered(ctx, items,
		func(n *model.NewsletterIssue) *int64 { return &n.ID },
		func(ctx context.Context, n *model.NewsletterIssue, order int64) (int64, bool, error) {
			n.OrderIndex = order
			arg := store.NewsletterIssueParams{
				Title: n.Title, Link: n.Link, Month: n.Month, OrderIndex: order,
			}
			if n.ID > 0 {
				return n.ID, false, s.queries.UpdateNewsletterIssue(ctx, n.ID, arg)
			}
			id, err := s.queries.CreateNewsletterIssue(ctx, arg)
			return id, true, err
		})
}

// DeleteNewsletterIssue removes a newsletter issue.
func (s *ContentService) DeleteNewsletterIssue(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteNewsletterIssue(ctx, id)
}

// --- Community events ---

// ListCommunityEvents returns all community events in display order.
// The first event is the current one.
func (s *ContentService) ListCommunityEvents(ctx context.Context) ([]model.CommunityEvent, error) {
	return s.queries.ListCommunityEvents(ctx)
}

// SaveCommunityEvents persists the full community event list.
func (s *ContentService) SaveCommunityEvents(ctx context.Context, items []model.CommunityEvent) SaveReport {
	return saveOrdered(ctx, items,
		func(e *model.CommunityEvent) *int64 { return &e.ID },
		func(ctx context.Context, e *model.CommunityEvent, order int64) (int64, bool, error) {
			e.OrderIndex = order
			arg := store.CommunityEventParams{
				Title: e.Title, Description: e.Description,
				Link: e.Link, Month: e.Month, OrderIndex: order,
			}
			if e.ID > 0 {
				return e.ID, false, s.queries.UpdateCommunityEvent(ctx, e.ID, arg)
			}
			id, err := s.queries.CreateCommunityEvent(ctx, arg)
			return id, true, err
		})
}

// DeleteCommunityEvent removes a community event.
func (s *ContentService) DeleteCommunityEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteCommunityEvent(ctx, id)
}

// --- Hero images ---

// ListHeroImages returns all hero images, active or not.
func (s *ContentService) ListHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return s.queries.ListHeroImages(ctx)
}

// ListActiveHeroImages returns the hero images shown on the public site.
func (s *ContentService) ListActiveHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return s.queries.ListActiveHeroImages(ctx)
}

// SaveHeroImages persists the full hero image list.
func (s *ContentService) SaveHeroImages(ctx context.Context, items []model.HeroImage) SaveReport {
	return saveOrdered(ctx, items,
		func(h *model.HeroImage) *int64 { return &h.ID },
		func(ctx context.Context, h *model.HeroImage, order int64) (int64, bool, error) {
			h.OrderIndex = order
			arg := store.HeroImageParams{
				ImageURL: h.ImageURL, AltText: h.AltText,
				Brightness: h.Brightness, IsActive: h.IsActive, OrderIndex: order,
			}
			if h.ID > 0 {
				return h.ID, false, s.queries.UpdateHeroImage(ctx, h.ID, arg)
			}
			id, err := s.queries.CreateHeroImage(ctx, arg)
			return id, true, err
		})
}

// DeleteHeroImage removes a hero image.
func (s *ContentService) DeleteHeroImage(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.queries.DeleteHeroImage(ctx, id)
}
