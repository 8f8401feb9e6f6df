// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// Queries for the ordered content collections. Every collection is
// listed by order_index; inserts return the assigned ID so callers can
// adopt it into their in-memory copy.

// --- Projects ---

// ProjectParams holds the writable fields of a project.
type ProjectParams struct {
	Title       string
	Subtitle    string
	Description string
	ImageURL    string
	Tags        []string
	Awards      []string
	Funding     string
	Status      string
	Color       string
	Link        string
	OrderIndex  int64
}

// ListProjects returns all projects ordered for display.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, subtitle, description, image_url, tags, awards,
		       funding, status, color, link, order_index, created_at, updated_at
		FROM projects ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Project
	for rows.Next() {
		var p model.Project
		var tags, awards string
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.ImageURL,
			&tags, &awards, &p.Funding, &p.Status, &p.Color, &p.Link,
			&p.OrderIndex, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Tags = decodeStrings(tags)
		p.Awards = decodeStrings(awards)
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreateProject inserts a project and returns its assigned ID.
func (q *Queries) CreateProject(ctx context.Context, arg ProjectParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, subtitle, description, image_url, tags, awards,
		                      funding, status, color, link, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Subtitle, arg.Description, arg.ImageURL,
		encodeStrings(arg.Tags), encodeStrings(arg.Awards),
		arg.Funding, arg.Status, arg.Color, arg.Link, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateProject replaces a project's writable fields.
func (q *Queries) UpdateProject(ctx context.Context, id int64, arg ProjectParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE projects SET title = ?, subtitle = ?, description = ?, image_url = ?,
		       tags = ?, awards = ?, funding = ?, status = ?, color = ?, link = ?,
		       order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Subtitle, arg.Description, arg.ImageURL,
		encodeStrings(arg.Tags), encodeStrings(arg.Awards),
		arg.Funding, arg.Status, arg.Color, arg.Link, arg.OrderIndex,
		time.Now().UTC(), id)
	return err
}

// DeleteProject removes a project.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// --- Leadership ---

// LeadershipParams holds the writable fields of a leadership entry.
type LeadershipParams struct {
	Title        string
	Date         string
	Role         string
	Organization string
	Icon         string
	Color        string
	Link         string
	OrderIndex   int64
}

// ListLeadership returns all leadership entries ordered for display.
func (q *Queries) ListLeadership(ctx context.Context) ([]model.Leadership, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, date, role, organization, icon, color, link,
		       order_index, created_at, updated_at
		FROM leadership ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Leadership
	for rows.Next() {
		var l model.Leadership
		if err := rows.Scan(&l.ID, &l.Title, &l.Date, &l.Role, &l.Organization,
			&l.Icon, &l.Color, &l.Link, &l.OrderIndex, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// CreateLeadership inserts a leadership entry and returns its assigned ID.
func (q *Queries) CreateLeadership(ctx context.Context, arg LeadershipParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO leadership (title, date, role, organization, icon, color, link,
		                        order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Date, arg.Role, arg.Organization, arg.Icon, arg.Color,
		arg.Link, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateLeadership replaces a leadership entry's writable fields.
func (q *Queries) UpdateLeadership(ctx context.Context, id int64, arg LeadershipParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE leadership SET title = ?, date = ?, role = ?, organization = ?,
		       icon = ?, color = ?, link = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Date, arg.Role, arg.Organization, arg.Icon, arg.Color,
		arg.Link, arg.OrderIndex, time.Now().UTC(), id)
	return err
}

// DeleteLeadership removes a leadership entry.
func (q *Queries) DeleteLeadership(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM leadership WHERE id = ?`, id)
	return err
}

// --- Awards ---

// AwardParams holds the writable fields of an award.
type AwardParams struct {
	Title       string
	Description string
	IsFeatured  bool
	Link        string
	OrderIndex  int64
}

// ListAwards returns all awards ordered for display.
func (q *Queries) ListAwards(ctx context.Context) ([]model.Award, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, is_featured, link, order_index, created_at, updated_at
		FROM awards ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Award
	for rows.Next() {
		var a model.Award
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.IsFeatured,
			&a.Link, &a.OrderIndex, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CreateAward inserts an award and returns its assigned ID.
func (q *Queries) CreateAward(ctx context.Context, arg AwardParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO awards (title, description, is_featured, link, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Description, arg.IsFeatured, arg.Link, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateAward replaces an award's writable fields.
func (q *Queries) UpdateAward(ctx context.Context, id int64, arg AwardParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE awards SET title = ?, description = ?, is_featured = ?, link = ?,
		       order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.IsFeatured, arg.Link, arg.OrderIndex,
		time.Now().UTC(), id)
	return err
}

// DeleteAward removes an award.
func (q *Queries) DeleteAward(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM awards WHERE id = ?`, id)
	return err
}

// --- Special awards ---

// SpecialAwardParams holds the writable fields of a special award.
type SpecialAwardParams struct {
	Name       string
	Link       string
	OrderIndex int64
}

// ListSpecialAwards returns all special awards ordered for display.
func (q *Queries) ListSpecialAwards(ctx context.Context) ([]model.SpecialAward, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, link, order_index, created_at, updated_at
		FROM special_awards ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.SpecialAward
	for rows.Next() {
		var a model.SpecialAward
		if err := rows.Scan(&a.ID, &a.Name, &a.Link, &a.OrderIndex,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CreateSpecialAward inserts a special award and returns its assigned ID.
func (q *Queries) CreateSpecialAward(ctx context.Context, arg SpecialAwardParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO special_awards (name, link, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Name, arg.Link, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateSpecialAward replaces a special award's writable fields.
func (q *Queries) UpdateSpecialAward(ctx context.Context, id int64, arg SpecialAwardParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE special_awards SET name = ?, link = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Link, arg.OrderIndex, time.Now().UTC(), id)
	return err
}

// DeleteSpecialAward removes a special award.
func (q *Queries) DeleteSpecialAward(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM special_awards WHERE id = ?`, id)
	return err
}

// --- Press ---

// PressParams holds the writable fields of a press item.
type PressParams struct {
	Title       string
	Description string
	Source      string
	Link        string
	IsFeatured  bool
	IsVideo     bool
	Color       string
	OrderIndex  int64
}

// ListPress returns all press items ordered for display.
func (q *Queries) ListPress(ctx context.Context) ([]model.Press, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, source, link, is_featured, is_video, color,
		       order_index, created_at, updated_at
		FROM press ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Press
	for rows.Next() {
		var p model.Press
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Source, &p.Link,
			&p.IsFeatured, &p.IsVideo, &p.Color, &p.OrderIndex,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreatePress inserts a press item and returns its assigned ID.
func (q *Queries) CreatePress(ctx context.Context, arg PressParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO press (title, description, source, link, is_featured, is_video,
		                   color, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Description, arg.Source, arg.Link, arg.IsFeatured,
		arg.IsVideo, arg.Color, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdatePress replaces a press item's writable fields.
func (q *Queries) UpdatePress(ctx context.Context, id int64, arg PressParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE press SET title = ?, description = ?, source = ?, link = ?,
		       is_featured = ?, is_video = ?, color = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Source, arg.Link, arg.IsFeatured,
		arg.IsVideo, arg.Color, arg.OrderIndex, time.Now().UTC(), id)
	return err
}

// DeletePress removes a press item.
func (q *Queries) DeletePress(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM press WHERE id = ?`, id)
	return err
}

// --- Publications ---

// PublicationParams holds the writable fields of a publication.
type PublicationParams struct {
	Title       string
	Description string
	Platform    string
	Link        string
	OrderIndex  int64
}

// ListPublications returns all publications ordered for display.
func (q *Queries) ListPublications(ctx context.Context) ([]model.Publication, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, platform, link, order_index, created_at, updated_at
		FROM publications ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Publication
	for rows.Next() {
		var p model.Publication
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Platform, &p.Link,
			&p.OrderIndex, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreatePublication inserts a publication and returns its assigned ID.
func (q *Queries) CreatePublication(ctx context.Context, arg PublicationParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO publications (title, description, platform, link, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Description, arg.Platform, arg.Link, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdatePublication replaces a publication's writable fields.
func (q *Queries) UpdatePublication(ctx context.Context, id int64, arg PublicationParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE publications SET title = ?, description = ?, platform = ?, link = ?,
		       order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Platform, arg.Link, arg.OrderIndex,
		time.Now().UTC(), id)
	return err
}

// DeletePublication removes a publication.
func (q *Queries) DeletePublication(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM publications WHERE id = ?`, id)
	return err
}

// --- Endorsements ---

// EndorsementParams holds the writable fields of an endorsement.
type EndorsementParams struct {
	Name       string
	Role       string
	Initial    string
	Quote      string
	Color      string
	Link       string
	OrderIndex int64
}

// ListEndorsements returns all endorsements ordered for display.
func (q *Queries) ListEndorsements(ctx context.Context) ([]model.Endorsement, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, role, initial, quote, color, link, order_index, created_at, updated_at
		FROM endorsements ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Endorsement
	for rows.Next() {
		var e model.Endorsement
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Initial, &e.Quote,
			&e.Color, &e.Link, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// CreateEndorsement inserts an endorsement and returns its assigned ID.
func (q *Queries) CreateEndorsement(ctx context.Context, arg EndorsementParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO endorsements (name, role, initial, quote, color, link,
		                          order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Name, arg.Role, arg.Initial, arg.Quote, arg.Color, arg.Link,
		arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateEndorsement replaces an endorsement's writable fields.
func (q *Queries) UpdateEndorsement(ctx context.Context, id int64, arg EndorsementParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE endorsements SET name = ?, role = ?, initial = ?, quote = ?,
		       color = ?, link = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Role, arg.Initial, arg.Quote, arg.Color, arg.Link,
		arg.OrderIndex, time.Now().UTC(), id)
	return err
}

// DeleteEndorsement removes an endorsement.
func (q *Queries) DeleteEndorsement(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM endorsements WHERE id = ?`, id)
	return err
}

// --- Newsletter issues ---

// NewsletterIssueParams holds the writable fields of a newsletter issue.
type NewsletterIssueParams struct {
	Title      string
	Link       string
	Month      string
	OrderIndex int64
}

// ListNewsletterIssues returns all newsletter issues ordered for display.
func (q *Queries) ListNewsletterIssues(ctx context.Context) ([]model.NewsletterIssue, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, link, month, order_index, created_at, updated_at
		FROM newsletter_issues ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.NewsletterIssue
	for rows.Next() {
		var n model.NewsletterIssue
		if err := rows.Scan(&n.ID, &n.Title, &n.Link, &n.Month, &n.OrderIndex,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// CreateNewsletterIssue inserts a newsletter issue and returns its assigned ID.
func (q *Queries) CreateNewsletterIssue(ctx context.Context, arg NewsletterIssueParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO newsletter_issues (title, link, month, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Link, arg.Month, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateNewsletterIssue replaces a newsletter issue's writable fields.
func (q *Queries) UpdateNewsletterIssue(ctx context.Context, id int64, arg NewsletterIssueParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE newsletter_issues SET title = ?, link = ?, month = ?,
		       order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Link, arg.Month, arg.OrderIndex, time.Now().UTC(), id)
	return err
}

// DeleteNewsletterIssue removes a newsletter issue.
func (q *Queries) DeleteNewsletterIssue(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM newsletter_issues WHERE id = ?`, id)
	return err
}

// --- Community events ---

// CommunityEventParams holds the writable fields of a community event.
type CommunityEventParams struct {
	Title       string
	Description string
	Link        string
	Month       string
	OrderIndex  int64
}

// ListCommunityEvents returns all community events ordered for display.
func (q *Queries) ListCommunityEvents(ctx context.Context) ([]model.CommunityEvent, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, link, month, order_index, created_at, updated_at
		FROM community_events ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.CommunityEvent
	for rows.Next() {
		var e model.CommunityEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Link, &e.Month,
			&e.OrderIndex, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// CreateCommunityEvent inserts a community event and returns its assigned ID.
func (q *Queries) CreateCommunityEvent(ctx context.Context, arg CommunityEventParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO community_events (title, description, link, month, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.Title, arg.Description, arg.Link, arg.Month, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateCommunityEvent replaces a community event's writable fields.
func (q *Queries) UpdateCommunityEvent(ctx context.Context, id int64, arg CommunityEventParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE community_events SET title = ?, description = ?, link = ?, month = ?,
		       order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Link, arg.Month, arg.OrderIndex,
		time.Now().UTC(), id)
	return err
}

// DeleteCommunityEvent removes a community event.
func (q *Queries) DeleteCommunityEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM community_events WHERE id = ?`, id)
	return err
}

// --- Hero images ---

// HeroImageParams holds the writable fields of a hero image.
type HeroImageParams struct {
	ImageURL   string
	AltText    string
	Brightness int64
	IsActive   bool
	OrderIndex int64
}

// ListHeroImages returns all hero images ordered for display.
func (q *Queries) ListHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return q.listHeroImages(ctx, false)
}

// ListActiveHeroImages returns only active hero images, for the public
// carousel.
func (q *Queries) ListActiveHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return q.listHeroImages(ctx, true)
}

func (q *Queries) listHeroImages(ctx context.Context, activeOnly bool) ([]model.HeroImage, error) {
	query := `
		SELECT id, image_url, alt_text, brightness, is_active, order_index, created_at, updated_at
		FROM hero_images`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY order_index, id`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.HeroImage
	for rows.Next() {
		var h model.HeroImage
		if err := rows.Scan(&h.ID, &h.ImageURL, &h.AltText, &h.Brightness,
			&h.IsActive, &h.OrderIndex, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// CreateHeroImage inserts a hero image and returns its assigned ID.
func (q *Queries) CreateHeroImage(ctx context.Context, arg HeroImageParams) (int64, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO hero_images (image_url, alt_text, brightness, is_active,
		                         order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.ImageURL, arg.AltText, arg.Brightness, arg.IsActive, arg.OrderIndex, now, now,
	).Scan(&id)
	return id, err
}

// UpdateHeroImage replaces a hero image's writable fields.
func (q *Queries) UpdateHeroImage(ctx context.Context, id int64, arg HeroImageParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE hero_images SET image_url = ?, alt_text = ?, brightness = ?,
		       is_active = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.ImageURL, arg.AltText, arg.Brightness, arg.IsActive, arg.OrderIndex,
		time.Now().UTC(), id)
	return err
}

// DeleteHeroImage removes a hero image.
func (q *Queries) DeleteHeroImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM hero_images WHERE id = ?`, id)
	return err
}
