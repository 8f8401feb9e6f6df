// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// Singleton tables hold exactly one row at a fixed ID. Writes are
// upserts keyed on that ID, so first save creates and later saves
// replace.

// GetHeroContent returns the hero section content.
func (q *Queries) GetHeroContent(ctx context.Context) (model.HeroContent, error) {
	var h model.HeroContent
	err := q.db.QueryRowContext(ctx, `
		SELECT id, badge_text, subtitle, name, tagline, tagline_highlight,
		       stat_1_value, stat_1_label, stat_2_value, stat_2_label,
		       stat_3_value, stat_3_label, stat_4_value, stat_4_label, updated_at
		FROM hero_content WHERE id = ?`, model.SingletonID).
		Scan(&h.ID, &h.BadgeText, &h.Subtitle, &h.Name, &h.Tagline, &h.TaglineHighlight,
			&h.Stat1Value, &h.Stat1Label, &h.Stat2Value, &h.Stat2Label,
			&h.Stat3Value, &h.Stat3Label, &h.Stat4Value, &h.Stat4Label, &h.UpdatedAt)
	return h, err
}

// UpsertHeroContent creates or replaces the hero section content.
func (q *Queries) UpsertHeroContent(ctx context.Context, h model.HeroContent) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO hero_content (id, badge_text, subtitle, name, tagline, tagline_highlight,
		                          stat_1_value, stat_1_label, stat_2_value, stat_2_label,
		                          stat_3_value, stat_3_label, stat_4_value, stat_4_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			badge_text = excluded.badge_text,
			subtitle = excluded.subtitle,
			name = excluded.name,
			tagline = excluded.tagline,
			tagline_highlight = excluded.tagline_highlight,
			stat_1_value = excluded.stat_1_value,
			stat_1_label = excluded.stat_1_label,
			stat_2_value = excluded.stat_2_value,
			stat_2_label = excluded.stat_2_label,
			stat_3_value = excluded.stat_3_value,
			stat_3_label = excluded.stat_3_label,
			stat_4_value = excluded.stat_4_value,
			stat_4_label = excluded.stat_4_label,
			updated_at = excluded.updated_at`,
		model.SingletonID, h.BadgeText, h.Subtitle, h.Name, h.Tagline, h.TaglineHighlight,
		h.Stat1Value, h.Stat1Label, h.Stat2Value, h.Stat2Label,
		h.Stat3Value, h.Stat3Label, h.Stat4Value, h.Stat4Label, time.Now().UTC())
	return err
}

// GetAboutContent returns the about section content.
func (q *Queries) GetAboutContent(ctx context.Context) (model.AboutContent, error) {
	var a model.AboutContent
	var tags string
	err := q.db.QueryRowContext(ctx, `
		SELECT id, paragraph_1, paragraph_2, image_url, tags, updated_at
		FROM about_content WHERE id = ?`, model.SingletonID).
		Scan(&a.ID, &a.Paragraph1, &a.Paragraph2, &a.ImageURL, &tags, &a.UpdatedAt)
	if err != nil {
		return model.AboutContent{}, err
	}
	a.Tags = decodeStrings(tags)
	return a, nil
}

// UpsertAboutContent creates or replaces the about section content.
func (q *Queries) UpsertAboutContent(ctx context.Context, a model.AboutContent) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO about_content (id, paragraph_1, paragraph_2, image_url, tags, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			paragraph_1 = excluded.paragraph_1,
			paragraph_2 = excluded.paragraph_2,
			image_url = excluded.image_url,
			tags = excluded.tags,
			updated_at = excluded.updated_at`,
		model.SingletonID, a.Paragraph1, a.Paragraph2, a.ImageURL,
		encodeStrings(a.Tags), time.Now().UTC())
	return err
}

// GetCommunityContent returns the community call-to-action content.
func (q *Queries) GetCommunityContent(ctx context.Context) (model.CommunityContent, error) {
	var c model.CommunityContent
	err := q.db.QueryRowContext(ctx, `
		SELECT id, title, description, cta_text, cta_link, updated_at
		FROM community_content WHERE id = ?`, model.SingletonID).
		Scan(&c.ID, &c.Title, &c.Description, &c.CTAText, &c.CTALink, &c.UpdatedAt)
	return c, err
}

// UpsertCommunityContent creates or replaces the community content.
func (q *Queries) UpsertCommunityContent(ctx context.Context, c model.CommunityContent) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO community_content (id, title, description, cta_text, cta_link, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			cta_text = excluded.cta_text,
			cta_link = excluded.cta_link,
			updated_at = excluded.updated_at`,
		model.SingletonID, c.Title, c.Description, c.CTAText, c.CTALink, time.Now().UTC())
	return err
}

// GetFooterContent returns the site footer content.
func (q *Queries) GetFooterContent(ctx context.Context) (model.FooterContent, error) {
	var f model.FooterContent
	var roles, education string
	err := q.db.QueryRowContext(ctx, `
		SELECT id, name, roles, location, education_title, education_items,
		       status_text, status_available, contact_email, linkedin_url,
		       github_url, email_url, updated_at
		FROM footer_content WHERE id = ?`, model.SingletonID).
		Scan(&f.ID, &f.Name, &roles, &f.Location, &f.EducationTitle, &education,
			&f.StatusText, &f.StatusAvailable, &f.ContactEmail, &f.LinkedInURL,
			&f.GitHubURL, &f.EmailURL, &f.UpdatedAt)
	if err != nil {
		return model.FooterContent{}, err
	}
	f.Roles = decodeStrings(roles)
	f.EducationItems = decodeStrings(education)
	return f, nil
}

// UpsertFooterContent creates or replaces the site footer content.
func (q *Queries) UpsertFooterContent(ctx context.Context, f model.FooterContent) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO footer_content (id, name, roles, location, education_title,
		                            education_items, status_text, status_available,
		                            contact_email, linkedin_url, github_url, email_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			roles = excluded.roles,
			location = excluded.location,
			education_title = excluded.education_title,
			education_items = excluded.education_items,
			status_text = excluded.status_text,
			status_available = excluded.status_available,
			contact_email = excluded.contact_email,
			linkedin_url = excluded.linkedin_url,
			github_url = excluded.github_url,
			email_url = excluded.email_url,
			updated_at = excluded.updated_at`,
		model.SingletonID, f.Name, encodeStrings(f.Roles), f.Location, f.EducationTitle,
		encodeStrings(f.EducationItems), f.StatusText, f.StatusAvailable,
		f.ContactEmail, f.LinkedInURL, f.GitHubURL, f.EmailURL, time.Now().UTC())
	return err
}
