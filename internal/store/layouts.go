// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// ListSectionLayouts returns every persisted section layout keyed by
// section name. Sections never saved are absent; callers fall back to
// built-in defaults for those.
func (q *Queries) ListSectionLayouts(ctx context.Context) (map[string]model.SectionLayout, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, section_name, arrangement, orientation, spacing,
		       show_image, image_position, image_size, updated_at
		FROM section_layouts`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	layouts := make(map[string]model.SectionLayout)
	for rows.Next() {
		var l model.SectionLayout
		if err := rows.Scan(&l.ID, &l.SectionName, &l.Arrangement, &l.Orientation,
			&l.Spacing, &l.ShowImage, &l.ImagePosition, &l.ImageSize, &l.UpdatedAt); err != nil {
			return nil, err
		}
		layouts[l.SectionName] = l
	}
	return layouts, rows.Err()
}

// GetSectionLayout returns the persisted layout for one section.
func (q *Queries) GetSectionLayout(ctx context.Context, section string) (model.SectionLayout, error) {
	var l model.SectionLayout
	err := q.db.QueryRowContext(ctx, `
		SELECT id, section_name, arrangement, orientation, spacing,
		       show_image, image_position, image_size, updated_at
		FROM section_layouts WHERE section_name = ?`, section).
		Scan(&l.ID, &l.SectionName, &l.Arrangement, &l.Orientation,
			&l.Spacing, &l.ShowImage, &l.ImagePosition, &l.ImageSize, &l.UpdatedAt)
	return l, err
}

// UpsertSectionLayout creates or replaces the layout for a section.
// At most one row exists per section name; last write wins.
func (q *Queries) UpsertSectionLayout(ctx context.Context, l model.SectionLayout) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO section_layouts (section_name, arrangement, orientation, spacing,
		                             show_image, image_position, image_size, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(section_name) DO UPDATE SET
			arrangement = excluded.arrangement,
			orientation = excluded.orientation,
			spacing = excluded.spacing,
			show_image = excluded.show_image,
			image_position = excluded.image_position,
			image_size = excluded.image_size,
			updated_at = excluded.updated_at`,
		l.SectionName, l.Arrangement, l.Orientation, l.Spacing,
		l.ShowImage, l.ImagePosition, l.ImageSize, time.Now().UTC())
	return err
}

// ListCardStyles returns every persisted card style keyed by section name.
func (q *Queries) ListCardStyles(ctx context.Context) (map[string]model.CardStyle, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT section_name, border_radius, padding, shadow, text_align, title_size, desc_size
		FROM card_styles`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	styles := make(map[string]model.CardStyle)
	for rows.Next() {
		var section string
		var c model.CardStyle
		if err := rows.Scan(&section, &c.BorderRadius, &c.Padding, &c.Shadow,
			&c.TextAlign, &c.TitleSize, &c.DescSize); err != nil {
			return nil, err
		}
		styles[section] = c
	}
	return styles, rows.Err()
}

// UpsertCardStyle creates or replaces the card style for a section.
func (q *Queries) UpsertCardStyle(ctx context.Context, section string, c model.CardStyle) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO card_styles (section_name, border_radius, padding, shadow,
		                         text_align, title_size, desc_size, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(section_name) DO UPDATE SET
			border_radius = excluded.border_radius,
			padding = excluded.padding,
			shadow = excluded.shadow,
			text_align = excluded.text_align,
			title_size = excluded.title_size,
			desc_size = excluded.desc_size,
			updated_at = excluded.updated_at`,
		section, c.BorderRadius, c.Padding, c.Shadow,
		c.TextAlign, c.TitleSize, c.DescSize, time.Now().UTC())
	return err
}
