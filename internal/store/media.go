// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// CreateMediaParams holds the fields for recording an upload.
type CreateMediaParams struct {
	UUID       string
	Filename   string
	MimeType   string
	Size       int64
	Width      int64
	Height     int64
	Alt        string
	UploadedBy int64
}

// CreateMedia records an uploaded file and returns its assigned ID.
func (q *Queries) CreateMedia(ctx context.Context, arg CreateMediaParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO media (uuid, filename, mime_type, size, width, height, alt, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		arg.UUID, arg.Filename, arg.MimeType, arg.Size, arg.Width, arg.Height,
		arg.Alt, arg.UploadedBy, time.Now().UTC(),
	).Scan(&id)
	return id, err
}

// GetMediaByUUID returns the media record with the given UUID.
func (q *Queries) GetMediaByUUID(ctx context.Context, uuid string) (model.Media, error) {
	var m model.Media
	var uploadedBy sql.NullInt64
	err := q.db.QueryRowContext(ctx, `
		SELECT id, uuid, filename, mime_type, size, width, height, alt, uploaded_by, created_at
		FROM media WHERE uuid = ?`, uuid).
		Scan(&m.ID, &m.UUID, &m.Filename, &m.MimeType, &m.Size, &m.Width,
			&m.Height, &m.Alt, &uploadedBy, &m.CreatedAt)
	m.UploadedBy = uploadedBy.Int64
	return m, err
}

// GetMediaByID returns the media record with the given ID.
func (q *Queries) GetMediaByID(ctx context.Context, id int64) (model.Media, error) {
	var m model.Media
	var uploadedBy sql.NullInt64
	err := q.db.QueryRowContext(ctx, `
		SELECT id, uuid, filename, mime_type, size, width, height, alt, uploaded_by, created_at
		FROM media WHERE id = ?`, id).
		Scan(&m.ID, &m.UUID, &m.Filename, &m.MimeType, &m.Size, &m.Width,
			&m.Height, &m.Alt, &uploadedBy, &m.CreatedAt)
	m.UploadedBy = uploadedBy.Int64
	return m, err
}

// ListMedia returns all media records, newest first.
func (q *Queries) ListMedia(ctx context.Context) ([]model.Media, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, uuid, filename, mime_type, size, width, height, alt, uploaded_by, created_at
		FROM media ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Media
	for rows.Next() {
		var m model.Media
		var uploadedBy sql.NullInt64
		if err := rows.Scan(&m.ID, &m.UUID, &m.Filename, &m.MimeType, &m.Size,
			&m.Width, &m.Height, &m.Alt, &uploadedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.UploadedBy = uploadedBy.Int64
		items = append(items, m)
	}
	return items, rows.Err()
}

// DeleteMedia removes a media record.
func (q *Queries) DeleteMedia(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	return err
}
