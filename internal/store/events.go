// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// CreateEventParams holds the fields for logging an event.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	UserID   sql.NullInt64
	Metadata string
}

// CreateEvent inserts an event log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (int64, error) {
	if arg.Metadata == "" {
		arg.Metadata = "{}"
	}
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, user_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.UserID, arg.Metadata, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEventsParams controls event listing.
type ListEventsParams struct {
	Category string // empty = all categories
	Limit    int64
	Offset   int64
}

// ListEvents returns events newest first, optionally filtered by category.
func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]model.Event, error) {
	query := `
		SELECT id, level, category, message, user_id, metadata, created_at
		FROM events`
	args := []any{}
	if arg.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, arg.Category)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, arg.Limit, arg.Offset)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.UserID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountEvents returns the total number of events, optionally filtered
// by category.
func (q *Queries) CountEvents(ctx context.Context, category string) (int64, error) {
	var n int64
	var err error
	if category == "" {
		err = q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	} else {
		err = q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE category = ?`, category).Scan(&n)
	}
	return n, err
}

// DeleteOldEvents removes events older than cutoff and returns the
// number deleted.
func (q *Queries) DeleteOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
