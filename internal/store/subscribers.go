// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegiv/folio-go/internal/model"
)

// CreateSubscriberParams holds the fields for adding a subscriber.
// Email must already be normalized (trimmed, lowercased) by the caller.
type CreateSubscriberParams struct {
	Email  string
	Name   sql.NullString
	Notes  sql.NullString
	Source string
}

// CreateSubscriber inserts a subscriber and returns it with its
// assigned ID. A duplicate email returns ErrDuplicate.
func (q *Queries) CreateSubscriber(ctx context.Context, arg CreateSubscriberParams) (model.Subscriber, error) {
	now := time.Now().UTC()
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (email, name, notes, source, is_active, subscribed_at)
		VALUES (?, ?, ?, ?, 1, ?)
		RETURNING id`,
		arg.Email, arg.Name, arg.Notes, arg.Source, now,
	).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return model.Subscriber{}, fmt.Errorf("subscriber %s: %w", arg.Email, ErrDuplicate)
		}
		return model.Subscriber{}, err
	}
	return model.Subscriber{
		ID:           id,
		Email:        arg.Email,
		Name:         arg.Name,
		Notes:        arg.Notes,
		Source:       arg.Source,
		IsActive:     true,
		SubscribedAt: now,
	}, nil
}

// ListSubscribers returns all subscribers, newest first.
func (q *Queries) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	return q.listSubscribers(ctx, false)
}

// ListActiveSubscribers returns only active subscribers, newest first.
func (q *Queries) ListActiveSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	return q.listSubscribers(ctx, true)
}

func (q *Queries) listSubscribers(ctx context.Context, activeOnly bool) ([]model.Subscriber, error) {
	query := `
		SELECT id, email, name, notes, source, is_active, subscribed_at, unsubscribed_at
		FROM subscribers`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY subscribed_at DESC, id DESC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.Notes, &s.Source,
			&s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// GetSubscriberByEmail returns the subscriber with the given email.
func (q *Queries) GetSubscriberByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	var s model.Subscriber
	err := q.db.QueryRowContext(ctx, `
		SELECT id, email, name, notes, source, is_active, subscribed_at, unsubscribed_at
		FROM subscribers WHERE email = ?`, email).
		Scan(&s.ID, &s.Email, &s.Name, &s.Notes, &s.Source,
			&s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt)
	return s, err
}

// UpdateSubscriberParams holds the admin-editable subscriber fields.
type UpdateSubscriberParams struct {
	Name     sql.NullString
	Notes    sql.NullString
	IsActive bool
}

// UpdateSubscriber replaces a subscriber's editable fields. Toggling
// IsActive off records the unsubscribe time; toggling it back on
// clears it.
func (q *Queries) UpdateSubscriber(ctx context.Context, id int64, arg UpdateSubscriberParams) error {
	var unsubscribedAt sql.NullTime
	if !arg.IsActive {
		unsubscribedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}
	_, err := q.db.ExecContext(ctx, `
		UPDATE subscribers SET name = ?, notes = ?, is_active = ?, unsubscribed_at = ?
		WHERE id = ?`,
		arg.Name, arg.Notes, arg.IsActive, unsubscribedAt, id)
	return err
}

// DeleteSubscriber removes a subscriber.
func (q *Queries) DeleteSubscriber(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = ?`, id)
	return err
}

// CountActiveSubscribers returns the number of active subscribers.
func (q *Queries) CountActiveSubscribers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers WHERE is_active = 1`).Scan(&n)
	return n, err
}
