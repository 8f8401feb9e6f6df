// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// Subscription errors surfaced to handlers.
var (
	// ErrInvalidEmail means the submitted address failed validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrAlreadySubscribed means the address is already on the list.
	ErrAlreadySubscribed = errors.New("already subscribed")
)

// SubscriberService manages the newsletter list.
type SubscriberService struct {
	queries *store.Queries
}

// NewSubscriberService creates a SubscriberService.
func NewSubscriberService(db *sql.DB) *SubscriberService {
	return &SubscriberService{queries: store.New(db)}
}

// Subscribe normalizes and validates the address, then adds it to the
// list. A duplicate returns ErrAlreadySubscribed; the existing record
// is left untouched.
func (s *SubscriberService) Subscribe(ctx context.Context, email, source string) (model.Subscriber, error) {
	email = util.NormalizeEmail(email)
	if !util.IsValidEmail(email) {
		return model.Subscriber{}, ErrInvalidEmail
	}
	if source == "" {
		source = model.SubscriberSourceWebsite
	}

	sub, err := s.queries.CreateSubscriber(ctx, store.CreateSubscriberParams{
		Email:  email,
		Source: source,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return model.Subscriber{}, ErrAlreadySubscribed
	}
	return sub, err
}

// Add inserts a subscriber on behalf of an admin, with optional name
// and notes.
func (s *SubscriberService) Add(ctx context.Context, email, name, notes string) (model.Subscriber, error) {
	email = util.NormalizeEmail(email)
	if !util.IsValidEmail(email) {
		return model.Subscriber{}, ErrInvalidEmail
	}

	sub, err := s.queries.CreateSubscriber(ctx, store.CreateSubscriberParams{
		Email:  email,
		Name:   util.NullStringFromValue(name),
		Notes:  util.NullStringFromValue(notes),
		Source: model.SubscriberSourceManual,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return model.Subscriber{}, ErrAlreadySubscribed
	}
	return sub, err
}

// List returns all subscribers, newest first.
func (s *SubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.queries.ListSubscribers(ctx)
}

// Update replaces a subscriber's editable fields.
func (s *SubscriberService) Update(ctx context.Context, id int64, name, notes string, isActive bool) error {
	return s.queries.UpdateSubscriber(ctx, id, store.UpdateSubscriberParams{
		Name:     util.NullStringFromValue(name),
		Notes:    util.NullStringFromValue(notes),
		IsActive: isActive,
	})
}

// Delete removes a subscriber.
func (s *SubscriberService) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteSubscriber(ctx, id)
}

// CountActive returns the number of active subscribers.
func (s *SubscriberService) CountActive(ctx context.Context) (int64, error) {
	return s.queries.CountActiveSubscribers(ctx)
}

// ExportCSV writes the active subscriber list as CSV. The header row
// comes first; one row per subscriber follows, newest first.
func (s *SubscriberService) ExportCSV(ctx context.Context, w io.Writer) error {
	subs, err := s.queries.ListActiveSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("listing subscribers: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Email", "Subscribed At", "Status", "Name", "Notes"}); err != nil {
		return err
	}
	for _, sub := range subs {
		status := "active"
		if !sub.IsActive {
			status = "unsubscribed"
		}
		row := []string{
			sub.Email,
			sub.SubscribedAt.Format("2006-01-02"),
			status,
			sub.Name.String,
			sub.Notes.String,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
