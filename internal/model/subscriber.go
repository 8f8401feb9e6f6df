// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Subscriber sources
const (
	SubscriberSourceWebsite = "website"
	SubscriberSourceManual  = "manual"
	SubscriberSourceImport  = "import"
)

// Subscriber represents a newsletter subscriber. Emails are stored
// lowercased and unique.
type Subscriber struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email"`
	Name           sql.NullString `json:"name,omitempty"`
	Notes          sql.NullString `json:"notes,omitempty"`
	Source         string         `json:"source"`
	IsActive       bool           `json:"is_active"`
	SubscribedAt   time.Time      `json:"subscribed_at"`
	UnsubscribedAt sql.NullTime   `json:"unsubscribed_at,omitempty"`
}
