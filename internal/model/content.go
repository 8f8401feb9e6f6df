// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Section names. Every ordered content collection is addressed by one
// of these identifiers in the store, the layout table and the admin API.
const (
	SectionProjects         = "projects"
	SectionLeadership       = "leadership"
	SectionAwards           = "awards"
	SectionSpecialAwards    = "special_awards"
	SectionPress            = "press"
	SectionPublications     = "publications"
	SectionEndorsements     = "endorsements"
	SectionNewsletterIssues = "newsletter_issues"
	SectionCommunityEvents  = "community_events"
	SectionHeroImages       = "hero_images"
)

// Sections lists all ordered content sections in display order.
var Sections = []string{
	SectionProjects,
	SectionLeadership,
	SectionAwards,
	SectionSpecialAwards,
	SectionPress,
	SectionPublications,
	SectionEndorsements,
	SectionNewsletterIssues,
	SectionCommunityEvents,
	SectionHeroImages,
}

// IsValidSection reports whether name addresses a known content section.
func IsValidSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Project statuses
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOngoing   = "ongoing"
)

// Project represents a portfolio project entry.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Tags        []string  `json:"tags"`
	Awards      []string  `json:"awards"`
	Funding     string    `json:"funding"`
	Status      string    `json:"status"`
	Color       string    `json:"color"`
	Link        string    `json:"link"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Leadership represents a leadership or affiliation entry.
type Leadership struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Link         string    `json:"link"`
	OrderIndex   int64     `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Award represents an award or honor entry.
type Award struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsFeatured  bool      `json:"is_featured"`
	Link        string    `json:"link"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SpecialAward represents a short named honor shown in a compact list.
type SpecialAward struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Link       string    `json:"link"`
	OrderIndex int64     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Press represents a press mention or media appearance.
type Press struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Link        string    `json:"link"`
	IsFeatured  bool      `json:"is_featured"`
	IsVideo     bool      `json:"is_video"`
	Color       string    `json:"color"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Publication represents a published article or talk.
type Publication struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	Link        string    `json:"link"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Endorsement represents a testimonial quote.
type Endorsement struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Initial    string    `json:"initial"`
	Quote      string    `json:"quote"`
	Color      string    `json:"color"`
	Link       string    `json:"link"`
	OrderIndex int64     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewsletterIssue represents one newsletter issue. The entry at order
// index zero is the current issue; the rest form the archive.
type NewsletterIssue struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Month      string    `json:"month"`
	OrderIndex int64     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommunityEvent represents a community event. Like newsletter issues,
// order index zero is the upcoming event and the rest are past events.
type CommunityEvent struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Month       string    `json:"month"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HeroImage represents one slide of the hero carousel.
type HeroImage struct {
	ID         int64     `json:"id"`
	ImageURL   string    `json:"image_url"`
	AltText    string    `json:"alt_text"`
	Brightness int64     `json:"brightness"`
	IsActive   bool      `json:"is_active"`
	OrderIndex int64     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
