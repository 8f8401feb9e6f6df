// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Singleton rows always live at this fixed ID. There is exactly one
// hero, about, community and footer record per site.
const SingletonID int64 = 1

// HeroContent holds the text of the landing hero section.
type HeroContent struct {
	ID               int64     `json:"id"`
	BadgeText        string    `json:"badge_text"`
	Subtitle         string    `json:"subtitle"`
	Name             string    `json:"name"`
	Tagline          string    `json:"tagline"`
	TaglineHighlight string    `json:"tagline_highlight"`
	Stat1Value       string    `json:"stat_1_value"`
	Stat1Label       string    `json:"stat_1_label"`
	Stat2Value       string    `json:"stat_2_value"`
	Stat2Label       string    `json:"stat_2_label"`
	Stat3Value       string    `json:"stat_3_value"`
	Stat3Label       string    `json:"stat_3_label"`
	Stat4Value       string    `json:"stat_4_value"`
	Stat4Label       string    `json:"stat_4_label"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AboutContent holds the about section copy and portrait.
type AboutContent struct {
	ID         int64     `json:"id"`
	Paragraph1 string    `json:"paragraph_1"`
	Paragraph2 string    `json:"paragraph_2"`
	ImageURL   string    `json:"image_url"`
	Tags       []string  `json:"tags"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommunityContent holds the community call-to-action block.
type CommunityContent struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CTAText     string    `json:"cta_text"`
	CTALink     string    `json:"cta_link"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FooterContent holds the site footer: identity, education and contact.
type FooterContent struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Roles           []string  `json:"roles"`
	Location        string    `json:"location"`
	EducationTitle  string    `json:"education_title"`
	EducationItems  []string  `json:"education_items"`
	StatusText      string    `json:"status_text"`
	StatusAvailable bool      `json:"status_available"`
	ContactEmail    string    `json:"contact_email"`
	LinkedInURL     string    `json:"linkedin_url"`
	GitHubURL       string    `json:"github_url"`
	EmailURL        string    `json:"email_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}
