// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"
)

// SecurityTxtConfig holds configuration for security.txt generation
// (RFC 9116).
type SecurityTxtConfig struct {
	// Contact is required: email, URL or phone for reporting
	// vulnerabilities, e.g. "mailto:security@example.com".
	Contact string

	// Expires marks when the file goes stale. Zero defaults to one
	// year from now.
	Expires time.Time

	// Canonical is the canonical URL for this security.txt file.
	Canonical string
}

// GenerateSecurityTxt builds security.txt content. Returns an empty
// string when no contact is configured.
func GenerateSecurityTxt(cfg SecurityTxtConfig) string {
	if cfg.Contact == "" {
		return ""
	}
	if cfg.Expires.IsZero() {
		cfg.Expires = time.Now().AddDate(1, 0, 0)
	}

	var sb strings.Builder
	sb.WriteString("Contact: ")
	sb.WriteString(cfg.Contact)
	sb.WriteString("\nExpires: ")
	sb.WriteString(cfg.Expires.UTC().Format(time.RFC3339))
	sb.WriteString("\n")
	if cfg.Canonical != "" {
		sb.WriteString("Canonical: ")
		sb.WriteString(cfg.Canonical)
		sb.WriteString("\n")
	}
	return sb.String()
}
