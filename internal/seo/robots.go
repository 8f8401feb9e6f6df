// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import "strings"

// RobotsConfig holds configuration for robots.txt generation.
type RobotsConfig struct {
	SiteURL     string // Base URL for the sitemap reference
	DisallowAll bool   // Block all crawlers (for staging sites)
}

// GenerateRobots builds robots.txt content. The admin area and raw
// upload paths are always kept out of crawler reach.
func GenerateRobots(cfg RobotsConfig) string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")
	if cfg.DisallowAll {
		sb.WriteString("Disallow: /\n")
	} else {
		sb.WriteString("Disallow: /admin\n")
		sb.WriteString("Disallow: /health\n")
		sb.WriteString("Allow: /\n")
	}

	if cfg.SiteURL != "" && !cfg.DisallowAll {
		sb.WriteString("\nSitemap: ")
		sb.WriteString(strings.TrimSuffix(cfg.SiteURL, "/"))
		sb.WriteString("/sitemap.xml\n")
	}

	return sb.String()
}
