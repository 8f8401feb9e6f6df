// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateSitemapHomepageOnly(t *testing.T) {
	lastMod := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out, err := GenerateSitemap("https://example.com", lastMod)
	if err != nil {
		t.Fatalf("GenerateSitemap: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "<loc>https://example.com</loc>") {
		t.Errorf("missing homepage loc: %s", s)
	}
	if !strings.Contains(s, "<lastmod>2026-03-01T12:00:00Z</lastmod>") {
		t.Errorf("missing lastmod: %s", s)
	}
	if !strings.Contains(s, XMLNamespace) {
		t.Errorf("missing namespace: %s", s)
	}
}

func TestGenerateSitemapZeroLastModOmitted(t *testing.T) {
	out, err := GenerateSitemap("https://example.com", time.Time{})
	if err != nil {
		t.Fatalf("GenerateSitemap: %v", err)
	}
	if strings.Contains(string(out), "<lastmod>") {
		t.Errorf("lastmod should be omitted for zero time: %s", out)
	}
}

func TestGenerateRobots(t *testing.T) {
	out := GenerateRobots(RobotsConfig{SiteURL: "https://example.com/"})
	for _, want := range []string{
		"User-agent: *",
		"Disallow: /admin",
		"Allow: /",
		"Sitemap: https://example.com/sitemap.xml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateRobotsDisallowAll(t *testing.T) {
	out := GenerateRobots(RobotsConfig{SiteURL: "https://example.com", DisallowAll: true})
	if !strings.Contains(out, "Disallow: /\n") {
		t.Errorf("expected full disallow:\n%s", out)
	}
	if strings.Contains(out, "Sitemap:") {
		t.Errorf("staging robots.txt should not advertise a sitemap:\n%s", out)
	}
}

func TestGenerateSecurityTxt(t *testing.T) {
	out := GenerateSecurityTxt(SecurityTxtConfig{
		Contact:   "mailto:security@example.com",
		Expires:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		Canonical: "https://example.com/.well-known/security.txt",
	})
	for _, want := range []string{
		"Contact: mailto:security@example.com",
		"Expires: 2027-01-01T00:00:00Z",
		"Canonical: https://example.com/.well-known/security.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("security.txt missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateSecurityTxtRequiresContact(t *testing.T) {
	if out := GenerateSecurityTxt(SecurityTxtConfig{}); out != "" {
		t.Errorf("expected empty output without contact, got %q", out)
	}
}
