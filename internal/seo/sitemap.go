// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo generates the crawler-facing text files: sitemap.xml,
// robots.txt and security.txt.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GenerateSitemap builds sitemap XML for the single-page site. lastMod
// is the time the published content last changed; a zero time omits
// the lastmod element.
func GenerateSitemap(siteURL string, lastMod time.Time) ([]byte, error) {
	home := SitemapURL{
		Loc:        siteURL,
		ChangeFreq: "weekly",
		Priority:   "1.0",
	}
	if !lastMod.IsZero() {
		home.LastMod = lastMod.Format(time.RFC3339)
	}

	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  []SitemapURL{home},
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(output, xmlBytes...), nil
}
