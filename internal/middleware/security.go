// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// SecurityHeadersConfig configures the standard security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS and relaxes CSP.
	IsDevelopment bool

	// ContentSecurityPolicy overrides the default CSP when non-empty.
	ContentSecurityPolicy string

	// HSTSMaxAge in seconds; 0 disables HSTS.
	HSTSMaxAge int

	// HSTSIncludeSubDomains extends the HSTS policy to subdomains.
	HSTSIncludeSubDomains bool

	// FrameOptions sets X-Frame-Options ("DENY", "SAMEORIGIN", or
	// empty to omit).
	FrameOptions string

	// ReferrerPolicy sets Referrer-Policy.
	ReferrerPolicy string
}

// DefaultSecurityHeadersConfig returns headers suited to the portfolio
// site: Tailwind loads from its CDN, fonts from Google, and uploaded
// images from anywhere over HTTPS.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	cfg := SecurityHeadersConfig{
		IsDevelopment:  isDev,
		HSTSMaxAge:     31536000,
		FrameOptions:   "SAMEORIGIN",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}

	scriptSrc := "'self' 'unsafe-inline' https://cdn.tailwindcss.com"
	if isDev {
		scriptSrc += " 'unsafe-eval'"
	} else {
		cfg.HSTSIncludeSubDomains = true
	}

	cfg.ContentSecurityPolicy = buildCSP(map[string]string{
		"default-src": "'self'",
		"script-src":  scriptSrc,
		"style-src":   "'self' 'unsafe-inline' https://fonts.googleapis.com",
		"img-src":     "'self' data: blob: https:",
		"font-src":    "'self' data: https://fonts.gstatic.com",
		"connect-src": "'self'",
		"object-src":  "'none'",
		"base-uri":    "'self'",
		"form-action": "'self'",
	})
	return cfg
}

// buildCSP joins CSP directives in a stable order.
func buildCSP(directives map[string]string) string {
	order := []string{
		"default-src", "script-src", "style-src", "img-src", "font-src",
		"connect-src", "object-src", "base-uri", "form-action",
	}
	var parts []string
	for _, key := range order {
		if value, ok := directives[key]; ok {
			parts = append(parts, key+" "+value)
		}
	}
	return strings.Join(parts, "; ")
}

// SecurityHeaders adds the configured security headers to every
// response.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
				hsts := "max-age=" + strconv.Itoa(cfg.HSTSMaxAge)
				if cfg.HSTSIncludeSubDomains {
					hsts += "; includeSubDomains"
				}
				h.Set("Strict-Transport-Security", hsts)
			}
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}

			next.ServeHTTP(w, r)
		})
	}
}
