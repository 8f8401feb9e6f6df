// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an email address. Subscriber
// emails are stored in this form so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether s parses as a bare RFC 5322 address.
// Display names ("Jane <jane@example.com>") are rejected.
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
