// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Team Photo", "team-photo"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"accents transliterated", "Café résumé", "cafe-resume"},
		{"repeated spaces collapse", "a   b", "a-b"},
		{"hyphens trimmed", "--edges--", "edges"},
		{"only symbols", "!!!", ""},
		{"mixed case", "IMG_2024 Final", "img2024-final"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
