// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "encoding/json"

// encodeStrings serializes a string slice for storage in a TEXT column.
// A nil slice encodes as an empty JSON array so columns never hold NULL.
func encodeStrings(s []string) string {
	if len(s) == 0 {
		return "[]"
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeStrings deserializes a TEXT column into a string slice.
// Malformed data yields an empty slice rather than an error; the
// column is owned by this package and only ever holds encodeStrings
// output.
func decodeStrings(raw string) []string {
	if raw == "" || raw == "[]" {
		return []string{}
	}
	var s []string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return []string{}
	}
	return s
}
