// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify reduces a string to lowercase ASCII letters, digits and
// single hyphens. Accented characters are transliterated rather than
// dropped. Used for stored upload filenames, which must never carry
// user-controlled bytes.
func Slugify(s string) string {
	// Decompose accents, strip the combining marks, recompose
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)

	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = repeatedHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
