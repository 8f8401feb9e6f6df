// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"strings"
)

// ErrDuplicate indicates a unique constraint violation, e.g. inserting
// a subscriber email that already exists.
var ErrDuplicate = errors.New("duplicate key")

// IsUniqueViolation reports whether err was caused by a UNIQUE
// constraint. SQLite drivers expose this only through the error text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrDuplicate) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
