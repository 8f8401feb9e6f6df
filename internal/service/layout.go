// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// LayoutService holds one layout descriptor and card style per section.
// Persisted values are loaded in bulk at startup; sections never saved
// fall back to their built-in defaults. Writes go through the store
// immediately (upsert keyed by section name, last write wins).
type LayoutService struct {
	queries *store.Queries

	mu      sync.RWMutex
	layouts map[string]model.SectionLayout
	styles  map[string]model.CardStyle
}

// NewLayoutService creates a LayoutService.
func NewLayoutService(db *sql.DB) *LayoutService {
	return &LayoutService{
		queries: store.New(db),
		layouts: make(map[string]model.SectionLayout),
		styles:  make(map[string]model.CardStyle),
	}
}

// LoadAll fetches every persisted layout and card style into memory.
// Call once at startup.
func (s *LayoutService) LoadAll(ctx context.Context) error {
	layouts, err := s.queries.ListSectionLayouts(ctx)
	if err != nil {
		return fmt.Errorf("loading section layouts: %w", err)
	}
	styles, err := s.queries.ListCardStyles(ctx)
	if err != nil {
		return fmt.Errorf("loading card styles: %w", err)
	}

	s.mu.Lock()
	s.layouts = layouts
	s.styles = styles
	s.mu.Unlock()
	return nil
}

// GetLayout returns the current layout for a section, or the section's
// built-in default if none was ever saved. Never returns a zero value.
func (s *LayoutService) GetLayout(section string) model.SectionLayout {
	s.mu.RLock()
	l, ok := s.layouts[section]
	s.mu.RUnlock()
	if ok {
		return l
	}
	return model.DefaultLayout(section)
}

// GetAllLayouts returns the effective layout for every known section.
func (s *LayoutService) GetAllLayouts() map[string]model.SectionLayout {
	out := make(map[string]model.SectionLayout, len(model.Sections))
	for _, section := range model.Sections {
		out[section] = s.GetLayout(section)
	}
	return out
}

// GetAllCardStyles returns the effective card style for every known
// section.
func (s *LayoutService) GetAllCardStyles() map[string]model.CardStyle {
	out := make(map[string]model.CardStyle, len(model.Sections))
	for _, section := range model.Sections {
		out[section] = s.GetCardStyle(section)
	}
	return out
}

// SetLayout validates and persists the layout for a section, then
// replaces the in-memory value. Unknown sections or invalid enum
// values are rejected, not coerced.
func (s *LayoutService) SetLayout(ctx context.Context, section string, l model.SectionLayout) error {
	if !model.IsValidSection(section) {
		return fmt.Errorf("unknown section %q", section)
	}
	l.SectionName = section
	if err := l.Validate(); err != nil {
		return err
	}

	if err := s.queries.UpsertSectionLayout(ctx, l); err != nil {
		return fmt.Errorf("saving layout for %s: %w", section, err)
	}

	s.mu.Lock()
	s.layouts[section] = l
	s.mu.Unlock()
	return nil
}

// GetCardStyle returns the current card style for a section, or the
// built-in default if none was ever saved.
func (s *LayoutService) GetCardStyle(section string) model.CardStyle {
	s.mu.RLock()
	c, ok := s.styles[section]
	s.mu.RUnlock()
	if ok {
		return c
	}
	return model.DefaultCardStyle()
}

// SetCardStyle validates and persists the card style for a section.
func (s *LayoutService) SetCardStyle(ctx context.Context, section string, c model.CardStyle) error {
	if !model.IsValidSection(section) {
		return fmt.Errorf("unknown section %q", section)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := s.queries.UpsertCardStyle(ctx, section, c); err != nil {
		return fmt.Errorf("saving card style for %s: %w", section, err)
	}

	s.mu.Lock()
	s.styles[section] = c
	s.mu.Unlock()
	return nil
}
