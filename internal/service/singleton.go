// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// SingletonService persists the four one-row content blocks (hero,
// about, community, footer). A block that was never saved reads back
// as its zero value rather than an error, so a fresh database renders
// an empty page instead of failing.
type SingletonService struct {
	queries *store.Queries
}

// NewSingletonService creates a SingletonService.
func NewSingletonService(db *sql.DB) *SingletonService {
	return &SingletonService{queries: store.New(db)}
}

// GetHero returns the hero block.
func (s *SingletonService) GetHero(ctx context.Context) (model.HeroContent, error) {
	h, err := s.queries.GetHeroContent(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HeroContent{ID: model.SingletonID}, nil
	}
	return h, err
}

// SaveHero creates or replaces the hero block.
func (s *SingletonService) SaveHero(ctx context.Context, h model.HeroContent) error {
	return s.queries.UpsertHeroContent(ctx, h)
}

// GetAbout returns the about block.
func (s *SingletonService) GetAbout(ctx context.Context) (model.AboutContent, error) {
	a, err := s.queries.GetAboutContent(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AboutContent{ID: model.SingletonID}, nil
	}
	return a, err
}

// SaveAbout creates or replaces the about block.
func (s *SingletonService) SaveAbout(ctx context.Context, a model.AboutContent) error {
	return s.queries.UpsertAboutContent(ctx, a)
}

// GetCommunity returns the community block.
func (s *SingletonService) GetCommunity(ctx context.Context) (model.CommunityContent, error) {
	c, err := s.queries.GetCommunityContent(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CommunityContent{ID: model.SingletonID}, nil
	}
	return c, err
}

// SaveCommunity creates or replaces the community block.
func (s *SingletonService) SaveCommunity(ctx context.Context, c model.CommunityContent) error {
	return s.queries.UpsertCommunityContent(ctx, c)
}

// GetFooter returns the footer block.
func (s *SingletonService) GetFooter(ctx context.Context) (model.FooterContent, error) {
	f, err := s.queries.GetFooterContent(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FooterContent{ID: model.SingletonID}, nil
	}
	return f, err
}

// SaveFooter creates or replaces the footer block.
func (s *SingletonService) SaveFooter(ctx context.Context, f model.FooterContent) error {
	return s.queries.UpsertFooterContent(ctx, f)
}
