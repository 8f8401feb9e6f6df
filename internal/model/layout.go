// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"time"
)

// Arrangement values for a section container.
const (
	ArrangementGrid2   = "grid-2"
	ArrangementGrid3   = "grid-3"
	ArrangementGrid4   = "grid-4"
	ArrangementList    = "list"
	ArrangementMasonry = "masonry"
)

// Card orientation values.
const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"
)

// Image position values. Only meaningful when ShowImage is true.
const (
	ImagePositionTop        = "top"
	ImagePositionLeft       = "left"
	ImagePositionRight      = "right"
	ImagePositionBackground = "background"
)

// Image size values.
const (
	ImageSizeSmall  = "sm"
	ImageSizeMedium = "md"
	ImageSizeLarge  = "lg"
	ImageSizeFull   = "full"
)

// Spacing steps. The value is the gap unit between sibling cards.
const (
	SpacingTight   = 2
	SpacingNormal  = 4
	SpacingRelaxed = 6
	SpacingLoose   = 8
)

// SectionLayout describes how one content section is arranged,
// independently of the entities it holds. At most one row exists per
// section name; sections never saved fall back to built-in defaults.
type SectionLayout struct {
	ID            int64     `json:"id"`
	SectionName   string    `json:"section_name"`
	Arrangement   string    `json:"arrangement"`
	Orientation   string    `json:"orientation"`
	Spacing       int64     `json:"spacing"`
	ShowImage     bool      `json:"show_image"`
	ImagePosition string    `json:"image_position"`
	ImageSize     string    `json:"image_size"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks that every enum field holds a known value. Invalid
// values are rejected at the boundary rather than coerced.
func (l *SectionLayout) Validate() error {
	switch l.Arrangement {
	case ArrangementGrid2, ArrangementGrid3, ArrangementGrid4, ArrangementList, ArrangementMasonry:
	default:
		return fmt.Errorf("invalid arrangement %q", l.Arrangement)
	}
	switch l.Orientation {
	case OrientationVertical, OrientationHorizontal:
	default:
		return fmt.Errorf("invalid orientation %q", l.Orientation)
	}
	switch l.Spacing {
	case SpacingTight, SpacingNormal, SpacingRelaxed, SpacingLoose:
	default:
		return fmt.Errorf("invalid spacing %d", l.Spacing)
	}
	switch l.ImagePosition {
	case ImagePositionTop, ImagePositionLeft, ImagePositionRight, ImagePositionBackground:
	default:
		return fmt.Errorf("invalid image position %q", l.ImagePosition)
	}
	switch l.ImageSize {
	case ImageSizeSmall, ImageSizeMedium, ImageSizeLarge, ImageSizeFull:
	default:
		return fmt.Errorf("invalid image size %q", l.ImageSize)
	}
	return nil
}

// DefaultLayout returns the built-in layout for a section. Most
// sections open as a two-column grid; publications read better as a
// plain list.
func DefaultLayout(section string) SectionLayout {
	l := SectionLayout{
		SectionName:   section,
		Arrangement:   ArrangementGrid2,
		Orientation:   OrientationVertical,
		Spacing:       SpacingRelaxed,
		ShowImage:     true,
		ImagePosition: ImagePositionTop,
		ImageSize:     ImageSizeMedium,
	}
	switch section {
	case SectionPublications:
		l.Arrangement = ArrangementList
		l.ShowImage = false
	case SectionEndorsements, SectionPress:
		l.ShowImage = false
	}
	return l
}

// Card style enum values.
const (
	RadiusNone   = "none"
	RadiusMedium = "md"
	RadiusLarge  = "lg"
	RadiusXL     = "xl"

	ShadowNone   = "none"
	ShadowSmall  = "sm"
	ShadowMedium = "md"
	ShadowLarge  = "lg"

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	TextSizeSmall  = "sm"
	TextSizeMedium = "md"
	TextSizeLarge  = "lg"
	TextSizeXL     = "xl"
)

// CardStyle controls the cosmetic appearance of cards within a
// section: corner radius, padding unit, shadow depth, text alignment
// and type scale. It is orthogonal to SectionLayout.
type CardStyle struct {
	BorderRadius string `json:"border_radius"`
	Padding      int64  `json:"padding"`
	Shadow       string `json:"shadow"`
	TextAlign    string `json:"text_align"`
	TitleSize    string `json:"title_size"`
	DescSize     string `json:"desc_size"`
}

// Validate checks that every card style field holds a known value.
func (c *CardStyle) Validate() error {
	switch c.BorderRadius {
	case RadiusNone, RadiusMedium, RadiusLarge, RadiusXL:
	default:
		return fmt.Errorf("invalid border radius %q", c.BorderRadius)
	}
	switch c.Padding {
	case 2, 4, 6, 8:
	default:
		return fmt.Errorf("invalid padding %d", c.Padding)
	}
	switch c.Shadow {
	case ShadowNone, ShadowSmall, ShadowMedium, ShadowLarge:
	default:
		return fmt.Errorf("invalid shadow %q", c.Shadow)
	}
	switch c.TextAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("invalid text align %q", c.TextAlign)
	}
	switch c.TitleSize {
	case TextSizeSmall, TextSizeMedium, TextSizeLarge, TextSizeXL:
	default:
		return fmt.Errorf("invalid title size %q", c.TitleSize)
	}
	switch c.DescSize {
	case TextSizeSmall, TextSizeMedium, TextSizeLarge, TextSizeXL:
	default:
		return fmt.Errorf("invalid description size %q", c.DescSize)
	}
	return nil
}

// DefaultCardStyle returns the built-in card appearance.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		BorderRadius: RadiusXL,
		Padding:      6,
		Shadow:       ShadowLarge,
		TextAlign:    AlignLeft,
		TitleSize:    TextSizeLarge,
		DescSize:     TextSizeSmall,
	}
}
