// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"

	"github.com/olegiv/folio-go/internal/model"
)

// Card is the content-agnostic input to the section renderer. Each
// entity variant maps into a Card via one of the From* constructors;
// the arrangement logic never inspects the variant itself.
type Card struct {
	Title       string
	Subtitle    string
	Description string
	ImageURL    string
	Link        string
	Meta        string // date, source, platform or month line
	Tags        []string
	Badges      []string
	Accent      string // color token for the variant's accent
	Initial     string // avatar initial for quote cards
	Featured    bool
	Video       bool
}

// CardView is a Card resolved against a layout: CSS classes are
// computed, the image slot is either present or entirely absent, and
// the whole card is marked clickable when a link exists.
type CardView struct {
	Card
	HasImage     bool   // render an image slot at all
	Background   bool   // image is a full-bleed backdrop under the text
	Clickable    bool   // render as an anchor instead of a plain block
	CardClass    string // flow direction plus cosmetic card classes
	ImageClass   string // sizing for the image slot
	OverlayClass string // gradient overlay, set only for background images
	TitleClass   string
	DescClass    string
}

// SectionView is the renderer output for one section: a container
// class and the resolved cards. For sections with a current/past
// convention, Current holds the first card and Past the rest.
type SectionView struct {
	Section        string
	Layout         model.SectionLayout
	Style          model.CardStyle
	ContainerClass string
	Cards          []CardView
	Empty          bool
	Current        *CardView
	Past           []CardView
}

// positionalSections render their first entity in a distinguished
// "current" slot. This is derived from array order, not a stored flag.
var positionalSections = map[string]bool{
	model.SectionNewsletterIssues: true,
	model.SectionCommunityEvents:  true,
}

// IsPositionalSection reports whether a section uses the current/past
// display convention.
func IsPositionalSection(section string) bool {
	return positionalSections[section]
}

// BuildSection resolves entities of one variant against a layout and
// card style. It is a pure function: same inputs, same output, no
// stored state, usable identically for the admin preview and the
// public page.
func BuildSection(section string, layout model.SectionLayout, style model.CardStyle, cards []Card) SectionView {
	view := SectionView{
		Section:        section,
		Layout:         layout,
		Style:          style,
		ContainerClass: containerClass(layout),
		Empty:          len(cards) == 0,
	}

	for _, c := range cards {
		view.Cards = append(view.Cards, buildCard(c, layout, style))
	}

	if IsPositionalSection(section) && len(view.Cards) > 0 {
		view.Current = &view.Cards[0]
		view.Past = view.Cards[1:]
	}

	return view
}

// containerClass maps an arrangement and spacing to container classes.
// List arrangements stack vertically and use the vertical gap only.
func containerClass(l model.SectionLayout) string {
	gap := gapClass(l.Spacing)
	switch l.Arrangement {
	case model.ArrangementList:
		return "space-y-" + fmt.Sprint(l.Spacing)
	case model.ArrangementGrid3:
		return "grid md:grid-cols-3 " + gap
	case model.ArrangementGrid4:
		return "grid md:grid-cols-4 " + gap
	case model.ArrangementMasonry:
		return "columns-2 md:columns-3 " + gap
	default:
		return "grid md:grid-cols-2 " + gap
	}
}

func gapClass(spacing int64) string {
	switch spacing {
	case model.SpacingTight:
		return "gap-2"
	case model.SpacingNormal:
		return "gap-4"
	case model.SpacingLoose:
		return "gap-8"
	default:
		return "gap-6"
	}
}

// buildCard resolves one card against the layout. The image slot is
// omitted entirely when images are disabled or the entity has none;
// the card compacts around its text with no placeholder.
func buildCard(c Card, l model.SectionLayout, style model.CardStyle) CardView {
	v := CardView{
		Card:       c,
		Clickable:  c.Link != "",
		TitleClass: "text-" + style.TitleSize,
		DescClass:  "text-" + style.DescSize,
	}

	v.CardClass = cardFlowClass(l) + " " + cardStyleClass(style)

	if !l.ShowImage || c.ImageURL == "" {
		return v
	}

	v.HasImage = true
	switch l.ImagePosition {
	case model.ImagePositionBackground:
		v.Background = true
		v.ImageClass = "absolute inset-0 w-full h-full object-cover"
		// Gradient keeps overlaid text legible over any image
		v.OverlayClass = "absolute inset-0 bg-gradient-to-t from-slate-900/80 to-slate-900/20"
	case model.ImagePositionLeft, model.ImagePositionRight:
		if l.Orientation == model.OrientationHorizontal {
			v.ImageClass = horizontalImageClass(l.ImageSize) + " object-cover"
		} else {
			v.ImageClass = "w-full " + verticalImageClass(l.ImageSize) + " object-cover"
		}
	default: // top
		v.ImageClass = "w-full " + verticalImageClass(l.ImageSize) + " object-cover"
	}

	return v
}

// cardFlowClass picks the internal flow direction. Horizontal cards
// mirror when the image sits on the right; an image position of top
// forces vertical flow regardless of orientation.
func cardFlowClass(l model.SectionLayout) string {
	if !l.ShowImage {
		return "flex flex-col"
	}
	switch l.ImagePosition {
	case model.ImagePositionBackground:
		return "relative overflow-hidden flex flex-col justify-end"
	case model.ImagePositionTop:
		return "flex flex-col"
	}
	if l.Orientation == model.OrientationHorizontal {
		if l.ImagePosition == model.ImagePositionRight {
			return "flex flex-row-reverse"
		}
		return "flex flex-row"
	}
	return "flex flex-col"
}

// cardStyleClass maps the cosmetic card style to classes.
func cardStyleClass(s model.CardStyle) string {
	cls := "p-" + fmt.Sprint(s.Padding) + " text-" + s.TextAlign
	if s.BorderRadius != model.RadiusNone {
		cls += " rounded-" + s.BorderRadius
	}
	if s.Shadow != model.ShadowNone {
		cls += " shadow-" + s.Shadow
	}
	return cls
}

// horizontalImageClass maps image size to a width share of the card.
func horizontalImageClass(size string) string {
	switch size {
	case model.ImageSizeSmall:
		return "w-1/4"
	case model.ImageSizeLarge:
		return "w-1/2"
	case model.ImageSizeFull:
		return "w-full"
	default:
		return "w-5/12"
	}
}

// verticalImageClass maps image size to a fixed height for stacked cards.
func verticalImageClass(size string) string {
	switch size {
	case model.ImageSizeSmall:
		return "h-32"
	case model.ImageSizeLarge:
		return "h-64"
	case model.ImageSizeFull:
		return "h-96"
	default:
		return "h-48"
	}
}

// FromProject maps a project to a renderer card.
func FromProject(p model.Project) Card {
	return Card{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Link:        p.Link,
		Meta:        p.Funding,
		Tags:        p.Tags,
		Badges:      p.Awards,
		Accent:      p.Color,
	}
}

// FromLeadership maps a leadership entry to a renderer card.
func FromLeadership(l model.Leadership) Card {
	return Card{
		Title:       l.Title,
		Subtitle:    l.Organization,
		Description: l.Role,
		Link:        l.Link,
		Meta:        l.Date,
		Accent:      l.Color,
	}
}

// FromAward maps an award to a renderer card.
func FromAward(a model.Award) Card {
	return Card{
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		Featured:    a.IsFeatured,
	}
}

// FromSpecialAward maps a special award to a renderer card.
func FromSpecialAward(a model.SpecialAward) Card {
	return Card{
		Title: a.Name,
		Link:  a.Link,
	}
}

// FromPress maps a press item to a renderer card.
func FromPress(p model.Press) Card {
	return Card{
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Meta:        p.Source,
		Accent:      p.Color,
		Featured:    p.IsFeatured,
		Video:       p.IsVideo,
	}
}

// FromPublication maps a publication to a renderer card.
func FromPublication(p model.Publication) Card {
	return Card{
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Meta:        p.Platform,
	}
}

// FromEndorsement maps an endorsement to a renderer card.
func FromEndorsement(e model.Endorsement) Card {
	return Card{
		Title:       e.Name,
		Subtitle:    e.Role,
		Description: e.Quote,
		Link:        e.Link,
		Accent:      e.Color,
		Initial:     e.Initial,
	}
}

// FromNewsletterIssue maps a newsletter issue to a renderer card.
func FromNewsletterIssue(n model.NewsletterIssue) Card {
	return Card{
		Title: n.Title,
		Link:  n.Link,
		Meta:  n.Month,
	}
}

// FromCommunityEvent maps a community event to a renderer card.
func FromCommunityEvent(e model.CommunityEvent) Card {
	return Card{
		Title:       e.Title,
		Description: e.Description,
		Link:        e.Link,
		Meta:        e.Month,
	}
}
