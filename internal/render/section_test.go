package render

import (
	"strings"
	"testing"

	"github.com/olegiv/folio-go/internal/model"
)

func testLayout() model.SectionLayout {
	return model.SectionLayout{
		SectionName:   model.SectionProjects,
		Arrangement:   model.ArrangementGrid2,
		Orientation:   model.OrientationVertical,
		Spacing:       model.SpacingRelaxed,
		ShowImage:     true,
		ImagePosition: model.ImagePositionTop,
		ImageSize:     model.ImageSizeMedium,
	}
}

func TestContainerClass(t *testing.T) {
	tests := []struct {
		name        string
		arrangement string
		spacing     int64
		want        string
	}{
		{
			name:        "two column grid",
			arrangement: model.ArrangementGrid2,
			spacing:     model.SpacingRelaxed,
			want:        "grid md:grid-cols-2 gap-6",
		},
		{
			name:        "three column grid",
			arrangement: model.ArrangementGrid3,
			spacing:     model.SpacingRelaxed,
			want:        "grid md:grid-cols-3 gap-6",
		},
		{
			name:        "four column tight",
			arrangement: model.ArrangementGrid4,
			spacing:     model.SpacingTight,
			want:        "grid md:grid-cols-4 gap-2",
		},
		{
			name:        "masonry loose",
			arrangement: model.ArrangementMasonry,
			spacing:     model.SpacingLoose,
			want:        "columns-2 md:columns-3 gap-8",
		},
		{
			name:        "list uses vertical gap only",
			arrangement: model.ArrangementList,
			spacing:     model.SpacingNormal,
			want:        "space-y-4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLayout()
			l.Arrangement = tt.arrangement
			l.Spacing = tt.spacing
			if got := containerClass(l); got != tt.want {
				t.Errorf("containerClass() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSection_EmptyState(t *testing.T) {
	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), nil)

	if !view.Empty {
		t.Error("Empty = false, want true for zero entities")
	}
	if len(view.Cards) != 0 {
		t.Errorf("len(Cards) = %d, want 0", len(view.Cards))
	}
}

func TestBuildSection_ImageHiddenEntirely(t *testing.T) {
	l := testLayout()
	l.ShowImage = false

	// Entity carries an image URL, but the layout disables images:
	// the card must not reserve an image slot at all.
	cards := []Card{{Title: "With image", ImageURL: "/uploads/photo.jpg"}}
	view := BuildSection(model.SectionProjects, l, model.DefaultCardStyle(), cards)

	if view.Cards[0].HasImage {
		t.Error("HasImage = true, want false when ShowImage is off")
	}
	if view.Cards[0].ImageClass != "" {
		t.Errorf("ImageClass = %q, want empty", view.Cards[0].ImageClass)
	}
}

func TestBuildSection_NoImageURL(t *testing.T) {
	cards := []Card{{Title: "No image"}}
	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), cards)

	if view.Cards[0].HasImage {
		t.Error("HasImage = true, want false when the entity has no image")
	}
}

func TestBuildSection_BackgroundImageOverlay(t *testing.T) {
	l := testLayout()
	l.ImagePosition = model.ImagePositionBackground

	cards := []Card{{Title: "Backdrop", ImageURL: "/uploads/photo.jpg"}}
	view := BuildSection(model.SectionProjects, l, model.DefaultCardStyle(), cards)

	c := view.Cards[0]
	if !c.Background {
		t.Error("Background = false, want true")
	}
	if c.OverlayClass == "" {
		t.Error("OverlayClass is empty; background images need a contrast overlay")
	}
	if !strings.Contains(c.OverlayClass, "gradient") {
		t.Errorf("OverlayClass = %q, want a gradient", c.OverlayClass)
	}
	if !strings.Contains(c.CardClass, "relative") {
		t.Errorf("CardClass = %q, want relative positioning for backdrop", c.CardClass)
	}
}

func TestBuildSection_HorizontalMirroring(t *testing.T) {
	tests := []struct {
		name     string
		position string
		wantFlow string
	}{
		{"image left", model.ImagePositionLeft, "flex-row"},
		{"image right mirrors", model.ImagePositionRight, "flex-row-reverse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLayout()
			l.Orientation = model.OrientationHorizontal
			l.ImagePosition = tt.position

			cards := []Card{{Title: "Side image", ImageURL: "/uploads/photo.jpg"}}
			view := BuildSection(model.SectionProjects, l, model.DefaultCardStyle(), cards)

			if !strings.Contains(view.Cards[0].CardClass, tt.wantFlow) {
				t.Errorf("CardClass = %q, want %q", view.Cards[0].CardClass, tt.wantFlow)
			}
		})
	}
}

func TestBuildSection_TopPositionForcesVertical(t *testing.T) {
	l := testLayout()
	l.Orientation = model.OrientationHorizontal
	l.ImagePosition = model.ImagePositionTop

	cards := []Card{{Title: "Stacked", ImageURL: "/uploads/photo.jpg"}}
	view := BuildSection(model.SectionProjects, l, model.DefaultCardStyle(), cards)

	if !strings.Contains(view.Cards[0].CardClass, "flex-col") {
		t.Errorf("CardClass = %q, want flex-col for top image position", view.Cards[0].CardClass)
	}
	if strings.Contains(view.Cards[0].CardClass, "flex-row") {
		t.Errorf("CardClass = %q, must not use horizontal flow", view.Cards[0].CardClass)
	}
}

func TestBuildSection_HorizontalImageWidths(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{model.ImageSizeSmall, "w-1/4"},
		{model.ImageSizeMedium, "w-5/12"},
		{model.ImageSizeLarge, "w-1/2"},
		{model.ImageSizeFull, "w-full"},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			l := testLayout()
			l.Orientation = model.OrientationHorizontal
			l.ImagePosition = model.ImagePositionLeft
			l.ImageSize = tt.size

			cards := []Card{{Title: "Sized", ImageURL: "/uploads/photo.jpg"}}
			view := BuildSection(model.SectionProjects, l, model.DefaultCardStyle(), cards)

			if !strings.Contains(view.Cards[0].ImageClass, tt.want) {
				t.Errorf("ImageClass = %q, want %q", view.Cards[0].ImageClass, tt.want)
			}
		})
	}
}

func TestBuildSection_Clickable(t *testing.T) {
	cards := []Card{
		{Title: "Linked", Link: "https://example.com"},
		{Title: "Plain"},
	}
	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), cards)

	if !view.Cards[0].Clickable {
		t.Error("card with link should be clickable")
	}
	if view.Cards[1].Clickable {
		t.Error("card without link should not be clickable")
	}
	// Interactivity must not change card content layout
	if view.Cards[0].CardClass != view.Cards[1].CardClass {
		t.Errorf("CardClass differs by link: %q vs %q", view.Cards[0].CardClass, view.Cards[1].CardClass)
	}
}

func TestBuildSection_PositionalCurrentPast(t *testing.T) {
	cards := []Card{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	view := BuildSection(model.SectionCommunityEvents, testLayout(), model.DefaultCardStyle(), cards)

	if view.Current == nil || view.Current.Title != "A" {
		t.Fatalf("Current = %+v, want card A", view.Current)
	}
	if len(view.Past) != 2 || view.Past[0].Title != "B" || view.Past[1].Title != "C" {
		t.Fatalf("Past = %+v, want [B C]", view.Past)
	}

	// Reordering changes meaning: B becomes current
	reordered := []Card{{Title: "B"}, {Title: "A"}, {Title: "C"}}
	view = BuildSection(model.SectionNewsletterIssues, testLayout(), model.DefaultCardStyle(), reordered)

	if view.Current.Title != "B" {
		t.Errorf("Current.Title = %q, want B after reorder", view.Current.Title)
	}
}

func TestBuildSection_NonPositionalHasNoCurrent(t *testing.T) {
	cards := []Card{{Title: "A"}, {Title: "B"}}
	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), cards)

	if view.Current != nil {
		t.Error("projects section should not have a current slot")
	}
	if len(view.Past) != 0 {
		t.Error("projects section should not have a past slot")
	}
}

func TestCardStyleClass(t *testing.T) {
	got := cardStyleClass(model.DefaultCardStyle())
	for _, want := range []string{"p-6", "text-left", "rounded-xl", "shadow-lg"} {
		if !strings.Contains(got, want) {
			t.Errorf("cardStyleClass() = %q, missing %q", got, want)
		}
	}

	flat := model.CardStyle{
		BorderRadius: model.RadiusNone,
		Padding:      2,
		Shadow:       model.ShadowNone,
		TextAlign:    model.AlignCenter,
		TitleSize:    model.TextSizeMedium,
		DescSize:     model.TextSizeSmall,
	}
	got = cardStyleClass(flat)
	if strings.Contains(got, "rounded") || strings.Contains(got, "shadow") {
		t.Errorf("cardStyleClass() = %q, want no radius or shadow classes", got)
	}
}

func TestFromProject(t *testing.T) {
	p := model.Project{
		Title:    "Solar Tracker",
		Subtitle: "IoT platform",
		ImageURL: "/uploads/solar.jpg",
		Tags:     []string{"go"},
		Awards:   []string{"Best Demo"},
		Link:     "https://example.com",
		Color:    "emerald",
	}
	c := FromProject(p)
	if c.Title != p.Title || c.ImageURL != p.ImageURL || c.Link != p.Link {
		t.Errorf("FromProject() = %+v", c)
	}
	if len(c.Badges) != 1 || c.Badges[0] != "Best Demo" {
		t.Errorf("Badges = %v, want awards mapped to badges", c.Badges)
	}
}

func TestFromEndorsement(t *testing.T) {
	e := model.Endorsement{Name: "Sam", Role: "CTO", Initial: "S", Quote: "Great work"}
	c := FromEndorsement(e)
	if c.Title != "Sam" || c.Initial != "S" || c.Description != "Great work" {
		t.Errorf("FromEndorsement() = %+v", c)
	}
}
