package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/folio-go/internal/model"
)

func TestGetLayoutsReturnsDefaults(t *testing.T) {
	h := testHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/admin/api/layouts", nil)
	w := httptest.NewRecorder()
	h.GetLayouts(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data map[string]SectionAppearance `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != len(model.Sections) {
		t.Fatalf("expected %d sections, got %d", len(model.Sections), len(resp.Data))
	}
	if got := resp.Data[model.SectionPublications].Layout.Arrangement; got != model.ArrangementList {
		t.Errorf("expected publications default list arrangement, got %q", got)
	}
}

func TestSaveSectionLayoutRoundTrip(t *testing.T) {
	h := testHandler(t)

	body := `{
		"layout": {
			"section_name": "projects",
			"arrangement": "masonry",
			"orientation": "horizontal",
			"spacing": 8,
			"show_image": true,
			"image_position": "left",
			"image_size": "lg"
		},
		"style": {
			"border_radius": "md",
			"padding": 4,
			"shadow": "sm",
			"text_align": "center",
			"title_size": "xl",
			"desc_size": "md"
		}
	}`
	r := httptest.NewRequest(http.MethodPut, "/admin/api/layouts/projects", strings.NewReader(body))
	r = withURLParams(r, map[string]string{"section": "projects"})
	w := httptest.NewRecorder()
	h.SaveSectionLayout(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, "/admin/api/layouts/projects", nil)
	r = withURLParams(r, map[string]string{"section": "projects"})
	w = httptest.NewRecorder()
	h.GetSectionLayout(w, r)

	var resp struct {
		Data SectionAppearance `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Layout.Arrangement != model.ArrangementMasonry {
		t.Errorf("expected masonry, got %q", resp.Data.Layout.Arrangement)
	}
	if resp.Data.Style.TextAlign != model.AlignCenter {
		t.Errorf("expected centered text, got %q", resp.Data.Style.TextAlign)
	}
}

func TestSaveSectionLayoutRejectsInvalidEnum(t *testing.T) {
	h := testHandler(t)

	body := `{
		"layout": {
			"section_name": "projects",
			"arrangement": "diagonal",
			"orientation": "vertical",
			"spacing": 4,
			"show_image": false,
			"image_position": "top",
			"image_size": "md"
		},
		"style": {
			"border_radius": "md",
			"padding": 4,
			"shadow": "sm",
			"text_align": "left",
			"title_size": "lg",
			"desc_size": "sm"
		}
	}`
	r := httptest.NewRequest(http.MethodPut, "/admin/api/layouts/projects", strings.NewReader(body))
	r = withURLParams(r, map[string]string{"section": "projects"})
	w := httptest.NewRecorder()
	h.SaveSectionLayout(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	// Stored appearance must be untouched.
	r = httptest.NewRequest(http.MethodGet, "/admin/api/layouts/projects", nil)
	r = withURLParams(r, map[string]string{"section": "projects"})
	w = httptest.NewRecorder()
	h.GetSectionLayout(w, r)

	var resp struct {
		Data SectionAppearance `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Layout.Arrangement != model.ArrangementGrid2 {
		t.Errorf("expected default arrangement preserved, got %q", resp.Data.Layout.Arrangement)
	}
}

func TestSaveSectionLayoutInvalidStyleWritesNothing(t *testing.T) {
	h := testHandler(t)

	// The layout half is valid on its own; the style half is not.
	// Neither may be committed.
	body := `{
		"layout": {
			"section_name": "projects",
			"arrangement": "masonry",
			"orientation": "vertical",
			"spacing": 4,
			"show_image": true,
			"image_position": "top",
			"image_size": "md"
		},
		"style": {
			"border_radius": "BOGUS",
			"padding": 4,
			"shadow": "sm",
			"text_align": "left",
			"title_size": "lg",
			"desc_size": "sm"
		}
	}`
	r := httptest.NewRequest(http.MethodPut, "/admin/api/layouts/projects", strings.NewReader(body))
	r = withURLParams(r, map[string]string{"section": "projects"})
	w := httptest.NewRecorder()
	h.SaveSectionLayout(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/admin/api/layouts/projects", nil)
	r = withURLParams(r, map[string]string{"section": "projects"})
	w = httptest.NewRecorder()
	h.GetSectionLayout(w, r)

	var resp struct {
		Data SectionAppearance `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Layout.Arrangement != model.ArrangementGrid2 {
		t.Errorf("layout committed despite rejected style: arrangement %q", resp.Data.Layout.Arrangement)
	}
	if resp.Data.Style.BorderRadius != model.DefaultCardStyle().BorderRadius {
		t.Errorf("style committed despite rejection: border radius %q", resp.Data.Style.BorderRadius)
	}
}

func TestSaveSectionLayoutUnknownSection(t *testing.T) {
	h := testHandler(t)

	r := httptest.NewRequest(http.MethodPut, "/admin/api/layouts/nope", strings.NewReader(`{}`))
	r = withURLParams(r, map[string]string{"section": "nope"})
	w := httptest.NewRecorder()
	h.SaveSectionLayout(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
