package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/folio-go/internal/cache"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/service"
)

func newLayoutsHandler(t *testing.T, db *sql.DB, sm *scs.SessionManager) *LayoutsHandler {
	t.Helper()

	layouts := service.NewLayoutService(db)
	if err := layouts.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	snapshot := service.NewSnapshotService(
		service.NewContentService(db),
		service.NewSingletonService(db),
		layouts,
		cache.NewMemory(time.Minute),
		time.Minute,
	)
	return NewLayoutsHandler(db, testRealRenderer(t, sm), layouts, snapshot)
}

func TestLayoutsPagePreviewsSectionContent(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newLayoutsHandler(t, db, sm)

	report := service.NewContentService(db).SaveProjects(context.Background(),
		[]model.Project{{Title: "OncoSense"}})
	if !report.OK() {
		t.Fatalf("SaveProjects: %v", report.FirstErr())
	}

	r := httptest.NewRequest(http.MethodGet, "/admin/layouts", nil)
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Index(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "OncoSense") {
		t.Errorf("expected saved project in the preview, got %q", body)
	}
	// Sections without content preview their empty state.
	if !strings.Contains(body, "Nothing here yet") {
		t.Errorf("expected empty-state placeholder for unfilled sections")
	}
}

func TestLayoutsSaveShowsUpInPreview(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newLayoutsHandler(t, db, sm)

	report := service.NewContentService(db).SaveProjects(context.Background(),
		[]model.Project{{Title: "OncoSense"}})
	if !report.OK() {
		t.Fatalf("SaveProjects: %v", report.FirstErr())
	}

	form := url.Values{
		"arrangement":    {"masonry"},
		"orientation":    {"vertical"},
		"spacing":        {"8"},
		"show_image":     {"on"},
		"image_position": {"top"},
		"image_size":     {"md"},
		"border_radius":  {"xl"},
		"padding":        {"6"},
		"shadow":         {"lg"},
		"text_align":     {"left"},
		"title_size":     {"lg"},
		"desc_size":      {"sm"},
	}
	r := httptest.NewRequest(http.MethodPost, "/admin/layouts/projects", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithURLParams(r, map[string]string{"section": "projects"})
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Save(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/admin/layouts", nil)
	r = requestWithSession(t, sm, r)
	w = httptest.NewRecorder()
	h.Index(w, r)

	if !strings.Contains(w.Body.String(), "columns-2 md:columns-3") {
		t.Errorf("expected masonry container in the refreshed preview")
	}
}

func TestLayoutsSaveInvalidStyleWritesNothing(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newLayoutsHandler(t, db, sm)

	form := url.Values{
		"arrangement":    {"masonry"},
		"orientation":    {"vertical"},
		"spacing":        {"4"},
		"image_position": {"top"},
		"image_size":     {"md"},
		"border_radius":  {"BOGUS"},
		"padding":        {"4"},
		"shadow":         {"sm"},
		"text_align":     {"left"},
		"title_size":     {"lg"},
		"desc_size":      {"sm"},
	}
	r := httptest.NewRequest(http.MethodPost, "/admin/layouts/projects", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithURLParams(r, map[string]string{"section": "projects"})
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Save(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	layouts := service.NewLayoutService(db)
	if err := layouts.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got := layouts.GetLayout("projects").Arrangement; got != model.ArrangementGrid2 {
		t.Errorf("layout committed despite rejected style: arrangement %q", got)
	}
}
