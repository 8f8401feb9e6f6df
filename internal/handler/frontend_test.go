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

func newFrontendHandler(t *testing.T, db *sql.DB, sm *scs.SessionManager) *FrontendHandler {
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
	return NewFrontendHandler(db, testRenderer(t, sm), snapshot, "https://example.com", false)
}

func TestHomeRenders(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newFrontendHandler(t, db, sm)

	if err := service.NewSingletonService(db).SaveHero(context.Background(), model.HeroContent{
		ID:   model.SingletonID,
		Name: "Jane Doe",
	}); err != nil {
		t.Fatalf("SaveHero: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Home(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Jane Doe") {
		t.Errorf("expected hero name in page title, got %q", w.Body.String())
	}
}

func TestSubscribeEndpoint(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newFrontendHandler(t, db, sm)

	form := url.Values{"email": {"visitor@example.com"}}
	r := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Subscribe(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	subs, err := service.NewSubscriberService(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 1 || subs[0].Email != "visitor@example.com" {
		t.Fatalf("expected one subscriber, got %+v", subs)
	}
	if subs[0].Source != model.SubscriberSourceWebsite {
		t.Errorf("expected website source, got %q", subs[0].Source)
	}
}

func TestSubscribeDuplicateLooksLikeSuccess(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newFrontendHandler(t, db, sm)

	do := func() *httptest.ResponseRecorder {
		form := url.Values{"email": {"repeat@example.com"}}
		r := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r = requestWithSession(t, sm, r)
		w := httptest.NewRecorder()
		h.Subscribe(w, r)
		return w
	}

	first := do()
	second := do()
	if first.Code != second.Code {
		t.Errorf("duplicate subscribe should mirror success: %d vs %d", first.Code, second.Code)
	}
	if first.Header().Get("Location") != second.Header().Get("Location") {
		t.Errorf("duplicate subscribe redirect differs")
	}
}

func TestSitemapAndRobots(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newFrontendHandler(t, db, sm)

	r := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	h.Sitemap(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("sitemap: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<loc>https://example.com</loc>") {
		t.Errorf("sitemap missing homepage: %s", w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w = httptest.NewRecorder()
	h.Robots(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("robots: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Disallow: /admin") {
		t.Errorf("robots.txt should block the admin area: %s", w.Body.String())
	}
}

func TestSecurityTxtWithoutContactIs404(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := newFrontendHandler(t, db, sm)

	r := httptest.NewRequest(http.MethodGet, "/.well-known/security.txt", nil)
	w := httptest.NewRecorder()
	h.SecurityTxt(w, r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without contact email, got %d", w.Code)
	}
}

func TestSecurityTxtUsesFooterContact(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)

	if err := service.NewSingletonService(db).SaveFooter(context.Background(), model.FooterContent{
		ID:           model.SingletonID,
		ContactEmail: "hello@example.com",
	}); err != nil {
		t.Fatalf("SaveFooter: %v", err)
	}

	h := newFrontendHandler(t, db, sm)
	r := httptest.NewRequest(http.MethodGet, "/.well-known/security.txt", nil)
	w := httptest.NewRecorder()
	h.SecurityTxt(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "mailto:hello@example.com") {
		t.Errorf("security.txt missing contact: %s", w.Body.String())
	}
}

func TestBuildSectionsUsesSnapshotLayouts(t *testing.T) {
	snap := service.Snapshot{
		Projects: []model.Project{
			{ID: 1, Title: "First", OrderIndex: 0},
			{ID: 2, Title: "Second", OrderIndex: 1},
		},
		NewsletterIssues: []model.NewsletterIssue{
			{ID: 3, Title: "Current issue"},
			{ID: 4, Title: "Old issue"},
		},
		Layouts: map[string]model.SectionLayout{
			model.SectionProjects: {
				SectionName:   model.SectionProjects,
				Arrangement:   model.ArrangementGrid3,
				Orientation:   model.OrientationVertical,
				Spacing:       model.SpacingNormal,
				ShowImage:     true,
				ImagePosition: model.ImagePositionTop,
				ImageSize:     model.ImageSizeMedium,
			},
		},
		CardStyles: map[string]model.CardStyle{},
	}

	views := buildSections(snap)

	projects := views[model.SectionProjects]
	if len(projects.Cards) != 2 {
		t.Fatalf("expected 2 project cards, got %d", len(projects.Cards))
	}
	if !strings.Contains(projects.ContainerClass, "grid-cols-3") {
		t.Errorf("expected three-column container, got %q", projects.ContainerClass)
	}

	newsletter := views[model.SectionNewsletterIssues]
	if newsletter.Current == nil || newsletter.Current.Title != "Current issue" {
		t.Fatalf("expected first issue in current slot, got %+v", newsletter.Current)
	}
	if len(newsletter.Past) != 1 || newsletter.Past[0].Title != "Old issue" {
		t.Errorf("expected one past issue, got %+v", newsletter.Past)
	}
}
