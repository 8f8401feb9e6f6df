package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/service"
)

func TestSubscribersCreateAndExport(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewSubscribersHandler(db, testRenderer(t, sm))

	form := url.Values{
		"email": {"Reader@Example.com"},
		"name":  {"Reader"},
		"notes": {"met at conference"},
	}
	r := httptest.NewRequest(http.MethodPost, "/admin/subscribers", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/admin/subscribers/export", nil)
	w = httptest.NewRecorder()
	h.Export(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected CSV content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}
	body := w.Body.String()
	if !strings.Contains(body, "reader@example.com") {
		t.Errorf("expected normalized email in export, got %q", body)
	}
}

func TestSubscribersCreateRejectsInvalidEmail(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewSubscribersHandler(db, testRenderer(t, sm))

	form := url.Values{"email": {"not-an-email"}}
	r := httptest.NewRequest(http.MethodPost, "/admin/subscribers", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	subs, err := service.NewSubscriberService(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("expected no subscribers after invalid email, got %d", len(subs))
	}
}

func TestSubscribersDelete(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewSubscribersHandler(db, testRenderer(t, sm))
	svc := service.NewSubscriberService(db)

	sub, err := svc.Subscribe(context.Background(), "gone@example.com", model.SubscriberSourceManual)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	id := strconv.FormatInt(sub.ID, 10)
	r := httptest.NewRequest(http.MethodPost, "/admin/subscribers/"+id, nil)
	r = requestWithSession(t, sm, r)
	r = requestWithURLParams(r, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.Delete(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	subs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, s := range subs {
		if s.ID == sub.ID {
			t.Error("expected subscriber to be deleted")
		}
	}
}
