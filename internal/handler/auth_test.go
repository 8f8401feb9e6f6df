package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/folio-go/internal/middleware"
)

func newAuthHandler(t *testing.T) (*AuthHandler, func(method, target string, form url.Values) *httptest.ResponseRecorder) {
	t.Helper()

	db := testDB(t)
	sm := testSessionManager(t)
	renderer := testRenderer(t, sm)
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit: 1000, // effectively unlimited for tests
		IPBurst:     1000,
	})
	h := NewAuthHandler(db, renderer, sm, lp)
	createTestUser(t, db, "admin@example.com", "correct-horse-battery")

	do := func(method, target string, form url.Values) *httptest.ResponseRecorder {
		var r *http.Request
		if form != nil {
			r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		} else {
			r = httptest.NewRequest(method, target, nil)
		}
		r = requestWithSession(t, sm, r)
		w := httptest.NewRecorder()
		switch {
		case method == http.MethodGet:
			h.LoginForm(w, r)
		default:
			h.Login(w, r)
		}
		return w
	}
	return h, do
}

func TestLoginFormRenders(t *testing.T) {
	_, do := newAuthHandler(t)

	w := do(http.MethodGet, "/admin/login", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sign In") {
		t.Errorf("expected login page title, got %q", w.Body.String())
	}
}

func TestLoginSuccessRedirectsToDashboard(t *testing.T) {
	_, do := newAuthHandler(t)

	w := do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"correct-horse-battery"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != redirectAdmin {
		t.Errorf("expected redirect to %s, got %s", redirectAdmin, loc)
	}
}

func TestLoginWrongPasswordRedirectsBack(t *testing.T) {
	_, do := newAuthHandler(t)

	w := do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != redirectLogin {
		t.Errorf("expected redirect to %s, got %s", redirectLogin, loc)
	}
}

func TestLoginUnknownEmailDoesNotRevealAccount(t *testing.T) {
	_, do := newAuthHandler(t)

	known := do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong"},
	})
	unknown := do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"wrong"},
	})

	if known.Code != unknown.Code {
		t.Errorf("status differs for known vs unknown email: %d vs %d", known.Code, unknown.Code)
	}
	if known.Header().Get("Location") != unknown.Header().Get("Location") {
		t.Errorf("redirect differs for known vs unknown email")
	}
}

func TestLoginMissingFieldsRejected(t *testing.T) {
	_, do := newAuthHandler(t)

	w := do(http.MethodPost, "/admin/login", url.Values{"email": {"admin@example.com"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != redirectLogin {
		t.Errorf("expected redirect to %s, got %s", redirectLogin, loc)
	}
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	renderer := testRenderer(t, sm)
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit:       1000,
		IPBurst:           1000,
		MaxFailedAttempts: 2,
	})
	h := NewAuthHandler(db, renderer, sm, lp)
	createTestUser(t, db, "admin@example.com", "correct-horse-battery")

	form := url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong"},
	}
	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r = requestWithSession(t, sm, r)
		h.Login(httptest.NewRecorder(), r)
	}

	if locked, _ := lp.IsAccountLocked("admin@example.com"); !locked {
		t.Fatal("expected account to be locked after repeated failures")
	}

	// Even the correct password is refused while locked.
	form.Set("password", "correct-horse-battery")
	r := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = requestWithSession(t, sm, r)
	w := httptest.NewRecorder()
	h.Login(w, r)

	if loc := w.Header().Get("Location"); loc != redirectLogin {
		t.Errorf("expected locked account redirected to login, got %s", loc)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"30s", "30 seconds"},
		{"1s", "1 second"},
		{"60s", "1 minute"},
		{"15m", "15 minutes"},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.in)
		if err != nil {
			t.Fatalf("parsing %q: %v", tt.in, err)
		}
		if got := formatDuration(d); got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
