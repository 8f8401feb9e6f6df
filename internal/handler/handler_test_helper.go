package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/auth"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/web"
)

// testDB creates a temporary SQLite database with the full schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "folio-handler-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return db
}

// testTemplates is a minimal template set that satisfies the renderer.
var testTemplates = fstest.MapFS{
	"layouts/base.html": &fstest.MapFile{
		Data: []byte(`{{define "base"}}{{.Title}}|{{.Flash}}{{end}}`),
	},
	"auth/login.html": &fstest.MapFile{
		Data: []byte(`{{define "content"}}login{{end}}`),
	},
	"site/index.html": &fstest.MapFile{
		Data: []byte(`{{define "content"}}home{{end}}`),
	},
}

// testRenderer creates a renderer over the minimal test templates.
func testRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()
	r, err := render.New(render.Config{
		TemplatesFS:    testTemplates,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

// testRealRenderer creates a renderer over the embedded production templates.
func testRealRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("getting templates fs: %v", err)
	}
	r, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

// testSessionManager creates an in-memory session manager.
func testSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	sm := scs.New()
	sm.Lifetime = time.Hour
	return sm
}

// createTestUser inserts an admin user with the given password.
func createTestUser(t *testing.T, db *sql.DB, email, password string) model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Name:         "Test Admin",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requestWithSession loads an empty session into a request's context.
func requestWithSession(t *testing.T, sm *scs.SessionManager, r *http.Request) *http.Request {
	t.Helper()
	ctx, err := sm.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	return r.WithContext(ctx)
}
