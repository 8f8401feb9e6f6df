package api

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/cache"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
)

// testHandler creates an API handler over a temporary database.
func testHandler(t *testing.T) *Handler {
	t.Helper()

	f, err := os.CreateTemp("", "folio-api-test-*.db")
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

	return newTestHandler(t, db)
}

func newTestHandler(t *testing.T, db *sql.DB) *Handler {
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
	return NewHandler(db, layouts, snapshot)
}

// withURLParams adds chi URL parameters to a request.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
