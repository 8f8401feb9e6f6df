package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	// Create temp file for test database
	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	// Open database
	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	// Run migrations
	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	// Return cleanup function
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Role:         "admin",
		Name:         "Test User",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "test@example.com")
	}

	got, err := q.GetUserByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %d, want %d", got.ID, user.ID)
	}
	if got.PasswordHash != "hashed-password" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "hashed-password")
	}
}

func TestProjectCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	id, err := q.CreateProject(ctx, ProjectParams{
		Title:      "Solar Tracker",
		Subtitle:   "IoT platform",
		Tags:       []string{"go", "iot"},
		Awards:     []string{"Best Demo"},
		Status:     "active",
		OrderIndex: 0,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if id == 0 {
		t.Fatal("CreateProject returned zero ID")
	}

	items, err := q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Title != "Solar Tracker" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Solar Tracker")
	}
	if len(items[0].Tags) != 2 || items[0].Tags[0] != "go" {
		t.Errorf("Tags = %v, want [go iot]", items[0].Tags)
	}

	if err := q.UpdateProject(ctx, id, ProjectParams{
		Title:      "Solar Tracker v2",
		Tags:       []string{"go"},
		Status:     "completed",
		OrderIndex: 3,
	}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	items, err = q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects after update: %v", err)
	}
	if items[0].Title != "Solar Tracker v2" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Solar Tracker v2")
	}
	if items[0].OrderIndex != 3 {
		t.Errorf("OrderIndex = %d, want 3", items[0].OrderIndex)
	}

	if err := q.DeleteProject(ctx, id); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	items, err = q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects after delete: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestListProjectsOrdering(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for i, title := range []string{"third", "first", "second"} {
		order := []int64{2, 0, 1}[i]
		if _, err := q.CreateProject(ctx, ProjectParams{Title: title, OrderIndex: order}); err != nil {
			t.Fatalf("CreateProject(%s): %v", title, err)
		}
	}

	items, err := q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if items[i].Title != w {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, w)
		}
	}
}

func TestSectionLayoutUpsert(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	layouts, err := q.ListSectionLayouts(ctx)
	if err != nil {
		t.Fatalf("ListSectionLayouts: %v", err)
	}
	if len(layouts) != 0 {
		t.Fatalf("len(layouts) = %d, want 0", len(layouts))
	}

	l := layoutFixture("projects")
	if err := q.UpsertSectionLayout(ctx, l); err != nil {
		t.Fatalf("UpsertSectionLayout: %v", err)
	}

	// Second upsert for the same section must replace, not duplicate
	l.Arrangement = "masonry"
	if err := q.UpsertSectionLayout(ctx, l); err != nil {
		t.Fatalf("UpsertSectionLayout update: %v", err)
	}

	layouts, err = q.ListSectionLayouts(ctx)
	if err != nil {
		t.Fatalf("ListSectionLayouts: %v", err)
	}
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}
	if got := layouts["projects"].Arrangement; got != "masonry" {
		t.Errorf("Arrangement = %q, want %q", got, "masonry")
	}
}

func TestHeroContentUpsert(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	_, err := q.GetHeroContent(ctx)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("GetHeroContent on empty table: err = %v, want sql.ErrNoRows", err)
	}

	h := heroFixture("Jane Doe")
	if err := q.UpsertHeroContent(ctx, h); err != nil {
		t.Fatalf("UpsertHeroContent: %v", err)
	}
	h.Tagline = "builds things"
	if err := q.UpsertHeroContent(ctx, h); err != nil {
		t.Fatalf("UpsertHeroContent update: %v", err)
	}

	got, err := q.GetHeroContent(ctx)
	if err != nil {
		t.Fatalf("GetHeroContent: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", got.Name, "Jane Doe")
	}
	if got.Tagline != "builds things" {
		t.Errorf("Tagline = %q, want %q", got.Tagline, "builds things")
	}
}

func TestCreateSubscriberDuplicate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	_, err := q.CreateSubscriber(ctx, CreateSubscriberParams{
		Email:  "reader@example.com",
		Source: "website",
	})
	if err != nil {
		t.Fatalf("CreateSubscriber: %v", err)
	}

	_, err = q.CreateSubscriber(ctx, CreateSubscriberParams{
		Email:  "reader@example.com",
		Source: "website",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate insert err = %v, want ErrDuplicate", err)
	}

	n, err := q.CountActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("CountActiveSubscribers: %v", err)
	}
	if n != 1 {
		t.Errorf("active subscribers = %d, want 1", n)
	}
}

func TestUpdateSubscriberDeactivate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	s, err := q.CreateSubscriber(ctx, CreateSubscriberParams{
		Email:  "reader@example.com",
		Source: "manual",
	})
	if err != nil {
		t.Fatalf("CreateSubscriber: %v", err)
	}

	if err := q.UpdateSubscriber(ctx, s.ID, UpdateSubscriberParams{IsActive: false}); err != nil {
		t.Fatalf("UpdateSubscriber: %v", err)
	}

	got, err := q.GetSubscriberByEmail(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("GetSubscriberByEmail: %v", err)
	}
	if got.IsActive {
		t.Error("subscriber still active after deactivation")
	}
	if !got.UnsubscribedAt.Valid {
		t.Error("UnsubscribedAt not recorded")
	}

	active, err := q.ListActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("ListActiveSubscribers: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("len(active) = %d, want 0", len(active))
	}
}

func TestSeedIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	q := New(db)
	n, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 1 {
		t.Errorf("users = %d, want 1", n)
	}
}
