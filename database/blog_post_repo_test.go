package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rpupo63/blog-service-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (*BlogPostRepo, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := New(db).Migrate(); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return NewBlogPostRepo(db), db
}

func seedPost(t *testing.T, repo *BlogPostRepo, title string) *models.BlogPost {
	t.Helper()

	blogPost := &models.BlogPost{
		Title:    title,
		Excerpt:  "An excerpt long enough to pass checks",
		Content:  "Full body text",
		ImageURL: "https://example.com/image.png",
	}
	if err := repo.Add(blogPost); err != nil {
		t.Fatalf("seeding blog post %q: %v", title, err)
	}
	return blogPost
}

func TestFindActiveByID(t *testing.T) {
	repo, _ := newTestRepo(t)

	created := seedPost(t, repo, "A Title Of Sufficient Length")

	found, err := repo.FindActiveByID(created.ID)
	if err != nil {
		t.Fatalf("FindActiveByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if found.Title != created.Title || found.Content != created.Content {
		t.Errorf("loaded post differs: got %+v, want %+v", found, created)
	}

	missing, err := repo.FindActiveByID(created.ID + 100)
	if err != nil {
		t.Fatalf("FindActiveByID for missing id: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}

	if _, err := repo.SoftDelete(created.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	deleted, err := repo.FindActiveByID(created.ID)
	if err != nil {
		t.Fatalf("FindActiveByID for deleted id: %v", err)
	}
	if deleted != nil {
		t.Errorf("soft-deleted post still visible: %+v", deleted)
	}
}

func TestActiveTitleExists(t *testing.T) {
	repo, _ := newTestRepo(t)

	active := seedPost(t, repo, "An Active Post Title Here")
	retired := seedPost(t, repo, "A Retired Post Title Here")
	if _, err := repo.SoftDelete(retired.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"active title", active.Title, true},
		{"soft-deleted title", retired.Title, false},
		{"unknown title", "Never Used Title At All", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ActiveTitleExists(tt.title)
			if err != nil {
				t.Fatalf("ActiveTitleExists(%q): %v", tt.title, err)
			}
			if got != tt.want {
				t.Errorf("ActiveTitleExists(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestFindActivePageOrdering(t *testing.T) {
	repo, db := newTestRepo(t)

	// Three posts created oldest to newest, then one extra sharing the newest
	// timestamp to exercise the id tie-break.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		post := seedPost(t, repo, fmt.Sprintf("Ordering Test Post Number %d", i))
		setCreatedAt(t, db, post.ID, base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, post.ID)
	}
	tied := seedPost(t, repo, "Ordering Test Post Tiebreak")
	setCreatedAt(t, db, tied.ID, base.Add(2*time.Hour))

	page, err := repo.FindActivePage(0, 10)
	if err != nil {
		t.Fatalf("FindActivePage: %v", err)
	}
	// Newest first; the two posts sharing a created_at keep insertion order.
	wantIDs := []int64{ids[2], tied.ID, ids[1], ids[0]}
	if len(page) != len(wantIDs) {
		t.Fatalf("got %d posts, want %d", len(page), len(wantIDs))
	}
	for i, summary := range page {
		if summary.ID != wantIDs[i] {
			t.Errorf("position %d: got id %d, want %d", i, summary.ID, wantIDs[i])
		}
	}
}

func TestFindActivePageWindow(t *testing.T) {
	repo, db := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		post := seedPost(t, repo, fmt.Sprintf("Window Test Post Number %d", i))
		setCreatedAt(t, db, post.ID, base.Add(time.Duration(i)*time.Hour))
	}

	window, err := repo.FindActivePage(2, 2)
	if err != nil {
		t.Fatalf("FindActivePage: %v", err)
	}
	if len(window) != 2 {
		t.Fatalf("got %d posts, want 2", len(window))
	}
	if window[0].Title != "Window Test Post Number 2" || window[1].Title != "Window Test Post Number 1" {
		t.Errorf("unexpected window contents: %q, %q", window[0].Title, window[1].Title)
	}

	empty, err := repo.FindActivePage(10, 2)
	if err != nil {
		t.Fatalf("FindActivePage past the end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty window, got %d posts", len(empty))
	}
}

func TestSoftDelete(t *testing.T) {
	repo, _ := newTestRepo(t)

	post := seedPost(t, repo, "A Post That Will Be Deleted")

	deleted, err := repo.SoftDelete(post.ID)
	if err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if !deleted {
		t.Error("first delete reported no rows affected")
	}

	// The row stays in the table with the flag set.
	var stored models.BlogPost
	if err := repo.db.First(&stored, post.ID).Error; err != nil {
		t.Fatalf("loading deleted row: %v", err)
	}
	if !stored.IsDeleted {
		t.Error("row not flagged deleted")
	}

	again, err := repo.SoftDelete(post.ID)
	if err != nil {
		t.Fatalf("second SoftDelete: %v", err)
	}
	if again {
		t.Error("second delete of the same id reported success")
	}

	never, err := repo.SoftDelete(post.ID + 100)
	if err != nil {
		t.Fatalf("SoftDelete of missing id: %v", err)
	}
	if never {
		t.Error("delete of a missing id reported success")
	}
}

func setCreatedAt(t *testing.T, db *gorm.DB, id int64, createdAt time.Time) {
	t.Helper()
	err := db.Model(&models.BlogPost{}).Where("id = ?", id).Update("created_at", createdAt).Error
	if err != nil {
		t.Fatalf("forcing created_at for id %d: %v", id, err)
	}
}
