package repository

import (
	"errors"
	"fmt"
	"testing"
)

func TestListPostsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	store := NewNewsStore(db.DB)

	for i := 1; i <= 3; i++ {
		if _, err := store.CreatePost(fmt.Sprintf("post %d", i), "content", "team", ""); err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}
	}

	posts, err := store.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("ListPosts() returned %d posts, want 3", len(posts))
	}
	if posts[0].Title != "post 3" || posts[2].Title != "post 1" {
		t.Errorf("posts not newest first: %q, %q, %q", posts[0].Title, posts[1].Title, posts[2].Title)
	}
}

func TestCreatePostRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	store := NewNewsStore(db.DB)

	_, err := store.CreatePost("  ", "content", "team", "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("CreatePost(blank title) error = %v, want ValidationError", err)
	}
}

func TestDeletePostRemovesComments(t *testing.T) {
	db := newTestDB(t)
	news := NewNewsStore(db.DB)
	comments := NewCommentStore(db.DB)
	users := NewUserStore(db.DB)

	userID, err := users.Register("commenter", "c@velvetdream.example", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	postID, err := news.CreatePost("post", "content", "team", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if _, err := comments.CreateComment(postID, userID, "commenter", "hello"); err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	if err := news.DeletePost(postID); err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}

	remaining, err := comments.ListComments(postID)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("comments survive post deletion: %+v", remaining)
	}
}

func TestCommentsScopedToPost(t *testing.T) {
	db := newTestDB(t)
	news := NewNewsStore(db.DB)
	comments := NewCommentStore(db.DB)
	users := NewUserStore(db.DB)

	userID, err := users.Register("commenter", "c@velvetdream.example", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	first, err := news.CreatePost("first", "", "team", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	second, err := news.CreatePost("second", "", "team", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if _, err := comments.CreateComment(first, userID, "commenter", "on first"); err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	got, err := comments.ListComments(second)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("comments leaked across posts: %+v", got)
	}
}

func TestRecentMessagesCappedAtTen(t *testing.T) {
	db := newTestDB(t)
	store := NewContactStore(db.DB)

	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("sender %d", i)
		if _, err := store.CreateMessage(name, "s@velvetdream.example", "hello"); err != nil {
			t.Fatalf("CreateMessage() error = %v", err)
		}
	}

	messages, err := store.ListRecentMessages()
	if err != nil {
		t.Fatalf("ListRecentMessages() error = %v", err)
	}
	if len(messages) != 10 {
		t.Fatalf("ListRecentMessages() returned %d messages, want 10", len(messages))
	}
	if messages[0].Name != "sender 12" {
		t.Errorf("newest message first = %q, want %q", messages[0].Name, "sender 12")
	}
}

func TestContactMessageRequiresAllFields(t *testing.T) {
	db := newTestDB(t)
	store := NewContactStore(db.DB)

	cases := []struct{ name, email, message string }{
		{"", "a@b.c", "hi"},
		{"a", "", "hi"},
		{"a", "a@b.c", ""},
	}
	for _, tc := range cases {
		_, err := store.CreateMessage(tc.name, tc.email, tc.message)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("CreateMessage(%q, %q, %q) error = %v, want ValidationError", tc.name, tc.email, tc.message, err)
		}
	}
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	// Force the clear to fail partway through the unit of work
	if err := db.DB.Exec("DROP TABLE company_posts").Error; err != nil {
		t.Fatalf("drop posts table: %v", err)
	}
	if err := Seed(db); err == nil {
		t.Fatal("Seed() succeeded with a missing table, want error")
	}

	// Restore the schema; the previously seeded catalog must be intact
	if err := db.migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	projects, err := NewCatalogStore(db.DB).ListProjects()
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 3 {
		t.Errorf("projects after failed reseed = %d, want 3", len(projects))
	}
}

func TestSeedIsRepeatable(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("Seed() second run error = %v", err)
	}

	catalog := NewCatalogStore(db.DB)
	projects, err := catalog.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 3 {
		t.Errorf("seeded projects = %d, want 3", len(projects))
	}

	empty, err := Empty(db)
	if err != nil {
		t.Fatalf("Empty() error = %v", err)
	}
	if empty {
		t.Error("Empty() = true after seeding")
	}
}
