package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/brookmere/contactsite/internal/services/inbox/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inbox.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("Open() with blank path should error")
	}
}

func TestCreateAndGetSubmission(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	want := storage.Submission{
		ID:         "sub-1",
		Name:       "Ada",
		Email:      "ada@example.org",
		Message:    "hello",
		ReceivedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
	if err := store.CreateSubmission(ctx, want); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	got, err := store.GetSubmission(ctx, "sub-1")
	if err != nil {
		t.Fatalf("GetSubmission() error = %v", err)
	}
	if got != want {
		t.Fatalf("GetSubmission() = %+v, want %+v", got, want)
	}
}

func TestCreateSubmissionRequiresID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	err := store.CreateSubmission(context.Background(), storage.Submission{Name: "Ada"})
	if err == nil {
		t.Fatal("CreateSubmission() without id should error")
	}
}

func TestCreateSubmissionDefaultsReceivedAt(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	if err := store.CreateSubmission(ctx, storage.Submission{ID: "sub-1"}); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}
	got, err := store.GetSubmission(ctx, "sub-1")
	if err != nil {
		t.Fatalf("GetSubmission() error = %v", err)
	}
	if got.ReceivedAt.IsZero() {
		t.Fatal("ReceivedAt not defaulted")
	}
}

func TestGetSubmissionNotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, err := store.GetSubmission(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetSubmission() error = %v, want ErrNotFound", err)
	}
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	for idx, id := range []string{"sub-1", "sub-2", "sub-3"} {
		submission := storage.Submission{
			ID:         id,
			Name:       "Ada",
			Email:      "ada@example.org",
			Message:    "hello",
			ReceivedAt: base.Add(time.Duration(idx) * time.Minute),
		}
		if err := store.CreateSubmission(ctx, submission); err != nil {
			t.Fatalf("CreateSubmission(%s) error = %v", id, err)
		}
	}

	submissions, err := store.ListSubmissions(ctx, 2)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("len = %d, want 2", len(submissions))
	}
	if submissions[0].ID != "sub-3" || submissions[1].ID != "sub-2" {
		t.Fatalf("order = %s, %s; want sub-3, sub-2", submissions[0].ID, submissions[1].ID)
	}
}
