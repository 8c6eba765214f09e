package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"notebin/errs"
	"notebin/model"
)

func TestCreateNote(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty note is never persisted", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		note, err := svc.CreateNote(ctx, "user-1", "   ", "  \t ", "")
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note != nil {
			t.Errorf("Expected nil note for empty input, got %+v", note)
		}
		if len(repo.notes) != 0 {
			t.Errorf("Expected nothing persisted, found %d notes", len(repo.notes))
		}
	})

	t.Run("title derived from first three words", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		note, err := svc.CreateNote(ctx, "user-1", "", "hello world from the  bin", "")
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note.Title != "hello world from..." {
			t.Errorf("Expected derived title %q, got %q", "hello world from...", note.Title)
		}
	})

	t.Run("short content still gets ellipsis", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		note, err := svc.CreateNote(ctx, "user-1", "", "solo", "")
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note.Title != "solo..." {
			t.Errorf("Expected title %q, got %q", "solo...", note.Title)
		}
	})

	t.Run("explicit title wins over derivation", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		note, err := svc.CreateNote(ctx, "user-1", "My Title", "some content here", "")
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note.Title != "My Title" {
			t.Errorf("Expected title %q, got %q", "My Title", note.Title)
		}
	})

	t.Run("media-only note is persisted", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		raw := `[{"type":"image","url":"/static/uploads/a.png"}]`
		note, err := svc.CreateNote(ctx, "user-1", "", "", raw)
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note == nil {
			t.Fatal("Expected media-only note to be persisted")
		}
		media := model.DecodeMediaList(note.MediaJSON)
		if len(media) != 1 {
			t.Fatalf("Expected 1 media entry, got %d", len(media))
		}
		if media[0].ID == "" {
			t.Error("Expected media entry to have an id assigned")
		}
	})

	t.Run("malformed media blob treated as empty", func(t *testing.T) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

		note, err := svc.CreateNote(ctx, "user-1", "", "", "{not json")
		if err != nil {
			t.Fatalf("CreateNote returned error: %v", err)
		}
		if note != nil {
			t.Errorf("Expected nil note when media blob is unusable, got %+v", note)
		}
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) (*fakeNotesRepo, *NotesService, *model.Note) {
		repo := newFakeNotesRepo()
		svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}
		note, err := svc.CreateNote(ctx, "user-1", "Original", "body", "")
		if err != nil {
			t.Fatalf("seed CreateNote: %v", err)
		}
		return repo, svc, note
	}

	t.Run("partial patch leaves other fields alone", func(t *testing.T) {
		_, svc, note := seed(t)

		title := "Renamed"
		updated, err := svc.UpdateNote(ctx, note.ID, "user-1", model.NotePatch{Title: &title})
		if err != nil {
			t.Fatalf("UpdateNote returned error: %v", err)
		}
		if updated.Title != "Renamed" {
			t.Errorf("Expected title %q, got %q", "Renamed", updated.Title)
		}
		if updated.Content != "body" {
			t.Errorf("Content changed unexpectedly: %q", updated.Content)
		}
	})

	t.Run("deleted note refuses edits", func(t *testing.T) {
		repo, svc, note := seed(t)
		now := base
		if err := repo.SetDeleted(ctx, note.ID, "user-1", true, &now); err != nil {
			t.Fatalf("SetDeleted: %v", err)
		}

		title := "Renamed"
		_, err := svc.UpdateNote(ctx, note.ID, "user-1", model.NotePatch{Title: &title})
		if !errors.Is(err, errs.ErrNoteImmutable) {
			t.Errorf("Expected ErrNoteImmutable, got %v", err)
		}
	})

	t.Run("other user's note reads as not found", func(t *testing.T) {
		_, svc, note := seed(t)

		title := "Renamed"
		_, err := svc.UpdateNote(ctx, note.ID, "user-2", model.NotePatch{Title: &title})
		if !errors.Is(err, errs.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestTogglePin(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeNotesRepo()
	svc := &NotesService{NotesRepo: repo, Clock: fixedClock(base)}

	note, err := svc.CreateNote(ctx, "user-1", "Pin me", "", "")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	t.Run("pin and unpin", func(t *testing.T) {
		pinned, err := svc.TogglePin(ctx, note.ID, "user-1", true)
		if err != nil {
			t.Fatalf("TogglePin returned error: %v", err)
		}
		if !pinned.Pinned {
			t.Error("Expected note to be pinned")
		}

		unpinned, err := svc.TogglePin(ctx, note.ID, "user-1", false)
		if err != nil {
			t.Fatalf("TogglePin returned error: %v", err)
		}
		if unpinned.Pinned {
			t.Error("Expected note to be unpinned")
		}
	})

	t.Run("binned note cannot be pinned", func(t *testing.T) {
		now := base
		if err := repo.SetDeleted(ctx, note.ID, "user-1", true, &now); err != nil {
			t.Fatalf("SetDeleted: %v", err)
		}

		_, err := svc.TogglePin(ctx, note.ID, "user-1", true)
		if !errors.Is(err, errs.ErrNoteImmutable) {
			t.Errorf("Expected ErrNoteImmutable, got %v", err)
		}
	})
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeNotesRepo()
	svc := &NotesService{NotesRepo: repo}

	mk := func(title string, offset time.Duration, pinned bool) string {
		note := &model.Note{
			ID:        title,
			UserID:    "user-1",
			Title:     title,
			Pinned:    pinned,
			CreatedAt: base.Add(offset),
		}
		if err := repo.CreateNote(ctx, note); err != nil {
			t.Fatalf("CreateNote: %v", err)
		}
		return note.ID
	}

	mk("old-unpinned", 0, false)
	mk("new-unpinned", 2*time.Hour, false)
	mk("old-pinned", 1*time.Hour, true)

	notes, err := svc.ListActive(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}

	got := make([]string, len(notes))
	for i, n := range notes {
		got[i] = n.Title
	}
	want := []string{"old-pinned", "new-unpinned", "old-unpinned"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}
