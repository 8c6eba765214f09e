package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"notebin/errs"
	"notebin/model"
)

type fakeStorage struct {
	stored []string
	fail   bool
}

func (f *fakeStorage) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	if f.fail {
		return "", errors.New("storage unavailable")
	}
	f.stored = append(f.stored, suggestedName)
	return "/static/uploads/" + suggestedName, nil
}

func setupMedia(t *testing.T) (*fakeNotesRepo, *fakeStorage, *MediaService) {
	t.Helper()
	repo := newFakeNotesRepo()
	storage := &fakeStorage{}
	svc := &MediaService{NotesRepo: repo, Storage: storage}

	note := &model.Note{
		ID:        "note-1",
		UserID:    "user-1",
		Title:     "with media",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.CreateNote(context.Background(), note); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	return repo, storage, svc
}

func TestAddMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and appends an attachment", func(t *testing.T) {
		repo, _, svc := setupMedia(t)

		attachment, err := svc.AddMedia(ctx, "note-1", "user-1", strings.NewReader("png bytes"), "photo.PNG")
		if err != nil {
			t.Fatalf("AddMedia returned error: %v", err)
		}
		if attachment.ID == "" {
			t.Error("Attachment id not assigned")
		}
		if attachment.Type != model.MediaTypeImage {
			t.Errorf("Expected type %q, got %q", model.MediaTypeImage, attachment.Type)
		}

		note, _ := repo.GetNote(ctx, "note-1", "user-1")
		media := model.DecodeMediaList(note.MediaJSON)
		if len(media) != 1 {
			t.Fatalf("Expected 1 media entry, got %d", len(media))
		}
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		_, storage, svc := setupMedia(t)

		for _, name := range []string{"doc.pdf", "movie.mp4", "noext", "script.png.exe"} {
			_, err := svc.AddMedia(ctx, "note-1", "user-1", strings.NewReader("x"), name)
			if !errors.Is(err, errs.ErrValidation) {
				t.Errorf("%s: expected ErrValidation, got %v", name, err)
			}
		}
		if len(storage.stored) != 0 {
			t.Error("Rejected files must not reach storage")
		}
	})

	t.Run("refuses binned notes before storing", func(t *testing.T) {
		repo, storage, svc := setupMedia(t)
		now := time.Now()
		if err := repo.SetDeleted(ctx, "note-1", "user-1", true, &now); err != nil {
			t.Fatalf("SetDeleted: %v", err)
		}

		_, err := svc.AddMedia(ctx, "note-1", "user-1", strings.NewReader("x"), "a.png")
		if !errors.Is(err, errs.ErrNoteImmutable) {
			t.Errorf("Expected ErrNoteImmutable, got %v", err)
		}
		if len(storage.stored) != 0 {
			t.Error("Bytes stored for an immutable note")
		}
	})
}

func TestRemoveMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the named attachment", func(t *testing.T) {
		repo, _, svc := setupMedia(t)

		first, err := svc.AddMedia(ctx, "note-1", "user-1", strings.NewReader("a"), "a.png")
		if err != nil {
			t.Fatalf("AddMedia: %v", err)
		}
		second, err := svc.AddMedia(ctx, "note-1", "user-1", strings.NewReader("b"), "b.jpg")
		if err != nil {
			t.Fatalf("AddMedia: %v", err)
		}

		if err := svc.RemoveMedia(ctx, "note-1", first.ID, "user-1"); err != nil {
			t.Fatalf("RemoveMedia: %v", err)
		}

		note, _ := repo.GetNote(ctx, "note-1", "user-1")
		media := model.DecodeMediaList(note.MediaJSON)
		if len(media) != 1 || media[0].ID != second.ID {
			t.Errorf("Expected only %q to remain, got %+v", second.ID, media)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		_, _, svc := setupMedia(t)

		if err := svc.RemoveMedia(ctx, "note-1", "ghost", "user-1"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}
