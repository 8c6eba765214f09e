package usecase

import (
	"context"
	"testing"
	"time"

	"notebin/model"
)

func seedBin(t *testing.T, at time.Time) (*fakeNotesRepo, *BinService, *model.Note) {
	t.Helper()
	repo := newFakeNotesRepo()
	svc := &BinService{NotesRepo: repo, Clock: fixedClock(at)}

	note := &model.Note{
		ID:        "note-1",
		UserID:    "user-1",
		Title:     "keep me",
		Pinned:    true,
		CreatedAt: at.Add(-time.Hour),
	}
	if err := repo.CreateNote(context.Background(), note); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	return repo, svc, note
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stamps deleted_at", func(t *testing.T) {
		repo, svc, note := seedBin(t, base)

		deleted, err := svc.SoftDelete(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("SoftDelete returned error: %v", err)
		}
		if !deleted.Deleted {
			t.Error("Expected note to be marked deleted")
		}
		if deleted.DeletedAt == nil || !deleted.DeletedAt.Equal(base) {
			t.Errorf("Expected deleted_at %v, got %v", base, deleted.DeletedAt)
		}

		stored, err := repo.GetNote(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("GetNote: %v", err)
		}
		if !stored.Deleted || stored.DeletedAt == nil {
			t.Error("Deleted state not persisted")
		}
	})

	t.Run("re-delete restarts the countdown", func(t *testing.T) {
		_, svc, note := seedBin(t, base)

		if _, err := svc.SoftDelete(ctx, note.ID, "user-1"); err != nil {
			t.Fatalf("first SoftDelete: %v", err)
		}

		later := base.Add(48 * time.Hour)
		svc.Clock = fixedClock(later)
		deleted, err := svc.SoftDelete(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("second SoftDelete: %v", err)
		}
		if !deleted.DeletedAt.Equal(later) {
			t.Errorf("Expected deleted_at re-stamped to %v, got %v", later, deleted.DeletedAt)
		}
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("clears deleted_at and keeps pin state", func(t *testing.T) {
		repo, svc, note := seedBin(t, base)

		if _, err := svc.SoftDelete(ctx, note.ID, "user-1"); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		restored, err := svc.Restore(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("Restore returned error: %v", err)
		}
		if restored.Deleted {
			t.Error("Expected note to be active after restore")
		}
		if restored.DeletedAt != nil {
			t.Errorf("Expected deleted_at cleared, got %v", restored.DeletedAt)
		}
		if !restored.Pinned {
			t.Error("Pin state lost through the bin round trip")
		}

		stored, err := repo.GetNote(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("GetNote: %v", err)
		}
		if stored.Deleted || stored.DeletedAt != nil {
			t.Error("Restore not persisted")
		}
	})

	t.Run("restoring an active note is a no-op", func(t *testing.T) {
		_, svc, note := seedBin(t, base)

		restored, err := svc.Restore(ctx, note.ID, "user-1")
		if err != nil {
			t.Fatalf("Restore returned error: %v", err)
		}
		if restored.Deleted {
			t.Error("Active note flipped to deleted by restore")
		}
	})
}

func TestBinBatches(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*fakeNotesRepo, *BinService) {
		repo := newFakeNotesRepo()
		svc := &BinService{NotesRepo: repo, Clock: fixedClock(base)}
		for i, deleted := range []bool{true, true, false} {
			note := &model.Note{
				ID:        string(rune('a' + i)),
				UserID:    "user-1",
				Title:     "n",
				Deleted:   deleted,
				CreatedAt: base,
			}
			if deleted {
				at := base
				note.DeletedAt = &at
			}
			if err := repo.CreateNote(ctx, note); err != nil {
				t.Fatalf("CreateNote: %v", err)
			}
		}
		return repo, svc
	}

	t.Run("restore all", func(t *testing.T) {
		repo, svc := setup(t)

		restored, err := svc.RestoreAll(ctx, "user-1")
		if err != nil {
			t.Fatalf("RestoreAll: %v", err)
		}
		if restored != 2 {
			t.Errorf("Expected 2 restored, got %d", restored)
		}
		binned, _ := repo.GetDeletedNotes(ctx, "user-1")
		if len(binned) != 0 {
			t.Errorf("Expected empty bin, found %d notes", len(binned))
		}
	})

	t.Run("erase all only touches the bin", func(t *testing.T) {
		repo, svc := setup(t)

		erased, err := svc.EraseAll(ctx, "user-1")
		if err != nil {
			t.Fatalf("EraseAll: %v", err)
		}
		if erased != 2 {
			t.Errorf("Expected 2 erased, got %d", erased)
		}
		active, _ := repo.GetUserNotes(ctx, "user-1")
		if len(active) != 1 {
			t.Errorf("Active note should survive erase-all, found %d", len(active))
		}
	})
}

func TestPermanentDelete(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, svc, note := seedBin(t, base)

	if err := svc.PermanentDelete(ctx, note.ID, "user-1"); err != nil {
		t.Fatalf("PermanentDelete: %v", err)
	}
	if _, err := repo.GetNote(ctx, note.ID, "user-1"); err == nil {
		t.Error("Expected note to be gone")
	}
}
