package usecase

import (
	"context"

	"notebin/model"
	"notebin/utils"
)

// BinService owns the note lifecycle transitions around the bin:
// active -> deleted -> active (restore), and deleted/active -> gone.
type BinService struct {
	NotesRepo NotesRepository
	Clock     Clock
}

// SoftDelete moves a note into the bin, stamping deleted_at. Soft-deleting
// an already-binned note re-stamps the timestamp, restarting its purge
// countdown; it never errors.
func (svc *BinService) SoftDelete(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	now := nowOr(svc.Clock)
	if err := svc.NotesRepo.SetDeleted(ctx, noteID, userID, true, &now); err != nil {
		return nil, err
	}
	note.Deleted = true
	note.DeletedAt = &now

	utils.TrackNoteOperation("soft_delete")
	return note, nil
}

// Restore returns a binned note to the active list with its pin state
// intact and deleted_at cleared. Restoring an active note is a no-op.
func (svc *BinService) Restore(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if !note.Deleted {
		return note, nil
	}

	if err := svc.NotesRepo.SetDeleted(ctx, noteID, userID, false, nil); err != nil {
		return nil, err
	}
	note.Deleted = false
	note.DeletedAt = nil

	utils.TrackNoteOperation("restore")
	return note, nil
}

// PermanentDelete destroys the record regardless of its current state.
func (svc *BinService) PermanentDelete(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}
	utils.TrackNoteOperation("permanent_delete")
	return nil
}

// RestoreAll restores every binned note of the user as one batch.
func (svc *BinService) RestoreAll(ctx context.Context, userID string) (int64, error) {
	restored, err := svc.NotesRepo.RestoreAll(ctx, userID)
	if err != nil {
		return 0, err
	}
	utils.TrackNoteOperation("restore_all")
	return restored, nil
}

// EraseAll permanently deletes every binned note of the user as one batch.
func (svc *BinService) EraseAll(ctx context.Context, userID string) (int64, error) {
	erased, err := svc.NotesRepo.EraseAll(ctx, userID)
	if err != nil {
		return 0, err
	}
	utils.TrackNoteOperation("erase_all")
	return erased, nil
}
