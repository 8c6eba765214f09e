package usecase

import (
	"context"
	"fmt"
	"strings"

	"notebin/errs"
	"notebin/model"
	"notebin/utils"
)

type NotesService struct {
	NotesRepo NotesRepository
	Clock     Clock
}

// deriveTitle builds a title from the first three whitespace-delimited
// tokens of the content, with an ellipsis marker appended.
func deriveTitle(content string) string {
	words := strings.Fields(content)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ") + "..."
}

// CreateNote parses the raw media list, applies the empty-note rule and
// persists a new note. A note with no title, no content and no media is
// never persisted: the returned note is nil and no error is raised.
func (svc *NotesService) CreateNote(ctx context.Context, userID, title, content, rawMedia string) (*model.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	media := model.EnsureMediaIDs(model.DecodeMediaList(rawMedia))

	if title == "" && content == "" && len(media) == 0 {
		return nil, nil
	}

	if title == "" && content != "" {
		title = deriveTitle(content)
	}

	note := &model.Note{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		MediaJSON: model.EncodeMediaList(media),
		Pinned:    false,
		Deleted:   false,
		CreatedAt: nowOr(svc.Clock),
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies a partial update. Deleted notes accept no field edits.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, patch model.NotePatch) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note.Deleted {
		return nil, errs.ErrNoteImmutable
	}

	if err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, patch); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Pinned != nil {
		note.Pinned = *patch.Pinned
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// TogglePin sets the pinned flag. Like every other mutation it refuses to
// touch a binned note; pinning there would have no visible effect anyway.
func (svc *NotesService) TogglePin(ctx context.Context, noteID, userID string, pinned bool) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note.Deleted {
		return nil, errs.ErrNoteImmutable
	}

	if err := svc.NotesRepo.SetPinned(ctx, noteID, userID, pinned); err != nil {
		return nil, err
	}
	note.Pinned = pinned

	utils.TrackNoteOperation("pin")
	return note, nil
}

// ListActive returns the workspace: pinned notes first, then newest first.
func (svc *NotesService) ListActive(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

// ListBin returns the deleted notes, newest first.
func (svc *NotesService) ListBin(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetDeletedNotes(ctx, userID)
}
