package usecase

import (
	"context"
	"fmt"
	"strings"

	"notebin/errs"
	"notebin/model"
)

type TagsService struct {
	TagsRepo  TagsRepository
	NotesRepo NotesRepository
}

// BatchApplyResult is what a batch tag application reports back: the tag
// (created if it did not exist) and how many notes were newly tagged.
type BatchApplyResult struct {
	Tag          *model.Tag
	AppliedCount int64
}

// FindOrCreate resolves a tag name in the user's namespace, creating the
// tag with the default color when absent. Names are matched exactly.
func (svc *TagsService) FindOrCreate(ctx context.Context, userID, name, color string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name required", errs.ErrValidation)
	}
	return svc.TagsRepo.FindOrCreate(ctx, userID, name, color)
}

// ListTags returns the user's tags ordered by name.
func (svc *TagsService) ListTags(ctx context.Context, userID string) ([]*model.Tag, error) {
	return svc.TagsRepo.GetUserTags(ctx, userID)
}

// Attach tags a note by name, creating the tag on first use. Attaching a
// tag that is already on the note changes nothing.
func (svc *TagsService) Attach(ctx context.Context, noteID, userID, tagName string) (*model.Tag, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note.Deleted {
		return nil, errs.ErrNoteImmutable
	}

	tag, err := svc.FindOrCreate(ctx, userID, tagName, "")
	if err != nil {
		return nil, err
	}

	if _, err := svc.TagsRepo.AttachTag(ctx, noteID, userID, tag.ID); err != nil {
		return nil, err
	}
	return tag, nil
}

// Detach removes a tag from a note; an association that does not exist is a
// no-op. The tag itself always survives.
func (svc *TagsService) Detach(ctx context.Context, noteID, tagID, userID string) error {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if note.Deleted {
		return errs.ErrNoteImmutable
	}

	return svc.TagsRepo.DetachTag(ctx, noteID, userID, tagID)
}

// BatchApply tags every listed note the caller owns in one unit, skipping
// notes that already carry the tag. The count reports new associations only;
// ids the caller does not own are silently ignored.
func (svc *TagsService) BatchApply(ctx context.Context, userID, tagName string, noteIDs []string) (*BatchApplyResult, error) {
	tag, err := svc.FindOrCreate(ctx, userID, tagName, "")
	if err != nil {
		return nil, err
	}

	applied, err := svc.TagsRepo.AttachTagBulk(ctx, userID, tag.ID, noteIDs)
	if err != nil {
		return nil, err
	}

	return &BatchApplyResult{Tag: tag, AppliedCount: applied}, nil
}

// TagIndex loads the user's tags keyed by id, for resolving note tag ids in
// responses.
func (svc *TagsService) TagIndex(ctx context.Context, userID string) (map[string]*model.Tag, error) {
	tags, err := svc.TagsRepo.GetUserTags(ctx, userID)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*model.Tag, len(tags))
	for _, tag := range tags {
		index[tag.ID] = tag
	}
	return index, nil
}
