package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"notebin/errs"
	"notebin/model"
	"notebin/services"
	"notebin/utils"
)

// allowedMediaExtensions is the upload whitelist; only images are supported.
var allowedMediaExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// AllowedMediaFile reports whether the filename carries a whitelisted
// extension.
func AllowedMediaFile(filename string) bool {
	return allowedMediaExtensions[strings.ToLower(filepath.Ext(filename))]
}

type MediaService struct {
	NotesRepo NotesRepository
	Storage   services.Storage
}

// AddMedia stores the uploaded bytes and appends an attachment record to the
// note's media list.
func (svc *MediaService) AddMedia(ctx context.Context, noteID, userID string, file io.Reader, filename string) (*model.MediaAttachment, error) {
	if file == nil || filename == "" {
		return nil, fmt.Errorf("%w: no file supplied", errs.ErrValidation)
	}

	if !AllowedMediaFile(filename) {
		return nil, fmt.Errorf("%w: file type %q is not allowed", errs.ErrValidation, filepath.Ext(filename))
	}

	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note.Deleted {
		return nil, errs.ErrNoteImmutable
	}

	url, err := svc.Storage.Store(ctx, file, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	attachment := model.NewMediaAttachment(url)
	media := append(model.DecodeMediaList(note.MediaJSON), attachment)

	if err := svc.NotesRepo.SetMediaJSON(ctx, noteID, userID, model.EncodeMediaList(media)); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("add_media")
	return &attachment, nil
}

// RemoveMedia drops the attachment with the given id from the note's list.
// An id that is not present is a no-op, not an error. The stored bytes are
// not reclaimed.
func (svc *MediaService) RemoveMedia(ctx context.Context, noteID, mediaID, userID string) error {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if note.Deleted {
		return errs.ErrNoteImmutable
	}

	media := model.DecodeMediaList(note.MediaJSON)
	kept := media[:0]
	for _, m := range media {
		if m.ID != mediaID {
			kept = append(kept, m)
		}
	}

	if err := svc.NotesRepo.SetMediaJSON(ctx, noteID, userID, model.EncodeMediaList(kept)); err != nil {
		return err
	}

	utils.TrackNoteOperation("remove_media")
	return nil
}
