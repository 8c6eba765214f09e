package dto

import (
	"time"

	"notebin/model"
)

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// Media is the raw client-side media list; entries without ids get one
	// assigned on the server.
	Media string `json:"media_json"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

type PinRequest struct {
	Pinned bool `json:"pinned"`
}

type NoteResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Content   string                  `json:"content"`
	Media     []model.MediaAttachment `json:"media"`
	Pinned    bool                    `json:"pinned"`
	Deleted   bool                    `json:"deleted"`
	Tags      []TagResponse           `json:"tags"`
	CreatedAt time.Time               `json:"created_at"`
	DeletedAt *time.Time              `json:"deleted_at,omitempty"`
}

// ToNoteResponse decodes the media blob and resolves tag ids against the
// caller-supplied tag index (id -> tag).
func ToNoteResponse(note *model.Note, tagIndex map[string]*model.Tag) NoteResponse {
	tags := make([]TagResponse, 0, len(note.TagIDs))
	for _, id := range note.TagIDs {
		if t, ok := tagIndex[id]; ok {
			tags = append(tags, ToTagResponse(t))
		}
	}
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Media:     model.DecodeMediaList(note.MediaJSON),
		Pinned:    note.Pinned,
		Deleted:   note.Deleted,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		DeletedAt: note.DeletedAt,
	}
}

func ToNoteResponses(notes []*model.Note, tagIndex map[string]*model.Tag) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note, tagIndex)
	}
	return responses
}
