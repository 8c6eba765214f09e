package dto

import "notebin/model"

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type AttachTagRequest struct {
	TagName string `json:"tag_name" binding:"required"`
}

type BatchApplyRequest struct {
	TagName string   `json:"tag_name" binding:"required"`
	NoteIDs []string `json:"note_ids"`
}

type BatchApplyResponse struct {
	Tag          TagResponse `json:"tag"`
	AppliedCount int         `json:"applied_count"`
}

type TagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func ToTagResponse(tag *model.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}
}

func ToTagResponses(tags []*model.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = ToTagResponse(tag)
	}
	return responses
}
