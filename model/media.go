package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// MediaAttachment is one entry in a note's media blob. The ID is generated
// once and stays stable for the attachment's life; Type is currently always
// "image"; URL is the retrievable reference handed back by storage.
type MediaAttachment struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

const MediaTypeImage = "image"

// DecodeMediaList parses a persisted media blob. Malformed JSON is treated as
// an empty list rather than an error so a corrupted blob never makes the
// owning note unreadable.
func DecodeMediaList(raw string) []MediaAttachment {
	if raw == "" {
		return []MediaAttachment{}
	}
	var list []MediaAttachment
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []MediaAttachment{}
	}
	return list
}

// EncodeMediaList serializes a media list back into the blob form.
func EncodeMediaList(list []MediaAttachment) string {
	if list == nil {
		list = []MediaAttachment{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// EnsureMediaIDs assigns a fresh id to every attachment that is missing one.
// Attachments that already carry an id keep it, so re-submitting the same
// list never regenerates identifiers.
func EnsureMediaIDs(list []MediaAttachment) []MediaAttachment {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.New().String()
		}
	}
	return list
}

// NewMediaAttachment builds an image attachment around a storage reference.
func NewMediaAttachment(url string) MediaAttachment {
	return MediaAttachment{
		ID:   uuid.New().String(),
		Type: MediaTypeImage,
		URL:  url,
	}
}
