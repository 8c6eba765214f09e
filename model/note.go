package model

import "time"

// Note is the persisted note document. Media lives inside the document as a
// single JSON text blob (MediaJSON); use the media codec to read or write it.
// Tag associations are kept as a set of tag ids on the note itself.
//
// Invariant: Deleted == false implies DeletedAt == nil, and Deleted == true
// implies DeletedAt holds the moment of soft deletion.
type Note struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	MediaJSON string     `bson:"media_json" json:"-"`
	Pinned    bool       `bson:"pinned" json:"pinned"`
	Deleted   bool       `bson:"deleted" json:"deleted"`
	TagIDs    []string   `bson:"tag_ids,omitempty" json:"-"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	// UpdatedAt is reserved; no current mutation writes it.
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// NotePatch carries a partial update. Nil fields are left unchanged.
type NotePatch struct {
	Title   *string
	Content *string
	Pinned  *bool
}

func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Pinned == nil
}

func (n *Note) HasTag(tagID string) bool {
	for _, id := range n.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
