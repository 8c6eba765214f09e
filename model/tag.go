package model

import "time"

// DefaultTagColor is assigned when a tag is created without an explicit color.
const DefaultTagColor = "#e2e8f0"

// Tag is a private per-user label. Names are unique per user, compared
// case-sensitively; the uniqueness is enforced by a compound index on
// (user_id, name). Tags are never auto-deleted when their last note goes away.
type Tag struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
