package usecase

import (
	"context"
	"time"

	"notebin/model"
)

// Repository interfaces consumed by the services. The Mongo implementations
// live in the repository package; tests substitute in-memory fakes.

type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetDeletedNotes(ctx context.Context, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, patch model.NotePatch) error
	SetPinned(ctx context.Context, noteID, userID string, pinned bool) error
	SetMediaJSON(ctx context.Context, noteID, userID, mediaJSON string) error
	SetDeleted(ctx context.Context, noteID, userID string, deleted bool, deletedAt *time.Time) error
	DeleteNote(ctx context.Context, noteID, userID string) error
	RestoreAll(ctx context.Context, userID string) (int64, error)
	EraseAll(ctx context.Context, userID string) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountUserNotes(ctx context.Context, userID string) (int64, error)
}

type TagsRepository interface {
	FindOrCreate(ctx context.Context, userID, name, color string) (*model.Tag, error)
	GetTag(ctx context.Context, tagID, userID string) (*model.Tag, error)
	GetUserTags(ctx context.Context, userID string) ([]*model.Tag, error)
	AttachTag(ctx context.Context, noteID, userID, tagID string) (bool, error)
	DetachTag(ctx context.Context, noteID, userID, tagID string) error
	AttachTagBulk(ctx context.Context, userID, tagID string, noteIDs []string) (int64, error)
}

type UsersRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	SetTwoFactor(ctx context.Context, userID, secret string, enabled bool, recoveryCodes []string) error
}
