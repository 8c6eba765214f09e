package usecase

import (
	"context"
	"sort"
	"time"

	"notebin/errs"
	"notebin/model"
	"notebin/utils"
)

// fakeNotesRepo keeps notes in memory with the same ordering and ownership
// semantics as the Mongo implementation.
type fakeNotesRepo struct {
	notes map[string]*model.Note
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[string]*model.Note)}
}

func (f *fakeNotesRepo) owned(noteID, userID string) (*model.Note, error) {
	note, ok := f.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, errs.ErrNotFound
	}
	return note, nil
}

func (f *fakeNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := f.owned(noteID, userID)
	if err != nil {
		return nil, err
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	var out []*model.Note
	for _, n := range f.notes {
		if n.UserID == userID && !n.Deleted {
			copied := *n
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeNotesRepo) GetDeletedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	var out []*model.Note
	for _, n := range f.notes {
		if n.UserID == userID && n.Deleted {
			copied := *n
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, patch model.NotePatch) error {
	note, err := f.owned(noteID, userID)
	if err != nil {
		return err
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
	return nil
}

func (f *fakeNotesRepo) SetPinned(ctx context.Context, noteID, userID string, pinned bool) error {
	note, err := f.owned(noteID, userID)
	if err != nil {
		return err
	}
	note.Pinned = pinned
	return nil
}

func (f *fakeNotesRepo) SetMediaJSON(ctx context.Context, noteID, userID, mediaJSON string) error {
	note, err := f.owned(noteID, userID)
	if err != nil {
		return err
	}
	note.MediaJSON = mediaJSON
	return nil
}

func (f *fakeNotesRepo) SetDeleted(ctx context.Context, noteID, userID string, deleted bool, deletedAt *time.Time) error {
	note, err := f.owned(noteID, userID)
	if err != nil {
		return err
	}
	note.Deleted = deleted
	note.DeletedAt = deletedAt
	return nil
}

func (f *fakeNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	if _, err := f.owned(noteID, userID); err != nil {
		return err
	}
	delete(f.notes, noteID)
	return nil
}

func (f *fakeNotesRepo) RestoreAll(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range f.notes {
		if n.UserID == userID && n.Deleted {
			n.Deleted = false
			n.DeletedAt = nil
			count++
		}
	}
	return count, nil
}

func (f *fakeNotesRepo) EraseAll(ctx context.Context, userID string) (int64, error) {
	var count int64
	for id, n := range f.notes {
		if n.UserID == userID && n.Deleted {
			delete(f.notes, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeNotesRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for id, n := range f.notes {
		if n.Deleted && n.DeletedAt != nil && n.DeletedAt.Before(cutoff) {
			delete(f.notes, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeNotesRepo) CountUserNotes(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range f.notes {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeTagsRepo mirrors the unique (user, name) constraint and the set
// semantics of tag attachment.
type fakeTagsRepo struct {
	tags  map[string]*model.Tag
	notes *fakeNotesRepo
}

func newFakeTagsRepo(notes *fakeNotesRepo) *fakeTagsRepo {
	return &fakeTagsRepo{tags: make(map[string]*model.Tag), notes: notes}
}

func (f *fakeTagsRepo) FindOrCreate(ctx context.Context, userID, name, color string) (*model.Tag, error) {
	for _, t := range f.tags {
		if t.UserID == userID && t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	if color == "" {
		color = model.DefaultTagColor
	}
	tag := &model.Tag{ID: utils.GenerateID(), UserID: userID, Name: name, Color: color}
	f.tags[tag.ID] = tag
	copied := *tag
	return &copied, nil
}

func (f *fakeTagsRepo) GetTag(ctx context.Context, tagID, userID string) (*model.Tag, error) {
	tag, ok := f.tags[tagID]
	if !ok || tag.UserID != userID {
		return nil, errs.ErrNotFound
	}
	copied := *tag
	return &copied, nil
}

func (f *fakeTagsRepo) GetUserTags(ctx context.Context, userID string) ([]*model.Tag, error) {
	var out []*model.Tag
	for _, t := range f.tags {
		if t.UserID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTagsRepo) AttachTag(ctx context.Context, noteID, userID, tagID string) (bool, error) {
	note, err := f.notes.owned(noteID, userID)
	if err != nil {
		return false, err
	}
	if note.HasTag(tagID) {
		return false, nil
	}
	note.TagIDs = append(note.TagIDs, tagID)
	return true, nil
}

func (f *fakeTagsRepo) DetachTag(ctx context.Context, noteID, userID, tagID string) error {
	note, err := f.notes.owned(noteID, userID)
	if err != nil {
		return err
	}
	kept := note.TagIDs[:0]
	for _, id := range note.TagIDs {
		if id != tagID {
			kept = append(kept, id)
		}
	}
	note.TagIDs = kept
	return nil
}

func (f *fakeTagsRepo) AttachTagBulk(ctx context.Context, userID, tagID string, noteIDs []string) (int64, error) {
	var count int64
	for _, noteID := range noteIDs {
		attached, err := f.AttachTag(ctx, noteID, userID, tagID)
		if err != nil {
			continue
		}
		if attached {
			count++
		}
	}
	return count, nil
}

// fakeUsersRepo backs the account and recovery tests.
type fakeUsersRepo struct {
	users map[string]*model.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]*model.User)}
}

func (f *fakeUsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return errs.ErrEmailExists
		}
	}
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsersRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsersRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	for _, u := range f.users {
		if u.Email == email {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeUsersRepo) SetTwoFactor(ctx context.Context, userID, secret string, enabled bool, recoveryCodes []string) error {
	u, ok := f.users[userID]
	if !ok {
		return errs.ErrNotFound
	}
	u.TwoFactorSecret = secret
	u.TwoFactorEnabled = enabled
	u.RecoveryCodes = recoveryCodes
	return nil
}

// fixedClock returns a Clock pinned to the given instant.
func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}
