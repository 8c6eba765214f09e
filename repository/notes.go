package repository

import (
	"context"
	"time"

	"notebin/errs"
	"notebin/model"
	"notebin/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// CreateNote inserts a new note document.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// GetNote retrieves a note owned by the user. A note owned by someone else
// is indistinguishable from a missing one.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// GetUserNotes retrieves the user's active notes, pinned first, newest first
// within each group.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})
	return r.findNotes(ctx, bson.M{"user_id": userID, "deleted": false}, opts)
}

// GetDeletedNotes retrieves the user's bin, newest first; pin state does not
// affect bin ordering.
func (r *NotesRepo) GetDeletedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findNotes(ctx, bson.M{"user_id": userID, "deleted": true}, opts)
}

func (r *NotesRepo) findNotes(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Note, error) {
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote applies a partial update; nil patch fields stay untouched.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, patch model.NotePatch) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Pinned != nil {
		set["pinned"] = *patch.Pinned
	}
	if len(set) == 0 {
		return nil
	}

	return r.updateOwned(ctx, noteID, userID, bson.M{"$set": set})
}

// SetPinned sets the pinned flag.
func (r *NotesRepo) SetPinned(ctx context.Context, noteID, userID string, pinned bool) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	return r.updateOwned(ctx, noteID, userID, bson.M{"$set": bson.M{"pinned": pinned}})
}

// SetMediaJSON replaces the note's media blob.
func (r *NotesRepo) SetMediaJSON(ctx context.Context, noteID, userID, mediaJSON string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	return r.updateOwned(ctx, noteID, userID, bson.M{"$set": bson.M{"media_json": mediaJSON}})
}

// SetDeleted flips the soft-delete state. deletedAt must be non-nil exactly
// when deleted is true.
func (r *NotesRepo) SetDeleted(ctx context.Context, noteID, userID string, deleted bool, deletedAt *time.Time) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"deleted": deleted, "deleted_at": deletedAt}}
	if deletedAt == nil {
		update = bson.M{
			"$set":   bson.M{"deleted": deleted},
			"$unset": bson.M{"deleted_at": ""},
		}
	}
	return r.updateOwned(ctx, noteID, userID, update)
}

func (r *NotesRepo) updateOwned(ctx context.Context, noteID, userID string, update bson.M) error {
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteNote removes a note permanently.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// RestoreAll reactivates every binned note of the user in one command, so
// readers never observe a partially restored bin.
func (r *NotesRepo) RestoreAll(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "deleted": true},
		bson.M{
			"$set":   bson.M{"deleted": false},
			"$unset": bson.M{"deleted_at": ""},
		})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// EraseAll permanently removes every binned note of the user in one command.
func (r *NotesRepo) EraseAll(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx,
		bson.M{"user_id": userID, "deleted": true})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// PurgeOlderThan destroys every note soft-deleted before the cutoff, across
// all users. Notes already gone simply don't match, so overlapping sweeps
// cannot fail on each other.
func (r *NotesRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"deleted":    true,
		"deleted_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountUserNotes counts the user's notes, bin included.
func (r *NotesRepo) CountUserNotes(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
}
