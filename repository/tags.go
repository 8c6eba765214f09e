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

type TagsRepo struct {
	TagsCollection  *mongo.Collection
	NotesCollection *mongo.Collection
}

func GetTagsRepo(client *mongo.Client, dbName string) *TagsRepo {
	db := client.Database(dbName)
	return &TagsRepo{
		TagsCollection:  db.Collection("tags"),
		NotesCollection: db.Collection("notes"),
	}
}

// FindOrCreate looks up a tag by exact name in the user's namespace,
// creating it if absent. The upsert runs against the unique (user_id, name)
// index; if two requests race, the loser hits a duplicate key error and
// falls back to a plain lookup instead of failing.
func (r *TagsRepo) FindOrCreate(ctx context.Context, userID, name, color string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("upsert", "tags")
	defer timer.ObserveDuration()

	if color == "" {
		color = model.DefaultTagColor
	}

	filter := bson.M{"user_id": userID, "name": name}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        utils.GenerateID(),
		"user_id":    userID,
		"name":       name,
		"color":      color,
		"created_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var tag model.Tag
	err := r.TagsCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = r.TagsCollection.FindOne(ctx, filter).Decode(&tag)
		}
		if err != nil {
			return nil, err
		}
	}
	return &tag, nil
}

// GetTag retrieves a tag owned by the user.
func (r *TagsRepo) GetTag(ctx context.Context, tagID, userID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.TagsCollection.FindOne(ctx,
		bson.M{"_id": tagID, "user_id": userID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetUserTags lists the user's tags ordered by name.
func (r *TagsRepo) GetUserTags(ctx context.Context, userID string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.TagsCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AttachTag associates a tag with a note using set semantics. Returns true
// if the association is new, false if it already existed.
func (r *TagsRepo) AttachTag(ctx context.Context, noteID, userID, tagID string) (bool, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.NotesCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID},
		bson.M{"$addToSet": bson.M{"tag_ids": tagID}})
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, errs.ErrNotFound
	}
	return result.ModifiedCount > 0, nil
}

// DetachTag removes the association if present; an absent association is a
// no-op, not an error.
func (r *TagsRepo) DetachTag(ctx context.Context, noteID, userID, tagID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.NotesCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID},
		bson.M{"$pull": bson.M{"tag_ids": tagID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AttachTagBulk associates one tag with many notes in a single command.
// Notes the user does not own simply fall out of the filter, and notes
// already carrying the tag are not modified, so the modified count is
// exactly the number of new associations.
func (r *TagsRepo) AttachTagBulk(ctx context.Context, userID, tagID string, noteIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	if len(noteIDs) == 0 {
		return 0, nil
	}

	result, err := r.NotesCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": noteIDs}, "user_id": userID},
		bson.M{"$addToSet": bson.M{"tag_ids": tagID}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
