package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the repositories rely on. The unique
// (user_id, name) index on tags is what makes find-or-create race-safe, and
// the unique email index backs registration.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	noteIndexes := []mongo.IndexModel{
		// Active workspace listing: pinned desc, created desc
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "deleted", Value: 1},
				{Key: "pinned", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_workspace_order"),
		},
		// Purge sweep scan
		{
			Keys: bson.D{
				{Key: "deleted", Value: 1},
				{Key: "deleted_at", Value: 1},
			},
			Options: options.Index().SetName("purge_eligibility"),
		},
	}

	tagIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("user_tag_name_unique").
				SetUnique(true),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_index").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
	}

	if _, err := db.Collection("notes").Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}
	if _, err := db.Collection("tags").Indexes().CreateMany(ctx, tagIndexes); err != nil {
		return fmt.Errorf("failed to create tags indexes: %w", err)
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}
	if _, err := db.Collection("sessions").Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
