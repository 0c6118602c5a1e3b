package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customersCollection     = "customers"
	tasksCollection         = "tasks"
	emailDraftsCollection   = "email_drafts"
	agentsCollection        = "agents"
	refreshTokensCollection = "refresh_tokens"
)

// EnsureMongoIndexes creates indexes backing uniqueness rules and lookups of mongo repositories
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		customersCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		tasksCollection: {
			{
				Keys: bson.D{{Key: "externalSource", Value: 1}, {Key: "externalId", Value: 1}},
				Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
					"externalSource": bson.M{"$type": "string"},
					"externalId":     bson.M{"$type": "string"},
				}),
			},
			{Keys: bson.D{{Key: "customerId", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		emailDraftsCollection: {
			{Keys: bson.D{{Key: "taskId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		agentsCollection: {
			{Keys: bson.D{{Key: "source", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		refreshTokensCollection: {
			{Keys: bson.D{{Key: "agentId", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s - %w", coll, err)
		}
	}
	return nil
}

// metadata is kept as JSON text. Decoding it into a bson document goes through extended JSON,
// which turns client keys such as $date or $oid into bson types or rejects them.
func metadataText(raw json.RawMessage) string {
	if raw == nil {
		return "{}"
	}
	return string(raw)
}

func metadataRaw(text string) json.RawMessage {
	if text == "" {
		return nil
	}
	return json.RawMessage(text)
}
