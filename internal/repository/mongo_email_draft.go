package repository

import (
	"context"
	"time"

	"github.com/umalmyha/taskdesk/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEmailDraft struct {
	ID        string    `bson:"_id"`
	TaskID    string    `bson:"taskId"`
	To        string    `bson:"to"`
	Cc        *string   `bson:"cc"`
	Subject   string    `bson:"subject"`
	Body      string    `bson:"body"`
	CreatedAt time.Time `bson:"createdAt"`
}

type mongoEmailDraftRepository struct {
	coll *mongo.Collection
}

// NewMongoEmailDraftRepository builds mongo EmailDraftRepository
func NewMongoEmailDraftRepository(db *mongo.Database) EmailDraftRepository {
	return &mongoEmailDraftRepository{coll: db.Collection(emailDraftsCollection)}
}

func (r *mongoEmailDraftRepository) Create(ctx context.Context, d *model.EmailDraft) error {
	_, err := r.coll.InsertOne(ctx, mongoEmailDraft{
		ID:        d.ID,
		TaskID:    d.TaskID,
		To:        d.To,
		Cc:        d.Cc,
		Subject:   d.Subject,
		Body:      d.Body,
		CreatedAt: d.CreatedAt,
	})
	return err
}

func (r *mongoEmailDraftRepository) FindByTaskID(ctx context.Context, taskID string) ([]model.EmailDraft, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"taskId": taskID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	drafts := make([]model.EmailDraft, 0)
	for cursor.Next(ctx) {
		var doc mongoEmailDraft
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		drafts = append(drafts, model.EmailDraft(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *mongoEmailDraftRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"taskId": taskID})
	return err
}
