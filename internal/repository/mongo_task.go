package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoTask struct {
	ID             string    `bson:"_id"`
	ExternalSource *string   `bson:"externalSource,omitempty"`
	ExternalID     *string   `bson:"externalId,omitempty"`
	Title          string    `bson:"title"`
	Description    *string   `bson:"description"`
	CustomerID     *string   `bson:"customerId"`
	Customer       *string   `bson:"customer"`
	TaskType       *string   `bson:"taskType"`
	Status         string    `bson:"status"`
	Priority       int       `bson:"priority"`
	TagsJSON       string    `bson:"tagsJson"`
	Metadata       string    `bson:"metadata"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func toMongoTask(t *model.Task) mongoTask {
	return mongoTask{
		ID:             t.ID,
		ExternalSource: t.ExternalSource,
		ExternalID:     t.ExternalID,
		Title:          t.Title,
		Description:    t.Description,
		CustomerID:     t.CustomerID,
		Customer:       t.Customer,
		TaskType:       t.TaskType,
		Status:         string(t.Status),
		Priority:       t.Priority,
		TagsJSON:       t.TagsJSON,
		Metadata:       metadataText(t.Metadata),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m mongoTask) model() *model.Task {
	return &model.Task{
		ID:             m.ID,
		ExternalSource: m.ExternalSource,
		ExternalID:     m.ExternalID,
		Title:          m.Title,
		Description:    m.Description,
		CustomerID:     m.CustomerID,
		Customer:       m.Customer,
		TaskType:       m.TaskType,
		Status:         model.TaskStatus(m.Status),
		Priority:       m.Priority,
		TagsJSON:       m.TagsJSON,
		Metadata:       metadataRaw(m.Metadata),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type mongoTaskRepository struct {
	coll *mongo.Collection
}

// NewMongoTaskRepository builds mongo TaskRepository
func NewMongoTaskRepository(db *mongo.Database) TaskRepository {
	return &mongoTaskRepository{coll: db.Collection(tasksCollection)}
}

func (r *mongoTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var doc mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *mongoTaskRepository) FindAll(ctx context.Context) ([]*model.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]*model.Task, 0)
	for cursor.Next(ctx) {
		var doc mongoTask
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, doc.model())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *mongoTaskRepository) Create(ctx context.Context, t *model.Task) error {
	if _, err := r.coll.InsertOne(ctx, toMongoTask(t)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflictErr(fmt.Sprintf("task %s already exists", t.ID), err)
		}
		return err
	}
	return nil
}

func (r *mongoTaskRepository) Update(ctx context.Context, id string, ch model.TaskChanges, at time.Time) (*model.Task, error) {
	set := changeSet(ch)
	set["updatedAt"] = at

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoTask
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.model(), nil
}

// UpsertByExternalKey sets supplied fields, defaults of the rest are written only when the document is inserted
func (r *mongoTaskRepository) UpsertByExternalKey(ctx context.Context, key model.AgentTaskKey, id string, ch model.TaskChanges, at time.Time) (*model.Task, error) {
	fresh := model.NewTask(id, model.TaskChanges{}, at)
	defaults := toMongoTask(&fresh)

	set := changeSet(ch)
	set["updatedAt"] = at

	onInsert := bson.M{"_id": defaults.ID, "createdAt": defaults.CreatedAt}
	fallbacks := bson.M{
		"title":       defaults.Title,
		"description": defaults.Description,
		"customerId":  defaults.CustomerID,
		"customer":    defaults.Customer,
		"taskType":    defaults.TaskType,
		"status":      defaults.Status,
		"priority":    defaults.Priority,
		"tagsJson":    defaults.TagsJSON,
		"metadata":    defaults.Metadata,
	}
	for field, v := range fallbacks {
		if _, ok := set[field]; !ok {
			onInsert[field] = v
		}
	}

	filter := bson.M{"externalSource": key.Source, "externalId": key.ExternalID}
	update := bson.M{"$set": set, "$setOnInsert": onInsert}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc mongoTask
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictErr(fmt.Sprintf("task %s/%s was concurrently modified", key.Source, key.ExternalID), err)
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *mongoTaskRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoTaskRepository) UnlinkCustomer(ctx context.Context, customerID string) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"customerId": customerID}, bson.M{"$set": bson.M{"customerId": nil}})
	return err
}

func (r *mongoTaskRepository) CountByCustomerAndStatus(ctx context.Context) ([]model.TaskCountGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customerId": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"customerId": "$customerId", "status": "$status"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := make([]model.TaskCountGroup, 0)
	for cursor.Next(ctx) {
		var doc struct {
			ID struct {
				CustomerID string `bson:"customerId"`
				Status     string `bson:"status"`
			} `bson:"_id"`
			Count int `bson:"count"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		groups = append(groups, model.TaskCountGroup{
			CustomerID: doc.ID.CustomerID,
			Status:     model.TaskStatus(doc.ID.Status),
			Count:      doc.Count,
		})
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// changeSet maps supplied changes to document fields, explicit nulls are stored as null
func changeSet(ch model.TaskChanges) bson.M {
	set := bson.M{}
	if ch.Title != nil {
		set["title"] = *ch.Title
	}
	if ch.Description.Set {
		set["description"] = ch.Description.Ptr()
	}
	if ch.CustomerID.Set {
		set["customerId"] = ch.CustomerID.Ptr()
	}
	if ch.Customer.Set {
		set["customer"] = ch.Customer.Ptr()
	}
	if ch.TaskType.Set {
		set["taskType"] = ch.TaskType.Ptr()
	}
	if ch.Status != nil {
		set["status"] = string(*ch.Status)
	}
	if ch.Priority != nil {
		set["priority"] = *ch.Priority
	}
	if ch.Tags != nil {
		set["tagsJson"] = model.EncodeTags(*ch.Tags)
	}
	if ch.Metadata != nil {
		set["metadata"] = string(ch.Metadata)
	}
	return set
}
