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

type mongoCustomer struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Notes     *string   `bson:"notes"`
	Metadata  string    `bson:"metadata"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toMongoCustomer(c *model.Customer) mongoCustomer {
	return mongoCustomer{
		ID:        c.ID,
		Name:      c.Name,
		Notes:     c.Notes,
		Metadata:  metadataText(c.Metadata),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m mongoCustomer) model() *model.Customer {
	return &model.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Notes:     m.Notes,
		Metadata:  metadataRaw(m.Metadata),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type mongoCustomerRepository struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepository builds mongo CustomerRepository
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{coll: db.Collection(customersCollection)}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoCustomerRepository) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]*model.Customer, 0)
	for cursor.Next(ctx) {
		var doc mongoCustomer
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		customers = append(customers, doc.model())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.coll.InsertOne(ctx, toMongoCustomer(c)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflictErr(fmt.Sprintf("customer with name %q already exists", c.Name), err)
		}
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) FindOrCreate(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": bson.M{
		"_id":       c.ID,
		"notes":     c.Notes,
		"metadata":  metadataText(c.Metadata),
		"createdAt": c.CreatedAt,
		"updatedAt": c.UpdatedAt,
	}}

	var doc mongoCustomer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"name": c.Name}, update, opts).Decode(&doc)
	if err == nil {
		return doc.model(), nil
	}

	// lost insert race, the winner is visible now
	if mongo.IsDuplicateKeyError(err) {
		existing, err := r.FindByName(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("customer %q neither inserted nor found", c.Name)
		}
		return existing, nil
	}
	return nil, err
}

// Update sets supplied fields only, nil is returned if customer doesn't exist
func (r *mongoCustomerRepository) Update(ctx context.Context, id string, p model.CustomerPatch, at time.Time) (*model.Customer, error) {
	set := bson.M{"updatedAt": at}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Notes.Set {
		set["notes"] = p.Notes.Ptr()
	}
	if p.Metadata != nil {
		set["metadata"] = metadataText(p.Metadata)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoCustomer
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictErr(fmt.Sprintf("customer with name %q already exists", *p.Name), err)
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoCustomerRepository) findOne(ctx context.Context, filter bson.M) (*model.Customer, error) {
	var doc mongoCustomer
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.model(), nil
}
