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

type mongoAgent struct {
	ID         string `bson:"_id"`
	Source     string `bson:"source"`
	SecretHash string `bson:"secretHash"`
}

type mongoAgentRepository struct {
	coll *mongo.Collection
}

// NewMongoAgentRepository builds mongo AgentRepository
func NewMongoAgentRepository(db *mongo.Database) AgentRepository {
	return &mongoAgentRepository{coll: db.Collection(agentsCollection)}
}

func (r *mongoAgentRepository) FindBySource(ctx context.Context, source string) (*model.Agent, error) {
	return r.findOne(ctx, bson.M{"source": source})
}

func (r *mongoAgentRepository) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoAgentRepository) Create(ctx context.Context, a *model.Agent) error {
	if _, err := r.coll.InsertOne(ctx, mongoAgent(*a)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflictErr(fmt.Sprintf("agent for source %s already registered", a.Source), err)
		}
		return err
	}
	return nil
}

func (r *mongoAgentRepository) findOne(ctx context.Context, filter bson.M) (*model.Agent, error) {
	var doc mongoAgent
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	a := model.Agent(doc)
	return &a, nil
}

type mongoRefreshToken struct {
	ID          string    `bson:"_id"`
	AgentID     string    `bson:"agentId"`
	Fingerprint string    `bson:"fingerprint"`
	ExpiresIn   int       `bson:"expiresIn"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type mongoRefreshTokenRepository struct {
	coll *mongo.Collection
}

// NewMongoRefreshTokenRepository builds mongo RefreshTokenRepository
func NewMongoRefreshTokenRepository(db *mongo.Database) RefreshTokenRepository {
	return &mongoRefreshTokenRepository{coll: db.Collection(refreshTokensCollection)}
}

func (r *mongoRefreshTokenRepository) Create(ctx context.Context, t *model.RefreshToken) error {
	_, err := r.coll.InsertOne(ctx, mongoRefreshToken(*t))
	return err
}

func (r *mongoRefreshTokenRepository) FindTokensByAgentID(ctx context.Context, agentID string) ([]*model.RefreshToken, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"agentId": agentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tokens := make([]*model.RefreshToken, 0)
	for cursor.Next(ctx) {
		var doc mongoRefreshToken
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		tkn := model.RefreshToken(doc)
		tokens = append(tokens, &tkn)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *mongoRefreshTokenRepository) DeleteByAgentID(ctx context.Context, agentID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"agentId": agentID})
	return err
}

func (r *mongoRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoRefreshTokenRepository) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	var doc mongoRefreshToken
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	tkn := model.RefreshToken(doc)
	return &tkn, nil
}
