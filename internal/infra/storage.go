package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/taskdesk/internal/repository"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
)

// Storage holds repositories of single store and transactor spanning them
type Storage struct {
	Trx           transactor.Transactor
	Customers     repository.CustomerRepository
	Tasks         repository.TaskRepository
	Drafts        repository.EmailDraftRepository
	Agents        repository.AgentRepository
	RefreshTokens repository.RefreshTokenRepository
}

// PostgresStorage builds repositories backed by postgres pool
func PostgresStorage(pool *pgxpool.Pool) *Storage {
	executor := transactor.NewPgxWithinTransactionExecutor(pool)

	return &Storage{
		Trx:           transactor.NewPgxTransactor(pool),
		Customers:     repository.NewPostgresCustomerRepository(executor),
		Tasks:         repository.NewPostgresTaskRepository(executor),
		Drafts:        repository.NewPostgresEmailDraftRepository(executor),
		Agents:        repository.NewPostgresAgentRepository(executor),
		RefreshTokens: repository.NewPostgresRefreshTokenRepository(executor),
	}
}

// MongoStorage builds repositories backed by mongo database, indexes are created if missing
func MongoStorage(ctx context.Context, client *mongo.Client, database string) (*Storage, error) {
	db := client.Database(database)

	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure mongo indexes - %w", err)
	}

	return &Storage{
		Trx:           transactor.NewMongoTransactor(client),
		Customers:     repository.NewMongoCustomerRepository(db),
		Tasks:         repository.NewMongoTaskRepository(db),
		Drafts:        repository.NewMongoEmailDraftRepository(db),
		Agents:        repository.NewMongoAgentRepository(db),
		RefreshTokens: repository.NewMongoRefreshTokenRepository(db),
	}, nil
}
