package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

// AgentRepository is agents store
type AgentRepository interface {
	FindBySource(context.Context, string) (*model.Agent, error)
	FindByID(context.Context, string) (*model.Agent, error)
	Create(context.Context, *model.Agent) error
}

type postgresAgentRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresAgentRepository builds postgres AgentRepository
func NewPostgresAgentRepository(trx transactor.PgxWithinTransactionExecutor) AgentRepository {
	return &postgresAgentRepository{trx: trx}
}

func (r *postgresAgentRepository) FindBySource(ctx context.Context, source string) (*model.Agent, error) {
	q := "SELECT id, source, secret_hash FROM agents WHERE source = $1"
	return r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, source))
}

func (r *postgresAgentRepository) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	q := "SELECT id, source, secret_hash FROM agents WHERE id = $1"
	return r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresAgentRepository) Create(ctx context.Context, a *model.Agent) error {
	q := "INSERT INTO agents(id, source, secret_hash) VALUES($1, $2, $3)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, a.ID, a.Source, a.SecretHash); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictErr(fmt.Sprintf("agent for source %s already registered", a.Source), err)
		}
		return err
	}
	return nil
}

func (r *postgresAgentRepository) scanOne(row pgx.Row) (*model.Agent, error) {
	var a model.Agent
	if err := row.Scan(&a.ID, &a.Source, &a.SecretHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
