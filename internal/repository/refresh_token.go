package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

const refreshTokenColumns = "id, agent_id, fingerprint, expires_in, created_at"

// RefreshTokenRepository is agent refresh tokens store
type RefreshTokenRepository interface {
	Create(context.Context, *model.RefreshToken) error
	FindTokensByAgentID(context.Context, string) ([]*model.RefreshToken, error)
	DeleteByAgentID(context.Context, string) error
	DeleteByID(context.Context, string) error
	FindByID(context.Context, string) (*model.RefreshToken, error)
}

type postgresRefreshTokenRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresRefreshTokenRepository builds postgres RefreshTokenRepository
func NewPostgresRefreshTokenRepository(trx transactor.PgxWithinTransactionExecutor) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{trx: trx}
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, t *model.RefreshToken) error {
	q := "INSERT INTO refresh_tokens(" + refreshTokenColumns + ") VALUES($1, $2, $3, $4, $5)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, t.ID, t.AgentID, t.Fingerprint, t.ExpiresIn, t.CreatedAt); err != nil {
		return err
	}
	return nil
}

// FindTokensByAgentID returns agent tokens, oldest first
func (r *postgresRefreshTokenRepository) FindTokensByAgentID(ctx context.Context, agentID string) ([]*model.RefreshToken, error) {
	q := "SELECT " + refreshTokenColumns + " FROM refresh_tokens WHERE agent_id = $1 ORDER BY created_at ASC"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]*model.RefreshToken, 0)
	for rows.Next() {
		var tkn model.RefreshToken
		if err := rows.Scan(&tkn.ID, &tkn.AgentID, &tkn.Fingerprint, &tkn.ExpiresIn, &tkn.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, &tkn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

func (r *postgresRefreshTokenRepository) DeleteByAgentID(ctx context.Context, agentID string) error {
	q := "DELETE FROM refresh_tokens WHERE agent_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, agentID); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM refresh_tokens WHERE id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	q := "SELECT " + refreshTokenColumns + " FROM refresh_tokens WHERE id = $1"

	var tkn model.RefreshToken
	err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&tkn.ID, &tkn.AgentID, &tkn.Fingerprint, &tkn.ExpiresIn, &tkn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tkn, nil
}
