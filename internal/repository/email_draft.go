package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

const emailDraftColumns = `id, task_id, "to", cc, subject, body, created_at`

// EmailDraftRepository is email drafts store
type EmailDraftRepository interface {
	Create(context.Context, *model.EmailDraft) error
	FindByTaskID(context.Context, string) ([]model.EmailDraft, error)
	DeleteByTaskID(context.Context, string) error
}

type postgresEmailDraftRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresEmailDraftRepository builds postgres EmailDraftRepository
func NewPostgresEmailDraftRepository(trx transactor.PgxWithinTransactionExecutor) EmailDraftRepository {
	return &postgresEmailDraftRepository{trx: trx}
}

func (r *postgresEmailDraftRepository) Create(ctx context.Context, d *model.EmailDraft) error {
	q := "INSERT INTO email_drafts(" + emailDraftColumns + ") VALUES($1, $2, $3, $4, $5, $6, $7)"

	_, err := r.trx.Executor(ctx).Exec(ctx, q, d.ID, d.TaskID, d.To, d.Cc, d.Subject, d.Body, d.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewEntryNotFoundErr("task", d.TaskID)
		}
		return err
	}
	return nil
}

// FindByTaskID returns drafts of the task, newest first
func (r *postgresEmailDraftRepository) FindByTaskID(ctx context.Context, taskID string) ([]model.EmailDraft, error) {
	q := "SELECT " + emailDraftColumns + " FROM email_drafts WHERE task_id = $1 ORDER BY created_at DESC"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := make([]model.EmailDraft, 0)
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *postgresEmailDraftRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	q := "DELETE FROM email_drafts WHERE task_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, taskID); err != nil {
		return err
	}
	return nil
}

func (r *postgresEmailDraftRepository) scan(row pgx.Row) (model.EmailDraft, error) {
	var d model.EmailDraft
	err := row.Scan(&d.ID, &d.TaskID, &d.To, &d.Cc, &d.Subject, &d.Body, &d.CreatedAt)
	return d, err
}
