package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

const taskColumns = "id, external_source, external_id, title, description, customer_id, customer, task_type, status, priority, tags_json, metadata, created_at, updated_at"

// TaskRepository is tasks store
type TaskRepository interface {
	FindByID(context.Context, string) (*model.Task, error)
	FindAll(context.Context) ([]*model.Task, error)
	Create(context.Context, *model.Task) error
	Update(ctx context.Context, id string, ch model.TaskChanges, at time.Time) (*model.Task, error)
	UpsertByExternalKey(ctx context.Context, key model.AgentTaskKey, id string, ch model.TaskChanges, at time.Time) (*model.Task, error)
	DeleteByID(context.Context, string) (bool, error)
	UnlinkCustomer(context.Context, string) error
	CountByCustomerAndStatus(context.Context) ([]model.TaskCountGroup, error)
}

type postgresTaskRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresTaskRepository builds postgres TaskRepository
func NewPostgresTaskRepository(trx transactor.PgxWithinTransactionExecutor) TaskRepository {
	return &postgresTaskRepository{trx: trx}
}

func (r *postgresTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	q := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"
	return r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresTaskRepository) FindAll(ctx context.Context) ([]*model.Task, error) {
	q := "SELECT " + taskColumns + " FROM tasks ORDER BY created_at DESC"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*model.Task, 0)
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *postgresTaskRepository) Create(ctx context.Context, t *model.Task) error {
	q := "INSERT INTO tasks(" + taskColumns + ") VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)"

	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		t.ID, t.ExternalSource, t.ExternalID, t.Title, t.Description, t.CustomerID, t.Customer, t.TaskType,
		string(t.Status), t.Priority, t.TagsJSON, jsonbParam(t.Metadata), t.CreatedAt, t.UpdatedAt,
	)
	return r.mapWriteErr(err, t.CustomerID)
}

// Update overwrites supplied fields only, nil is returned if task doesn't exist
func (r *postgresTaskRepository) Update(ctx context.Context, id string, ch model.TaskChanges, at time.Time) (*model.Task, error) {
	q := `UPDATE tasks SET
			title = CASE WHEN $1 THEN $2 ELSE title END,
			description = CASE WHEN $3 THEN $4 ELSE description END,
			customer_id = CASE WHEN $5 THEN $6::uuid ELSE customer_id END,
			customer = CASE WHEN $7 THEN $8 ELSE customer END,
			task_type = CASE WHEN $9 THEN $10 ELSE task_type END,
			status = CASE WHEN $11 THEN $12 ELSE status END,
			priority = CASE WHEN $13 THEN $14::smallint ELSE priority END,
			tags_json = CASE WHEN $15 THEN $16 ELSE tags_json END,
			metadata = CASE WHEN $17 THEN $18::jsonb ELSE metadata END,
			updated_at = $19
		  WHERE id = $20
		  RETURNING ` + taskColumns

	args := append(changeArgs(ch), at, id)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, args...)

	t, err := r.scanOne(row)
	if err != nil {
		return nil, r.mapWriteErr(err, ch.CustomerID.Ptr())
	}
	return t, nil
}

// UpsertByExternalKey inserts task for the external key or overwrites supplied fields of the existing one.
// The statement is atomic, concurrent calls for the same key never create two rows.
func (r *postgresTaskRepository) UpsertByExternalKey(ctx context.Context, key model.AgentTaskKey, id string, ch model.TaskChanges, at time.Time) (*model.Task, error) {
	t := model.NewTask(id, ch, at)

	q := `INSERT INTO tasks(` + taskColumns + `)
		  VALUES($19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $31)
		  ON CONFLICT (external_source, external_id) DO UPDATE SET
			title = CASE WHEN $1 THEN $2 ELSE tasks.title END,
			description = CASE WHEN $3 THEN $4 ELSE tasks.description END,
			customer_id = CASE WHEN $5 THEN $6::uuid ELSE tasks.customer_id END,
			customer = CASE WHEN $7 THEN $8 ELSE tasks.customer END,
			task_type = CASE WHEN $9 THEN $10 ELSE tasks.task_type END,
			status = CASE WHEN $11 THEN $12 ELSE tasks.status END,
			priority = CASE WHEN $13 THEN $14::smallint ELSE tasks.priority END,
			tags_json = CASE WHEN $15 THEN $16 ELSE tasks.tags_json END,
			metadata = CASE WHEN $17 THEN $18::jsonb ELSE tasks.metadata END,
			updated_at = EXCLUDED.updated_at
		  RETURNING ` + taskColumns

	args := append(changeArgs(ch),
		t.ID, key.Source, key.ExternalID, t.Title, t.Description, t.CustomerID, t.Customer, t.TaskType,
		string(t.Status), t.Priority, t.TagsJSON, jsonbParam(t.Metadata), at,
	)

	upserted, err := r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, args...))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, apperrors.NewConflictErr(fmt.Sprintf("task %s/%s was concurrently modified", key.Source, key.ExternalID), err)
		}
		return nil, r.mapWriteErr(err, t.CustomerID)
	}
	return upserted, nil
}

func (r *postgresTaskRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM tasks WHERE id = $1"

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresTaskRepository) UnlinkCustomer(ctx context.Context, customerID string) error {
	q := "UPDATE tasks SET customer_id = NULL WHERE customer_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, customerID); err != nil {
		return err
	}
	return nil
}

func (r *postgresTaskRepository) CountByCustomerAndStatus(ctx context.Context) ([]model.TaskCountGroup, error) {
	q := "SELECT customer_id, status, count(*) FROM tasks WHERE customer_id IS NOT NULL GROUP BY customer_id, status"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]model.TaskCountGroup, 0)
	for rows.Next() {
		var g model.TaskCountGroup
		var status string
		if err := rows.Scan(&g.CustomerID, &status, &g.Count); err != nil {
			return nil, err
		}
		g.Status = model.TaskStatus(status)
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *postgresTaskRepository) mapWriteErr(err error, customerID *string) error {
	if err == nil {
		return nil
	}

	if pgErrorCode(err) == pgForeignKeyViolation && customerID != nil {
		return apperrors.NewEntryNotFoundErr("customer", *customerID)
	}
	return err
}

func (r *postgresTaskRepository) scanOne(row pgx.Row) (*model.Task, error) {
	t, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTaskRepository) scan(row pgx.Row) (*model.Task, error) {
	var t model.Task
	var status string
	var metadata pgtype.JSONB

	err := row.Scan(
		&t.ID, &t.ExternalSource, &t.ExternalID, &t.Title, &t.Description, &t.CustomerID, &t.Customer, &t.TaskType,
		&status, &t.Priority, &t.TagsJSON, &metadata, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = model.TaskStatus(status)
	t.Metadata = jsonbValue(metadata)

	return &t, nil
}

// changeArgs lays supplied changes out as (supplied, value) parameter pairs $1..$18
func changeArgs(ch model.TaskChanges) []any {
	var status *string
	if ch.Status != nil {
		s := string(*ch.Status)
		status = &s
	}

	var tags *string
	if ch.Tags != nil {
		encoded := model.EncodeTags(*ch.Tags)
		tags = &encoded
	}

	return []any{
		ch.Title != nil, ch.Title,
		ch.Description.Set, ch.Description.Ptr(),
		ch.CustomerID.Set, ch.CustomerID.Ptr(),
		ch.Customer.Set, ch.Customer.Ptr(),
		ch.TaskType.Set, ch.TaskType.Ptr(),
		ch.Status != nil, status,
		ch.Priority != nil, ch.Priority,
		ch.Tags != nil, tags,
		ch.Metadata != nil, jsonbParam(ch.Metadata),
	}
}
