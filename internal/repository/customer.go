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

const customerColumns = "id, name, notes, metadata, created_at, updated_at"

// CustomerRepository is customers store
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindByName(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) error
	FindOrCreate(context.Context, *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id string, p model.CustomerPatch, at time.Time) (*model.Customer, error)
	DeleteByID(context.Context, string) (bool, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres CustomerRepository
func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1"
	return r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresCustomerRepository) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE name = $1"
	return r.scanOne(r.trx.Executor(ctx).QueryRow(ctx, q, name))
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers ORDER BY name ASC"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := "INSERT INTO customers(" + customerColumns + ") VALUES($1, $2, $3, $4, $5, $6)"

	_, err := r.trx.Executor(ctx).Exec(ctx, q, c.ID, c.Name, c.Notes, jsonbParam(c.Metadata), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictErr(fmt.Sprintf("customer with name %q already exists", c.Name), err)
		}
		return err
	}
	return nil
}

// FindOrCreate inserts customer unless one with the same name exists, in which case the existing one is returned
func (r *postgresCustomerRepository) FindOrCreate(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	q := "INSERT INTO customers(" + customerColumns + ") VALUES($1, $2, $3, $4, $5, $6) ON CONFLICT (name) DO NOTHING RETURNING " + customerColumns

	row := r.trx.Executor(ctx).QueryRow(ctx, q, c.ID, c.Name, c.Notes, jsonbParam(c.Metadata), c.CreatedAt, c.UpdatedAt)
	created, err := r.scanOne(row)
	if err != nil {
		return nil, err
	}

	if created != nil {
		return created, nil
	}

	existing, err := r.FindByName(ctx, c.Name)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, fmt.Errorf("customer %q neither inserted nor found", c.Name)
	}
	return existing, nil
}

// Update overwrites supplied fields only, nil is returned if customer doesn't exist
func (r *postgresCustomerRepository) Update(ctx context.Context, id string, p model.CustomerPatch, at time.Time) (*model.Customer, error) {
	q := `UPDATE customers SET
			name = CASE WHEN $1 THEN $2 ELSE name END,
			notes = CASE WHEN $3 THEN $4 ELSE notes END,
			metadata = CASE WHEN $5 THEN $6::jsonb ELSE metadata END,
			updated_at = $7
		  WHERE id = $8
		  RETURNING ` + customerColumns

	row := r.trx.Executor(ctx).QueryRow(ctx, q,
		p.Name != nil, p.Name,
		p.Notes.Set, p.Notes.Ptr(),
		p.Metadata != nil, jsonbParam(p.Metadata),
		at, id,
	)

	c, err := r.scanOne(row)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, apperrors.NewConflictErr(fmt.Sprintf("customer with name %q already exists", *p.Name), err)
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM customers WHERE id = $1"

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) scanOne(row pgx.Row) (*model.Customer, error) {
	c, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) scan(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var metadata pgtype.JSONB

	if err := row.Scan(&c.ID, &c.Name, &c.Notes, &metadata, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Metadata = jsonbValue(metadata)

	return &c, nil
}
