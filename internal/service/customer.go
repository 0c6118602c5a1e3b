package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/repository"
	"github.com/umalmyha/taskdesk/internal/validation"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

var emptyMetadata = json.RawMessage(`{}`)

// CustomerService manages customers and customer identity resolution
type CustomerService interface {
	ResolveCustomer(context.Context, string) (*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.CustomerView, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, string, model.CustomerPatch) (*model.Customer, error)
	DeleteByID(context.Context, string) error
	CountTasksByCustomer(context.Context) (map[string]model.TaskCounts, error)
}

type customerService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	taskRepo     repository.TaskRepository
	now          func() time.Time
}

// NewCustomerService builds CustomerService
func NewCustomerService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	taskRepo repository.TaskRepository,
) CustomerService {
	return &customerService{
		trx:          trx,
		customerRepo: customerRepo,
		taskRepo:     taskRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ResolveCustomer finds customer by normalized name or creates it. Blank name resolves to nothing.
func (s *customerService) ResolveCustomer(ctx context.Context, name string) (*model.Customer, error) {
	normalized := model.NormalizeCustomerName(name)
	if normalized == "" {
		return nil, nil
	}

	now := s.now()
	c := &model.Customer{
		ID:        uuid.NewString(),
		Name:      normalized,
		Metadata:  emptyMetadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.customerRepo.FindOrCreate(ctx, c)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("customer", id)
	}
	return c, nil
}

// FindAll lists customers by name, each with its task counts
func (s *customerService) FindAll(ctx context.Context) ([]*model.CustomerView, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.CountTasksByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, &model.CustomerView{Customer: *c, TaskCounts: counts[c.ID]})
	}
	return views, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	name := model.NormalizeCustomerName(c.Name)
	if name == "" {
		return nil, validation.NewPayloadError("name", "name must not be blank")
	}

	now := s.now()
	created := &model.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Notes:     c.Notes,
		Metadata:  c.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if created.Metadata == nil {
		created.Metadata = emptyMetadata
	}

	if err := s.customerRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies patch, blank name is ignored. Fields absent from patch are never written.
func (s *customerService) Update(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	if patch.Name != nil {
		name := model.NormalizeCustomerName(*patch.Name)
		if name == "" {
			patch.Name = nil
		} else {
			patch.Name = &name
		}
	}

	updated, err := s.customerRepo.Update(ctx, id, patch, s.now())
	if err != nil {
		return nil, err
	}

	if updated == nil {
		return nil, apperrors.NewEntryNotFoundErr("customer", id)
	}
	return updated, nil
}

// DeleteByID removes customer, its tasks stay but lose the link
func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	return s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.UnlinkCustomer(ctx, id); err != nil {
			return err
		}

		ok, err := s.customerRepo.DeleteByID(ctx, id)
		if err != nil {
			return err
		}

		if !ok {
			return apperrors.NewEntryNotFoundErr("customer", id)
		}
		return nil
	})
}

func (s *customerService) CountTasksByCustomer(ctx context.Context) (map[string]model.TaskCounts, error) {
	groups, err := s.taskRepo.CountByCustomerAndStatus(ctx)
	if err != nil {
		return nil, err
	}
	return model.FoldTaskCounts(groups), nil
}
