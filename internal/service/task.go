package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/repository"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

// TaskService manages tasks
type TaskService interface {
	UpsertAgentTask(context.Context, model.AgentTaskKey, model.TaskChanges) (*model.TaskView, error)
	Create(context.Context, model.TaskChanges) (*model.TaskView, error)
	Update(context.Context, string, model.TaskChanges) (*model.TaskView, error)
	FindByID(context.Context, string) (*model.TaskView, error)
	FindAll(context.Context) ([]*model.TaskView, error)
	DeleteByID(context.Context, string) error
}

type taskService struct {
	trx         transactor.Transactor
	customerSvc CustomerService
	taskRepo    repository.TaskRepository
	draftRepo   repository.EmailDraftRepository
	now         func() time.Time
}

// NewTaskService builds TaskService
func NewTaskService(
	trx transactor.Transactor,
	customerSvc CustomerService,
	taskRepo repository.TaskRepository,
	draftRepo repository.EmailDraftRepository,
) TaskService {
	return &taskService{
		trx:         trx,
		customerSvc: customerSvc,
		taskRepo:    taskRepo,
		draftRepo:   draftRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// UpsertAgentTask creates task for external key or overwrites supplied fields of the existing one
func (s *taskService) UpsertAgentTask(ctx context.Context, key model.AgentTaskKey, ch model.TaskChanges) (*model.TaskView, error) {
	var task *model.Task

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		linked, err := s.linkCustomer(ctx, ch)
		if err != nil {
			return err
		}

		task, err = s.taskRepo.UpsertByExternalKey(ctx, key, uuid.NewString(), linked, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	v := model.SerializeTask(*task, nil)
	return &v, nil
}

func (s *taskService) Create(ctx context.Context, ch model.TaskChanges) (*model.TaskView, error) {
	var task model.Task

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		linked, err := s.linkCustomer(ctx, ch)
		if err != nil {
			return err
		}

		task = model.NewTask(uuid.NewString(), linked, s.now())
		return s.taskRepo.Create(ctx, &task)
	})
	if err != nil {
		return nil, err
	}

	v := model.SerializeTask(task, nil)
	return &v, nil
}

// Update merges supplied fields. Supplying customer text without customerId relinks the task
// to the customer resolved from that text.
func (s *taskService) Update(ctx context.Context, id string, ch model.TaskChanges) (*model.TaskView, error) {
	var task *model.Task

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		linked, err := s.linkCustomer(ctx, ch)
		if err != nil {
			return err
		}

		task, err = s.taskRepo.Update(ctx, id, linked, s.now())
		if err != nil {
			return err
		}

		if task == nil {
			return apperrors.NewEntryNotFoundErr("task", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	v := model.SerializeTask(*task, nil)
	return &v, nil
}

// FindByID returns task with its email drafts, newest first
func (s *taskService) FindByID(ctx context.Context, id string) (*model.TaskView, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, apperrors.NewEntryNotFoundErr("task", id)
	}

	drafts, err := s.draftRepo.FindByTaskID(ctx, id)
	if err != nil {
		return nil, err
	}

	if drafts == nil {
		drafts = make([]model.EmailDraft, 0)
	}

	v := model.SerializeTask(*task, drafts)
	return &v, nil
}

// FindAll lists tasks newest first, drafts are not included
func (s *taskService) FindAll(ctx context.Context) ([]*model.TaskView, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.TaskView, 0, len(tasks))
	for _, t := range tasks {
		v := model.SerializeTask(*t, nil)
		views = append(views, &v)
	}
	return views, nil
}

func (s *taskService) DeleteByID(ctx context.Context, id string) error {
	return s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.draftRepo.DeleteByTaskID(ctx, id); err != nil {
			return err
		}

		ok, err := s.taskRepo.DeleteByID(ctx, id)
		if err != nil {
			return err
		}

		if !ok {
			return apperrors.NewEntryNotFoundErr("task", id)
		}
		return nil
	})
}

// linkCustomer settles customerId of changes. Explicit customerId wins and must exist,
// otherwise non-blank customer text is resolved to a customer.
func (s *taskService) linkCustomer(ctx context.Context, ch model.TaskChanges) (model.TaskChanges, error) {
	if ch.CustomerID.Set {
		if ch.CustomerID.HasValue() {
			if _, err := s.customerSvc.FindByID(ctx, ch.CustomerID.Value); err != nil {
				return ch, err
			}
		}
		return ch, nil
	}

	if !ch.Customer.HasValue() {
		return ch, nil
	}

	c, err := s.customerSvc.ResolveCustomer(ctx, ch.Customer.Value)
	if err != nil {
		return ch, err
	}

	if c != nil {
		ch.CustomerID = model.NullableOf(c.ID)
	}
	return ch, nil
}
