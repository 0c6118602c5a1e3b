package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/taskdesk/internal/draft"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/repository"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

// DraftService generates and stores email drafts of tasks
type DraftService interface {
	Generate(ctx context.Context, taskID, to string, cc *string, tone draft.Tone) (*model.EmailDraft, *model.TaskView, error)
	List(context.Context, string) ([]model.EmailDraft, error)
}

type draftService struct {
	trx          transactor.Transactor
	taskRepo     repository.TaskRepository
	customerRepo repository.CustomerRepository
	draftRepo    repository.EmailDraftRepository
	now          func() time.Time
}

// NewDraftService builds DraftService
func NewDraftService(
	trx transactor.Transactor,
	taskRepo repository.TaskRepository,
	customerRepo repository.CustomerRepository,
	draftRepo repository.EmailDraftRepository,
) DraftService {
	return &draftService{
		trx:          trx,
		taskRepo:     taskRepo,
		customerRepo: customerRepo,
		draftRepo:    draftRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Generate renders draft for task, stores it and returns it with refreshed task
func (s *draftService) Generate(ctx context.Context, taskID, to string, cc *string, tone draft.Tone) (*model.EmailDraft, *model.TaskView, error) {
	var created *model.EmailDraft
	var view *model.TaskView

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.findTask(ctx, taskID)
		if err != nil {
			return err
		}

		customerName, err := s.customerName(ctx, task)
		if err != nil {
			return err
		}

		d := draft.Build(draft.Params{
			Title:        task.Title,
			Description:  draft.Deref(task.Description),
			CustomerName: customerName,
			TaskType:     draft.Deref(task.TaskType),
			Tone:         tone,
		})

		created = &model.EmailDraft{
			ID:        uuid.NewString(),
			TaskID:    task.ID,
			To:        to,
			Cc:        cc,
			Subject:   d.Subject,
			Body:      d.Body,
			CreatedAt: s.now(),
		}

		if err := s.draftRepo.Create(ctx, created); err != nil {
			return err
		}

		drafts, err := s.draftRepo.FindByTaskID(ctx, task.ID)
		if err != nil {
			return err
		}

		v := model.SerializeTask(*task, drafts)
		view = &v
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, view, nil
}

// List returns task drafts, newest first
func (s *draftService) List(ctx context.Context, taskID string) ([]model.EmailDraft, error) {
	if _, err := s.findTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.draftRepo.FindByTaskID(ctx, taskID)
}

func (s *draftService) findTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, apperrors.NewEntryNotFoundErr("task", id)
	}
	return task, nil
}

// customerName prefers task free text and falls back to the linked customer
func (s *draftService) customerName(ctx context.Context, task *model.Task) (string, error) {
	if name := draft.Deref(task.Customer); name != "" {
		return name, nil
	}

	if task.CustomerID == nil {
		return "", nil
	}

	c, err := s.customerRepo.FindByID(ctx, *task.CustomerID)
	if err != nil {
		return "", err
	}

	if c == nil {
		return "", nil
	}
	return c.Name, nil
}
