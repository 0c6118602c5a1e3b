package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/taskdesk/internal/draft"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	rpsMocks "github.com/umalmyha/taskdesk/internal/repository/mocks"
)

type draftServiceTestSuite struct {
	suite.Suite
	draftSvc        DraftService
	taskRpsMock     *rpsMocks.TaskRepository
	customerRpsMock *rpsMocks.CustomerRepository
	draftRpsMock    *rpsMocks.EmailDraftRepository
	ctx             context.Context
}

func (s *draftServiceTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()
	s.taskRpsMock = rpsMocks.NewTaskRepository(t)
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.draftRpsMock = rpsMocks.NewEmailDraftRepository(t)

	svc := NewDraftService(passthroughTransactor(t), s.taskRpsMock, s.customerRpsMock, s.draftRpsMock)
	svc.(*draftService).now = fixedNow
	s.draftSvc = svc
}

func (s *draftServiceTestSuite) TestGenerateUsesTaskCustomerText() {
	task := &model.Task{ID: "0d7f5c1e-4b3a-4e8d-9f2a-6c1b0e9d8a7f", Title: "Fix login", Customer: strPtr("Acme"), TagsJSON: "[]"}

	var stored *model.EmailDraft
	s.taskRpsMock.On("FindByID", s.ctx, task.ID).Return(task, nil).Once()
	s.draftRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.EmailDraft")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.EmailDraft)
	}).Return(nil).Once()
	s.draftRpsMock.On("FindByTaskID", s.ctx, task.ID).Return(func(context.Context, string) []model.EmailDraft {
		return []model.EmailDraft{*stored}
	}, nil).Once()

	s.T().Log("friendly draft is rendered from task customer text and stored")
	{
		d, v, err := s.draftSvc.Generate(s.ctx, task.ID, "ops@acme.io", nil, draft.ToneFriendly)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Update: Acme — Fix login", d.Subject, "subject must mention customer")
		s.Assert().True(strings.HasPrefix(d.Body, "Hi there,\n\n"), "body must start with friendly opener")
		s.Assert().Equal(testNow, d.CreatedAt)
		s.Require().NotNil(v.EmailDrafts, "refreshed task must carry drafts")
		s.Assert().Len(*v.EmailDrafts, 1)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	}
}

func (s *draftServiceTestSuite) TestGenerateFallsBackToLinkedCustomer() {
	customerID := "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	task := &model.Task{ID: "0d7f5c1e-4b3a-4e8d-9f2a-6c1b0e9d8a7f", Title: "Fix login", CustomerID: &customerID, TagsJSON: "[]"}

	s.taskRpsMock.On("FindByID", s.ctx, task.ID).Return(task, nil).Once()
	s.customerRpsMock.On("FindByID", s.ctx, customerID).Return(&model.Customer{ID: customerID, Name: "Globex"}, nil).Once()
	s.draftRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.EmailDraft")).Return(nil).Once()
	s.draftRpsMock.On("FindByTaskID", s.ctx, task.ID).Return([]model.EmailDraft{}, nil).Once()

	s.T().Log("linked customer name is used when task has no customer text")
	{
		d, _, err := s.draftSvc.Generate(s.ctx, task.ID, "ops@globex.io", strPtr("cc@globex.io"), draft.ToneNeutral)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Update: Globex — Fix login", d.Subject, "linked customer must be used")
		s.Assert().Equal("cc@globex.io", *d.Cc)
	}
}

func (s *draftServiceTestSuite) TestGenerateTaskNotFound() {
	taskID := "0d7f5c1e-4b3a-4e8d-9f2a-6c1b0e9d8a7f"
	s.taskRpsMock.On("FindByID", s.ctx, taskID).Return(nil, nil).Once()

	s.T().Log("draft for missing task raises not found")
	{
		_, _, err := s.draftSvc.Generate(s.ctx, taskID, "ops@acme.io", nil, draft.ToneNeutral)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.draftRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *draftServiceTestSuite) TestListTaskNotFound() {
	taskID := "0d7f5c1e-4b3a-4e8d-9f2a-6c1b0e9d8a7f"
	s.taskRpsMock.On("FindByID", s.ctx, taskID).Return(nil, nil).Once()

	s.T().Log("listing drafts of missing task raises not found")
	{
		_, err := s.draftSvc.List(s.ctx, taskID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

// start draft service test suite
func TestDraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(draftServiceTestSuite))
}
