package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	rpsMocks "github.com/umalmyha/taskdesk/internal/repository/mocks"
	svcMocks "github.com/umalmyha/taskdesk/internal/service/mocks"
)

type taskTestData struct {
	ctx      context.Context
	task     *model.Task
	customer *model.Customer
	key      model.AgentTaskKey
}

type taskServiceTestSuite struct {
	suite.Suite
	taskSvc         TaskService
	customerSvcMock *svcMocks.CustomerService
	taskRpsMock     *rpsMocks.TaskRepository
	draftRpsMock    *rpsMocks.EmailDraftRepository
	testData        *taskTestData
}

func (s *taskServiceTestSuite) SetupSuite() {
	customer := &model.Customer{ID: "5a0f1b64-3e1c-4cb7-b1f4-98b8a1f8f0c2", Name: "Acme"}

	s.testData = &taskTestData{
		ctx:      context.Background(),
		customer: customer,
		key:      model.AgentTaskKey{Source: "crm", ExternalID: "T-100"},
		task: &model.Task{
			ID:             "7d8b2c3a-1f4e-4b8a-9c6d-2e5f7a9b1c3d",
			ExternalSource: strPtr("crm"),
			ExternalID:     strPtr("T-100"),
			Title:          "Fix login",
			CustomerID:     &customer.ID,
			Customer:       strPtr("Acme"),
			Status:         model.TaskStatusTodo,
			Priority:       model.DefaultTaskPriority,
			TagsJSON:       `["auth","web"]`,
			Metadata:       json.RawMessage(`{}`),
			CreatedAt:      testNow,
			UpdatedAt:      testNow,
		},
	}
}

func (s *taskServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerSvcMock = svcMocks.NewCustomerService(t)
	s.taskRpsMock = rpsMocks.NewTaskRepository(t)
	s.draftRpsMock = rpsMocks.NewEmailDraftRepository(t)

	svc := NewTaskService(passthroughTransactor(t), s.customerSvcMock, s.taskRpsMock, s.draftRpsMock)
	svc.(*taskService).now = fixedNow
	s.taskSvc = svc
}

func (s *taskServiceTestSuite) TestUpsertResolvesCustomerByName() {
	ctx := s.testData.ctx
	task := s.testData.task
	customer := s.testData.customer
	key := s.testData.key

	ch := model.TaskChanges{Title: strPtr("Fix login"), Customer: model.NullableOf("  Acme ")}

	linked := mock.MatchedBy(func(ch model.TaskChanges) bool {
		return ch.CustomerID.HasValue() && ch.CustomerID.Value == customer.ID
	})

	s.customerSvcMock.On("ResolveCustomer", ctx, "  Acme ").Return(customer, nil).Once()
	s.taskRpsMock.On("UpsertByExternalKey", ctx, key, mock.AnythingOfType("string"), linked, testNow).Return(task, nil).Once()

	s.T().Log("customer text is resolved to customer link")
	{
		v, err := s.taskSvc.UpsertAgentTask(ctx, key, ch)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal([]string{"auth", "web"}, v.Tags, "tags must be decoded")
		s.Assert().Nil(v.EmailDrafts, "upsert result must not carry drafts")
	}
}

func (s *taskServiceTestSuite) TestUpsertExplicitCustomerIDWins() {
	ctx := s.testData.ctx
	task := s.testData.task
	customer := s.testData.customer
	key := s.testData.key

	ch := model.TaskChanges{
		Title:      strPtr("Fix login"),
		CustomerID: model.NullableOf(customer.ID),
		Customer:   model.NullableOf("Someone Else"),
	}

	s.customerSvcMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.taskRpsMock.On("UpsertByExternalKey", ctx, key, mock.AnythingOfType("string"), ch, testNow).Return(task, nil).Once()

	s.T().Log("explicit customer id takes precedence over customer text")
	{
		_, err := s.taskSvc.UpsertAgentTask(ctx, key, ch)
		s.Require().NoError(err, "no error must be raised")
		s.customerSvcMock.AssertNotCalled(s.T(), "ResolveCustomer", mock.Anything, mock.Anything)
	}
}

func (s *taskServiceTestSuite) TestUpsertUnknownCustomerID() {
	ctx := s.testData.ctx
	key := s.testData.key
	missingID := "f1e2d3c4-b5a6-4978-8695-a4b3c2d1e0f9"

	ch := model.TaskChanges{Title: strPtr("Fix login"), CustomerID: model.NullableOf(missingID)}

	s.customerSvcMock.On("FindByID", ctx, missingID).Return(nil, apperrors.NewEntryNotFoundErr("customer", missingID)).Once()

	s.T().Log("unknown customer id is reported as not found")
	{
		_, err := s.taskSvc.UpsertAgentTask(ctx, key, ch)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.taskRpsMock.AssertNotCalled(s.T(), "UpsertByExternalKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *taskServiceTestSuite) TestCreateAppliesDefaults() {
	ctx := s.testData.ctx

	ch := model.TaskChanges{Title: strPtr("Write docs"), Tags: &[]string{" docs ", "", "q3"}}

	s.taskRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil).Once()

	s.T().Log("created task gets defaults and cleaned tags")
	{
		v, err := s.taskSvc.Create(ctx, ch)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(model.TaskStatusTodo, v.Status, "status must default to TODO")
		s.Assert().Equal(model.DefaultTaskPriority, v.Priority, "priority must default")
		s.Assert().Equal([]string{"docs", "q3"}, v.Tags, "tags must be trimmed and filtered")
		s.Assert().JSONEq("{}", string(v.Metadata), "metadata must default to empty object")
		s.Assert().Nil(v.CustomerID, "no customer must be linked")
	}
}

func (s *taskServiceTestSuite) TestUpdateRelinksOnCustomerText() {
	ctx := s.testData.ctx
	task := s.testData.task
	other := &model.Customer{ID: "c3d4e5f6-a7b8-4c9d-8e0f-1a2b3c4d5e6f", Name: "Globex"}

	ch := model.TaskChanges{Customer: model.NullableOf("Globex")}

	relinked := *task
	relinked.CustomerID = &other.ID
	relinked.Customer = strPtr("Globex")

	toOther := mock.MatchedBy(func(ch model.TaskChanges) bool {
		return ch.CustomerID.HasValue() && ch.CustomerID.Value == other.ID
	})

	s.customerSvcMock.On("ResolveCustomer", ctx, "Globex").Return(other, nil).Once()
	s.taskRpsMock.On("Update", ctx, task.ID, toOther, testNow).Return(&relinked, nil).Once()

	s.T().Log("editing customer text relinks task")
	{
		v, err := s.taskSvc.Update(ctx, task.ID, ch)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(other.ID, *v.CustomerID, "task must be linked to resolved customer")
	}
}

func (s *taskServiceTestSuite) TestUpdateNullCustomerIDUnlinks() {
	ctx := s.testData.ctx
	task := s.testData.task

	ch := model.TaskChanges{CustomerID: model.Null[string](), Customer: model.NullableOf("Globex")}

	unlinked := *task
	unlinked.CustomerID = nil

	s.taskRpsMock.On("Update", ctx, task.ID, ch, testNow).Return(&unlinked, nil).Once()

	s.T().Log("explicit null customer id unlinks without resolving text")
	{
		v, err := s.taskSvc.Update(ctx, task.ID, ch)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Nil(v.CustomerID, "customer link must be cleared")
		s.customerSvcMock.AssertNotCalled(s.T(), "ResolveCustomer", mock.Anything, mock.Anything)
	}
}

func (s *taskServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	task := s.testData.task

	ch := model.TaskChanges{Title: strPtr("Renamed")}
	s.taskRpsMock.On("Update", ctx, task.ID, ch, testNow).Return(nil, nil).Once()

	s.T().Log("update of missing task raises not found")
	{
		_, err := s.taskSvc.Update(ctx, task.ID, ch)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *taskServiceTestSuite) TestFindByIDWithDrafts() {
	ctx := s.testData.ctx
	task := s.testData.task

	drafts := []model.EmailDraft{
		{ID: "d2", TaskID: task.ID, To: "a@acme.io", Subject: "Update: Acme — Fix login", CreatedAt: testNow.Add(time.Minute)},
		{ID: "d1", TaskID: task.ID, To: "a@acme.io", Subject: "Update: Acme — Fix login", CreatedAt: testNow},
	}

	s.taskRpsMock.On("FindByID", ctx, task.ID).Return(task, nil).Once()
	s.draftRpsMock.On("FindByTaskID", ctx, task.ID).Return(drafts, nil).Once()

	s.T().Log("single task view nests drafts newest first")
	{
		v, err := s.taskSvc.FindByID(ctx, task.ID)
		s.Require().NoError(err, "no error must be raised")
		s.Require().NotNil(v.EmailDrafts, "drafts must be nested")
		s.Assert().Equal("d2", (*v.EmailDrafts)[0].ID, "newest draft must go first")
	}
}

func (s *taskServiceTestSuite) TestFindAllWithoutDrafts() {
	ctx := s.testData.ctx
	task := s.testData.task

	s.taskRpsMock.On("FindAll", ctx).Return([]*model.Task{task}, nil).Once()

	s.T().Log("task listing doesn't load drafts")
	{
		views, err := s.taskSvc.FindAll(ctx)
		s.Require().NoError(err, "no error must be raised")
		s.Require().Len(views, 1)
		s.Assert().Nil(views[0].EmailDrafts, "drafts must not be nested")
		s.draftRpsMock.AssertNotCalled(s.T(), "FindByTaskID", mock.Anything, mock.Anything)
	}
}

func (s *taskServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	task := s.testData.task

	s.draftRpsMock.On("DeleteByTaskID", ctx, task.ID).Return(nil).Once()
	s.taskRpsMock.On("DeleteByID", ctx, task.ID).Return(false, nil).Once()

	s.T().Log("delete of missing task raises not found")
	{
		err := s.taskSvc.DeleteByID(ctx, task.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

// start task service test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(taskServiceTestSuite))
}
