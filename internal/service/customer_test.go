package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/model"
	rpsMocks "github.com/umalmyha/taskdesk/internal/repository/mocks"
	"github.com/umalmyha/taskdesk/internal/validation"
)

type customerTestData struct {
	ctx      context.Context
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc     CustomerService
	customerRpsMock *rpsMocks.CustomerRepository
	taskRpsMock     *rpsMocks.TaskRepository
	testData        *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.testData = &customerTestData{
		ctx: context.Background(),
		customer: &model.Customer{
			ID:        "ecc770d9-4576-4f72-affa-8b1454246692",
			Name:      "Acme Corp",
			Notes:     strPtr("key account"),
			Metadata:  json.RawMessage(`{"tier":"gold"}`),
			CreatedAt: testNow,
			UpdatedAt: testNow,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.taskRpsMock = rpsMocks.NewTaskRepository(t)

	svc := NewCustomerService(passthroughTransactor(t), s.customerRpsMock, s.taskRpsMock)
	svc.(*customerService).now = fixedNow
	s.customerSvc = svc
}

func (s *customerServiceTestSuite) TestResolveBlankName() {
	ctx := s.testData.ctx

	s.T().Log("blank name resolves to no customer without touching store")
	{
		c, err := s.customerSvc.ResolveCustomer(ctx, "   \t ")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(c, "no customer must be resolved")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindOrCreate", mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestResolveNormalizesName() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	byNormalizedName := mock.MatchedBy(func(c *model.Customer) bool {
		return c.Name == "Acme Corp" && string(c.Metadata) == "{}" && c.Notes == nil
	})
	s.customerRpsMock.On("FindOrCreate", ctx, byNormalizedName).Return(customer, nil).Twice()

	s.T().Log("differently spaced names resolve to the same customer")
	{
		first, err := s.customerSvc.ResolveCustomer(ctx, "  Acme   Corp ")
		s.Assert().NoError(err, "no error must be raised")

		second, err := s.customerSvc.ResolveCustomer(ctx, "Acme Corp")
		s.Assert().NoError(err, "no error must be raised")

		s.Assert().Equal(first.ID, second.ID, "both names must resolve to one customer")
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("missing customer raises not found")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *customerServiceTestSuite) TestFindAllZeroFillsCounts() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	idle := &model.Customer{ID: "0b0d5d9e-7a3c-4a43-9d5e-3c1f20e7e0a1", Name: "Idle Ltd"}
	groups := []model.TaskCountGroup{
		{CustomerID: customer.ID, Status: model.TaskStatusTodo, Count: 2},
		{CustomerID: customer.ID, Status: model.TaskStatusDone, Count: 1},
	}

	s.customerRpsMock.On("FindAll", ctx).Return([]*model.Customer{customer, idle}, nil).Once()
	s.taskRpsMock.On("CountByCustomerAndStatus", ctx).Return(groups, nil).Once()

	s.T().Log("every customer gets counts, zero when it has no tasks")
	{
		views, err := s.customerSvc.FindAll(ctx)
		s.Require().NoError(err, "no error must be raised")
		s.Require().Len(views, 2, "both customers must be listed")
		s.Assert().Equal(model.TaskCounts{Total: 3, Todo: 2, Done: 1}, views[0].TaskCounts, "counts are folded incorrectly")
		s.Assert().Equal(model.TaskCounts{}, views[1].TaskCounts, "customer without tasks must have zero counts")
	}
}

func (s *customerServiceTestSuite) TestCreateBlankName() {
	ctx := s.testData.ctx

	s.T().Log("blank name is rejected")
	{
		_, err := s.customerSvc.Create(ctx, &model.Customer{Name: "   "})
		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "payload error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil).Once()

	s.T().Log("customer must be created with normalized name and default metadata")
	{
		c, err := s.customerSvc.Create(ctx, &model.Customer{Name: " Globex  Inc "})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Globex Inc", c.Name, "name must be normalized")
		s.Assert().JSONEq("{}", string(c.Metadata), "metadata must default to empty object")
		s.Assert().Equal(testNow, c.CreatedAt)
	}
}

func (s *customerServiceTestSuite) TestCreateDuplicate() {
	ctx := s.testData.ctx

	conflict := apperrors.NewConflictErr("customer with name \"Acme Corp\" already exists", errors.New("duplicate"))
	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(conflict).Once()

	s.T().Log("duplicate name is reported as conflict")
	{
		_, err := s.customerSvc.Create(ctx, &model.Customer{Name: "Acme Corp"})
		var conflictErr *apperrors.ConflictErr
		s.Assert().ErrorAs(err, &conflictErr, "conflict error must be raised")
	}
}

func (s *customerServiceTestSuite) TestUpdatePatch() {
	ctx := s.testData.ctx
	stored := *s.testData.customer

	cleared := stored
	cleared.Notes = nil
	cleared.UpdatedAt = testNow

	s.T().Log("blank name is not passed to store, null notes clear, absent metadata is not written")
	{
		s.customerRpsMock.On("Update", ctx, stored.ID, mock.MatchedBy(func(p model.CustomerPatch) bool {
			return p.Name == nil && p.Notes.Set && p.Notes.Null && p.Metadata == nil
		}), testNow).Return(&cleared, nil).Once()

		patch := model.CustomerPatch{Name: strPtr("  "), Notes: model.Null[string]()}
		c, err := s.customerSvc.Update(ctx, stored.ID, patch)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Acme Corp", c.Name, "blank name must not override name")
		s.Assert().Nil(c.Notes, "notes must be cleared")
		s.Assert().JSONEq(`{"tier":"gold"}`, string(c.Metadata), "metadata must stay untouched")
	}
}

func (s *customerServiceTestSuite) TestUpdateWritesSuppliedFieldsOnly() {
	ctx := s.testData.ctx
	stored := *s.testData.customer

	renamed := stored
	renamed.Name = "Acme Corporation"
	renamed.Notes = strPtr("vip")

	s.T().Log("name only patch leaves notes and metadata to the store")
	{
		s.customerRpsMock.On("Update", ctx, stored.ID, mock.MatchedBy(func(p model.CustomerPatch) bool {
			return p.Name != nil && *p.Name == "Acme Corporation" && !p.Notes.Set && p.Metadata == nil
		}), testNow).Return(&renamed, nil).Once()

		c, err := s.customerSvc.Update(ctx, stored.ID, model.CustomerPatch{Name: strPtr("  Acme   Corporation ")})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Acme Corporation", c.Name, "name must be normalized")
		s.Assert().Equal("vip", *c.Notes, "notes written by other request must be kept")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Update", ctx, "missing", mock.AnythingOfType("model.CustomerPatch"), testNow).Return(nil, nil).Once()

	s.T().Log("update of missing customer raises not found")
	{
		_, err := s.customerSvc.Update(ctx, "missing", model.CustomerPatch{Notes: model.NullableOf("x")})
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.taskRpsMock.On("UnlinkCustomer", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(false, nil).Once()

	s.T().Log("delete of missing customer raises not found")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDUnlinksTasks() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.taskRpsMock.On("UnlinkCustomer", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()

	s.T().Log("customer tasks lose the link on delete")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.taskRpsMock.AssertCalled(s.T(), "UnlinkCustomer", ctx, customer.ID)
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
