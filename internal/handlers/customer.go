package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/service"
)

type newCustomer struct {
	Name     string          `json:"name" validate:"max=200"`
	Notes    *string         `json:"notes"`
	Metadata json.RawMessage `json:"metadata" swaggertype:"object"`
}

type updateCustomer struct {
	ID       string                 `param:"id" json:"-" validate:"required,uuid"`
	Name     *string                `json:"name" validate:"omitempty,max=200"`
	Notes    model.Nullable[string] `json:"notes" swaggertype:"string"`
	Metadata json.RawMessage        `json:"metadata" swaggertype:"object"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id     path     string true "Customer guid" Format(uuid)
// @Success     200    {object} model.Customer
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers ordered by name with task counts per status
// @Tags        customers
// @Produce     json
// @Success     200    {array}  model.CustomerView
// @Failure     500    {object} errorBody
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer, name is normalized and must be unique
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       newCustomer body     newCustomer true "Data for new customer"
// @Success     201         {object} model.Customer
// @Failure     400         {object} validation.PayloadError
// @Failure     409         {object} errorBody
// @Failure     500         {object} errorBody
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), &model.Customer{
		Name:     nc.Name,
		Notes:    nc.Notes,
		Metadata: nc.Metadata,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Patch updates customer
// @Summary     Update customer
// @Description Overwrites supplied fields, blank name is ignored
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id             path     string         true "Customer guid" Format(uuid)
// @Param       updateCustomer body     updateCustomer true "Customer fields"
// @Success     200            {object} model.Customer
// @Failure     400            {object} validation.PayloadError
// @Failure     404            {object} errorBody
// @Failure     409            {object} errorBody
// @Failure     500            {object} errorBody
// @Router      /api/customers/{id} [patch]
func (h *CustomerHTTPHandler) Patch(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), uc.ID, model.CustomerPatch{
		Name:     uc.Name,
		Notes:    uc.Notes,
		Metadata: uc.Metadata,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer, its tasks are kept and unlinked
// @Tags        customers
// @Produce     json
// @Param       id     path     string true "Customer guid" Format(uuid)
// @Success     200    {object} okBody
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &okBody{Ok: true})
}
