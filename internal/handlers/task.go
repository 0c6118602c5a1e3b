package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/middleware"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/service"
)

type taskFields struct {
	Description model.Nullable[string] `json:"description" validate:"omitempty,max=10000" swaggertype:"string"`
	CustomerID  model.Nullable[string] `json:"customerId" validate:"omitempty,uuid" swaggertype:"string"`
	Customer    model.Nullable[string] `json:"customer" validate:"omitempty,min=1,max=200" swaggertype:"string"`
	TaskType    model.Nullable[string] `json:"taskType" validate:"omitempty,min=1,max=120" swaggertype:"string"`
	Status      *model.TaskStatus      `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *int                   `json:"priority" validate:"omitempty,min=1,max=5"`
	Tags        *[]string              `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Metadata    json.RawMessage        `json:"metadata" validate:"omitempty,jsonobject" swaggertype:"object"`
}

func (f *taskFields) changes(title *string) model.TaskChanges {
	return model.TaskChanges{
		Title:       title,
		Description: f.Description,
		CustomerID:  f.CustomerID,
		Customer:    f.Customer,
		TaskType:    f.TaskType,
		Status:      f.Status,
		Priority:    f.Priority,
		Tags:        f.Tags,
		Metadata:    f.Metadata,
	}
}

type agentTask struct {
	Source     string `json:"source" validate:"required,max=100"`
	ExternalID string `json:"externalId" validate:"required,max=200"`
	Title      string `json:"title" validate:"required,max=200"`
	taskFields
}

type newTask struct {
	Title string `json:"title" validate:"required,max=200"`
	taskFields
}

type updateTask struct {
	ID    string  `param:"id" json:"-" validate:"required,uuid"`
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	taskFields
}

// TaskHTTPHandler is http handler for task endpoints
type TaskHTTPHandler struct {
	taskSvc service.TaskService
}

// NewTaskHTTPHandler builds new TaskHTTPHandler
func NewTaskHTTPHandler(taskSvc service.TaskService) *TaskHTTPHandler {
	return &TaskHTTPHandler{taskSvc: taskSvc}
}

// UpsertAgentTask creates or updates task owned by external agent
// @Summary     Upsert agent task
// @Description Creates task for (source, externalId) or overwrites supplied fields of the existing one
// @Tags        agent
// @Security	ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       agentTask body     agentTask true "Agent task"
// @Success     200       {object} model.TaskView
// @Failure     400       {object} validation.PayloadError
// @Failure     401       {object} errorBody
// @Failure     403       {object} errorBody
// @Failure     404       {object} errorBody
// @Failure     409       {object} errorBody
// @Failure     500       {object} errorBody
// @Router      /api/agent/task [post]
func (h *TaskHTTPHandler) UpsertAgentTask(c echo.Context) error {
	var at agentTask
	if err := c.Bind(&at); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&at); err != nil {
		return err
	}

	if claims, ok := middleware.AgentClaims(c); ok && claims.Source() != at.Source {
		return echo.NewHTTPError(http.StatusForbidden, "token is not issued for source "+at.Source)
	}

	key := model.AgentTaskKey{Source: at.Source, ExternalID: at.ExternalID}
	task, err := h.taskSvc.UpsertAgentTask(c.Request().Context(), key, at.changes(&at.Title))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// GetAll gets all tasks
// @Summary     Get all tasks
// @Description Returns all tasks, newest first, without drafts
// @Tags        tasks
// @Produce     json
// @Success     200    {array}  model.TaskView
// @Failure     500    {object} errorBody
// @Router      /api/tasks [get]
func (h *TaskHTTPHandler) GetAll(c echo.Context) error {
	tasks, err := h.taskSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get gets task
// @Summary     Get single task by id
// @Description Returns task with its email drafts
// @Tags        tasks
// @Produce     json
// @Param       id     path     string true "Task guid" Format(uuid)
// @Success     200    {object} model.TaskView
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/tasks/{id} [get]
func (h *TaskHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	task, err := h.taskSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Post creates new task
// @Summary     New task
// @Description Creates new task, customer free text is resolved to customer
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       newTask body     newTask true "Data for new task"
// @Success     201     {object} model.TaskView
// @Failure     400     {object} validation.PayloadError
// @Failure     404     {object} errorBody
// @Failure     500     {object} errorBody
// @Router      /api/tasks [post]
func (h *TaskHTTPHandler) Post(c echo.Context) error {
	var nt newTask
	if err := c.Bind(&nt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nt); err != nil {
		return err
	}

	task, err := h.taskSvc.Create(c.Request().Context(), nt.changes(&nt.Title))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// Patch updates task
// @Summary     Update task
// @Description Overwrites supplied fields only, explicit null clears nullable field
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Task guid" Format(uuid)
// @Param       updateTask body     updateTask true "Task fields"
// @Success     200        {object} model.TaskView
// @Failure     400        {object} validation.PayloadError
// @Failure     404        {object} errorBody
// @Failure     500        {object} errorBody
// @Router      /api/tasks/{id} [patch]
func (h *TaskHTTPHandler) Patch(c echo.Context) error {
	var ut updateTask
	if err := c.Bind(&ut); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ut); err != nil {
		return err
	}

	task, err := h.taskSvc.Update(c.Request().Context(), ut.ID, ut.changes(ut.Title))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteByID deletes task
// @Summary     Delete task by id
// @Description Deletes task together with its email drafts
// @Tags        tasks
// @Produce     json
// @Param       id     path     string true "Task guid" Format(uuid)
// @Success     200    {object} okBody
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/tasks/{id} [delete]
func (h *TaskHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.taskSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &okBody{Ok: true})
}
