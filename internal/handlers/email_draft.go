package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/draft"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/service"
	"github.com/umalmyha/taskdesk/internal/validation"
)

type newEmailDraft struct {
	TaskID string  `param:"id" json:"-" validate:"required,uuid"`
	To     string  `json:"to" validate:"required,max=320"`
	Cc     *string `json:"cc" validate:"omitempty,max=320"`
	Tone   string  `json:"tone" validate:"omitempty,oneof=neutral friendly direct"`
}

type generatedDraft struct {
	EmailDraft *model.EmailDraft `json:"emailDraft"`
	Task       *model.TaskView   `json:"task"`
}

// DraftHTTPHandler is http handler for task email drafts
type DraftHTTPHandler struct {
	draftSvc service.DraftService
}

// NewDraftHTTPHandler builds new DraftHTTPHandler
func NewDraftHTTPHandler(draftSvc service.DraftService) *DraftHTTPHandler {
	return &DraftHTTPHandler{draftSvc: draftSvc}
}

// GetAll gets drafts of task
// @Summary     Get task email drafts
// @Description Returns drafts generated for task, newest first
// @Tags        drafts
// @Produce     json
// @Param       id     path     string true "Task guid" Format(uuid)
// @Success     200    {array}  model.EmailDraft
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/tasks/{id}/email-drafts [get]
func (h *DraftHTTPHandler) GetAll(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	drafts, err := h.draftSvc.List(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if drafts == nil {
		drafts = make([]model.EmailDraft, 0)
	}
	return c.JSON(http.StatusOK, drafts)
}

// Post generates draft
// @Summary     Generate email draft
// @Description Renders email draft from task and stores it
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Param       id            path     string        true "Task guid" Format(uuid)
// @Param       newEmailDraft body     newEmailDraft true "Recipients and tone"
// @Success     201           {object} generatedDraft
// @Failure     400           {object} validation.PayloadError
// @Failure     404           {object} errorBody
// @Failure     500           {object} errorBody
// @Router      /api/tasks/{id}/email-drafts [post]
func (h *DraftHTTPHandler) Post(c echo.Context) error {
	var nd newEmailDraft
	if err := c.Bind(&nd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nd); err != nil {
		return err
	}

	tone, err := draft.ParseTone(nd.Tone)
	if err != nil {
		return validation.NewPayloadError("tone", err.Error())
	}

	// empty cc means no cc
	cc := nd.Cc
	if cc != nil && *cc == "" {
		cc = nil
	}

	d, task, err := h.draftSvc.Generate(c.Request().Context(), nd.TaskID, nd.To, cc, tone)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &generatedDraft{EmailDraft: d, Task: task})
}
