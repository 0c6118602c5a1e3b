package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/draft"
	"github.com/umalmyha/taskdesk/internal/interceptors"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/service"
	"github.com/umalmyha/taskdesk/internal/validation"
	"github.com/umalmyha/taskdesk/proto"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type previewDraft struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Tone        string  `json:"tone" validate:"omitempty,oneof=neutral friendly direct"`
}

// TaskGrpcHandler is gRPC handler for agent task endpoint
type TaskGrpcHandler struct {
	proto.UnimplementedTaskServiceServer
	taskSvc   service.TaskService
	validator echo.Validator
}

// NewTaskGrpcHandler builds new TaskGrpcHandler
func NewTaskGrpcHandler(taskSvc service.TaskService, validator echo.Validator) *TaskGrpcHandler {
	return &TaskGrpcHandler{
		UnimplementedTaskServiceServer: proto.UnimplementedTaskServiceServer{},
		taskSvc:                        taskSvc,
		validator:                      validator,
	}
}

// UpsertAgentTask creates or updates task owned by external agent
func (h *TaskGrpcHandler) UpsertAgentTask(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var at agentTask
	if err := h.decode(req, &at); err != nil {
		return nil, err
	}

	if claims, ok := interceptors.AgentClaims(ctx); ok && claims.Source() != at.Source {
		return nil, echo.NewHTTPError(http.StatusForbidden, "token is not issued for source "+at.Source)
	}

	key := model.AgentTaskKey{Source: at.Source, ExternalID: at.ExternalID}
	task, err := h.taskSvc.UpsertAgentTask(ctx, key, at.changes(&at.Title))
	if err != nil {
		return nil, err
	}

	res := new(structpb.Struct)
	if err := encode(task, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetTask gets task with drafts by id
func (h *TaskGrpcHandler) GetTask(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var id identifier
	if err := h.decode(req, &id); err != nil {
		return nil, err
	}

	task, err := h.taskSvc.FindByID(ctx, id.ID)
	if err != nil {
		return nil, err
	}

	res := new(structpb.Struct)
	if err := encode(task, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListTasks gets all tasks
func (h *TaskGrpcHandler) ListTasks(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	tasks, err := h.taskSvc.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = make([]*model.TaskView, 0)
	}

	res := new(structpb.ListValue)
	if err := encode(tasks, res); err != nil {
		return nil, err
	}
	return res, nil
}

// PreviewDraft renders draft without storing it
func (h *TaskGrpcHandler) PreviewDraft(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var pd previewDraft
	if err := h.decode(req, &pd); err != nil {
		return nil, err
	}

	tone, err := draft.ParseTone(pd.Tone)
	if err != nil {
		return nil, validation.NewPayloadError("tone", err.Error())
	}

	d := draft.Build(draft.Params{
		Title:       pd.Title,
		Description: draft.Deref(pd.Description),
		Tone:        tone,
	})

	return structpb.NewStruct(map[string]any{
		"subject": d.Subject,
		"body":    d.Body,
	})
}

// decode converts struct to payload through its JSON form, so that payload rules match http ones
func (h *TaskGrpcHandler) decode(req *structpb.Struct, dst any) error {
	raw, err := protojson.Marshal(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.validator.Validate(dst)
}

func encode(src any, dst protobuf.Message) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to encode response - %w", err)
	}

	if err := protojson.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to convert response - %w", err)
	}
	return nil
}
