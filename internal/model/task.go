package model

import (
	"encoding/json"
	"time"
)

// TaskStatus is a task workflow state
type TaskStatus string

const (
	// TaskStatusTodo means work is not started
	TaskStatusTodo TaskStatus = "TODO"
	// TaskStatusInProgress means work is ongoing
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	// TaskStatusDone means work is finished
	TaskStatusDone TaskStatus = "DONE"
)

// DefaultTaskPriority is assigned when priority is not supplied on creation
const DefaultTaskPriority = 3

var emptyObject = json.RawMessage(`{}`)

// Task is task model entity. Tags are kept in their stored form, see EncodeTags.
type Task struct {
	ID             string
	ExternalSource *string
	ExternalID     *string
	Title          string
	Description    *string
	CustomerID     *string
	Customer       *string
	TaskType       *string
	Status         TaskStatus
	Priority       int
	TagsJSON       string
	Metadata       json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskChanges holds task fields supplied by a caller. Absent fields are left untouched,
// explicit nulls clear nullable fields.
type TaskChanges struct {
	Title       *string
	Description Nullable[string]
	CustomerID  Nullable[string]
	Customer    Nullable[string]
	TaskType    Nullable[string]
	Status      *TaskStatus
	Priority    *int
	Tags        *[]string
	Metadata    json.RawMessage
}

// AgentTaskKey identifies a task owned by an external system
type AgentTaskKey struct {
	Source     string
	ExternalID string
}

// NewTask builds a task from supplied changes, defaulting what is missing
func NewTask(id string, ch TaskChanges, now time.Time) Task {
	t := Task{
		ID:        id,
		Status:    TaskStatusTodo,
		Priority:  DefaultTaskPriority,
		TagsJSON:  EncodeTags(nil),
		Metadata:  emptyObject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t = t.Apply(ch)
	t.UpdatedAt = now
	return t
}

// Apply merges supplied changes into task
func (t Task) Apply(ch TaskChanges) Task {
	if ch.Title != nil {
		t.Title = *ch.Title
	}
	if ch.Description.Set {
		t.Description = ch.Description.Ptr()
	}
	if ch.CustomerID.Set {
		t.CustomerID = ch.CustomerID.Ptr()
	}
	if ch.Customer.Set {
		t.Customer = ch.Customer.Ptr()
	}
	if ch.TaskType.Set {
		t.TaskType = ch.TaskType.Ptr()
	}
	if ch.Status != nil {
		t.Status = *ch.Status
	}
	if ch.Priority != nil {
		t.Priority = *ch.Priority
	}
	if ch.Tags != nil {
		t.TagsJSON = EncodeTags(*ch.Tags)
	}
	if ch.Metadata != nil {
		t.Metadata = ch.Metadata
	}
	return t
}

// Tags decodes stored tags
func (t Task) Tags() []string {
	return DecodeTags(t.TagsJSON)
}
