package model

import (
	"encoding/json"
	"strings"
	"time"
)

// EncodeTags trims tags, drops empty ones and encodes the rest as JSON array text
func EncodeTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// DecodeTags decodes stored tags. Anything other than a JSON array of strings yields an empty list.
func DecodeTags(stored string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(stored), &raw); err != nil {
		return []string{}
	}

	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return []string{}
		}
		tags = append(tags, s)
	}
	return tags
}

// EmailDraftView is draft representation nested into task view
type EmailDraftView struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	To        string    `json:"to"`
	Cc        *string   `json:"cc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskView is task transport representation
type TaskView struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description"`
	CustomerID     *string           `json:"customerId"`
	Customer       *string           `json:"customer"`
	TaskType       *string           `json:"taskType"`
	Status         TaskStatus        `json:"status"`
	Priority       int               `json:"priority"`
	Tags           []string          `json:"tags"`
	Metadata       json.RawMessage   `json:"metadata"`
	ExternalSource *string           `json:"externalSource"`
	ExternalID     *string           `json:"externalId"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	EmailDrafts    *[]EmailDraftView `json:"emailDrafts,omitempty"`
}

// SerializeTask builds task view. Drafts are nested only when drafts is not nil
// and are expected in newest-first order.
func SerializeTask(t Task, drafts []EmailDraft) TaskView {
	v := TaskView{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		CustomerID:     t.CustomerID,
		Customer:       t.Customer,
		TaskType:       t.TaskType,
		Status:         t.Status,
		Priority:       t.Priority,
		Tags:           t.Tags(),
		Metadata:       t.Metadata,
		ExternalSource: t.ExternalSource,
		ExternalID:     t.ExternalID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}

	if drafts != nil {
		views := make([]EmailDraftView, 0, len(drafts))
		for _, d := range drafts {
			views = append(views, EmailDraftView{
				ID:        d.ID,
				TaskID:    d.TaskID,
				To:        d.To,
				Cc:        d.Cc,
				Subject:   d.Subject,
				Body:      d.Body,
				CreatedAt: d.CreatedAt,
			})
		}
		v.EmailDrafts = &views
	}
	return v
}

// CustomerView is customer listing entry with aggregated task counts
type CustomerView struct {
	Customer
	TaskCounts TaskCounts `json:"taskCounts"`
}
