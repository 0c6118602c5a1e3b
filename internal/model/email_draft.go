package model

import "time"

// EmailDraft is generated email text stored for a task
type EmailDraft struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	To        string    `json:"to"`
	Cc        *string   `json:"cc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
