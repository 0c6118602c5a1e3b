package model

// Agent is an external integration allowed to upsert tasks for its source
type Agent struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	SecretHash string `json:"-"`
}
