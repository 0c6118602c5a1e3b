package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Customer is customer model entity
type Customer struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Notes     *string         `json:"notes"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CustomerPatch holds customer fields supplied in a partial update
type CustomerPatch struct {
	Name     *string
	Notes    Nullable[string]
	Metadata json.RawMessage
}

// NormalizeCustomerName trims name and collapses inner whitespace runs to a single space
func NormalizeCustomerName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
