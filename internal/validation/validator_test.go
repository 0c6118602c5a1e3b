package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/taskdesk/internal/model"
)

type payload struct {
	Name     string                 `json:"name" validate:"required,max=5"`
	Customer model.Nullable[string] `json:"customer" validate:"omitempty,min=1,max=5"`
	Metadata json.RawMessage        `json:"metadata" validate:"omitempty,jsonobject"`
	Internal string                 `json:"-" validate:"omitempty,uuid"`
}

func TestEchoValidator(t *testing.T) {
	v, err := Default()
	require.NoError(t, err, "failed to build validator")

	t.Log("valid payload")
	{
		p := payload{Name: "ok", Customer: model.NullableOf("Acme"), Metadata: json.RawMessage(`{"a":[1]}`)}
		require.NoError(t, v.Validate(&p))
	}

	t.Log("absent and null nullable values are skipped")
	{
		require.NoError(t, v.Validate(&payload{Name: "ok"}))
		require.NoError(t, v.Validate(&payload{Name: "ok", Customer: model.Null[string]()}))
	}

	t.Log("explicit empty nullable value is validated")
	{
		err := v.Validate(&payload{Name: "ok", Customer: model.NullableOf("")})
		var pldErr *PayloadError
		require.ErrorAs(t, err, &pldErr)
		require.Equal(t, []string{"customer"}, pldErr.Fields())
	}

	t.Log("metadata must be an object")
	{
		for _, raw := range []string{`[1]`, `"text"`, `1`, `{"broken"`} {
			err := v.Validate(&payload{Name: "ok", Metadata: json.RawMessage(raw)})
			var pldErr *PayloadError
			require.ErrorAs(t, err, &pldErr, "metadata %s must be rejected", raw)
			require.Equal(t, []string{"metadata"}, pldErr.Fields())
			require.Equal(t, "metadata must be a JSON object", pldErr.Error())
		}
	}

	t.Log("violations are reported by json names")
	{
		err := v.Validate(&payload{Name: "too long", Customer: model.NullableOf("way too long"), Internal: "x"})
		var pldErr *PayloadError
		require.ErrorAs(t, err, &pldErr)
		require.ElementsMatch(t, []string{"name", "customer", "Internal"}, pldErr.Fields())
	}
}

func TestPayloadErrorJSON(t *testing.T) {
	pldErr := NewPayloadError("tone", "unknown tone")
	pldErr.Violation(violation{Field: "to", Message: "to is a required field"})

	encoded, err := json.Marshal(pldErr)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"error": "unknown tone; to is a required field",
		"errors": [
			{"field": "tone", "message": "unknown tone"},
			{"field": "to", "message": "to is a required field"}
		]
	}`, string(encoded))
}
