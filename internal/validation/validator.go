package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/model"
)

const tagJSONObject = "jsonobject"

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds every violation found in request payload
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for i, err := range e.violations {
		if i > 0 {
			buff.WriteString("; ")
		}
		buff.WriteString(err.Message)
	}

	return buff.String()
}

// Violation appends violation
func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

// Fields returns names of offending fields
func (e *PayloadError) Fields() []string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Error  string      `json:"error"`
		Errors []violation `json:"errors"`
	}{
		Error:  e.Error(),
		Errors: e.violations,
	})
}

// NewPayloadError builds PayloadError with single violation
func NewPayloadError(field, msg string) *PayloadError {
	return &PayloadError{violations: []violation{{Field: field, Message: msg}}}
}

// EchoValidator is echo.Validator backed by go-playground validator
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds EchoValidator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// Default builds EchoValidator with english translations and custom types registered
func Default() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to find en translator")
	}

	v, err := New(trans)
	if err != nil {
		return nil, err
	}
	return Echo(v, trans), nil
}

// New builds validator aware of Nullable fields and json field names
func New(trans ut.Translator) (*validator.Validate, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(nullableString, model.Nullable[string]{})

	if err := v.RegisterValidation(tagJSONObject, isJSONObject); err != nil {
		return nil, err
	}

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	err := v.RegisterTranslation(tagJSONObject, trans, func(ut ut.Translator) error {
		return ut.Add(tagJSONObject, "{0} must be a JSON object", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tagJSONObject, fe.Field())
		return t
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Validate validates struct
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

// nullableString exposes a pointer for present values so that omitempty still
// validates explicitly supplied empty strings, and nil for absent or null ones.
func nullableString(field reflect.Value) any {
	n, ok := field.Interface().(model.Nullable[string])
	if !ok || !n.HasValue() {
		return nil
	}
	return n.Ptr()
}

func isJSONObject(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
