package tools

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrValidation = errors.New("invalid input")

type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("%s: field %q %s", e.Tool, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Values holds one submission's field values keyed by field name.
type Values struct {
	m     map[string]string
	trace func(name string)
}

func NewValues(m map[string]string) Values {
	copied := make(map[string]string, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return Values{m: copied}
}

func (v Values) Get(name string) string {
	if v.trace != nil {
		v.trace(name)
	}
	return v.m[name]
}

// GetOr returns fallback when the value is blank.
func (v Values) GetOr(name, fallback string) string {
	if value := v.Get(name); strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func (v Values) Map() map[string]string {
	copied := make(map[string]string, len(v.m))
	for k, val := range v.m {
		copied[k] = val
	}
	return copied
}

// Validate checks values against the tool's declared fields.
func (t *Tool) Validate(v Values) error {
	for name := range v.m {
		if _, ok := t.Field(name); !ok {
			return &ValidationError{Tool: t.ID, Field: name, Reason: "is not a field of this tool"}
		}
	}

	for _, f := range t.Fields {
		value := strings.TrimSpace(v.m[f.Name])
		if value == "" {
			if f.Required {
				return &ValidationError{Tool: t.ID, Field: f.Name, Reason: "is required"}
			}
			continue
		}
		if f.Kind == KindSelect && !slices.Contains(f.Options, value) {
			return &ValidationError{Tool: t.ID, Field: f.Name, Reason: fmt.Sprintf("must be one of %s", strings.Join(f.Options, ", "))}
		}
	}
	return nil
}
