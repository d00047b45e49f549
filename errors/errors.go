package errors

import (
	"fmt"
	"strings"
)

// SchemaError is returned when a schema can not be built from its field
// descriptors, for example when two fields share a name
type SchemaError struct {
	Schema  string
	Field   string
	Message string
}

func NewSchemaError(schema, field, message string) *SchemaError {
	return &SchemaError{Schema: schema, Field: field, Message: message}
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %s: %s", e.Schema, e.Message)
	}

	return fmt.Sprintf("schema %s, field '%s': %s", e.Schema, e.Field, e.Message)
}

// ValidationError is returned when an entity value does not conform to its
// schema, or when a field that can not be written is modified
type ValidationError struct {
	Schema  string
	Field   string
	Message string
}

func NewValidationError(schema, field, message string) *ValidationError {
	return &ValidationError{Schema: schema, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s field '%s': %s", e.Schema, e.Field, e.Message)
}

// NotFoundError is returned when a lookup by name fails
type NotFoundError struct {
	// Kind is the type of thing that was being looked up, i.e. "sort option"
	Kind string
	Name string
}

func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// ConfigError is returned when a resource configuration is invalid, i.e. two
// sort options share a value or the sort default is not registered.
// Problems holds every issue found, Error joins them with a new line.
type ConfigError struct {
	Resource string
	Problems []string
}

func NewConfigError(resource string, problems ...string) *ConfigError {
	return &ConfigError{Resource: resource, Problems: problems}
}

// AppendProblem adds a new problem to the list
func (e *ConfigError) AppendProblem(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// HasProblems returns true when at least one problem has been recorded
func (e *ConfigError) HasProblems() bool {
	return len(e.Problems) > 0
}

func (e *ConfigError) Error() string {
	err := strings.Builder{}

	for _, p := range e.Problems {
		if e.Resource != "" {
			err.WriteString("resource " + e.Resource + ": ")
		}
		err.WriteString(p + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}
