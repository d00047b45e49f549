package errors

import (
	"fmt"
	"testing"

	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

func TestSchemaErrorIncludesField(t *testing.T) {
	err := NewSchemaError("person", "email", "duplicate field name")

	require.Equal(t, "schema person, field 'email': duplicate field name", err.Error())
}

func TestSchemaErrorWithoutField(t *testing.T) {
	err := NewSchemaError("person", "", "no fields")

	require.Equal(t, "schema person: no fields", err.Error())
}

func TestNotFoundErrorOutputsKindAndName(t *testing.T) {
	err := NewNotFoundError("sort option", "age-asc")

	require.Equal(t, "sort option 'age-asc' not found", err.Error())
}

func TestConfigErrorJoinsProblems(t *testing.T) {
	ce := NewConfigError("person")
	require.False(t, ce.HasProblems())

	ce.AppendProblem("duplicate sort option '%s'", "displayName-asc")
	ce.AppendProblem("sort default '%s' is not registered", "age-asc")

	require.True(t, ce.HasProblems())
	require.Equal(t,
		"resource person: duplicate sort option 'displayName-asc'\nresource person: sort default 'age-asc' is not registered",
		ce.Error(),
	)
}

func TestAppendParseErrorAddsError(t *testing.T) {
	le := NewLoadError()
	le.AppendParseError(fmt.Errorf("boom"))

	require.Len(t, le.ParseErrors, 1)
	require.True(t, le.HasErrors())
}

func TestAppendValidationErrorAddsError(t *testing.T) {
	le := NewLoadError()
	le.AppendValidationError(NewValidationError("person", "pubId", "field is not writable"))

	require.Len(t, le.ValidationErrors, 1)
	require.True(t, errwrap.ContainsType(le, &ValidationError{}))
}

func TestLoadErrorReturnsConcatenatedString(t *testing.T) {
	le := NewLoadError()
	le.AppendParseError(fmt.Errorf("boom"))
	le.AppendValidationError(fmt.Errorf("bang"))

	require.Equal(t, "boom\nbang", le.Error())
}

func TestParserErrorOutputsString(t *testing.T) {
	err := NewParserError("./test_fixtures/person.hcl", 3, 3, ParserErrorLevelError, "something has gone wrong")

	require.Contains(t, err.Error(), "Error:")
	require.Contains(t, err.Error(), "person.hcl:3,3")
}

func TestParserErrorHighlightsLine(t *testing.T) {
	err := NewParserError("./test_fixtures/person.hcl", 1, 1, ParserErrorLevelError, "boom")

	require.Contains(t, err.Error(), "\033[1m      1 | person \"bob\" {")
}

func TestParserErrorNonErrorLineGrey(t *testing.T) {
	err := NewParserError("./test_fixtures/person.hcl", 2, 3, ParserErrorLevelError, "boom")

	require.Contains(t, err.Error(), "\033[2m      1 | person \"bob\" {")
	require.Contains(t, err.Error(), "\033[1m      2 |   displayName")
}

func TestParserErrorMissingFileOnlyOutputsMessage(t *testing.T) {
	err := NewParserError("./test_fixtures/missing.hcl", 2, 3, ParserErrorLevelError, "boom")

	require.NotContains(t, err.Error(), "|")
}

func TestParserErrorFromRangeWrapsError(t *testing.T) {
	ve := NewValidationError("person", "pubId", "field is not writable")
	rng := hcl.Range{Filename: "test.hcl", Start: hcl.Pos{Line: 4, Column: 2}}

	err := NewParserErrorFromRange(rng, ve)

	require.Equal(t, 4, err.Line)
	require.Equal(t, 2, err.Column)
	require.Equal(t, ve.Error(), err.Message)
	require.True(t, errwrap.ContainsType(err, &ValidationError{}))
}

func TestParserErrorFromHCLDiag(t *testing.T) {
	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported argument",
		Detail:   `An argument named "age" is not expected here.`,
		Subject:  &hcl.Range{Start: hcl.Pos{Line: 7, Column: 5}},
	}

	err := NewParserErrorFromHCLDiag(diag, "test.hcl")

	require.Equal(t, "test.hcl", err.Filename)
	require.Equal(t, 7, err.Line)
	require.Equal(t, 5, err.Column)
	require.Equal(t, ParserErrorLevelError, err.Level)
	require.Contains(t, err.Message, "Unsupported argument")
}
