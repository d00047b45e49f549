package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-wordwrap"
)

const ParserErrorLevelError = "error"
const ParserErrorLevelWarning = "warning"

// ParserError is a detailed error that is returned when a config file can not
// be loaded, it points at the offending line in the source file
type ParserError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	Level    string

	// Err is the underlying error, if any, i.e. a ValidationError raised for
	// the values of a block
	Err error
}

// Error pretty prints the error message as a string, including the lines
// surrounding the error when the source file can be read
func (p *ParserError) Error() string {
	err := strings.Builder{}
	err.WriteString("Error:\n")

	for _, l := range strings.Split(wordwrap.WrapString(p.Message, 80), "\n") {
		err.WriteString("  " + l + "\n")
	}

	err.WriteString("\n")
	err.WriteString("  " + fmt.Sprintf("%s:%d,%d\n", p.Filename, p.Line, p.Column))

	file, rerr := os.ReadFile(p.Filename)
	if rerr != nil {
		return err.String()
	}

	lines := strings.Split(string(file), "\n")

	startLine := max(p.Line-3, 0)
	endLine := min(p.Line+2, len(lines))

	for i := startLine; i < endLine; i++ {
		codelines := strings.Split(wordwrap.WrapString(lines[i], 70), "\n")

		style := "\033[2m"
		if i == p.Line-1 {
			style = "\033[1m"
		}

		err.WriteString(fmt.Sprintf("%s  %5d | %s\033[0m\n", style, i+1, codelines[0]))
		for _, l := range codelines[1:] {
			err.WriteString(fmt.Sprintf("%s        : %s\033[0m\n", style, l))
		}
	}

	return err.String()
}

// WrappedErrors implements errwrap.Wrapper
func (p *ParserError) WrappedErrors() []error {
	if p.Err == nil {
		return nil
	}

	return []error{p.Err}
}

// Unwrap allows errors.As to reach the underlying error
func (p *ParserError) Unwrap() error {
	return p.Err
}

// NewParserError creates a new ParserError with basic parameters
func NewParserError(filename string, line, column int, level, message string) *ParserError {
	return &ParserError{
		Filename: filename,
		Line:     line,
		Column:   column,
		Level:    level,
		Message:  message,
	}
}

// NewParserErrorFromRange creates a ParserError located at the start of the
// given hcl range, wrapping err
func NewParserErrorFromRange(rng hcl.Range, err error) *ParserError {
	return &ParserError{
		Filename: rng.Filename,
		Line:     rng.Start.Line,
		Column:   rng.Start.Column,
		Level:    ParserErrorLevelError,
		Message:  err.Error(),
		Err:      err,
	}
}

// NewParserErrorFromHCLDiag creates a ParserError from HCL diagnostics
func NewParserErrorFromHCLDiag(diag *hcl.Diagnostic, filename string) *ParserError {
	line := 0
	column := 0
	if diag.Subject != nil {
		line = diag.Subject.Start.Line
		column = diag.Subject.Start.Column
	}

	level := ParserErrorLevelError
	if diag.Severity == hcl.DiagWarning {
		level = ParserErrorLevelWarning
	}

	return &ParserError{
		Filename: filename,
		Line:     line,
		Column:   column,
		Level:    level,
		Message:  fmt.Sprintf("unable to parse file: %s: %s", diag.Summary, diag.Detail),
	}
}
