package errors

import "strings"

// LoadError defines an error that was encountered while loading entities
// from config files
type LoadError struct {
	// ParseErrors is a list of errors that were encountered while reading the
	// config from the text file
	ParseErrors []error

	// ValidationErrors is a list of errors that were encountered while
	// validating the parsed values against the schema of the resource
	ValidationErrors []error
}

func NewLoadError() *LoadError {
	return &LoadError{
		ParseErrors:      []error{},
		ValidationErrors: []error{},
	}
}

// AppendParseError adds a new parse error to the list of errors
func (p *LoadError) AppendParseError(err error) {
	p.ParseErrors = append(p.ParseErrors, err)
}

// AppendValidationError adds a new validation error to the list of errors
func (p *LoadError) AppendValidationError(err error) {
	p.ValidationErrors = append(p.ValidationErrors, err)
}

// HasErrors returns true when either list contains an error
func (p *LoadError) HasErrors() bool {
	return len(p.ParseErrors) > 0 || len(p.ValidationErrors) > 0
}

// WrappedErrors implements errwrap.Wrapper so the individual errors can be
// inspected with errwrap.ContainsType and friends
func (p *LoadError) WrappedErrors() []error {
	errs := make([]error, 0, len(p.ParseErrors)+len(p.ValidationErrors))
	errs = append(errs, p.ParseErrors...)

	return append(errs, p.ValidationErrors...)
}

// Error pretty prints the error message as a string
func (p *LoadError) Error() string {
	err := strings.Builder{}

	for _, e := range p.WrappedErrors() {
		err.WriteString(e.Error() + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}
