package resources

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jumppad-labs/personsmodel/errors"
)

// Comparator orders two values, it returns a negative number when a sorts
// before b, a positive number when a sorts after b and 0 for ties
type Comparator[T any] func(a, b T) int

// SortOption is a named comparator that can be selected at runtime
type SortOption[T any] struct {
	// Label is the human readable description shown to users
	Label string
	// Value is the key used to select the option
	Value string
	Func  Comparator[T]
}

// SortOptions holds the sort options registered for a resource in the order
// they were registered
type SortOptions[T any] struct {
	options []SortOption[T]
	index   map[string]int
}

// RegisterSortOptions creates a SortOptions from the given list, every
// option must have a unique, non empty value and a comparator
func RegisterSortOptions[T any](opts ...SortOption[T]) (*SortOptions[T], error) {
	so := &SortOptions[T]{
		options: make([]SortOption[T], 0, len(opts)),
		index:   make(map[string]int, len(opts)),
	}

	ce := errors.NewConfigError("")
	for _, o := range opts {
		switch {
		case o.Value == "":
			ce.AppendProblem("sort option '%s' has no value", o.Label)
			continue
		case o.Func == nil:
			ce.AppendProblem("sort option '%s' has no comparator", o.Value)
			continue
		}

		if _, ok := so.index[o.Value]; ok {
			ce.AppendProblem("duplicate sort option '%s'", o.Value)
			continue
		}

		so.index[o.Value] = len(so.options)
		so.options = append(so.options, o)
	}

	if ce.HasProblems() {
		return nil, ce
	}

	return so, nil
}

// Get returns the comparator registered for value
func (s *SortOptions[T]) Get(value string) (Comparator[T], error) {
	i, ok := s.index[value]
	if !ok {
		return nil, errors.NewNotFoundError("sort option", value)
	}

	return s.options[i].Func, nil
}

// Has returns true when value has been registered
func (s *SortOptions[T]) Has(value string) bool {
	_, ok := s.index[value]
	return ok
}

// Compare applies the comparator registered for value, the result is
// always -1, 0 or 1
func (s *SortOptions[T]) Compare(value string, a, b T) (int, error) {
	f, err := s.Get(value)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(f(a, b), 0), nil
}

// Sort orders items in place using the comparator registered for value,
// items that compare equal keep their original order
func (s *SortOptions[T]) Sort(value string, items []T) error {
	f, err := s.Get(value)
	if err != nil {
		return err
	}

	slices.SortStableFunc(items, f)

	return nil
}

// Options returns a copy of the options in registration order
func (s *SortOptions[T]) Options() []SortOption[T] {
	return slices.Clone(s.options)
}

// Values returns the option values in registration order
func (s *SortOptions[T]) Values() []string {
	v := make([]string, len(s.options))
	for i, o := range s.options {
		v[i] = o.Value
	}

	return v
}

// Map returns the comparators keyed by option value
func (s *SortOptions[T]) Map() map[string]Comparator[T] {
	m := make(map[string]Comparator[T], len(s.options))
	for _, o := range s.options {
		m[o.Value] = o.Func
	}

	return m
}

// Ascending returns a comparator that orders values by the string returned
// from key, comparison is byte wise so upper case sorts before lower case
func Ascending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(key(a), key(b))
	}
}

// Descending is the exact inverse of Ascending for the same key
func Descending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return -strings.Compare(key(a), key(b))
	}
}
