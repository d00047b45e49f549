package resources

import (
	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/schema"
)

// Conf is the type independent view of a ResourceConf that is held by the
// Registry
type Conf interface {
	// GetName returns the singular name of the resource, i.e. "person", this
	// is also the block type used in config files
	GetName() string
	// GetResourceName returns the plural name used to look the resource up,
	// i.e. "persons"
	GetResourceName() string
	GetSchema() *schema.Schema
	GetSortDefault() string
	GetSortValues() []string

	validate() *errors.ConfigError
}

// ResourceConf binds a model type to its schema and sort options
type ResourceConf[T any] struct {
	Name         string
	ResourceName string
	Schema       *schema.Schema
	Sort         *SortOptions[T]
	SortDefault  string
}

var _ Conf = (*ResourceConf[any])(nil)

// NewResourceConf creates a ResourceConf, returning a ConfigError when the
// sort options are invalid or the default is not one of them
func NewResourceConf[T any](name, resourceName string, s *schema.Schema, sortDefault string, opts ...SortOption[T]) (*ResourceConf[T], error) {
	so, err := RegisterSortOptions(opts...)
	if err != nil {
		ce := err.(*errors.ConfigError)
		ce.Resource = name
		return nil, ce
	}

	rc := &ResourceConf[T]{
		Name:         name,
		ResourceName: resourceName,
		Schema:       s,
		Sort:         so,
		SortDefault:  sortDefault,
	}

	if ce := rc.validate(); ce != nil {
		return nil, ce
	}

	return rc, nil
}

func (r *ResourceConf[T]) GetName() string           { return r.Name }
func (r *ResourceConf[T]) GetResourceName() string   { return r.ResourceName }
func (r *ResourceConf[T]) GetSchema() *schema.Schema { return r.Schema }
func (r *ResourceConf[T]) GetSortDefault() string    { return r.SortDefault }

func (r *ResourceConf[T]) GetSortValues() []string {
	if r.Sort == nil {
		return nil
	}

	return r.Sort.Values()
}

// Settings returns the sort settings for the resource
func (r *ResourceConf[T]) Settings() *Settings[T] {
	if r.Sort == nil {
		return &Settings[T]{SortMap: map[string]Comparator[T]{}, SortDefault: r.SortDefault}
	}

	return &Settings[T]{
		SortMap:     r.Sort.Map(),
		SortOptions: r.Sort.Options(),
		SortDefault: r.SortDefault,
	}
}

func (r *ResourceConf[T]) validate() *errors.ConfigError {
	ce := errors.NewConfigError(r.Name)

	if r.Name == "" {
		ce.AppendProblem("resource has no name")
	}

	if r.ResourceName == "" {
		ce.AppendProblem("resource has no resource name")
	}

	if r.Schema == nil {
		ce.AppendProblem("resource has no schema")
	}

	switch {
	case r.Sort == nil || len(r.Sort.options) == 0:
		ce.AppendProblem("resource has no sort options")
	case !r.Sort.Has(r.SortDefault):
		ce.AppendProblem("sort default '%s' is not a registered sort option", r.SortDefault)
	}

	if ce.HasProblems() {
		return ce
	}

	return nil
}

// Settings is the sort configuration of a registered resource
type Settings[T any] struct {
	SortMap     map[string]Comparator[T]
	SortOptions []SortOption[T]
	SortDefault string
}
