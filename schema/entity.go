package schema

import (
	"sort"

	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/zclconf/go-cty/cty"
)

// Option configures how an entity is constructed
type Option func(*options)

type options struct {
	ignoreUnknown bool
}

// IgnoreUnknown drops values that have no field in the schema instead of
// failing construction
func IgnoreUnknown() Option {
	return func(o *options) {
		o.ignoreUnknown = true
	}
}

// Entity is a single record that conforms to a Schema
type Entity struct {
	schema *Schema
	values map[string]cty.Value

	// assigned records the fields that were set after construction
	assigned map[string]bool
}

// New creates an entity from the given values. Fields with no entry in values
// are unset. Values for UnsetForNew fields must be null or absent.
func New(s *Schema, values map[string]cty.Value, opts ...Option) (*Entity, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return newEntity(s, values, o)
}

func newEntity(s *Schema, values map[string]cty.Value, o options) (*Entity, error) {
	if !o.ignoreUnknown {
		unknown := []string{}
		for k := range values {
			if _, ok := s.index[k]; !ok {
				unknown = append(unknown, k)
			}
		}

		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, errors.NewValidationError(s.name, unknown[0], "unknown field")
		}
	}

	e := &Entity{
		schema:   s,
		values:   make(map[string]cty.Value, len(s.fields)),
		assigned: map[string]bool{},
	}

	for _, f := range s.fields {
		v, ok := values[f.Name]
		if !ok || v == cty.NilVal {
			continue
		}

		if f.UnsetForNew && !v.IsNull() {
			return nil, errors.NewValidationError(s.name, f.Name, "field can not be set on a new "+s.name)
		}

		v, err := s.validateValue(f, v, o)
		if err != nil {
			return nil, err
		}

		e.values[f.Name] = v
	}

	return e, nil
}

func (e *Entity) Schema() *Schema {
	return e.schema
}

// Get returns the value of the named field, unset fields return a null value
func (e *Entity) Get(name string) (cty.Value, error) {
	if _, ok := e.schema.index[name]; !ok {
		return cty.NilVal, errors.NewNotFoundError("field", e.schema.name+"."+name)
	}

	if v, ok := e.values[name]; ok {
		return v, nil
	}

	return cty.NullVal(cty.DynamicPseudoType), nil
}

// IsSet returns true when the named field holds a non null value
func (e *Entity) IsSet(name string) bool {
	v, ok := e.values[name]
	return ok && !v.IsNull()
}

// Set changes the value of a writable field
func (e *Entity) Set(name string, v cty.Value) error {
	f, ok := e.schema.Field(name)
	if !ok {
		return errors.NewValidationError(e.schema.name, name, "unknown field")
	}

	if !f.Writable {
		return errors.NewValidationError(e.schema.name, name, "field is not writable")
	}

	if v == cty.NilVal {
		v = cty.NullVal(cty.DynamicPseudoType)
	}

	v, err := e.schema.validateValue(f, v, options{})
	if err != nil {
		return err
	}

	e.values[name] = v
	e.assigned[name] = true

	return nil
}

// IsComplete returns true when every required field holds a value
func (e *Entity) IsComplete() bool {
	return len(e.GetMissing()) == 0
}

// GetMissing returns the names of the required fields that are unset, in
// schema order
func (e *Entity) GetMissing() []string {
	missing := []string{}

	for _, f := range e.schema.fields {
		if !f.checkedForComplete(e.assigned[f.Name]) {
			continue
		}

		if !e.IsSet(f.Name) {
			missing = append(missing, f.Name)
		}
	}

	return missing
}

// Values returns a copy of the set values keyed by field name
func (e *Entity) Values() map[string]cty.Value {
	v := make(map[string]cty.Value, len(e.values))
	for k, val := range e.values {
		v[k] = val
	}

	return v
}

// Object returns the entity as a cty object with an attribute for every
// field in the schema, unset fields are null
func (e *Entity) Object() cty.Value {
	attrs := make(map[string]cty.Value, len(e.schema.fields))
	for _, f := range e.schema.fields {
		v, _ := e.Get(f.Name)
		attrs[f.Name] = v
	}

	return cty.ObjectVal(attrs)
}
