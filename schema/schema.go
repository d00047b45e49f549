package schema

import (
	"github.com/jumppad-labs/personsmodel/errors"
)

// Schema is an ordered, immutable list of field descriptors for one record
// type. Schemas are built once at start up and shared by every entity.
type Schema struct {
	name   string
	fields []FieldDescriptor
	index  map[string]int
}

// Build creates a schema from the given descriptors, the order of the
// descriptors is kept and used for GetMissing and display.
func Build(name string, fields ...FieldDescriptor) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]FieldDescriptor, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, errors.NewSchemaError(name, "", "field name can not be empty")
		}

		if _, ok := s.index[f.Name]; ok {
			return nil, errors.NewSchemaError(name, f.Name, "duplicate field name")
		}

		switch f.Kind {
		case Scalar:
			if f.Nested != nil {
				return nil, errors.NewSchemaError(name, f.Name, "scalar fields can not have a nested schema")
			}
		case NestedModel:
			if f.Nested == nil {
				return nil, errors.NewSchemaError(name, f.Name, "nested model fields require a nested schema")
			}
		case Array:
		default:
			return nil, errors.NewSchemaError(name, f.Name, "unknown value kind "+f.Kind.String())
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustBuild is like Build but panics on error, it is intended for package
// level schemas
func MustBuild(name string, fields ...FieldDescriptor) *Schema {
	s, err := Build(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the descriptors in declaration order
func (s *Schema) Fields() []FieldDescriptor {
	f := make([]FieldDescriptor, len(s.fields))
	copy(f, s.fields)

	return f
}

// Field returns the descriptor with the given name
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}

	return s.fields[i], true
}

// Names returns the field names in declaration order
func (s *Schema) Names() []string {
	n := make([]string, len(s.fields))
	for i, f := range s.fields {
		n[i] = f.Name
	}

	return n
}
