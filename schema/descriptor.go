package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ValueKind is the shape of the value held by a field
type ValueKind int

const (
	// Scalar fields hold a single string, number or bool
	Scalar ValueKind = iota
	// Array fields hold a list, set or tuple, an empty sequence is a value
	Array
	// NestedModel fields hold an object described by a nested schema
	NestedModel
)

func (k ValueKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case NestedModel:
		return "nested model"
	}

	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// FieldDescriptor declares a single field of a schema
type FieldDescriptor struct {
	Name string

	// Required fields must hold a value for an entity to be complete
	Required bool

	// Writable fields can be changed with Entity.Set after construction
	Writable bool

	Kind ValueKind

	// Type is optional, when set values are converted to this type and a
	// failed conversion is a validation error
	Type cty.Type

	// Nested describes the elements of an Array field or the value of a
	// NestedModel field
	Nested *Schema

	// UnsetForNew fields must not have a value when an entity is constructed,
	// they are not checked for completeness until they are first assigned
	UnsetForNew bool

	// OptionalForComplete fields are never checked for completeness
	OptionalForComplete bool
}

// checkedForComplete returns true when the field takes part in the
// completeness check, assigned is true once the field has been set
// after construction
func (f FieldDescriptor) checkedForComplete(assigned bool) bool {
	if !f.Required || f.OptionalForComplete {
		return false
	}

	return !f.UnsetForNew || assigned
}

func (f FieldDescriptor) hasType() bool {
	return f.Type != cty.NilType
}
