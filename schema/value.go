package schema

import (
	"fmt"

	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// validateValue checks v against the descriptor and returns the value that
// should be stored, which may have been converted to the descriptor type.
// Null values are always accepted, completeness is checked separately.
func (s *Schema) validateValue(f FieldDescriptor, v cty.Value, o options) (cty.Value, error) {
	if v.IsNull() {
		return v, nil
	}

	if !v.IsWhollyKnown() {
		return cty.NilVal, errors.NewValidationError(s.name, f.Name, "value must be known")
	}

	if f.hasType() {
		cv, err := convert.Convert(v, f.Type)
		if err != nil {
			return cty.NilVal, errors.NewValidationError(s.name, f.Name, fmt.Sprintf("expected %s: %s", f.Type.FriendlyName(), err))
		}

		v = cv
	}

	ty := v.Type()

	switch f.Kind {
	case Scalar:
		if !ty.IsPrimitiveType() {
			return cty.NilVal, errors.NewValidationError(s.name, f.Name, "expected a scalar value, got "+ty.FriendlyName())
		}

	case Array:
		if !ty.IsListType() && !ty.IsSetType() && !ty.IsTupleType() {
			return cty.NilVal, errors.NewValidationError(s.name, f.Name, "expected an array value, got "+ty.FriendlyName())
		}

		if f.Nested == nil {
			return v, nil
		}

		elems := make([]cty.Value, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()

			nv, err := s.validateNested(f, fmt.Sprintf("%s[%d]", f.Name, len(elems)), el, o)
			if err != nil {
				return cty.NilVal, err
			}

			elems = append(elems, nv)
		}

		// elements may differ in type once normalized, a tuple can hold them all
		return cty.TupleVal(elems), nil

	case NestedModel:
		return s.validateNested(f, f.Name, v, o)
	}

	return v, nil
}

// validateNested checks that v is an object that conforms to the nested
// schema of f and returns it normalized to an object holding every nested
// field, nested errors are reported against path
func (s *Schema) validateNested(f FieldDescriptor, path string, v cty.Value, o options) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, errors.NewValidationError(s.name, path, "value must not be null")
	}

	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return cty.NilVal, errors.NewValidationError(s.name, path, "expected an object value, got "+ty.FriendlyName())
	}

	e, err := newEntity(f.Nested, v.AsValueMap(), o)
	if err != nil {
		if ve, ok := err.(*errors.ValidationError); ok {
			return cty.NilVal, errors.NewValidationError(s.name, path+"."+ve.Field, ve.Message)
		}

		return cty.NilVal, err
	}

	return e.Object(), nil
}
