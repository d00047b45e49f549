package convert

import (
	"github.com/hashicorp/errwrap"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// GoToCtyValue converts a Go value to a cty value using the type implied by
// its cty struct tags. Nil slices convert to null lists, empty slices to
// empty lists.
func GoToCtyValue(val any) (cty.Value, error) {
	typ, err := gocty.ImpliedType(val)
	if err != nil {
		return cty.NilVal, errwrap.Wrapf("unable to determine type: {{err}}", err)
	}

	ctyVal, err := gocty.ToCtyValue(val, typ)
	if err != nil {
		return cty.NilVal, errwrap.Wrapf("unable to convert value: {{err}}", err)
	}

	return ctyVal, nil
}

// CtyToGo decodes val into target, which must be a pointer. Null values
// leave target unchanged.
func CtyToGo(val cty.Value, target any) error {
	if val == cty.NilVal || val.IsNull() {
		return nil
	}

	return gocty.FromCtyValue(val, target)
}

// AttrToGo decodes the named attribute of an object or map value into
// target, missing and null attributes leave target unchanged
func AttrToGo(obj cty.Value, name string, target any) error {
	if obj == cty.NilVal || obj.IsNull() {
		return nil
	}

	v, ok := obj.AsValueMap()[name]
	if !ok {
		return nil
	}

	if err := CtyToGo(v, target); err != nil {
		return errwrap.Wrapf("attribute '"+name+"': {{err}}", err)
	}

	return nil
}
