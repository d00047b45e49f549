package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// ParseVars converts a map of cty values into plain Go values that can be
// passed to templates
func ParseVars(value map[string]cty.Value) map[string]any {
	vars := map[string]any{}

	for k, v := range value {
		vars[k] = CastValue(v)
	}

	return vars
}

// CastValue converts a cty value into a string, bool, float64, []any or
// map[string]any. Null and unknown values become nil.
func CastValue(v cty.Value) any {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return nil
	}

	t := v.Type()

	switch {
	case t == cty.String:
		return v.AsString()
	case t == cty.Bool:
		return v.True()
	case t == cty.Number:
		// templates do not understand big.Float
		f, _ := v.AsBigFloat().Float64()
		return f
	case t.IsObjectType() || t.IsMapType():
		return ParseVars(v.AsValueMap())
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		vars := []any{}

		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			vars = append(vars, CastValue(ev))
		}

		return vars
	}

	return nil
}

// FormatValue renders a cty value on a single line, null values render as
// an empty string and object keys are sorted
func FormatValue(v cty.Value) string {
	return formatAny(CastValue(v))
}

func formatAny(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case float64:
		return fmt.Sprintf("%g", tv)
	case []any:
		items := make([]string, 0, len(tv))
		for _, i := range tv {
			items = append(items, formatAny(i))
		}

		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			if tv[k] != nil {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, k+": "+formatAny(tv[k]))
		}

		return "{" + strings.Join(items, ", ") + "}"
	default:
		return fmt.Sprintf("%v", tv)
	}
}
