package personsmodel

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func ctyTypeForKind(k reflect.Kind) (cty.Type, error) {
	switch k {
	case reflect.String:
		return cty.String, nil
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float64:
		return cty.Number, nil
	case reflect.Bool:
		return cty.Bool, nil
	default:
		return cty.NilType, fmt.Errorf("type %v is not a valid cty type, only primitive types like string, bool and basic numbers are supported", k)
	}
}

// createCtyFunctionFromGoFunc wraps a Go func with primitive parameters and a
// single primitive return value in a cty function
func createCtyFunctionFromGoFunc(f any) (function.Function, error) {
	rf := reflect.TypeOf(f)
	if rf == nil || rf.Kind() != reflect.Func {
		return function.Function{}, fmt.Errorf("expected a func, got %T", f)
	}

	if rf.NumOut() != 1 {
		return function.Function{}, fmt.Errorf("function must return a single value, got %d", rf.NumOut())
	}

	params := []function.Parameter{}

	for i := 0; i < rf.NumIn(); i++ {
		t, err := ctyTypeForKind(rf.In(i).Kind())
		if err != nil {
			return function.Function{}, err
		}

		params = append(params, function.Parameter{
			Name:             fmt.Sprintf("arg%d", i),
			Type:             t,
			AllowDynamicType: true,
		})
	}

	outType, err := ctyTypeForKind(rf.Out(0).Kind())
	if err != nil {
		return function.Function{}, err
	}

	return function.New(&function.Spec{
		Params: params,
		Type:   function.StaticReturnType(outType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			in := []reflect.Value{}
			for i, a := range args {
				pt := rf.In(i)

				switch a.Type() {
				case cty.String:
					in = append(in, reflect.ValueOf(a.AsString()).Convert(pt))
				case cty.Bool:
					in = append(in, reflect.ValueOf(a.True()).Convert(pt))
				case cty.Number:
					if pt.Kind() == reflect.Float64 {
						val, _ := a.AsBigFloat().Float64()
						in = append(in, reflect.ValueOf(val).Convert(pt))
						continue
					}

					val, _ := a.AsBigFloat().Int64()
					in = append(in, reflect.ValueOf(val).Convert(pt))
				}
			}

			out := reflect.ValueOf(f).Call(in)[0]

			switch out.Kind() {
			case reflect.String:
				return cty.StringVal(out.String()), nil
			case reflect.Bool:
				return cty.BoolVal(out.Bool()), nil
			case reflect.Float64:
				return cty.NumberFloatVal(out.Float()), nil
			default:
				return cty.NumberIntVal(out.Int()), nil
			}
		},
	}), nil
}

// EnvFunc returns the value of the named environment variable, or an empty
// string when it is not set
var EnvFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{
			Name:             "env",
			Type:             cty.String,
			AllowDynamicType: true,
		},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

// ensureAbsolute resolves path relative to the folder containing file
func ensureAbsolute(path, file string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(filepath.Dir(file), path)
}

// getDefaultFunctions returns the functions available in every config file,
// file and dir resolve paths relative to filePath
func getDefaultFunctions(filePath string) map[string]function.Function {
	var FileFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name:             "path",
				Type:             cty.String,
				AllowDynamicType: true,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			d, err := os.ReadFile(ensureAbsolute(args[0].AsString(), filePath))
			if err != nil {
				return cty.StringVal(""), err
			}

			return cty.StringVal(string(d)), nil
		},
	})

	var DirFunc = function.New(&function.Spec{
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			s, err := filepath.Abs(filePath)

			return cty.StringVal(filepath.Dir(s)), err
		},
	})

	return map[string]function.Function{
		"env":       EnvFunc,
		"file":      FileFunc,
		"dir":       DirFunc,
		"upper":     stdlib.UpperFunc,
		"lower":     stdlib.LowerFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"format":    stdlib.FormatFunc,
		"join":      stdlib.JoinFunc,
		"concat":    stdlib.ConcatFunc,
		"length":    stdlib.LengthFunc,
	}
}
