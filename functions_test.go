package personsmodel

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCreateFunctionCreatesFunctionWithCorrectInParameters(t *testing.T) {
	myfunc := func(a string, b int, c bool) int {
		return 0
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	require.Equal(t, cty.String, ctyFunc.Params()[0].Type)
	require.Equal(t, cty.Number, ctyFunc.Params()[1].Type)
	require.Equal(t, cty.Bool, ctyFunc.Params()[2].Type)
}

func TestCreateFunctionWithInvalidInParameterReturnsError(t *testing.T) {
	myfunc := func(a string, complex func() error) int {
		return 0
	}

	_, err := createCtyFunctionFromGoFunc(myfunc)
	require.Error(t, err)
}

func TestCreateFunctionCreatesFunctionWithCorrectOutParameters(t *testing.T) {
	myfunc := func(a string, b int) string {
		return ""
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	rt, err := ctyFunc.ReturnType([]cty.Type{cty.String, cty.Number})
	require.NoError(t, err)
	require.Equal(t, cty.String, rt)
}

func TestCreateFunctionWithInvalidOutParameterReturnsError(t *testing.T) {
	myfunc := func(a string, b int) func() error {
		return func() error {
			return fmt.Errorf("oops")
		}
	}

	_, err := createCtyFunctionFromGoFunc(myfunc)
	require.Error(t, err)
}

func TestCreateFunctionWithoutFuncReturnsError(t *testing.T) {
	_, err := createCtyFunctionFromGoFunc("nope")
	require.Error(t, err)
}

func TestCreateFunctionCallsFunction(t *testing.T) {
	myfunc := func(a, b int) int {
		return a + b
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	val, err := ctyFunc.Call([]cty.Value{cty.NumberIntVal(2), cty.NumberIntVal(3)})
	require.NoError(t, err)

	i, _ := val.AsBigFloat().Int64()
	require.Equal(t, int64(5), i)
}

func TestCreateFunctionCallsFunctionWithStringsAndBools(t *testing.T) {
	myfunc := func(name string, shout bool) string {
		if shout {
			return name + "!"
		}

		return name
	}

	ctyFunc, err := createCtyFunctionFromGoFunc(myfunc)
	require.NoError(t, err)

	val, err := ctyFunc.Call([]cty.Value{cty.StringVal("bob"), cty.True})
	require.NoError(t, err)
	require.Equal(t, "bob!", val.AsString())
}

func TestCreateFunctionCallsFunctionWithFloats(t *testing.T) {
	ctyFunc, err := createCtyFunctionFromGoFunc(func(a float64) float64 { return a / 2 })
	require.NoError(t, err)

	val, err := ctyFunc.Call([]cty.Value{cty.NumberFloatVal(5)})
	require.NoError(t, err)

	f, _ := val.AsBigFloat().Float64()
	require.Equal(t, 2.5, f)
}

func TestFileFunctionResolvesRelativeToConfigFile(t *testing.T) {
	p := setupParser(t)

	c, err := p.ParseFile("./test_fixtures/files/lee.hcl")
	require.NoError(t, err)

	photo, _ := c.Entries[0].Entity.Get("photoUrl")
	require.Equal(t, "https://avatars.com/lee", photo.AsString())
}

func TestDirFunctionReturnsConfigFileFolder(t *testing.T) {
	file := filepath.Join(t.TempDir(), "persons.hcl")

	val, err := getDefaultFunctions(file)["dir"].Call(nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Dir(file), val.AsString())
}
