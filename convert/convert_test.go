package convert

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type testLocation struct {
	Label string   `cty:"label"`
	Lat   *float64 `cty:"lat"`
	Notes []string
}

func TestGoToCtyValueConvertsStruct(t *testing.T) {
	lat := 2.5
	v, err := GoToCtyValue(testLocation{Label: "home", Lat: &lat})
	require.NoError(t, err)

	require.Equal(t, "home", v.GetAttr("label").AsString())
	require.False(t, v.Type().HasAttribute("Notes"))

	f, _ := v.GetAttr("lat").AsBigFloat().Float64()
	require.Equal(t, 2.5, f)
}

func TestGoToCtyValueNilSliceIsNull(t *testing.T) {
	var locs []*testLocation

	v, err := GoToCtyValue(locs)
	require.NoError(t, err)
	require.True(t, v.IsNull())

	v, err = GoToCtyValue([]*testLocation{})
	require.NoError(t, err)
	require.False(t, v.IsNull())
	require.Equal(t, 0, v.LengthInt())
}

func TestGoToCtyValueFailsForUnsupportedType(t *testing.T) {
	_, err := GoToCtyValue(make(chan int))

	require.Error(t, err)
}

func TestCtyToGoLeavesTargetForNull(t *testing.T) {
	s := "unchanged"

	require.NoError(t, CtyToGo(cty.NullVal(cty.String), &s))
	require.Equal(t, "unchanged", s)

	require.NoError(t, CtyToGo(cty.StringVal("changed"), &s))
	require.Equal(t, "changed", s)
}

func TestAttrToGoDecodesAttribute(t *testing.T) {
	obj := cty.ObjectVal(map[string]cty.Value{
		"label": cty.StringVal("home"),
		"lat":   cty.NumberFloatVal(1.5),
		"city":  cty.NullVal(cty.String),
	})

	l := testLocation{}
	require.NoError(t, AttrToGo(obj, "label", &l.Label))
	require.NoError(t, AttrToGo(obj, "lat", &l.Lat))
	require.NoError(t, AttrToGo(obj, "missing", &l.Label))

	require.Equal(t, "home", l.Label)
	require.NotNil(t, l.Lat)
	require.Equal(t, 1.5, *l.Lat)

	city := "none"
	require.NoError(t, AttrToGo(obj, "city", &city))
	require.Equal(t, "none", city)
}

func TestAttrToGoFailsForWrongType(t *testing.T) {
	obj := cty.ObjectVal(map[string]cty.Value{
		"label": cty.True,
	})

	l := testLocation{}
	err := AttrToGo(obj, "label", &l.Lat)

	require.Error(t, err)
	require.Contains(t, err.Error(), "attribute 'label'")
}
