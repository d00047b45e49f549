package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func floatPtr(f float64) *float64 { return &f }

var trivialAddresses = Addresses{
	&Address{
		Label:      "home",
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		Zip:        "62701",
		Lat:        floatPtr(2.0),
		Lng:        floatPtr(3.0),
		ChangeDesc: []string{"moved in"},
	},
}

func TestAddressesClone(t *testing.T) {
	clone := trivialAddresses.Clone()
	assert.Equal(t, trivialAddresses, clone, "Original does not match clone.")

	*clone[0].Lat = 4.0
	clone[0].ChangeDesc[0] = "moved out"
	clone[0].City = "Shelbyville"

	assert.Equal(t, 2.0, *trivialAddresses[0].Lat)
	assert.Equal(t, "moved in", trivialAddresses[0].ChangeDesc[0])
	assert.Equal(t, "Springfield", trivialAddresses[0].City)
}

func TestNilAddressesCloneToNil(t *testing.T) {
	require.Nil(t, Addresses(nil).Clone())
	require.NotNil(t, Addresses{}.Clone())
}

func TestPromoteChanges(t *testing.T) {
	addrs := trivialAddresses.Clone()

	changes := addrs.PromoteChanges([]string{"name changed"})

	require.Equal(t, []string{"name changed", "home: moved in"}, changes)
	require.Nil(t, addrs[0].ChangeDesc)
}

func TestToCtyRoundTrip(t *testing.T) {
	v, err := trivialAddresses.ToCty()
	require.NoError(t, err)
	require.Equal(t, 1, v.LengthInt())

	addrs, err := AddressesFromCty(v)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	require.Equal(t, "1 Main St", addrs[0].Address1)
	require.Equal(t, 3.0, *addrs[0].Lng)
	require.Nil(t, addrs[0].ChangeDesc)
}

func TestNilAddressesToNull(t *testing.T) {
	v, err := Addresses(nil).ToCty()
	require.NoError(t, err)
	require.True(t, v.IsNull())

	addrs, err := AddressesFromCty(v)
	require.NoError(t, err)
	require.Nil(t, addrs)
}

func TestFromCtyLeavesMissingAttributes(t *testing.T) {
	a, err := FromCty(cty.ObjectVal(map[string]cty.Value{
		"label": cty.StringVal("work"),
		"lat":   cty.NullVal(cty.Number),
	}))
	require.NoError(t, err)

	require.Equal(t, "work", a.Label)
	require.Empty(t, a.City)
	require.Nil(t, a.Lat)
}

func TestFromCtyFailsForNull(t *testing.T) {
	_, err := AddressesFromCty(cty.TupleVal([]cty.Value{cty.NullVal(cty.EmptyObject)}))

	require.Error(t, err)
}
