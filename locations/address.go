package locations

import (
	"fmt"

	"github.com/jumppad-labs/personsmodel/convert"
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/zclconf/go-cty/cty"
)

// Schema describes an address when it is held by another entity, i.e. the
// addresses of a person
var Schema = schema.MustBuild("address",
	schema.FieldDescriptor{Name: "label", Required: true, Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "address1", Required: true, Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "address2", Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "city", Required: true, Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "state", Required: true, Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "zip", Required: true, Writable: true, Type: cty.String},
	schema.FieldDescriptor{Name: "lat", Writable: true, Type: cty.Number},
	schema.FieldDescriptor{Name: "lng", Writable: true, Type: cty.Number},
)

type Address struct {
	Label    string   `json:"label" cty:"label"`
	Address1 string   `json:"address1" cty:"address1"`
	Address2 string   `json:"address2,omitempty" cty:"address2"`
	City     string   `json:"city" cty:"city"`
	State    string   `json:"state" cty:"state"`
	Zip      string   `json:"zip" cty:"zip"`
	Lat      *float64 `json:"lat,omitempty" cty:"lat"`
	Lng      *float64 `json:"lng,omitempty" cty:"lng"`

	// ChangeDesc lists human readable descriptions of unsaved changes
	ChangeDesc []string `json:"changeDesc,omitempty"`
}

func (a *Address) Clone() *Address {
	c := *a

	if a.Lat != nil {
		lat := *a.Lat
		c.Lat = &lat
	}

	if a.Lng != nil {
		lng := *a.Lng
		c.Lng = &lng
	}

	if a.ChangeDesc != nil {
		c.ChangeDesc = make([]string, len(a.ChangeDesc))
		copy(c.ChangeDesc, a.ChangeDesc)
	}

	return &c
}

// FromCty decodes an address object, missing or null attributes are left
// at their zero value
func FromCty(v cty.Value) (*Address, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("address must not be null")
	}

	a := &Address{}
	targets := map[string]any{
		"label":    &a.Label,
		"address1": &a.Address1,
		"address2": &a.Address2,
		"city":     &a.City,
		"state":    &a.State,
		"zip":      &a.Zip,
		"lat":      &a.Lat,
		"lng":      &a.Lng,
	}

	for _, name := range Schema.Names() {
		if err := convert.AttrToGo(v, name, targets[name]); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Addresses is an ordered list of addresses, a nil list means the addresses
// have not been loaded while an empty list means there are none
type Addresses []*Address

func (a Addresses) Clone() Addresses {
	if a == nil {
		return nil
	}

	c := make(Addresses, len(a))
	for i, addr := range a {
		c[i] = addr.Clone()
	}

	return c
}

// PromoteChanges moves the change descriptions of every address onto
// changeDesc, prefixed with the address label, and returns the result
func (a Addresses) PromoteChanges(changeDesc []string) []string {
	for _, addr := range a {
		for _, d := range addr.ChangeDesc {
			changeDesc = append(changeDesc, fmt.Sprintf("%s: %s", addr.Label, d))
		}

		addr.ChangeDesc = nil
	}

	return changeDesc
}

// ToCty converts the addresses to a cty list, nil addresses convert to null
func (a Addresses) ToCty() (cty.Value, error) {
	return convert.GoToCtyValue(a)
}

// AddressesFromCty decodes a list, set or tuple of address objects, null
// decodes to nil Addresses
func AddressesFromCty(v cty.Value) (Addresses, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}

	addrs := make(Addresses, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()

		a, err := FromCty(el)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", len(addrs), err)
		}

		addrs = append(addrs, a)
	}

	return addrs, nil
}
