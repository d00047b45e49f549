package persons

import (
	"github.com/jumppad-labs/personsmodel/locations"
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/jumppad-labs/personsmodel/types"
	"github.com/zclconf/go-cty/cty"
)

// PropsSchema is the field table used to validate persons and check them for
// completeness. It is kept apart from the Person struct, Person.Entity maps
// one onto the other.
var PropsSchema = schema.MustBuild(Name, propsModel()...)

func propsModel() []schema.FieldDescriptor {
	props := []schema.FieldDescriptor{}

	for _, n := range []string{"displayName", "phone", "email", "phoneBackup", "photoUrl"} {
		props = append(props, schema.FieldDescriptor{Name: n, Required: true, Writable: true, Type: cty.String})
	}

	for _, n := range []string{"givenName", "familyName", "backupEmail"} {
		props = append(props, schema.FieldDescriptor{Name: n, Required: true, Writable: true, OptionalForComplete: true, Type: cty.String})
	}

	props = append(props, types.UserProps()...)

	return append(props,
		schema.FieldDescriptor{
			Name:     "addresses",
			Required: true,
			Writable: true,
			Kind:     schema.Array,
			Nested:   locations.Schema,
		},
		schema.FieldDescriptor{
			Name:                "changeDesc",
			Required:            true,
			Writable:            true,
			Kind:                schema.Array,
			Type:                cty.List(cty.String),
			UnsetForNew:         true,
			OptionalForComplete: true,
		},
	)
}
