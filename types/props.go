package types

import (
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/zclconf/go-cty/cty"
)

// UserProps returns the field descriptors shared by every model that embeds
// User, callers append their own fields to build a schema
func UserProps() []schema.FieldDescriptor {
	return []schema.FieldDescriptor{
		{Name: "pubId", Required: true, Type: cty.String},
		{Name: "legalID", Required: true, Writable: true, Type: cty.String},
		{Name: "legalIDType", Required: true, Writable: true, Type: cty.String},
		{Name: "active", Required: true, Writable: true, Type: cty.Bool},
		{Name: "authId", Required: true, Type: cty.String},
		// set by the storage layer on every write
		{Name: "lastUpdated", Required: true, OptionalForComplete: true, Type: cty.String},
	}
}
