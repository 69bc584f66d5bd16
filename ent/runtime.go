// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/topoclimb/topoclimb-gateway/ent/endpoint"
	"github.com/topoclimb/topoclimb-gateway/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	endpointFields := schema.Endpoint{}.Fields()
	_ = endpointFields
	// endpointDescName is the schema descriptor for name field.
	endpointDescName := endpointFields[1].Descriptor()
	// endpoint.NameValidator is a validator for the "name" field. It is called by the builders before save.
	endpoint.NameValidator = endpointDescName.Validators[0].(func(string) error)
	// endpointDescBaseURL is the schema descriptor for base_url field.
	endpointDescBaseURL := endpointFields[2].Descriptor()
	// endpoint.BaseURLValidator is a validator for the "base_url" field. It is called by the builders before save.
	endpoint.BaseURLValidator = endpointDescBaseURL.Validators[0].(func(string) error)
	// endpointDescEnabled is the schema descriptor for enabled field.
	endpointDescEnabled := endpointFields[3].Descriptor()
	// endpoint.DefaultEnabled holds the default value on creation for the enabled field.
	endpoint.DefaultEnabled = endpointDescEnabled.Default.(bool)
	// endpointDescIsDefault is the schema descriptor for is_default field.
	endpointDescIsDefault := endpointFields[4].Descriptor()
	// endpoint.DefaultIsDefault holds the default value on creation for the is_default field.
	endpoint.DefaultIsDefault = endpointDescIsDefault.Default.(bool)
	// endpointDescPosition is the schema descriptor for position field.
	endpointDescPosition := endpointFields[9].Descriptor()
	// endpoint.DefaultPosition holds the default value on creation for the position field.
	endpoint.DefaultPosition = endpointDescPosition.Default.(int)
	// endpointDescCreatedAt is the schema descriptor for created_at field.
	endpointDescCreatedAt := endpointFields[10].Descriptor()
	// endpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	endpoint.DefaultCreatedAt = endpointDescCreatedAt.Default.(func() time.Time)
	// endpointDescUpdatedAt is the schema descriptor for updated_at field.
	endpointDescUpdatedAt := endpointFields[11].Descriptor()
	// endpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	endpoint.DefaultUpdatedAt = endpointDescUpdatedAt.Default.(func() time.Time)
	// endpointDescID is the schema descriptor for id field.
	endpointDescID := endpointFields[0].Descriptor()
	// endpoint.DefaultID holds the default value on creation for the id field.
	endpoint.DefaultID = endpointDescID.Default.(func() uuid.UUID)
}
