package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Endpoint represents one configured TopoClimb backend instance.
// The registry persists its whole endpoint set here, one row per endpoint.
type Endpoint struct {
	ent.Schema
}

func (Endpoint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.String("base_url").
			Unique().
			NotEmpty().
			Comment("Absolute http(s) base URL ending with a slash, e.g. https://topoclimb.ch/"),
		field.Bool("enabled").
			Default(true),
		// At most one row has is_default=true; the registry enforces this.
		field.Bool("is_default").
			Default(false),
		field.String("auth_token").
			Optional().
			Nillable().
			Sensitive(),
		// Snapshot of the authenticated user on this backend, captured at login.
		field.Int64("user_id").
			Optional().
			Nillable(),
		field.String("username").
			Optional().
			Nillable(),
		field.String("user_email").
			Optional().
			Nillable(),
		// Stored order of the endpoint set; fan-out output follows this order.
		field.Int("position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}
