package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity. Accounts are
// provisioned by the external identity provider; this service only
// stores theming-relevant state.
type User struct{ ent.Schema }

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("display_name").Optional(),
		field.String("email").Optional(),
		// Which connection the mail client opens by default.
		field.UUID("default_connection_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Immutable().Default(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("themes", Theme.Type),
		edge.To("connections", Connection.Type),
		edge.To("settings", Settings.Type).Unique(),
	}
}
