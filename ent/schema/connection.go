package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Connection is a linked email account. Linking itself happens in the
// mail backend; this service reads connections and maintains their
// optional theme assignment.
type Connection struct{ ent.Schema }

// Fields defines the fields for the Connection entity.
func (Connection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("email").NotEmpty(),
		field.String("name").Optional(),
		field.String("picture").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges defines the relationships for the Connection entity.
func (Connection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).Ref("connections").Unique().Required(),
		// At most one theme; cleared when the theme is deleted.
		edge.To("theme", Theme.Type).Unique(),
	}
}

// Indexes defines indexes for the Connection entity.
func (Connection) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		index.Edges("theme"),
	}
}
