package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Settings is the per-user preference record. account_order holds
// connection ids in display priority; ids missing from it sort last and
// stale ids are ignored by consumers, so the list is stored verbatim.
type Settings struct{ ent.Schema }

// Fields defines the fields for the Settings entity.
func (Settings) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.JSON("account_order", []string{}).SchemaType(map[string]string{
			dialect.MySQL:    "json",
			dialect.Postgres: "jsonb",
		}).Default([]string{}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Settings entity.
func (Settings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("settings").Unique().Required(),
	}
}
