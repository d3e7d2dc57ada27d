// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"errors"
	"time"
	"unicode/utf8"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Theme represents a named set of visual properties a user applies to
// the mail client. Public themes are readable by everyone through the
// marketplace but stay writable by their owner only.
type Theme struct{ ent.Schema }

// Fields defines the fields for the Theme entity.
func (Theme) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		// Name length is counted in characters, not bytes.
		field.String("name").NotEmpty().Validate(func(s string) error {
			if utf8.RuneCountInString(s) > 50 {
				return errors.New("name must be at most 50 characters")
			}
			return nil
		}),
		field.String("description").Optional().MaxLen(1000),
		field.Bool("is_public").Default(false),
		// The validated ThemeProperties document. Written wholesale,
		// never patched in place.
		field.JSON("properties", map[string]any{}).SchemaType(map[string]string{
			dialect.MySQL:    "json",
			dialect.Postgres: "jsonb",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Theme entity.
func (Theme) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).Ref("themes").Unique().Required(),
		edge.From("connections", Connection.Type).Ref("theme"),
	}
}

// Indexes defines indexes for the Theme entity.
func (Theme) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		// marketplace keyset ordering
		index.Fields("is_public", "updated_at"),
		index.Fields("updated_at"),
	}
}
