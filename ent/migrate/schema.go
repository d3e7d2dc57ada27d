// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConnectionsColumns holds the columns for the "connections" table.
	ConnectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "picture", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "connection_theme", Type: field.TypeUUID, Nullable: true},
		{Name: "user_connections", Type: field.TypeUUID},
	}
	// ConnectionsTable holds the schema information for the "connections" table.
	ConnectionsTable = &schema.Table{
		Name:       "connections",
		Columns:    ConnectionsColumns,
		PrimaryKey: []*schema.Column{ConnectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "connections_themes_theme",
				Columns:    []*schema.Column{ConnectionsColumns[5]},
				RefColumns: []*schema.Column{ThemesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "connections_users_connections",
				Columns:    []*schema.Column{ConnectionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "connection_user_connections",
				Unique:  false,
				Columns: []*schema.Column{ConnectionsColumns[6]},
			},
			{
				Name:    "connection_connection_theme",
				Unique:  false,
				Columns: []*schema.Column{ConnectionsColumns[5]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_order", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_settings", Type: field.TypeUUID, Unique: true},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "settings_users_settings",
				Columns:    []*schema.Column{SettingsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ThemesColumns holds the columns for the "themes" table.
	ThemesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "is_public", Type: field.TypeBool, Default: false},
		{Name: "properties", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_themes", Type: field.TypeUUID},
	}
	// ThemesTable holds the schema information for the "themes" table.
	ThemesTable = &schema.Table{
		Name:       "themes",
		Columns:    ThemesColumns,
		PrimaryKey: []*schema.Column{ThemesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "themes_users_themes",
				Columns:    []*schema.Column{ThemesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "theme_user_themes",
				Unique:  false,
				Columns: []*schema.Column{ThemesColumns[7]},
			},
			{
				Name:    "theme_is_public_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ThemesColumns[3], ThemesColumns[6]},
			},
			{
				Name:    "theme_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ThemesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "default_connection_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConnectionsTable,
		SettingsTable,
		ThemesTable,
		UsersTable,
	}
)

func init() {
	ConnectionsTable.ForeignKeys[0].RefTable = ThemesTable
	ConnectionsTable.ForeignKeys[1].RefTable = UsersTable
	SettingsTable.ForeignKeys[0].RefTable = UsersTable
	ThemesTable.ForeignKeys[0].RefTable = UsersTable
}
