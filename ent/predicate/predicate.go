// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Connection is the predicate function for connection builders.
type Connection func(*sql.Selector)

// Settings is the predicate function for settings builders.
type Settings func(*sql.Selector)

// Theme is the predicate function for theme builders.
type Theme func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
