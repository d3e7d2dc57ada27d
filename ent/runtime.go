// Code generated by ent, DO NOT EDIT.

package ent

import (
	"mailtheme-api/ent/connection"
	"mailtheme-api/ent/schema"
	"mailtheme-api/ent/settings"
	"mailtheme-api/ent/theme"
	"mailtheme-api/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	connectionFields := schema.Connection{}.Fields()
	_ = connectionFields
	// connectionDescEmail is the schema descriptor for email field.
	connectionDescEmail := connectionFields[1].Descriptor()
	// connection.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	connection.EmailValidator = connectionDescEmail.Validators[0].(func(string) error)
	// connectionDescCreatedAt is the schema descriptor for created_at field.
	connectionDescCreatedAt := connectionFields[4].Descriptor()
	// connection.DefaultCreatedAt holds the default value on creation for the created_at field.
	connection.DefaultCreatedAt = connectionDescCreatedAt.Default.(func() time.Time)
	// connectionDescID is the schema descriptor for id field.
	connectionDescID := connectionFields[0].Descriptor()
	// connection.DefaultID holds the default value on creation for the id field.
	connection.DefaultID = connectionDescID.Default.(func() uuid.UUID)
	settingsFields := schema.Settings{}.Fields()
	_ = settingsFields
	// settingsDescAccountOrder is the schema descriptor for account_order field.
	settingsDescAccountOrder := settingsFields[1].Descriptor()
	// settings.DefaultAccountOrder holds the default value on creation for the account_order field.
	settings.DefaultAccountOrder = settingsDescAccountOrder.Default.([]string)
	// settingsDescUpdatedAt is the schema descriptor for updated_at field.
	settingsDescUpdatedAt := settingsFields[2].Descriptor()
	// settings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	settings.DefaultUpdatedAt = settingsDescUpdatedAt.Default.(func() time.Time)
	// settings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	settings.UpdateDefaultUpdatedAt = settingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// settingsDescID is the schema descriptor for id field.
	settingsDescID := settingsFields[0].Descriptor()
	// settings.DefaultID holds the default value on creation for the id field.
	settings.DefaultID = settingsDescID.Default.(func() uuid.UUID)
	themeFields := schema.Theme{}.Fields()
	_ = themeFields
	// themeDescName is the schema descriptor for name field.
	themeDescName := themeFields[1].Descriptor()
	// theme.NameValidator is a validator for the "name" field. It is called by the builders before save.
	theme.NameValidator = func() func(string) error {
		validators := themeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// themeDescDescription is the schema descriptor for description field.
	themeDescDescription := themeFields[2].Descriptor()
	// theme.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	theme.DescriptionValidator = themeDescDescription.Validators[0].(func(string) error)
	// themeDescIsPublic is the schema descriptor for is_public field.
	themeDescIsPublic := themeFields[3].Descriptor()
	// theme.DefaultIsPublic holds the default value on creation for the is_public field.
	theme.DefaultIsPublic = themeDescIsPublic.Default.(bool)
	// themeDescCreatedAt is the schema descriptor for created_at field.
	themeDescCreatedAt := themeFields[5].Descriptor()
	// theme.DefaultCreatedAt holds the default value on creation for the created_at field.
	theme.DefaultCreatedAt = themeDescCreatedAt.Default.(func() time.Time)
	// themeDescUpdatedAt is the schema descriptor for updated_at field.
	themeDescUpdatedAt := themeFields[6].Descriptor()
	// theme.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	theme.DefaultUpdatedAt = themeDescUpdatedAt.Default.(func() time.Time)
	// theme.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	theme.UpdateDefaultUpdatedAt = themeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// themeDescID is the schema descriptor for id field.
	themeDescID := themeFields[0].Descriptor()
	// theme.DefaultID holds the default value on creation for the id field.
	theme.DefaultID = themeDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
