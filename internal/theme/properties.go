// Package theme holds the pure theming core: the properties schema and
// its validation, color-space conversion, CSS variable projection, the
// editor draft model, and the account-order comparator. Nothing in this
// package touches HTTP or the database.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SidebarColors is the nested slot set for the sidebar surface.
type SidebarColors struct {
	Background        string `json:"background"`
	Foreground        string `json:"foreground"`
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primaryForeground"`
	Accent            string `json:"accent"`
	AccentForeground  string `json:"accentForeground"`
	Border            string `json:"border"`
	Ring              string `json:"ring"`
}

// Colors enumerates every color slot a theme must define. Values are
// strings in either "#RRGGBB" hex or "H S% L%" HSL triplet form.
type Colors struct {
	Background            string        `json:"background"`
	Foreground            string        `json:"foreground"`
	Card                  string        `json:"card"`
	CardForeground        string        `json:"cardForeground"`
	Popover               string        `json:"popover"`
	PopoverForeground     string        `json:"popoverForeground"`
	Primary               string        `json:"primary"`
	PrimaryForeground     string        `json:"primaryForeground"`
	Secondary             string        `json:"secondary"`
	SecondaryForeground   string        `json:"secondaryForeground"`
	Muted                 string        `json:"muted"`
	MutedForeground       string        `json:"mutedForeground"`
	Accent                string        `json:"accent"`
	AccentForeground      string        `json:"accentForeground"`
	Destructive           string        `json:"destructive"`
	DestructiveForeground string        `json:"destructiveForeground"`
	Border                string        `json:"border"`
	Input                 string        `json:"input"`
	Ring                  string        `json:"ring"`
	Sidebar               SidebarColors `json:"sidebar"`
}

// FontSizes holds the named font-size slots.
type FontSizes struct {
	Base  string `json:"base"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// Spacing holds the named spacing slots.
type Spacing struct {
	Base   string `json:"base"`
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// SizeScale holds small/medium/large slots (border radii, shadows).
type SizeScale struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Properties is the canonical shape of a theme's visual attributes.
// It is treated as a value: edits replace the whole document.
type Properties struct {
	Colors       Colors    `json:"colors"`
	Font         string    `json:"font"`
	FontSize     FontSizes `json:"fontSize"`
	Spacing      Spacing   `json:"spacing"`
	BorderRadius SizeScale `json:"borderRadius"`
	Shadows      SizeScale `json:"shadows"`
}

// ValidationError reports a malformed properties document.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func missing(field string) error {
	return &ValidationError{Field: field, Msg: "slot is required"}
}

// ValidateProperties decodes raw JSON into Properties. Validation is
// strict: unknown keys at any nesting level are rejected, every slot
// must be present and non-empty. Only shape is checked; color and size
// strings are not interpreted server-side.
func ValidateProperties(raw []byte) (Properties, error) {
	var p Properties
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Properties{}, &ValidationError{Msg: err.Error()}
	}
	if err := p.Check(); err != nil {
		return Properties{}, err
	}
	return p, nil
}

// Check verifies that every slot carries a value.
func (p Properties) Check() error {
	slots := map[string]string{
		"colors.background":            p.Colors.Background,
		"colors.foreground":            p.Colors.Foreground,
		"colors.card":                  p.Colors.Card,
		"colors.cardForeground":        p.Colors.CardForeground,
		"colors.popover":               p.Colors.Popover,
		"colors.popoverForeground":     p.Colors.PopoverForeground,
		"colors.primary":               p.Colors.Primary,
		"colors.primaryForeground":     p.Colors.PrimaryForeground,
		"colors.secondary":             p.Colors.Secondary,
		"colors.secondaryForeground":   p.Colors.SecondaryForeground,
		"colors.muted":                 p.Colors.Muted,
		"colors.mutedForeground":       p.Colors.MutedForeground,
		"colors.accent":                p.Colors.Accent,
		"colors.accentForeground":      p.Colors.AccentForeground,
		"colors.destructive":           p.Colors.Destructive,
		"colors.destructiveForeground": p.Colors.DestructiveForeground,
		"colors.border":                p.Colors.Border,
		"colors.input":                 p.Colors.Input,
		"colors.ring":                  p.Colors.Ring,

		"colors.sidebar.background":        p.Colors.Sidebar.Background,
		"colors.sidebar.foreground":        p.Colors.Sidebar.Foreground,
		"colors.sidebar.primary":           p.Colors.Sidebar.Primary,
		"colors.sidebar.primaryForeground": p.Colors.Sidebar.PrimaryForeground,
		"colors.sidebar.accent":            p.Colors.Sidebar.Accent,
		"colors.sidebar.accentForeground":  p.Colors.Sidebar.AccentForeground,
		"colors.sidebar.border":            p.Colors.Sidebar.Border,
		"colors.sidebar.ring":              p.Colors.Sidebar.Ring,

		"font": p.Font,

		"fontSize.base":  p.FontSize.Base,
		"fontSize.small": p.FontSize.Small,
		"fontSize.large": p.FontSize.Large,

		"spacing.base":   p.Spacing.Base,
		"spacing.small":  p.Spacing.Small,
		"spacing.medium": p.Spacing.Medium,
		"spacing.large":  p.Spacing.Large,

		"borderRadius.small":  p.BorderRadius.Small,
		"borderRadius.medium": p.BorderRadius.Medium,
		"borderRadius.large":  p.BorderRadius.Large,

		"shadows.small":  p.Shadows.Small,
		"shadows.medium": p.Shadows.Medium,
		"shadows.large":  p.Shadows.Large,
	}
	for field, v := range slots {
		if v == "" {
			return missing(field)
		}
	}
	return nil
}

// AsMap converts Properties to the generic document stored in the
// themes table's JSON column.
func (p Properties) AsMap() map[string]any {
	b, _ := json.Marshal(p)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// FromMap decodes a stored JSON document back into Properties. Stored
// documents were validated on write, so this is lenient on purpose.
func FromMap(m map[string]any) Properties {
	b, _ := json.Marshal(m)
	var p Properties
	_ = json.Unmarshal(b, &p)
	return p
}
