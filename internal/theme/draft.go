package theme

import "fmt"

// Draft is an unpersisted working copy of a theme being edited. It is
// never partially saved: Commit produces the full payload for a create
// or update call, and an abandoned draft is simply dropped.
type Draft struct {
	ID          string // empty for a new theme
	Name        string
	Description string
	IsPublic    bool
	Properties  Properties
}

// NewDraft starts a draft for a new theme from a default property set.
func NewDraft(defaults Properties) Draft {
	return Draft{Properties: defaults}
}

// EditDraft starts a draft from an existing theme.
func EditDraft(id, name, description string, isPublic bool, props Properties) Draft {
	return Draft{ID: id, Name: name, Description: description, IsPublic: isPublic, Properties: props}
}

// Reset discards edits, keeping the draft bound to the same theme id.
func (d *Draft) Reset(defaults Properties) {
	d.Properties = defaults
}

// FieldUpdate is one edit to a draft. The variant carries which slot it
// addresses, so there is no string-path traversal anywhere.
type FieldUpdate interface {
	apply(*Draft) error
}

// ColorSlot sets a top-level color slot.
type ColorSlot struct{ Slot, Value string }

// SidebarColorSlot sets a sidebar color slot.
type SidebarColorSlot struct{ Slot, Value string }

// FontFamily sets the body font.
type FontFamily struct{ Value string }

// FontSizeSlot sets a font-size slot.
type FontSizeSlot struct{ Slot, Value string }

// SpacingSlot sets a spacing slot.
type SpacingSlot struct{ Slot, Value string }

// RadiusSlot sets a border-radius slot.
type RadiusSlot struct{ Slot, Value string }

// ShadowSlot sets a shadow slot.
type ShadowSlot struct{ Slot, Value string }

// Rename sets the draft name.
type Rename struct{ Value string }

// Describe sets the draft description.
type Describe struct{ Value string }

// Visibility toggles marketplace publication.
type Visibility struct{ Public bool }

// Apply applies updates in order; the draft is unchanged if any update
// addresses an unknown slot.
func (d *Draft) Apply(updates ...FieldUpdate) error {
	next := *d
	for _, u := range updates {
		if err := u.apply(&next); err != nil {
			return err
		}
	}
	*d = next
	return nil
}

func unknownSlot(kind, slot string) error {
	return &ValidationError{Field: slot, Msg: fmt.Sprintf("unknown %s slot", kind)}
}

func (u ColorSlot) apply(d *Draft) error {
	c := &d.Properties.Colors
	targets := map[string]*string{
		"background":            &c.Background,
		"foreground":            &c.Foreground,
		"card":                  &c.Card,
		"cardForeground":        &c.CardForeground,
		"popover":               &c.Popover,
		"popoverForeground":     &c.PopoverForeground,
		"primary":               &c.Primary,
		"primaryForeground":     &c.PrimaryForeground,
		"secondary":             &c.Secondary,
		"secondaryForeground":   &c.SecondaryForeground,
		"muted":                 &c.Muted,
		"mutedForeground":       &c.MutedForeground,
		"accent":                &c.Accent,
		"accentForeground":      &c.AccentForeground,
		"destructive":           &c.Destructive,
		"destructiveForeground": &c.DestructiveForeground,
		"border":                &c.Border,
		"input":                 &c.Input,
		"ring":                  &c.Ring,
	}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("color", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u SidebarColorSlot) apply(d *Draft) error {
	s := &d.Properties.Colors.Sidebar
	targets := map[string]*string{
		"background":        &s.Background,
		"foreground":        &s.Foreground,
		"primary":           &s.Primary,
		"primaryForeground": &s.PrimaryForeground,
		"accent":            &s.Accent,
		"accentForeground":  &s.AccentForeground,
		"border":            &s.Border,
		"ring":              &s.Ring,
	}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("sidebar color", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u FontFamily) apply(d *Draft) error {
	d.Properties.Font = u.Value
	return nil
}

func (u FontSizeSlot) apply(d *Draft) error {
	f := &d.Properties.FontSize
	targets := map[string]*string{"base": &f.Base, "small": &f.Small, "large": &f.Large}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("font size", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u SpacingSlot) apply(d *Draft) error {
	s := &d.Properties.Spacing
	targets := map[string]*string{"base": &s.Base, "small": &s.Small, "medium": &s.Medium, "large": &s.Large}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("spacing", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u RadiusSlot) apply(d *Draft) error {
	r := &d.Properties.BorderRadius
	targets := map[string]*string{"small": &r.Small, "medium": &r.Medium, "large": &r.Large}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("border radius", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u ShadowSlot) apply(d *Draft) error {
	s := &d.Properties.Shadows
	targets := map[string]*string{"small": &s.Small, "medium": &s.Medium, "large": &s.Large}
	t, ok := targets[u.Slot]
	if !ok {
		return unknownSlot("shadow", u.Slot)
	}
	*t = u.Value
	return nil
}

func (u Rename) apply(d *Draft) error {
	d.Name = u.Value
	return nil
}

func (u Describe) apply(d *Draft) error {
	d.Description = u.Value
	return nil
}

func (u Visibility) apply(d *Draft) error {
	d.IsPublic = u.Public
	return nil
}

// CreatePayload is the body of a theme create call.
type CreatePayload struct {
	Name        string
	Description string
	IsPublic    bool
	Properties  Properties
}

// UpdatePayload is the body of a theme update call. Properties are sent
// whole: the editor never issues deep partial property merges.
type UpdatePayload struct {
	ID          string
	Name        string
	Description string
	IsPublic    bool
	Properties  Properties
}

// Commit resolves the draft into the call it should trigger: a create
// when the draft has no id, otherwise an update.
func (d Draft) Commit() (create *CreatePayload, update *UpdatePayload, err error) {
	if len(d.Name) == 0 || len(d.Name) > 50 {
		return nil, nil, &ValidationError{Field: "name", Msg: "must be 1-50 characters"}
	}
	if err := d.Properties.Check(); err != nil {
		return nil, nil, err
	}
	if d.ID == "" {
		return &CreatePayload{Name: d.Name, Description: d.Description, IsPublic: d.IsPublic, Properties: d.Properties}, nil, nil
	}
	return nil, &UpdatePayload{ID: d.ID, Name: d.Name, Description: d.Description, IsPublic: d.IsPublic, Properties: d.Properties}, nil
}
