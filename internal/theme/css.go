package theme

import (
	"regexp"
	"strings"
)

// Declaration is a single CSS custom-property assignment.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// KebabCase converts a camelCase slot name to its CSS variable form.
func KebabCase(s string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(s, "$1-$2"))
}

// Declarations projects a property set onto the CSS variables the mail
// client consumes. It is the only theme-application surface: callers
// own the style sink (document root, preview frame, emitted stylesheet)
// and apply the returned declarations themselves. Order is stable.
func Declarations(p Properties) []Declaration {
	var out []Declaration
	add := func(prop, val string) {
		out = append(out, Declaration{Property: prop, Value: val})
	}

	colorSlots := []struct{ name, val string }{
		{"background", p.Colors.Background},
		{"foreground", p.Colors.Foreground},
		{"card", p.Colors.Card},
		{"cardForeground", p.Colors.CardForeground},
		{"popover", p.Colors.Popover},
		{"popoverForeground", p.Colors.PopoverForeground},
		{"primary", p.Colors.Primary},
		{"primaryForeground", p.Colors.PrimaryForeground},
		{"secondary", p.Colors.Secondary},
		{"secondaryForeground", p.Colors.SecondaryForeground},
		{"muted", p.Colors.Muted},
		{"mutedForeground", p.Colors.MutedForeground},
		{"accent", p.Colors.Accent},
		{"accentForeground", p.Colors.AccentForeground},
		{"destructive", p.Colors.Destructive},
		{"destructiveForeground", p.Colors.DestructiveForeground},
		{"border", p.Colors.Border},
		{"input", p.Colors.Input},
		{"ring", p.Colors.Ring},
	}
	for _, s := range colorSlots {
		add("--"+KebabCase(s.name), s.val)
	}

	sidebarSlots := []struct{ name, val string }{
		{"background", p.Colors.Sidebar.Background},
		{"foreground", p.Colors.Sidebar.Foreground},
		{"primary", p.Colors.Sidebar.Primary},
		{"primaryForeground", p.Colors.Sidebar.PrimaryForeground},
		{"accent", p.Colors.Sidebar.Accent},
		{"accentForeground", p.Colors.Sidebar.AccentForeground},
		{"border", p.Colors.Sidebar.Border},
		{"ring", p.Colors.Sidebar.Ring},
	}
	for _, s := range sidebarSlots {
		add("--sidebar-"+KebabCase(s.name), s.val)
	}

	add("--font-body", p.Font)

	add("--font-size-base", p.FontSize.Base)
	add("--font-size-small", p.FontSize.Small)
	add("--font-size-large", p.FontSize.Large)

	add("--spacing-base", p.Spacing.Base)
	add("--spacing-small", p.Spacing.Small)
	add("--spacing-medium", p.Spacing.Medium)
	add("--spacing-large", p.Spacing.Large)

	add("--radius-small", p.BorderRadius.Small)
	add("--radius-medium", p.BorderRadius.Medium)
	add("--radius-large", p.BorderRadius.Large)
	// legacy alias the client still reads
	add("--radius", p.BorderRadius.Medium)

	add("--shadow-small", p.Shadows.Small)
	add("--shadow-medium", p.Shadows.Medium)
	add("--shadow-large", p.Shadows.Large)

	return out
}
