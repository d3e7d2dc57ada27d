package theme

import "testing"

func TestKebabCase(t *testing.T) {
	cases := map[string]string{
		"background":            "background",
		"cardForeground":        "card-foreground",
		"destructiveForeground": "destructive-foreground",
	}
	for in, want := range cases {
		if got := KebabCase(in); got != want {
			t.Fatalf("KebabCase(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestDeclarations(t *testing.T) {
	p := DefaultLight()
	decls := Declarations(p)

	byProp := make(map[string]string, len(decls))
	for _, d := range decls {
		if _, dup := byProp[d.Property]; dup {
			t.Fatalf("duplicate declaration %q", d.Property)
		}
		byProp[d.Property] = d.Value
	}

	want := map[string]string{
		"--background":          p.Colors.Background,
		"--card-foreground":     p.Colors.CardForeground,
		"--sidebar-background":  p.Colors.Sidebar.Background,
		"--sidebar-accent-foreground": p.Colors.Sidebar.AccentForeground,
		"--font-body":           p.Font,
		"--font-size-base":      p.FontSize.Base,
		"--spacing-large":       p.Spacing.Large,
		"--radius":              p.BorderRadius.Medium,
		"--shadow-medium":       p.Shadows.Medium,
	}
	for prop, val := range want {
		if byProp[prop] != val {
			t.Fatalf("%s=%q, want %q", prop, byProp[prop], val)
		}
	}

	// projection is order-stable
	again := Declarations(p)
	for i := range decls {
		if decls[i] != again[i] {
			t.Fatalf("declaration order unstable at %d", i)
		}
	}
}
