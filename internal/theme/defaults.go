package theme

// DefaultLight is the built-in light property set a new draft starts
// from. Values mirror the client's stock palette.
func DefaultLight() Properties {
	return Properties{
		Colors: Colors{
			Background:            "#ffffff",
			Foreground:            "#0f172a",
			Card:                  "#ffffff",
			CardForeground:        "#0f172a",
			Popover:               "#ffffff",
			PopoverForeground:     "#0f172a",
			Primary:               "#0f172a",
			PrimaryForeground:     "#f8fafc",
			Secondary:             "#f1f5f9",
			SecondaryForeground:   "#0f172a",
			Muted:                 "#f1f5f9",
			MutedForeground:       "#64748b",
			Accent:                "#f1f5f9",
			AccentForeground:      "#0f172a",
			Destructive:           "#ef4444",
			DestructiveForeground: "#f8fafc",
			Border:                "#e2e8f0",
			Input:                 "#e2e8f0",
			Ring:                  "#0f172a",
			Sidebar: SidebarColors{
				Background:        "#f8fafc",
				Foreground:        "#64748b",
				Primary:           "#0f172a",
				PrimaryForeground: "#f8fafc",
				Accent:            "#f1f5f9",
				AccentForeground:  "#0f172a",
				Border:            "#e2e8f0",
				Ring:              "#0f172a",
			},
		},
		Font: "Inter",
		FontSize: FontSizes{
			Base:  "16px",
			Small: "14px",
			Large: "18px",
		},
		Spacing: Spacing{
			Base:   "16px",
			Small:  "8px",
			Medium: "24px",
			Large:  "32px",
		},
		BorderRadius: SizeScale{
			Small:  "4px",
			Medium: "8px",
			Large:  "12px",
		},
		Shadows: SizeScale{
			Small:  "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			Medium: "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			Large:  "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
		},
	}
}

// DefaultDark is the dark counterpart of DefaultLight.
func DefaultDark() Properties {
	p := DefaultLight()
	p.Colors = Colors{
		Background:            "#0f172a",
		Foreground:            "#f8fafc",
		Card:                  "#1e293b",
		CardForeground:        "#f8fafc",
		Popover:               "#1e293b",
		PopoverForeground:     "#f8fafc",
		Primary:               "#f8fafc",
		PrimaryForeground:     "#0f172a",
		Secondary:             "#1e293b",
		SecondaryForeground:   "#f8fafc",
		Muted:                 "#1e293b",
		MutedForeground:       "#94a3b8",
		Accent:                "#1e293b",
		AccentForeground:      "#f8fafc",
		Destructive:           "#7f1d1d",
		DestructiveForeground: "#f8fafc",
		Border:                "#1e293b",
		Input:                 "#1e293b",
		Ring:                  "#cbd5e1",
		Sidebar: SidebarColors{
			Background:        "#020617",
			Foreground:        "#94a3b8",
			Primary:           "#f8fafc",
			PrimaryForeground: "#0f172a",
			Accent:            "#1e293b",
			AccentForeground:  "#f8fafc",
			Border:            "#1e293b",
			Ring:              "#cbd5e1",
		},
	}
	return p
}
