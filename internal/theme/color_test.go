package theme

import "testing"

func TestHexToHSL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"#ffffff", "0 0% 100%"},
		{"#0f172a", "222 47.4% 11.2%"},
		{"#f8fafc", "210 40% 98%"},
		{"#ef4444", "0 84.2% 60.2%"},
		{"#64748b", "215 16.3% 46.9%"},
		{"#abc", "210 25% 73.3%"},
		// Hue fractionally below zero must normalize to "0", not "-0".
		{"#ff0102", "0 100% 50.2%"},
		{"#fe0105", "359 99.2% 50%"},
	}
	for _, tc := range cases {
		got, err := HexToHSL(tc.in)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("HexToHSL(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHSLToHex(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0 0% 100%", "#ffffff"},
		{"222 47.4% 11.2%", "#0f172a"},
		{"210 25% 73.3%", "#aabbcc"},
		{"0 0% 0%", "#000000"},
	}
	for _, tc := range cases {
		got, err := HSLToHex(tc.in)
		if err != nil {
			t.Fatalf("HSLToHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("HSLToHex(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

// One pass of rounding normalizes a color; converting the normalized
// value again must be a fixed point.
func TestConversionIdempotent(t *testing.T) {
	hexes := []string{
		"#ffffff", "#0f172a", "#f8fafc", "#f1f5f9", "#64748b", "#ef4444",
		"#e2e8f0", "#1e293b", "#94a3b8", "#cbd5e1", "#020617", "#7f1d1d",
		"#123456", "#a1b2c3", "#abc",
	}
	for _, x := range hexes {
		norm, err := HexToHSL(x)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", x, err)
		}
		hx, err := HSLToHex(norm)
		if err != nil {
			t.Fatalf("HSLToHex(%q): %v", norm, err)
		}
		again, err := HexToHSL(hx)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", hx, err)
		}
		if again != norm {
			t.Fatalf("round trip of %q drifted: %q -> %q", x, norm, again)
		}
	}
}

func TestMalformedColors(t *testing.T) {
	for _, bad := range []string{"", "ffffff", "#ff", "#ggg", "#12345", "#1234567"} {
		if _, err := HexToHSL(bad); err == nil {
			t.Fatalf("HexToHSL(%q): expected error", bad)
		}
	}
	for _, bad := range []string{"", "210 40%", "x y% z%", "210 40% 98% 1%"} {
		if _, err := HSLToHex(bad); err == nil {
			t.Fatalf("HSLToHex(%q): expected error", bad)
		}
	}
}
