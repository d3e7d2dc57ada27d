package theme

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateProperties_Defaults(t *testing.T) {
	for _, p := range []Properties{DefaultLight(), DefaultDark()} {
		b, _ := json.Marshal(p)
		got, err := ValidateProperties(b)
		if err != nil {
			t.Fatalf("validate defaults: %v", err)
		}
		if got != p {
			t.Fatalf("roundtrip changed properties")
		}
	}
}

func TestValidateProperties_MissingSlot(t *testing.T) {
	p := DefaultLight()
	p.Colors.Sidebar.Ring = ""
	b, _ := json.Marshal(p)
	_, err := ValidateProperties(b)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "colors.sidebar.ring" {
		t.Fatalf("field=%q", verr.Field)
	}
}

func TestValidateProperties_UnknownKey(t *testing.T) {
	b, _ := json.Marshal(DefaultLight().AsMap())
	doc := strings.Replace(string(b), `"font"`, `"glow":"on","font"`, 1)
	if _, err := ValidateProperties([]byte(doc)); err == nil {
		t.Fatalf("unknown top-level key accepted")
	}

	var m map[string]any
	_ = json.Unmarshal(b, &m)
	m["colors"].(map[string]any)["sidebar"].(map[string]any)["halo"] = "#fff"
	b2, _ := json.Marshal(m)
	if _, err := ValidateProperties(b2); err == nil {
		t.Fatalf("unknown nested key accepted")
	}
}

func TestValidateProperties_NonString(t *testing.T) {
	var m map[string]any
	b, _ := json.Marshal(DefaultLight())
	_ = json.Unmarshal(b, &m)
	m["fontSize"].(map[string]any)["base"] = 16
	b2, _ := json.Marshal(m)
	if _, err := ValidateProperties(b2); err == nil {
		t.Fatalf("numeric slot accepted")
	}
}

func TestMapRoundTrip(t *testing.T) {
	p := DefaultDark()
	if got := FromMap(p.AsMap()); got != p {
		t.Fatalf("AsMap/FromMap not symmetric")
	}
}
