package theme

import "testing"

func TestDraftApply(t *testing.T) {
	d := NewDraft(DefaultLight())
	err := d.Apply(
		Rename{"Slate"},
		ColorSlot{"primary", "#112233"},
		SidebarColorSlot{"ring", "#445566"},
		FontFamily{"Rubik"},
		FontSizeSlot{"base", "15px"},
		SpacingSlot{"large", "40px"},
		RadiusSlot{"medium", "10px"},
		ShadowSlot{"small", "none"},
		Visibility{Public: true},
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if d.Properties.Colors.Primary != "#112233" ||
		d.Properties.Colors.Sidebar.Ring != "#445566" ||
		d.Properties.Font != "Rubik" ||
		d.Properties.FontSize.Base != "15px" ||
		d.Properties.Spacing.Large != "40px" ||
		d.Properties.BorderRadius.Medium != "10px" ||
		d.Properties.Shadows.Small != "none" ||
		!d.IsPublic || d.Name != "Slate" {
		t.Fatalf("updates not applied: %+v", d)
	}
}

func TestDraftApply_UnknownSlotAtomic(t *testing.T) {
	d := NewDraft(DefaultLight())
	err := d.Apply(ColorSlot{"primary", "#112233"}, ColorSlot{"glow", "#fff"})
	if err == nil {
		t.Fatalf("unknown slot accepted")
	}
	// first update must not have leaked through
	if d.Properties.Colors.Primary != DefaultLight().Colors.Primary {
		t.Fatalf("failed apply mutated draft")
	}
}

func TestDraftCommit(t *testing.T) {
	d := NewDraft(DefaultLight())
	if _, _, err := d.Commit(); err == nil {
		t.Fatalf("empty name accepted")
	}

	_ = d.Apply(Rename{"Mine"})
	create, update, err := d.Commit()
	if err != nil || create == nil || update != nil {
		t.Fatalf("want create payload, got create=%v update=%v err=%v", create, update, err)
	}

	e := EditDraft("t1", "Mine", "", false, DefaultLight())
	create, update, err = e.Commit()
	if err != nil || update == nil || create != nil {
		t.Fatalf("want update payload, got create=%v update=%v err=%v", create, update, err)
	}
	if update.ID != "t1" {
		t.Fatalf("update id=%q", update.ID)
	}
}

func TestDraftReset(t *testing.T) {
	d := EditDraft("t1", "Mine", "", false, DefaultLight())
	_ = d.Apply(ColorSlot{"primary", "#112233"})
	d.Reset(DefaultDark())
	if d.Properties != DefaultDark() {
		t.Fatalf("reset did not restore defaults")
	}
	if d.ID != "t1" {
		t.Fatalf("reset unbound the draft")
	}
}
