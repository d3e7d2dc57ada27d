package kit

import "testing"

func TestParseSortSpec(t *testing.T) {
	if f, asc, err := parseSortSpec("updated_at:desc"); err != nil || f != "updated_at" || asc {
		t.Fatalf("got f=%q asc=%v err=%v", f, asc, err)
	}
	if f, asc, err := parseSortSpec("name"); err != nil || f != "name" || !asc {
		t.Fatalf("got f=%q asc=%v err=%v", f, asc, err)
	}
	if _, _, err := parseSortSpec("name:sideways"); err == nil {
		t.Fatalf("invalid direction accepted")
	}
}
