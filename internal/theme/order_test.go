package theme

import (
	"testing"
	"time"
)

type conn struct{ ID string }

func ids(cs []conn) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestApplyOrder(t *testing.T) {
	items := []conn{{"a"}, {"b"}, {"c"}}

	got := ApplyOrder(items, func(c conn) string { return c.ID }, []string{"c", "a"})
	want := []string{"c", "a", "b"}
	for i, w := range want {
		if got[i].ID != w {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}

	// unranked items keep their relative input order
	got = ApplyOrder([]conn{{"x"}, {"y"}, {"z"}, {"a"}}, func(c conn) string { return c.ID }, []string{"a"})
	want = []string{"a", "x", "y", "z"}
	for i, w := range want {
		if got[i].ID != w {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}

	// empty order is a no-op
	got = ApplyOrder(items, func(c conn) string { return c.ID }, nil)
	for i, w := range []string{"a", "b", "c"} {
		if got[i].ID != w {
			t.Fatalf("empty order reordered items: %v", ids(got))
		}
	}

	// input slice untouched
	_ = ApplyOrder(items, func(c conn) string { return c.ID }, []string{"c"})
	if items[0].ID != "a" {
		t.Fatalf("input mutated: %v", ids(items))
	}
}

func TestThreadLess(t *testing.T) {
	order := []string{"work", "personal"}
	older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	// ranked connection wins regardless of date
	if !ThreadLess(order, "work", "personal", older, newer) {
		t.Fatalf("account rank should beat received time")
	}
	// same rank: newest first
	if !ThreadLess(order, "work", "work", newer, older) {
		t.Fatalf("tie should fall back to received time desc")
	}
	if ThreadLess(order, "work", "work", older, newer) {
		t.Fatalf("older thread sorted first")
	}
	// missing connection id: date only
	if !ThreadLess(order, "", "work", newer, older) {
		t.Fatalf("date fallback for missing connection id")
	}
}
