package theme

import (
	"sort"
	"time"
)

// rankOf returns the position of id in order, or len(order) when the id
// is absent so unranked items sort after every ranked one.
func rankOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return len(order)
}

// ApplyOrder sorts items by the position of their id in order. Items
// whose id is absent keep their relative input order and go last. The
// input slice is not modified.
func ApplyOrder[T any](items []T, id func(T) string, order []string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(order, id(out[i])) < rankOf(order, id(out[j]))
	})
	return out
}

// ThreadLess is the comparator for mail thread sorting: account order
// rank of the owning connection first, then received time, newest
// first. Threads without a connection id fall back to received time.
func ThreadLess(order []string, aConn, bConn string, aReceived, bReceived time.Time) bool {
	if aConn != "" && bConn != "" {
		ar, br := rankOf(order, aConn), rankOf(order, bConn)
		if ar != br {
			return ar < br
		}
	}
	return aReceived.After(bReceived)
}
