package edict

import (
	"slices"
	"strings"
)

// Compare orders records by sort key, then by headword. Strings compare
// by UTF-8 bytes, which is code point order.
func Compare(a, b Record) int {
	if c := strings.Compare(a.Key(), b.Key()); c != 0 {
		return c
	}
	return strings.Compare(a.Headword, b.Headword)
}

// Sort orders records in place. Records with equal keys and headwords keep
// their file order.
func Sort(records []Record) {
	slices.SortStableFunc(records, Compare)
}
