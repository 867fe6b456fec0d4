package types

import (
	"cmp"
	"slices"
)

// Entry is a single todo item. Entries are values; commands replace them
// wholesale and never edit one in place.
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// NewEntry returns an Entry with the given name and description.
func NewEntry(name, description string) Entry {
	return Entry{Name: name, Description: description}
}

// Compare orders entries by name, then by description, byte-wise.
// It returns -1, 0 or +1 like cmp.Compare.
func (e Entry) Compare(other Entry) int {
	if c := cmp.Compare(e.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(e.Description, other.Description)
}

// SortEntries returns a sorted copy of entries. The input is not modified.
func SortEntries(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, Entry.Compare)
	return sorted
}

// RankOf binary-searches sorted for e and returns its position. The second
// result is false when e is not present.
func RankOf(sorted []Entry, e Entry) (int, bool) {
	return slices.BinarySearchFunc(sorted, e, Entry.Compare)
}

// EqualEntries reports whether a and b hold the same entries in the same
// order. A nil slice equals an empty one.
func EqualEntries(a, b []Entry) bool {
	return slices.Equal(a, b)
}
