package types

// ManifestVersion is written into every persisted snapshot and compared on
// load to detect files written by older or newer releases.
const ManifestVersion uint = 1

// UnknownRank is reported by List when an entry cannot be found in the
// sorted view of its own list.
const UnknownRank = -1

// State is the in-memory model owned by a session. Entries keep insertion
// order; Exit ends the session loop once set.
type State struct {
	Entries         []Entry `yaml:"entries"`
	Exit            bool    `yaml:"exit"`
	ManifestVersion uint    `yaml:"manifest_version"`
}

// NewState returns an empty State stamped with the current ManifestVersion.
func NewState() *State {
	return &State{
		Entries:         []Entry{},
		ManifestVersion: ManifestVersion,
	}
}

// Len returns the number of entries.
func (s *State) Len() int {
	return len(s.Entries)
}

// IsEmpty reports whether the state holds no entries.
func (s *State) IsEmpty() bool {
	return len(s.Entries) == 0
}

// Append adds e to the end of the list.
func (s *State) Append(e Entry) {
	s.Entries = append(s.Entries, e)
}

// At returns the entry at index. The second result is false when index is
// out of range.
func (s *State) At(index int) (Entry, bool) {
	if index < 0 || index >= len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[index], true
}

// RemoveAt removes the entry at index, shifting later entries down by one.
// Returns ErrNoEntryAtIndex if index is out of range; the list is unchanged.
func (s *State) RemoveAt(index int) (Entry, error) {
	e, ok := s.At(index)
	if !ok {
		return Entry{}, ErrNoEntryAtIndex
	}
	s.Entries = append(s.Entries[:index], s.Entries[index+1:]...)
	return e, nil
}

// Clear removes every entry and returns how many were removed.
func (s *State) Clear() int {
	n := len(s.Entries)
	s.Entries = []Entry{}
	return n
}

// Replace swaps the entry list for a copy of entries.
func (s *State) Replace(entries []Entry) {
	s.Entries = append([]Entry{}, entries...)
}

// Ranks returns, for each entry in list order, its position under the
// (name, description) order. Entries missing from the sorted view get
// UnknownRank and are counted in the second result.
func (s *State) Ranks() ([]int, int) {
	sorted := SortEntries(s.Entries)
	ranks := make([]int, len(s.Entries))
	missing := 0
	for i, e := range s.Entries {
		rank, ok := RankOf(sorted, e)
		if !ok {
			rank = UnknownRank
			missing++
		}
		ranks[i] = rank
	}
	return ranks, missing
}

// CompareVersion compares the snapshot's manifest version to the running
// one: negative when older, positive when newer, zero when equal.
func (s *State) CompareVersion() int {
	switch {
	case s.ManifestVersion < ManifestVersion:
		return -1
	case s.ManifestVersion > ManifestVersion:
		return 1
	default:
		return 0
	}
}
