package confstore

import (
	"fmt"

	"github.com/tidwall/match"
)

// Snapshot is an immutable, fully resolved copy of a store: for every
// distinct name, the one (value, level) pair a Get call would have
// returned at the instant the snapshot was taken. A snapshot owns its
// data outright: later mutation of the live store, or the store going
// away entirely, does not affect it, which makes it the right vehicle
// for handing a consistent view to another goroutine.
type Snapshot struct {
	entries []ConfigEntry
	index   map[string]int
}

// Snapshot resolves every distinct name to its winning value and
// returns the frozen result. Entries keep resolution order: highest
// priority source first, insertion order within a source, shadowed
// duplicates dropped.
func (s *ConfigStore) Snapshot() *Snapshot {
	snap := &Snapshot{index: make(map[string]int)}

	for i := len(s.sources) - 1; i >= 0; i-- {
		src := s.sources[i]
		for _, e := range src.table.entries {
			if _, seen := snap.index[e.name]; seen {
				continue
			}
			// Last write wins within a source, so resolve through the
			// table rather than taking this occurrence's value.
			winning, _ := src.table.lookup(e.name)
			value := make([]byte, len(winning))
			copy(value, winning)

			snap.index[e.name] = len(snap.entries)
			snap.entries = append(snap.entries, ConfigEntry{
				name:  e.name,
				value: value,
				level: src.level,
			})
		}
	}

	return snap
}

// Len returns the number of distinct names in the snapshot.
func (s *Snapshot) Len() int { return len(s.entries) }

// GetEntry returns the frozen entry for name.
func (s *Snapshot) GetEntry(name string) (ConfigEntry, error) {
	i, ok := s.index[normalizeName(name)]
	if !ok {
		return ConfigEntry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return s.entries[i], nil
}

// GetBytes returns the frozen raw value for name.
func (s *Snapshot) GetBytes(name string) ([]byte, error) {
	e, err := s.GetEntry(name)
	if err != nil {
		return nil, err
	}
	return e.value, nil
}

// GetString returns the frozen value for name as UTF-8 text.
func (s *Snapshot) GetString(name string) (string, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return "", err
	}
	return decodeText(v)
}

// GetBool returns the frozen value for name decoded as a boolean.
func (s *Snapshot) GetBool(name string) (bool, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return false, err
	}
	return decodeBool(v)
}

// GetInt32 returns the frozen value for name decoded as a 32-bit
// integer.
func (s *Snapshot) GetInt32(name string) (int32, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return 0, err
	}
	n, err := decodeInt(v, 32)
	return int32(n), err
}

// GetInt64 returns the frozen value for name decoded as a 64-bit
// integer.
func (s *Snapshot) GetInt64(name string) (int64, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return 0, err
	}
	return decodeInt(v, 64)
}

// Entries returns the snapshot's entries in resolution order, filtered
// by glob when non-empty. The snapshot owns its data, so no borrow
// discipline applies.
func (s *Snapshot) Entries(glob string) []ConfigEntry {
	if glob == "" {
		out := make([]ConfigEntry, len(s.entries))
		copy(out, s.entries)
		return out
	}
	var out []ConfigEntry
	for _, e := range s.entries {
		if match.Match(e.name, glob) {
			out = append(out, e)
		}
	}
	return out
}
