package confstore

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConfigEntry is a resolved configuration entry: a name, its raw value
// bytes, and the level of the source that supplied it. Entries are
// produced by lookup or iteration, never constructed by clients. The
// value bytes of an entry produced by a live store are borrowed from
// that store and must not be modified or retained across mutations.
type ConfigEntry struct {
	name  string
	value []byte
	level ConfigLevel
}

// Name returns the case-normalized entry name.
func (e ConfigEntry) Name() string { return e.name }

// Value returns the raw value bytes.
func (e ConfigEntry) Value() []byte { return e.value }

// Text returns the value as a string, or ErrInvalidEncoding if the
// bytes are not valid UTF-8.
func (e ConfigEntry) Text() (string, error) {
	return decodeText(e.value)
}

// Level returns the level of the source the value came from.
func (e ConfigEntry) Level() ConfigLevel { return e.level }

// normalizeName lowercases a config name. Names are case-insensitive;
// all internal storage and lookup uses the normalized form.
func normalizeName(name string) string {
	return strings.ToLower(name)
}

// tableEntry is one (name, value) pair inside an entry table.
type tableEntry struct {
	name  string
	value []byte
}

// entryTable is the insertion-ordered entry set of a single source.
// A name may repeat (multi-valued keys); the last entry for a name
// wins on lookup, while iteration yields every entry in file order.
type entryTable struct {
	entries []tableEntry
}

// lookup returns the winning (last) value for the normalized name.
func (t *entryTable) lookup(name string) ([]byte, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].name == name {
			return t.entries[i].value, true
		}
	}
	return nil, false
}

// add appends an entry, preserving any earlier entries with the same
// name.
func (t *entryTable) add(name string, value []byte) {
	t.entries = append(t.entries, tableEntry{name: name, value: value})
}

// setLast replaces the most recent entry for name, or appends when the
// name is absent. Single-valued keys therefore collapse to the last
// write.
func (t *entryTable) setLast(name string, value []byte) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].name == name {
			t.entries[i].value = value
			return
		}
	}
	t.add(name, value)
}

// removeAll deletes every entry for name and reports how many were
// removed.
func (t *entryTable) removeAll(name string) int {
	kept := t.entries[:0]
	removed := 0
	for _, e := range t.entries {
		if e.name == name {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
	return removed
}

// String renders the table for debugging.
func (t *entryTable) String() string {
	var b strings.Builder
	for _, e := range t.entries {
		if utf8.Valid(e.value) {
			fmt.Fprintf(&b, "%s=%s\n", e.name, e.value)
		} else {
			fmt.Fprintf(&b, "%s=%x\n", e.name, e.value)
		}
	}
	return b.String()
}
