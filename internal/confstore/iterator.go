package confstore

import "github.com/tidwall/match"

// EntryIterator yields every entry across all sources: highest
// priority source first, insertion order within each source. Shadowed
// entries are yielded too; use Snapshot for a resolved view.
//
// The iterator borrows the store: mutating operations fail with
// ErrIteratorActive until the iterator is exhausted or closed.
// Multiple read-only iterators may be open at once. Iterators are
// finite and non-restartable; call Entries again for another pass.
type EntryIterator struct {
	store    *ConfigStore
	glob     string
	srcIdx   int // walks sources back to front
	entryIdx int
	done     bool
}

// Entries returns an iterator over all entries, lazily filtered by
// glob when non-empty (shell-style pattern matched against entry
// names).
func (s *ConfigStore) Entries(glob string) *EntryIterator {
	s.borrows++
	return &EntryIterator{
		store:  s,
		glob:   glob,
		srcIdx: len(s.sources) - 1,
	}
}

// Next returns the next matching entry, or ok=false once the iterator
// is exhausted. Exhaustion releases the borrow on the store.
func (it *EntryIterator) Next() (ConfigEntry, bool) {
	if it.done {
		return ConfigEntry{}, false
	}

	for it.srcIdx >= 0 {
		src := it.store.sources[it.srcIdx]
		for it.entryIdx < len(src.table.entries) {
			e := src.table.entries[it.entryIdx]
			it.entryIdx++
			if it.glob != "" && !match.Match(e.name, it.glob) {
				continue
			}
			return ConfigEntry{name: e.name, value: e.value, level: src.level}, true
		}
		it.srcIdx--
		it.entryIdx = 0
	}

	it.release()
	return ConfigEntry{}, false
}

// Close releases the iterator's borrow on the store. Closing an
// exhausted or already-closed iterator is a no-op.
func (it *EntryIterator) Close() {
	it.release()
}

func (it *EntryIterator) release() {
	if !it.done {
		it.done = true
		it.store.borrows--
	}
}
