package confstore

import (
	"fmt"
	"os"

	"confstack/internal/gitfile"
)

// Source is one opened backing file (or in-memory entry set)
// contributing entries at a given level. A source with a path persists
// every mutation back to that file; an in-memory source does not.
type Source struct {
	path  string // empty for in-memory sources
	level ConfigLevel
	force bool // whether adding this source was allowed to shadow one
	table *entryTable
}

// Path returns the backing file path, or "" for in-memory sources.
func (s *Source) Path() string { return s.path }

// Level returns the source's priority level.
func (s *Source) Level() ConfigLevel { return s.level }

// openSource parses the file at path into a source at the given level.
// A file that does not exist yet yields an empty source; it is created
// on the first persisted write. Any other read or parse failure is an
// error and the source is not created.
func openSource(path string, level ConfigLevel, force bool) (*Source, error) {
	src := &Source{path: path, level: level, force: force, table: &entryTable{}}

	entries, err := gitfile.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return src, nil
		}
		return nil, fmt.Errorf("opening config source %s: %w", path, err)
	}

	for _, e := range entries {
		src.table.add(normalizeName(e.Name), e.Value)
	}
	return src, nil
}

// newMemorySource creates an empty in-memory source.
func newMemorySource(level ConfigLevel) *Source {
	return &Source{level: level, table: &entryTable{}}
}

// persist writes the source's entries back to its file. In-memory
// sources persist nothing.
func (s *Source) persist() error {
	if s.path == "" {
		return nil
	}

	entries := make([]gitfile.Entry, 0, len(s.table.entries))
	for _, e := range s.table.entries {
		entries = append(entries, gitfile.Entry{Name: e.name, Value: e.value})
	}

	if err := gitfile.Save(s.path, entries); err != nil {
		return fmt.Errorf("writing config source %s: %w", s.path, err)
	}
	return nil
}
