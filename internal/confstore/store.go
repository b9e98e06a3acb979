package confstore

import (
	"errors"
	"fmt"
	"log/slog"

	"confstack/internal/discovery"
)

// ConfigStore is an ordered collection of sources composed into one
// logical key/value view. Sources are kept sorted ascending by level,
// with equal levels in add order, so the last slice element is always
// the most authoritative source: reads walk the slice back to front,
// and writes by bare name target the last element.
//
// The store is single-threaded; callers that share one across
// goroutines must synchronize externally, or hand off a Snapshot
// instead.
type ConfigStore struct {
	sources []*Source
	borrows int // open iterators; mutations are refused while nonzero
}

// New returns a store with zero sources. Reads fail with ErrNotFound
// and writes with ErrNoWritableSource until a source is added.
func New() *ConfigStore {
	return &ConfigStore{}
}

// Open returns a store containing exactly one source parsed from path
// at the implicit default level (local).
func Open(path string) (*ConfigStore, error) {
	s := New()
	if err := s.AddSource(path, LevelLocal, false); err != nil {
		return nil, err
	}
	return s, nil
}

// PathFinder resolves the conventional config file locations. Each
// method returns discovery.ErrNotFound when its file does not exist.
type PathFinder interface {
	Global() (string, error)
	Xdg() (string, error)
	System() (string, error)
}

// OpenDefault aggregates the conventional global, XDG and system
// configuration files into one store ordered by their canonical
// levels. Files that do not exist are skipped, not errors.
func OpenDefault() (*ConfigStore, error) {
	return OpenDefaultFrom(discovery.Default())
}

// OpenDefaultFrom is OpenDefault with an injected path finder, so the
// aggregation logic can be exercised against synthetic locations.
func OpenDefaultFrom(finder PathFinder) (*ConfigStore, error) {
	s := New()

	candidates := []struct {
		find  func() (string, error)
		level ConfigLevel
	}{
		{finder.System, LevelSystemWide},
		{finder.Xdg, LevelXdg},
		{finder.Global, LevelGlobal},
	}

	for _, c := range candidates {
		path, err := c.find()
		if err != nil {
			if errors.Is(err, discovery.ErrNotFound) {
				slog.Debug("no config file", "level", c.level.String())
				continue
			}
			return nil, err
		}
		if err := s.AddSource(path, c.level, false); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AddSource opens the file at path and appends it as a source at
// level. If a source with the same level and path is already present,
// force replaces it in place (re-reading the file) and !force returns
// ErrSourceExists with the store unchanged. A parse or read failure
// aborts only this addition; previously loaded sources stay intact.
func (s *ConfigStore) AddSource(path string, level ConfigLevel, force bool) error {
	if err := s.checkMutable(); err != nil {
		return err
	}

	for i, existing := range s.sources {
		if existing.level == level && existing.path == path {
			if !force {
				return fmt.Errorf("source %s at level %s: %w", path, level, ErrSourceExists)
			}
			replacement, err := openSource(path, level, force)
			if err != nil {
				return err
			}
			s.sources[i] = replacement
			return nil
		}
	}

	src, err := openSource(path, level, force)
	if err != nil {
		return err
	}
	s.insert(src)
	return nil
}

// AddMemory appends an empty in-memory source at level and returns it.
// In-memory sources hold runtime overrides that never persist to disk.
func (s *ConfigStore) AddMemory(level ConfigLevel) (*Source, error) {
	if err := s.checkMutable(); err != nil {
		return nil, err
	}
	src := newMemorySource(level)
	s.insert(src)
	return src, nil
}

// insert places src after every source with a lower-or-equal level, so
// the slice stays sorted ascending and a later-added source at the
// same level outranks earlier ones.
func (s *ConfigStore) insert(src *Source) {
	i := len(s.sources)
	for i > 0 && s.sources[i-1].level > src.level {
		i--
	}
	s.sources = append(s.sources, nil)
	copy(s.sources[i+1:], s.sources[i:])
	s.sources[i] = src
}

// Sources returns the sources in ascending priority order.
func (s *ConfigStore) Sources() []*Source {
	out := make([]*Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// writable returns the single highest-priority source.
func (s *ConfigStore) writable() (*Source, error) {
	if len(s.sources) == 0 {
		return nil, ErrNoWritableSource
	}
	return s.sources[len(s.sources)-1], nil
}

// checkMutable refuses mutation while iterators borrow the store.
func (s *ConfigStore) checkMutable() error {
	if s.borrows > 0 {
		return ErrIteratorActive
	}
	return nil
}

// lookup resolves name across sources, highest priority first.
func (s *ConfigStore) lookup(name string) (*Source, []byte, bool) {
	name = normalizeName(name)
	for i := len(s.sources) - 1; i >= 0; i-- {
		if v, ok := s.sources[i].table.lookup(name); ok {
			return s.sources[i], v, true
		}
	}
	return nil, nil, false
}

// GetBytes returns the winning raw value for name. The bytes are
// borrowed from the store and must not be modified.
func (s *ConfigStore) GetBytes(name string) ([]byte, error) {
	_, v, ok := s.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return v, nil
}

// GetString returns the winning value for name as UTF-8 text.
func (s *ConfigStore) GetString(name string) (string, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return "", err
	}
	return decodeText(v)
}

// GetBool returns the winning value for name decoded as a boolean.
// Accepted tokens, case-insensitively: true/yes/on/1 and
// false/no/off/0.
func (s *ConfigStore) GetBool(name string) (bool, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return false, err
	}
	return decodeBool(v)
}

// GetInt32 returns the winning value for name decoded as a 32-bit
// integer. Values out of range are ErrTypeMismatch.
func (s *ConfigStore) GetInt32(name string) (int32, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return 0, err
	}
	n, err := decodeInt(v, 32)
	return int32(n), err
}

// GetInt64 returns the winning value for name decoded as a 64-bit
// integer.
func (s *ConfigStore) GetInt64(name string) (int64, error) {
	v, err := s.GetBytes(name)
	if err != nil {
		return 0, err
	}
	return decodeInt(v, 64)
}

// GetEntry returns the winning entry for name without decoding,
// including the level of the source that supplied it.
func (s *ConfigStore) GetEntry(name string) (ConfigEntry, error) {
	src, v, ok := s.lookup(name)
	if !ok {
		return ConfigEntry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return ConfigEntry{name: normalizeName(name), value: v, level: src.level}, nil
}

// set writes raw bytes for name into the highest-priority source:
// the most recent matching entry is replaced, otherwise the entry is
// appended. The source is persisted if file-backed.
func (s *ConfigStore) set(name string, value []byte) error {
	if err := s.checkMutable(); err != nil {
		return err
	}
	src, err := s.writable()
	if err != nil {
		return err
	}
	src.table.setLast(normalizeName(name), value)
	return src.persist()
}

// SetBytes writes a raw value for name.
func (s *ConfigStore) SetBytes(name string, value []byte) error {
	return s.set(name, value)
}

// SetString writes a string value for name.
func (s *ConfigStore) SetString(name, value string) error {
	return s.set(name, []byte(value))
}

// SetBool writes a boolean value for name.
func (s *ConfigStore) SetBool(name string, value bool) error {
	return s.set(name, encodeBool(value))
}

// SetInt32 writes a 32-bit integer value for name.
func (s *ConfigStore) SetInt32(name string, value int32) error {
	return s.set(name, encodeInt(int64(value)))
}

// SetInt64 writes a 64-bit integer value for name.
func (s *ConfigStore) SetInt64(name string, value int64) error {
	return s.set(name, encodeInt(value))
}

// Remove deletes all entries for name from the highest-priority
// source. Lower-priority sources keep theirs; ErrNotFound if the top
// source has no such entry.
func (s *ConfigStore) Remove(name string) error {
	if err := s.checkMutable(); err != nil {
		return err
	}
	src, err := s.writable()
	if err != nil {
		return err
	}
	if src.table.removeAll(normalizeName(name)) == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return src.persist()
}

// OpenLevel builds a single-level view of the store: a new store
// referencing exactly the sources at level. Reads and writes through
// the view are confined to that level; mutations are visible in the
// original store since the sources are shared, not copied.
// ErrNotFound if no source exists at level.
func (s *ConfigStore) OpenLevel(level ConfigLevel) (*ConfigStore, error) {
	view := New()
	for _, src := range s.sources {
		if src.level == level {
			view.sources = append(view.sources, src)
		}
	}
	if len(view.sources) == 0 {
		return nil, fmt.Errorf("no source at level %s: %w", level, ErrNotFound)
	}
	return view, nil
}
