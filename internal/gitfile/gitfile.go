// Package gitfile reads and writes line-oriented sectioned key=value
// configuration files: `[section]` or `[section "sub"]` headers
// followed by `key = value` lines, with `#` and `;` comments.
//
// Files are decoded to a flat entry list where dotted names join the
// section path and the key (`[user] name = x` becomes "user.name").
// A key repeated within one file is preserved as multiple entries in
// file order. Writes are atomic (temp file + rename).
package gitfile

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Entry is one decoded (name, value) pair in file order.
type Entry struct {
	Name  string
	Value []byte
}

// loadOptions enables duplicate keys (multi-valued settings).
var loadOptions = ini.LoadOptions{
	AllowShadows: true,
}

// Load decodes the file at path into its entries, preserving file
// order and duplicate keys. A missing file reports the underlying
// os error (os.IsNotExist distinguishes it); a malformed file is an
// error naming the path.
func Load(path string) ([]Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var entries []Entry
	for _, sec := range f.Sections() {
		prefix := sectionPrefix(sec.Name())
		for _, key := range sec.Keys() {
			for _, value := range key.ValueWithShadows() {
				entries = append(entries, Entry{
					Name:  prefix + key.Name(),
					Value: []byte(value),
				})
			}
		}
	}
	return entries, nil
}

// Save serializes entries back to sectioned key=value text and writes
// it to path atomically. Entries are grouped by section (everything
// before the last dot in the name); names without a dot land at the
// top of the file with no section header.
func Save(path string, entries []Entry) error {
	f := ini.Empty(loadOptions)

	for _, e := range entries {
		section, key := splitName(e.Name)
		sec := f.Section(section)
		if existing, err := sec.GetKey(key); err == nil {
			if err := existing.AddShadow(string(e.Value)); err != nil {
				return fmt.Errorf("encoding %s: %w", e.Name, err)
			}
			continue
		}
		if _, err := sec.NewKey(key, string(e.Value)); err != nil {
			return fmt.Errorf("encoding %s: %w", e.Name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	return atomicWrite(path, buf.Bytes())
}

// sectionPrefix converts a parsed section header to a dotted name
// prefix. The default (headerless) section contributes no prefix, and
// the quoted subsection form `sect "sub"` joins as "sect.sub.".
func sectionPrefix(name string) string {
	if name == ini.DefaultSection {
		return ""
	}
	if i := strings.Index(name, ` "`); i >= 0 && strings.HasSuffix(name, `"`) {
		sub := name[i+2 : len(name)-1]
		return name[:i] + "." + sub + "."
	}
	return name + "."
}

// splitName splits a dotted entry name into its section and key parts.
func splitName(name string) (section, key string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ini.DefaultSection, name
	}
	return name[:i], name[i+1:]
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}
