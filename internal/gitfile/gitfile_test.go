package gitfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func entryStrings(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name+"="+string(e.Value))
	}
	return out
}

func TestLoadSections(t *testing.T) {
	path := writeFixture(t, `# comment
toplevel = yes

[user]
name = alice
email = alice@example.com

[core]
editor = vi
`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{
		"toplevel=yes",
		"user.name=alice",
		"user.email=alice@example.com",
		"core.editor=vi",
	}
	got := entryStrings(entries)
	if len(got) != len(want) {
		t.Fatalf("Load returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadQuotedSubsection(t *testing.T) {
	path := writeFixture(t, `[remote "origin"]
url = https://example.com/repo
`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Load returned %d entries, want 1", len(entries))
	}
	if entries[0].Name != "remote.origin.url" {
		t.Errorf("name = %q, want %q", entries[0].Name, "remote.origin.url")
	}
}

func TestLoadMultiValued(t *testing.T) {
	path := writeFixture(t, `[remote]
fetch = first
fetch = second
`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := entryStrings(entries)
	want := []string{"remote.fetch=first", "remote.fetch=second"}
	if len(got) != len(want) {
		t.Fatalf("Load returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !os.IsNotExist(err) {
		t.Errorf("Load on missing file = %v, want os.IsNotExist", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFixture(t, "[unclosed\nkey = value\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted a malformed file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf")
	entries := []Entry{
		{Name: "toplevel", Value: []byte("yes")},
		{Name: "user.name", Value: []byte("alice")},
		{Name: "remote.fetch", Value: []byte("first")},
		{Name: "remote.fetch", Value: []byte("second")},
		{Name: "user.email", Value: []byte("alice@example.com")},
	}

	if err := Save(path, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Values survive; entries regroup by section but multi-valued keys
	// keep their relative order.
	byName := map[string][]string{}
	for _, e := range loaded {
		byName[e.Name] = append(byName[e.Name], string(e.Value))
	}
	if got := byName["toplevel"]; len(got) != 1 || got[0] != "yes" {
		t.Errorf("toplevel = %v", got)
	}
	if got := byName["user.name"]; len(got) != 1 || got[0] != "alice" {
		t.Errorf("user.name = %v", got)
	}
	if got := byName["user.email"]; len(got) != 1 || got[0] != "alice@example.com" {
		t.Errorf("user.email = %v", got)
	}
	fetch := byName["remote.fetch"]
	if len(fetch) != 2 || fetch[0] != "first" || fetch[1] != "second" {
		t.Errorf("remote.fetch = %v, want [first second]", fetch)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf")
	if err := Save(path, []Entry{{Name: "a.k", Value: []byte("v1")}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(path, []Entry{{Name: "a.k", Value: []byte("v2")}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || string(loaded[0].Value) != "v2" {
		t.Errorf("Load after overwrite = %v", entryStrings(loaded))
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "conf")
	if err := Save(path, []Entry{{Name: "a.k", Value: []byte("v")}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
