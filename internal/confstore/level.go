// Package confstore implements a layered key/value configuration store.
// Multiple named sources (files or in-memory sets), each tagged with a
// priority level, compose into one logical view: reads resolve the most
// authoritative value for a name, writes land in the most authoritative
// loaded source.
package confstore

import "fmt"

// ConfigLevel identifies the priority tier of a configuration source.
// Higher values take precedence when the same name is defined at
// multiple levels. Two sources may share a level; the one added later
// wins on conflicts.
type ConfigLevel int

const (
	// LevelSystemWide is machine-wide configuration (e.g. /etc).
	LevelSystemWide ConfigLevel = iota + 1
	// LevelProgramData is Windows %PROGRAMDATA% configuration.
	LevelProgramData
	// LevelXdg is the XDG-compliant per-user file.
	LevelXdg
	// LevelGlobal is the per-user home-directory file.
	LevelGlobal
	// LevelLocal is per-project configuration.
	LevelLocal
	// LevelApp is application-defined configuration.
	LevelApp
	// LevelOverride is the highest tier, for runtime overrides.
	LevelOverride
)

// levelNames maps levels to their canonical names, used by String and
// ParseLevel.
var levelNames = map[ConfigLevel]string{
	LevelSystemWide:  "system",
	LevelProgramData: "programdata",
	LevelXdg:         "xdg",
	LevelGlobal:      "global",
	LevelLocal:       "local",
	LevelApp:         "app",
	LevelOverride:    "override",
}

// String returns the canonical name of the level.
func (l ConfigLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a canonical level name back to a ConfigLevel.
func ParseLevel(name string) (ConfigLevel, error) {
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown config level %q", name)
}
