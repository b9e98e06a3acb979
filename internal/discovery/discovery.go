// Package discovery locates the conventional configuration file
// locations consulted when no explicit file is given: a per-user
// home-directory file, an XDG-compliant file, and a system-wide file.
// The lookup environment is injectable so path resolution stays
// unit-testable without touching the real filesystem.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Conventional file names and locations for the cst tool.
const (
	GlobalFileName = ".cstconfig"          // under $HOME
	XdgFileName    = "cst/config"          // under $XDG_CONFIG_HOME
	SystemFilePath = "/etc/cstconfig"      // absolute
	ProgramDataRel = "cst/config"          // under %PROGRAMDATA%
	EnvXdgHome     = "XDG_CONFIG_HOME"     // XDG base directory override
	EnvProgramData = "PROGRAMDATA"         // Windows program data root
)

// ErrNotFound is returned when a conventional location has no file.
var ErrNotFound = errors.New("config file not found")

// Finder resolves conventional config file paths. The zero value is
// not usable; construct with Default and override fields in tests.
type Finder struct {
	Getenv func(string) string
	Home   func() (string, error)
	Stat   func(string) (os.FileInfo, error)
}

// Default returns a Finder backed by the real environment and
// filesystem.
func Default() Finder {
	return Finder{
		Getenv: os.Getenv,
		Home:   os.UserHomeDir,
		Stat:   os.Stat,
	}
}

// Global locates the per-user configuration file ($HOME/.cstconfig).
// ErrNotFound if the file does not exist.
func (f Finder) Global() (string, error) {
	home, err := f.Home()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return f.existing(filepath.Join(home, GlobalFileName))
}

// Xdg locates the XDG-compliant configuration file,
// $XDG_CONFIG_HOME/cst/config, falling back to $HOME/.config when the
// variable is unset. ErrNotFound if the file does not exist.
func (f Finder) Xdg() (string, error) {
	base := f.Getenv(EnvXdgHome)
	if base == "" {
		home, err := f.Home()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return f.existing(filepath.Join(base, XdgFileName))
}

// System locates the system-wide configuration file (/etc/cstconfig),
// falling back to %PROGRAMDATA%/cst/config when /etc has none.
// ErrNotFound if neither exists.
func (f Finder) System() (string, error) {
	if path, err := f.existing(SystemFilePath); err == nil {
		return path, nil
	}
	if base := f.Getenv(EnvProgramData); base != "" {
		return f.existing(filepath.Join(base, ProgramDataRel))
	}
	return "", fmt.Errorf("%s: %w", SystemFilePath, ErrNotFound)
}

// existing returns path if a regular file exists there.
func (f Finder) existing(path string) (string, error) {
	info, err := f.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return path, nil
}
