// Package cmd implements the cst command-line interface.
package cmd

import (
	"io"
	"os"

	"confstack/internal/confstore"

	"golang.org/x/term"
)

// Environment variables recognized by cst.
const (
	// EnvConfigFile overrides default discovery with a single file.
	EnvConfigFile = "CST_CONFIG"
	// EnvJSON enables JSON output ("1" or "true").
	EnvJSON = "CST_JSON"
)

// App holds application state shared across commands.
type App struct {
	Store *confstore.ConfigStore
	Out   io.Writer
	Err   io.Writer
	JSON  bool // output in JSON format
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout
// is a terminal, otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// DimColor returns the string wrapped in faint ANSI codes if stdout is
// a terminal, otherwise returns the string unchanged.
func (a *App) DimColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[2m" + s + "\033[0m"
	}
	return s
}
