package cmd

import (
	"io"
	"os"
	"sync"

	"confstack/internal/confstore"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	File       string // explicit config file instead of default discovery
	LevelName  string // confine all operations to one level
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a pre-built store.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	file := p.File
	if file == "" {
		file = os.Getenv(EnvConfigFile)
	}

	var store *confstore.ConfigStore
	var err error
	if file != "" {
		store, err = confstore.Open(file)
	} else {
		store, err = confstore.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	if p.LevelName != "" {
		level, err := confstore.ParseLevel(p.LevelName)
		if err != nil {
			return nil, err
		}
		store, err = store.OpenLevel(level)
		if err != nil {
			return nil, err
		}
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		Store: store,
		Out:   out,
		Err:   errOut,
		JSON:  p.JSONOutput || envTrue(EnvJSON),
	}, nil
}

// envTrue reports whether the env var is set to "1" or "true".
func envTrue(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true"
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cst",
		Short: "A layered configuration store",
		Long: `cst composes configuration from multiple sources (system, XDG,
global, local) into one logical key/value view. Reads resolve the most
authoritative value for a name; writes land in the most authoritative
loaded source.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&provider.File, "file", "", "Use a single config file instead of default discovery")
	rootCmd.PersistentFlags().StringVar(&provider.LevelName, "level", "", "Confine operations to one level (system, xdg, global, local, ...)")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newAddCmd(provider))
	rootCmd.AddCommand(newPathsCmd(provider))
	rootCmd.AddCommand(newSnapshotCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
