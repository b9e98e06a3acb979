package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newUnsetCmd creates the "unset" subcommand.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <name>",
		Short: "Remove a configuration value",
		Long: `Remove all entries for a name from the most authoritative loaded
source. Entries at lower levels are untouched and become visible again.

Examples:
  cst unset user.name
  cst unset remote.origin.url`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]
			if err := app.Store.Remove(name); err != nil {
				return fmt.Errorf("unsetting config: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{"name": name})
			}

			fmt.Fprintf(app.Out, "Unset %s\n", name)
			return nil
		},
	}

	return cmd
}
