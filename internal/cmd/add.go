package cmd

import (
	"encoding/json"
	"fmt"

	"confstack/internal/confstore"

	"github.com/spf13/cobra"
)

// newAddCmd creates the "add" subcommand.
func newAddCmd(provider *AppProvider) *cobra.Command {
	var levelName string
	var force bool

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Add a config file as a source",
		Long: `Open the file at path and add it as a source at the given level
for this invocation. A file that fails to parse is rejected and the
remaining sources stay usable. Adding a path already present at the
same level is refused unless --force replaces it.

Examples:
  cst add ./project.conf --level local
  cst add /etc/cstconfig --level system --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			level, err := confstore.ParseLevel(levelName)
			if err != nil {
				return err
			}

			path := args[0]
			if err := app.Store.AddSource(path, level, force); err != nil {
				return fmt.Errorf("adding source: %w", err)
			}

			if app.JSON {
				result := map[string]string{
					"path":  path,
					"level": level.String(),
				}
				return json.NewEncoder(app.Out).Encode(result)
			}

			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Added %s at level %s", path, level)))
			return nil
		},
	}

	cmd.Flags().StringVar(&levelName, "level", "local", "Level for the new source")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing source with the same path and level")

	return cmd
}
