package cmd

import (
	"encoding/json"
	"fmt"

	"confstack/internal/discovery"

	"github.com/spf13/cobra"
)

// newPathsCmd creates the "paths" subcommand.
func newPathsCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show the discovered default config file locations",
		Long: `Show the conventional global, XDG and system config file paths
and whether each file exists.

Examples:
  cst paths
  cst paths --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			finder := discovery.Default()
			locations := []struct {
				name string
				find func() (string, error)
			}{
				{"global", finder.Global},
				{"xdg", finder.Xdg},
				{"system", finder.System},
			}

			if app.JSON {
				result := make(map[string]string, len(locations))
				for _, loc := range locations {
					path, err := loc.find()
					if err != nil {
						path = ""
					}
					result[loc.name] = path
				}
				return json.NewEncoder(app.Out).Encode(result)
			}

			for _, loc := range locations {
				path, err := loc.find()
				if err != nil {
					fmt.Fprintf(app.Out, "%s\t%s\n", loc.name, app.DimColor("(missing)"))
					continue
				}
				fmt.Fprintf(app.Out, "%s\t%s\n", loc.name, path)
			}
			return nil
		},
	}

	return cmd
}
