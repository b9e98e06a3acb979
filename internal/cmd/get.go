package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCmd creates the "get" subcommand.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var valueType string
	var showOrigin bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get a configuration value",
		Long: `Get the resolved value of a configuration name.

All sources are consulted in priority order; the most authoritative
value wins. With --type the raw value is decoded before printing, and
a value that cannot decode is an error rather than a fallback.

Examples:
  cst get user.name
  cst get core.timeout --type int
  cst get core.bare --type bool --show-origin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]
			entry, err := app.Store.GetEntry(name)
			if err != nil {
				return err
			}

			rendered, err := renderTyped(app.Store, name, valueType)
			if err != nil {
				return err
			}

			if app.JSON {
				result := map[string]interface{}{
					"name":  entry.Name(),
					"value": rendered,
				}
				if showOrigin {
					result["level"] = entry.Level().String()
				}
				return json.NewEncoder(app.Out).Encode(result)
			}

			if showOrigin {
				fmt.Fprintf(app.Out, "%s\t%s\n", app.DimColor(entry.Level().String()), rendered)
				return nil
			}
			fmt.Fprintln(app.Out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&valueType, "type", "string", "Decode the value as: string, bool, int, int64")
	cmd.Flags().BoolVar(&showOrigin, "show-origin", false, "Print the level the value came from")

	return cmd
}

// renderTyped decodes the resolved value for name per the requested
// type and renders it for display.
func renderTyped(store storeReader, name, valueType string) (string, error) {
	switch valueType {
	case "string":
		return store.GetString(name)
	case "bool":
		v, err := store.GetBool(name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", v), nil
	case "int":
		v, err := store.GetInt32(name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case "int64":
		v, err := store.GetInt64(name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	}
	return "", fmt.Errorf("unknown value type %q (string, bool, int, int64)", valueType)
}

// storeReader is the typed read surface shared by live stores and
// snapshots.
type storeReader interface {
	GetString(name string) (string, error)
	GetBool(name string) (bool, error)
	GetInt32(name string) (int32, error)
	GetInt64(name string) (int64, error)
}
