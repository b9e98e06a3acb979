package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newListCmd creates the "list" subcommand.
func newListCmd(provider *AppProvider) *cobra.Command {
	var glob string
	var yamlOutput bool
	var showOrigin bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration entries",
		Long: `List every entry across all sources, most authoritative source
first, insertion order within a source. Shadowed entries are listed
too; use "cst snapshot" for the resolved view.

Examples:
  cst list
  cst list --glob 'user.*'
  cst list --show-origin
  cst list --yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			it := app.Store.Entries(glob)
			defer it.Close()

			if app.JSON || yamlOutput {
				docs := []entryDoc{}
				for e, ok := it.Next(); ok; e, ok = it.Next() {
					docs = append(docs, entryDoc{
						Name:  e.Name(),
						Value: string(e.Value()),
						Level: e.Level().String(),
					})
				}
				format := "json"
				if yamlOutput {
					format = "yaml"
				}
				return writeDocs(app.Out, docs, format)
			}

			count := 0
			for e, ok := it.Next(); ok; e, ok = it.Next() {
				if showOrigin {
					fmt.Fprintf(app.Out, "%s\t%s=%s\n", app.DimColor(e.Level().String()), e.Name(), e.Value())
				} else {
					fmt.Fprintf(app.Out, "%s=%s\n", e.Name(), e.Value())
				}
				count++
			}
			if count == 0 {
				fmt.Fprintln(app.Out, "No configuration set")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "Only list names matching a shell-style pattern")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	cmd.Flags().BoolVar(&showOrigin, "show-origin", false, "Print the level each entry came from")

	return cmd
}
