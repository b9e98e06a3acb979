package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSnapshotCmd creates the "snapshot" subcommand.
func newSnapshotCmd(provider *AppProvider) *cobra.Command {
	var glob string
	var yamlOutput bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Dump the resolved configuration",
		Long: `Resolve every distinct name to its winning value and print the
frozen result: one value per name, shadowed entries dropped.

Examples:
  cst snapshot
  cst snapshot --glob 'remote.*'
  cst snapshot --yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			snap := app.Store.Snapshot()
			entries := snap.Entries(glob)

			if app.JSON || yamlOutput {
				docs := make([]entryDoc, 0, len(entries))
				for _, e := range entries {
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

			if len(entries) == 0 {
				fmt.Fprintln(app.Out, "No configuration set")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(app.Out, "%s=%s\n", e.Name(), e.Value())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "Only include names matching a shell-style pattern")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")

	return cmd
}
