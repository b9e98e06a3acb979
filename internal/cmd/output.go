package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// entryDoc is the serializable form of a config entry for --json and
// --yaml output.
type entryDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Level string `json:"level" yaml:"level"`
}

// writeDocs serializes entry docs as JSON or YAML.
func writeDocs(w io.Writer, docs []entryDoc, format string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(docs)
	case "yaml":
		data, err := yaml.Marshal(docs)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
