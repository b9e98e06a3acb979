// cst is the CLI for confstack, a layered configuration store.
package main

import (
	"fmt"
	"os"

	"confstack/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
