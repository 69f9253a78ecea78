// Command jsonls is a CLI front end over the jsonls document service:
// parsing JSON/JSONC source and validating it against a JSON Schema.
package main

import (
	"fmt"
	"os"

	"github.com/jsonls-io/jsonls/cmd"
)

// Version is injected at build time.
var Version = "dev"

func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
