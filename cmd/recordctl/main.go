// Command recordctl decodes, validates and re-encodes record payloads
// against a YAML model file.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "recordctl: %v\n", err)
		os.Exit(1)
	}
}
