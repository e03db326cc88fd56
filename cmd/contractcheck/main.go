// Command contractcheck validates YAML or JSON documents against schema
// documents.
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "contractcheck"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, ErrNonConforming) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
