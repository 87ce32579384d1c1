package main

import (
	_ "embed"
	"fmt"
	"os"
)

// configTemplate is the starter config written by `snippetgen init`,
// bundled at build time.
//
//go:embed templates/snippetgen.yaml
var configTemplate []byte

// runInit writes the starter config to the current directory.
func runInit(args []string) error {
	force := false
	for _, arg := range args {
		if arg == "--force" {
			force = true
		}
	}

	if !force {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}
	}

	if err := os.WriteFile(configFileName, configTemplate, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", configFileName)
	return nil
}
