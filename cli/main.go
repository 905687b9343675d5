// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/hashicorp/go-flagparse/internal/pkg/logging"
	"github.com/hashicorp/go-flagparse/internal/pkg/version"
)

// cliName is the name of this CLI.
const cliName = "txtkit"

// Main runs the CLI with the given arguments and returns the exit code.
// The arguments SHOULD include argv[0] as the program name.
func Main(args []string) int {
	log := logging.Default()

	c := &cli.CLI{
		Name:                       cliName,
		Args:                       args[1:],
		Version:                    version.GetVersion().FullVersionNumber(true),
		Commands:                   Commands(log),
		Autocomplete:               true,
		AutocompleteNoDefaultFlags: true,
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing CLI: %s\n", err)
		return 1
	}

	return exitCode
}
