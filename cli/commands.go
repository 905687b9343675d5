// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/fatih/color"
	"github.com/mitchellh/cli"

	"github.com/hashicorp/go-flagparse/internal/pkg/logging"
)

// baseCommand is embedded in all commands to provide common logic and data.
type baseCommand struct {
	// log receives diagnostic output. Its level is controlled by
	// TXTKIT_LOG_LEVEL.
	log logging.Logger
}

var errorColor = color.New(color.FgRed, color.Bold)

// errorf prints a command error to stderr, colored when attached to a
// terminal.
func (c *baseCommand) errorf(format string, args ...interface{}) {
	errorColor.Fprintf(color.Error, format+"\n", args...)
}

// Commands returns the mapping of CLI commands. The result is passed to the
// mitchellh/cli CLI for routing; each command parses its own arguments with
// the flag package.
func Commands(log logging.Logger) map[string]cli.CommandFactory {
	base := &baseCommand{log: log}

	return map[string]cli.CommandFactory{
		"head": func() (cli.Command, error) {
			return &headCommand{baseCommand: base}, nil
		},
		"count": func() (cli.Command, error) {
			return &countCommand{baseCommand: base}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{baseCommand: base}, nil
		},
	}
}
