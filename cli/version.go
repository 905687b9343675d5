// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/hashicorp/go-flagparse/internal/pkg/version"
)

// versionCommand prints version information for the tool.
type versionCommand struct {
	*baseCommand
}

func (c *versionCommand) Run(args []string) int {
	fmt.Println(version.GetVersion().FullVersionNumber(true))
	return 0
}

func (c *versionCommand) Help() string {
	return fmt.Sprintf("Usage: %s version", cliName)
}

func (c *versionCommand) Synopsis() string {
	return "Print the version of this CLI"
}
