// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/hashicorp/go-flagparse/cli"
)

func main() {
	os.Exit(cli.Main(os.Args))
}
