// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/posener/complete"

	flag "github.com/hashicorp/go-flagparse/flag"
)

const defaultHeadLines = 10

// headCommand prints the first lines of each named file.
type headCommand struct {
	*baseCommand
}

func (c *headCommand) parser(args []string) *flag.Parser {
	p := flag.FromArgs(append([]string{cliName + " head"}, args...))
	p.OptionalValueVar(&flag.ValueVar{
		Name:  "lines",
		Usage: fmt.Sprintf("Number of lines to print from the top of each file. Defaults to %d.", defaultHeadLines),
	})
	p.Bool("quiet", "Never print file name headers.")
	return p
}

func (c *headCommand) Run(args []string) int {
	p := c.parser(args)

	files, err := p.Finalize()
	if err != nil {
		c.errorf("%s head: %s", cliName, err)
		return 1
	}
	if len(files) == 0 {
		c.errorf("%s head: at least one file is required", cliName)
		return 1
	}

	lines := uint(defaultHeadLines)
	if v, err := p.GetUint("lines"); err == nil {
		lines = v
	} else if !errors.Is(err, flag.ErrNotSet) {
		c.errorf("%s head: %s", cliName, err)
		return 1
	}

	quiet, err := p.GetBool("quiet")
	if err != nil {
		c.errorf("%s head: %s", cliName, err)
		return 1
	}

	printHeaders := !quiet && len(files) > 1
	for i, name := range files {
		c.log.Debug(fmt.Sprintf("printing head of %s", name))

		if printHeaders {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s <==\n", name)
		}

		if err := printHead(os.Stdout, name, lines); err != nil {
			c.errorf("%s head: %s", cliName, err)
			return 1
		}
	}

	return 0
}

func printHead(w io.Writer, name string, lines uint) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := uint(0); n < lines && scanner.Scan(); n++ {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}

func (c *headCommand) Help() string {
	p := c.parser(nil)
	p.SetHelpFunc(func() string {
		return fmt.Sprintf("Usage: %s head [options...] FILE...\n\n%s", cliName, p.FlagUsages())
	})
	return p.Help()
}

func (c *headCommand) Synopsis() string {
	return "Print the first lines of each file"
}

func (c *headCommand) AutocompleteFlags() complete.Flags {
	return c.parser(nil).Completions()
}

func (c *headCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*")
}
