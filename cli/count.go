// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/posener/complete"

	flag "github.com/hashicorp/go-flagparse/flag"
)

// countCommand counts lines or words in each named file.
type countCommand struct {
	*baseCommand
}

func (c *countCommand) parser(args []string) *flag.Parser {
	p := flag.FromArgs(append([]string{cliName + " count"}, args...))
	p.RequiredValueVar(&flag.ValueVar{
		Name:       "mode",
		Usage:      "What to count: \"lines\" or \"words\".",
		Completion: complete.PredictSet("lines", "words"),
	})
	p.Bool("total", "Print a grand total after the per-file counts.")
	return p
}

func (c *countCommand) Run(args []string) int {
	p := c.parser(args)

	files, err := p.Finalize()
	if err != nil {
		c.errorf("%s count: %s", cliName, err)
		return 1
	}
	if len(files) == 0 {
		c.errorf("%s count: at least one file is required", cliName)
		return 1
	}

	mode, err := p.GetString("mode")
	if err != nil {
		c.errorf("%s count: %s", cliName, err)
		return 1
	}
	if mode != "lines" && mode != "words" {
		c.errorf("%s count: invalid mode %q, expected \"lines\" or \"words\"", cliName, mode)
		return 1
	}

	printTotal, err := p.GetBool("total")
	if err != nil {
		c.errorf("%s count: %s", cliName, err)
		return 1
	}

	var total uint64
	for _, name := range files {
		c.log.Debug(fmt.Sprintf("counting %s in %s", mode, name))

		n, err := countFile(name, mode)
		if err != nil {
			c.errorf("%s count: %s", cliName, err)
			return 1
		}
		total += n
		fmt.Printf("%8d %s\n", n, name)
	}

	if printTotal {
		fmt.Printf("%8d total\n", total)
	}

	return 0
}

func countFile(name, mode string) (uint64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if mode == "words" {
		scanner.Split(bufio.ScanWords)
	}

	var n uint64
	for scanner.Scan() {
		n++
	}
	return n, scanner.Err()
}

func (c *countCommand) Help() string {
	p := c.parser(nil)
	p.SetHelpFunc(func() string {
		return fmt.Sprintf("Usage: %s count [options...] FILE...\n\n%s", cliName, p.FlagUsages())
	})
	return p.Help()
}

func (c *countCommand) Synopsis() string {
	return "Count lines or words in each file"
}

func (c *countCommand) AutocompleteFlags() complete.Flags {
	return c.parser(nil).Completions()
}

func (c *countCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*")
}
