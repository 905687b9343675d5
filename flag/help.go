// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/hashicorp/go-flagparse/internal/pkg/helper"
)

var reRemoveWhitespace = regexp.MustCompile(`[\s]+`)

// Help renders the full help text: a usage line naming the command, then one
// entry per declared flag. A custom renderer installed with SetHelpFunc takes
// over the whole output.
func (p *Parser) Help() string {
	if p.helpFn != nil {
		return p.helpFn()
	}
	return fmt.Sprintf("Usage: %s [options...]\n\n%s", p.Command, p.FlagUsages())
}

// SetHelpFunc installs a custom help renderer. Callers that take positional
// arguments typically compose their own usage line with FlagUsages.
func (p *Parser) SetHelpFunc(fn func() string) {
	p.helpFn = fn
}

// FlagUsages renders the flag listing in declaration order. The output is
// deterministic: it never depends on map iteration order or the host locale.
// Hidden flags are skipped.
func (p *Parser) FlagUsages() string {
	var out bytes.Buffer

	p.registry.VisitAll(func(f *Flag) {
		if f.Hidden {
			return
		}
		printFlagDetail(&out, f)
	})

	return out.String()
}

// printFlagDetail prints a single flag entry to the given writer. Boolean
// flags render bare; value flags render with a value placeholder, and
// required ones carry a marker.
func printFlagDetail(w io.Writer, f *Flag) {
	switch f.Kind {
	case KindBool:
		fmt.Fprintf(w, "  -%s\n", f.Name)
	case KindValueRequired:
		fmt.Fprintf(w, "  -%s <value> (required)\n", f.Name)
	default:
		fmt.Fprintf(w, "  -%s <value>\n", f.Name)
	}

	if f.Usage == "" {
		return
	}

	usage := reRemoveWhitespace.ReplaceAllString(f.Usage, " ")
	indented := helper.WrapAtLengthWithPadding(usage, 8)
	fmt.Fprintf(w, "%s\n", indented)
}
