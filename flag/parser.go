// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// flagPrefix is the only recognized flag prefix. Long (--name) syntax is out
// of scope for this package.
const flagPrefix = "-"

// Parser wraps a Registry together with the raw argument sequence and the
// artifacts produced by Finalize. The expected call sequence is: construct,
// declare flags, call Finalize exactly once, then look up values by name.
// A Parser is not safe for concurrent use.
type Parser struct {
	// Command is the program name (argv[0]), used only in help and error
	// text.
	Command string

	registry *Registry

	// raw is the unconsumed argument sequence, program name stripped.
	raw []string

	// leftover holds the tokens that matched no declared flag and were not
	// consumed as a value. Produced once, by Finalize.
	leftover []string

	finalized bool
	helpFn    func() string
}

// FromEnv creates a Parser reading os.Args as its argument source.
func FromEnv() *Parser {
	return FromArgs(os.Args)
}

// FromArgs creates a Parser from an argv-style slice: args[0] is taken as the
// command name and the rest as the arguments to scan.
func FromArgs(args []string) *Parser {
	p := &Parser{
		registry: NewRegistry(),
	}
	if len(args) > 0 {
		p.Command = args[0]
		p.raw = args[1:]
	}
	return p
}

// Registry exposes the underlying flag registry, primarily for callers that
// render custom help.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Bool declares a boolean flag. The flag defaults to false and becomes true
// if the token -name appears in the input.
func (p *Parser) Bool(name, usage string) {
	p.BoolVar(&BoolVar{Name: name, Usage: usage})
}

// BoolVar declares a boolean flag from a BoolVar struct, which additionally
// carries completion and visibility settings.
func (p *Parser) BoolVar(v *BoolVar) {
	p.registry.Declare(&Flag{
		Name:       v.Name,
		Usage:      v.Usage,
		Kind:       KindBool,
		Hidden:     v.Hidden,
		Completion: v.Completion,
	})
}

// RequiredValue declares a value flag that must be supplied. Finalize fails
// with a MissingRequiredError if the flag is absent from the input.
func (p *Parser) RequiredValue(name, usage string) {
	p.RequiredValueVar(&ValueVar{Name: name, Usage: usage})
}

// RequiredValueVar declares a required value flag from a ValueVar struct.
func (p *Parser) RequiredValueVar(v *ValueVar) {
	p.declareValue(v, KindValueRequired)
}

// OptionalValue declares a value flag that may be omitted. Lookups of an
// omitted optional flag report ErrNotSet.
func (p *Parser) OptionalValue(name, usage string) {
	p.OptionalValueVar(&ValueVar{Name: name, Usage: usage})
}

// OptionalValueVar declares an optional value flag from a ValueVar struct.
func (p *Parser) OptionalValueVar(v *ValueVar) {
	p.declareValue(v, KindValueOptional)
}

func (p *Parser) declareValue(v *ValueVar, kind Kind) {
	p.registry.Declare(&Flag{
		Name:       v.Name,
		Usage:      v.Usage,
		Kind:       kind,
		Hidden:     v.Hidden,
		Completion: v.Completion,
	})
}

// Finalize scans the argument sequence against the declared flags and
// validates required flags. On success it returns the leftover arguments, in
// input order, and enables value lookups. On failure no leftover arguments
// are returned.
//
// The scan is a single left-to-right pass. A token starting with "-" is
// matched literally against the declared names; unmatched flag tokens are
// kept, unstripped, as leftover arguments. A matched value flag consumes the
// next token unconditionally as its raw value, even if that token itself
// starts with "-". If the same flag appears more than once, the last
// occurrence wins.
//
// Missing required flags are collected, in declaration order, into a single
// error so the caller sees every violation at once.
func (p *Parser) Finalize() ([]string, error) {
	if p.finalized {
		return nil, ErrFinalized
	}

	var leftover []string
	for i := 0; i < len(p.raw); i++ {
		tok := p.raw[i]
		if !strings.HasPrefix(tok, flagPrefix) {
			leftover = append(leftover, tok)
			continue
		}

		f := p.registry.match(strings.TrimPrefix(tok, flagPrefix))
		if f == nil {
			// Unknown flags are leftover data, not errors. Keep the
			// original token.
			leftover = append(leftover, tok)
			continue
		}

		if f.Kind == KindBool {
			f.present = true
			continue
		}

		// Value flag: the next token is always the value.
		if i+1 >= len(p.raw) {
			return nil, &MissingValueError{Name: f.Name}
		}
		i++
		f.present = true
		f.raw = p.raw[i]
		f.rawSet = true
	}

	var merr *multierror.Error
	p.registry.VisitAll(func(f *Flag) {
		if f.Kind == KindValueRequired && !f.rawSet {
			merr = multierror.Append(merr, &MissingRequiredError{Name: f.Name})
		}
	})
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	p.finalized = true
	p.leftover = leftover
	return leftover, nil
}

// Args returns the leftover arguments produced by a successful Finalize.
func (p *Parser) Args() []string {
	return p.leftover
}

// Present reports whether the named flag was seen during scanning. It
// returns false for undeclared names and before Finalize.
func (p *Parser) Present(name string) bool {
	if !p.finalized {
		return false
	}
	f := p.registry.match(name)
	return f != nil && f.present
}

// lookupValue fetches the captured raw value for a value flag. It enforces
// the lookup contract shared by all typed accessors.
func (p *Parser) lookupValue(name string) (string, error) {
	if !p.finalized {
		return "", ErrNotFinalized
	}

	f, err := p.registry.Lookup(name)
	if err != nil {
		return "", err
	}
	if f.Kind == KindBool {
		return "", &FlagValueError{
			Name: name,
			Err:  errBoolHasNoValue,
		}
	}
	if !f.rawSet {
		return "", ErrNotSet
	}
	return f.raw, nil
}
