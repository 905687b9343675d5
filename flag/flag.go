// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"github.com/posener/complete"
)

// Kind is the closed set of flag variants.
type Kind int

const (
	// KindBool is a presence-only flag; it takes no value and defaults to
	// false.
	KindBool Kind = iota

	// KindValueRequired is a value flag that must be supplied on the command
	// line.
	KindValueRequired

	// KindValueOptional is a value flag that may be omitted.
	KindValueOptional
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindValueRequired:
		return "required value"
	case KindValueOptional:
		return "optional value"
	default:
		return "unknown"
	}
}

// Flag is a single declared flag and the state the scanner records for it.
// Flags are created through the Parser declaration calls and owned by the
// Registry; callers interact with them by name.
type Flag struct {
	// Name matches argument tokens literally, without the leading dash. The
	// token "-verbose" matches the declared name "verbose".
	Name string

	// Usage is free text used only for help rendering.
	Usage string

	// Kind selects the scan behavior for this flag.
	Kind Kind

	// Hidden flags are scanned normally but skipped by help rendering.
	Hidden bool

	// Completion is an optional predictor used for shell autocompletion.
	Completion complete.Predictor

	// present records whether the scanner saw the flag. For boolean flags
	// this is the final value.
	present bool

	// raw is the value token captured for a value flag. rawSet distinguishes
	// "captured empty string" from "never captured".
	raw    string
	rawSet bool
}

// Present reports whether the scanner matched this flag.
func (f *Flag) Present() bool {
	return f.present
}

// BoolVar declares a boolean flag. Only Name and Usage are required.
type BoolVar struct {
	Name       string
	Usage      string
	Hidden     bool
	Completion complete.Predictor
}

// ValueVar declares a value flag, required or optional depending on the
// declaration call it is passed to. Only Name and Usage are required.
type ValueVar struct {
	Name       string
	Usage      string
	Hidden     bool
	Completion complete.Predictor
}
