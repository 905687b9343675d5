// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package flag implements a small, non-POSIX command-line flag parser with
// imperative flag declaration. Flags are registered one at a time against a
// Parser, each carrying its own name and usage text, and are matched literally
// against single-dash tokens (-name). Value flags always take the following
// token as their value.

// Unlike the stdlib flag package, unknown flags are not errors: any token that
// does not match a declared flag is returned from Finalize as a leftover
// argument, in input order. Values are coerced lazily, at lookup time, so a
// malformed value only surfaces when the caller asks for the typed value.

// The package deliberately does not support long (--name) flags, combined
// short flags (-fd), =-joined values, or repeated flags. If a flag name
// appears more than once, the last occurrence wins.

package flag
