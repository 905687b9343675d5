// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinalized is returned by value lookups before Finalize has
	// completed successfully.
	ErrNotFinalized = errors.New("parser is not finalized")

	// ErrFinalized is returned when Finalize is called a second time.
	ErrFinalized = errors.New("parser is already finalized")

	// ErrNotSet is the "no value" outcome for an optional value flag that was
	// never supplied. Callers distinguish it from parse errors with
	// errors.Is.
	ErrNotSet = errors.New("flag not set")
)

// Kind mismatches between the declared flag and the requested accessor are
// reported through FlagValueError with one of these causes.
var (
	errBoolHasNoValue = errors.New("boolean flag carries no value")
	errNotBool        = errors.New("not a boolean flag")
)

// MissingValueError is returned from Finalize when a value flag is the last
// token of the input with nothing following it.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("flag -%s requires a value", e.Name)
}

// MissingRequiredError is returned from Finalize for a required value flag
// that was never supplied. All violations are collected into a single
// multierror, in declaration order.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("flag -%s is required", e.Name)
}

// UndeclaredFlagError is returned by value lookups for a name that was never
// declared. This indicates a defect in the calling code, not bad user input.
type UndeclaredFlagError struct {
	Name string
}

func (e *UndeclaredFlagError) Error() string {
	return fmt.Sprintf("flag -%s is not declared", e.Name)
}

// FlagValueError is returned by typed value lookups when the captured raw
// text cannot be parsed into the requested type. Err preserves the underlying
// strconv or time error for errors.Is/As.
type FlagValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *FlagValueError) Error() string {
	return fmt.Sprintf("invalid value %q for flag -%s: %v", e.Value, e.Name, e.Err)
}

func (e *FlagValueError) Unwrap() error {
	return e.Err
}
