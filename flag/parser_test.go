// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shoenig/test/must"
)

func TestFinalize_leftoverOnly(t *testing.T) {
	p := FromArgs([]string{"head", "a.txt", "b.txt", "c.txt"})
	p.Bool("verbose", "verbose output")

	leftover, err := p.Finalize()
	must.NoError(t, err)
	must.Eq(t, []string{"a.txt", "b.txt", "c.txt"}, leftover)
	must.Eq(t, leftover, p.Args())
}

func TestFinalize_scan(t *testing.T) {
	testCases := []struct {
		Name     string
		Args     []string
		Leftover []string
	}{
		{
			Name:     "empty input",
			Args:     nil,
			Leftover: nil,
		},
		{
			Name:     "unknown flag is leftover, unstripped",
			Args:     []string{"-unknown", "positional1", "positional2"},
			Leftover: []string{"-unknown", "positional1", "positional2"},
		},
		{
			Name:     "bool flag consumes no value",
			Args:     []string{"-verbose", "positional"},
			Leftover: []string{"positional"},
		},
		{
			Name:     "value flag consumes next token",
			Args:     []string{"-url", "http://example.com", "positional"},
			Leftover: []string{"positional"},
		},
		{
			Name:     "flags after positionals still match",
			Args:     []string{"positional", "-verbose"},
			Leftover: []string{"positional"},
		},
		{
			Name:     "bare dash is leftover",
			Args:     []string{"-"},
			Leftover: []string{"-"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := FromArgs(append([]string{"cmd"}, tc.Args...))
			p.Bool("verbose", "verbose output")
			p.OptionalValue("url", "target url")

			leftover, err := p.Finalize()
			must.NoError(t, err)
			must.Eq(t, tc.Leftover, leftover)
		})
	}
}

func TestFinalize_missingRequired(t *testing.T) {
	p := FromArgs([]string{"head", "file.txt"})
	p.RequiredValue("num", "a required numeric flag")

	_, err := p.Finalize()
	must.Error(t, err)
	must.StrContains(t, err.Error(), "-num")

	var missing *MissingRequiredError
	must.True(t, errors.As(err, &missing))
	must.Eq(t, "num", missing.Name)
}

func TestFinalize_collectsAllMissingRequired(t *testing.T) {
	p := FromArgs([]string{"cmd"})
	p.RequiredValue("alpha", "first required flag")
	p.RequiredValue("beta", "second required flag")

	_, err := p.Finalize()
	must.Error(t, err)

	// Both violations in one error, declaration order.
	msg := err.Error()
	must.StrContains(t, msg, "-alpha")
	must.StrContains(t, msg, "-beta")
	must.True(t, strings.Index(msg, "-alpha") < strings.Index(msg, "-beta"))
}

func TestFinalize_missingValue(t *testing.T) {
	p := FromArgs([]string{"cmd", "-url"})
	p.OptionalValue("url", "target url")

	_, err := p.Finalize()
	must.Error(t, err)

	var missing *MissingValueError
	must.True(t, errors.As(err, &missing))
	must.Eq(t, "url", missing.Name)
}

func TestFinalize_valueConsumesFlagLikeToken(t *testing.T) {
	// The next token is always the value, even if it looks like a flag.
	p := FromArgs([]string{"cmd", "-url", "-verbose"})
	p.OptionalValue("url", "target url")
	p.Bool("verbose", "verbose output")

	_, err := p.Finalize()
	must.NoError(t, err)

	url, err := p.GetString("url")
	must.NoError(t, err)
	must.Eq(t, "-verbose", url)

	verbose, err := p.GetBool("verbose")
	must.NoError(t, err)
	must.False(t, verbose)
}

func TestFinalize_lastOccurrenceWins(t *testing.T) {
	p := FromArgs([]string{"cmd", "-url", "a", "-url", "b"})
	p.OptionalValue("url", "target url")

	_, err := p.Finalize()
	must.NoError(t, err)

	url, err := p.GetString("url")
	must.NoError(t, err)
	must.Eq(t, "b", url)
}

func TestFinalize_twice(t *testing.T) {
	p := FromArgs([]string{"cmd"})

	_, err := p.Finalize()
	must.NoError(t, err)

	_, err = p.Finalize()
	must.ErrorIs(t, err, ErrFinalized)
}

func TestGetBool(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		p := FromArgs([]string{"cmd", "-verbose"})
		p.Bool("verbose", "verbose output")

		_, err := p.Finalize()
		must.NoError(t, err)

		verbose, err := p.GetBool("verbose")
		must.NoError(t, err)
		must.True(t, verbose)
		must.True(t, p.Present("verbose"))
	})

	t.Run("unset", func(t *testing.T) {
		p := FromArgs([]string{"cmd"})
		p.Bool("verbose", "verbose output")

		_, err := p.Finalize()
		must.NoError(t, err)

		verbose, err := p.GetBool("verbose")
		must.NoError(t, err)
		must.False(t, verbose)
		must.False(t, p.Present("verbose"))
	})

	t.Run("value flag", func(t *testing.T) {
		p := FromArgs([]string{"cmd", "-url", "a"})
		p.OptionalValue("url", "target url")

		_, err := p.Finalize()
		must.NoError(t, err)

		_, err = p.GetBool("url")
		must.Error(t, err)
	})
}

func TestLookup_beforeFinalize(t *testing.T) {
	p := FromArgs([]string{"cmd", "-url", "a"})
	p.OptionalValue("url", "target url")

	_, err := p.GetString("url")
	must.ErrorIs(t, err, ErrNotFinalized)

	_, err = p.GetBool("url")
	must.ErrorIs(t, err, ErrNotFinalized)

	must.False(t, p.Present("url"))
}

func TestLookup_undeclared(t *testing.T) {
	p := FromArgs([]string{"cmd"})

	_, err := p.Finalize()
	must.NoError(t, err)

	_, err = p.GetString("nope")
	must.Error(t, err)

	var undeclared *UndeclaredFlagError
	must.True(t, errors.As(err, &undeclared))
	must.Eq(t, "nope", undeclared.Name)
}

func TestLookup_optionalAbsent(t *testing.T) {
	p := FromArgs([]string{"cmd"})
	p.OptionalValue("url", "target url")

	_, err := p.Finalize()
	must.NoError(t, err)

	_, err = p.GetString("url")
	must.ErrorIs(t, err, ErrNotSet)
	must.False(t, p.Present("url"))
}

func TestLookup_boolOnValueAccessor(t *testing.T) {
	p := FromArgs([]string{"cmd", "-verbose"})
	p.Bool("verbose", "verbose output")

	_, err := p.Finalize()
	must.NoError(t, err)

	_, err = p.GetString("verbose")
	must.Error(t, err)

	var verr *FlagValueError
	must.True(t, errors.As(err, &verr))
	must.Eq(t, "verbose", verr.Name)
}

func TestCoercion_lazy(t *testing.T) {
	p := FromArgs([]string{"cmd", "-workers", "abc"})
	p.RequiredValue("workers", "worker count")

	// Finalize itself succeeds: conversion errors only surface at lookup.
	_, err := p.Finalize()
	must.NoError(t, err)

	_, err = p.GetUint("workers")
	must.Error(t, err)

	var verr *FlagValueError
	must.True(t, errors.As(err, &verr))
	must.Eq(t, "workers", verr.Name)
	must.Eq(t, "abc", verr.Value)
	must.StrContains(t, err.Error(), "abc")
	must.StrContains(t, err.Error(), "-workers")
}

func TestCoercion_types(t *testing.T) {
	p := FromArgs([]string{
		"cmd",
		"-workers", "4",
		"-offset", "-8",
		"-big", "9000000000",
		"-ubig", "18000000000000000000",
		"-ratio", "0.75",
		"-wait", "1h30m",
	})
	p.RequiredValue("workers", "worker count")
	p.OptionalValue("offset", "signed offset")
	p.OptionalValue("big", "large signed value")
	p.OptionalValue("ubig", "large unsigned value")
	p.OptionalValue("ratio", "a ratio")
	p.OptionalValue("wait", "wait duration")

	_, err := p.Finalize()
	must.NoError(t, err)

	workers, err := p.GetUint("workers")
	must.NoError(t, err)
	must.Eq(t, uint(4), workers)

	offset, err := p.GetInt("offset")
	must.NoError(t, err)
	must.Eq(t, -8, offset)

	big, err := p.GetInt64("big")
	must.NoError(t, err)
	must.Eq(t, int64(9000000000), big)

	ubig, err := p.GetUint64("ubig")
	must.NoError(t, err)
	must.Eq(t, uint64(18000000000000000000), ubig)

	ratio, err := p.GetFloat64("ratio")
	must.NoError(t, err)
	must.Eq(t, 0.75, ratio)

	wait, err := p.GetDuration("wait")
	must.NoError(t, err)
	must.Eq(t, 90*time.Minute, wait)

	// A negative value is not a uint.
	_, err = p.GetUint("offset")
	must.Error(t, err)
}

func TestFromArgs_command(t *testing.T) {
	p := FromArgs([]string{"head", "-verbose"})
	must.Eq(t, "head", p.Command)

	p = FromArgs(nil)
	must.Eq(t, "", p.Command)
	_, err := p.Finalize()
	must.NoError(t, err)
}
