// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"strconv"
)

// GetInt parses the captured value of a value flag as an int. Base prefixes
// (0x, 0o, 0b) are honored, matching strconv.ParseInt with base 0.
func (p *Parser) GetInt(name string) (int, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(raw, 0, strconv.IntSize)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return int(v), nil
}

// GetInt64 parses the captured value of a value flag as an int64.
func (p *Parser) GetInt64(name string) (int64, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}

// GetUint parses the captured value of a value flag as a uint.
func (p *Parser) GetUint(name string) (uint, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(raw, 0, strconv.IntSize)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return uint(v), nil
}

// GetUint64 parses the captured value of a value flag as a uint64.
func (p *Parser) GetUint64(name string) (uint64, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}
