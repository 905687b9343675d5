// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"strconv"
)

// GetFloat64 parses the captured value of a value flag as a float64.
func (p *Parser) GetFloat64(name string) (float64, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}
