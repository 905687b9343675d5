// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"time"
)

// GetDuration parses the captured value of a value flag with
// time.ParseDuration, e.g. "250ms" or "1h30m".
func (p *Parser) GetDuration(name string) (time.Duration, error) {
	raw, err := p.lookupValue(name)
	if err != nil {
		return 0, err
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &FlagValueError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}
