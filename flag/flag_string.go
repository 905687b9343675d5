// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

// GetString returns the raw captured value of a value flag. No conversion is
// applied; the value is exactly the token that followed the flag. An omitted
// optional flag reports ErrNotSet.
func (p *Parser) GetString(name string) (string, error) {
	return p.lookupValue(name)
}
