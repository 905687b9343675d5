// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

// GetBool returns the final value of a boolean flag: true if the flag was
// seen during scanning, false otherwise. It may only be called after a
// successful Finalize, and only for flags declared boolean.
func (p *Parser) GetBool(name string) (bool, error) {
	if !p.finalized {
		return false, ErrNotFinalized
	}

	f, err := p.registry.Lookup(name)
	if err != nil {
		return false, err
	}
	if f.Kind != KindBool {
		return false, &FlagValueError{
			Name: name,
			Err:  errNotBool,
		}
	}
	return f.present, nil
}
