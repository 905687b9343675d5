// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"github.com/posener/complete"
)

// Completions returns the autocompletion handlers for the declared flags,
// keyed by the dash-prefixed flag token. Flags declared without an explicit
// predictor get a sensible default: boolean flags predict nothing, value
// flags predict anything.
func (p *Parser) Completions() complete.Flags {
	flags := complete.Flags{}

	p.registry.VisitAll(func(f *Flag) {
		pred := f.Completion
		if pred == nil {
			if f.Kind == KindBool {
				pred = complete.PredictNothing
			} else {
				pred = complete.PredictAnything
			}
		}
		flags[flagPrefix+f.Name] = pred
	})

	return flags
}
