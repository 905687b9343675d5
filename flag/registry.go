// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"
)

// Registry is an ordered collection of declared flags. Declaration order is
// preserved and drives both help rendering and the order in which required
// flag violations are reported. The Registry owns its Flag entries.
type Registry struct {
	order []*Flag
	index map[string]*Flag
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Flag),
	}
}

// Declare adds a flag to the registry. Declaring the same name twice is a
// defect in the calling code, so it fails fast with a panic rather than
// deferring to Finalize.
func (r *Registry) Declare(f *Flag) {
	if _, exists := r.index[f.Name]; exists {
		panic(fmt.Sprintf("flag: duplicate declaration of -%s", f.Name))
	}

	r.order = append(r.order, f)
	r.index[f.Name] = f
}

// Lookup returns the flag declared under name.
func (r *Registry) Lookup(name string) (*Flag, error) {
	f, ok := r.index[name]
	if !ok {
		return nil, &UndeclaredFlagError{Name: name}
	}
	return f, nil
}

// Len returns the number of declared flags.
func (r *Registry) Len() int {
	return len(r.order)
}

// VisitAll calls fn for every declared flag, in declaration order. It never
// iterates the backing map, so the order is stable across calls.
func (r *Registry) VisitAll(fn func(*Flag)) {
	for _, f := range r.order {
		fn(f)
	}
}

// match returns the flag declared under name, or nil. Used by the scanner,
// where an unmatched name is leftover data rather than an error.
func (r *Registry) match(name string) *Flag {
	return r.index[name]
}
