// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// maxLineLength is the longest line help output should render, including any
// indentation.
const maxLineLength = 72

// WrapAtLengthWithPadding wraps the given text at the maximum line length and
// indents every resulting line by pad spaces.
func WrapAtLengthWithPadding(s string, pad int) string {
	wrapped := wordwrap.WrapString(s, uint(maxLineLength-pad))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

// WrapAtLength wraps the given text at the maximum line length with no
// indentation.
func WrapAtLength(s string) string {
	return WrapAtLengthWithPadding(s, 0)
}
