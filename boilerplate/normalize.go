// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"regexp"
	"strings"

	"github.com/smallbitmatters/boilerplate/unwrap"
)

var (
	// One leading //go:build or // +build constraint block, followed by a
	// blank line.
	goBuildConstraints = unwrap.Value(regexp.Compile(`^(?://(?:go:build| \+build).*\n)+\n`))
	// One leading interpreter directive, followed by any number of blank
	// lines.
	shebang = unwrap.Value(regexp.Compile(`^#!.*\n\n*`))
)

// normalize strips the variable preamble appropriate for key from the very
// start of data, at most once, and splits the remainder into lines: the
// shebang for scripting languages, the build constraint block for Go.
// Normalizing text without a preamble is a no-op.
func normalize(data, key string) []string {
	switch key {
	case "go":
		data = goBuildConstraints.ReplaceAllString(data, "")
	case "sh", "py":
		data = shebang.ReplaceAllString(data, "")
	}
	return splitLines(data)
}

// splitLines splits s into lines the way templates are stored: newline
// separated, producing no empty final line for a trailing newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
