// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package boilerplate verifies that source files begin with the required
// copyright boilerplate header for their file type.
//
// Reference headers are stored as plain text templates, one per file type,
// with the copyright year replaced by the placeholder [YearToken]. A file
// conforms when its leading lines, after stripping variable preambles
// (shebang lines, Go build constraints) and normalizing the year, equal the
// template for its type verbatim.
package boilerplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// YearToken is the placeholder the reference templates carry in place of the
// copyright year.
const YearToken = "YEAR"

// Templates maps a template key to the expected header lines for that key.
// A key is a lowercase file extension without the leading dot ("go", "py"),
// or an exact basename for extensionless conventions ("Makefile").
type Templates map[string][]string

// LoadTemplates reads every boilerplate.<key>.txt file in dir and returns
// the resulting template set. It returns an error when dir contains no
// templates or any template is unreadable; callers should treat that as a
// fatal configuration error.
func LoadTemplates(dir string) (Templates, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "boilerplate.*.txt"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("boilerplate: no templates found in %s", dir)
	}

	t := make(Templates, len(matches))
	for _, path := range matches {
		key := strings.SplitN(filepath.Base(path), ".", 3)[1]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("boilerplate: reading template %s: %w", path, err)
		}
		t[key] = splitLines(string(data))
	}
	return t, nil
}

// Resolve returns the template key applying to path: the lowercase extension
// when a template exists for it, otherwise the exact basename. The second
// return value is false when no template applies to path at all.
func (t Templates) Resolve(path string) (key string, ok bool) {
	base := filepath.Base(path)
	if ext := extension(base); ext != "" {
		if _, ok := t[ext]; ok {
			return ext, true
		}
	}
	if _, ok := t[base]; ok {
		return base, true
	}
	return "", false
}

// extension returns the lowercase final-dot extension of base, without the
// dot. Dotfiles and extensionless names have no extension.
func extension(base string) string {
	if i := strings.LastIndex(base, "."); i > 0 {
		return strings.ToLower(base[i+1:])
	}
	return ""
}
