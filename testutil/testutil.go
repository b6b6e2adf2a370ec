// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil provides helpers for common testing scenarios.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// AssertEqual fails the test if got is not deeply equal to want.
// It prints both values for easy comparison upon failure.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values are not equal:\ngot:  %#v\nwant: %#v", got, want)
	}
}

// Run runs a subtest for each file that matches the provided glob pattern.
// The subtest name is the file's base name without its extension.
func Run(t *testing.T, glob string, f func(t *testing.T, match string)) {
	t.Helper()
	matches, err := filepath.Glob(glob)
	if err != nil {
		t.Fatalf("filepath.Glob(%q): %v", glob, err)
	}

	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), filepath.Ext(match))
		t.Run(name, func(t *testing.T) {
			f(t, match)
		})
	}
}

// RunGolden runs a test for each file matching a glob pattern and compares
// the result of a function f with the contents of a corresponding ".golden"
// file.
//
// If update is true, the golden file is updated with the new result instead
// of being compared.
func RunGolden(t *testing.T, glob string, f func(t *testing.T, match string) []byte, update bool) {
	t.Helper()
	Run(t, glob, func(t *testing.T, match string) {
		got := f(t, match)
		goldenFile := strings.TrimSuffix(match, filepath.Ext(match)) + ".golden"

		if update {
			if err := os.WriteFile(goldenFile, got, 0o644); err != nil {
				t.Fatalf("failed to write golden file %q: %v", goldenFile, err)
			}
			return
		}

		want, err := os.ReadFile(goldenFile)
		if err != nil {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}

		if !bytes.Equal(got, want) {
			t.Fatalf("golden file mismatch. got:\n%s", got)
		}
	})
}

// ParseTxtar parses path as a txtar archive, failing the test on error.
func ParseTxtar(t *testing.T, path string) *txtar.Archive {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse txtar archive %q: %v", path, err)
	}
	return ar
}

// ExtractTxtar extracts a txtar archive to a specified directory.
func ExtractTxtar(t *testing.T, ar *txtar.Archive, dir string) {
	t.Helper()
	for _, f := range ar.Files {
		path := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %q: %v", path, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("failed to extract %q: %v", path, err)
		}
	}
}
