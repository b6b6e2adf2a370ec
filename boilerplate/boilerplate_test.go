// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"path/filepath"
	"testing"

	"github.com/smallbitmatters/boilerplate/testutil"
)

func TestLoadTemplates(t *testing.T) {
	t.Parallel()

	templates, err := LoadTemplates(filepath.Join("testdata", "templates"))
	testutil.AssertEqual(t, err, nil)

	testutil.AssertEqual(t, templates["go"], []string{
		"/*",
		"Copyright YEAR The X Authors.",
		"*/",
	})
	testutil.AssertEqual(t, templates["py"], []string{
		"# Copyright YEAR The X Authors.",
		"#",
		"# Licensed under the Apache License, Version 2.0.",
	})
	if _, ok := templates["Makefile"]; !ok {
		t.Fatal("basename-keyed Makefile template not loaded")
	}
}

func TestLoadTemplatesEmptyDir(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplates(t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without templates")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	templates := Templates{
		"go":       {"hdr"},
		"py":       {"hdr"},
		"Makefile": {"hdr"},
	}

	cases := map[string]struct {
		path    string
		wantKey string
		wantOK  bool
	}{
		"extension":           {path: "a/b/file.go", wantKey: "go", wantOK: true},
		"uppercase extension": {path: "file.PY", wantKey: "py", wantOK: true},
		"multiple dots":       {path: "gen.pb.go", wantKey: "go", wantOK: true},
		"exact basename":      {path: "build/Makefile", wantKey: "Makefile", wantOK: true},
		"dotfile":             {path: ".bashrc", wantOK: false},
		"unknown extension":   {path: "notes.txt", wantOK: false},
		"extensionless":       {path: "README", wantOK: false},
		"trailing dot":        {path: "weird.", wantOK: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			key, ok := templates.Resolve(tc.path)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, key, tc.wantKey)
		})
	}
}

func TestResolveBasenameFallback(t *testing.T) {
	t.Parallel()

	// A file whose extension has no template still resolves when its exact
	// basename is a key.
	templates := Templates{"BUILD.bazel": {"hdr"}}
	key, ok := templates.Resolve("pkg/BUILD.bazel")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, key, "BUILD.bazel")
}
