// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"testing"

	"github.com/smallbitmatters/boilerplate/testutil"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		data string
		key  string
		want []string
	}{
		"go build constraint block stripped": {
			data: "//go:build linux\n// +build linux\n\n// Copyright 2020.\npackage foo\n",
			key:  "go",
			want: []string{"// Copyright 2020.", "package foo"},
		},
		"go single constraint line stripped": {
			data: "//go:build !windows\n\npackage foo\n",
			key:  "go",
			want: []string{"package foo"},
		},
		"go constraint without blank line kept": {
			data: "//go:build linux\npackage foo\n",
			key:  "go",
			want: []string{"//go:build linux", "package foo"},
		},
		"go constraint not at start kept": {
			data: "package foo\n\n//go:build linux\n\nvar x int\n",
			key:  "go",
			want: []string{"package foo", "", "//go:build linux", "", "var x int"},
		},
		"python shebang stripped": {
			data: "#!/usr/bin/env python\n\n\n# Copyright 2020.\n",
			key:  "py",
			want: []string{"# Copyright 2020."},
		},
		"shell shebang without blank lines stripped": {
			data: "#!/bin/sh\n# Copyright 2020.\n",
			key:  "sh",
			want: []string{"# Copyright 2020."},
		},
		"shebang not at start kept": {
			data: "# Copyright 2020.\n#!/bin/sh\n",
			key:  "sh",
			want: []string{"# Copyright 2020.", "#!/bin/sh"},
		},
		"no preamble is a no-op": {
			data: "# Copyright 2020.\n#\n# Licensed.\n",
			key:  "py",
			want: []string{"# Copyright 2020.", "#", "# Licensed."},
		},
		"other keys untouched": {
			data: "#!/bin/sh\nsome: yaml\n",
			key:  "yaml",
			want: []string{"#!/bin/sh", "some: yaml"},
		},
		"empty input": {
			data: "",
			key:  "go",
			want: []string{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, normalize(tc.data, tc.key), tc.want)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	// Normalizing already-normalized text must not change it further.
	for _, key := range []string{"go", "sh", "py"} {
		data := "#!/bin/sh\n\n//go:build linux\n\n# Copyright 2020.\nbody\n"
		once := normalize(data, key)
		var rejoined string
		for _, line := range once {
			rejoined += line + "\n"
		}
		testutil.AssertEqual(t, normalize(rejoined, key), once)
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want []string
	}{
		"empty":                 {in: "", want: []string{}},
		"trailing newline":      {in: "a\nb\n", want: []string{"a", "b"}},
		"no trailing newline":   {in: "a\nb", want: []string{"a", "b"}},
		"blank lines preserved": {in: "a\n\nb\n", want: []string{"a", "", "b"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, splitLines(tc.in), tc.want)
		})
	}
}
