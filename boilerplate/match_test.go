// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"testing"

	"github.com/smallbitmatters/boilerplate/testutil"
)

var pyRef = []string{
	"# Copyright YEAR The X Authors.",
	"#",
	"# Licensed under the Apache License, Version 2.0.",
}

func TestMatches(t *testing.T) {
	t.Parallel()

	dates := datePattern(2025)

	cases := map[string]struct {
		candidate []string
		ref       []string
		want      bool
	}{
		"exact match with in-range year": {
			candidate: []string{
				"# Copyright 2020 The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: true,
		},
		"earliest supported year": {
			candidate: []string{
				"# Copyright 2014 The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: true,
		},
		"trailing content ignored": {
			candidate: []string{
				"# Copyright 2020 The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
				"",
				"import os",
			},
			ref:  pyRef,
			want: true,
		},
		"shorter than reference": {
			candidate: []string{"# Copyright 2020 The X Authors.", "#"},
			ref:       pyRef,
			want:      false,
		},
		"year out of range": {
			candidate: []string{
				"# Copyright 1999 The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: false,
		},
		"literal placeholder in candidate": {
			candidate: []string{
				"# Copyright YEAR The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: false,
		},
		"literal placeholder after the substituted line": {
			candidate: []string{
				"# Copyright 2020 The X Authors.",
				"#",
				"# Licensed under the Apache License, Version YEAR.",
			},
			ref: []string{
				"# Copyright YEAR The X Authors.",
				"#",
				"# Licensed under the Apache License, Version YEAR.",
			},
			want: false,
		},
		"stray year before the expected line": {
			candidate: []string{
				"# Written in 2019.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: false,
		},
		"second year on a later line compared literally": {
			candidate: []string{
				"# Copyright 2020 The X Authors.",
				"# Revised 2021.",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref: []string{
				"# Copyright YEAR The X Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			want: false,
		},
		"all years on the first matching line substituted": {
			candidate: []string{"# Copyright 2014-2020 The X Authors."},
			ref:       []string{"# Copyright YEAR-YEAR The X Authors."},
			want:      true,
		},
		"wrong text": {
			candidate: []string{
				"# Copyright 2020 The Y Authors.",
				"#",
				"# Licensed under the Apache License, Version 2.0.",
			},
			ref:  pyRef,
			want: false,
		},
		"empty reference always matches": {
			candidate: []string{"anything"},
			ref:       []string{},
			want:      true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, matches(tc.candidate, tc.ref, dates), tc.want)
		})
	}
}

func TestMatchesDoesNotMutateCandidate(t *testing.T) {
	t.Parallel()

	dates := datePattern(2025)
	candidate := []string{"# Copyright 2020 The X Authors."}
	matches(candidate, []string{"# Copyright YEAR The X Authors."}, dates)
	testutil.AssertEqual(t, candidate[0], "# Copyright 2020 The X Authors.")
}

func TestDatePattern(t *testing.T) {
	t.Parallel()

	dates := datePattern(2016)
	testutil.AssertEqual(t, dates.String(), "(2014|2015|2016)")
	testutil.AssertEqual(t, dates.MatchString("Copyright 2015"), true)
	testutil.AssertEqual(t, dates.MatchString("Copyright 2017"), false)
}
