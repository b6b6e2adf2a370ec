// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Verify-boilerplate checks that every source file in a repository begins with
the required copyright boilerplate header.

Reference headers live in a directory of template files, one per file type,
named boilerplate.<key>.txt, where <key> is a file extension ("go", "py") or
an exact basename ("Makefile"). A template contains the expected header
verbatim, with the copyright year replaced by the placeholder YEAR.

The tool walks the root directory, skipping vendored dependencies, build
output and version control metadata, and checks every file whose type has a
template. Shebang lines and Go build constraints are ignored, as are files
generated by tooling and files carrying the +skip_license_check marker.

Usage:

	verify-boilerplate [flags] [file ...]

When files are given, only those files are checked instead of walking the
tree. The tool prints the nonconforming paths, relative to the root, and
exits with a nonzero status when any file fails.
*/
package main

import (
	_ "embed"

	"github.com/smallbitmatters/boilerplate/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
