// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Fix-boilerplate adds the required copyright boilerplate header to files that
are missing it.

It runs the same checks as verify-boilerplate and prepends the reference
header, with the current year filled in, to every nonconforming file. Files
starting with a shebang line keep it as the first line.

Usage:

	fix-boilerplate [flags] [file ...]

When files are given, only those files are considered instead of walking the
tree. With -dry, the files that would change are printed without modifying
them.
*/
package main

import (
	_ "embed"

	"github.com/smallbitmatters/boilerplate/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
