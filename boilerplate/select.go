// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import "strings"

// skippedDirs are path fragments that exclude a file from verification
// entirely: vendored dependencies, build output, version control metadata
// and generated output directories.
var skippedDirs = []string{
	"Godeps", "third_party", "_gopath", "_output",
	"external", ".git", "vendor", "__init__.py",
	"node_modules", "bin",
}

// ignoredHeaders mark files that never require boilerplate: output of code
// generators, and files that explicitly opt out of the check in either
// comment style.
var ignoredHeaders = []string{
	"// Code generated by",
	"// +skip_license_check",
	"# +skip_license_check",
}

// generatedFragment exempts generated artifacts by name alone, without
// reading their content.
const generatedFragment = "zz_generate"

func inSkippedDir(path string) bool {
	for _, dir := range skippedDirs {
		if strings.Contains(path, dir) {
			return true
		}
	}
	return false
}

func hasIgnoredHeader(data string) bool {
	for _, header := range ignoredHeaders {
		if strings.Contains(data, header) {
			return true
		}
	}
	return false
}
