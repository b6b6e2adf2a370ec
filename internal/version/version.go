// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the currently running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"github.com/smallbitmatters/boilerplate/syncx"
)

var cmdName syncx.Lazy[string]

// CmdName returns the base name of the currently running binary.
func CmdName() string {
	return cmdName.Get(func() string {
		exe, err := os.Executable()
		if err != nil {
			return filepath.Base(os.Args[0])
		}
		return filepath.Base(exe)
	})
}

var info syncx.Lazy[string]

// Version returns a human-readable description of the running binary: its
// module version (or VCS revision, when built from a source checkout) and the
// Go version it was built with.
func Version() string {
	return info.Get(func() string {
		ver := "devel"
		if bi, ok := debug.ReadBuildInfo(); ok {
			if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
				ver = bi.Main.Version
			}
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && ver == "devel" {
					ver = s.Value
					if len(ver) > 12 {
						ver = ver[:12]
					}
				}
			}
		}
		return fmt.Sprintf("%s %s (%s)\n", CmdName(), ver, runtime.Version())
	})
}
