// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/smallbitmatters/boilerplate/boilerplate"
	"github.com/smallbitmatters/boilerplate/cli"
	"github.com/smallbitmatters/boilerplate/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	rootDir     string
	templateDir string
	verbose     bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.rootDir, "rootdir", ".", "Root `directory` to examine.")
	fs.StringVar(&a.templateDir, "boilerplate-dir", "", "`Directory` containing boilerplate.<key>.txt templates (default <rootdir>/hack/boilerplate).")
	fs.BoolVar(&a.verbose, "v", false, "Enable verbose logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}

	root, err := filepath.Abs(a.rootDir)
	if err != nil {
		return err
	}
	templateDir := a.templateDir
	if templateDir == "" {
		templateDir = filepath.Join(root, "hack", "boilerplate")
	}

	templates, err := boilerplate.LoadTemplates(templateDir)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "loaded templates", slog.Int("count", len(templates)))

	v, err := boilerplate.NewVerifier(root, templates)
	if err != nil {
		return err
	}

	report, err := v.Verify(ctx, env.Args)
	if err != nil {
		return err
	}
	if len(report.Failing) == 0 {
		return nil
	}

	fmt.Fprintf(env.Stdout, "%d files have incorrect boilerplate headers:\n", len(report.Failing))
	for _, path := range report.Failing {
		fmt.Fprintln(env.Stdout, path)
	}
	return cli.ErrExitFailure
}
