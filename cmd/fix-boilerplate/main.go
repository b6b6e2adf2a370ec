// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/smallbitmatters/boilerplate/boilerplate"
	"github.com/smallbitmatters/boilerplate/cli"
	"github.com/smallbitmatters/boilerplate/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	rootDir     string
	templateDir string
	dry         bool
	verbose     bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.rootDir, "rootdir", ".", "Root `directory` to examine.")
	fs.StringVar(&a.templateDir, "boilerplate-dir", "", "`Directory` containing boilerplate.<key>.txt templates (default <rootdir>/hack/boilerplate).")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have a header added, without making changes.")
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

	v, err := boilerplate.NewVerifier(root, templates)
	if err != nil {
		return err
	}

	report, err := v.Verify(ctx, env.Args)
	if err != nil {
		return err
	}

	year := strconv.Itoa(time.Now().Year())
	for _, rel := range report.Failing {
		path := filepath.Join(root, rel)
		key, ok := templates.Resolve(path)
		if !ok {
			continue
		}
		header := strings.ReplaceAll(strings.Join(templates[key], "\n"), boilerplate.YearToken, year) + "\n\n"

		if a.dry {
			env.Logf("Would add boilerplate header to %s", rel)
			continue
		}
		if err := prependHeader(path, header); err != nil {
			return fmt.Errorf("fixing %s: %w", rel, err)
		}
		logger.Info(ctx, "added boilerplate header", slog.String("path", rel))
	}
	return nil
}

// prependHeader inserts header at the start of the file at path, keeping a
// leading shebang line in place.
func prependHeader(path, header string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf strings.Builder
	rest := string(content)
	if strings.HasPrefix(rest, "#!") {
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			buf.WriteString(rest[:i+1])
			buf.WriteString("\n")
			rest = strings.TrimLeft(rest[i+1:], "\n")
		}
	}
	buf.WriteString(header)
	buf.WriteString(rest)

	return os.WriteFile(path, []byte(buf.String()), info.Mode().Perm())
}
