// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/smallbitmatters/boilerplate/logger"
	"github.com/smallbitmatters/boilerplate/syncx"

	"github.com/go4org/hashtriemap"
)

// Report is the outcome of a verification run.
type Report struct {
	// Failing lists the nonconforming files as paths relative to the
	// verifier's root, sorted lexicographically.
	Failing []string
}

// Verifier checks that files under a root directory begin with the reference
// boilerplate header for their file type. A single Verify call checks files
// in parallel; the Verifier holds no mutable state besides a per-run content
// cache and is safe for concurrent use.
type Verifier struct {
	root      string
	templates Templates
	dates     *regexp.Regexp
	contents  hashtriemap.HashTrieMap[string, *fileContent]
}

type fileContent struct {
	data string
	err  error
}

// NewVerifier returns a Verifier rooted at root, resolving root to an
// absolute path. The template set must be non-empty.
func NewVerifier(root string, templates Templates) (*Verifier, error) {
	if len(templates) == 0 {
		return nil, errors.New("boilerplate: no templates loaded")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Verifier{
		root:      abs,
		templates: templates,
		dates:     datePattern(time.Now().Year()),
	}, nil
}

// Verify checks paths, or every eligible file under the root when paths is
// empty, and reports the nonconforming ones.
func (v *Verifier) Verify(ctx context.Context, paths []string) (*Report, error) {
	if len(paths) == 0 {
		walked, err := v.walk()
		if err != nil {
			return nil, err
		}
		paths = walked
	}

	files, err := v.selectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "verifying boilerplate headers", slog.Int("files", len(files)))

	var (
		mu      sync.Mutex
		failing []string
	)
	lwg := syncx.NewLimitedWaitGroup(runtime.GOMAXPROCS(0))
	for _, path := range files {
		lwg.Go(func() {
			if v.filePasses(path) {
				return
			}
			rel, err := filepath.Rel(v.root, path)
			if err != nil {
				rel = path
			}
			mu.Lock()
			failing = append(failing, rel)
			mu.Unlock()
		})
	}
	lwg.Wait()

	slices.Sort(failing)
	return &Report{Failing: failing}, nil
}

// walk returns every file under the root, pruning skipped directories so the
// tree below them is never visited.
func (v *Verifier) walk() ([]string, error) {
	var files []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != v.root && slices.Contains(skippedDirs, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// selectFiles filters paths down to the files subject to verification: paths
// outside skipped directories whose template key is recognized and which are
// not exempt. The exemption check reads each file; a read failure or non-text
// content here aborts the whole run, so binaries are never silently skipped.
func (v *Verifier) selectFiles(ctx context.Context, paths []string) ([]string, error) {
	var out []string
	for _, path := range v.normalizePaths(paths) {
		if _, ok := v.templates.Resolve(path); !ok {
			continue
		}
		if strings.Contains(path, generatedFragment) {
			continue
		}
		data, err := v.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("boilerplate: reading %s: %w", path, err)
		}
		if !utf8.ValidString(data) {
			return nil, fmt.Errorf("boilerplate: %s is not valid UTF-8 text", path)
		}
		if hasIgnoredHeader(data) {
			logger.Debug(ctx, "skipping file with ignored header", slog.String("path", path))
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

// normalizePaths drops paths inside skipped directories and resolves the
// remainder to absolute form against the root.
func (v *Verifier) normalizePaths(paths []string) []string {
	var out []string
	for _, path := range paths {
		if inSkippedDir(path) {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(v.root, path)
		}
		out = append(out, path)
	}
	return out
}

// filePasses reports whether the file at path begins with its reference
// header. An unreadable file fails its own check without affecting the rest
// of the batch.
func (v *Verifier) filePasses(path string) bool {
	data, err := v.readFile(path)
	if err != nil {
		return false
	}
	key, ok := v.templates.Resolve(path)
	if !ok {
		return false
	}
	return matches(normalize(data, key), v.templates[key], v.dates)
}

// readFile reads path at most once per run, caching both the content and the
// error. The exemption check and the header comparison share the cache.
func (v *Verifier) readFile(path string) (string, error) {
	if c, ok := v.contents.Load(path); ok {
		return c.data, c.err
	}
	data, err := os.ReadFile(path)
	c, _ := v.contents.LoadOrStore(path, &fileContent{data: string(data), err: err})
	return c.data, c.err
}
