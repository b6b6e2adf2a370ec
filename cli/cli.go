// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cli provides helpers for creating simple, single-command
// command-line applications.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/smallbitmatters/boilerplate/internal/version"
	"github.com/smallbitmatters/boilerplate/logger"
	"github.com/smallbitmatters/boilerplate/syncx"
	"github.com/smallbitmatters/boilerplate/unwrap"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Main runs an application, handling signal-based cancellation and printing
// errors to stderr. It is intended to be called directly from a program's main
// function.
func Main(app App) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := Run(ctx, app)

	if err == nil {
		return
	}

	if isPrintableError(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

type unprintableError struct{ err error }

func (e *unprintableError) Error() string { return e.err.Error() }
func (e *unprintableError) Unwrap() error { return e.err }

func isPrintableError(err error) bool {
	if errors.Is(err, flag.ErrHelp) {
		return false
	}
	var ue *unprintableError
	return !errors.As(err, &ue)
}

// ErrExitVersion signals that the application should exit successfully after
// printing the version information.
var ErrExitVersion = &unprintableError{errors.New("version flag exit")}

// ErrExitFailure signals that the application should exit with a nonzero
// status without printing an error message. It is intended for applications
// that report their findings to stdout themselves and only use the error to
// set the exit code.
var ErrExitFailure = &unprintableError{errors.New("failure exit")}

// ErrInvalidArgs indicates that the user provided invalid command-line
// arguments. It should be wrapped with more specific context about the error.
var ErrInvalidArgs = errors.New("invalid arguments")

// App represents a runnable command-line application.
type App interface {
	// Run executes the application's primary logic.
	Run(context.Context) error
}

// HasFlags is an App that can define its own command-line flags.
type HasFlags interface {
	App

	// Flags registers flags with the given FlagSet.
	Flags(*flag.FlagSet)
}

// AppFunc is an adapter to allow the use of ordinary functions as an App.
type AppFunc func(context.Context) error

// Run calls the underlying function.
func (f AppFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type ctxKey int

var envKey ctxKey

// GetEnv retrieves the application's environment from a context.
// If the context has no environment, it returns one based on the current OS.
func GetEnv(ctx context.Context) *Env {
	e, ok := ctx.Value(envKey).(*Env)
	if !ok {
		return OSEnv()
	}
	return e
}

// WithEnv returns a new context that carries the provided application environment.
func WithEnv(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// Env encapsulates the application's environment, including arguments,
// standard I/O streams, and environment variables.
type Env struct {
	Args   []string
	Getenv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logf syncx.Lazy[logger.Logf]
}

// Logf prints a formatted message to the environment's standard error.
func (e *Env) Logf(format string, args ...any) {
	e.logf.Get(func() logger.Logf {
		return log.New(e.Stderr, "", 0).Printf
	})(format, args...)
}

// OSEnv creates an Env based on the current operating system environment.
func OSEnv() *Env {
	return &Env{
		Args:   os.Args[1:],
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes an application. It parses flags, handles the standard -version
// flag, installs a context [logger.Logger] writing to the environment's
// stderr, and then runs the app.
func Run(ctx context.Context, app App) error {
	name := version.CmdName()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if fa, ok := app.(HasFlags); ok {
		fa.Flags(flags)
	}

	var showVersion bool
	if flags.Lookup("version") == nil {
		flags.BoolVar(&showVersion, "version", false, "Show version.")
	}

	env := GetEnv(ctx)

	flags.Usage = usage(flags, env.Stderr)
	flags.SetOutput(env.Stderr)
	if err := flags.Parse(env.Args); err != nil {
		// Already printed to stderr by flag package, so mark as an unprintable error.
		return &unprintableError{err}
	}

	if showVersion {
		fmt.Fprint(env.Stderr, version.Version())
		return ErrExitVersion
	}

	env.Args = flags.Args()

	ctx = WithEnv(ctx, env)
	if logger.IsDefault(logger.Get(ctx)) {
		ctx = logger.Put(ctx, newEnvLogger(env))
	}

	return app.Run(ctx)
}

// newEnvLogger builds a [logger.Logger] that writes colorized, human-readable
// records to the environment's stderr. Color is enabled only when stderr is a
// terminal.
func newEnvLogger(env *Env) *logger.Logger {
	noColor := true
	if f, ok := env.Stderr.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return logger.New(tint.NewHandler(env.Stderr, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}), level)
}

func usage(flags *flag.FlagSet, stderr io.Writer) func() {
	return func() {
		if docSrc != nil {
			fmt.Fprintf(stderr, "%s\n", doc.Get(parseDocComment))
		}
		fmt.Fprint(stderr, "Available flags:\n\n")
		flags.PrintDefaults()
	}
}

var (
	docSrc []byte
	doc    syncx.Lazy[string]
)

// SetDocComment sets the main documentation for the application, which is
// displayed when a user passes the -help flag. It is intended to be used with
// Go's //go:embed directive.
//
// Example:
//
//	//go:embed doc.go
//	var doc []byte
//
//	func init() { cli.SetDocComment(doc) }
func SetDocComment(src []byte) { docSrc = src }

func parseDocComment() string {
	s := bufio.NewScanner(bytes.NewReader(docSrc))
	var (
		doc       string
		inComment bool
	)
	for s.Scan() {
		line := s.Text()
		if line == "/*" {
			inComment = true
			continue
		}
		if line == "*/" {
			// Comment ended, stop scanning.
			break
		}
		if inComment {
			doc += line + "\n"
		}
	}
	unwrap.NoError(s.Err())
	return doc
}
