// Package cmdline declares, matches and renders command-line options.
//
// A host program declares a set of Option values (flags and value-bearing
// switches), registers them on a Parser along with the built-in help and
// version options, and calls Parse or Run. The parser scans the raw argument
// vector once, left to right, matching each token against the declared
// options in order, and then enforces the required-option policy.
//
// Parse never terminates the process: it reports help, version and fatal
// conditions through a typed *Error, so the parser can be embedded in larger
// programs and tests. Run is the conventional driver on top of Parse, which
// prints to the configured writers and exits.
//
// For exporting a declared option set onto a spf13/cobra command, see
// Parser.Command and Parser.BindFlags.
package cmdline

import (
	"io"
)

// === Configuration (Functional Options) ===

// Opt is a functional option for configuring a Parser at construction time.
type Opt func(p *Parser)

// WithName sets the program name used by the version banner.
func WithName(name string) Opt {
	return func(p *Parser) { p.name = name }
}

// WithVersion sets the program version used by the version banner.
func WithVersion(version string) Opt {
	return func(p *Parser) { p.version = version }
}

// WithOutput sets the writer used by Run for help and version output.
// It defaults to os.Stdout.
func WithOutput(w io.Writer) Opt {
	return func(p *Parser) { p.stdout = w }
}

// WithErrOutput sets the writer used by Run for error diagnostics.
// It defaults to os.Stderr.
func WithErrOutput(w io.Writer) Opt {
	return func(p *Parser) { p.stderr = w }
}

// WithExitFunc sets the function called by Run to terminate the process.
// It defaults to os.Exit. Tests inject a recording function here so that
// a fatal parse does not kill the test runner.
func WithExitFunc(exit func(code int)) Opt {
	return func(p *Parser) { p.exit = exit }
}

// WithColumns fixes the terminal width used when wrapping help text.
// When not set, the width is detected from the terminal, with a fallback
// of 80 columns.
func WithColumns(columns int) Opt {
	return func(p *Parser) { p.columns = columns }
}

// WithoutRequiredMatch disables the default behavior of showing the help
// text when no declared option matched any argument at all.
func WithoutRequiredMatch() Opt {
	return func(p *Parser) { p.requireMatch = false }
}
