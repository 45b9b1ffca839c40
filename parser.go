package cmdline

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser owns an ordered collection of option declarations plus the
// built-in help and version options, and scans a raw argument vector
// against them. A parser is built for one argument vector and consumed by
// a single Parse (or Run) call; it is not reusable for a second vector.
type Parser struct {
	options []*Option
	args    []string

	name    string
	version string

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)

	columns      int
	requireMatch bool

	helpOpt    *Option
	versionOpt *Option
}

// New returns a parser for the given argument vector, which must include
// the program invocation path at index 0 (pass os.Args). The argument
// slice is borrowed read-only for the lifetime of the parser.
func New(args []string, options ...Opt) *Parser {
	parser := &Parser{
		args:         args,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		exit:         os.Exit,
		requireMatch: true,
		helpOpt:      &Option{Name: "-h", AltName: "--help", Description: "Displays Help"},
		versionOpt:   &Option{Name: "-v", AltName: "--version", Description: "Print the version"},
	}

	for _, opt := range options {
		opt(parser)
	}

	if parser.columns <= 0 {
		parser.columns = terminalColumns()
	}

	return parser
}

// AddOption appends an option declaration to the collection. Insertion
// order is both the display order in the help text and the order in which
// options get a chance to match each token. The registered option is
// returned as a stable handle for the post-parse queries.
func (p *Parser) AddOption(opt *Option) *Option {
	p.options = append(p.options, opt)

	return opt
}

// AddSeparator appends a non-functional entry whose only effect is a blank
// line in the help output.
func (p *Parser) AddSeparator() {
	p.options = append(p.options, &Option{separator: true})
}

// AddHelpOption prepends the built-in -h/--help option, so that it is
// always the first option checked and displayed.
func (p *Parser) AddHelpOption() {
	p.options = append([]*Option{p.helpOpt}, p.options...)
}

// AddVersionOption appends the built-in -v/--version option. A custom
// declaration may be passed to override the built-in names before it is
// added.
func (p *Parser) AddVersionOption(override ...*Option) {
	if len(override) > 0 && override[0] != nil {
		p.versionOpt = override[0]
	}

	p.options = append(p.options, p.versionOpt)
}

// Parse scans the argument vector once, left to right, and returns the
// outcome instead of terminating the process:
//
//   - nil when parsing completed and the host should continue;
//   - *Error with Type ErrHelp when the help option was set, or when no
//     option matched at all while a match was required (the message is the
//     rendered help text, and the condition is not an error for exit-code
//     purposes);
//   - *Error with Type ErrVersion when the version option was set (the
//     message is the version banner);
//   - *Error with another Type on a fatal condition: a value-starved
//     option, an invalid captured value, or missing required options
//     (reported in batch, one line per option).
func (p *Parser) Parse() error {
	anyMatch, err := p.scan()
	if err != nil {
		return err
	}

	if p.helpOpt.IsSet() || (!anyMatch && p.requireMatch) {
		return newError(ErrHelp, p.helpText())
	}

	if p.versionOpt.IsSet() {
		return newError(ErrVersion, p.versionBanner())
	}

	var missing []string

	for _, opt := range p.options {
		if opt.Required && !opt.IsSet() {
			missing = append(missing, fmt.Sprintf(
				"Required option (%s / %s) not set", opt.Name, opt.AltName))
		}
	}

	if len(missing) > 0 {
		return newError(ErrRequired, strings.Join(missing, "\n"))
	}

	return nil
}

// scan walks the tokens from index 1 (index 0 is the invocation path).
// Every option gets a chance at every token, in declaration order, with no
// short circuit after a match. An option that already matched is skipped,
// so a later duplicate token can never overwrite an already-captured
// value. A matching value-bearing option consumes the immediately
// following token.
func (p *Parser) scan() (bool, error) {
	anyMatch := false

	for i := 1; i < len(p.args); i++ {
		arg := p.args[i]

		for _, opt := range p.options {
			if opt.set || !opt.matches(arg) {
				continue
			}

			opt.set = true
			anyMatch = true

			if !opt.hasValue() {
				continue
			}

			i++
			if i >= len(p.args) {
				return anyMatch, newErrorf(ErrExpectedArgument,
					"Option (%s / %s) requires a value, but none was provided",
					opt.Name, opt.AltName)
			}

			opt.value = p.args[i]

			if err := checkValue(opt); err != nil {
				return anyMatch, err
			}
		}
	}

	return anyMatch, nil
}

// lookup resolves a declaration to the live option in the collection, by
// declaration equality (which short-circuits on handle identity).
func (p *Parser) lookup(decl *Option) *Option {
	if decl == nil {
		return nil
	}

	for _, opt := range p.options {
		if opt.equals(decl) {
			return opt
		}
	}

	return nil
}

// IsSet reports whether the option registered under the given declaration
// matched or carries a default. An unregistered declaration is not a
// caller error and reports false.
func (p *Parser) IsSet(decl *Option) bool {
	opt := p.lookup(decl)
	if opt == nil {
		return false
	}

	return opt.IsSet()
}

// GetValue returns the value of the option registered under the given
// declaration, its default when it never matched, and the empty string for
// an unregistered declaration.
func (p *Parser) GetValue(decl *Option) string {
	opt := p.lookup(decl)
	if opt == nil {
		return ""
	}

	return opt.GetValue()
}

// GetValueList splits the resolved value on the first character of delim.
// Multi-character delimiters are not supported, and an empty delimiter
// falls back to a comma. An unregistered declaration, or an empty resolved
// value, yields an empty list.
func (p *Parser) GetValueList(decl *Option, delim string) []string {
	opt := p.lookup(decl)
	if opt == nil {
		return nil
	}

	value := opt.GetValue()
	if value == "" {
		return nil
	}

	sep := ","
	if delim != "" {
		sep = string(delim[0])
	}

	return strings.Split(value, sep)
}
