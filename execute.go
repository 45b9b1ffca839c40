package cmdline

import (
	"errors"
	"fmt"
	"strings"
)

// Run parses the argument vector and handles the outcome the way the
// classic command-line contract expects: the help text and the version
// banner go to the configured output writer followed by a successful exit,
// and fatal conditions go to the error writer with an "ERROR: " prefix
// followed by a non-zero exit. Hosts that must not terminate the process
// use Parse directly instead.
func (p *Parser) Run() {
	err := p.Parse()
	if err == nil {
		return
	}

	var parseError *Error
	if !errors.As(err, &parseError) {
		fmt.Fprintf(p.stderr, "ERROR: %s, exiting ...\n", err)
		p.exit(1)

		return
	}

	switch parseError.Type {
	case ErrHelp:
		fmt.Fprint(p.stdout, parseError.Message)
		p.exit(0)

	case ErrVersion:
		fmt.Fprintln(p.stdout, parseError.Message)
		p.exit(0)

	default:
		// Required-option failures carry one line per missing option,
		// all of them reported before exiting.
		for _, line := range strings.Split(parseError.Message, "\n") {
			fmt.Fprintf(p.stderr, "ERROR: %s, exiting ...\n", line)
		}

		p.exit(1)
	}
}
