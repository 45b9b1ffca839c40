package cmdline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

const (
	// Column width of conventional terminals, used when detection fails.
	defaultColumns = 80

	// Fixed gutter between the name column and the description column.
	gutterWidth = 4

	minWrapLength = 10
)

// WriteHelp writes the usage banner and every registered option to the
// provided writer. Rendering is an explicit two-phase pass: first the
// maximum name-column width is measured across all options, then each
// option is rendered against that shared width so the description columns
// align.
func (p *Parser) WriteHelp(writer io.Writer) {
	if writer == nil {
		return
	}

	buf := bufio.NewWriter(writer)
	width := p.measureOptions()

	fmt.Fprintf(buf, "Usage: %s option\n\n", p.programName())

	for _, opt := range p.options {
		writeOptionHelp(buf, opt, width, p.columns)
	}

	buf.Flush()
}

func (p *Parser) helpText() string {
	buf := &bytes.Buffer{}
	p.WriteHelp(buf)

	return buf.String()
}

// programName derives the displayed program name from the invocation path,
// stripped to its base filename.
func (p *Parser) programName() string {
	if len(p.args) == 0 || p.args[0] == "" {
		return p.name
	}

	return filepath.Base(p.args[0])
}

// measureOptions returns the widest name column among all options.
func (p *Parser) measureOptions() int {
	if len(p.options) == 0 {
		return 0
	}

	widest := slices.MaxFunc(p.options, func(a, b *Option) int {
		return a.argsLength() - b.argsLength()
	})

	return widest.argsLength()
}

// writeOptionHelp renders a single option: the left-justified name column
// padded to the shared width, the gutter, then the wrapped description
// with the required and default suffixes.
func writeOptionHelp(buf io.Writer, opt *Option, width, columns int) {
	if opt.separator {
		fmt.Fprintln(buf)

		return
	}

	fmt.Fprintf(buf, "%-*s", width+gutterWidth, opt.Name+", "+opt.AltName)

	desc := opt.Description

	if opt.Required {
		desc += " (required)"
	}

	if opt.Default != "" {
		desc += " DEFAULT: " + opt.Default
	}

	indent := strings.Repeat(" ", width+gutterWidth)
	fmt.Fprintln(buf, wrapText(desc, columns-width-gutterWidth, indent))
}

// versionBanner builds the version string from whichever of the program
// name and version were supplied.
func (p *Parser) versionBanner() string {
	switch {
	case p.name != "" && p.version != "":
		return p.name + " - " + p.version
	case p.name != "":
		return p.name
	default:
		return p.version
	}
}

func terminalColumns() int {
	if columns, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && columns > 0 {
		return columns
	}

	return defaultColumns
}

// wrapText wraps text at spaces to fit in wrapLen columns, indenting
// continuation lines with prefix. When a single word exceeds the budget
// and no space exists before the boundary, the word is broken at the
// boundary and hyphenated rather than searched past the start of the text.
func wrapText(text string, wrapLen int, prefix string) string {
	var ret string

	if wrapLen < minWrapLength {
		wrapLen = minWrapLength
	}

	lines := strings.Split(text, "\n")

	for _, line := range lines {
		var retline string

		line = strings.TrimSpace(line)

		for len(line) > wrapLen {
			// Try to split on space
			suffix := ""

			pos := strings.LastIndex(line[:wrapLen], " ")

			if pos < 0 {
				pos = wrapLen - 1
				suffix = "-"
			}

			if len(retline) != 0 {
				retline += "\n" + prefix
			}

			retline += strings.TrimSpace(line[:pos]) + suffix
			line = strings.TrimSpace(line[pos:])
		}

		if len(line) > 0 {
			if len(retline) != 0 {
				retline += "\n" + prefix
			}

			retline += line
		}

		if len(ret) > 0 {
			ret += "\n"

			if len(retline) > 0 {
				ret += prefix
			}
		}

		ret += retline
	}

	return ret
}
