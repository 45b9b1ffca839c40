package cmdline

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command builds a *cobra.Command whose flag set mirrors the declared
// options, for hosts that embed this parser's declarations into a larger
// cobra application. The command carries the parser's version string, so
// cobra's own --version handling works out of the box.
func (p *Parser) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     p.programName(),
		Short:   p.name,
		Version: p.version,
	}

	p.BindFlags(cmd)

	return cmd
}

// BindFlags registers every declared option onto the given command's flag
// set. Value-bearing options become string flags carrying their default
// and description, plain options become bool flags, and required options
// are marked required on the command. Separators and the built-in help and
// version options are skipped, since cobra provides its own.
func (p *Parser) BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	for _, opt := range p.options {
		if opt.separator || opt == p.helpOpt || opt == p.versionOpt {
			continue
		}

		long, short := flagNames(opt)
		if long == "" {
			continue
		}

		if opt.hasValue() {
			flags.StringP(long, short, opt.Default, opt.Description)
		} else {
			flags.BoolP(long, short, false, opt.Description)
		}

		if opt.Required {
			_ = cmd.MarkFlagRequired(long)
		}
	}
}

// FlagSet returns a standalone pflag set mirroring the declared options,
// for hosts using pflag without cobra.
func (p *Parser) FlagSet() *pflag.FlagSet {
	cmd := &cobra.Command{}
	p.BindFlags(cmd)

	return cmd.Flags()
}

// flagNames converts an option's dash-prefixed declaration names into the
// long/shorthand pair pflag expects. The alternate token provides the long
// name, and the primary name provides the shorthand when it is a single
// character.
func flagNames(opt *Option) (long string, short string) {
	long = strings.TrimLeft(opt.altToken(), "-")
	short = strings.TrimLeft(opt.Name, "-")

	if long == "" {
		long, short = short, ""
	}

	if len(short) != 1 || long == short {
		short = ""
	}

	return long, short
}
