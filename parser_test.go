package cmdline

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// Test helpers ----------------------------------------------------------------------- //
//

// newTestParser returns a parser with fixed columns and silenced outputs,
// so that tests are independent of the surrounding terminal.
func newTestParser(args []string, options ...Opt) *Parser {
	options = append([]Opt{
		WithColumns(80),
		WithOutput(io.Discard),
		WithErrOutput(io.Discard),
		WithExitFunc(func(int) {}),
	}, options...)

	return New(args, options...)
}

func fileOption() *Option {
	return &Option{
		Name:        "-f",
		AltName:     "--file",
		Description: "File to process",
		HasValue:    true,
		Required:    true,
	}
}

//
// Tests ------------------------------------------------------------------------------ //
//

func TestParseValueOption(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-f", "in.txt"})
	file := parser.AddOption(fileOption())

	require.NoError(t, parser.Parse())

	assert.True(t, parser.IsSet(file))
	assert.Equal(t, "in.txt", parser.GetValue(file))
}

func TestParseAlternateName(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "--file", "in.txt"})
	file := parser.AddOption(&Option{
		Name:        "-f",
		AltName:     "--file FILE",
		Description: "File to process",
		HasValue:    true,
	})

	require.NoError(t, parser.Parse())

	// Only the first token of the alternate name takes part in matching,
	// the value hint is decorative.
	assert.True(t, parser.IsSet(file))
	assert.Equal(t, "in.txt", parser.GetValue(file))
}

// TestDeclarationEquality checks that a freshly constructed, equivalent
// declaration is interchangeable with the registered handle for queries.
func TestDeclarationEquality(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-f", "in.txt"})
	parser.AddOption(fileOption())

	require.NoError(t, parser.Parse())

	fresh := fileOption()
	assert.True(t, parser.IsSet(fresh))
	assert.Equal(t, "in.txt", parser.GetValue(fresh))

	// A declaration that was never registered degrades to safe defaults.
	unknown := &Option{Name: "-x", AltName: "--unknown", Description: "missing"}
	assert.False(t, parser.IsSet(unknown))
	assert.Empty(t, parser.GetValue(unknown))
	assert.Empty(t, parser.GetValueList(unknown, ","))
}

func TestParseNoMatchShowsHelp(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog"})
	parser.AddOption(fileOption())

	err := parser.Parse()
	require.Error(t, err)
	assert.True(t, WroteHelp(err))

	// No match at all triggers help, not the required-option error,
	// and the message carries the rendered help text.
	assert.Contains(t, err.Error(), "Usage: prog option")
	assert.Contains(t, err.Error(), "--file")
}

func TestParseMissingRequired(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-g", "x"})
	parser.AddOption(fileOption())
	other := parser.AddOption(&Option{
		Name:        "-g",
		AltName:     "--glob",
		Description: "Glob pattern",
		HasValue:    true,
	})

	err := parser.Parse()

	// Some option matched, so the required check fires instead of help.
	var parseError *Error
	require.ErrorAs(t, err, &parseError)
	assert.Equal(t, ErrRequired, parseError.Type)
	assert.Contains(t, parseError.Message, "-f / --file")

	assert.Equal(t, "x", parser.GetValue(other))
}

func TestParseMissingRequiredBatch(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-d"})
	parser.AddOption(fileOption())
	parser.AddOption(&Option{
		Name:        "-o",
		AltName:     "--output",
		Description: "Output path",
		HasValue:    true,
		Required:    true,
	})
	parser.AddOption(&Option{Name: "-d", AltName: "--verbose", Description: "Verbose output"})

	err := parser.Parse()

	// Both missing options are reported, not just the first one.
	var parseError *Error
	require.ErrorAs(t, err, &parseError)
	assert.Equal(t, ErrRequired, parseError.Type)
	assert.Contains(t, parseError.Message, "-f / --file")
	assert.Contains(t, parseError.Message, "-o / --output")
}

func TestParseRequiredSatisfiedByDefault(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-d"})
	file := parser.AddOption(&Option{
		Name:        "-f",
		AltName:     "--file",
		Description: "File to process",
		Default:     "in.txt",
		Required:    true,
	})
	parser.AddOption(&Option{Name: "-d", AltName: "--verbose", Description: "Verbose output"})

	require.NoError(t, parser.Parse())
	assert.True(t, parser.IsSet(file))
	assert.Equal(t, "in.txt", parser.GetValue(file))
}

func TestParseStarvedValue(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-f"})
	parser.AddOption(fileOption())

	err := parser.Parse()

	var parseError *Error
	require.ErrorAs(t, err, &parseError)
	assert.Equal(t, ErrExpectedArgument, parseError.Type)
	assert.Contains(t, parseError.Message, "-f / --file")
}

// TestOneShotMatching checks that an option matches at most once per scan,
// so a later duplicate can never overwrite an already-captured value.
func TestOneShotMatching(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "-f", "first", "--file", "second"})
	file := parser.AddOption(&Option{
		Name:        "-f",
		AltName:     "--file",
		Description: "File to process",
		HasValue:    true,
	})

	require.NoError(t, parser.Parse())
	assert.Equal(t, "first", parser.GetValue(file))
}

func TestDefaultValueWithoutArgument(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog"}, WithoutRequiredMatch())
	output := parser.AddOption(&Option{
		Name:        "-o",
		AltName:     "--output",
		Description: "Output path",
		Default:     "out.txt",
	})

	require.NoError(t, parser.Parse())
	assert.True(t, parser.IsSet(output))
	assert.Equal(t, "out.txt", parser.GetValue(output))
}

func TestGetValueList(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name  string
		value string
		delim string
		exp   []string
	}{
		{name: "comma separated", value: "a,b,c", delim: ",", exp: []string{"a", "b", "c"}},
		{name: "single item", value: "a", delim: ",", exp: []string{"a"}},
		{name: "empty delimiter falls back to comma", value: "a,b", delim: "", exp: []string{"a", "b"}},
		{name: "only first delimiter character counts", value: "a;b,c", delim: ";,", exp: []string{"a", "b,c"}},
		{name: "custom delimiter", value: "a:b", delim: ":", exp: []string{"a", "b"}},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parser := newTestParser([]string{"prog", "-t", tc.value})
			tags := parser.AddOption(&Option{
				Name:        "-t",
				AltName:     "--tags",
				Description: "Tag list",
				HasValue:    true,
			})

			require.NoError(t, parser.Parse())
			assert.Equal(t, tc.exp, parser.GetValueList(tags, tc.delim))
		})
	}
}

func TestHelpOptionChecksFirst(t *testing.T) {
	t.Parallel()

	// Help wins over the required-option failure.
	parser := newTestParser([]string{"prog", "-h"})
	parser.AddOption(fileOption())
	parser.AddHelpOption()

	err := parser.Parse()
	require.Error(t, err)
	assert.True(t, WroteHelp(err))
}

func TestVersionOption(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		options []Opt
		exp     string
	}{
		{
			name:    "name and version",
			options: []Opt{WithName("tool"), WithVersion("0.1.0")},
			exp:     "tool - 0.1.0",
		},
		{
			name:    "name only",
			options: []Opt{WithName("tool")},
			exp:     "tool",
		},
		{
			name:    "version only",
			options: []Opt{WithVersion("0.1.0")},
			exp:     "0.1.0",
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parser := newTestParser([]string{"prog", "-v"}, tc.options...)
			parser.AddVersionOption()

			err := parser.Parse()
			require.Error(t, err)
			assert.True(t, WroteVersion(err))
			assert.Equal(t, tc.exp, err.Error())
		})
	}
}

func TestVersionOptionOverride(t *testing.T) {
	t.Parallel()

	parser := newTestParser([]string{"prog", "--Version"}, WithVersion("0.1.0"))
	parser.AddVersionOption(&Option{
		Name:        "-V",
		AltName:     "--Version",
		Description: "Print the version",
	})

	err := parser.Parse()
	assert.True(t, WroteVersion(err))

	// The default -v spelling no longer matches anything.
	parser = newTestParser([]string{"prog", "-v"}, WithVersion("0.1.0"))
	parser.AddVersionOption(&Option{
		Name:        "-V",
		AltName:     "--Version",
		Description: "Print the version",
	})

	err = parser.Parse()
	assert.True(t, WroteHelp(err))
}

func TestUnknownTokensAreSilent(t *testing.T) {
	t.Parallel()

	// Unknown tokens are never matched and never reported individually.
	parser := newTestParser([]string{"prog", "-f", "in.txt", "--bogus", "leftover"})
	file := parser.AddOption(&Option{
		Name:        "-f",
		AltName:     "--file",
		Description: "File to process",
		HasValue:    true,
	})

	require.NoError(t, parser.Parse())
	assert.Equal(t, "in.txt", parser.GetValue(file))
}
