package cmdline

import (
	"strings"
)

// Option is the declaration of a single command-line switch. Options are
// declared by the host as struct literals and registered on a Parser with
// AddOption, which returns the registered option as a stable handle for
// the post-parse queries.
//
// Two options are considered the same declaration when their Name, AltName
// and Description are equal: the captured value and matched state never
// participate, so a freshly constructed, equality-equivalent declaration
// can be used to query a parser after the original went out of scope.
type Option struct {
	// Name is the primary name as it appears on the command line, e.g. "-f".
	Name string

	// AltName is the alternate name, e.g. "--file". Only its first
	// whitespace-delimited token is significant for matching, so a
	// declaration like "--file FILE" matches "--file" and keeps the
	// remainder as a decorative value hint in the help text.
	AltName string

	// Description is the help message.
	Description string

	// Default is the value reported when the option never matched.
	// A non-empty default makes the option value-bearing, and makes
	// IsSet true without the option appearing on the command line.
	Default string

	// HasValue declares that the token following a match is consumed
	// as this option's value.
	HasValue bool

	// Required makes parsing fail when the option never matched and no
	// default compensates for it.
	Required bool

	// Choices optionally restricts the captured value to a fixed set.
	// Comma-separated values are checked item by item.
	Choices []string

	// Validate optionally holds go-playground/validator "var" rules
	// (e.g. "ip", "url") applied to the captured value.
	Validate string

	// Runtime state, owned by the parser's scan loop.
	separator bool
	set       bool
	value     string
}

// IsSet reports whether the option matched an argument token, or carries a
// non-empty default. Required-option validation and consumers alike observe
// the default this way.
func (o *Option) IsSet() bool {
	return o.set || o.Default != ""
}

// GetValue returns the captured value if the option matched, and the
// default otherwise.
func (o *Option) GetValue() string {
	if o.set {
		return o.value
	}

	return o.Default
}

// matches reports whether the given argument token equals the primary name
// or the extracted alternate token. It is a pure predicate: the matched
// state is committed by the scan loop, exactly once per option.
func (o *Option) matches(arg string) bool {
	if o.separator {
		return false
	}

	if o.Name != "" && o.Name == arg {
		return true
	}

	if alt := o.altToken(); alt != "" && alt == arg {
		return true
	}

	return false
}

// altToken extracts the comparable part of the alternate name.
func (o *Option) altToken() string {
	fields := strings.Fields(o.AltName)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// hasValue reports whether a match consumes the following token. A
// non-empty default always implies a value-bearing option.
func (o *Option) hasValue() bool {
	return o.HasValue || o.Default != ""
}

// equals implements declaration equality: the (Name, AltName, Description)
// triple, ignoring value and matched state.
func (o *Option) equals(other *Option) bool {
	if o == other {
		return true
	}

	return o.Name == other.Name &&
		o.AltName == other.AltName &&
		o.Description == other.Description
}

// argsLength is the display width of the option's name column, used to
// compute the shared padding across all options. Separators take no room.
func (o *Option) argsLength() int {
	if o.separator {
		return 0
	}

	return len(o.Name + ", " + o.AltName)
}
