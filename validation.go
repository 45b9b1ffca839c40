package cmdline

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// valueValidator backs the per-option Validate rules. The validation tags
// are the go-playground/validator "var" tags, refer to their docs for an
// exhaustive list.
var valueValidator = validator.New()

// checkValue runs the declared restrictions against a freshly captured
// value: the fixed choice set first, then the validator rules.
func checkValue(opt *Option) error {
	if len(opt.Choices) > 0 {
		if err := validateChoice(opt.value, opt.Choices); err != nil {
			return err
		}
	}

	if opt.Validate == "" {
		return nil
	}

	if err := valueValidator.Var(opt.value, opt.Validate); err != nil {
		return newErrorf(ErrInvalidValue,
			"Value `%s` for option (%s / %s) is not a valid %s",
			opt.value, opt.Name, opt.AltName, opt.Validate)
	}

	return nil
}

// validateChoice checks the given value(s) against the valid choices.
// The validation is performed on each individual item of a (potential)
// comma-separated list.
func validateChoice(val string, choices []string) error {
	for _, value := range strings.Split(val, ",") {
		if !stringInSlice(value, choices) {
			return newErrorf(ErrInvalidChoice,
				"Value `%s` is not one of: %s", value, strings.Join(choices, ", "))
		}
	}

	return nil
}

func stringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}

	return false
}
