package validation

import (
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/zerr"
)

// Field binds a list of rules to a named argument.
type Field struct {
	Name  string
	Rules []Rule
}

// Arg is shorthand for building a Field.
func Arg(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// ArgumentsAreNamed reports whether args is a map of named arguments.
func ArgumentsAreNamed(args domain.Value) bool {
	return args.IsMap()
}

// ValidateArgs checks a positional argument value against rules.
// The first failing rule is reported.
func ValidateArgs(args *domain.Value, rules ...Rule) error {
	if args != nil && ArgumentsAreNamed(*args) {
		return domain.ErrPositionalArgsExpected
	}
	for _, r := range rules {
		if !r.Validate(args) {
			return zerr.Wrap(domain.ErrInvalidArgument, r.Describe())
		}
	}
	return nil
}

// ValidateNamedArgs checks every field of a named argument map.
// Fields are checked in order and the first failure is reported as
// "<argument>: <rule description>".
func ValidateNamedArgs(args domain.Value, fields ...Field) error {
	if !ArgumentsAreNamed(args) {
		return domain.ErrNamedArgsExpected
	}
	for _, f := range fields {
		var input *domain.Value
		if v, ok := args.Lookup(f.Name); ok {
			input = &v
		}
		for _, r := range f.Rules {
			if !r.Validate(input) {
				return zerr.With(
					zerr.Wrap(domain.ErrInvalidArgument, f.Name+": "+r.Describe()),
					"argument", f.Name,
				)
			}
		}
	}
	return nil
}
