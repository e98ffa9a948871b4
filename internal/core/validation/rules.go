// Package validation implements composable argument checks run by every
// command before it touches the filesystem or spawns a process.
package validation

import (
	"strings"

	"go.trai.ch/provision/internal/core/domain"
)

// Rule is a predicate over an optional argument value.
// A nil value means the argument is absent.
type Rule interface {
	Validate(v *domain.Value) bool
	Describe() string
}

type required struct{}

// Required fails for absent, Null and Invalid values and for empty strings.
func Required() Rule { return required{} }

func (required) Validate(v *domain.Value) bool {
	if v == nil || v.IsNull() || v.IsInvalid() {
		return false
	}
	if s, ok := v.AsString(); ok {
		return s != ""
	}
	return true
}

func (required) Describe() string { return "argument is required" }

type isString struct{}

// IsString accepts strings. An absent value passes.
func IsString() Rule { return isString{} }

func (isString) Validate(v *domain.Value) bool {
	return v == nil || v.IsString()
}

func (isString) Describe() string { return "argument must be a string" }

type isArray struct{}

// IsArray accepts lists. An absent value passes.
func IsArray() Rule { return isArray{} }

func (isArray) Validate(v *domain.Value) bool {
	return v == nil || v.IsList()
}

func (isArray) Describe() string { return "argument must be an array" }

type isBool struct{}

// IsBool accepts booleans. An absent value passes.
func IsBool() Rule { return isBool{} }

func (isBool) Validate(v *domain.Value) bool {
	return v == nil || v.IsBool()
}

func (isBool) Describe() string { return "argument must be a boolean" }

type oneOf struct {
	rules []Rule
}

// OneOf passes when any of rules passes. An absent value passes.
func OneOf(rules ...Rule) Rule {
	return oneOf{rules: rules}
}

func (o oneOf) Validate(v *domain.Value) bool {
	if v == nil {
		return true
	}
	for _, r := range o.rules {
		if r.Validate(v) {
			return true
		}
	}
	return false
}

func (o oneOf) Describe() string {
	parts := make([]string, len(o.rules))
	for i, r := range o.rules {
		parts[i] = r.Describe()
	}
	return "OneOf: " + strings.Join(parts, " | ")
}
