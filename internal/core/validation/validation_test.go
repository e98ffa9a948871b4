package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/validation"
)

func ptr(v domain.Value) *domain.Value { return &v }

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  validation.Rule
		input *domain.Value
		want  bool
	}{
		{"required absent", validation.Required(), nil, false},
		{"required null", validation.Required(), ptr(domain.Null()), false},
		{"required invalid", validation.Required(), ptr(domain.Invalid()), false},
		{"required empty string", validation.Required(), ptr(domain.String("")), false},
		{"required string", validation.Required(), ptr(domain.String("x")), true},
		{"required bool", validation.Required(), ptr(domain.Bool(false)), true},

		{"is string absent", validation.IsString(), nil, true},
		{"is string string", validation.IsString(), ptr(domain.String("")), true},
		{"is string list", validation.IsString(), ptr(domain.Strings("a")), false},
		{"is string null", validation.IsString(), ptr(domain.Null()), false},

		{"is array absent", validation.IsArray(), nil, true},
		{"is array list", validation.IsArray(), ptr(domain.List()), true},
		{"is array string", validation.IsArray(), ptr(domain.String("a")), false},

		{"is bool absent", validation.IsBool(), nil, true},
		{"is bool bool", validation.IsBool(), ptr(domain.Bool(true)), true},
		{"is bool string", validation.IsBool(), ptr(domain.String("true")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Validate(tt.input))
		})
	}
}

func TestOneOf(t *testing.T) {
	rule := validation.OneOf(validation.IsArray(), validation.IsString())

	assert.True(t, rule.Validate(ptr(domain.String("echo"))))
	assert.True(t, rule.Validate(ptr(domain.Strings("echo"))))
	assert.False(t, rule.Validate(ptr(domain.Integer(1))))
	assert.Equal(t, "OneOf: argument must be an array | argument must be a string", rule.Describe())

	// Absence passes even when no sub-rule would.
	strict := validation.OneOf(validation.Required(), validation.Required())
	assert.False(t, strict.Validate(ptr(domain.Null())))
	assert.True(t, strict.Validate(nil))
}

func TestValidateNamedArgs(t *testing.T) {
	t.Run("passes when all rules pass", func(t *testing.T) {
		args := domain.Map(map[string]domain.Value{"foo": domain.String("bar")})
		require.NoError(t, validation.ValidateNamedArgs(args, validation.Arg("foo", validation.Required())))
	})

	t.Run("reports argument and rule", func(t *testing.T) {
		args := domain.Map(map[string]domain.Value{"foo": domain.Null()})
		err := validation.ValidateNamedArgs(args, validation.Arg("foo", validation.Required()))
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "foo: argument is required")
	})

	t.Run("reports first failing field in order", func(t *testing.T) {
		args := domain.Map(map[string]domain.Value{})
		err := validation.ValidateNamedArgs(args,
			validation.Arg("url", validation.Required()),
			validation.Arg("target", validation.Required()),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url: argument is required")
		assert.NotContains(t, err.Error(), "target")
	})

	t.Run("optional argument may be absent", func(t *testing.T) {
		args := domain.Map(map[string]domain.Value{"config": domain.String("nested.yaml")})
		require.NoError(t, validation.ValidateNamedArgs(args,
			validation.Arg("config", validation.Required()),
			validation.Arg("task", validation.IsString()),
		))
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		for _, args := range []domain.Value{domain.Strings("a", "b"), domain.String("a"), domain.Null()} {
			err := validation.ValidateNamedArgs(args, validation.Arg("a", validation.Required()))
			require.ErrorIs(t, err, domain.ErrNamedArgsExpected)
			assert.Contains(t, err.Error(), "Expected named arguments")
		}
	})
}

func TestValidateArgs(t *testing.T) {
	rule := validation.OneOf(validation.IsArray(), validation.IsString())

	require.NoError(t, validation.ValidateArgs(ptr(domain.String("echo ok")), rule))

	err := validation.ValidateArgs(ptr(domain.Integer(3)), rule)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "OneOf:")

	err = validation.ValidateArgs(ptr(domain.Map(nil)), rule)
	require.ErrorIs(t, err, domain.ErrPositionalArgsExpected)
}
