package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/internal/adapters/commands"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDefaultRegistry_Names(t *testing.T) {
	registry := commands.NewDefaultRegistry(mocks.NewMockExecutor(gomock.NewController(t)))

	assert.Equal(t, []string{"clone", "copy", "run", "symlink"}, registry.Names())

	for _, name := range registry.Names() {
		cmd, err := registry.Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, cmd)
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	registry := commands.NewRegistry()

	_, err := registry.Lookup("frobnicate")
	require.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "Unknown command: frobnicate")
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockCommand(ctrl)
	second := mocks.NewMockCommand(ctrl)

	registry := commands.NewRegistry()
	registry.Register("x", first)
	registry.Register("x", second)

	got, err := registry.Lookup("x")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Equal(t, []string{"x"}, registry.Names())
}
