package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietProgress(t *testing.T) *mocks.MockProgress {
	t.Helper()
	progress := mocks.NewMockProgress(gomock.NewController(t))
	progress.EXPECT().SetMessage(gomock.Any()).AnyTimes()
	return progress
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func namedArgs(kv map[string]string) domain.Value {
	entries := make(map[string]domain.Value, len(kv))
	for k, v := range kv {
		entries[k] = domain.String(v)
	}
	return domain.Map(entries)
}
