package fs_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestExpandPath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := fs.ExpandPath("~", false)
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = fs.ExpandPath("~/.config", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config"), got)
}

func TestExpandPath_Env(t *testing.T) {
	t.Setenv("PROVISION_TEST_DIR", "/opt/tools")

	got, err := fs.ExpandPath("$PROVISION_TEST_DIR/bin", false)
	require.NoError(t, err)
	assert.Equal(t, "/opt/tools/bin", got)
}

func TestExpandPath_CreatesDirectories(t *testing.T) {
	root := t.TempDir()

	dir := filepath.Join(root, "a", "b")
	got, err := fs.ExpandPath(dir, true)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.DirExists(t, dir)

	file := filepath.Join(root, "c", "settings.json")
	_, err = fs.ExpandPath(file, true)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(root, "c"))
	assert.NoFileExists(t, file)
}

func TestIsFilePath(t *testing.T) {
	assert.True(t, fs.IsFilePath("/tmp/test.txt"))
	assert.False(t, fs.IsFilePath("/tmp/test"))
	assert.False(t, fs.IsFilePath("/home/me/.zshrc"))
	assert.False(t, fs.IsFilePath(""))
}

func TestRelativeTo(t *testing.T) {
	assert.Equal(t, "/cfg/dotfiles", fs.RelativeTo("/cfg", "dotfiles"))
	assert.Equal(t, "/cfg", fs.RelativeTo("/cfg", "."))
	assert.Equal(t, "~/.config", fs.RelativeTo("/cfg", "~/.config"))
	assert.Equal(t, "/etc/hosts", fs.RelativeTo("/cfg", "/etc/hosts"))
	assert.Equal(t, "$HOME/bin", fs.RelativeTo("/cfg", "$HOME/bin"))
}

func TestWalkFiles_MirrorsTree(t *testing.T) {
	src := t.TempDir()
	target := t.TempDir()

	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "nested", "b.txt"), "b")
	writeFile(t, filepath.Join(src, "skip", "c.txt"), "c")
	writeFile(t, filepath.Join(src, "skip.me"), "d")

	var got []string
	err := fs.WalkFiles(src, target, []string{"skip"}, func(from, to string) error {
		rel, err := filepath.Rel(target, to)
		require.NoError(t, err)
		got = append(got, rel)
		return nil
	})
	require.NoError(t, err)

	sort.Strings(got)
	assert.Equal(t, []string{"a.txt", filepath.Join("nested", "b.txt")}, got)
	assert.DirExists(t, filepath.Join(target, "nested"))
	assert.NoDirExists(t, filepath.Join(target, "skip"))
}

func TestWalkFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "init.lua")
	writeFile(t, src, "x")

	var dest string
	record := func(_, to string) error {
		dest = to
		return nil
	}

	require.NoError(t, fs.WalkFiles(src, filepath.Join(dir, "out"), nil, record))
	assert.Equal(t, filepath.Join(dir, "out", "init.lua"), dest)

	require.NoError(t, fs.WalkFiles(src, filepath.Join(dir, "renamed.lua"), nil, record))
	assert.Equal(t, filepath.Join(dir, "renamed.lua"), dest)
}

func TestWalkFiles_MissingSource(t *testing.T) {
	err := fs.WalkFiles(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil, func(_, _ string) error {
		t.Fatal("callback must not run")
		return nil
	})
	require.ErrorIs(t, err, domain.ErrSourceMissing)
	assert.Contains(t, err.Error(), "Source directory/file does not exist")
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "same")
	writeFile(t, b, "same")
	writeFile(t, c, "different")

	same, err := fs.SameContent(a, b)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = fs.SameContent(a, c)
	require.NoError(t, err)
	assert.False(t, same)

	same, err = fs.SameContent(a, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, same)
}

func TestComputeFileHash_Stable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	writeFile(t, path, "content")

	h1, err := fs.ComputeFileHash(path)
	require.NoError(t, err)
	h2, err := fs.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	_, err = fs.ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
