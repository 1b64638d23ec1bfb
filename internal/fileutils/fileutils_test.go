package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "out", "reports")

	require.NoError(t, EnsureDirectoryExists(nested))
	assert.True(t, DirectoryExists(nested))

	// Idempotent.
	assert.NoError(t, EnsureDirectoryExists(nested))
}

func TestEnsureParentDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "deep", "nested", "out.csv")

	require.NoError(t, EnsureParentDirectory(target))
	assert.True(t, DirectoryExists(filepath.Dir(target)))

	// A bare file name has no parent to create.
	assert.NoError(t, EnsureParentDirectory("out.csv"))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.csv"), []byte("x"), 0600))

	files, err := ListFilesWithExtension(dir, ".csv")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.csv"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.csv"), files[1])
	assert.Equal(t, filepath.Join(dir, "sub", "c.csv"), files[2])

	_, err = ListFilesWithExtension(filepath.Join(dir, "nope"), ".csv")
	assert.Error(t, err)
}
