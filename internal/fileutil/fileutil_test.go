package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.go")

	require.NoError(t, WriteFileAtomic(path, []byte("package namabar\n"), ReadableByAll))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package namabar\n", string(data))

	// overwrite keeps a single file and leaves no temp files behind
	require.NoError(t, WriteFileAtomic(path, []byte("package other\n"), ReadableByAll))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, ReadableByAll, info.Mode().Perm())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "x.go"), []byte("x"), ReadableByAll)
	assert.Error(t, err)
}
