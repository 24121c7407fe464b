package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalFSAdapter_ReadWrite(t *testing.T) {
	fs := NewLocalFSAdapter()
	root := t.TempDir()

	path := fs.JoinPath(root, "nested", "program.txt")
	require.NoError(t, fs.MkdirAll(fs.JoinPath(root, "nested")))
	require.NoError(t, fs.WriteFile(path, []byte("Move 1\n"), 0o600))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Move 1\n", string(data))

	info, err := fs.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(7), info.Size())
}

func TestLocalFSAdapter_ReadMissing(t *testing.T) {
	fs := NewLocalFSAdapter()

	_, err := fs.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalFSAdapter_Glob(t *testing.T) {
	fs := NewLocalFSAdapter()
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "b.json"), "{}")
	writeTestFile(t, filepath.Join(root, "a.json"), "{}")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "")

	paths, err := fs.Glob(m.Path(root), "*.json")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.json")),
		m.Path(filepath.Join(root, "b.json")),
	}, paths)

	paths, err = fs.Glob(m.Path(root), "*.yaml")
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = fs.Glob(m.Path(root), "[")
	require.Error(t, err)
}
