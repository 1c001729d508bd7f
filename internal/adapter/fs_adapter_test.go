package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/deflake/internal/model"
)

func TestLocalFSAdapter_Glob(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.yaml"), "x")
	writeTestFile(t, filepath.Join(root, "nested", "deep", "b.yaml"), "x")
	writeTestFile(t, filepath.Join(root, "nested", "c.txt"), "x")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.yaml"), 0o755))

	fs := NewLocalFSAdapter()

	t.Run("doublestar descends into subdirectories", func(t *testing.T) {
		got, err := fs.Glob(filepath.Join(root, "**", "*.yaml"))
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.yaml")),
			m.Path(filepath.Join(root, "nested", "deep", "b.yaml")),
		}, got)
	})

	t.Run("plain path matches itself", func(t *testing.T) {
		got, err := fs.Glob(filepath.Join(root, "a.yaml"))
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "a.yaml"))}, got)
	})
}

func TestLocalFSAdapter_WriteReadRemove(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFSAdapter()

	path := fs.JoinPath(root, "scratch", "x", "file.txt")
	require.NoError(t, fs.WriteFile(path, []byte("hello"), 0o600))

	got, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	require.NoError(t, fs.RemoveAll(fs.JoinPath(root, "scratch")))

	_, err = os.Stat(string(path))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFSAdapter_MkdirAll(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFSAdapter()

	dir := fs.JoinPath(root, "a", "b")
	require.NoError(t, fs.MkdirAll(dir))

	info, err := os.Stat(string(dir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
