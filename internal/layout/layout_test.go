package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreePaths(t *testing.T) {
	tree := New("/sandbox/user")
	assert.Equal(t, "/sandbox/user", tree.Root())
	assert.Equal(t, filepath.Join("/sandbox/user", "Desktop"), tree.Desktop())
	assert.Equal(t, filepath.Join("/sandbox/user", "AppData", "Local"), tree.AppDataLocal())
	assert.Equal(t, filepath.Join("/sandbox/user", "AppData", "Roaming"), tree.AppDataRoaming())
	assert.Equal(t, filepath.Join("/sandbox/user", "Program Files"), tree.ProgramFiles())
}

func TestEnsureBaseCreatesStandardDirs(t *testing.T) {
	tree := New(t.TempDir())
	require.NoError(t, tree.EnsureBase())

	for _, dir := range []string{
		tree.Desktop(), tree.Documents(), tree.Downloads(), tree.Pictures(),
		tree.Music(), tree.Videos(), tree.AppDataLocal(), tree.AppDataRoaming(),
		tree.ProgramFiles(),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestWriteStringCreatesParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Documents", "Work", "notes.txt")
	require.NoError(t, WriteString(path, "hello"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteFileIntoUnwritableDirFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0555))
	err := WriteFile(filepath.Join(locked, "x", "y.txt"), []byte("data"))
	assert.Error(t, err)
}
