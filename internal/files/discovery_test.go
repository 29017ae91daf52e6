package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
}

func TestFindCSVFiles(t *testing.T) {
	t.Run("recursive case-insensitive match", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a.csv"))
		touch(t, filepath.Join(dir, "b.CSV"))
		touch(t, filepath.Join(dir, "sub", "deeper", "c.Csv"))
		touch(t, filepath.Join(dir, "ignore.txt"))
		touch(t, filepath.Join(dir, "sub", "ignore.xlsx"))

		found, err := FindCSVFiles(dir)
		require.NoError(t, err)

		names := make([]string, len(found))
		for i, path := range found {
			names[i] = filepath.Base(path)
		}
		assert.ElementsMatch(t, []string{"a.csv", "b.CSV", "c.Csv"}, names)
	})

	t.Run("empty tree finds nothing", func(t *testing.T) {
		found, err := FindCSVFiles(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("missing root errors", func(t *testing.T) {
		_, err := FindCSVFiles(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	a := filepath.Join(base, "reports")
	b := filepath.Join(base, "cleaned", "nested")

	require.NoError(t, EnsureDirectories(a, b))
	assert.True(t, DirExists(a))
	assert.True(t, DirExists(b))
}
