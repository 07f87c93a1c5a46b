package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates the slot file", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "wines.json")

		require.NoError(t, writeFileAtomic(filename, []byte(`[]`), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "wines.json")
		require.NoError(t, os.WriteFile(filename, []byte(`[{"id":"old"}]`), 0644))

		require.NoError(t, writeFileAtomic(filename, []byte(`[]`), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		for range 3 {
			require.NoError(t, writeFileAtomic(filepath.Join(dir, "wines.json"), []byte(`[]`), 0644))
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
		assert.Len(t, entries, 1)
	})

	t.Run("fails when the directory is missing", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing", "wines.json")
		assert.Error(t, writeFileAtomic(filename, []byte(`[]`), 0644))
	})
}
