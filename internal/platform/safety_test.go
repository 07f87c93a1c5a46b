package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveJournalPath(t *testing.T) {
	t.Parallel()

	devBase := filepath.Join(os.TempDir(), DevDirName)
	inTemp := filepath.Join(os.TempDir(), "some-test-journal")

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		expected  string
	}{
		{"normal mode current dir", ".", false, "."},
		{"normal mode empty", "", false, "."},
		{"normal mode specific path", "/some/path", false, "/some/path"},
		{"sandbox empty path", "", true, filepath.Join(devBase, "default")},
		{"sandbox current dir", ".", true, filepath.Join(devBase, "default")},
		{"sandbox relative name", "my-cellar", true, filepath.Join(devBase, "my-cellar")},
		{"sandbox traversal", "../bad/path", true, filepath.Join(devBase, "path")},
		{"sandbox keeps temp dir", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveJournalPath(tt.userPath, tt.forceTemp))
		})
	}
}

func TestIsDevRunUnderGoTest(t *testing.T) {
	assert.True(t, IsDevRun())
}
