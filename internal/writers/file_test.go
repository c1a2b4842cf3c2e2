// internal/writers/file_test.go
package writers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "clusters.txt")
	require.NoError(t, WriteFile("report", out, sample()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# MMseqs2 Clusters\n"))
	require.Contains(t, string(data), "Cluster_1\t2\tA\tA,B\n")

	// No stray temp files left behind.
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 1)
}

func TestWriteFileUnwritableDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "clusters.txt")
	err := WriteFile("report", out, sample())
	require.Error(t, err)
	require.Contains(t, err.Error(), out)
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}

func TestWriteFileBadFormatLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "clusters.txt")
	require.Error(t, WriteFile("xml", out, sample()))

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, ents)
}
