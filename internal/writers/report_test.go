// internal/writers/report_test.go
package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"mmclust/internal/cluster"
)

func sample() []cluster.Cluster {
	return []cluster.Cluster{
		{Representative: "A", Members: []string{"A", "B"}, RawCount: 2},
		{Representative: "C", Members: []string{"C"}, RawCount: 1},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sample()))

	want := "# MMseqs2 Clusters\n" +
		"# Total clusters: 2\n" +
		"# Total sequences: 3\n" +
		"#\n" +
		"# Format: Cluster_ID<TAB>Size<TAB>Representative<TAB>Members (comma-separated)\n" +
		"#\n" +
		"Cluster_1\t2\tA\tA,B\n" +
		"Cluster_2\t1\tC\tC\n"
	require.Equal(t, want, buf.String())
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))

	want := "# MMseqs2 Clusters\n" +
		"# Total clusters: 0\n" +
		"# Total sequences: 0\n" +
		"#\n" +
		"# Format: Cluster_ID<TAB>Size<TAB>Representative<TAB>Members (comma-separated)\n" +
		"#\n"
	require.Equal(t, want, buf.String())
}

func TestRegistryDispatch(t *testing.T) {
	require.True(t, Known("report"))
	require.True(t, Known("jsonl"))
	require.False(t, Known("xml"))
	require.Equal(t, []string{"jsonl", "report"}, Formats())

	var buf bytes.Buffer
	require.Error(t, Write("xml", &buf, nil))
	require.NoError(t, Write("report", &buf, nil))
}
