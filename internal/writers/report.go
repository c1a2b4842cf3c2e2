// internal/writers/report.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"mmclust/internal/cluster"
)

// ReportTitle is the first header line of the text report.
const ReportTitle = "MMseqs2 Clusters"

func init() { Register("report", WriteReport) }

// WriteReport emits the commented-header cluster report: summary counts,
// a format description, then one numbered line per cluster.
func WriteReport(w io.Writer, list []cluster.Cluster) error {
	total := 0
	for _, c := range list {
		total += c.Size()
	}
	header := fmt.Sprintf("# %s\n# Total clusters: %d\n# Total sequences: %d\n#\n"+
		"# Format: Cluster_ID<TAB>Size<TAB>Representative<TAB>Members (comma-separated)\n#\n",
		ReportTitle, len(list), total)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for i, c := range list {
		_, err := fmt.Fprintf(w, "Cluster_%d\t%d\t%s\t%s\n",
			i+1, c.Size(), c.Representative, strings.Join(c.Members, ","))
		if err != nil {
			return err
		}
	}
	return nil
}
