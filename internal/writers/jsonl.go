// internal/writers/jsonl.go
package writers

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"mmclust/internal/cluster"
	"mmclust/pkg/api"
)

func init() { Register("jsonl", WriteJSONL) }

// WriteJSONL emits one api.ClusterV1 object per line, in report order
// and with the same 1-based numbering as the text report.
func WriteJSONL(w io.Writer, list []cluster.Cluster) error {
	enc := json.NewEncoder(w)
	for i, c := range list {
		rec := api.ClusterV1{
			ID:             fmt.Sprintf("Cluster_%d", i+1),
			Size:           c.Size(),
			Representative: c.Representative,
			Members:        c.Members,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
