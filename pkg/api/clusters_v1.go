// pkg/api/clusters_v1.go
package api

// ClusterV1 is the stable JSONL schema for numbered clusters.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClusterV1 struct {
	ID             string   `json:"cluster_id"`
	Size           int      `json:"size"`
	Representative string   `json:"representative"`
	Members        []string `json:"members"`
}
