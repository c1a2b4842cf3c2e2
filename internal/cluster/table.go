// internal/cluster/table.go
package cluster

import "sort"

// Table accumulates raw representative→member records during ingestion.
// Duplicates are kept as-is; dedup happens at finalization.
type Table struct {
	groups map[string][]string
}

func NewTable() *Table { return &Table{groups: make(map[string][]string)} }

// Add appends member to the representative's group, creating the group on
// first use.
func (t *Table) Add(representative, member string) {
	t.groups[representative] = append(t.groups[representative], member)
}

// Len returns the number of groups seen so far.
func (t *Table) Len() int { return len(t.groups) }

// Cluster is one finalized group. Members is deduplicated and sorted
// ascending; RawCount preserves the pre-dedup append count because the
// run summary reports it (historical MMseqs2 pipeline behavior).
type Cluster struct {
	Representative string
	Members        []string
	RawCount       int
}

// Size is the reported cluster size: the deduplicated member count.
func (c Cluster) Size() int { return len(c.Members) }

// Clusters finalizes every group and returns them ordered by descending
// size, ties broken by ascending representative. Representative is the
// grouping key, so the order is total.
func (t *Table) Clusters() []Cluster {
	out := make([]Cluster, 0, len(t.groups))
	for rep, members := range t.groups {
		out = append(out, Cluster{
			Representative: rep,
			Members:        dedupeSorted(members),
			RawCount:       len(members),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Members) != len(out[j].Members) {
			return len(out[i].Members) > len(out[j].Members)
		}
		return out[i].Representative < out[j].Representative
	})
	return out
}

// FilterMinSize drops clusters with fewer than min deduplicated members.
// min ≤ 1 keeps everything.
func FilterMinSize(list []Cluster, min int) []Cluster {
	if min <= 1 {
		return list
	}
	kept := list[:0]
	for _, c := range list {
		if c.Size() >= min {
			kept = append(kept, c)
		}
	}
	return kept
}

func dedupeSorted(members []string) []string {
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
