// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"mmclust/internal/cluster"
)

// Writer registry (format → handler). Writer files register themselves
// in init() blocks.
var clusterWriters = map[string]func(w io.Writer, list []cluster.Cluster) error{}

// Register installs a writer for format (idempotent last-wins).
func Register(format string, fn func(io.Writer, []cluster.Cluster) error) {
	clusterWriters[format] = fn
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := clusterWriters[format]
	return ok
}

// Formats lists registered formats, sorted for stable help text.
func Formats() []string {
	out := make([]string, 0, len(clusterWriters))
	for f := range clusterWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, list []cluster.Cluster) error {
	fn, ok := clusterWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list)
}
