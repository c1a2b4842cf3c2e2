// internal/writers/file.go
package writers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"mmclust/internal/cluster"
)

// WriteFile renders the cluster list to path atomically: everything goes
// to a temp file in the destination directory, which is renamed onto
// path only after a successful flush and close. A failed run never
// leaves a truncated file under the final name.
func WriteFile(format, path string, list []cluster.Cluster) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(name)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = Write(format, bw, list); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	if err = os.Rename(name, path); err != nil {
		return fmt.Errorf("rename output %s: %w", path, err)
	}
	return nil
}
