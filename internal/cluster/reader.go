// internal/cluster/reader.go
package cluster

import (
	"bufio"
	"io"
	"strings"
)

// WarnFunc receives the 1-based line number and trimmed text of a line
// that was skipped as malformed.
type WarnFunc func(line int, text string)

// ReadTSV scans two-column tab-separated cluster records into t.
// Blank lines are ignored. Lines with fewer than two fields are reported
// via warn and skipped; extra fields beyond the second are ignored.
// Only scanner errors are fatal.
func ReadTSV(r io.Reader, t *Table, warn WarnFunc) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			if warn != nil {
				warn(ln, line)
			}
			continue
		}
		t.Add(f[0], f[1])
	}
	return sc.Err()
}
