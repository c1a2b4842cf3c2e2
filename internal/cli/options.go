// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mmclust/internal/version"
	"mmclust/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	InputPath  string // two-column cluster TSV, "-" for stdin
	OutputPath string // report destination, "-" for stdout
	MinSize    int    // drop clusters smaller than this (1 = keep all)
	Format     string // report | jsonl
	Quiet      bool
}

// RunFunc is the validated entry point the command hands Options to.
type RunFunc func(cmd *cobra.Command, opt Options) error

// NewCommand builds the mmclust root command. Parsing and validation
// live here; everything after a good parse goes through run.
func NewCommand(run RunFunc) *cobra.Command {
	var opt Options
	cmd := &cobra.Command{
		Use:   "mmclust <cluster_tsv> <output>",
		Short: "Number, sort, and report MMseqs2 clusters",
		Long: `mmclust converts an MMseqs2 cluster TSV (from createtsv) into a
numbered cluster report sorted by cluster size.

Column 1 is the representative sequence ID, column 2 a cluster member ID.
Use "-" for <cluster_tsv> to read stdin, or for <output> to write stdout.
Gzipped input is detected automatically.`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.InputPath = args[0]
			opt.OutputPath = args[1]
			if opt.MinSize < 1 {
				return fmt.Errorf("--min-size must be ≥ 1, got %d", opt.MinSize)
			}
			if !writers.Known(opt.Format) {
				return fmt.Errorf("invalid --output %q (want %s)",
					opt.Format, strings.Join(writers.Formats(), " | "))
			}
			return run(cmd, opt)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opt.MinSize, "min-size", 1, "minimum cluster size to include [1]")
	fs.StringVar(&opt.Format, "output", "report", "output format: report | jsonl [report]")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress malformed-line warnings [false]")
	return cmd
}
