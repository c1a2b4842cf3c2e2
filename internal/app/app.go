// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mmclust/internal/cli"
	"mmclust/internal/cluster"
	"mmclust/internal/cmdutil"
	"mmclust/internal/writers"
)

// Exit codes: 0 ok, 1 runtime failure (I/O), 2 usage error.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// RunContext parses argv, runs the conversion, and returns the process
// exit code. All output is confined to stdout/stderr so tests can drive
// it with buffers.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var runErr error
	cmd := cli.NewCommand(func(c *cobra.Command, opt cli.Options) error {
		log := cmdutil.NewLogger(stderr, opt.Quiet)
		runErr = execute(c.Context(), opt, stdout, log)
		return runErr
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if runErr != nil {
			return exitRuntime
		}
		_, _ = fmt.Fprintf(stderr, "Run 'mmclust --help' for usage.\n")
		return exitUsage
	}
	return exitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(_ context.Context, opt cli.Options, stdout io.Writer, log zerolog.Logger) error {
	in, err := cluster.Open(opt.InputPath)
	if err != nil {
		return fmt.Errorf("open cluster input %s: %w", opt.InputPath, err)
	}
	defer func() { _ = in.Close() }()

	table := cluster.NewTable()
	warn := func(ln int, text string) {
		log.Warn().Int("line", ln).Str("text", text).Msg("skipping malformed line")
	}
	if err := cluster.ReadTSV(in, table, warn); err != nil {
		return fmt.Errorf("read cluster input %s: %w", opt.InputPath, err)
	}

	list := cluster.FilterMinSize(table.Clusters(), opt.MinSize)

	if opt.OutputPath == "-" {
		if err := writers.Write(opt.Format, stdout, list); err != nil {
			if writers.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
	} else if err := writers.WriteFile(opt.Format, opt.OutputPath, list); err != nil {
		return err
	}

	total := 0
	for _, c := range list {
		total += c.Size()
	}
	largest := 0
	if len(list) > 0 {
		largest = list[0].RawCount
	}
	// Downstream pipelines parse these lines; keep the format stable.
	_, _ = fmt.Fprintf(stdout, "Successfully processed %d clusters\n", len(list))
	_, _ = fmt.Fprintf(stdout, "Total sequences: %d\n", total)
	_, _ = fmt.Fprintf(stdout, "Largest cluster size: %d\n", largest)
	_, _ = fmt.Fprintf(stdout, "Results written to: %s\n", opt.OutputPath)
	return nil
}
