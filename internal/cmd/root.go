package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/djsum/digest"
	"github.com/dendrascience/djsum/dispatch"
	"github.com/dendrascience/djsum/entry"
	"github.com/dendrascience/djsum/sink"
	"github.com/dendrascience/djsum/version"
)

// NewRootCmd creates the root cobra command for the djsum CLI.
func NewRootCmd() *cobra.Command {
	var (
		hashName   string
		recursive  bool
		archives   bool
		jobs       int
		bufferSize string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "djsum [flags] PATH...",
		Short: "Compute digests for files and archive members",
		Long: `djsum computes a cryptographic digest for every regular file reachable
from the given paths and prints one record per file.

With --archive, recognized containers (zip, tar, tar.gz, tar.bz2, tar.xz,
tar.zst) are opened and their members hashed as if they were ordinary files,
addressed as "archive::member". The archive file itself then produces no
record of its own. Without the flag, archives are hashed as opaque files.

Hashing runs on a bounded worker pool; output order across workers is
unspecified. Use -j 1 for reproducible ordering. Per-path failures are
warnings on stderr and never stop the run, but any failure makes the exit
status non-zero.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := digest.Parse(hashName)
			if err != nil {
				return err
			}
			buf, err := humanize.ParseBytes(bufferSize)
			if err != nil {
				return fmt.Errorf("parse buffer size %q: %w (examples: 1M, 64KiB, 4096)", bufferSize, err)
			}
			out, err := sink.New(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg := dispatch.Config{
				Algorithm:  alg,
				Workers:    jobs,
				BufferSize: int(buf),
				Recursive:  recursive,
				Archives:   archives,
			}
			return run(cmd.Context(), args, cfg, out, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&hashName, "hash", string(digest.MD5), "Hash algorithm (see 'djsum algorithms')")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVarP(&archives, "archive", "a", false, "Hash the members of recognized archive files")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Concurrent hashing workers (default: number of CPUs)")
	cmd.Flags().StringVarP(&bufferSize, "buffer", "b", "1M", "Read buffer size (example: 1M, 1MiB, 4096)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or csv")

	cmd.AddCommand(NewAlgorithmsCmd())

	return cmd
}

// run drains the dispatcher into the sink, routing failures to the
// diagnostic logger. The returned error is nil only for a clean run.
func run(ctx context.Context, roots []string, cfg dispatch.Config, out sink.Sink, stderr io.Writer) error {
	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: false})

	failures := 0
	for r := range dispatch.Run(ctx, roots, cfg) {
		if r.Err != nil {
			failures++
			cause := errors.Unwrap(r.Err)
			if cause == nil {
				cause = r.Err
			}
			logger.Warn("skipped", "kind", kind(r.Err), "path", r.Path, "err", cause)
			continue
		}
		if err := out.Write(r); err != nil {
			return err
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d path(s) could not be hashed", failures)
	}
	return nil
}

// kind labels an error result for the warning stream.
func kind(err error) string {
	var ae *entry.AccessError
	var de *entry.DecodeError
	var re *entry.ReadError
	switch {
	case errors.As(err, &ae):
		return "access"
	case errors.As(err, &de):
		return "decode"
	case errors.As(err, &re):
		return "read"
	default:
		return "error"
	}
}
