package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/ricdraw/config"
)

// DefaultPattern matches draw.io files anywhere below the root.
const DefaultPattern = "**/*.drawio"

var errNoDiagrams = errors.New("no diagrams found")

func batchCmd() *cobra.Command {
	var (
		flags       compileFlags
		pattern     string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "batch <root>",
		Short: "Compile every diagram below a directory",
		Long: `Compile every diagram matching --pattern below root. Each ontology is
written next to its diagram with the extension of the output format. A
failing diagram is reported and counted without stopping the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd, time.Now())
			if err != nil {
				return err
			}
			logger := slog.Default().With("run_id", uuid.NewString())
			metrics := newRunMetrics()

			sum, err := runBatch(args[0], pattern, cfg, metrics, logger)
			if metricsFile != "" {
				if werr := metrics.writeTextfile(metricsFile); werr != nil {
					logger.Warn("Failed to write metrics file", "path", metricsFile, "error", werr)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "compiled %d of %d diagrams\n", sum.compiled, sum.total)
			for _, f := range sum.failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", f.path, f.err)
			}
			if len(sum.failures) > 0 {
				return fmt.Errorf("%d of %d diagrams failed", len(sum.failures), sum.total)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&pattern, "pattern", DefaultPattern, "Glob selecting diagrams below root (doublestar syntax)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	return cmd
}

type failure struct {
	path string
	err  error
}

type batchSummary struct {
	total    int
	compiled int
	failures []failure
}

// findDiagrams returns the files below root matching pattern, sorted.
func findDiagrams(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return paths, nil
}

// runBatch compiles each diagram independently.
func runBatch(root, pattern string, cfg *config.Config, metrics *runMetrics, logger *slog.Logger) (*batchSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	paths, err := findDiagrams(root, pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w below %s matching %s", errNoDiagrams, root, pattern)
	}

	sum := &batchSummary{total: len(paths)}
	for _, path := range paths {
		res, out, err := compileFile(path, cfg, logger)
		metrics.observe(res, err)
		if err != nil {
			logger.Error("Failed to compile diagram", "path", path, "error", err)
			sum.failures = append(sum.failures, failure{path: path, err: err})
			continue
		}
		sum.compiled++
		logger.Info("Compiled diagram",
			"path", path,
			"output", out,
			"individuals", res.Stats.Individuals,
			"facts", res.Stats.Facts)
	}
	return sum, nil
}
