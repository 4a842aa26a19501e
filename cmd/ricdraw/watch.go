package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var (
		flags       compileFlags
		debounce    time.Duration
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "watch <root>",
		Short: "Recompile diagrams below a directory whenever they change",
		Long: `Compile every diagram below root once, then watch the tree and
recompile each diagram after it is saved. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			if info, err := os.Stat(root); err != nil {
				return fmt.Errorf("stat root: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", root)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.Default().With("run_id", uuid.NewString())
			metrics := newRunMetrics()
			return runWatch(ctx, cmd, root, &flags, debounce, metrics, metricsFile, logger)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Wait this long for further writes before recompiling")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Rewrite Prometheus textfile metrics to this path after every compilation")
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, root string, flags *compileFlags, debounce time.Duration,
	metrics *runMetrics, metricsFile string, logger *slog.Logger) error {

	w, err := newDiagramWatcher(root, filepath.Ext(DefaultPattern), debounce, logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	compileOne := func(path string) {
		// Reload per compilation so edits to ricdraw.yaml take effect.
		cfg, err := flags.load(cmd, time.Now())
		if err != nil {
			logger.Error("Failed to load configuration", "error", err)
			return
		}
		res, out, err := compileFile(path, cfg, logger)
		metrics.observe(res, err)
		if err != nil {
			logger.Error("Failed to compile diagram", "path", path, "error", err)
		} else {
			logger.Info("Compiled diagram", "path", path, "output", out,
				"individuals", res.Stats.Individuals, "facts", res.Stats.Facts)
		}
		if metricsFile != "" {
			if err := metrics.writeTextfile(metricsFile); err != nil {
				logger.Warn("Failed to write metrics file", "path", metricsFile, "error", err)
			}
		}
	}

	paths, err := findDiagrams(root, DefaultPattern)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if content, err := os.ReadFile(path); err == nil {
			w.Seed(path, content)
		}
		compileOne(path)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for path := range w.Changes() {
		compileOne(path)
	}
	logger.Info("Diagram watcher stopped", "dropped_events", w.DroppedEvents())
	return nil
}
