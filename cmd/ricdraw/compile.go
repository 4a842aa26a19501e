package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/ricdraw/compiler"
	"github.com/c360studio/ricdraw/config"
	"github.com/c360studio/ricdraw/export"
)

func compileCmd() *cobra.Command {
	var (
		flags  compileFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile one diagram",
		Long: `Compile one draw.io diagram. The diagram XML is read from the given
file, or from stdin when no file is given. The ontology is written to stdout
unless --output is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd, time.Now())
			if err != nil {
				return err
			}

			var input []byte
			if len(args) == 1 {
				input, err = os.ReadFile(args[0])
			} else {
				input, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read diagram: %w", err)
			}

			res, err := compiler.Compile(input, *cfg, slog.Default())
			if err != nil {
				return withHint(err, cfg)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(res.Output)
				return err
			}
			if err := writeFileAtomic(output, res.Output); err != nil {
				return err
			}
			slog.Info("Compiled diagram",
				"output", output,
				"individuals", res.Stats.Individuals,
				"facts", res.Stats.Facts,
				"repaired", res.Stats.Repaired)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "O", "", "Write the ontology to this file instead of stdout")
	return cmd
}

// withHint appends remediation advice to connection failures.
func withHint(err error, cfg *config.Config) error {
	if compiler.Kind(err) != compiler.KindDangling {
		return err
	}
	if cfg.Parse.Strict {
		return fmt.Errorf("%w. If so, try to lock the arrow to an individual node in the original graph; "+
			"or the underlying XML could be edited to indicate the source or target. Alternatively, try running "+
			"without the '-s/--strict-mode' flag, optionally making use of the '-g/--max-gap' option", err)
	}
	return fmt.Errorf("%w. If so, consider using the '-g/--max-gap' option to increase the max recognised gap "+
		"between a node and an arrow end; or try to lock the arrow to an individual node in the original graph; "+
		"or the underlying XML could be edited to indicate the source or target", err)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so a failed run never leaves a partial file behind.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// compileFile compiles one diagram file into the ontology file next to it.
func compileFile(path string, cfg *config.Config, logger *slog.Logger) (*compiler.Result, string, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read diagram: %w", err)
	}
	res, err := compiler.Compile(input, *cfg, logger)
	if err != nil {
		return nil, "", withHint(err, cfg)
	}
	out := outputPath(path, cfg)
	if err := writeFileAtomic(out, res.Output); err != nil {
		return nil, "", err
	}
	return res, out, nil
}

// outputPath returns the ontology path written next to a diagram.
func outputPath(input string, cfg *config.Config) string {
	ext := ".owl"
	if format, err := export.ParseFormat(cfg.Output.Format); err == nil {
		if info, ok := export.GetFormatInfo(format); ok {
			ext = info.Extension
		}
	}
	return input[:len(input)-len(filepath.Ext(input))] + ext
}
