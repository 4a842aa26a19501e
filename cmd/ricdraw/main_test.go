package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ricdraw/config"
)

const fixture = "../../compiler/testdata/archive.drawio"

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := rootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "ricdraw version "+Version+" (build: "+BuildTime+")\n", out)
}

func TestConfigInitCommand(t *testing.T) {
	out, _, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	path := filepath.Join(os.Getenv("HOME"), config.UserConfigDir, config.UserConfigFile)
	assert.Equal(t, "Created "+path+"\n", out)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Identifiers.Metacharacters, cfg.Identifiers.Metacharacters)
	assert.Equal(t, "manchester", cfg.Output.Format)

	cmd := rootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"config", "init"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, path+" already exists\n", stdout.String())
}

func TestCompileCommand_File(t *testing.T) {
	out, _, err := execute(t, "", "compile", "-o", "https://example.org/olborg", fixture)
	require.NoError(t, err)
	assert.Equal(t, readFile(t, "../../compiler/testdata/archive.owl"), out)
}

func TestCompileCommand_Stdin(t *testing.T) {
	input := readFile(t, fixture)
	out, _, err := execute(t, input, "compile", "-d", "-l", "-c", "lower-with-hyphens")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Individual: knut-olborg’s-papers\n"), out)
	assert.NotContains(t, out, "Ontology:")
}

func TestCompileCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.owl")

	out, _, err := execute(t, "", "compile", "-o", "https://example.org/olborg", "-O", target, fixture)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, readFile(t, "../../compiler/testdata/archive.owl"), readFile(t, target))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is renamed into place")
}

func TestCompileCommand_StrictHint(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.owl")

	_, _, err := execute(t, "", "compile", "-s", "-O", target, fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `connector "8"`)
	assert.Contains(t, err.Error(), "without the '-s/--strict-mode' flag")

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no output is written on failure")
}

func TestCompileCommand_GapHint(t *testing.T) {
	_, _, err := execute(t, "", "compile", "-g", "1", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consider using the '-g/--max-gap' option")
}

func TestCompileCommand_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "", "compile", "-c", "SCREAMING", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifiers.capitalization")

	_, _, err = execute(t, "", "compile", "-m", "x", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c=replacement")
}

func TestCompileFlagsApply(t *testing.T) {
	var flags compileFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"-d", "-g", "2.5", "-i", "-n", "3", "-x", "olb", "-s",
		"-m", "[=⟦", "-m", ",=_", "-r", "-f", "turtle",
	}))

	cfg := config.DefaultConfig()
	require.NoError(t, flags.apply(cmd, cfg))

	assert.False(t, cfg.Output.IncludePreamble)
	assert.Equal(t, 2.5, cfg.Parse.MaxGap)
	assert.False(t, cfg.Output.InferLiteralTypes)
	assert.Equal(t, 3, cfg.Output.Indentation)
	assert.Equal(t, "olb", cfg.Ontology.Prefix)
	assert.True(t, cfg.Parse.Strict)
	assert.True(t, cfg.Identifiers.RemoveUnconfigured)
	assert.Equal(t, "turtle", cfg.Output.Format)
	assert.True(t, cfg.Output.IncludeLabel, "unset flags keep configured values")
	assert.Contains(t, cfg.Identifiers.Metacharacters, config.Metacharacter{Char: "[", Replacement: "⟦"})
	assert.Contains(t, cfg.Identifiers.Metacharacters, config.Metacharacter{Char: ",", Replacement: "_"})
	assert.NotContains(t, cfg.Identifiers.Metacharacters, config.Metacharacter{Char: ",", Replacement: "-"})
}

func TestSetMetacharacter(t *testing.T) {
	list := []config.Metacharacter{{Char: "(", Replacement: "⟨"}, {Char: ",", Replacement: "-"}}

	got := setMetacharacter(list, config.Metacharacter{Char: ",", Replacement: ""})
	assert.Equal(t, []config.Metacharacter{{Char: "(", Replacement: "⟨"}, {Char: ",", Replacement: ""}}, got)

	got = setMetacharacter(list, config.Metacharacter{Char: "[", Replacement: "⟦"})
	assert.Len(t, got, 3)
	assert.Equal(t, "[", got[2].Char)
	assert.Len(t, list, 2, "input is not modified")
}

func TestOutputPath(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, filepath.Join("a", "b.owl"), outputPath(filepath.Join("a", "b.drawio"), cfg))
	cfg.Output.Format = "ntriples"
	assert.Equal(t, filepath.Join("a", "b.nt"), outputPath(filepath.Join("a", "b.drawio"), cfg))
}

func setupBatchTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	good := readFile(t, fixture)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fonds", "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fonds", "olborg.drawio"), []byte(good), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fonds", "sub", "copy.drawio"), []byte(good), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.drawio"), []byte("<mxGraphModel><root>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignored"), 0644))
	return root
}

func TestRunBatch(t *testing.T) {
	root := setupBatchTree(t)
	cfg := config.DefaultConfig()
	cfg.Ontology.IRI = "https://example.org/olborg"
	metrics := newRunMetrics()

	sum, err := runBatch(root, DefaultPattern, cfg, metrics, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.total)
	assert.Equal(t, 2, sum.compiled)
	require.Len(t, sum.failures, 1)
	assert.Equal(t, filepath.Join(root, "broken.drawio"), sum.failures[0].path)

	assert.FileExists(t, filepath.Join(root, "fonds", "olborg.owl"))
	assert.FileExists(t, filepath.Join(root, "fonds", "sub", "copy.owl"))
	assert.NoFileExists(t, filepath.Join(root, "broken.owl"))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.diagrams.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.diagrams.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.errors.WithLabelValues("format")))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.individuals))
	assert.Equal(t, 6.0, testutil.ToFloat64(metrics.facts))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.repaired))
}

func TestRunBatch_NoDiagrams(t *testing.T) {
	_, err := runBatch(t.TempDir(), DefaultPattern, config.DefaultConfig(), newRunMetrics(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoDiagrams)
}

func TestBatchCommand_MetricsFile(t *testing.T) {
	root := setupBatchTree(t)
	metricsPath := filepath.Join(t.TempDir(), "ricdraw.prom")

	out, stderr, err := execute(t, "", "batch", "--metrics-file", metricsPath, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 diagrams failed")
	assert.Contains(t, out, "compiled 2 of 3 diagrams")
	assert.Contains(t, stderr, "broken.drawio")

	prom := readFile(t, metricsPath)
	assert.Contains(t, prom, `ricdraw_diagrams_total{result="ok"} 2`)
	assert.Contains(t, prom, `ricdraw_compile_errors_total{kind="format"} 1`)
	assert.Contains(t, prom, "ricdraw_last_run_timestamp_seconds")
}

func TestDiagramWatcher_FlushPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.drawio")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	w, err := newDiagramWatcher(dir, "drawio", 0, nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	w.Seed(path, []byte("one"))

	// Unchanged content is not reported
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.flushPending()
	assert.Empty(t, w.changes)

	// Changed content is reported once however many writes arrive
	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.flushPending()
	require.Len(t, w.changes, 1)
	assert.Equal(t, path, <-w.changes)

	// Other extensions are ignored
	w.handleFSEvent(fsnotify.Event{Name: filepath.Join(dir, "a.owl"), Op: fsnotify.Write})
	w.flushPending()
	assert.Empty(t, w.changes)

	// Removed files are forgotten
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	w.flushPending()
	_, known := w.hashes[path]
	assert.False(t, known)
}
