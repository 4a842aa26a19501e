package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/c360studio/ricdraw/identifier"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Parse.Strict {
		t.Error("expected tolerant parsing by default")
	}
	if cfg.Parse.MaxGap != 10 {
		t.Errorf("expected default max gap 10, got %g", cfg.Parse.MaxGap)
	}
	if cfg.Output.Indentation != 2 {
		t.Errorf("expected default indentation 2, got %d", cfg.Output.Indentation)
	}
	if cfg.Output.Format != "manchester" {
		t.Errorf("expected default format manchester, got %s", cfg.Output.Format)
	}
	if cfg.Identifiers.Capitalization != "upper-camel-case" {
		t.Errorf("expected upper-camel-case, got %s", cfg.Identifiers.Capitalization)
	}
	if len(cfg.Identifiers.Metacharacters) != len(identifier.DefaultSubstitutions()) {
		t.Errorf("expected the default substitution table, got %d entries", len(cfg.Identifiers.Metacharacters))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:      "negative max gap",
			modify:    func(c *Config) { c.Parse.MaxGap = -1 },
			wantErr:   true,
			wantField: "parse.max_gap",
		},
		{
			name:      "zero indentation",
			modify:    func(c *Config) { c.Output.Indentation = 0 },
			wantErr:   true,
			wantField: "output.indentation",
		},
		{
			name:      "unknown format",
			modify:    func(c *Config) { c.Output.Format = "rdfxml" },
			wantErr:   true,
			wantField: "output.format",
		},
		{
			name:      "unknown capitalization",
			modify:    func(c *Config) { c.Identifiers.Capitalization = "SHOUTING" },
			wantErr:   true,
			wantField: "identifiers.capitalization",
		},
		{
			name: "multi-character metacharacter",
			modify: func(c *Config) {
				c.Identifiers.Metacharacters = []Metacharacter{{Char: "()", Replacement: "x"}}
			},
			wantErr:   true,
			wantField: "identifiers.metacharacters[0].char",
		},
		{
			name: "replacement containing a forbidden character",
			modify: func(c *Config) {
				c.Identifiers.Metacharacters = []Metacharacter{{Char: "[", Replacement: "{"}}
			},
			wantErr:   true,
			wantField: "identifiers.metacharacters",
		},
		{
			name: "comma to hyphen",
			modify: func(c *Config) {
				c.Identifiers.Metacharacters = []Metacharacter{{Char: ",", Replacement: "-"}}
			},
			wantErr: false,
		},
		{
			name: "trailing dot removed",
			modify: func(c *Config) {
				c.Identifiers.Metacharacters = append(c.Identifiers.Metacharacters, Metacharacter{Char: ".", Replacement: ""})
			},
			wantErr: false,
		},
		{
			name: "replacement ending in a dot",
			modify: func(c *Config) {
				c.Identifiers.Metacharacters = []Metacharacter{{Char: "/", Replacement: "etc."}}
			},
			wantErr:   true,
			wantField: "identifiers.metacharacters",
		},
		{
			name:      "reserved prefix",
			modify:    func(c *Config) { c.Ontology.Prefix = "rico" },
			wantErr:   true,
			wantField: "ontology.prefix",
		},
		{
			name:      "prefix with colon",
			modify:    func(c *Config) { c.Ontology.Prefix = "ex:" },
			wantErr:   true,
			wantField: "ontology.prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !IsValidationError(err) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve := err.(*ValidationError); ve.Field != tt.wantField {
				t.Errorf("expected field %s, got %s", tt.wantField, ve.Field)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
parse:
  strict: true
  max_gap: 4.5
  extra_shape_styles:
    - hexagon
identifiers:
  capitalization: lower-with-underscores
  metacharacters:
    - char: ","
      replacement: "-"
  remove_unconfigured: true
ontology:
  iri: "https://example.org/archive"
  prefix: "ex"
output:
  indentation: 4
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if !cfg.Parse.Strict {
		t.Error("expected strict parsing")
	}
	if cfg.Parse.MaxGap != 4.5 {
		t.Errorf("expected max gap 4.5, got %g", cfg.Parse.MaxGap)
	}
	if len(cfg.Parse.ExtraShapeStyles) != 1 || cfg.Parse.ExtraShapeStyles[0] != "hexagon" {
		t.Errorf("expected extra style hexagon, got %v", cfg.Parse.ExtraShapeStyles)
	}
	if cfg.Identifiers.Capitalization != "lower-with-underscores" {
		t.Errorf("expected lower-with-underscores, got %s", cfg.Identifiers.Capitalization)
	}
	if len(cfg.Identifiers.Metacharacters) != 1 {
		t.Errorf("expected the file table to replace the default, got %d entries", len(cfg.Identifiers.Metacharacters))
	}
	if !cfg.Identifiers.RemoveUnconfigured {
		t.Error("expected remove_unconfigured")
	}
	if cfg.Output.Indentation != 4 {
		t.Errorf("expected indentation 4, got %d", cfg.Output.Indentation)
	}
	// Keys absent from the file keep their defaults
	if !cfg.Output.IncludeLabel || !cfg.Output.IncludePreamble || !cfg.Output.InferLiteralTypes {
		t.Error("expected output toggles to keep their defaults")
	}
	if cfg.Output.Format != "manchester" {
		t.Errorf("expected format to remain manchester, got %s", cfg.Output.Format)
	}
	if cfg.PrefixIRI() != "https://example.org/archive#" {
		t.Errorf("expected prefix IRI derived from the ontology IRI, got %s", cfg.PrefixIRI())
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("parse: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigApplyFileLayers(t *testing.T) {
	tmpDir := t.TempDir()
	user := filepath.Join(tmpDir, "user.yaml")
	project := filepath.Join(tmpDir, "project.yaml")

	if err := os.WriteFile(user, []byte("output:\n  indentation: 8\n  format: turtle\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(project, []byte("output:\n  indentation: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyFile(user); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(project); err != nil {
		t.Fatal(err)
	}

	if cfg.Output.Indentation != 3 {
		t.Errorf("expected project indentation 3, got %d", cfg.Output.Indentation)
	}
	// Format should remain from the user layer since project didn't set it
	if cfg.Output.Format != "turtle" {
		t.Errorf("expected format turtle from user layer, got %s", cfg.Output.Format)
	}
}

func TestOntologyIRI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ontology.Timestamp = time.Date(2024, 5, 17, 9, 30, 5, 0, time.UTC)

	want := "ontology://generated-from-draw-io/2024-05-17T09-30-05"
	if got := cfg.OntologyIRI(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := cfg.PrefixIRI(); got != want+"#" {
		t.Errorf("expected %s#, got %s", want, got)
	}

	cfg.Ontology.IRI = "https://example.org/o"
	cfg.Ontology.PrefixIRI = "https://example.org/ind/"
	if got := cfg.OntologyIRI(); got != "https://example.org/o" {
		t.Errorf("expected explicit IRI, got %s", got)
	}
	if got := cfg.PrefixIRI(); got != "https://example.org/ind/" {
		t.Errorf("expected explicit prefix IRI, got %s", got)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Identifiers.Capitalization = "lower-with-hyphens"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Identifiers.Capitalization != "lower-with-hyphens" {
		t.Errorf("expected lower-with-hyphens, got %s", loaded.Identifiers.Capitalization)
	}
	if len(loaded.Identifiers.Metacharacters) != len(cfg.Identifiers.Metacharacters) {
		t.Errorf("expected metacharacters to round trip, got %d", len(loaded.Identifiers.Metacharacters))
	}
}

func TestLoaderExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	path := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(path, []byte("parse:\n  strict: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(nil).WithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Parse.Strict {
		t.Error("expected strict from explicit file")
	}

	if _, err := NewLoader(nil).WithFile(filepath.Join(tmpDir, "nope.yaml")).Load(); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestLoaderEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)
	want := filepath.Join(home, UserConfigDir, UserConfigFile)

	loader := NewLoader(nil)
	path, created, err := loader.EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	if path != want || !created {
		t.Errorf("EnsureUserConfig() = %q, %v; want %q, true", path, created, want)
	}

	// Edits to the user file survive a second init and reach Load.
	if err := os.WriteFile(path, []byte("output:\n  indentation: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, created, err = loader.EnsureUserConfig(); err != nil || created {
		t.Errorf("second EnsureUserConfig() created = %v, err = %v", created, err)
	}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Indentation != 4 {
		t.Errorf("expected indentation 4 from user config, got %d", cfg.Output.Indentation)
	}
}
