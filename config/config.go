// Package config provides configuration loading and management for ricdraw.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ricdraw/export"
	"github.com/c360studio/ricdraw/identifier"
	"github.com/c360studio/ricdraw/resolve"
)

// TimestampLayout formats the timestamp embedded in generated ontology IRIs.
const TimestampLayout = "2006-01-02T15-04-05"

// GeneratedIRIBase prefixes ontology IRIs generated from a timestamp.
const GeneratedIRIBase = "ontology://generated-from-draw-io/"

// Config represents the complete ricdraw configuration. It is immutable for
// the duration of one compilation.
type Config struct {
	Parse       ParseConfig      `yaml:"parse"`
	Identifiers IdentifierConfig `yaml:"identifiers"`
	Ontology    OntologyConfig   `yaml:"ontology"`
	Output      OutputConfig     `yaml:"output"`
}

// ParseConfig configures how diagram shapes and connectors are interpreted
type ParseConfig struct {
	// Strict disables endpoint repair and unrecognized-style tolerance
	Strict bool `yaml:"strict"`
	// MaxGap is the largest distance between a floating connector end and
	// the shape it is attached to (default: 10)
	MaxGap float64 `yaml:"max_gap"`
	// ExtraShapeStyles are draw.io shape names accepted besides the built-in ones
	ExtraShapeStyles []string `yaml:"extra_shape_styles"`
}

// IdentifierConfig configures local name synthesis
type IdentifierConfig struct {
	// Capitalization is one of none, upper-camel-case, lower-camel-case,
	// lower-with-underscores, lower-with-hyphens (default: upper-camel-case)
	Capitalization string `yaml:"capitalization"`
	// Metacharacters replaces forbidden characters, applied after capitalization
	Metacharacters []Metacharacter `yaml:"metacharacters"`
	// RemoveUnconfigured drops forbidden characters without a replacement
	// instead of failing
	RemoveUnconfigured bool `yaml:"remove_unconfigured"`
}

// Metacharacter is one substitution table entry
type Metacharacter struct {
	Char        string `yaml:"char"`
	Replacement string `yaml:"replacement"`
}

// OntologyConfig configures the IRIs of the generated document
type OntologyConfig struct {
	// IRI identifies the ontology (default: generated from Timestamp)
	IRI string `yaml:"iri"`
	// Prefix is the prefix name of individuals (empty = default prefix)
	Prefix string `yaml:"prefix"`
	// PrefixIRI is the namespace of individuals (default: IRI + "#")
	PrefixIRI string `yaml:"prefix_iri"`
	// Timestamp is embedded in the generated ontology IRI
	Timestamp time.Time `yaml:"timestamp,omitempty"`
}

// OutputConfig configures serialization
type OutputConfig struct {
	// Format is manchester, turtle or ntriples (default: manchester)
	Format string `yaml:"format"`
	// Indentation is the number of spaces per nesting level (default: 2)
	Indentation int `yaml:"indentation"`
	// InferLiteralTypes types literals as dates, date-times or integers
	InferLiteralTypes bool `yaml:"infer_literal_types"`
	// IncludeLabel emits rdfs:label per individual
	IncludeLabel bool `yaml:"include_label"`
	// IncludePreamble emits prefixes, the ontology header and the RiC-O import
	IncludePreamble bool `yaml:"include_preamble"`
}

// ValidationError reports an invalid configuration field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	subs := identifier.DefaultSubstitutions()
	metas := make([]Metacharacter, len(subs))
	for i, s := range subs {
		metas[i] = Metacharacter{Char: string(s.Char), Replacement: s.Replacement}
	}
	return &Config{
		Parse: ParseConfig{
			Strict: false,
			MaxGap: resolve.DefaultMaxGap,
		},
		Identifiers: IdentifierConfig{
			Capitalization: identifier.DefaultScheme.String(),
			Metacharacters: metas,
		},
		Output: OutputConfig{
			Format:            string(export.FormatManchester),
			Indentation:       2,
			InferLiteralTypes: true,
			IncludeLabel:      true,
			IncludePreamble:   true,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Parse.MaxGap < 0 {
		return &ValidationError{Field: "parse.max_gap", Message: "must not be negative"}
	}
	if c.Output.Indentation < 1 {
		return &ValidationError{Field: "output.indentation", Message: "must be at least 1"}
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return &ValidationError{Field: "output.format", Message: err.Error()}
	}
	if _, err := identifier.ParseScheme(c.Identifiers.Capitalization); err != nil {
		return &ValidationError{Field: "identifiers.capitalization", Message: err.Error()}
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	if c.Ontology.Prefix != "" && strings.ContainsAny(c.Ontology.Prefix, ": \t") {
		return &ValidationError{Field: "ontology.prefix", Message: fmt.Sprintf("%q is not a valid prefix name", c.Ontology.Prefix)}
	}
	if c.Ontology.Prefix == "rico" {
		return &ValidationError{Field: "ontology.prefix", Message: "rico is reserved for the RiC-O vocabulary"}
	}
	return nil
}

// Scheme returns the configured capitalization scheme
func (c *Config) Scheme() (identifier.Scheme, error) {
	return identifier.ParseScheme(c.Identifiers.Capitalization)
}

// Rules builds the metacharacter substitution rules
func (c *Config) Rules() (*identifier.Rules, error) {
	subs := make([]identifier.Substitution, 0, len(c.Identifiers.Metacharacters))
	for i, m := range c.Identifiers.Metacharacters {
		if utf8.RuneCountInString(m.Char) != 1 {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("identifiers.metacharacters[%d].char", i),
				Message: fmt.Sprintf("%q must be exactly one character", m.Char),
			}
		}
		r, _ := utf8.DecodeRuneInString(m.Char)
		subs = append(subs, identifier.Substitution{Char: r, Replacement: m.Replacement})
	}
	rules, err := identifier.NewRules(subs, c.Identifiers.RemoveUnconfigured)
	if err != nil {
		return nil, &ValidationError{Field: "identifiers.metacharacters", Message: err.Error()}
	}
	return rules, nil
}

// OntologyIRI returns the configured ontology IRI, or one generated from
// the timestamp
func (c *Config) OntologyIRI() string {
	if c.Ontology.IRI != "" {
		return c.Ontology.IRI
	}
	return GeneratedIRIBase + c.Ontology.Timestamp.Format(TimestampLayout)
}

// PrefixIRI returns the namespace individuals are minted in
func (c *Config) PrefixIRI() string {
	if c.Ontology.PrefixIRI != "" {
		return c.Ontology.PrefixIRI
	}
	return c.OntologyIRI() + "#"
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.ApplyFile(path); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyFile overlays the keys present in a YAML file onto c. Keys absent
// from the file keep their current value.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
