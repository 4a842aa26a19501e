package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/ricdraw/config"
	"github.com/c360studio/ricdraw/identifier"
)

// compileFlags holds the options shared by compile, batch and watch. Flags
// only override the loaded configuration when set on the command line.
type compileFlags struct {
	configPath         string
	preambleDisable    bool
	maxGap             float64
	inferTypesDisable  bool
	indentation        int
	ontologyIRI        string
	prefixIRI          string
	strict             bool
	prefix             string
	labelDisable       bool
	capitalization     string
	metacharacters     []string
	removeUnconfigured bool
	format             string
}

func (f *compileFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "Config file path (YAML); default is ricdraw.yaml in the current or a parent directory")
	fs.BoolVarP(&f.preambleDisable, "preamble-disable", "d", false,
		"Disable inclusion of a preamble (prefixes, ontology IRI and imports)")
	fs.Float64VarP(&f.maxGap, "max-gap", "g", 10,
		"Largest gap in pixels between a floating arrow end and the node it is attached to (ignored in strict mode)")
	fs.BoolVarP(&f.inferTypesDisable, "infer-types-disable", "i", false,
		"Disable inference of date, dateTime and integer literals")
	fs.IntVarP(&f.indentation, "indentation", "n", 2, "Number of spaces to indent by")
	fs.StringVarP(&f.ontologyIRI, "ontology-iri", "o", "",
		"Ontology IRI (default: generated from the current timestamp)")
	fs.StringVarP(&f.prefixIRI, "prefix-iri", "p", "",
		"IRI of the prefix used for generated individuals (default: ontology IRI followed by '#')")
	fs.BoolVarP(&f.strict, "strict-mode", "s", false,
		"Require both ends of every arrow to be locked to a node and reject unrecognized shapes")
	fs.StringVarP(&f.prefix, "prefix", "x", "", "Prefix name for generated individuals (default: none)")
	fs.BoolVarP(&f.labelDisable, "label-disable", "l", false, "Do not emit rdfs:label for individuals")
	fs.StringVarP(&f.capitalization, "capitalization", "c", identifier.DefaultScheme.String(),
		fmt.Sprintf("Capitalization scheme for identifiers (%v)", identifier.SchemeNames()))
	fs.StringArrayVarP(&f.metacharacters, "metacharacter", "m", nil,
		"Replace a forbidden character in identifiers, as c=replacement (repeatable)")
	fs.BoolVarP(&f.removeUnconfigured, "remove-unconfigured", "r", false,
		"Remove forbidden characters that have no configured replacement instead of failing")
	fs.StringVarP(&f.format, "format", "f", "manchester", "Output format (manchester, turtle, ntriples)")
}

// load builds the configuration for one run: defaults, config files, then
// the flags that were set explicitly.
func (f *compileFlags) load(cmd *cobra.Command, now time.Time) (*config.Config, error) {
	loader := config.NewLoader(nil)
	if f.configPath != "" {
		loader.WithFile(f.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := f.apply(cmd, cfg); err != nil {
		return nil, err
	}
	if cfg.Ontology.IRI == "" && cfg.Ontology.Timestamp.IsZero() {
		cfg.Ontology.Timestamp = now
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (f *compileFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("preamble-disable") {
		cfg.Output.IncludePreamble = !f.preambleDisable
	}
	if changed("max-gap") {
		cfg.Parse.MaxGap = f.maxGap
	}
	if changed("infer-types-disable") {
		cfg.Output.InferLiteralTypes = !f.inferTypesDisable
	}
	if changed("indentation") {
		cfg.Output.Indentation = f.indentation
	}
	if changed("ontology-iri") {
		cfg.Ontology.IRI = f.ontologyIRI
	}
	if changed("prefix-iri") {
		cfg.Ontology.PrefixIRI = f.prefixIRI
	}
	if changed("strict-mode") {
		cfg.Parse.Strict = f.strict
	}
	if changed("prefix") {
		cfg.Ontology.Prefix = f.prefix
	}
	if changed("label-disable") {
		cfg.Output.IncludeLabel = !f.labelDisable
	}
	if changed("capitalization") {
		cfg.Identifiers.Capitalization = f.capitalization
	}
	if changed("remove-unconfigured") {
		cfg.Identifiers.RemoveUnconfigured = f.removeUnconfigured
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	for _, m := range f.metacharacters {
		sub, err := identifier.ParseSubstitution(m)
		if err != nil {
			return err
		}
		cfg.Identifiers.Metacharacters = setMetacharacter(cfg.Identifiers.Metacharacters,
			config.Metacharacter{Char: string(sub.Char), Replacement: sub.Replacement})
	}
	return nil
}

// setMetacharacter replaces the entry for m.Char, or appends m.
func setMetacharacter(list []config.Metacharacter, m config.Metacharacter) []config.Metacharacter {
	out := make([]config.Metacharacter, 0, len(list)+1)
	replaced := false
	for _, e := range list {
		if e.Char == m.Char {
			out = append(out, m)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, m)
	}
	return out
}
