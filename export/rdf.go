// Package export serializes a compiled ontology document. Manchester syntax
// is the primary output; Turtle and N-Triples renderings of the same
// statements are available for RDF tooling.
package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/ricdraw/ontology"
	"github.com/c360studio/ricdraw/vocabulary/rico"
)

const (
	rdfType             = rico.RDFNamespace + "type"
	owlOntology         = rico.OWLNamespace + "Ontology"
	owlImports          = rico.OWLNamespace + "imports"
	owlNamedIndividual  = rico.OWLNamespace + "NamedIndividual"
	defaultIndentation  = 2
	ntriplesXSDTemplate = "\"%s\"^^<" + rico.XSDNamespace + "%s>"
)

// Options controls serialization.
type Options struct {
	// Indentation is the number of spaces per nesting level.
	Indentation int
	// IncludeLabel emits an rdfs:label annotation per individual.
	IncludeLabel bool
	// IncludePreamble emits prefixes, the ontology declaration and imports.
	IncludePreamble bool
}

// Exporter serializes documents with fixed options.
type Exporter struct {
	opts Options
}

// NewExporter creates an exporter. A non-positive indentation selects the
// default of two spaces.
func NewExporter(opts Options) *Exporter {
	if opts.Indentation <= 0 {
		opts.Indentation = defaultIndentation
	}
	return &Exporter{opts: opts}
}

// Export serializes doc to the specified format.
func (e *Exporter) Export(doc *ontology.Document, format Format) (string, error) {
	switch format {
	case FormatManchester:
		return e.toManchester(doc), nil
	case FormatTurtle:
		return e.toTurtle(doc), nil
	case FormatNTriples:
		return e.toNTriples(doc), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// statement is one predicate/object pair of an individual, with the object
// kept structured so each format can render it.
type statement struct {
	predicateIRI string
	individual   string
	literal      *ontology.Literal
}

// statements lists what is said about ind, in emission order.
func (e *Exporter) statements(ind *ontology.Individual) []statement {
	var out []statement
	if e.opts.IncludeLabel {
		out = append(out, statement{predicateIRI: rico.Label.IRI(), literal: &ontology.Literal{Value: ind.Label}})
	}
	for _, list := range [][]ontology.Fact{ind.Annotations, ind.Facts} {
		for _, f := range list {
			out = append(out, statement{predicateIRI: f.Predicate.IRI(), individual: f.Object.Individual, literal: f.Object.Literal})
		}
	}
	for _, s := range ind.SameAs {
		out = append(out, statement{predicateIRI: rico.SameAs.IRI(), individual: s})
	}
	return out
}

func individualIRI(doc *ontology.Document, name string) string {
	return doc.Header.PrefixIRI + name
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle(doc *ontology.Document) string {
	w := NewTurtleWriter(map[string]string{"xsd": rico.XSDNamespace})

	w.WritePrefixes()

	if e.opts.IncludePreamble {
		w.WriteSubject(doc.Header.IRI)
		w.WriteTypes([]string{owlOntology}, len(doc.Header.Imports) == 0)
		for i, imp := range doc.Header.Imports {
			w.WritePredicate(owlImports, "<"+imp+">", i == len(doc.Header.Imports)-1)
		}
		w.WriteBlank()
	}

	for _, ind := range doc.Individuals {
		types := []string{owlNamedIndividual}
		for _, t := range ind.Types {
			types = append(types, rico.ClassIRI(t))
		}
		stmts := e.statements(ind)

		w.WriteSubject(individualIRI(doc, ind.Name))
		w.WriteTypes(types, len(stmts) == 0)
		for i, s := range stmts {
			w.WritePredicate(s.predicateIRI, e.formatObject(doc, s, false), i == len(stmts)-1)
		}
		w.WriteBlank()
	}

	return w.String()
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples(doc *ontology.Document) string {
	w := NewNTriplesWriter()

	if e.opts.IncludePreamble {
		w.WriteTypeTriple(doc.Header.IRI, owlOntology)
		for _, imp := range doc.Header.Imports {
			w.WriteTriple(doc.Header.IRI, owlImports, "<"+imp+">")
		}
	}

	for _, ind := range doc.Individuals {
		iri := individualIRI(doc, ind.Name)
		w.WriteTypeTriple(iri, owlNamedIndividual)
		for _, t := range ind.Types {
			w.WriteTypeTriple(iri, rico.ClassIRI(t))
		}
		for _, s := range e.statements(ind) {
			w.WriteTriple(iri, s.predicateIRI, e.formatObject(doc, s, true))
		}
	}

	return w.String()
}

// formatObject formats an object for Turtle, or for N-Triples when full is set.
func (e *Exporter) formatObject(doc *ontology.Document, s statement, full bool) string {
	if s.literal == nil {
		return "<" + individualIRI(doc, s.individual) + ">"
	}
	value := escapeString(s.literal.Value)
	xsd := s.literal.Datatype.XSD()
	switch {
	case xsd == "":
		return fmt.Sprintf("\"%s\"", value)
	case full:
		return fmt.Sprintf(ntriplesXSDTemplate, value, xsd)
	default:
		return fmt.Sprintf("\"%s\"^^xsd:%s", value, xsd)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
