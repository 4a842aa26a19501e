package export

import (
	"sort"
	"strings"

	"github.com/c360studio/ricdraw/ontology"
	"github.com/c360studio/ricdraw/vocabulary/rico"
)

// toManchester serializes to OWL Manchester syntax: an optional preamble,
// then one Individual block per individual separated by blank lines.
func (e *Exporter) toManchester(doc *ontology.Document) string {
	var sb strings.Builder
	indent := strings.Repeat(" ", e.opts.Indentation)
	items := ",\n" + indent + indent

	if e.opts.IncludePreamble {
		e.writePreamble(&sb, doc, indent)
	}

	for i, ind := range doc.Individuals {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Individual: " + e.ref(doc, ind.Name) + "\n")

		var annotations []string
		if e.opts.IncludeLabel {
			annotations = append(annotations, rico.Label.CURIE()+" "+manchesterLiteral(ontology.Literal{Value: ind.Label}))
		}
		for _, f := range ind.Annotations {
			annotations = append(annotations, f.Predicate.CURIE()+" "+manchesterLiteral(*f.Object.Literal))
		}
		if len(annotations) > 0 {
			sb.WriteString(indent + "Annotations:\n" + indent + indent + strings.Join(annotations, items) + "\n")
		}

		if len(ind.Types) > 0 {
			types := make([]string, len(ind.Types))
			for j, t := range ind.Types {
				types[j] = rico.Prefix + ":" + t
			}
			sb.WriteString(indent + "Types: " + strings.Join(types, ", ") + "\n")
		}

		if len(ind.Facts) > 0 {
			facts := make([]string, len(ind.Facts))
			for j, f := range ind.Facts {
				facts[j] = f.Predicate.CURIE() + " " + e.object(doc, f.Object)
			}
			sb.WriteString(indent + "Facts:\n" + indent + indent + strings.Join(facts, items) + "\n")
		}

		if len(ind.SameAs) > 0 {
			same := make([]string, len(ind.SameAs))
			for j, s := range ind.SameAs {
				same[j] = e.ref(doc, s)
			}
			sb.WriteString(indent + "SameAs: " + strings.Join(same, ", ") + "\n")
		}
	}
	return sb.String()
}

// writePreamble declares prefixes, the ontology and its imports. Standard
// prefixes are declared only when something uses them.
func (e *Exporter) writePreamble(sb *strings.Builder, doc *ontology.Document, indent string) {
	sb.WriteString("Prefix: " + rico.Prefix + ": <" + rico.Namespace + ">\n")

	used := map[string]bool{
		"rdfs": e.opts.IncludeLabel || doc.UsesPrefix("rdfs"),
		"owl":  doc.UsesPrefix("owl"),
		"skos": doc.UsesPrefix("skos"),
		"xsd":  usesDatatypes(doc),
	}
	names := make([]string, 0, len(used))
	for name, ok := range used {
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString("Prefix: " + name + ": <" + rico.Namespaces[name] + ">\n")
	}

	sb.WriteString("Prefix: " + doc.Header.Prefix + ": <" + doc.Header.PrefixIRI + ">\n")
	sb.WriteString("Ontology: <" + doc.Header.IRI + ">\n")
	for _, imp := range doc.Header.Imports {
		sb.WriteString(indent + "Import: <" + imp + ">\n")
	}
	sb.WriteString("\n")
}

func (e *Exporter) ref(doc *ontology.Document, name string) string {
	if doc.Header.Prefix == "" {
		return name
	}
	return doc.Header.Prefix + ":" + name
}

func (e *Exporter) object(doc *ontology.Document, o ontology.Object) string {
	if o.IsLiteral() {
		return manchesterLiteral(*o.Literal)
	}
	return e.ref(doc, o.Individual)
}

var manchesterEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func manchesterLiteral(l ontology.Literal) string {
	quoted := `"` + manchesterEscaper.Replace(l.Value) + `"`
	if x := l.Datatype.XSD(); x != "" {
		return quoted + "^^xsd:" + x
	}
	return quoted
}

func usesDatatypes(doc *ontology.Document) bool {
	for _, ind := range doc.Individuals {
		for _, f := range ind.Facts {
			if f.Object.IsLiteral() && f.Object.Literal.Datatype != ontology.String {
				return true
			}
		}
	}
	return false
}
