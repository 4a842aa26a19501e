package rico

import (
	"strings"

	"github.com/c360studio/semstreams/vocabulary"
)

// Kind is the closed set of predicate variants a connector label can map to.
type Kind int

const (
	// KindObject links two individuals.
	KindObject Kind = iota + 1
	// KindDatatype links an individual to a literal.
	KindDatatype
	// KindAnnotation attaches a literal annotation to an individual.
	KindAnnotation
	// KindSameAs states that two individuals are the same.
	KindSameAs
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindDatatype:
		return "datatype"
	case KindAnnotation:
		return "annotation"
	case KindSameAs:
		return "sameAs"
	default:
		return "unknown"
	}
}

// Predicate is a recognized connector label.
type Predicate struct {
	// Prefix and Name form the compact IRI, for example rico:hasCreator.
	Prefix string
	Name   string
	Kind   Kind
	// Key is the dotted vocabulary registry name.
	Key string
}

// CURIE returns the compact IRI used in Manchester syntax.
func (p Predicate) CURIE() string {
	return p.Prefix + ":" + p.Name
}

// IRI returns the full IRI registered with the vocabulary, or "" when the
// predicate was never registered.
func (p Predicate) IRI() string {
	if meta := vocabulary.GetPredicateMetadata(p.Key); meta != nil {
		return meta.StandardIRI
	}
	return ""
}

// Meta relations accepted besides RiC-O properties.
var (
	Comment = Predicate{Prefix: "rdfs", Name: "comment", Kind: KindAnnotation, Key: "rdfs.annotation.comment"}
	SeeAlso = Predicate{Prefix: "rdfs", Name: "seeAlso", Kind: KindAnnotation, Key: "rdfs.annotation.seeAlso"}
	Note    = Predicate{Prefix: "skos", Name: "note", Kind: KindAnnotation, Key: "skos.annotation.note"}
	SameAs  = Predicate{Prefix: "owl", Name: "sameAs", Kind: KindSameAs, Key: "owl.equality.sameAs"}
	Label   = Predicate{Prefix: "rdfs", Name: "label", Kind: KindAnnotation, Key: "rdfs.annotation.label"}
)

// MetaRelations lists the meta relations in registration order. rdfs:label
// is absent because labels come from shape text, not connectors.
var MetaRelations = []Predicate{Comment, SeeAlso, Note, SameAs}

// Registry data types that decide a RiC-O property's kind.
const (
	dataTypeEntity = "entity_id"
	dataTypeString = "string"
)

var metaByCURIE = map[string]Predicate{}

// Lookup maps a connector label such as "rico:hasCreator" or "rdfs:comment"
// to its predicate. Surrounding whitespace is ignored. RiC-O properties are
// resolved through the vocabulary registry; the registered data type decides
// whether the property is an object or a datatype property.
func Lookup(label string) (Predicate, bool) {
	label = strings.TrimSpace(label)
	if p, ok := metaByCURIE[label]; ok {
		return p, true
	}
	name, ok := strings.CutPrefix(label, Prefix+":")
	if !ok || name == "" {
		return Predicate{}, false
	}
	for _, key := range []string{objectKey(name), datatypeKey(name)} {
		meta := vocabulary.GetPredicateMetadata(key)
		if meta == nil {
			continue
		}
		switch meta.DataType {
		case dataTypeEntity:
			return Predicate{Prefix: Prefix, Name: name, Kind: KindObject, Key: key}, true
		case dataTypeString:
			return Predicate{Prefix: Prefix, Name: name, Kind: KindDatatype, Key: key}, true
		}
	}
	return Predicate{}, false
}

// ParseClass extracts the class name from a type tag such as "rico:Person".
// ok is false when text is not in the rico: namespace; the name is returned
// whether or not the class exists, so callers can report misspelled tags.
func ParseClass(text string) (name string, ok bool) {
	return strings.CutPrefix(strings.TrimSpace(text), Prefix+":")
}

func objectKey(name string) string   { return "rico.object." + name }
func datatypeKey(name string) string { return "rico.datatype." + name }

func init() {
	registerObjectProperties()
	registerDatatypeProperties()
	registerMetaRelations()
}

func registerObjectProperties() {
	for _, name := range ObjectProperties {
		vocabulary.Register(objectKey(name),
			vocabulary.WithDescription("RiC-O object property "+name),
			vocabulary.WithDataType(dataTypeEntity),
			vocabulary.WithIRI(Namespace+name))
	}
}

func registerDatatypeProperties() {
	for _, name := range DatatypeProperties {
		vocabulary.Register(datatypeKey(name),
			vocabulary.WithDescription("RiC-O datatype property "+name),
			vocabulary.WithDataType(dataTypeString),
			vocabulary.WithIRI(Namespace+name))
	}
}

func registerMetaRelations() {
	vocabulary.Register(Comment.Key,
		vocabulary.WithDescription("Human-readable description of an individual"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSNamespace+"comment"))

	vocabulary.Register(SeeAlso.Key,
		vocabulary.WithDescription("Resource with further information"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSNamespace+"seeAlso"))

	vocabulary.Register(Note.Key,
		vocabulary.WithDescription("General note"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SKOSNamespace+"note"))

	vocabulary.Register(SameAs.Key,
		vocabulary.WithDescription("Individual denoting the same thing"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(OWLNamespace+"sameAs"))

	vocabulary.Register(Label.Key,
		vocabulary.WithDescription("Label taken verbatim from the diagram shape"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSNamespace+"label"))

	for _, p := range MetaRelations {
		metaByCURIE[p.CURIE()] = p
	}
}
