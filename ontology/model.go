// Package ontology holds the derived model of one compiled diagram: the
// individuals, their types and their facts, in the order they were first
// encountered.
package ontology

import "github.com/c360studio/ricdraw/vocabulary/rico"

// Datatype is the inferred XML Schema datatype of a literal.
type Datatype int

const (
	// String is the default; it is written without a datatype suffix.
	String Datatype = iota
	Integer
	Date
	DateTime
)

// XSD returns the xsd: local name of the datatype, or "" for String.
func (d Datatype) XSD() string {
	switch d {
	case Integer:
		return "integer"
	case Date:
		return "date"
	case DateTime:
		return "dateTime"
	default:
		return ""
	}
}

func (d Datatype) String() string {
	if x := d.XSD(); x != "" {
		return x
	}
	return "string"
}

// Literal is a lexical value with its datatype.
type Literal struct {
	Value    string
	Datatype Datatype
}

// EntityKind separates named individuals from literal values.
type EntityKind int

const (
	KindIndividual EntityKind = iota + 1
	KindLiteral
)

// ResolvedEntity is a classified shape as seen from one end of a connector.
type ResolvedEntity struct {
	ShapeID string
	Kind    EntityKind
	// Name is the synthesized local name. Empty for literals.
	Name string
	// Label is the shape text as written, line breaks included.
	Label string
	// Content is the normalized text used as literal value.
	Content  string
	Datatype Datatype
}

// Object is the object of a fact: either an individual local name or a literal.
type Object struct {
	Individual string
	Literal    *Literal
}

// IsLiteral reports whether the object is a literal value.
func (o Object) IsLiteral() bool {
	return o.Literal != nil
}

// Fact is one outgoing predicate/object pair of an individual.
type Fact struct {
	Predicate rico.Predicate
	Object    Object
}

// Same reports whether two facts state the same thing.
func (f Fact) Same(other Fact) bool {
	if f.Predicate.CURIE() != other.Predicate.CURIE() || f.Object.IsLiteral() != other.Object.IsLiteral() {
		return false
	}
	if f.Object.IsLiteral() {
		return *f.Object.Literal == *other.Object.Literal
	}
	return f.Object.Individual == other.Object.Individual
}

// Individual is one named individual with everything stated about it.
type Individual struct {
	Name  string
	Label string
	// Types holds RiC-O class local names in first-encounter order.
	Types []string
	// Facts holds object and datatype property assertions.
	Facts []Fact
	// Annotations holds annotation assertions other than rdfs:label.
	Annotations []Fact
	// SameAs holds local names of equal individuals.
	SameAs []string
}

// AddType appends class unless already present. It reports whether it was added.
func (i *Individual) AddType(class string) bool {
	for _, t := range i.Types {
		if t == class {
			return false
		}
	}
	i.Types = append(i.Types, class)
	return true
}

// AddFact records f in the section its predicate kind belongs to, dropping
// duplicates. It reports whether the fact was new.
func (i *Individual) AddFact(f Fact) bool {
	switch f.Predicate.Kind {
	case rico.KindSameAs:
		for _, s := range i.SameAs {
			if s == f.Object.Individual {
				return false
			}
		}
		i.SameAs = append(i.SameAs, f.Object.Individual)
		return true
	case rico.KindAnnotation:
		return addUnique(&i.Annotations, f)
	default:
		return addUnique(&i.Facts, f)
	}
}

func addUnique(list *[]Fact, f Fact) bool {
	for _, existing := range *list {
		if existing.Same(f) {
			return false
		}
	}
	*list = append(*list, f)
	return true
}

// Header describes the ontology declaration written before the individuals.
type Header struct {
	// IRI identifies the ontology.
	IRI string
	// Prefix is the prefix name used for individuals. Empty means the
	// default (":") prefix.
	Prefix string
	// PrefixIRI is the namespace individuals are minted in.
	PrefixIRI string
	// Imports lists ontology IRIs to import.
	Imports []string
}

// Document is the complete derived model of one diagram.
type Document struct {
	Header      Header
	Individuals []*Individual

	byName map[string]*Individual
}

// NewDocument returns an empty document with the given header.
func NewDocument(h Header) *Document {
	return &Document{Header: h, byName: make(map[string]*Individual)}
}

// Individual returns the individual named name, creating it with label on
// first use.
func (d *Document) Individual(name, label string) *Individual {
	if ind, ok := d.byName[name]; ok {
		return ind
	}
	ind := &Individual{Name: name, Label: label}
	d.byName[name] = ind
	d.Individuals = append(d.Individuals, ind)
	return ind
}

// UsesPrefix reports whether any fact or annotation uses a predicate with
// the given prefix name.
func (d *Document) UsesPrefix(prefix string) bool {
	for _, ind := range d.Individuals {
		for _, list := range [][]Fact{ind.Facts, ind.Annotations} {
			for _, f := range list {
				if f.Predicate.Prefix == prefix {
					return true
				}
			}
		}
		if prefix == "owl" && len(ind.SameAs) > 0 {
			return true
		}
	}
	return false
}

// FactCount returns the number of facts, annotations and equalities stated.
func (d *Document) FactCount() int {
	n := 0
	for _, ind := range d.Individuals {
		n += len(ind.Facts) + len(ind.Annotations) + len(ind.SameAs)
	}
	return n
}
