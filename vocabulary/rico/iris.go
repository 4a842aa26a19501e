package rico

// Namespace is the base IRI of every RiC-O term.
const Namespace = "https://www.ica.org/standards/RiC/ontology#"

// Prefix is the conventional prefix name for Namespace.
const Prefix = "rico"

// ImportIRI locates the published RiC-O 1.0 ontology imported by generated documents.
const ImportIRI = "https://raw.githubusercontent.com/ICA-EGAD/RiC-O/master/ontology/current-version/RiC-O_1-0.rdf"

// Standard vocabularies referenced by generated documents.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"
)

// Namespaces maps each prefix name used in generated documents to its IRI.
var Namespaces = map[string]string{
	Prefix: Namespace,
	"rdf":  RDFNamespace,
	"rdfs": RDFSNamespace,
	"owl":  OWLNamespace,
	"xsd":  XSDNamespace,
	"skos": SKOSNamespace,
}
