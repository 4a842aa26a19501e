// Package rico provides the Records in Context ontology (RiC-O 1.0) terms
// recognized in diagrams.
//
// Classes, object properties and datatype properties are fixed tables of
// local names in the rico: namespace. A handful of meta relations from RDFS,
// SKOS and OWL are accepted as connector labels alongside them.
//
// # Semstreams Integration
//
// Every predicate is registered in init() with vocabulary.Register under a
// dotted name (rico.object.hasCreator, rico.datatype.birthDate,
// rdfs.annotation.comment) carrying a description, a data type and the
// standard IRI, so IRIs can be recovered with vocabulary.GetPredicateMetadata.
//
// # Label Syntax
//
// Diagram labels use compact IRIs:
//
//	rico:Person        class (type tag)
//	rico:hasOrHadName  object property (connector label)
//	rico:birthDate     datatype property (connector label)
//	rdfs:comment       annotation
//	owl:sameAs         individual equality
package rico
