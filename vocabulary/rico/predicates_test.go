package rico_test

import (
	"testing"

	"github.com/c360studio/ricdraw/vocabulary/rico"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label    string
		wantKind rico.Kind
		wantIRI  string
	}{
		{"rico:hasOrHadName", rico.KindObject, rico.Namespace + "hasOrHadName"},
		{" rico:hasCreator ", rico.KindObject, rico.Namespace + "hasCreator"},
		{"rico:birthDate", rico.KindDatatype, rico.Namespace + "birthDate"},
		{"rico:identifier", rico.KindDatatype, rico.Namespace + "identifier"},
		{"rdfs:comment", rico.KindAnnotation, rico.RDFSNamespace + "comment"},
		{"rdfs:seeAlso", rico.KindAnnotation, rico.RDFSNamespace + "seeAlso"},
		{"skos:note", rico.KindAnnotation, rico.SKOSNamespace + "note"},
		{"owl:sameAs", rico.KindSameAs, rico.OWLNamespace + "sameAs"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p, ok := rico.Lookup(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, p.Kind)
			assert.Equal(t, tt.wantIRI, p.IRI())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, label := range []string{"", "hasCreator", "rico:hasCreatorr", "rico:Person", "dc:title", "rdfs:label"} {
		_, ok := rico.Lookup(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestPredicatesRegistered(t *testing.T) {
	keys := []string{
		"rico.object.hasOrHadName",
		"rico.object.isOrWasIncludedIn",
		"rico.datatype.birthDate",
		"rico.datatype.history",
		rico.Comment.Key,
		rico.SeeAlso.Key,
		rico.Note.Key,
		rico.SameAs.Key,
		rico.Label.Key,
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(key)
			require.NotNil(t, meta, "predicate %q not registered", key)
			assert.NotEmpty(t, meta.Description)
			assert.NotEmpty(t, meta.DataType)
			assert.NotEmpty(t, meta.StandardIRI)
		})
	}
}

func TestEveryPropertyRegistered(t *testing.T) {
	for _, name := range rico.ObjectProperties {
		p, ok := rico.Lookup("rico:" + name)
		require.True(t, ok, name)
		assert.Equal(t, rico.KindObject, p.Kind)
		assert.Equal(t, rico.Namespace+name, p.IRI())
	}
	for _, name := range rico.DatatypeProperties {
		p, ok := rico.Lookup("rico:" + name)
		require.True(t, ok, name)
		assert.Equal(t, rico.KindDatatype, p.Kind)
	}
}

func TestLookup_KindFromRegistry(t *testing.T) {
	vocabulary.Register("rico.datatype.localExtent",
		vocabulary.WithDescription("Locally registered extent note"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("https://example.org/terms#localExtent"))
	vocabulary.Register("rico.object.localHolder",
		vocabulary.WithDescription("Locally registered holder relation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI("https://example.org/terms#localHolder"))
	vocabulary.Register("rico.object.localMeasure",
		vocabulary.WithDescription("Registered with a data type no connector maps to"),
		vocabulary.WithDataType("float64"))

	p, ok := rico.Lookup("rico:localExtent")
	require.True(t, ok)
	assert.Equal(t, rico.KindDatatype, p.Kind)
	assert.Equal(t, "https://example.org/terms#localExtent", p.IRI())

	p, ok = rico.Lookup("rico:localHolder")
	require.True(t, ok)
	assert.Equal(t, rico.KindObject, p.Kind)
	assert.Equal(t, "https://example.org/terms#localHolder", p.IRI())

	_, ok = rico.Lookup("rico:localMeasure")
	assert.False(t, ok)
}

func TestPredicateIRI_Unregistered(t *testing.T) {
	p := rico.Predicate{Prefix: rico.Prefix, Name: "neverRegistered", Kind: rico.KindObject, Key: "rico.object.neverRegistered"}
	assert.Equal(t, "", p.IRI())
	assert.Equal(t, "rico:neverRegistered", p.CURIE())
}

func TestParseClass(t *testing.T) {
	name, ok := rico.ParseClass(" rico:Person ")
	require.True(t, ok)
	assert.Equal(t, "Person", name)
	assert.True(t, rico.IsClass(name))
	assert.Equal(t, rico.Namespace+"Person", rico.ClassIRI(name))

	for _, text := range []string{"rico:Persn", "rico:", "rico:Record Set"} {
		name, ok := rico.ParseClass(text)
		require.True(t, ok, text)
		assert.False(t, rico.IsClass(name), text)
	}

	for _, text := range []string{"Person", "owl:Thing", "ric:Person"} {
		_, ok := rico.ParseClass(text)
		assert.False(t, ok, text)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", rico.KindObject.String())
	assert.Equal(t, "sameAs", rico.KindSameAs.String())
	assert.Equal(t, "unknown", rico.Kind(0).String())
}
