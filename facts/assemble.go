// Package facts pairs resolved connectors with their endpoints and turns
// them into typed statements about individuals.
//
// The connector source is always the subject and the target the object.
// Object properties and owl:sameAs make the target an individual, datatype
// properties and annotations make its text a literal.
package facts

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/ricdraw/classify"
	"github.com/c360studio/ricdraw/identifier"
	"github.com/c360studio/ricdraw/normalize"
	"github.com/c360studio/ricdraw/ontology"
	"github.com/c360studio/ricdraw/resolve"
	"github.com/c360studio/ricdraw/vocabulary/rico"
)

// Options configures assembly.
type Options struct {
	// InferTypes enables datatype inference for datatype property values.
	InferTypes bool
	Logger     *slog.Logger
}

// Assembler builds the document of one diagram.
type Assembler struct {
	names  *identifier.Registry
	opts   Options
	logger *slog.Logger
}

// NewAssembler returns an assembler minting names through names.
func NewAssembler(names *identifier.Registry, opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{names: names, opts: opts, logger: logger}
}

// Assemble declares every typed individual in document order, then adds
// the facts of each link in connector order.
func (a *Assembler) Assemble(header ontology.Header, roles *classify.Result, links []resolve.Link) (*ontology.Document, error) {
	doc := ontology.NewDocument(header)

	for _, role := range roles.Roles() {
		if role.Kind != classify.Individual {
			continue
		}
		ind, err := a.individual(doc, role)
		if err != nil {
			return nil, err
		}
		for _, class := range role.Classes {
			ind.AddType(class)
		}
	}

	for _, link := range links {
		pred, ok := rico.Lookup(link.Connector.Label)
		if !ok {
			return nil, &UnknownPredicateError{ConnectorID: link.Connector.ID, Label: strings.TrimSpace(link.Connector.Label)}
		}
		subject, err := a.individual(doc, link.Source)
		if err != nil {
			return nil, err
		}

		var obj ontology.Object
		switch pred.Kind {
		case rico.KindObject, rico.KindSameAs:
			target, err := a.individual(doc, link.Target)
			if err != nil {
				return nil, err
			}
			obj.Individual = target.Name
		case rico.KindDatatype:
			e := a.Literal(link.Target, a.opts.InferTypes)
			obj.Literal = &ontology.Literal{Value: e.Content, Datatype: e.Datatype}
		case rico.KindAnnotation:
			e := a.Literal(link.Target, false)
			obj.Literal = &ontology.Literal{Value: e.Content}
		}

		if !subject.AddFact(ontology.Fact{Predicate: pred, Object: obj}) {
			a.logger.Debug("Dropping duplicate fact",
				"connector", link.Connector.ID, "subject", subject.Name, "predicate", pred.CURIE())
		}
	}
	return doc, nil
}

// Individual resolves a shape to a named individual entity.
func (a *Assembler) Individual(role *classify.Role) (ontology.ResolvedEntity, error) {
	content := normalize.Text(role.Label)
	name, err := a.names.Name(content)
	if err != nil {
		return ontology.ResolvedEntity{}, fmt.Errorf("name shape %q: %w", role.Shape.ID, err)
	}
	return ontology.ResolvedEntity{
		ShapeID: role.Shape.ID,
		Kind:    ontology.KindIndividual,
		Name:    name,
		Label:   normalize.Label(role.Label),
		Content: content,
	}, nil
}

// Literal resolves a shape to a literal entity holding its normalized text.
func (a *Assembler) Literal(role *classify.Role, infer bool) ontology.ResolvedEntity {
	lit := normalize.Literal(role.Label, infer)
	return ontology.ResolvedEntity{
		ShapeID:  role.Shape.ID,
		Kind:     ontology.KindLiteral,
		Label:    normalize.Label(role.Label),
		Content:  lit.Value,
		Datatype: lit.Datatype,
	}
}

func (a *Assembler) individual(doc *ontology.Document, role *classify.Role) (*ontology.Individual, error) {
	e, err := a.Individual(role)
	if err != nil {
		return nil, err
	}
	return doc.Individual(e.Name, e.Label), nil
}
