package rico

// Classes lists the local names of every class defined by RiC-O 1.0.
var Classes = []string{
	"AccumulationRelation",
	"Activity",
	"ActivityDocumentationRelation",
	"ActivityType",
	"Agent",
	"AgentControlRelation",
	"AgentHierarchicalRelation",
	"AgentName",
	"AgentTemporalRelation",
	"AgentToAgentRelation",
	"Appellation",
	"AppellationRelation",
	"AuthorityRelation",
	"AuthorshipRelation",
	"CarrierExtent",
	"CarrierType",
	"ChildRelation",
	"Concept",
	"ContentType",
	"Coordinates",
	"CorporateBody",
	"CorporateBodyType",
	"CorrespondenceRelation",
	"CreationRelation",
	"Date",
	"DateType",
	"DemographicGroup",
	"DerivationRelation",
	"DescendanceRelation",
	"DocumentaryFormType",
	"Event",
	"EventRelation",
	"EventType",
	"Extent",
	"ExtentType",
	"Family",
	"FamilyRelation",
	"FamilyType",
	"FunctionalEquivalenceRelation",
	"Group",
	"GroupSubdivisionRelation",
	"Identifier",
	"IdentifierType",
	"Instantiation",
	"InstantiationExtent",
	"InstantiationToInstantiationRelation",
	"IntellectualPropertyRightsRelation",
	"KnowingOfRelation",
	"KnowingRelation",
	"Language",
	"LeadershipRelation",
	"LegalStatus",
	"ManagementRelation",
	"Mandate",
	"MandateRelation",
	"MandateType",
	"Mechanism",
	"MembershipRelation",
	"MigrationRelation",
	"Name",
	"OccupationType",
	"OrganicOrFunctionalProvenanceRelation",
	"OrganicProvenanceRelation",
	"OwnershipRelation",
	"PerformanceRelation",
	"Person",
	"PhysicalLocation",
	"Place",
	"PlaceName",
	"PlaceRelation",
	"PlaceType",
	"Position",
	"PositionHoldingRelation",
	"PositionToGroupRelation",
	"ProductionTechniqueType",
	"Proxy",
	"Record",
	"RecordPart",
	"RecordResource",
	"RecordResourceExtent",
	"RecordResourceGeneticRelation",
	"RecordResourceHoldingRelation",
	"RecordResourceToInstantiationRelation",
	"RecordResourceToRecordResourceRelation",
	"RecordSet",
	"RecordSetType",
	"RecordState",
	"Relation",
	"RepresentationType",
	"RoleType",
	"Rule",
	"RuleRelation",
	"RuleType",
	"SequentialRelation",
	"SiblingRelation",
	"SpouseRelation",
	"TeachingRelation",
	"TemporalRelation",
	"Thing",
	"Title",
	"Type",
	"TypeRelation",
	"UnitOfMeasurement",
	"WholePartRelation",
	"WorkRelation",
}

var classSet = toSet(Classes)

// IsClass reports whether name is the local name of a RiC-O class.
func IsClass(name string) bool {
	return classSet[name]
}

// ClassIRI returns the full IRI of a RiC-O class.
func ClassIRI(name string) string {
	return Namespace + name
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
