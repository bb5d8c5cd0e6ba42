package owl

// IRI is an absolute internationalized resource identifier.
type IRI string

func (i IRI) String() string { return string(i) }

// Well-known namespaces.
const (
	NSDC       = "http://purl.org/dc/elements/1.1/"
	NSOBO      = "http://purl.obolibrary.org/obo/"
	NSOboInOwl = "http://www.geneontology.org/formats/oboInOwl#"
	NSOWL      = "http://www.w3.org/2002/07/owl#"
	NSRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NSXML      = "http://www.w3.org/XML/1998/namespace"
	NSXSD      = "http://www.w3.org/2001/XMLSchema#"
)

// Datatypes.
const (
	XSDString   IRI = NSXSD + "string"
	XSDBoolean  IRI = NSXSD + "boolean"
	XSDDate     IRI = NSXSD + "date"
	XSDDateTime IRI = NSXSD + "dateTime"
	RDFSLiteral IRI = NSRDFS + "Literal"
)

// Built-in properties and classes.
const (
	RDFSLabel          IRI = NSRDFS + "label"
	RDFSComment        IRI = NSRDFS + "comment"
	RDFSSeeAlso        IRI = NSRDFS + "seeAlso"
	OWLThing           IRI = NSOWL + "Thing"
	OWLNothing         IRI = NSOWL + "Nothing"
	OWLDeprecated      IRI = NSOWL + "deprecated"
	OWLVersionInfo     IRI = NSOWL + "versionInfo"
	DCCreator          IRI = NSDC + "creator"
	DCDate             IRI = NSDC + "date"
	IAODefinition      IRI = NSOBO + "IAO_0000115"
	IAOReplacedBy      IRI = NSOBO + "IAO_0100001"
	IAOExpandExpr      IRI = NSOBO + "IAO_0000424"
	IAOExpandAssert    IRI = NSOBO + "IAO_0000425"
	IAOIsAntiSymmetric IRI = NSOBO + "IAO_0000427"
)

// oboInOwl vocabulary.
const (
	OboInOwlID                  IRI = NSOboInOwl + "id"
	OboInOwlHasOBOFormatVersion IRI = NSOboInOwl + "hasOBOFormatVersion"
	OboInOwlHasDate             IRI = NSOboInOwl + "hasDate"
	OboInOwlSavedBy             IRI = NSOboInOwl + "savedBy"
	OboInOwlAutoGeneratedBy     IRI = NSOboInOwl + "autoGeneratedBy"
	OboInOwlHasDefaultNamespace IRI = NSOboInOwl + "hasDefaultNamespace"
	OboInOwlNamespaceIDRule     IRI = NSOboInOwl + "NamespaceIdRule"
	OboInOwlSubsetProperty      IRI = NSOboInOwl + "SubsetProperty"
	OboInOwlSynonymTypeProperty IRI = NSOboInOwl + "SynonymTypeProperty"
	OboInOwlHasScope            IRI = NSOboInOwl + "hasScope"
	OboInOwlHasOBONamespace     IRI = NSOboInOwl + "hasOBONamespace"
	OboInOwlHasAlternativeID    IRI = NSOboInOwl + "hasAlternativeId"
	OboInOwlHasDbXref           IRI = NSOboInOwl + "hasDbXref"
	OboInOwlInSubset            IRI = NSOboInOwl + "inSubset"
	OboInOwlConsider            IRI = NSOboInOwl + "consider"
	OboInOwlHasExactSynonym     IRI = NSOboInOwl + "hasExactSynonym"
	OboInOwlHasBroadSynonym     IRI = NSOboInOwl + "hasBroadSynonym"
	OboInOwlHasNarrowSynonym    IRI = NSOboInOwl + "hasNarrowSynonym"
	OboInOwlHasRelatedSynonym   IRI = NSOboInOwl + "hasRelatedSynonym"
	OboInOwlHasSynonymType      IRI = NSOboInOwl + "hasSynonymType"
	OboInOwlIsCyclic            IRI = NSOboInOwl + "is_cyclic"
	OboInOwlDisjointOver        IRI = NSOboInOwl + "disjoint_over"
	OboInOwlOntology            IRI = "http://www.geneontology.org/formats/oboInOwl"
)
