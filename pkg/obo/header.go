package obo

// HeaderClause is one line of the header frame.
type HeaderClause interface {
	Tag() string
	AcceptHeader(v HeaderClauseVisitor) error
}

// HeaderClauseVisitor handles every header clause kind.
type HeaderClauseVisitor interface {
	VisitFormatVersion(*FormatVersionClause) error
	VisitDataVersion(*DataVersionClause) error
	VisitDate(*DateClause) error
	VisitSavedBy(*SavedByClause) error
	VisitAutoGeneratedBy(*AutoGeneratedByClause) error
	VisitImport(*ImportClause) error
	VisitSubsetdef(*SubsetdefClause) error
	VisitSynonymTypedef(*SynonymTypedefClause) error
	VisitDefaultNamespace(*DefaultNamespaceClause) error
	VisitNamespaceIDRule(*NamespaceIDRuleClause) error
	VisitIdspace(*IdspaceClause) error
	VisitTreatXrefs(*TreatXrefsClause) error
	VisitHeaderPropertyValue(*HeaderPropertyValueClause) error
	VisitRemark(*RemarkClause) error
	VisitOntology(*OntologyClause) error
	VisitOwlAxioms(*OwlAxiomsClause) error
	VisitUnreserved(*UnreservedClause) error
}

type FormatVersionClause struct{ Version string }

func (*FormatVersionClause) Tag() string { return "format-version" }
func (c *FormatVersionClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitFormatVersion(c)
}

type DataVersionClause struct{ Version string }

func (*DataVersionClause) Tag() string { return "data-version" }
func (c *DataVersionClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitDataVersion(c)
}

type DateClause struct{ Date NaiveDateTime }

func (*DateClause) Tag() string                                { return "date" }
func (c *DateClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitDate(c) }

type SavedByClause struct{ Name string }

func (*SavedByClause) Tag() string                                { return "saved-by" }
func (c *SavedByClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitSavedBy(c) }

type AutoGeneratedByClause struct{ Name string }

func (*AutoGeneratedByClause) Tag() string { return "auto-generated-by" }
func (c *AutoGeneratedByClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitAutoGeneratedBy(c)
}

// ImportClause references another ontology, either by URL or by an
// abbreviated ontology id such as "go".
type ImportClause struct{ Import Ident }

func (*ImportClause) Tag() string                                { return "import" }
func (c *ImportClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitImport(c) }

type SubsetdefClause struct {
	Subset Ident
	Desc   string
}

func (*SubsetdefClause) Tag() string                                { return "subsetdef" }
func (c *SubsetdefClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitSubsetdef(c) }

type SynonymTypedefClause struct {
	Type  Ident
	Desc  string
	Scope *SynonymScope
}

func (*SynonymTypedefClause) Tag() string { return "synonymtypedef" }
func (c *SynonymTypedefClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitSynonymTypedef(c)
}

type DefaultNamespaceClause struct{ Namespace Ident }

func (*DefaultNamespaceClause) Tag() string { return "default-namespace" }
func (c *DefaultNamespaceClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitDefaultNamespace(c)
}

type NamespaceIDRuleClause struct{ Rule string }

func (*NamespaceIDRuleClause) Tag() string { return "namespace-id-rule" }
func (c *NamespaceIDRuleClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitNamespaceIDRule(c)
}

// IdspaceClause maps an identifier prefix to a base URL.
type IdspaceClause struct {
	Prefix string
	URL    string
	Desc   string
}

func (*IdspaceClause) Tag() string                                { return "idspace" }
func (c *IdspaceClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitIdspace(c) }

// TreatXrefsKind selects one of the treat-xrefs-as-* header macros.
type TreatXrefsKind int

const (
	TreatAsEquivalent TreatXrefsKind = iota
	TreatAsGenusDifferentia
	TreatAsReverseGenusDifferentia
	TreatAsRelationship
	TreatAsIsA
	TreatAsHasSubclass
)

var treatXrefsTags = [...]string{
	TreatAsEquivalent:              "treat-xrefs-as-equivalent",
	TreatAsGenusDifferentia:        "treat-xrefs-as-genus-differentia",
	TreatAsReverseGenusDifferentia: "treat-xrefs-as-reverse-genus-differentia",
	TreatAsRelationship:            "treat-xrefs-as-relationship",
	TreatAsIsA:                     "treat-xrefs-as-is_a",
	TreatAsHasSubclass:             "treat-xrefs-as-has-subclass",
}

// TreatXrefsClause is a treat-xrefs-as-* macro. Relation is set for the
// relationship and genus-differentia kinds, Filler for the latter only.
type TreatXrefsClause struct {
	Kind     TreatXrefsKind
	Prefix   string
	Relation Ident
	Filler   Ident
}

func (c *TreatXrefsClause) Tag() string                              { return treatXrefsTags[c.Kind] }
func (c *TreatXrefsClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitTreatXrefs(c) }

type HeaderPropertyValueClause struct{ Value PropertyValue }

func (*HeaderPropertyValueClause) Tag() string { return "property_value" }
func (c *HeaderPropertyValueClause) AcceptHeader(v HeaderClauseVisitor) error {
	return v.VisitHeaderPropertyValue(c)
}

type RemarkClause struct{ Text string }

func (*RemarkClause) Tag() string                                { return "remark" }
func (c *RemarkClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitRemark(c) }

type OntologyClause struct{ Name string }

func (*OntologyClause) Tag() string                                { return "ontology" }
func (c *OntologyClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitOntology(c) }

// OwlAxiomsClause holds raw OWL functional-syntax text.
type OwlAxiomsClause struct{ Text string }

func (*OwlAxiomsClause) Tag() string                                { return "owl-axioms" }
func (c *OwlAxiomsClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitOwlAxioms(c) }

// UnreservedClause is any header tag outside the OBO 1.4 vocabulary.
type UnreservedClause struct {
	Key   string
	Value string
}

func (c *UnreservedClause) Tag() string                              { return c.Key }
func (c *UnreservedClause) AcceptHeader(v HeaderClauseVisitor) error { return v.VisitUnreserved(c) }

// Header is the ordered list of header clauses.
type Header []HeaderClause

// Ontology returns the value of the single ontology clause.
func (h Header) Ontology() (string, error) {
	c, err := single[*OntologyClause](h, "ontology")
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// DataVersion returns the value of the single data-version clause.
func (h Header) DataVersion() (string, error) {
	c, err := single[*DataVersionClause](h, "data-version")
	if err != nil {
		return "", err
	}
	return c.Version, nil
}

// DefaultNamespace returns the value of the single default-namespace clause.
func (h Header) DefaultNamespace() (Ident, error) {
	c, err := single[*DefaultNamespaceClause](h, "default-namespace")
	if err != nil {
		return nil, err
	}
	return c.Namespace, nil
}

func single[T HeaderClause](h Header, tag string) (T, error) {
	var (
		found T
		n     int
	)
	for _, c := range h {
		if t, ok := c.(T); ok {
			if n == 0 {
				found = t
			}
			n++
		}
	}
	switch {
	case n == 0:
		return found, &CardinalityError{Tag: tag, Missing: true}
	case n > 1:
		return found, &CardinalityError{Tag: tag}
	}
	return found, nil
}
