package obo

// TermClause is one clause of a [Term] frame.
type TermClause interface {
	Tag() string
	AcceptTerm(v TermClauseVisitor) error
}

// TypedefClause is one clause of a [Typedef] frame.
type TypedefClause interface {
	Tag() string
	AcceptTypedef(v TypedefClauseVisitor) error
}

// EntityClauseVisitor handles the clause kinds shared by term and typedef
// frames.
type EntityClauseVisitor interface {
	VisitIsAnonymous(*IsAnonymousClause) error
	VisitName(*NameClause) error
	VisitNamespace(*NamespaceClause) error
	VisitAltID(*AltIDClause) error
	VisitDef(*DefClause) error
	VisitComment(*CommentClause) error
	VisitSubset(*SubsetClause) error
	VisitSynonym(*SynonymClause) error
	VisitXref(*XrefClause) error
	VisitPropertyValue(*PropertyValueClause) error
	VisitBuiltin(*BuiltinClause) error
	VisitIsA(*IsAClause) error
	VisitUnionOf(*UnionOfClause) error
	VisitEquivalentTo(*EquivalentToClause) error
	VisitDisjointFrom(*DisjointFromClause) error
	VisitRelationship(*RelationshipClause) error
	VisitIsObsolete(*IsObsoleteClause) error
	VisitReplacedBy(*ReplacedByClause) error
	VisitConsider(*ConsiderClause) error
	VisitCreatedBy(*CreatedByClause) error
	VisitCreationDate(*CreationDateClause) error
}

// TermClauseVisitor handles every term clause kind.
type TermClauseVisitor interface {
	EntityClauseVisitor
	VisitIntersectionOf(*IntersectionOfClause) error
}

// =============================================================================
// Shared clauses
// =============================================================================

type IsAnonymousClause struct{ Value bool }

func (*IsAnonymousClause) Tag() string                                  { return "is_anonymous" }
func (c *IsAnonymousClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitIsAnonymous(c) }
func (c *IsAnonymousClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitIsAnonymous(c) }

type NameClause struct{ Name string }

func (*NameClause) Tag() string                                  { return "name" }
func (c *NameClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitName(c) }
func (c *NameClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitName(c) }

type NamespaceClause struct{ Namespace Ident }

func (*NamespaceClause) Tag() string                                  { return "namespace" }
func (c *NamespaceClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitNamespace(c) }
func (c *NamespaceClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitNamespace(c) }

type AltIDClause struct{ ID Ident }

func (*AltIDClause) Tag() string                                  { return "alt_id" }
func (c *AltIDClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitAltID(c) }
func (c *AltIDClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitAltID(c) }

type DefClause struct{ Definition Definition }

func (*DefClause) Tag() string                                  { return "def" }
func (c *DefClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitDef(c) }
func (c *DefClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitDef(c) }

type CommentClause struct{ Text string }

func (*CommentClause) Tag() string                                  { return "comment" }
func (c *CommentClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitComment(c) }
func (c *CommentClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitComment(c) }

type SubsetClause struct{ Subset Ident }

func (*SubsetClause) Tag() string                                  { return "subset" }
func (c *SubsetClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitSubset(c) }
func (c *SubsetClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitSubset(c) }

type SynonymClause struct{ Synonym Synonym }

func (*SynonymClause) Tag() string                                  { return "synonym" }
func (c *SynonymClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitSynonym(c) }
func (c *SynonymClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitSynonym(c) }

type XrefClause struct{ Xref Xref }

func (*XrefClause) Tag() string                                  { return "xref" }
func (c *XrefClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitXref(c) }
func (c *XrefClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitXref(c) }

type PropertyValueClause struct{ Value PropertyValue }

func (*PropertyValueClause) Tag() string { return "property_value" }
func (c *PropertyValueClause) AcceptTerm(v TermClauseVisitor) error {
	return v.VisitPropertyValue(c)
}
func (c *PropertyValueClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitPropertyValue(c)
}

type BuiltinClause struct{ Value bool }

func (*BuiltinClause) Tag() string                                  { return "builtin" }
func (c *BuiltinClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitBuiltin(c) }
func (c *BuiltinClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitBuiltin(c) }

// IsAClause names a superclass (terms) or super-property (typedefs).
type IsAClause struct{ Target Ident }

func (*IsAClause) Tag() string                                  { return "is_a" }
func (c *IsAClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitIsA(c) }
func (c *IsAClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitIsA(c) }

type UnionOfClause struct{ Target Ident }

func (*UnionOfClause) Tag() string                                  { return "union_of" }
func (c *UnionOfClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitUnionOf(c) }
func (c *UnionOfClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitUnionOf(c) }

type EquivalentToClause struct{ Target Ident }

func (*EquivalentToClause) Tag() string                            { return "equivalent_to" }
func (c *EquivalentToClause) AcceptTerm(v TermClauseVisitor) error { return v.VisitEquivalentTo(c) }
func (c *EquivalentToClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitEquivalentTo(c)
}

type DisjointFromClause struct{ Target Ident }

func (*DisjointFromClause) Tag() string                            { return "disjoint_from" }
func (c *DisjointFromClause) AcceptTerm(v TermClauseVisitor) error { return v.VisitDisjointFrom(c) }
func (c *DisjointFromClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitDisjointFrom(c)
}

type RelationshipClause struct {
	Relation Ident
	Target   Ident
}

func (*RelationshipClause) Tag() string                            { return "relationship" }
func (c *RelationshipClause) AcceptTerm(v TermClauseVisitor) error { return v.VisitRelationship(c) }
func (c *RelationshipClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitRelationship(c)
}

type IsObsoleteClause struct{ Value bool }

func (*IsObsoleteClause) Tag() string                                  { return "is_obsolete" }
func (c *IsObsoleteClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitIsObsolete(c) }
func (c *IsObsoleteClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitIsObsolete(c) }

type ReplacedByClause struct{ Target Ident }

func (*ReplacedByClause) Tag() string                                  { return "replaced_by" }
func (c *ReplacedByClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitReplacedBy(c) }
func (c *ReplacedByClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitReplacedBy(c) }

type ConsiderClause struct{ Target Ident }

func (*ConsiderClause) Tag() string                                  { return "consider" }
func (c *ConsiderClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitConsider(c) }
func (c *ConsiderClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitConsider(c) }

type CreatedByClause struct{ Name string }

func (*CreatedByClause) Tag() string                                  { return "created_by" }
func (c *CreatedByClause) AcceptTerm(v TermClauseVisitor) error       { return v.VisitCreatedBy(c) }
func (c *CreatedByClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitCreatedBy(c) }

type CreationDateClause struct{ Date CreationDate }

func (*CreationDateClause) Tag() string                            { return "creation_date" }
func (c *CreationDateClause) AcceptTerm(v TermClauseVisitor) error { return v.VisitCreationDate(c) }
func (c *CreationDateClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitCreationDate(c)
}

// =============================================================================
// Term-only clauses
// =============================================================================

// IntersectionOfClause is either a genus (Relation nil) or a differentia.
type IntersectionOfClause struct {
	Relation Ident
	Target   Ident
}

func (*IntersectionOfClause) Tag() string                            { return "intersection_of" }
func (c *IntersectionOfClause) AcceptTerm(v TermClauseVisitor) error { return v.VisitIntersectionOf(c) }
