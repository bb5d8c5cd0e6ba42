package obo

// TypedefClauseVisitor handles every typedef clause kind.
type TypedefClauseVisitor interface {
	EntityClauseVisitor
	VisitDomain(*DomainClause) error
	VisitRange(*RangeClause) error
	VisitHoldsOverChain(*HoldsOverChainClause) error
	VisitIsAntiSymmetric(*IsAntiSymmetricClause) error
	VisitIsCyclic(*IsCyclicClause) error
	VisitIsReflexive(*IsReflexiveClause) error
	VisitIsSymmetric(*IsSymmetricClause) error
	VisitIsAsymmetric(*IsAsymmetricClause) error
	VisitIsTransitive(*IsTransitiveClause) error
	VisitIsFunctional(*IsFunctionalClause) error
	VisitIsInverseFunctional(*IsInverseFunctionalClause) error
	VisitRelationIntersectionOf(*RelationIntersectionOfClause) error
	VisitInverseOf(*InverseOfClause) error
	VisitTransitiveOver(*TransitiveOverClause) error
	VisitEquivalentToChain(*EquivalentToChainClause) error
	VisitDisjointOver(*DisjointOverClause) error
	VisitExpandAssertionTo(*ExpandAssertionToClause) error
	VisitExpandExpressionTo(*ExpandExpressionToClause) error
	VisitIsMetadataTag(*IsMetadataTagClause) error
	VisitIsClassLevel(*IsClassLevelClause) error
}

type DomainClause struct{ Class Ident }

func (*DomainClause) Tag() string                                  { return "domain" }
func (c *DomainClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitDomain(c) }

type RangeClause struct{ Class Ident }

func (*RangeClause) Tag() string                                  { return "range" }
func (c *RangeClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitRange(c) }

type HoldsOverChainClause struct{ First, Second Ident }

func (*HoldsOverChainClause) Tag() string { return "holds_over_chain" }
func (c *HoldsOverChainClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitHoldsOverChain(c)
}

type IsAntiSymmetricClause struct{ Value bool }

func (*IsAntiSymmetricClause) Tag() string { return "is_anti_symmetric" }
func (c *IsAntiSymmetricClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsAntiSymmetric(c)
}

type IsCyclicClause struct{ Value bool }

func (*IsCyclicClause) Tag() string                                  { return "is_cyclic" }
func (c *IsCyclicClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitIsCyclic(c) }

type IsReflexiveClause struct{ Value bool }

func (*IsReflexiveClause) Tag() string { return "is_reflexive" }
func (c *IsReflexiveClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsReflexive(c)
}

type IsSymmetricClause struct{ Value bool }

func (*IsSymmetricClause) Tag() string { return "is_symmetric" }
func (c *IsSymmetricClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsSymmetric(c)
}

type IsAsymmetricClause struct{ Value bool }

func (*IsAsymmetricClause) Tag() string { return "is_asymmetric" }
func (c *IsAsymmetricClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsAsymmetric(c)
}

type IsTransitiveClause struct{ Value bool }

func (*IsTransitiveClause) Tag() string { return "is_transitive" }
func (c *IsTransitiveClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsTransitive(c)
}

type IsFunctionalClause struct{ Value bool }

func (*IsFunctionalClause) Tag() string { return "is_functional" }
func (c *IsFunctionalClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsFunctional(c)
}

type IsInverseFunctionalClause struct{ Value bool }

func (*IsInverseFunctionalClause) Tag() string { return "is_inverse_functional" }
func (c *IsInverseFunctionalClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsInverseFunctional(c)
}

// RelationIntersectionOfClause is the typedef form of intersection_of.
type RelationIntersectionOfClause struct{ Relation Ident }

func (*RelationIntersectionOfClause) Tag() string { return "intersection_of" }
func (c *RelationIntersectionOfClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitRelationIntersectionOf(c)
}

type InverseOfClause struct{ Relation Ident }

func (*InverseOfClause) Tag() string                                  { return "inverse_of" }
func (c *InverseOfClause) AcceptTypedef(v TypedefClauseVisitor) error { return v.VisitInverseOf(c) }

type TransitiveOverClause struct{ Relation Ident }

func (*TransitiveOverClause) Tag() string { return "transitive_over" }
func (c *TransitiveOverClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitTransitiveOver(c)
}

type EquivalentToChainClause struct{ First, Second Ident }

func (*EquivalentToChainClause) Tag() string { return "equivalent_to_chain" }
func (c *EquivalentToChainClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitEquivalentToChain(c)
}

type DisjointOverClause struct{ Relation Ident }

func (*DisjointOverClause) Tag() string { return "disjoint_over" }
func (c *DisjointOverClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitDisjointOver(c)
}

type ExpandAssertionToClause struct {
	Text  string
	Xrefs Xrefs
}

func (*ExpandAssertionToClause) Tag() string { return "expand_assertion_to" }
func (c *ExpandAssertionToClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitExpandAssertionTo(c)
}

type ExpandExpressionToClause struct {
	Text  string
	Xrefs Xrefs
}

func (*ExpandExpressionToClause) Tag() string { return "expand_expression_to" }
func (c *ExpandExpressionToClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitExpandExpressionTo(c)
}

type IsMetadataTagClause struct{ Value bool }

func (*IsMetadataTagClause) Tag() string { return "is_metadata_tag" }
func (c *IsMetadataTagClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsMetadataTag(c)
}

type IsClassLevelClause struct{ Value bool }

func (*IsClassLevelClause) Tag() string { return "is_class_level" }
func (c *IsClassLevelClause) AcceptTypedef(v TypedefClauseVisitor) error {
	return v.VisitIsClassLevel(c)
}
