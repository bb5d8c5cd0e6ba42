package translate

import (
	"fmt"

	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// typedefTranslator translates one [Typedef] frame. A typedef with
// is_metadata_tag: true becomes an annotation property, any other an
// object property.
type typedefTranslator struct {
	frameTranslator
}

var _ obo.TypedefClauseVisitor = (*typedefTranslator)(nil)

func translateTypedef(ctx *Context, f *obo.TypedefFrame) *typedefTranslator {
	iri := ctx.ResolveRelation(f.ID)
	ctx.enter(f.ID, iri, f.IsMetadataTag())
	t := &typedefTranslator{frameTranslator{ctx: ctx}}

	if ctx.inAnnotation {
		t.add(owl.Declaration{Entity: owl.AnnotationProperty(iri)})
	} else {
		t.add(owl.Declaration{Entity: owl.ObjectProperty(iri)})
	}
	t.assert(owl.OboInOwlID, Literal(f.ID.String()))

	for _, l := range f.Clauses {
		t.quals = l.Qualifiers
		if err := l.Clause.AcceptTypedef(t); err != nil {
			t.fail(err)
		}
	}
	t.quals = nil
	return t
}

func (t *typedefTranslator) property() owl.ObjectProperty {
	return owl.ObjectProperty(t.ctx.currentFrame)
}

func (t *typedefTranslator) annotationProperty() owl.AnnotationProperty {
	return owl.AnnotationProperty(t.ctx.currentFrame)
}

func (t *typedefTranslator) relation(id obo.Ident) owl.ObjectProperty {
	return owl.ObjectProperty(t.ctx.ResolveRelation(id))
}

// objectOnly reports whether the clause can be translated, warning when the
// frame is an annotation property.
func (t *typedefTranslator) objectOnly(tag string) bool {
	if t.ctx.inAnnotation {
		t.warn(fmt.Sprintf("%s skipped on annotation property", tag))
		return false
	}
	return true
}

func (t *typedefTranslator) VisitIsA(c *obo.IsAClause) error {
	if t.ctx.inAnnotation {
		t.add(owl.SubAnnotationPropertyOf{
			Sub:   t.annotationProperty(),
			Super: owl.AnnotationProperty(t.ctx.ResolveRelation(c.Target)),
		})
		return nil
	}
	t.add(owl.SubObjectPropertyOf{Sub: t.property(), Super: t.relation(c.Target)})
	return nil
}

// VisitEquivalentTo emits EquivalentObjectProperties, or two
// SubAnnotationPropertyOf axioms for annotation properties.
func (t *typedefTranslator) VisitEquivalentTo(c *obo.EquivalentToClause) error {
	other := t.ctx.ResolveRelation(c.Target)
	if t.ctx.inAnnotation {
		self := t.annotationProperty()
		t.add(owl.SubAnnotationPropertyOf{Sub: self, Super: owl.AnnotationProperty(other)})
		t.add(owl.SubAnnotationPropertyOf{Sub: owl.AnnotationProperty(other), Super: self})
		return nil
	}
	t.add(owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{
		t.property(), owl.ObjectProperty(other),
	}})
	return nil
}

func (t *typedefTranslator) VisitDisjointFrom(c *obo.DisjointFromClause) error {
	if !t.objectOnly("disjoint_from") {
		return nil
	}
	t.add(owl.DisjointObjectProperties{Properties: []owl.ObjectPropertyExpression{
		t.property(), t.relation(c.Target),
	}})
	return nil
}

func (t *typedefTranslator) VisitDomain(c *obo.DomainClause) error {
	cls := t.ctx.Resolve(c.Class)
	if t.ctx.inAnnotation {
		t.add(owl.AnnotationPropertyDomain{Property: t.annotationProperty(), Domain: cls})
		return nil
	}
	t.add(owl.ObjectPropertyDomain{Property: t.property(), Class: owl.Class(cls)})
	return nil
}

func (t *typedefTranslator) VisitRange(c *obo.RangeClause) error {
	cls := t.ctx.Resolve(c.Class)
	if t.ctx.inAnnotation {
		t.add(owl.AnnotationPropertyRange{Property: t.annotationProperty(), Range: cls})
		return nil
	}
	t.add(owl.ObjectPropertyRange{Property: t.property(), Class: owl.Class(cls)})
	return nil
}

func (t *typedefTranslator) characteristic(tag string, set bool, k owl.Kind) error {
	if !set || !t.objectOnly(tag) {
		return nil
	}
	t.add(owl.Characteristic(k, t.property()))
	return nil
}

func (t *typedefTranslator) VisitIsReflexive(c *obo.IsReflexiveClause) error {
	return t.characteristic("is_reflexive", c.Value, owl.KindReflexiveObjectProperty)
}

func (t *typedefTranslator) VisitIsSymmetric(c *obo.IsSymmetricClause) error {
	return t.characteristic("is_symmetric", c.Value, owl.KindSymmetricObjectProperty)
}

func (t *typedefTranslator) VisitIsAsymmetric(c *obo.IsAsymmetricClause) error {
	return t.characteristic("is_asymmetric", c.Value, owl.KindAsymmetricObjectProperty)
}

func (t *typedefTranslator) VisitIsTransitive(c *obo.IsTransitiveClause) error {
	return t.characteristic("is_transitive", c.Value, owl.KindTransitiveObjectProperty)
}

func (t *typedefTranslator) VisitIsFunctional(c *obo.IsFunctionalClause) error {
	return t.characteristic("is_functional", c.Value, owl.KindFunctionalObjectProperty)
}

func (t *typedefTranslator) VisitIsInverseFunctional(c *obo.IsInverseFunctionalClause) error {
	return t.characteristic("is_inverse_functional", c.Value, owl.KindInverseFunctionalObjectProperty)
}

func (t *typedefTranslator) VisitIsAntiSymmetric(c *obo.IsAntiSymmetricClause) error {
	if c.Value {
		t.assert(owl.IAOIsAntiSymmetric, owl.BoolLiteral(true))
	}
	return nil
}

func (t *typedefTranslator) VisitIsCyclic(c *obo.IsCyclicClause) error {
	if c.Value {
		t.assert(owl.OboInOwlIsCyclic, owl.BoolLiteral(true))
	}
	return nil
}

func (t *typedefTranslator) chain(first, second obo.Ident) owl.ObjectPropertyChain {
	return owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{
		t.relation(first), t.relation(second),
	}}
}

func (t *typedefTranslator) VisitHoldsOverChain(c *obo.HoldsOverChainClause) error {
	if t.objectOnly("holds_over_chain") {
		t.add(owl.SubObjectPropertyOf{Sub: t.chain(c.First, c.Second), Super: t.property()})
	}
	return nil
}

// VisitEquivalentToChain only asserts the chain as a sub-property; OWL has
// no equivalence between a property and a chain.
func (t *typedefTranslator) VisitEquivalentToChain(c *obo.EquivalentToChainClause) error {
	if t.objectOnly("equivalent_to_chain") {
		t.add(owl.SubObjectPropertyOf{Sub: t.chain(c.First, c.Second), Super: t.property()})
	}
	return nil
}

func (t *typedefTranslator) VisitTransitiveOver(c *obo.TransitiveOverClause) error {
	if !t.objectOnly("transitive_over") {
		return nil
	}
	t.add(owl.SubObjectPropertyOf{
		Sub: owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{
			t.property(), t.relation(c.Relation),
		}},
		Super: t.property(),
	})
	return nil
}

func (t *typedefTranslator) VisitInverseOf(c *obo.InverseOfClause) error {
	if t.objectOnly("inverse_of") {
		t.add(owl.InverseObjectProperties{First: t.property(), Second: t.relation(c.Relation)})
	}
	return nil
}

func (t *typedefTranslator) VisitRelationIntersectionOf(c *obo.RelationIntersectionOfClause) error {
	if !t.objectOnly("intersection_of") {
		return nil
	}
	t.add(owl.SubObjectPropertyOf{Sub: t.property(), Super: t.relation(c.Relation)})
	t.warn("intersection_of approximated as SubObjectPropertyOf")
	return nil
}

func (t *typedefTranslator) VisitUnionOf(c *obo.UnionOfClause) error {
	if !t.objectOnly("union_of") {
		return nil
	}
	t.add(owl.SubObjectPropertyOf{Sub: t.relation(c.Target), Super: t.property()})
	t.warn("union_of approximated as SubObjectPropertyOf")
	return nil
}

func (t *typedefTranslator) VisitDisjointOver(c *obo.DisjointOverClause) error {
	t.assert(owl.OboInOwlDisjointOver, t.ctx.ResolveRelation(c.Relation))
	t.warn("disjoint_over approximated as annotation")
	return nil
}

// VisitRelationship records the relation as an annotation on the property.
func (t *typedefTranslator) VisitRelationship(c *obo.RelationshipClause) error {
	t.assert(t.ctx.ResolveRelation(c.Relation), t.ctx.Resolve(c.Target))
	return nil
}

func (t *typedefTranslator) VisitExpandAssertionTo(c *obo.ExpandAssertionToClause) error {
	t.add(t.ctx.assertion(owl.IAOExpandAssert, Literal(c.Text)), t.ctx.XrefAnnotations(c.Xrefs)...)
	return nil
}

func (t *typedefTranslator) VisitExpandExpressionTo(c *obo.ExpandExpressionToClause) error {
	t.add(t.ctx.assertion(owl.IAOExpandExpr, Literal(c.Text)), t.ctx.XrefAnnotations(c.Xrefs)...)
	return nil
}

// Both flags were consumed by NewContext.
func (t *typedefTranslator) VisitIsMetadataTag(*obo.IsMetadataTagClause) error { return nil }
func (t *typedefTranslator) VisitIsClassLevel(*obo.IsClassLevelClause) error   { return nil }
