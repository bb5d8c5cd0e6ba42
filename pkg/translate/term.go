package translate

import (
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// frameTranslator carries what term and typedef translation share: the
// output buffer, the qualifiers of the clause being visited, and the
// errors and warnings collected so far.
type frameTranslator struct {
	ctx      *Context
	out      []owl.AnnotatedComponent
	quals    obo.Qualifiers
	errs     []error
	warnings []Warning
}

// add emits c annotated with anns and the current clause's qualifiers.
func (t *frameTranslator) add(c owl.Component, anns ...owl.Annotation) {
	anns = append(anns, t.ctx.QualifierAnnotations(t.quals)...)
	t.out = append(t.out, owl.Annotated(c, anns...))
}

// addAnnotated emits a prebuilt component, merging in the qualifiers.
func (t *frameTranslator) addAnnotated(ac owl.AnnotatedComponent) {
	t.add(ac.Component, ac.Annotations...)
}

func (t *frameTranslator) assert(p owl.IRI, v owl.AnnotationValue) {
	t.add(t.ctx.assertion(p, v))
}

func (t *frameTranslator) warn(msg string) {
	t.warnings = append(t.warnings, Warning{Frame: t.ctx.frameID, Message: msg})
}

func (t *frameTranslator) fail(err error) {
	t.errs = append(t.errs, err)
}

// Clauses shared by terms and typedefs.

func (t *frameTranslator) VisitIsAnonymous(*obo.IsAnonymousClause) error { return nil }
func (t *frameTranslator) VisitBuiltin(*obo.BuiltinClause) error         { return nil }

func (t *frameTranslator) VisitName(c *obo.NameClause) error {
	t.assert(owl.RDFSLabel, Literal(c.Name))
	return nil
}

func (t *frameTranslator) VisitNamespace(c *obo.NamespaceClause) error {
	t.assert(owl.OboInOwlHasOBONamespace, Literal(c.Namespace.String()))
	return nil
}

func (t *frameTranslator) VisitAltID(c *obo.AltIDClause) error {
	t.assert(owl.OboInOwlHasAlternativeID, Literal(c.ID.String()))
	return nil
}

func (t *frameTranslator) VisitDef(c *obo.DefClause) error {
	t.addAnnotated(t.ctx.Definition(c.Definition))
	return nil
}

func (t *frameTranslator) VisitComment(c *obo.CommentClause) error {
	t.assert(owl.RDFSComment, Literal(c.Text))
	return nil
}

func (t *frameTranslator) VisitSubset(c *obo.SubsetClause) error {
	t.assert(owl.OboInOwlInSubset, t.ctx.Resolve(c.Subset))
	return nil
}

func (t *frameTranslator) VisitSynonym(c *obo.SynonymClause) error {
	t.addAnnotated(t.ctx.Synonym(c.Synonym))
	return nil
}

func (t *frameTranslator) VisitXref(c *obo.XrefClause) error {
	t.addAnnotated(t.ctx.Xref(c.Xref))
	return nil
}

func (t *frameTranslator) VisitPropertyValue(c *obo.PropertyValueClause) error {
	t.add(owl.AnnotationAssertion{Subject: t.ctx.currentFrame, Annotation: t.ctx.PropertyValue(c.Value)})
	return nil
}

func (t *frameTranslator) VisitIsObsolete(c *obo.IsObsoleteClause) error {
	t.assert(owl.OWLDeprecated, owl.BoolLiteral(c.Value))
	return nil
}

func (t *frameTranslator) VisitReplacedBy(c *obo.ReplacedByClause) error {
	t.assert(owl.IAOReplacedBy, t.ctx.Resolve(c.Target))
	return nil
}

func (t *frameTranslator) VisitConsider(c *obo.ConsiderClause) error {
	t.assert(owl.OboInOwlConsider, t.ctx.Resolve(c.Target))
	return nil
}

func (t *frameTranslator) VisitCreatedBy(c *obo.CreatedByClause) error {
	t.assert(owl.DCCreator, Literal(c.Name))
	return nil
}

func (t *frameTranslator) VisitCreationDate(c *obo.CreationDateClause) error {
	t.assert(owl.DCDate, CreationDateLiteral(c.Date))
	return nil
}

// =============================================================================
// Terms
// =============================================================================

// termTranslator translates one [Term] frame into class axioms.
type termTranslator struct {
	frameTranslator

	intersections    []owl.ClassExpression
	intersectionAnns []owl.Annotation
	unions           []owl.ClassExpression
	unionAnns        []owl.Annotation
}

var _ obo.TermClauseVisitor = (*termTranslator)(nil)

// translateTerm declares the class, records its OBO id and translates each
// clause in order. intersection_of and union_of clauses are merged into
// one EquivalentClasses axiom each.
func translateTerm(ctx *Context, f *obo.TermFrame) *termTranslator {
	ctx.enter(f.ID, ctx.Resolve(f.ID), false)
	t := &termTranslator{frameTranslator: frameTranslator{ctx: ctx}}
	self := owl.Class(ctx.currentFrame)

	t.add(owl.Declaration{Entity: self})
	t.assert(owl.OboInOwlID, Literal(f.ID.String()))

	for _, l := range f.Clauses {
		t.quals = l.Qualifiers
		if err := l.Clause.AcceptTerm(t); err != nil {
			t.fail(err)
		}
	}
	t.quals = nil

	if n := len(t.intersections); n == 1 {
		t.fail(&CardinalityError{Frame: ctx.frameID, Tag: "intersection_of", Msg: "needs at least two clauses"})
	} else if n > 1 {
		t.out = append(t.out, owl.Annotated(owl.EquivalentClasses{Classes: []owl.ClassExpression{
			self, owl.ObjectIntersectionOf{Operands: t.intersections},
		}}, t.intersectionAnns...))
	}
	if n := len(t.unions); n == 1 {
		t.fail(&CardinalityError{Frame: ctx.frameID, Tag: "union_of", Msg: "needs at least two clauses"})
	} else if n > 1 {
		t.out = append(t.out, owl.Annotated(owl.EquivalentClasses{Classes: []owl.ClassExpression{
			self, owl.ObjectUnionOf{Operands: t.unions},
		}}, t.unionAnns...))
	}
	return t
}

func (t *termTranslator) self() owl.Class { return owl.Class(t.ctx.currentFrame) }

func (t *termTranslator) VisitIsA(c *obo.IsAClause) error {
	t.add(owl.SubClassOf{Sub: t.ctx.gci(t.quals), Super: owl.Class(t.ctx.Resolve(c.Target))})
	return nil
}

func (t *termTranslator) VisitEquivalentTo(c *obo.EquivalentToClause) error {
	t.add(owl.EquivalentClasses{Classes: []owl.ClassExpression{t.self(), owl.Class(t.ctx.Resolve(c.Target))}})
	return nil
}

func (t *termTranslator) VisitDisjointFrom(c *obo.DisjointFromClause) error {
	t.add(owl.DisjointClasses{Classes: []owl.ClassExpression{t.self(), owl.Class(t.ctx.Resolve(c.Target))}})
	return nil
}

// VisitRelationship emits SubClassOf(C, expr), or an annotation assertion
// when the relation is a metadata tag.
func (t *termTranslator) VisitRelationship(c *obo.RelationshipClause) error {
	rel := t.ctx.ResolveRelation(c.Relation)
	if t.ctx.IsMetadataTag(rel) {
		t.assert(rel, t.ctx.Resolve(c.Target))
		return nil
	}
	expr, err := t.ctx.Build(t.quals, c.Relation, c.Target)
	if err != nil {
		t.fail(err)
		return nil
	}
	t.add(owl.SubClassOf{Sub: t.ctx.gci(t.quals), Super: expr})
	return nil
}

func (t *termTranslator) VisitIntersectionOf(c *obo.IntersectionOfClause) error {
	var operand owl.ClassExpression
	if c.Relation == nil {
		operand = owl.Class(t.ctx.Resolve(c.Target))
	} else {
		expr, err := t.ctx.Build(t.quals, c.Relation, c.Target)
		if err != nil {
			t.fail(err)
			return nil
		}
		operand = expr
	}
	t.intersections = append(t.intersections, operand)
	t.intersectionAnns = append(t.intersectionAnns, t.ctx.QualifierAnnotations(t.quals)...)
	return nil
}

func (t *termTranslator) VisitUnionOf(c *obo.UnionOfClause) error {
	t.unions = append(t.unions, owl.Class(t.ctx.Resolve(c.Target)))
	t.unionAnns = append(t.unionAnns, t.ctx.QualifierAnnotations(t.quals)...)
	return nil
}
