package owl

import "strconv"

// =============================================================================
// Entities
// =============================================================================

// Entity is a named OWL entity.
type Entity interface {
	Node
	EntityIRI() IRI
	EntityType() string
}

type (
	Class              IRI
	ObjectProperty     IRI
	AnnotationProperty IRI
	NamedIndividual    IRI
	Datatype           IRI
)

func (e Class) EntityIRI() IRI              { return IRI(e) }
func (e ObjectProperty) EntityIRI() IRI     { return IRI(e) }
func (e AnnotationProperty) EntityIRI() IRI { return IRI(e) }
func (e NamedIndividual) EntityIRI() IRI    { return IRI(e) }
func (e Datatype) EntityIRI() IRI           { return IRI(e) }

func (Class) EntityType() string              { return "Class" }
func (ObjectProperty) EntityType() string     { return "ObjectProperty" }
func (AnnotationProperty) EntityType() string { return "AnnotationProperty" }
func (NamedIndividual) EntityType() string    { return "NamedIndividual" }
func (Datatype) EntityType() string           { return "Datatype" }

func (e Class) functional(w *fnWriter)              { w.iri(IRI(e)) }
func (e ObjectProperty) functional(w *fnWriter)     { w.iri(IRI(e)) }
func (e AnnotationProperty) functional(w *fnWriter) { w.iri(IRI(e)) }
func (e NamedIndividual) functional(w *fnWriter)    { w.iri(IRI(e)) }
func (e Datatype) functional(w *fnWriter)           { w.iri(IRI(e)) }

// =============================================================================
// Object property expressions
// =============================================================================

// ObjectPropertyExpression is a named object property or an inverse.
type ObjectPropertyExpression interface {
	Node
	isObjectPropertyExpression()
}

// ObjectInverseOf is the inverse of a named property.
type ObjectInverseOf struct{ Property ObjectProperty }

func (ObjectProperty) isObjectPropertyExpression()  {}
func (ObjectInverseOf) isObjectPropertyExpression() {}

func (e ObjectInverseOf) functional(w *fnWriter) { w.call("ObjectInverseOf", e.Property) }

// SubPropertyExpression is the left side of SubObjectPropertyOf: a property
// expression or a property chain.
type SubPropertyExpression interface {
	Node
	isSubPropertyExpression()
}

// ObjectPropertyChain is r1 o r2 o ... rn.
type ObjectPropertyChain struct{ Properties []ObjectPropertyExpression }

func (ObjectProperty) isSubPropertyExpression()      {}
func (ObjectInverseOf) isSubPropertyExpression()     {}
func (ObjectPropertyChain) isSubPropertyExpression() {}

func (e ObjectPropertyChain) functional(w *fnWriter) {
	w.call("ObjectPropertyChain", opes(e.Properties)...)
}

// =============================================================================
// Class expressions
// =============================================================================

// ClassExpression is a named class or a class constructor.
type ClassExpression interface {
	Node
	isClassExpression()
}

type ObjectIntersectionOf struct{ Operands []ClassExpression }
type ObjectUnionOf struct{ Operands []ClassExpression }
type ObjectComplementOf struct{ Operand ClassExpression }

type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectHasValue struct {
	Property   ObjectPropertyExpression
	Individual NamedIndividual
}

type ObjectMinCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectMaxCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectExactCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (Class) isClassExpression()                  {}
func (ObjectIntersectionOf) isClassExpression()   {}
func (ObjectUnionOf) isClassExpression()          {}
func (ObjectComplementOf) isClassExpression()     {}
func (ObjectSomeValuesFrom) isClassExpression()   {}
func (ObjectAllValuesFrom) isClassExpression()    {}
func (ObjectHasValue) isClassExpression()         {}
func (ObjectMinCardinality) isClassExpression()   {}
func (ObjectMaxCardinality) isClassExpression()   {}
func (ObjectExactCardinality) isClassExpression() {}

func (e ObjectIntersectionOf) functional(w *fnWriter) {
	w.call("ObjectIntersectionOf", ces(e.Operands)...)
}
func (e ObjectUnionOf) functional(w *fnWriter) { w.call("ObjectUnionOf", ces(e.Operands)...) }
func (e ObjectComplementOf) functional(w *fnWriter) {
	w.call("ObjectComplementOf", e.Operand)
}
func (e ObjectSomeValuesFrom) functional(w *fnWriter) {
	w.call("ObjectSomeValuesFrom", e.Property, e.Filler)
}
func (e ObjectAllValuesFrom) functional(w *fnWriter) {
	w.call("ObjectAllValuesFrom", e.Property, e.Filler)
}
func (e ObjectHasValue) functional(w *fnWriter) {
	w.call("ObjectHasValue", e.Property, e.Individual)
}
func (e ObjectMinCardinality) functional(w *fnWriter) {
	w.call("ObjectMinCardinality", cardinality(e.N), e.Property, e.Filler)
}
func (e ObjectMaxCardinality) functional(w *fnWriter) {
	w.call("ObjectMaxCardinality", cardinality(e.N), e.Property, e.Filler)
}
func (e ObjectExactCardinality) functional(w *fnWriter) {
	w.call("ObjectExactCardinality", cardinality(e.N), e.Property, e.Filler)
}

func cardinality(n uint32) Node { return raw(strconv.FormatUint(uint64(n), 10)) }

func ces(in []ClassExpression) []Node {
	out := make([]Node, len(in))
	for i, c := range in {
		out[i] = c
	}
	return out
}

func opes(in []ObjectPropertyExpression) []Node {
	out := make([]Node, len(in))
	for i, p := range in {
		out[i] = p
	}
	return out
}

// =============================================================================
// Literals and annotations
// =============================================================================

// Literal is a lexical form with an optional datatype or language tag. A
// literal with neither is a simple literal.
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// SimpleLiteral returns an untyped literal.
func SimpleLiteral(s string) Literal { return Literal{Lexical: s} }

// TypedLiteral returns a literal of the given datatype.
func TypedLiteral(s string, dt IRI) Literal { return Literal{Lexical: s, Datatype: dt} }

// BoolLiteral returns an xsd:boolean literal.
func BoolLiteral(b bool) Literal { return TypedLiteral(strconv.FormatBool(b), XSDBoolean) }

func (l Literal) functional(w *fnWriter) {
	w.quoted(l.Lexical)
	switch {
	case l.Lang != "":
		w.b.WriteString("@" + l.Lang)
	case l.Datatype != "":
		w.b.WriteString("^^")
		w.iri(l.Datatype)
	}
}

// AnnotationValue is an IRI or a Literal.
type AnnotationValue interface {
	Node
	isAnnotationValue()
}

func (IRI) isAnnotationValue()     {}
func (Literal) isAnnotationValue() {}

// Annotation attaches a value to an ontology, an axiom or, through an
// AnnotationAssertion, to an IRI.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
}

func (a Annotation) functional(w *fnWriter) { w.call("Annotation", a.Property, a.Value) }
