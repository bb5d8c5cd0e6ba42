// Package rdf maps OWL2 ontologies to RDF triples following the W3C
// "OWL 2 Mapping to RDF Graphs" and serializes them as N-Triples.
//
// Anonymous class expressions become blank nodes, n-ary constructs use RDF
// lists, and annotated axioms are reified with owl:Axiom nodes. Blank node
// labels are assigned in component order, so output is deterministic.
package rdf

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	gordf "gonum.org/v1/gonum/graph/formats/rdf"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// Vocabulary used by the mapping.
const (
	rdfType  owl.IRI = owl.NSRDF + "type"
	rdfFirst owl.IRI = owl.NSRDF + "first"
	rdfRest  owl.IRI = owl.NSRDF + "rest"
	rdfNil   owl.IRI = owl.NSRDF + "nil"

	rdfsSubClassOf    owl.IRI = owl.NSRDFS + "subClassOf"
	rdfsSubPropertyOf owl.IRI = owl.NSRDFS + "subPropertyOf"
	rdfsDomain        owl.IRI = owl.NSRDFS + "domain"
	rdfsRange         owl.IRI = owl.NSRDFS + "range"
	rdfsDatatype      owl.IRI = owl.NSRDFS + "Datatype"

	owlOntology                owl.IRI = owl.NSOWL + "Ontology"
	owlVersionIRI              owl.IRI = owl.NSOWL + "versionIRI"
	owlImports                 owl.IRI = owl.NSOWL + "imports"
	owlClass                   owl.IRI = owl.NSOWL + "Class"
	owlObjectProperty          owl.IRI = owl.NSOWL + "ObjectProperty"
	owlAnnotationProperty      owl.IRI = owl.NSOWL + "AnnotationProperty"
	owlNamedIndividual         owl.IRI = owl.NSOWL + "NamedIndividual"
	owlRestriction             owl.IRI = owl.NSOWL + "Restriction"
	owlAxiom                   owl.IRI = owl.NSOWL + "Axiom"
	owlAnnotatedSource         owl.IRI = owl.NSOWL + "annotatedSource"
	owlAnnotatedProperty       owl.IRI = owl.NSOWL + "annotatedProperty"
	owlAnnotatedTarget         owl.IRI = owl.NSOWL + "annotatedTarget"
	owlEquivalentClass         owl.IRI = owl.NSOWL + "equivalentClass"
	owlDisjointWith            owl.IRI = owl.NSOWL + "disjointWith"
	owlAllDisjointClasses      owl.IRI = owl.NSOWL + "AllDisjointClasses"
	owlAllDisjointProperties   owl.IRI = owl.NSOWL + "AllDisjointProperties"
	owlMembers                 owl.IRI = owl.NSOWL + "members"
	owlPropertyChainAxiom      owl.IRI = owl.NSOWL + "propertyChainAxiom"
	owlEquivalentProperty      owl.IRI = owl.NSOWL + "equivalentProperty"
	owlPropertyDisjointWith    owl.IRI = owl.NSOWL + "propertyDisjointWith"
	owlInverseOf               owl.IRI = owl.NSOWL + "inverseOf"
	owlIntersectionOf          owl.IRI = owl.NSOWL + "intersectionOf"
	owlUnionOf                 owl.IRI = owl.NSOWL + "unionOf"
	owlComplementOf            owl.IRI = owl.NSOWL + "complementOf"
	owlOnProperty              owl.IRI = owl.NSOWL + "onProperty"
	owlOnClass                 owl.IRI = owl.NSOWL + "onClass"
	owlSomeValuesFrom          owl.IRI = owl.NSOWL + "someValuesFrom"
	owlAllValuesFrom           owl.IRI = owl.NSOWL + "allValuesFrom"
	owlHasValue                owl.IRI = owl.NSOWL + "hasValue"
	owlMinCardinality          owl.IRI = owl.NSOWL + "minCardinality"
	owlMaxCardinality          owl.IRI = owl.NSOWL + "maxCardinality"
	owlCardinality             owl.IRI = owl.NSOWL + "cardinality"
	owlMinQualifiedCardinality owl.IRI = owl.NSOWL + "minQualifiedCardinality"
	owlMaxQualifiedCardinality owl.IRI = owl.NSOWL + "maxQualifiedCardinality"
	owlQualifiedCardinality    owl.IRI = owl.NSOWL + "qualifiedCardinality"

	xsdNonNegativeInteger owl.IRI = owl.NSXSD + "nonNegativeInteger"
)

var characteristicTypes = map[owl.Kind]owl.IRI{
	owl.KindFunctionalObjectProperty:        owl.NSOWL + "FunctionalProperty",
	owl.KindInverseFunctionalObjectProperty: owl.NSOWL + "InverseFunctionalProperty",
	owl.KindReflexiveObjectProperty:         owl.NSOWL + "ReflexiveProperty",
	owl.KindIrreflexiveObjectProperty:       owl.NSOWL + "IrreflexiveProperty",
	owl.KindSymmetricObjectProperty:         owl.NSOWL + "SymmetricProperty",
	owl.KindAsymmetricObjectProperty:        owl.NSOWL + "AsymmetricProperty",
	owl.KindTransitiveObjectProperty:        owl.NSOWL + "TransitiveProperty",
}

// Statements maps o to RDF statements in component order.
func Statements(o *owl.Ontology) ([]*gordf.Statement, error) {
	m := &mapper{}
	ont := m.ontologyNode(o)
	for _, ac := range o.Components() {
		m.component(ont, ac)
		if m.err != nil {
			return nil, m.err
		}
	}
	return m.out, nil
}

// Writer serializes ontologies as N-Triples.
type Writer struct {
	w io.Writer
}

// NewWriter returns a writer to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write serializes o, one statement per line.
func (wr *Writer) Write(o *owl.Ontology) error {
	stmts, err := Statements(o)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(wr.w)
	for _, s := range stmts {
		bw.WriteString(s.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Marshal renders o as N-Triples.
func Marshal(o *owl.Ontology) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Mapping
// =============================================================================

type mapper struct {
	out   []*gordf.Statement
	blank int
	err   error
}

// triple is a main triple of an axiom, kept for reification.
type triple struct {
	s, p, o gordf.Term
}

func (m *mapper) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

func (m *mapper) iri(i owl.IRI) gordf.Term {
	t, err := gordf.NewIRITerm(string(i))
	if err != nil {
		m.fail(errors.Wrap(errors.ErrCodeInvalidIRI, err, "map IRI %q", i))
	}
	return t
}

func (m *mapper) bnode() gordf.Term {
	t, err := gordf.NewBlankTerm("b" + strconv.Itoa(m.blank))
	if err != nil {
		m.fail(errors.Wrap(errors.ErrCodeInternal, err, "allocate blank node"))
	}
	m.blank++
	return t
}

func (m *mapper) literal(l owl.Literal) gordf.Term {
	var qual string
	switch {
	case l.Lang != "":
		qual = "@" + l.Lang
	case l.Datatype != "":
		qual = string(l.Datatype)
	}
	t, err := gordf.NewLiteralTerm(l.Lexical, qual)
	if err != nil {
		m.fail(errors.Wrap(errors.ErrCodeInvalidInput, err, "map literal %q", l.Lexical))
	}
	return t
}

func (m *mapper) value(v owl.AnnotationValue) gordf.Term {
	switch v := v.(type) {
	case owl.IRI:
		return m.iri(v)
	case owl.Literal:
		return m.literal(v)
	}
	m.fail(errors.New(errors.ErrCodeUnsupported, "annotation value %T", v))
	return gordf.Term{}
}

func (m *mapper) emit(s, p, o gordf.Term) triple {
	m.out = append(m.out, &gordf.Statement{Subject: s, Predicate: p, Object: o})
	return triple{s, p, o}
}

func (m *mapper) emitIRI(s gordf.Term, p owl.IRI, o gordf.Term) triple {
	return m.emit(s, m.iri(p), o)
}

func (m *mapper) list(items []gordf.Term) gordf.Term {
	if len(items) == 0 {
		return m.iri(rdfNil)
	}
	head := m.bnode()
	cur := head
	for i, it := range items {
		m.emitIRI(cur, rdfFirst, it)
		if i == len(items)-1 {
			m.emitIRI(cur, rdfRest, m.iri(rdfNil))
			break
		}
		next := m.bnode()
		m.emitIRI(cur, rdfRest, next)
		cur = next
	}
	return head
}

func (m *mapper) ontologyNode(o *owl.Ontology) gordf.Term {
	var node gordf.Term
	id, ok := o.ID()
	if ok && id.IRI != "" {
		node = m.iri(id.IRI)
	} else {
		node = m.bnode()
	}
	m.emitIRI(node, rdfType, m.iri(owlOntology))
	if ok && id.VersionIRI != "" {
		m.emitIRI(node, owlVersionIRI, m.iri(id.VersionIRI))
	}
	return node
}

func (m *mapper) annotate(node gordf.Term, anns []owl.Annotation) {
	for _, a := range anns {
		m.emit(node, m.iri(owl.IRI(a.Property)), m.value(a.Value))
	}
}

// reify attaches axiom annotations to each main triple through an owl:Axiom
// node.
func (m *mapper) reify(main []triple, anns []owl.Annotation) {
	if len(anns) == 0 {
		return
	}
	for _, t := range main {
		x := m.bnode()
		m.emitIRI(x, rdfType, m.iri(owlAxiom))
		m.emitIRI(x, owlAnnotatedSource, t.s)
		m.emitIRI(x, owlAnnotatedProperty, t.p)
		m.emitIRI(x, owlAnnotatedTarget, t.o)
		m.annotate(x, anns)
	}
}

func (m *mapper) component(ont gordf.Term, ac owl.AnnotatedComponent) {
	var main []triple
	switch c := ac.Component.(type) {
	case owl.OntologyID:
		// emitted by ontologyNode
	case owl.Import:
		m.emitIRI(ont, owlImports, m.iri(c.IRI))
	case owl.OntologyAnnotation:
		t := m.emit(ont, m.iri(owl.IRI(c.Annotation.Property)), m.value(c.Annotation.Value))
		main = append(main, t)
	case owl.Declaration:
		main = append(main, m.emitIRI(m.iri(c.Entity.EntityIRI()), rdfType, m.iri(entityType(c.Entity))))
	case owl.SubClassOf:
		main = append(main, m.emitIRI(m.class(c.Sub), rdfsSubClassOf, m.class(c.Super)))
	case owl.EquivalentClasses:
		main = m.pairwise(m.classes(c.Classes), owlEquivalentClass)
	case owl.DisjointClasses:
		if len(c.Classes) == 2 {
			main = m.pairwise(m.classes(c.Classes), owlDisjointWith)
			break
		}
		m.allDisjoint(owlAllDisjointClasses, m.classes(c.Classes), ac.Annotations)
		return
	case owl.SubObjectPropertyOf:
		sup := m.property(c.Super)
		if chain, ok := c.Sub.(owl.ObjectPropertyChain); ok {
			main = append(main, m.emitIRI(sup, owlPropertyChainAxiom, m.list(m.properties(chain.Properties))))
			break
		}
		main = append(main, m.emitIRI(m.property(c.Sub.(owl.ObjectPropertyExpression)), rdfsSubPropertyOf, sup))
	case owl.EquivalentObjectProperties:
		main = m.pairwise(m.properties(c.Properties), owlEquivalentProperty)
	case owl.DisjointObjectProperties:
		if len(c.Properties) == 2 {
			main = m.pairwise(m.properties(c.Properties), owlPropertyDisjointWith)
			break
		}
		m.allDisjoint(owlAllDisjointProperties, m.properties(c.Properties), ac.Annotations)
		return
	case owl.InverseObjectProperties:
		main = append(main, m.emitIRI(m.property(c.First), owlInverseOf, m.property(c.Second)))
	case owl.ObjectPropertyDomain:
		main = append(main, m.emitIRI(m.property(c.Property), rdfsDomain, m.class(c.Class)))
	case owl.ObjectPropertyRange:
		main = append(main, m.emitIRI(m.property(c.Property), rdfsRange, m.class(c.Class)))
	case owl.ObjectPropertyCharacteristic:
		main = append(main, m.emitIRI(m.property(c.Property), rdfType, m.iri(characteristicTypes[c.Characteristic])))
	case owl.ClassAssertion:
		main = append(main, m.emitIRI(m.iri(owl.IRI(c.Individual)), rdfType, m.class(c.Class)))
	case owl.ObjectPropertyAssertion:
		s, o := m.iri(owl.IRI(c.Subject)), m.iri(owl.IRI(c.Value))
		if inv, ok := c.Property.(owl.ObjectInverseOf); ok {
			main = append(main, m.emit(o, m.iri(owl.IRI(inv.Property)), s))
			break
		}
		main = append(main, m.emit(s, m.property(c.Property), o))
	case owl.SubAnnotationPropertyOf:
		main = append(main, m.emitIRI(m.iri(owl.IRI(c.Sub)), rdfsSubPropertyOf, m.iri(owl.IRI(c.Super))))
	case owl.AnnotationPropertyDomain:
		main = append(main, m.emitIRI(m.iri(owl.IRI(c.Property)), rdfsDomain, m.iri(c.Domain)))
	case owl.AnnotationPropertyRange:
		main = append(main, m.emitIRI(m.iri(owl.IRI(c.Property)), rdfsRange, m.iri(c.Range)))
	case owl.AnnotationAssertion:
		main = append(main, m.emit(m.iri(c.Subject), m.iri(owl.IRI(c.Annotation.Property)), m.value(c.Annotation.Value)))
	default:
		m.fail(errors.New(errors.ErrCodeUnsupported, "no RDF mapping for %s", ac.Component.Kind()))
		return
	}
	m.reify(main, ac.Annotations)
}

func entityType(e owl.Entity) owl.IRI {
	switch e.(type) {
	case owl.Class:
		return owlClass
	case owl.ObjectProperty:
		return owlObjectProperty
	case owl.AnnotationProperty:
		return owlAnnotationProperty
	case owl.NamedIndividual:
		return owlNamedIndividual
	}
	return rdfsDatatype
}

func (m *mapper) pairwise(items []gordf.Term, p owl.IRI) []triple {
	var out []triple
	for i := 0; i+1 < len(items); i++ {
		out = append(out, m.emitIRI(items[i], p, items[i+1]))
	}
	return out
}

func (m *mapper) allDisjoint(typ owl.IRI, members []gordf.Term, anns []owl.Annotation) {
	x := m.bnode()
	m.emitIRI(x, rdfType, m.iri(typ))
	m.emitIRI(x, owlMembers, m.list(members))
	m.annotate(x, anns)
}

func (m *mapper) property(p owl.ObjectPropertyExpression) gordf.Term {
	switch p := p.(type) {
	case owl.ObjectProperty:
		return m.iri(owl.IRI(p))
	case owl.ObjectInverseOf:
		x := m.bnode()
		m.emitIRI(x, owlInverseOf, m.iri(owl.IRI(p.Property)))
		return x
	}
	m.fail(errors.New(errors.ErrCodeUnsupported, "property expression %T", p))
	return gordf.Term{}
}

func (m *mapper) properties(ps []owl.ObjectPropertyExpression) []gordf.Term {
	out := make([]gordf.Term, len(ps))
	for i, p := range ps {
		out[i] = m.property(p)
	}
	return out
}

func (m *mapper) classes(cs []owl.ClassExpression) []gordf.Term {
	out := make([]gordf.Term, len(cs))
	for i, c := range cs {
		out[i] = m.class(c)
	}
	return out
}

func (m *mapper) class(c owl.ClassExpression) gordf.Term {
	switch c := c.(type) {
	case owl.Class:
		return m.iri(owl.IRI(c))
	case owl.ObjectIntersectionOf:
		return m.booleanClass(owlIntersectionOf, m.list(m.classes(c.Operands)))
	case owl.ObjectUnionOf:
		return m.booleanClass(owlUnionOf, m.list(m.classes(c.Operands)))
	case owl.ObjectComplementOf:
		return m.booleanClass(owlComplementOf, m.class(c.Operand))
	case owl.ObjectSomeValuesFrom:
		return m.restriction(c.Property, owlSomeValuesFrom, m.class(c.Filler))
	case owl.ObjectAllValuesFrom:
		return m.restriction(c.Property, owlAllValuesFrom, m.class(c.Filler))
	case owl.ObjectHasValue:
		return m.restriction(c.Property, owlHasValue, m.iri(owl.IRI(c.Individual)))
	case owl.ObjectMinCardinality:
		return m.cardinality(c.Property, c.N, c.Filler, owlMinCardinality, owlMinQualifiedCardinality)
	case owl.ObjectMaxCardinality:
		return m.cardinality(c.Property, c.N, c.Filler, owlMaxCardinality, owlMaxQualifiedCardinality)
	case owl.ObjectExactCardinality:
		return m.cardinality(c.Property, c.N, c.Filler, owlCardinality, owlQualifiedCardinality)
	}
	m.fail(errors.New(errors.ErrCodeUnsupported, "class expression %T", c))
	return gordf.Term{}
}

func (m *mapper) booleanClass(p owl.IRI, o gordf.Term) gordf.Term {
	x := m.bnode()
	m.emitIRI(x, rdfType, m.iri(owlClass))
	m.emitIRI(x, p, o)
	return x
}

func (m *mapper) restriction(p owl.ObjectPropertyExpression, kind owl.IRI, o gordf.Term) gordf.Term {
	prop := m.property(p)
	x := m.bnode()
	m.emitIRI(x, rdfType, m.iri(owlRestriction))
	m.emitIRI(x, owlOnProperty, prop)
	m.emitIRI(x, kind, o)
	return x
}

// cardinality emits an unqualified restriction when the filler is owl:Thing.
func (m *mapper) cardinality(p owl.ObjectPropertyExpression, n uint32, filler owl.ClassExpression, plain, qualified owl.IRI) gordf.Term {
	count := m.literal(owl.TypedLiteral(strconv.FormatUint(uint64(n), 10), xsdNonNegativeInteger))
	if cls, ok := filler.(owl.Class); ok && owl.IRI(cls) == owl.OWLThing {
		return m.restriction(p, plain, count)
	}
	fill := m.class(filler)
	x := m.restriction(p, qualified, count)
	m.emitIRI(x, owlOnClass, fill)
	return x
}
