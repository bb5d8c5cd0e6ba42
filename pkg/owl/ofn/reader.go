package ofn

import (
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// sexpr is either an atom (tok set, args nil) or a call name(args...).
type sexpr struct {
	tok  token
	name string
	args []sexpr
	call bool
}

func (e sexpr) String() string {
	if e.call {
		return e.name + "(...)"
	}
	return e.tok.text
}

// Reader parses functional syntax. Prefixes declared in the input are added
// to Prefixes, which may be pre-seeded.
type Reader struct {
	Prefixes *owl.Prefixes
}

// NewReader returns a reader seeded with the default OBO prefixes.
func NewReader() *Reader {
	return &Reader{Prefixes: owl.DefaultPrefixes()}
}

// Parse reads a functional-syntax document from r.
func Parse(r io.Reader) (*owl.Ontology, *owl.Prefixes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	rd := NewReader()
	o, err := rd.ReadString(string(data))
	return o, rd.Prefixes, err
}

// ReadAxioms implements the translator's raw-axiom splice hook.
func (rd *Reader) ReadAxioms(text string) (*owl.Ontology, error) {
	return rd.ReadString(text)
}

// ReadString parses src.
func (rd *Reader) ReadString(src string) (*owl.Ontology, error) {
	if rd.Prefixes == nil {
		rd.Prefixes = owl.DefaultPrefixes()
	}
	exprs, err := parseAll(&lexer{src: src})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSyntax, err, "read functional syntax")
	}
	o := owl.NewOntology()
	in := &interp{prefixes: rd.Prefixes, out: o}
	if err := in.document(exprs); err != nil {
		return nil, err
	}
	return o, nil
}

func parseAll(l *lexer) ([]sexpr, error) {
	var out []sexpr
	for {
		e, done, err := parseExpr(l)
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		out = append(out, e)
	}
}

// parseExpr reads one expression. done is true at end of input.
func parseExpr(l *lexer) (sexpr, bool, error) {
	tok, err := l.next()
	if err != nil {
		return sexpr{}, false, err
	}
	switch tok.kind {
	case tokEOF:
		return sexpr{}, true, nil
	case tokClose:
		return sexpr{}, false, l.errorf("unexpected )")
	case tokOpen:
		return sexpr{}, false, l.errorf("unexpected (")
	case tokName:
		// name followed by ( is a call
		save := l.pos
		l.skip()
		if l.pos < len(l.src) && l.src[l.pos] == '(' {
			l.pos++
			e := sexpr{name: tok.text, call: true}
			for {
				l.skip()
				if l.pos < len(l.src) && l.src[l.pos] == ')' {
					l.pos++
					return e, false, nil
				}
				arg, done, err := parseExpr(l)
				if err != nil {
					return sexpr{}, false, err
				}
				if done {
					return sexpr{}, false, l.errorf("unterminated %s(", tok.text)
				}
				e.args = append(e.args, arg)
			}
		}
		l.pos = save
	}
	return sexpr{tok: tok}, false, nil
}

// =============================================================================
// Interpretation
// =============================================================================

type interp struct {
	prefixes *owl.Prefixes
	out      *owl.Ontology
}

func unsupported(e sexpr) error {
	return errors.New(errors.ErrCodeUnsupported, "unsupported construct %s", e)
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidSyntax, format, args...)
}

func (in *interp) document(exprs []sexpr) error {
	for _, e := range exprs {
		switch {
		case e.call && e.name == "Prefix":
			if err := in.prefix(e); err != nil {
				return err
			}
		case e.call && e.name == "Ontology":
			if err := in.ontology(e); err != nil {
				return err
			}
		case e.call:
			if err := in.member(e); err != nil {
				return err
			}
		default:
			return invalid("unexpected token %q", e.tok.text)
		}
	}
	return nil
}

// prefix handles Prefix(name:=<iri>). The lexer splits "name:" from "=".
func (in *interp) prefix(e sexpr) error {
	if len(e.args) != 3 || e.args[1].tok.kind != tokEquals || e.args[2].tok.kind != tokIRI {
		return invalid("malformed Prefix declaration")
	}
	name := e.args[0].tok.text
	if !strings.HasSuffix(name, ":") {
		return invalid("prefix name %q must end with ':'", name)
	}
	in.prefixes.Add(strings.TrimSuffix(name, ":"), e.args[2].tok.text)
	return nil
}

func (in *interp) ontology(e sexpr) error {
	args := e.args
	var id owl.OntologyID
	if len(args) > 0 && !args[0].call {
		iri, err := in.iri(args[0])
		if err != nil {
			return err
		}
		id.IRI = iri
		args = args[1:]
		if len(args) > 0 && !args[0].call {
			if id.VersionIRI, err = in.iri(args[0]); err != nil {
				return err
			}
			args = args[1:]
		}
	}
	if id.IRI != "" {
		in.out.Add(id)
	}
	for _, a := range args {
		if !a.call {
			return invalid("unexpected token %q in Ontology", a.tok.text)
		}
		if err := in.member(a); err != nil {
			return err
		}
	}
	return nil
}

// member interprets an import, ontology annotation or axiom.
func (in *interp) member(e sexpr) error {
	switch e.name {
	case "Import":
		if len(e.args) != 1 {
			return invalid("Import takes one IRI")
		}
		iri, err := in.iri(e.args[0])
		if err != nil {
			return err
		}
		in.out.Add(owl.Import{IRI: iri})
		return nil
	case "Annotation":
		ann, err := in.annotation(e)
		if err != nil {
			return err
		}
		in.out.Add(owl.OntologyAnnotation{Annotation: ann})
		return nil
	}
	return in.axiom(e)
}

func (in *interp) iri(e sexpr) (owl.IRI, error) {
	if e.call {
		return "", invalid("expected IRI, got %s", e)
	}
	switch e.tok.kind {
	case tokIRI:
		return owl.IRI(e.tok.text), nil
	case tokName:
		i := strings.IndexByte(e.tok.text, ':')
		if i < 0 {
			return "", invalid("expected IRI, got %q", e.tok.text)
		}
		ns, ok := in.prefixes.Namespace(e.tok.text[:i])
		if !ok {
			return "", invalid("unknown prefix in %q", e.tok.text)
		}
		return owl.IRI(ns + e.tok.text[i+1:]), nil
	}
	return "", invalid("expected IRI, got %q", e.tok.text)
}

func (in *interp) annotation(e sexpr) (owl.Annotation, error) {
	args := e.args
	for len(args) > 0 && args[0].call && args[0].name == "Annotation" {
		args = args[1:]
	}
	if len(args) != 2 {
		return owl.Annotation{}, invalid("Annotation takes a property and a value")
	}
	p, err := in.iri(args[0])
	if err != nil {
		return owl.Annotation{}, err
	}
	v, err := in.annotationValue(args[1])
	if err != nil {
		return owl.Annotation{}, err
	}
	return owl.Annotation{Property: owl.AnnotationProperty(p), Value: v}, nil
}

func (in *interp) annotationValue(e sexpr) (owl.AnnotationValue, error) {
	if !e.call && e.tok.kind == tokLiteral {
		return in.literal(e.tok)
	}
	return in.iri(e)
}

func (in *interp) literal(t token) (owl.Literal, error) {
	l := owl.Literal{Lexical: t.text, Lang: t.lang}
	if t.datatype != nil {
		dt, err := in.iri(sexpr{tok: *t.datatype})
		if err != nil {
			return owl.Literal{}, err
		}
		l.Datatype = dt
	}
	return l, nil
}

// axiom interprets one axiom, peeling leading axiom annotations.
func (in *interp) axiom(e sexpr) error {
	var anns []owl.Annotation
	args := e.args
	for len(args) > 0 && args[0].call && args[0].name == "Annotation" {
		a, err := in.annotation(args[0])
		if err != nil {
			return err
		}
		anns = append(anns, a)
		args = args[1:]
	}
	c, err := in.component(e, args)
	if err != nil {
		return err
	}
	in.out.Add(c, anns...)
	return nil
}

var characteristics = map[string]owl.Kind{
	"FunctionalObjectProperty":        owl.KindFunctionalObjectProperty,
	"InverseFunctionalObjectProperty": owl.KindInverseFunctionalObjectProperty,
	"ReflexiveObjectProperty":         owl.KindReflexiveObjectProperty,
	"IrreflexiveObjectProperty":       owl.KindIrreflexiveObjectProperty,
	"SymmetricObjectProperty":         owl.KindSymmetricObjectProperty,
	"AsymmetricObjectProperty":        owl.KindAsymmetricObjectProperty,
	"TransitiveObjectProperty":        owl.KindTransitiveObjectProperty,
}

func (in *interp) component(e sexpr, args []sexpr) (owl.Component, error) {
	want := func(n int) error {
		if len(args) != n {
			return invalid("%s takes %d arguments, got %d", e.name, n, len(args))
		}
		return nil
	}
	if k, ok := characteristics[e.name]; ok {
		if err := want(1); err != nil {
			return nil, err
		}
		p, err := in.ope(args[0])
		if err != nil {
			return nil, err
		}
		return owl.Characteristic(k, p), nil
	}

	switch e.name {
	case "Declaration":
		if err := want(1); err != nil {
			return nil, err
		}
		ent, err := in.entity(args[0])
		if err != nil {
			return nil, err
		}
		return owl.Declaration{Entity: ent}, nil
	case "SubClassOf":
		if err := want(2); err != nil {
			return nil, err
		}
		cs, err := in.ces(args)
		if err != nil {
			return nil, err
		}
		return owl.SubClassOf{Sub: cs[0], Super: cs[1]}, nil
	case "EquivalentClasses", "DisjointClasses":
		if len(args) < 2 {
			return nil, invalid("%s needs at least two classes", e.name)
		}
		cs, err := in.ces(args)
		if err != nil {
			return nil, err
		}
		if e.name == "EquivalentClasses" {
			return owl.EquivalentClasses{Classes: cs}, nil
		}
		return owl.DisjointClasses{Classes: cs}, nil
	case "SubObjectPropertyOf":
		if err := want(2); err != nil {
			return nil, err
		}
		var sub owl.SubPropertyExpression
		if args[0].call && args[0].name == "ObjectPropertyChain" {
			ps, err := in.opes(args[0].args)
			if err != nil {
				return nil, err
			}
			sub = owl.ObjectPropertyChain{Properties: ps}
		} else {
			p, err := in.ope(args[0])
			if err != nil {
				return nil, err
			}
			sub = p.(owl.SubPropertyExpression)
		}
		sup, err := in.ope(args[1])
		if err != nil {
			return nil, err
		}
		return owl.SubObjectPropertyOf{Sub: sub, Super: sup}, nil
	case "EquivalentObjectProperties", "DisjointObjectProperties":
		ps, err := in.opes(args)
		if err != nil {
			return nil, err
		}
		if e.name == "EquivalentObjectProperties" {
			return owl.EquivalentObjectProperties{Properties: ps}, nil
		}
		return owl.DisjointObjectProperties{Properties: ps}, nil
	case "InverseObjectProperties":
		if err := want(2); err != nil {
			return nil, err
		}
		ps, err := in.opes(args)
		if err != nil {
			return nil, err
		}
		return owl.InverseObjectProperties{First: ps[0], Second: ps[1]}, nil
	case "ObjectPropertyDomain", "ObjectPropertyRange":
		if err := want(2); err != nil {
			return nil, err
		}
		p, err := in.ope(args[0])
		if err != nil {
			return nil, err
		}
		c, err := in.ce(args[1])
		if err != nil {
			return nil, err
		}
		if e.name == "ObjectPropertyDomain" {
			return owl.ObjectPropertyDomain{Property: p, Class: c}, nil
		}
		return owl.ObjectPropertyRange{Property: p, Class: c}, nil
	case "ClassAssertion":
		if err := want(2); err != nil {
			return nil, err
		}
		c, err := in.ce(args[0])
		if err != nil {
			return nil, err
		}
		i, err := in.iri(args[1])
		if err != nil {
			return nil, err
		}
		return owl.ClassAssertion{Class: c, Individual: owl.NamedIndividual(i)}, nil
	case "ObjectPropertyAssertion":
		if err := want(3); err != nil {
			return nil, err
		}
		p, err := in.ope(args[0])
		if err != nil {
			return nil, err
		}
		s, err := in.iri(args[1])
		if err != nil {
			return nil, err
		}
		o, err := in.iri(args[2])
		if err != nil {
			return nil, err
		}
		return owl.ObjectPropertyAssertion{Property: p, Subject: owl.NamedIndividual(s), Value: owl.NamedIndividual(o)}, nil
	case "SubAnnotationPropertyOf", "AnnotationPropertyDomain", "AnnotationPropertyRange":
		if err := want(2); err != nil {
			return nil, err
		}
		a, err := in.iri(args[0])
		if err != nil {
			return nil, err
		}
		b, err := in.iri(args[1])
		if err != nil {
			return nil, err
		}
		switch e.name {
		case "SubAnnotationPropertyOf":
			return owl.SubAnnotationPropertyOf{Sub: owl.AnnotationProperty(a), Super: owl.AnnotationProperty(b)}, nil
		case "AnnotationPropertyDomain":
			return owl.AnnotationPropertyDomain{Property: owl.AnnotationProperty(a), Domain: b}, nil
		}
		return owl.AnnotationPropertyRange{Property: owl.AnnotationProperty(a), Range: b}, nil
	case "AnnotationAssertion":
		if err := want(3); err != nil {
			return nil, err
		}
		p, err := in.iri(args[0])
		if err != nil {
			return nil, err
		}
		s, err := in.iri(args[1])
		if err != nil {
			return nil, err
		}
		v, err := in.annotationValue(args[2])
		if err != nil {
			return nil, err
		}
		return owl.AnnotationAssertion{Subject: s, Annotation: owl.Annotation{Property: owl.AnnotationProperty(p), Value: v}}, nil
	}
	return nil, unsupported(e)
}

func (in *interp) entity(e sexpr) (owl.Entity, error) {
	if !e.call || len(e.args) != 1 {
		return nil, invalid("malformed entity %s", e)
	}
	iri, err := in.iri(e.args[0])
	if err != nil {
		return nil, err
	}
	switch e.name {
	case "Class":
		return owl.Class(iri), nil
	case "ObjectProperty":
		return owl.ObjectProperty(iri), nil
	case "AnnotationProperty":
		return owl.AnnotationProperty(iri), nil
	case "NamedIndividual":
		return owl.NamedIndividual(iri), nil
	case "Datatype":
		return owl.Datatype(iri), nil
	}
	return nil, unsupported(e)
}

func (in *interp) ope(e sexpr) (owl.ObjectPropertyExpression, error) {
	if e.call {
		if e.name != "ObjectInverseOf" || len(e.args) != 1 {
			return nil, unsupported(e)
		}
		iri, err := in.iri(e.args[0])
		if err != nil {
			return nil, err
		}
		return owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}, nil
	}
	iri, err := in.iri(e)
	if err != nil {
		return nil, err
	}
	return owl.ObjectProperty(iri), nil
}

func (in *interp) opes(args []sexpr) ([]owl.ObjectPropertyExpression, error) {
	out := make([]owl.ObjectPropertyExpression, 0, len(args))
	for _, a := range args {
		p, err := in.ope(a)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (in *interp) ces(args []sexpr) ([]owl.ClassExpression, error) {
	out := make([]owl.ClassExpression, 0, len(args))
	for _, a := range args {
		c, err := in.ce(a)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (in *interp) ce(e sexpr) (owl.ClassExpression, error) {
	if !e.call {
		iri, err := in.iri(e)
		if err != nil {
			return nil, err
		}
		return owl.Class(iri), nil
	}
	switch e.name {
	case "ObjectIntersectionOf", "ObjectUnionOf":
		cs, err := in.ces(e.args)
		if err != nil {
			return nil, err
		}
		if e.name == "ObjectIntersectionOf" {
			return owl.ObjectIntersectionOf{Operands: cs}, nil
		}
		return owl.ObjectUnionOf{Operands: cs}, nil
	case "ObjectComplementOf":
		if len(e.args) != 1 {
			return nil, invalid("ObjectComplementOf takes one class")
		}
		c, err := in.ce(e.args[0])
		if err != nil {
			return nil, err
		}
		return owl.ObjectComplementOf{Operand: c}, nil
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		if len(e.args) != 2 {
			return nil, invalid("%s takes two arguments", e.name)
		}
		p, err := in.ope(e.args[0])
		if err != nil {
			return nil, err
		}
		c, err := in.ce(e.args[1])
		if err != nil {
			return nil, err
		}
		if e.name == "ObjectSomeValuesFrom" {
			return owl.ObjectSomeValuesFrom{Property: p, Filler: c}, nil
		}
		return owl.ObjectAllValuesFrom{Property: p, Filler: c}, nil
	case "ObjectHasValue":
		if len(e.args) != 2 {
			return nil, invalid("ObjectHasValue takes two arguments")
		}
		p, err := in.ope(e.args[0])
		if err != nil {
			return nil, err
		}
		i, err := in.iri(e.args[1])
		if err != nil {
			return nil, err
		}
		return owl.ObjectHasValue{Property: p, Individual: owl.NamedIndividual(i)}, nil
	case "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality":
		if len(e.args) < 2 || len(e.args) > 3 || e.args[0].call {
			return nil, invalid("malformed %s", e.name)
		}
		n, err := strconv.ParseUint(e.args[0].tok.text, 10, 32)
		if err != nil {
			return nil, invalid("%s: invalid cardinality %q", e.name, e.args[0].tok.text)
		}
		p, err := in.ope(e.args[1])
		if err != nil {
			return nil, err
		}
		var filler owl.ClassExpression = owl.Class(owl.OWLThing)
		if len(e.args) == 3 {
			if filler, err = in.ce(e.args[2]); err != nil {
				return nil, err
			}
		}
		switch e.name {
		case "ObjectMinCardinality":
			return owl.ObjectMinCardinality{N: uint32(n), Property: p, Filler: filler}, nil
		case "ObjectMaxCardinality":
			return owl.ObjectMaxCardinality{N: uint32(n), Property: p, Filler: filler}, nil
		}
		return owl.ObjectExactCardinality{N: uint32(n), Property: p, Filler: filler}, nil
	}
	return nil, unsupported(e)
}
