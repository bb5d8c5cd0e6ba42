package translate

import (
	"strings"
	"testing"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

const goOBO = `format-version: 1.4
data-version: 2024-01-17
date: 17:01:2024 09:30
ontology: go
default-namespace: gene_ontology
idspace: GO http://purl.obolibrary.org/obo/GO_
subsetdef: goslim "Generic slim"
synonymtypedef: systematic "Systematic synonym" EXACT
import: ro
import: http://example.org/x.owl
remark: a remark
owl-axioms: Prefix(:=<http://purl.obolibrary.org/obo/go.owl#>) Ontology(Declaration(Class(:x)))

[Term]
id: GO:0000001
name: mitochondrion inheritance
def: "The distribution of mitochondria." [GOC:mcc, PMID:10873824]
subset: goslim
synonym: "mito inheritance" NARROW systematic [GOC:go]
xref: Wikipedia:Mitochondrion "wiki"
is_a: GO:0048308
relationship: part_of GO:0048311 {cardinality="1", source="GOC:x"}
creation_date: 2009-01-20

[Term]
id: GO:0000003
intersection_of: GO:0000001
intersection_of: part_of GO:0000004

[Typedef]
id: part_of
name: part of
xref: BFO:0000050
is_transitive: true
holds_over_chain: part_of part_of

[Instance]
id: ex:john
instance_of: ex:Person
`

const (
	goT1   = owl.IRI(owl.NSOBO + "GO_0000001")
	goT3   = owl.IRI(owl.NSOBO + "GO_0000003")
	partOf = owl.IRI(owl.NSOBO + "BFO_0000050")
)

func mustTranslate(t *testing.T, src string, opts Options) *Result {
	t.Helper()
	doc, err := obo.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	res, err := Translate(doc, opts)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	return res
}

func translateErr(t *testing.T, src string) error {
	t.Helper()
	doc, err := obo.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	_, err = Translate(doc, DefaultOptions())
	if err == nil {
		t.Fatal("Translate succeeded, want error")
	}
	return err
}

func ann(p owl.IRI, v owl.AnnotationValue) owl.Annotation {
	return owl.Annotation{Property: owl.AnnotationProperty(p), Value: v}
}

func assertion(s, p owl.IRI, v owl.AnnotationValue) owl.AnnotationAssertion {
	return owl.AnnotationAssertion{Subject: s, Annotation: ann(p, v)}
}

func requireAxiom(t *testing.T, o *owl.Ontology, c owl.Component, anns ...owl.Annotation) {
	t.Helper()
	ac := owl.Annotated(c, anns...)
	if !o.Contains(ac) {
		t.Errorf("missing %s\nin:\n%s", ac.Key(), o)
	}
}

func countMatching(o *owl.Ontology, k owl.Kind, match func(owl.Component) bool) int {
	n := 0
	for _, ac := range o.ByKind(k) {
		if match(ac.Component) {
			n++
		}
	}
	return n
}

func TestTranslateOntologyID(t *testing.T) {
	res := mustTranslate(t, goOBO, DefaultOptions())
	id, ok := res.Ontology.ID()
	if !ok {
		t.Fatal("no ontology id")
	}
	if id.IRI != owl.NSOBO+"go.owl" {
		t.Errorf("IRI = %s", id.IRI)
	}
	if id.VersionIRI != owl.NSOBO+"go/2024-01-17/go.owl" {
		t.Errorf("VersionIRI = %s", id.VersionIRI)
	}
	if n := res.Ontology.Count(owl.KindOntologyID); n != 1 {
		t.Errorf("%d ontology ids, want 1 after owl-axioms splice", n)
	}
}

func TestTranslateImports(t *testing.T) {
	tests := []struct {
		name  string
		force bool
		want  int
	}{
		{"forced", true, 3},
		{"not forced", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustTranslate(t, goOBO, Options{ForceImport: tt.force})
			o := res.Ontology
			if n := o.Count(owl.KindImport); n != tt.want {
				t.Errorf("%d imports, want %d", n, tt.want)
			}
			requireAxiom(t, o, owl.Import{IRI: owl.NSOBO + "ro.owl"})
			requireAxiom(t, o, owl.Import{IRI: "http://example.org/x.owl"})
			if got := o.Contains(owl.Annotated(owl.Import{IRI: owl.OboInOwlOntology})); got != tt.force {
				t.Errorf("oboInOwl import present = %v, want %v", got, tt.force)
			}
		})
	}
}

func TestTranslateHeaderAnnotations(t *testing.T) {
	o := mustTranslate(t, goOBO, DefaultOptions()).Ontology

	requireAxiom(t, o, owl.OntologyAnnotation{Annotation: ann(owl.OboInOwlHasOBOFormatVersion, owl.SimpleLiteral("1.4"))})
	requireAxiom(t, o, owl.OntologyAnnotation{Annotation: ann(owl.OboInOwlHasDate, owl.TypedLiteral("2024-01-17T09:30:00", owl.XSDDateTime))})
	requireAxiom(t, o, owl.OntologyAnnotation{Annotation: ann(owl.OboInOwlHasDefaultNamespace, owl.SimpleLiteral("gene_ontology"))})
	requireAxiom(t, o, owl.OntologyAnnotation{Annotation: ann(owl.RDFSComment, owl.SimpleLiteral("a remark"))})
	if n := o.Count(owl.KindOntologyAnnotation); n != 4 {
		t.Errorf("%d ontology annotations, want 4", n)
	}

	subset := owl.IRI(owl.NSOBO + "go#goslim")
	requireAxiom(t, o, owl.Declaration{Entity: owl.AnnotationProperty(subset)})
	requireAxiom(t, o, owl.SubAnnotationPropertyOf{Sub: owl.AnnotationProperty(subset), Super: owl.AnnotationProperty(owl.OboInOwlSubsetProperty)})
	requireAxiom(t, o, assertion(subset, owl.RDFSComment, owl.SimpleLiteral("Generic slim")))

	synType := owl.IRI(owl.NSOBO + "go#systematic")
	requireAxiom(t, o, owl.SubAnnotationPropertyOf{Sub: owl.AnnotationProperty(synType), Super: owl.AnnotationProperty(owl.OboInOwlSynonymTypeProperty)})
	requireAxiom(t, o, assertion(synType, owl.RDFSLabel, owl.SimpleLiteral("Systematic synonym")))
	requireAxiom(t, o, assertion(synType, owl.OboInOwlHasScope, owl.OboInOwlHasExactSynonym))

	requireAxiom(t, o, owl.Declaration{Entity: owl.Class(owl.NSOBO + "go.owl#x")})
}

func TestTranslateTermDeclarations(t *testing.T) {
	o := mustTranslate(t, goOBO, DefaultOptions()).Ontology

	for _, term := range []struct {
		iri owl.IRI
		id  string
	}{{goT1, "GO:0000001"}, {goT3, "GO:0000003"}} {
		decls := countMatching(o, owl.KindDeclaration, func(c owl.Component) bool {
			return c.(owl.Declaration).Entity == owl.Class(term.iri)
		})
		if decls != 1 {
			t.Errorf("%s: %d declarations, want 1", term.id, decls)
		}
		ids := countMatching(o, owl.KindAnnotationAssertion, func(c owl.Component) bool {
			a := c.(owl.AnnotationAssertion)
			return a.Subject == term.iri && a.Annotation.Property == owl.AnnotationProperty(owl.OboInOwlID)
		})
		if ids != 1 {
			t.Errorf("%s: %d oboInOwl:id assertions, want 1", term.id, ids)
		}
		requireAxiom(t, o, assertion(term.iri, owl.OboInOwlID, owl.SimpleLiteral(term.id)))
	}
}

func TestTranslateTermClauses(t *testing.T) {
	o := mustTranslate(t, goOBO, DefaultOptions()).Ontology

	requireAxiom(t, o, assertion(goT1, owl.RDFSLabel, owl.SimpleLiteral("mitochondrion inheritance")))
	requireAxiom(t, o, assertion(goT1, owl.OboInOwlHasOBONamespace, owl.SimpleLiteral("gene_ontology")))
	requireAxiom(t, o, assertion(goT1, owl.IAODefinition, owl.SimpleLiteral("The distribution of mitochondria.")),
		ann(owl.OboInOwlHasDbXref, owl.SimpleLiteral("GOC:mcc")),
		ann(owl.OboInOwlHasDbXref, owl.SimpleLiteral("PMID:10873824")))
	requireAxiom(t, o, assertion(goT1, owl.OboInOwlInSubset, owl.IRI(owl.NSOBO+"go#goslim")))
	requireAxiom(t, o, assertion(goT1, owl.OboInOwlHasNarrowSynonym, owl.SimpleLiteral("mito inheritance")),
		ann(owl.OboInOwlHasDbXref, owl.SimpleLiteral("GOC:go")),
		ann(owl.OboInOwlHasSynonymType, owl.IRI(owl.NSOBO+"go#systematic")))
	requireAxiom(t, o, assertion(goT1, owl.OboInOwlHasDbXref, owl.SimpleLiteral("Wikipedia:Mitochondrion")),
		ann(owl.RDFSLabel, owl.SimpleLiteral("wiki")))
	requireAxiom(t, o, owl.SubClassOf{Sub: owl.Class(goT1), Super: owl.Class(owl.NSOBO + "GO_0048308")})
	requireAxiom(t, o, assertion(goT1, owl.DCDate, owl.TypedLiteral("2009-01-20", owl.XSDDate)))

	requireAxiom(t, o, owl.SubClassOf{
		Sub: owl.Class(goT1),
		Super: owl.ObjectExactCardinality{
			N:        1,
			Property: owl.ObjectProperty(partOf),
			Filler:   owl.Class(owl.NSOBO + "GO_0048311"),
		},
	}, ann(owl.NSOBO+"go#source", owl.SimpleLiteral("GOC:x")))
}

func TestTranslateIntersection(t *testing.T) {
	o := mustTranslate(t, goOBO, DefaultOptions()).Ontology
	requireAxiom(t, o, owl.EquivalentClasses{Classes: []owl.ClassExpression{
		owl.Class(goT3),
		owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
			owl.Class(goT1),
			owl.ObjectSomeValuesFrom{Property: owl.ObjectProperty(partOf), Filler: owl.Class(owl.NSOBO + "GO_0000004")},
		}},
	}})
	if n := o.Count(owl.KindEquivalentClasses); n != 1 {
		t.Errorf("%d EquivalentClasses axioms, want 1", n)
	}
}

func TestTranslateTypedef(t *testing.T) {
	o := mustTranslate(t, goOBO, DefaultOptions()).Ontology
	p := owl.ObjectProperty(partOf)

	requireAxiom(t, o, owl.Declaration{Entity: p})
	requireAxiom(t, o, assertion(partOf, owl.OboInOwlID, owl.SimpleLiteral("part_of")))
	requireAxiom(t, o, assertion(partOf, owl.RDFSLabel, owl.SimpleLiteral("part of")))
	requireAxiom(t, o, assertion(partOf, owl.OboInOwlHasDbXref, owl.SimpleLiteral("BFO:0000050")))
	requireAxiom(t, o, owl.Characteristic(owl.KindTransitiveObjectProperty, p))
	requireAxiom(t, o, owl.SubObjectPropertyOf{
		Sub:   owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{p, p}},
		Super: p,
	})
}

func TestTranslateWarnings(t *testing.T) {
	res := mustTranslate(t, goOBO, DefaultOptions())
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", res.Warnings)
	}
	if w := res.Warnings[0]; w.Frame != "ex:john" || !strings.Contains(w.Message, "instance") {
		t.Errorf("warning = %q", w)
	}
}

func TestTranslatePrefixes(t *testing.T) {
	res := mustTranslate(t, goOBO, Options{ExtraIdspaces: map[string]string{"EX": "http://example.org/ex#"}})
	for prefix, want := range map[string]string{
		"GO": "http://purl.obolibrary.org/obo/GO_",
		"EX": "http://example.org/ex#",
	} {
		if got, ok := res.Prefixes.Namespace(prefix); !ok || got != want {
			t.Errorf("Namespace(%s) = %q, %v; want %q", prefix, got, ok, want)
		}
	}
}

const metadataOBO = `format-version: 1.4
ontology: test

[Term]
id: T:1
relationship: editor_note T:2 {comment="checked"}

[Typedef]
id: editor_note
is_metadata_tag: true
is_a: seeAlso
domain: T:1
is_transitive: true
`

func TestTranslateMetadataTag(t *testing.T) {
	res := mustTranslate(t, metadataOBO, DefaultOptions())
	o := res.Ontology
	note := owl.IRI(owl.NSOBO + "test#editor_note")

	requireAxiom(t, o, owl.Declaration{Entity: owl.AnnotationProperty(note)})
	if o.Contains(owl.Annotated(owl.Declaration{Entity: owl.ObjectProperty(note)})) {
		t.Error("metadata tag declared as an object property")
	}
	requireAxiom(t, o, owl.SubAnnotationPropertyOf{
		Sub:   owl.AnnotationProperty(note),
		Super: owl.AnnotationProperty(owl.NSOBO + "test#seeAlso"),
	})
	requireAxiom(t, o, assertion(owl.NSOBO+"T_1", note, owl.IRI(owl.NSOBO+"T_2")),
		ann(owl.NSOBO+"test#comment", owl.SimpleLiteral("checked")))
	if n := o.Count(owl.KindSubClassOf); n != 0 {
		t.Errorf("%d SubClassOf axioms, want 0", n)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for is_transitive on an annotation property")
	}
}

func TestTranslateGCI(t *testing.T) {
	src := `ontology: test

[Term]
id: T:1
is_a: T:2 {gci_relation="part_of", gci_filler="T:3"}
`
	o := mustTranslate(t, src, DefaultOptions()).Ontology
	requireAxiom(t, o, owl.SubClassOf{
		Sub: owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
			owl.Class(owl.NSOBO + "T_1"),
			owl.ObjectSomeValuesFrom{
				Property: owl.ObjectProperty(owl.NSOBO + "test#part_of"),
				Filler:   owl.Class(owl.NSOBO + "T_3"),
			},
		}},
		Super: owl.Class(owl.NSOBO + "T_2"),
	})
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
		want []string
	}{
		{
			name: "missing ontology",
			src:  "format-version: 1.4\n",
			code: errors.ErrCodeInvalidCardinality,
			want: []string{"ontology"},
		},
		{
			name: "duplicate data-version",
			src:  "ontology: x\ndata-version: 1\ndata-version: 2\n",
			code: errors.ErrCodeInvalidCardinality,
			want: []string{"data-version"},
		},
		{
			name: "lone intersection_of",
			src:  "ontology: x\n\n[Term]\nid: X:1\nintersection_of: X:2\n",
			code: errors.ErrCodeInvalidCardinality,
			want: []string{"X:1", "intersection_of"},
		},
		{
			name: "bad qualifiers in two frames",
			src: "ontology: x\n\n[Term]\nid: X:1\nrelationship: r X:2 {cardinality=\"a\"}\n\n" +
				"[Term]\nid: X:3\nrelationship: r X:4 {minCardinality=\"-2\"}\n",
			code: errors.ErrCodeInvalidQualifier,
			want: []string{"X:1", "X:3"},
		},
		{
			name: "malformed owl-axioms",
			src:  "ontology: x\nowl-axioms: SubClassOf(\n",
			code: errors.ErrCodeInvalidSyntax,
			want: []string{"owl-axioms"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateErr(t, tt.src)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
			for _, s := range tt.want {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not mention %q", err, s)
				}
			}
		})
	}
}

type stubReader struct{ got string }

func (s *stubReader) ReadAxioms(text string) (*owl.Ontology, error) {
	s.got = text
	o := owl.NewOntology()
	o.Add(owl.OntologyID{IRI: "http://example.org/other"})
	o.Add(owl.Declaration{Entity: owl.Class("http://example.org/C")})
	return o, nil
}

func TestTranslateAxiomReader(t *testing.T) {
	r := &stubReader{}
	src := "ontology: x\nowl-axioms: first\nowl-axioms: second\n"
	o := mustTranslate(t, src, Options{AxiomReader: r}).Ontology
	if r.got != "first\nsecond" {
		t.Errorf("reader got %q", r.got)
	}
	requireAxiom(t, o, owl.Declaration{Entity: owl.Class("http://example.org/C")})
	id, _ := o.ID()
	if id.IRI != owl.NSOBO+"x.owl" {
		t.Errorf("ontology id replaced by owl-axioms: %s", id.IRI)
	}
}
