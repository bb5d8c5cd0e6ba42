package ofn

import (
	"strings"
	"testing"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

const goTerm = owl.NSOBO + "GO_0000001"

func sampleOntology() *owl.Ontology {
	o := owl.NewOntology()
	o.Add(owl.OntologyID{IRI: owl.NSOBO + "go.owl"})
	o.Add(owl.Import{IRI: owl.OboInOwlOntology})
	o.Add(owl.Declaration{Entity: owl.Class(goTerm)})
	o.Add(owl.AnnotationAssertion{
		Subject:    goTerm,
		Annotation: owl.Annotation{Property: owl.AnnotationProperty(owl.RDFSLabel), Value: owl.SimpleLiteral(`mito "x"`)},
	})
	o.Add(owl.SubClassOf{
		Sub: owl.Class(goTerm),
		Super: owl.ObjectSomeValuesFrom{
			Property: owl.ObjectProperty(owl.NSOBO + "BFO_0000050"),
			Filler:   owl.Class(owl.NSOBO + "GO_0000002"),
		},
	}, owl.Annotation{Property: owl.AnnotationProperty(owl.OboInOwlHasDbXref), Value: owl.SimpleLiteral("PMID:1")})
	return o
}

func TestWriteLayout(t *testing.T) {
	data, err := Marshal(sampleOntology(), owl.DefaultPrefixes())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"Prefix(obo:=<http://purl.obolibrary.org/obo/>)\n",
		"Ontology(<http://purl.obolibrary.org/obo/go.owl>\n",
		"Import(<http://www.geneontology.org/formats/oboInOwl>)\n",
		"Declaration(Class(obo:GO_0000001))\n",
		`AnnotationAssertion(rdfs:label obo:GO_0000001 "mito \"x\"")` + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, ")\n") {
		t.Errorf("output should close the ontology, got tail %q", out[len(out)-10:])
	}
	if strings.Index(out, "Declaration(") > strings.Index(out, "SubClassOf(") {
		t.Error("declarations should precede SubClassOf axioms")
	}
}

func TestWriteWithoutPrefixes(t *testing.T) {
	data, err := Marshal(sampleOntology(), nil)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "Prefix(") {
		t.Error("nil prefixes should not emit declarations")
	}
	if !strings.Contains(string(data), "<"+goTerm+">") {
		t.Error("expected full IRIs")
	}
}

func TestRoundTrip(t *testing.T) {
	src := sampleOntology()
	data, err := Marshal(src, owl.DefaultPrefixes())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, _, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.String() != src.String() {
		t.Errorf("round trip mismatch\nwant:\n%s\ngot:\n%s", src, got)
	}
}

func TestReadAxioms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare axiom with prefix",
			text: "Prefix(ex:=<http://example.org/>)\nSubClassOf(ex:a ex:b)",
			want: "SubClassOf(<http://example.org/a> <http://example.org/b>)",
		},
		{
			name: "cardinality without filler",
			text: "SubClassOf(obo:A ObjectMinCardinality(2 obo:r))",
			want: "SubClassOf(<http://purl.obolibrary.org/obo/A> ObjectMinCardinality(2 <http://purl.obolibrary.org/obo/r> <http://www.w3.org/2002/07/owl#Thing>))",
		},
		{
			name: "axiom annotation and comment",
			text: "# note\nDisjointClasses(Annotation(rdfs:comment \"c\"@en) obo:A obo:B)",
			want: `DisjointClasses(Annotation(<http://www.w3.org/2000/01/rdf-schema#comment> "c"@en) <http://purl.obolibrary.org/obo/A> <http://purl.obolibrary.org/obo/B>)`,
		},
		{
			name: "property chain",
			text: "SubObjectPropertyOf(ObjectPropertyChain(obo:r obo:s) obo:r)",
			want: "SubObjectPropertyOf(ObjectPropertyChain(<http://purl.obolibrary.org/obo/r> <http://purl.obolibrary.org/obo/s>) <http://purl.obolibrary.org/obo/r>)",
		},
		{
			name: "typed literal",
			text: `AnnotationAssertion(dc:date obo:A "2020-01-01"^^xsd:date)`,
			want: `AnnotationAssertion(<http://purl.org/dc/elements/1.1/date> <http://purl.obolibrary.org/obo/A> "2020-01-01"^^<http://www.w3.org/2001/XMLSchema#date>)`,
		},
		{
			name: "characteristic",
			text: "TransitiveObjectProperty(obo:r)",
			want: "TransitiveObjectProperty(<http://purl.obolibrary.org/obo/r>)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewReader().ReadAxioms(tt.text)
			if err != nil {
				t.Fatalf("ReadAxioms: %v", err)
			}
			if got := strings.TrimSpace(o.String()); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"unterminated call", "SubClassOf(obo:A obo:B", errors.ErrCodeInvalidSyntax},
		{"unterminated literal", `AnnotationAssertion(rdfs:label obo:A "x)`, errors.ErrCodeInvalidSyntax},
		{"unknown prefix", "SubClassOf(nope:A obo:B)", errors.ErrCodeInvalidSyntax},
		{"wrong arity", "SubClassOf(obo:A)", errors.ErrCodeInvalidSyntax},
		{"unsupported axiom", "HasKey(obo:A obo:p)", errors.ErrCodeUnsupported},
		{"stray paren", "SubClassOf(obo:A (obo:B))", errors.ErrCodeInvalidSyntax},
		{"unsupported expression", "SubClassOf(obo:A DataSomeValuesFrom(obo:p xsd:string))", errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader().ReadAxioms(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error %v: want code %s", err, tt.code)
			}
		})
	}
}

func TestReaderRegistersPrefixes(t *testing.T) {
	rd := NewReader()
	if _, err := rd.ReadAxioms("Prefix(ex:=<http://example.org/>)"); err != nil {
		t.Fatalf("ReadAxioms: %v", err)
	}
	if ns, ok := rd.Prefixes.Namespace("ex"); !ok || ns != "http://example.org/" {
		t.Errorf("Namespace(ex) = %q, %v", ns, ok)
	}
}
