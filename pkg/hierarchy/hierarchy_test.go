package hierarchy

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/obo2owl/pkg/owl"
)

const obo = owl.NSOBO

func testOntology() *owl.Ontology {
	o := owl.NewOntology()
	for _, id := range []string{"X_1", "X_2", "X_3", "X_4"} {
		o.Add(owl.Declaration{Entity: owl.Class(obo + id)})
	}
	o.Add(owl.SubClassOf{Sub: owl.Class(obo + "X_2"), Super: owl.Class(obo + "X_1")})
	o.Add(owl.SubClassOf{Sub: owl.Class(obo + "X_3"), Super: owl.Class(obo + "X_2")})
	o.Add(owl.SubClassOf{Sub: owl.Class(obo + "X_4"), Super: owl.Class(obo + "X_1")})
	o.Add(owl.SubClassOf{
		Sub:   owl.Class(obo + "X_4"),
		Super: owl.ObjectSomeValuesFrom{Property: owl.ObjectProperty(obo + "BFO_0000050"), Filler: owl.Class(obo + "X_3")},
	})
	o.Add(owl.AnnotationAssertion{
		Subject:    obo + "X_1",
		Annotation: owl.Annotation{Property: owl.AnnotationProperty(owl.RDFSLabel), Value: owl.SimpleLiteral("root")},
	})
	return o
}

func TestBuild(t *testing.T) {
	g := Build(testOntology(), Options{Prefixes: owl.DefaultPrefixes()})

	if n := len(g.Nodes()); n != 4 {
		t.Errorf("nodes = %d, want 4", n)
	}
	if n := g.EdgeCount(); n != 3 {
		t.Errorf("edges = %d, want 3 (restrictions are skipped)", n)
	}
	if got := g.Labels[obo+"X_1"]; got != "root" {
		t.Errorf("label X_1 = %q", got)
	}
	if got := g.Labels[obo+"X_3"]; got != "obo:X_3" {
		t.Errorf("label X_3 = %q, want abbreviated IRI", got)
	}
}

func TestBuildRoot(t *testing.T) {
	tests := []struct {
		name  string
		root  owl.IRI
		depth int
		want  int
	}{
		{"whole tree", obo + "X_1", 0, 4},
		{"one level", obo + "X_1", 1, 3},
		{"subtree", obo + "X_2", 0, 2},
		{"leaf", obo + "X_3", 0, 1},
		{"unknown", obo + "X_9", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(testOntology(), Options{Root: tt.root, Depth: tt.depth})
			if n := len(g.Nodes()); n != tt.want {
				t.Errorf("nodes = %v, want %d", g.Nodes(), tt.want)
			}
			for sub, sups := range g.Parents {
				for _, s := range sups {
					if !g.nodes[s] {
						t.Errorf("edge %s -> %s leaves the graph", sub, s)
					}
				}
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	dot := Build(testOntology(), Options{}).ToDOT()
	for _, want := range []string{
		"digraph G {",
		"rankdir=BT;",
		`"http://purl.obolibrary.org/obo/X_1" [label="root"`,
		`"http://purl.obolibrary.org/obo/X_2" -> "http://purl.obolibrary.org/obo/X_1";`,
		`"http://purl.obolibrary.org/obo/X_4" -> "http://purl.obolibrary.org/obo/X_1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	out, err := Render(context.Background(), Build(testOntology(), Options{}), "dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "digraph G {") {
		t.Errorf("Render(dot) = %q", out)
	}
	if _, err := Render(context.Background(), &Graph{}, "png"); err == nil {
		t.Error("Render(png) should fail")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
