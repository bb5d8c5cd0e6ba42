package obo

import "testing"

func TestAssignNamespaces(t *testing.T) {
	doc, err := ParseString(`default-namespace: go
[Term]
id: GO:1
[Term]
id: GO:2
namespace: other
[Typedef]
id: part_of
[Instance]
id: ex:1
`)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.AssignNamespaces(); err != nil {
		t.Fatalf("AssignNamespaces: %v", err)
	}

	terms := doc.Terms()
	ns := terms[0].Clauses[0].Clause.(*NamespaceClause).Namespace
	if ns != UnprefixedIdent("go") {
		t.Errorf("GO:1 namespace = %v, want go", ns)
	}
	if n := len(terms[1].Clauses); n != 1 {
		t.Errorf("GO:2 has %d clauses, want 1", n)
	}
	if _, ok := doc.Typedefs()[0].Clauses[0].Clause.(*NamespaceClause); !ok {
		t.Error("typedef missing namespace clause")
	}
	inst := doc.Entities[3].(*InstanceFrame)
	if inst.Clauses[0].Clause.Value != "go" {
		t.Errorf("instance namespace = %q", inst.Clauses[0].Clause.Value)
	}
}

func TestAssignNamespacesWithoutDefault(t *testing.T) {
	doc, _ := ParseString("[Term]\nid: GO:1\n")
	if err := doc.AssignNamespaces(); err != nil {
		t.Fatalf("AssignNamespaces: %v", err)
	}
	if n := len(doc.Terms()[0].Clauses); n != 0 {
		t.Errorf("clauses = %d, want 0", n)
	}

	doc, _ = ParseString("default-namespace: a\ndefault-namespace: b\n")
	if err := doc.AssignNamespaces(); err == nil {
		t.Error("AssignNamespaces with duplicate default-namespace should fail")
	}
}

func TestTreatXrefs(t *testing.T) {
	doc, err := ParseString(`treat-xrefs-as-equivalent: CL
treat-xrefs-as-is_a: UBERON
treat-xrefs-as-relationship: MA part_of
treat-xrefs-as-genus-differentia: ZFA part_of NCBITaxon:7955
treat-xrefs-as-has-subclass: FMA
[Term]
id: X:1
xref: CL:0000001
xref: UBERON:0000002
xref: MA:0000003
xref: ZFA:0000004
xref: FMA:0000005
xref: OTHER:0000006
`)
	if err != nil {
		t.Fatal(err)
	}
	doc.TreatXrefs()

	term := doc.Terms()[0]
	var got []string
	for _, l := range term.Clauses[6:] {
		got = append(got, l.Clause.Tag())
	}
	want := []string{"equivalent_to", "is_a", "relationship", "intersection_of", "intersection_of"}
	if len(got) != len(want) {
		t.Fatalf("added clauses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("added[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	diff := term.Clauses[10].Clause.(*IntersectionOfClause)
	if diff.Relation != UnprefixedIdent("part_of") || diff.Target.String() != "NCBITaxon:7955" {
		t.Errorf("differentia = %+v", diff)
	}

	if len(doc.Entities) != 2 {
		t.Fatalf("len(Entities) = %d, want 2", len(doc.Entities))
	}
	sub := doc.Entities[1].(*TermFrame)
	if sub.ID.String() != "FMA:0000005" {
		t.Errorf("has-subclass frame id = %v", sub.ID)
	}
	if isa := sub.Clauses[0].Clause.(*IsAClause); isa.Target.String() != "X:1" {
		t.Errorf("has-subclass is_a = %v", isa.Target)
	}
}
