// Package obo provides the abstract syntax tree of the OBO 1.4 flat-file
// format and a parser producing it.
//
// A [Document] is a header followed by entity frames. Frames hold ordered
// clause lines; each [Line] carries the clause itself, its trailing
// qualifier list and an optional comment:
//
//	[Term]
//	id: GO:0000001
//	name: mitochondrion inheritance
//	relationship: part_of GO:0048308 {cardinality="1"} ! organelle inheritance
//
// Clauses are closed sets of concrete types. Code consuming them implements
// [HeaderClauseVisitor], [TermClauseVisitor] or [TypedefClauseVisitor], so
// that adding a clause kind breaks every consumer until it handles the new
// kind.
//
// # Parsing
//
//	doc, err := obo.ParseFile("go-basic.obo")
//	if err != nil {
//	    return err
//	}
//	doc.AssignNamespaces()
//	doc.TreatXrefs()
package obo
