// Package translate converts OBO documents into OWL2 ontologies.
//
// Translation runs in two passes. [NewContext] scans the header for the
// ontology name and idspaces, then scans every typedef for class-level and
// metadata-tag relations and xref shorthands. [Translate] then folds the
// header and each entity frame into an [owl.Ontology]:
//
//	doc, _ := obo.ParseFile("go.obo")
//	res, err := translate.Translate(doc, translate.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	ofn.NewWriter(os.Stdout, res.Prefixes).Write(res.Ontology)
//
// Identifiers resolve as follows: prefixed identifiers use the declared
// idspace base when there is one and the OBO PURL scheme otherwise,
// unprefixed identifiers are local to the ontology IRI, and URLs are used
// as they are.
//
// Relations carrying cardinality, all_only or all_some qualifiers become
// the matching class expressions; see [Context.Build].
//
// Constructs with no exact OWL counterpart, such as instance frames or
// typedef intersection_of, are approximated or dropped and reported as
// [Warning] values on the [Result].
package translate
