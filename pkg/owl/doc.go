// Package owl is an in-memory model of OWL2 ontologies: IRIs, entities,
// class and property expressions, literals, annotations and the axioms
// ("components") that make up an ontology.
//
// An [Ontology] is a set of [AnnotatedComponent] values. Two components are
// the same element when their functional-syntax renderings with full IRIs
// are equal, and [Ontology.Components] returns them in a total order (by
// component kind, then rendering) so output is stable across runs.
//
// Serializers live in subpackages: [github.com/matzehuels/obo2owl/pkg/owl/ofn]
// for OWL functional syntax and [github.com/matzehuels/obo2owl/pkg/owl/rdf]
// for N-Triples.
package owl
