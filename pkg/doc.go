// Package pkg provides the libraries behind obo2owl, an OBO 1.4 to OWL2
// translator.
//
// # Overview
//
// The pkg directory is organized by pipeline stage:
//
//  1. [obo] - OBO flat-file model and parser
//  2. [owl] - OWL2 structural model, functional syntax and RDF writers
//  3. [translate] - OBO document to OWL ontology translation
//  4. [pipeline] - Orchestration (parse → translate → serialize) with caching
//  5. [hierarchy] - is_a hierarchy drawings via Graphviz
//
// Supporting packages: [cache] (file, Redis and null backends), [config]
// (TOML/YAML settings), [errors] (coded errors), [httputil] (downloading
// remote OBO files), [observability] (hooks and Prometheus metrics) and
// [buildinfo].
//
// # Architecture
//
//	OBO text
//	    ↓
//	[obo] package (scan, parse, expand treat-xrefs macros)
//	    ↓
//	[translate] package (resolve identifiers, build axioms)
//	    ↓
//	[owl] package (ontology set)
//	    ↓
//	functional syntax / N-Triples / class hierarchy SVG
//
// # Quick Start
//
//	doc, err := obo.Parse(strings.NewReader(text))
//	if err != nil {
//	    return err
//	}
//	res, err := translate.Translate(doc, translate.Options{ForceImport: true})
//	if err != nil {
//	    return err
//	}
//	out, err := ofn.Marshal(res.Ontology, res.Prefixes)
//
// Most callers use [pipeline.Runner] instead, which adds caching, logging
// and metrics.
//
// [obo]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/obo
// [owl]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/owl
// [translate]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/translate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/pipeline#Runner
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/hierarchy
// [cache]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/obo2owl/pkg/buildinfo
package pkg
