// Package ofn reads and writes the OWL2 functional-style syntax.
//
// The writer emits one Prefix declaration per registered prefix, then the
// ontology with one component per line in the model's canonical order:
//
//	Prefix(GO:=<http://purl.obolibrary.org/obo/GO_>)
//	Ontology(<http://purl.obolibrary.org/obo/go.owl>
//	Declaration(Class(GO:0000001))
//	...
//	)
//
// The reader accepts the same syntax, with or without the Ontology wrapper,
// and is used to splice owl-axioms header clauses into converted ontologies.
package ofn

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/obo2owl/pkg/owl"
)

// Writer serializes ontologies.
type Writer struct {
	w        io.Writer
	prefixes *owl.Prefixes
}

// NewWriter returns a writer abbreviating IRIs with p. A nil p writes full
// IRIs only.
func NewWriter(w io.Writer, p *owl.Prefixes) *Writer {
	return &Writer{w: w, prefixes: p}
}

// Write serializes o.
func (wr *Writer) Write(o *owl.Ontology) error {
	bw := bufio.NewWriter(wr.w)

	var abbrev owl.Abbreviator
	if wr.prefixes != nil {
		abbrev = wr.prefixes.Abbreviator()
		for _, p := range wr.prefixes.List() {
			fmt.Fprintf(bw, "Prefix(%s:=<%s>)\n", p.Name, p.Namespace)
		}
		bw.WriteString("\n")
	}

	bw.WriteString("Ontology(")
	if id, ok := o.ID(); ok && id.IRI != "" {
		fmt.Fprintf(bw, "<%s>", id.IRI)
		if id.VersionIRI != "" {
			fmt.Fprintf(bw, " <%s>", id.VersionIRI)
		}
	}
	bw.WriteString("\n")

	for _, ac := range o.Components() {
		if ac.Component.Kind() == owl.KindOntologyID {
			continue
		}
		bw.WriteString(owl.Functional(ac, abbrev))
		bw.WriteString("\n")
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

// Marshal renders o to a byte slice.
func Marshal(o *owl.Ontology, p *owl.Prefixes) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, p).Write(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
