package translate

import (
	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
	"github.com/matzehuels/obo2owl/pkg/owl/ofn"
)

// AxiomReader parses the text of owl-axioms header clauses.
type AxiomReader interface {
	ReadAxioms(text string) (*owl.Ontology, error)
}

// Options configures Translate.
type Options struct {
	// ForceImport adds an import of the oboInOwl vocabulary ontology.
	ForceImport bool
	// AxiomReader reads owl-axioms clauses. Nil uses the functional-syntax
	// reader.
	AxiomReader AxiomReader
	// ExtraIdspaces are registered before the document's idspace clauses.
	ExtraIdspaces map[string]string
}

// DefaultOptions returns options with the oboInOwl import enabled.
func DefaultOptions() Options {
	return Options{ForceImport: true}
}

// Result is a translated document.
type Result struct {
	Ontology *owl.Ontology
	// Prefixes holds the default OBO prefixes plus every idspace.
	Prefixes *owl.Prefixes
	Warnings []Warning
}

// Translate converts doc into an OWL ontology. It expands treat-xrefs
// macros and default namespaces on doc in place first.
//
// Cardinality errors in the header abort before any frame is translated.
// Frame-level errors, such as malformed qualifiers, are collected across
// the whole document and returned together.
func Translate(doc *obo.Document, opts Options) (*Result, error) {
	if err := doc.AssignNamespaces(); err != nil {
		return nil, fromHeaderError(err)
	}
	doc.TreatXrefs()

	ctx, err := NewContext(doc, opts.ExtraIdspaces)
	if err != nil {
		return nil, err
	}

	reader := opts.AxiomReader
	if reader == nil {
		reader = ofn.NewReader()
	}

	out := owl.NewOntology()
	if err := translateHeader(ctx, doc.Header, out, reader); err != nil {
		return nil, err
	}
	if opts.ForceImport {
		out.Add(owl.Import{IRI: owl.OboInOwlOntology})
	}

	dt := &documentTranslator{ctx: ctx, out: out}
	for _, e := range doc.Entities {
		if err := e.AcceptEntity(dt); err != nil {
			return nil, err
		}
	}
	if len(dt.errs) > 0 {
		return nil, errors.Join(dt.errs...)
	}

	return &Result{
		Ontology: out,
		Prefixes: Prefixes(doc, opts.ExtraIdspaces),
		Warnings: dt.warnings,
	}, nil
}

// Prefixes returns the default OBO prefixes plus extra and every idspace
// declared in the header, for CURIE abbreviation by writers.
func Prefixes(doc *obo.Document, extra map[string]string) *owl.Prefixes {
	p := owl.DefaultPrefixes()
	for prefix, base := range extra {
		p.Add(prefix, base)
	}
	for _, hc := range doc.Header {
		if id, ok := hc.(*obo.IdspaceClause); ok {
			p.Add(id.Prefix, id.URL)
		}
	}
	return p
}

// documentTranslator folds entity frames into the output ontology.
type documentTranslator struct {
	ctx      *Context
	out      *owl.Ontology
	errs     []error
	warnings []Warning
}

var _ obo.EntityVisitor = (*documentTranslator)(nil)

func (d *documentTranslator) collect(f *frameTranslator) {
	for _, ac := range f.out {
		d.out.Insert(ac)
	}
	d.errs = append(d.errs, f.errs...)
	d.warnings = append(d.warnings, f.warnings...)
}

func (d *documentTranslator) VisitTermFrame(f *obo.TermFrame) error {
	d.collect(&translateTerm(d.ctx, f).frameTranslator)
	return nil
}

func (d *documentTranslator) VisitTypedefFrame(f *obo.TypedefFrame) error {
	d.collect(&translateTypedef(d.ctx, f).frameTranslator)
	return nil
}

func (d *documentTranslator) VisitInstanceFrame(f *obo.InstanceFrame) error {
	d.warnings = append(d.warnings, Warning{Frame: f.ID.String(), Message: "instance frame dropped"})
	return nil
}
