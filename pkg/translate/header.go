package translate

import (
	"strings"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// headerTranslator turns header clauses into ontology annotations and the
// few axioms header clauses declare.
type headerTranslator struct {
	ctx       *Context
	out       *owl.Ontology
	owlAxioms []string
}

var _ obo.HeaderClauseVisitor = (*headerTranslator)(nil)

// ontologyID returns the id of the translated ontology: {OBO}{name}.owl,
// with version IRI {OBO}{name}/{data-version}/{name}.owl when the header
// has a data-version.
func ontologyID(h obo.Header) (owl.OntologyID, error) {
	name, err := h.Ontology()
	if err != nil {
		return owl.OntologyID{}, fromHeaderError(err)
	}
	id := owl.OntologyID{IRI: owl.IRI(owl.NSOBO + name + ".owl")}
	dv, err := h.DataVersion()
	switch {
	case err == nil:
		id.VersionIRI = owl.IRI(owl.NSOBO + name + "/" + dv + "/" + name + ".owl")
	case isMissing(err):
	default:
		return owl.OntologyID{}, fromHeaderError(err)
	}
	return id, nil
}

func isMissing(err error) bool {
	ce, ok := err.(*obo.CardinalityError)
	return ok && ce.Missing
}

// translateHeader emits the ontology id, then every header clause, then
// the spliced owl-axioms.
func translateHeader(ctx *Context, h obo.Header, out *owl.Ontology, reader AxiomReader) error {
	id, err := ontologyID(h)
	if err != nil {
		return err
	}
	out.Add(id)

	t := &headerTranslator{ctx: ctx, out: out}
	for _, hc := range h {
		if err := hc.AcceptHeader(t); err != nil {
			return err
		}
	}
	if len(t.owlAxioms) == 0 {
		return nil
	}
	spliced, err := reader.ReadAxioms(strings.Join(t.owlAxioms, "\n"))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSyntax, err, "read owl-axioms")
	}
	for _, ac := range spliced.Components() {
		if ac.Component.Kind() != owl.KindOntologyID {
			out.Insert(ac)
		}
	}
	return nil
}

func (t *headerTranslator) annotate(p owl.IRI, v owl.AnnotationValue) {
	t.out.Add(owl.OntologyAnnotation{Annotation: t.ctx.annotation(p, v)})
}

func (t *headerTranslator) VisitFormatVersion(c *obo.FormatVersionClause) error {
	t.annotate(owl.OboInOwlHasOBOFormatVersion, Literal(c.Version))
	return nil
}

// Data version only contributes to the ontology id.
func (t *headerTranslator) VisitDataVersion(*obo.DataVersionClause) error { return nil }

func (t *headerTranslator) VisitDate(c *obo.DateClause) error {
	t.annotate(owl.OboInOwlHasDate, DateLiteral(c.Date))
	return nil
}

func (t *headerTranslator) VisitSavedBy(c *obo.SavedByClause) error {
	t.annotate(owl.OboInOwlSavedBy, Literal(c.Name))
	return nil
}

func (t *headerTranslator) VisitAutoGeneratedBy(c *obo.AutoGeneratedByClause) error {
	t.annotate(owl.OboInOwlAutoGeneratedBy, Literal(c.Name))
	return nil
}

// VisitImport adds an import. Abbreviated imports such as "go" resolve to
// {OBO}go.owl.
func (t *headerTranslator) VisitImport(c *obo.ImportClause) error {
	iri := owl.IRI(owl.NSOBO + c.Import.String() + ".owl")
	if u, ok := c.Import.(obo.URLIdent); ok {
		iri = owl.IRI(u)
	}
	t.out.Add(owl.Import{IRI: iri})
	return nil
}

func (t *headerTranslator) VisitSubsetdef(c *obo.SubsetdefClause) error {
	iri := t.ctx.Resolve(c.Subset)
	t.out.Add(owl.Declaration{Entity: owl.AnnotationProperty(iri)})
	t.out.Add(owl.SubAnnotationPropertyOf{
		Sub:   owl.AnnotationProperty(iri),
		Super: owl.AnnotationProperty(owl.OboInOwlSubsetProperty),
	})
	t.out.Add(owl.AnnotationAssertion{Subject: iri, Annotation: t.ctx.annotation(owl.RDFSLabel, Literal(c.Subset.String()))})
	t.out.Add(owl.AnnotationAssertion{Subject: iri, Annotation: t.ctx.annotation(owl.RDFSComment, Literal(c.Desc))})
	return nil
}

func (t *headerTranslator) VisitSynonymTypedef(c *obo.SynonymTypedefClause) error {
	iri := t.ctx.Resolve(c.Type)
	t.out.Add(owl.Declaration{Entity: owl.AnnotationProperty(iri)})
	t.out.Add(owl.SubAnnotationPropertyOf{
		Sub:   owl.AnnotationProperty(iri),
		Super: owl.AnnotationProperty(owl.OboInOwlSynonymTypeProperty),
	})
	t.out.Add(owl.AnnotationAssertion{Subject: iri, Annotation: t.ctx.annotation(owl.RDFSLabel, Literal(c.Desc))})
	if c.Scope != nil {
		t.out.Add(owl.AnnotationAssertion{Subject: iri, Annotation: t.ctx.annotation(owl.OboInOwlHasScope, ScopeProperty(*c.Scope))})
	}
	return nil
}

func (t *headerTranslator) VisitDefaultNamespace(c *obo.DefaultNamespaceClause) error {
	t.annotate(owl.OboInOwlHasDefaultNamespace, Literal(c.Namespace.String()))
	return nil
}

func (t *headerTranslator) VisitNamespaceIDRule(c *obo.NamespaceIDRuleClause) error {
	t.annotate(owl.OboInOwlNamespaceIDRule, Literal(c.Rule))
	return nil
}

// Idspaces are consumed by NewContext.
func (t *headerTranslator) VisitIdspace(*obo.IdspaceClause) error { return nil }

// Treat-xrefs macros are expanded on the document before translation.
func (t *headerTranslator) VisitTreatXrefs(*obo.TreatXrefsClause) error { return nil }

func (t *headerTranslator) VisitHeaderPropertyValue(c *obo.HeaderPropertyValueClause) error {
	t.out.Add(owl.OntologyAnnotation{Annotation: t.ctx.PropertyValue(c.Value)})
	return nil
}

func (t *headerTranslator) VisitRemark(c *obo.RemarkClause) error {
	t.annotate(owl.RDFSComment, Literal(c.Text))
	return nil
}

func (t *headerTranslator) VisitOntology(*obo.OntologyClause) error { return nil }

func (t *headerTranslator) VisitOwlAxioms(c *obo.OwlAxiomsClause) error {
	t.owlAxioms = append(t.owlAxioms, c.Text)
	return nil
}

func (t *headerTranslator) VisitUnreserved(*obo.UnreservedClause) error { return nil }
