package translate

import (
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// reservedQualifiers drive class expressions and never become annotations.
var reservedQualifiers = map[string]bool{
	"cardinality":    true,
	"minCardinality": true,
	"maxCardinality": true,
	"gci_relation":   true,
	"gci_filler":     true,
	"all_some":       true,
	"all_only":       true,
}

// Literal translates an OBO string, quoted or not, into a simple literal.
func Literal(s string) owl.Literal { return owl.SimpleLiteral(s) }

// DateLiteral translates a header date into an xsd:dateTime literal.
func DateLiteral(d obo.NaiveDateTime) owl.Literal {
	return owl.TypedLiteral(d.XSD(), owl.XSDDateTime)
}

// CreationDateLiteral translates a creation_date value: dates become
// xsd:date, date-times xsd:dateTime.
func CreationDateLiteral(d obo.CreationDate) owl.Literal {
	if _, ok := d.(obo.IsoDate); ok {
		return owl.TypedLiteral(d.XSD(), owl.XSDDate)
	}
	return owl.TypedLiteral(d.XSD(), owl.XSDDateTime)
}

func (c *Context) annotation(p owl.IRI, v owl.AnnotationValue) owl.Annotation {
	return owl.Annotation{Property: owl.AnnotationProperty(p), Value: v}
}

// assertion builds an annotation assertion on the current frame.
func (c *Context) assertion(p owl.IRI, v owl.AnnotationValue) owl.AnnotationAssertion {
	return owl.AnnotationAssertion{Subject: c.currentFrame, Annotation: c.annotation(p, v)}
}

// PropertyValue translates a property_value into an annotation. Resource
// values become IRIs; literal values keep their datatype, xsd:string when
// none was given.
func (c *Context) PropertyValue(pv obo.PropertyValue) owl.Annotation {
	prop := c.ResolveRelation(pv.Property())
	switch pv := pv.(type) {
	case obo.ResourcePropertyValue:
		return c.annotation(prop, c.Resolve(pv.Target))
	case obo.LiteralPropertyValue:
		dt := owl.XSDString
		if pv.Datatype != nil {
			dt = c.Resolve(pv.Datatype)
		}
		return c.annotation(prop, owl.TypedLiteral(pv.Value, dt))
	}
	return owl.Annotation{}
}

// QualifierAnnotations translates every non-reserved qualifier into a
// simple-literal annotation keyed by the qualifier's relation IRI.
func (c *Context) QualifierAnnotations(qs obo.Qualifiers) []owl.Annotation {
	var out []owl.Annotation
	for _, q := range qs {
		if reservedQualifiers[q.Key] {
			continue
		}
		out = append(out, c.annotation(c.ResolveRelation(obo.ParseIdent(q.Key)), Literal(q.Value)))
	}
	return out
}

// XrefAnnotation translates an xref into an oboInOwl:hasDbXref annotation.
func (c *Context) XrefAnnotation(x obo.Xref) owl.Annotation {
	return c.annotation(owl.OboInOwlHasDbXref, Literal(x.ID.String()))
}

// XrefAnnotations translates an xref list.
func (c *Context) XrefAnnotations(xs obo.Xrefs) []owl.Annotation {
	out := make([]owl.Annotation, 0, len(xs))
	for _, x := range xs {
		out = append(out, c.XrefAnnotation(x))
	}
	return out
}

// Xref translates an xref clause into an assertion on the current frame.
// A description becomes an rdfs:label annotation of the assertion.
func (c *Context) Xref(x obo.Xref) owl.AnnotatedComponent {
	var anns []owl.Annotation
	if x.Desc != "" {
		anns = append(anns, c.annotation(owl.RDFSLabel, Literal(x.Desc)))
	}
	return owl.Annotated(owl.AnnotationAssertion{Subject: c.currentFrame, Annotation: c.XrefAnnotation(x)}, anns...)
}

// Definition translates a def clause into an IAO:0000115 assertion
// annotated with its xrefs.
func (c *Context) Definition(d obo.Definition) owl.AnnotatedComponent {
	return owl.Annotated(c.assertion(owl.IAODefinition, Literal(d.Text)), c.XrefAnnotations(d.Xrefs)...)
}

var synonymProperties = map[obo.SynonymScope]owl.IRI{
	obo.ScopeExact:   owl.OboInOwlHasExactSynonym,
	obo.ScopeBroad:   owl.OboInOwlHasBroadSynonym,
	obo.ScopeNarrow:  owl.OboInOwlHasNarrowSynonym,
	obo.ScopeRelated: owl.OboInOwlHasRelatedSynonym,
}

// ScopeProperty returns the oboInOwl property of a synonym scope.
func ScopeProperty(s obo.SynonymScope) owl.IRI { return synonymProperties[s] }

// Synonym translates a synonym clause into a scoped assertion annotated
// with its xrefs and, when typed, oboInOwl:hasSynonymType.
func (c *Context) Synonym(s obo.Synonym) owl.AnnotatedComponent {
	anns := c.XrefAnnotations(s.Xrefs)
	if s.Type != nil {
		anns = append(anns, c.annotation(owl.OboInOwlHasSynonymType, c.Resolve(s.Type)))
	}
	return owl.Annotated(c.assertion(ScopeProperty(s.Scope), Literal(s.Desc)), anns...)
}
