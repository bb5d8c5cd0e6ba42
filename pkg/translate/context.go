package translate

import (
	stderrors "errors"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// Context holds the document-wide state needed to translate frames. It is
// built once per document by NewContext and must not be shared between
// documents.
type Context struct {
	idspaces    map[string]string
	ontologyIRI owl.IRI

	currentFrame owl.IRI
	frameID      string
	inAnnotation bool

	classLevel  map[owl.IRI]bool
	metadataTag map[owl.IRI]bool
	shorthands  map[string]obo.Ident
}

// NewContext builds the context for doc. extra idspaces are applied before
// the header's own idspace clauses, which take precedence.
//
// The first pass reads the header for idspaces and the ontology name. The
// second pass scans every typedef, so relation sets are complete before any
// frame is translated.
func NewContext(doc *obo.Document, extra map[string]string) (*Context, error) {
	c := &Context{
		idspaces: map[string]string{
			"BFO": owl.NSOBO + "BFO_",
			"RO":  owl.NSOBO + "RO_",
			"xsd": owl.NSXSD,
		},
		classLevel:  make(map[owl.IRI]bool),
		metadataTag: make(map[owl.IRI]bool),
		shorthands:  make(map[string]obo.Ident),
	}
	for prefix, base := range extra {
		c.idspaces[prefix] = base
	}

	name, err := doc.Header.Ontology()
	if err != nil {
		return nil, fromHeaderError(err)
	}
	for _, hc := range doc.Header {
		if id, ok := hc.(*obo.IdspaceClause); ok {
			c.idspaces[id.Prefix] = id.URL
		}
	}

	iri := owl.NSOBO + name
	if err := errors.ValidateIRI(iri); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSyntax, err, "ontology %q does not form a valid IRI", name)
	}
	c.ontologyIRI = owl.IRI(iri)
	c.currentFrame = c.ontologyIRI

	typedefs := doc.Typedefs()
	for _, f := range typedefs {
		if local, ok := f.ID.(obo.UnprefixedIdent); ok {
			if short := findShorthand(f); short != nil {
				c.shorthands[string(local)] = short
			}
		}
	}
	for _, f := range typedefs {
		iri := c.ResolveRelation(f.ID)
		if f.IsClassLevel() {
			c.classLevel[iri] = true
		}
		if f.IsMetadataTag() {
			c.metadataTag[iri] = true
		}
	}
	return c, nil
}

// fromHeaderError converts a header accessor error into a CardinalityError.
func fromHeaderError(err error) error {
	var ce *obo.CardinalityError
	if stderrors.As(err, &ce) {
		msg := "duplicate"
		if ce.Missing {
			msg = "missing"
		}
		return &CardinalityError{Tag: ce.Tag, Msg: msg}
	}
	return err
}

// findShorthand picks the canonical identifier of an unprefixed typedef
// among its xrefs: RO first, then BFO, then the first other prefixed xref,
// then the first URL.
func findShorthand(f *obo.TypedefFrame) obo.Ident {
	var ro, bfo, prefixed, url obo.Ident
	for _, l := range f.Clauses {
		x, ok := l.Clause.(*obo.XrefClause)
		if !ok {
			continue
		}
		switch id := x.Xref.ID.(type) {
		case obo.PrefixedIdent:
			switch {
			case id.Prefix == "RO" && ro == nil:
				ro = id
			case id.Prefix == "BFO" && bfo == nil:
				bfo = id
			case prefixed == nil:
				prefixed = id
			}
		case obo.URLIdent:
			if url == nil {
				url = id
			}
		}
	}
	for _, id := range []obo.Ident{ro, bfo, prefixed, url} {
		if id != nil {
			return id
		}
	}
	return nil
}

// OntologyIRI returns {OBO}{ontology}, the base of unprefixed identifiers.
func (c *Context) OntologyIRI() owl.IRI { return c.ontologyIRI }

// CurrentFrame returns the IRI of the frame being translated.
func (c *Context) CurrentFrame() owl.IRI { return c.currentFrame }

// InAnnotation reports whether the current frame is an annotation property.
func (c *Context) InAnnotation() bool { return c.inAnnotation }

// Idspace returns the base URL registered for prefix.
func (c *Context) Idspace(prefix string) (string, bool) {
	base, ok := c.idspaces[prefix]
	return base, ok
}

// IsClassLevel reports whether relation was declared is_class_level.
func (c *Context) IsClassLevel(relation owl.IRI) bool { return c.classLevel[relation] }

// IsMetadataTag reports whether relation was declared is_metadata_tag.
func (c *Context) IsMetadataTag(relation owl.IRI) bool { return c.metadataTag[relation] }

// Shorthand returns the canonical identifier of an unprefixed typedef.
func (c *Context) Shorthand(local string) (obo.Ident, bool) {
	id, ok := c.shorthands[local]
	return id, ok
}

func (c *Context) enter(id obo.Ident, iri owl.IRI, annotation bool) {
	c.frameID = id.String()
	c.currentFrame = iri
	c.inAnnotation = annotation
}
