package translate

import (
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// Resolve maps an identifier to its IRI.
func (c *Context) Resolve(id obo.Ident) owl.IRI {
	switch id := id.(type) {
	case obo.PrefixedIdent:
		if base, ok := c.idspaces[id.Prefix]; ok {
			return owl.IRI(base + id.Local)
		}
		return owl.IRI(owl.NSOBO + id.Prefix + "_" + id.Local)
	case obo.UnprefixedIdent:
		return owl.IRI(string(c.ontologyIRI) + "#" + string(id))
	case obo.URLIdent:
		return owl.IRI(id)
	}
	return ""
}

// ResolveRelation maps a relation identifier to its IRI, replacing an
// unprefixed typedef id by its xref shorthand first.
func (c *Context) ResolveRelation(id obo.Ident) owl.IRI {
	if local, ok := id.(obo.UnprefixedIdent); ok {
		if short, ok := c.shorthands[string(local)]; ok {
			return c.Resolve(short)
		}
	}
	return c.Resolve(id)
}
