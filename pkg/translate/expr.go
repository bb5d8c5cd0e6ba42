package translate

import (
	"strconv"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
)

// count reads a numeric qualifier. ok is false when the key is absent.
func (c *Context) count(qs obo.Qualifiers, key string) (n uint32, ok bool, err error) {
	v, ok := qs.Get(key)
	if !ok {
		return 0, false, nil
	}
	u, perr := strconv.ParseUint(v, 10, 32)
	if perr != nil {
		return 0, true, &InvalidQualifierValueError{Frame: c.frameID, Key: key, Value: v}
	}
	return uint32(u), true, nil
}

// Build returns the class expression for "relation filler" under the
// clause's qualifiers. The first matching rule wins:
//
//  1. cardinality=0 gives AllValuesFrom(r, ComplementOf(F)); any other
//     cardinality gives ExactCardinality(n, r, F)
//  2. maxCardinality=0 gives AllValuesFrom(r, ComplementOf(F))
//  3. minCardinality and maxCardinality give the intersection of
//     MinCardinality and MaxCardinality
//  4. minCardinality alone gives MinCardinality(n, r, F)
//  5. maxCardinality alone gives MaxCardinality(n, r, ComplementOf(F))
//  6. all_only gives AllValuesFrom(r, F), intersected with
//     SomeValuesFrom(r, F) when all_some is also present
//  7. otherwise HasValue(r, F) for class-level relations and
//     SomeValuesFrom(r, F) for the rest
//
// Cardinality values must be non-negative integers; every malformed value
// is reported as an InvalidQualifierValueError.
func (c *Context) Build(qs obo.Qualifiers, relation, filler obo.Ident) (owl.ClassExpression, error) {
	r := owl.ObjectProperty(c.ResolveRelation(relation))
	f := owl.Class(c.Resolve(filler))

	exact, hasExact, err1 := c.count(qs, "cardinality")
	lo, hasMin, err2 := c.count(qs, "minCardinality")
	hi, hasMax, err3 := c.count(qs, "maxCardinality")
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, err
	}

	never := owl.ObjectAllValuesFrom{Property: r, Filler: owl.ObjectComplementOf{Operand: f}}
	switch {
	case hasExact && exact == 0:
		return never, nil
	case hasExact:
		return owl.ObjectExactCardinality{N: exact, Property: r, Filler: f}, nil
	case hasMax && hi == 0:
		return never, nil
	case hasMin && hasMax:
		return owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
			owl.ObjectMinCardinality{N: lo, Property: r, Filler: f},
			owl.ObjectMaxCardinality{N: hi, Property: r, Filler: f},
		}}, nil
	case hasMin:
		return owl.ObjectMinCardinality{N: lo, Property: r, Filler: f}, nil
	case hasMax:
		return owl.ObjectMaxCardinality{N: hi, Property: r, Filler: owl.ObjectComplementOf{Operand: f}}, nil
	}

	if qs.Has("all_only") {
		only := owl.ObjectAllValuesFrom{Property: r, Filler: f}
		if qs.Has("all_some") {
			return owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
				owl.ObjectSomeValuesFrom{Property: r, Filler: f},
				only,
			}}, nil
		}
		return only, nil
	}
	if c.IsClassLevel(owl.IRI(r)) {
		return owl.ObjectHasValue{Property: r, Individual: owl.NamedIndividual(f)}, nil
	}
	return owl.ObjectSomeValuesFrom{Property: r, Filler: f}, nil
}

// gci returns the subclass side of a general class inclusion when both
// gci_relation and gci_filler qualify the clause, and the current frame's
// class otherwise.
func (c *Context) gci(qs obo.Qualifiers) owl.ClassExpression {
	self := owl.Class(c.currentFrame)
	rel, ok1 := qs.Get("gci_relation")
	fill, ok2 := qs.Get("gci_filler")
	if !ok1 || !ok2 {
		return self
	}
	return owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
		self,
		owl.ObjectSomeValuesFrom{
			Property: owl.ObjectProperty(c.ResolveRelation(obo.ParseIdent(rel))),
			Filler:   owl.Class(c.Resolve(obo.ParseIdent(fill))),
		},
	}}
}
