package obo

import (
	"fmt"
	"strings"
)

// Qualifier is one key=value pair of a trailing {...} block.
type Qualifier struct {
	Key   string
	Value string
}

// Qualifiers is an ordered qualifier list.
type Qualifiers []Qualifier

// Get returns the value of the first qualifier named key.
func (qs Qualifiers) Get(key string) (string, bool) {
	for _, q := range qs {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}

// Has reports whether a qualifier named key is present.
func (qs Qualifiers) Has(key string) bool {
	_, ok := qs.Get(key)
	return ok
}

// Line wraps a clause with its qualifiers and trailing comment.
type Line[C any] struct {
	Clause     C
	Qualifiers Qualifiers
	Comment    string
}

// NewLine returns a line without qualifiers or comment.
func NewLine[C any](c C) Line[C] {
	return Line[C]{Clause: c}
}

// Xref is a database cross-reference with an optional description.
type Xref struct {
	ID   Ident
	Desc string
}

// Xrefs is an ordered list of cross-references.
type Xrefs []Xref

// Definition is the text of a def clause with its supporting xrefs.
type Definition struct {
	Text  string
	Xrefs Xrefs
}

// SynonymScope is the scope of a synonym.
type SynonymScope int

// Synonym scopes.
const (
	ScopeExact SynonymScope = iota
	ScopeBroad
	ScopeNarrow
	ScopeRelated
)

func (s SynonymScope) String() string {
	switch s {
	case ScopeExact:
		return "EXACT"
	case ScopeBroad:
		return "BROAD"
	case ScopeNarrow:
		return "NARROW"
	default:
		return "RELATED"
	}
}

// ParseSynonymScope parses EXACT, BROAD, NARROW or RELATED.
func ParseSynonymScope(s string) (SynonymScope, error) {
	switch s {
	case "EXACT":
		return ScopeExact, nil
	case "BROAD":
		return ScopeBroad, nil
	case "NARROW":
		return ScopeNarrow, nil
	case "RELATED":
		return ScopeRelated, nil
	}
	return 0, fmt.Errorf("invalid synonym scope %q", s)
}

// Synonym is an alternative label with a scope, an optional synonym type
// and supporting xrefs.
type Synonym struct {
	Desc  string
	Scope SynonymScope
	Type  Ident // nil when untyped
	Xrefs Xrefs
}

// PropertyValue is the value of a property_value clause.
type PropertyValue interface {
	Property() Ident
	isPropertyValue()
}

// ResourcePropertyValue relates the frame to another entity.
type ResourcePropertyValue struct {
	Relation Ident
	Target   Ident
}

func (pv ResourcePropertyValue) Property() Ident { return pv.Relation }
func (ResourcePropertyValue) isPropertyValue()   {}

// LiteralPropertyValue relates the frame to a typed literal.
type LiteralPropertyValue struct {
	Relation Ident
	Value    string
	Datatype Ident
}

func (pv LiteralPropertyValue) Property() Ident { return pv.Relation }
func (LiteralPropertyValue) isPropertyValue()   {}

// NaiveDateTime is the dd:MM:yyyy HH:mm date of the header date clause.
type NaiveDateTime struct {
	Day, Month, Year int
	Hour, Minute     int
}

// String renders the OBO form.
func (d NaiveDateTime) String() string {
	return fmt.Sprintf("%02d:%02d:%04d %02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute)
}

// XSD renders the xsd:dateTime lexical form.
func (d NaiveDateTime) XSD() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00", d.Year, d.Month, d.Day, d.Hour, d.Minute)
}

// CreationDate is the value of a creation_date clause: an IsoDate or an
// IsoDateTime.
type CreationDate interface {
	XSD() string
	isCreationDate()
}

// IsoDate is a calendar date.
type IsoDate struct {
	Year, Month, Day int
}

func (d IsoDate) String() string { return d.XSD() }

// XSD renders the xsd:date lexical form.
func (d IsoDate) XSD() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (IsoDate) isCreationDate() {}

// IsoDateTime is an ISO 8601 timestamp. Fraction holds the digits after the
// decimal point, Zone is "Z", an offset such as "+02:00", or empty.
type IsoDateTime struct {
	Date                 IsoDate
	Hour, Minute, Second int
	Fraction             string
	Zone                 string
}

func (d IsoDateTime) String() string { return d.XSD() }

// XSD renders the xsd:dateTime lexical form.
func (d IsoDateTime) XSD() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sT%02d:%02d:%02d", d.Date.XSD(), d.Hour, d.Minute, d.Second)
	if d.Fraction != "" {
		b.WriteString("." + d.Fraction)
	}
	b.WriteString(d.Zone)
	return b.String()
}

func (IsoDateTime) isCreationDate() {}
