package obo

import (
	"regexp"
	"strings"
)

// Ident is an OBO identifier: prefixed (GO:0000001), unprefixed (part_of)
// or a URL.
type Ident interface {
	String() string
	isIdent()
}

// PrefixedIdent is an identifier of the form Prefix:Local.
type PrefixedIdent struct {
	Prefix string
	Local  string
}

func (id PrefixedIdent) String() string { return id.Prefix + ":" + id.Local }
func (PrefixedIdent) isIdent()          {}

// UnprefixedIdent is a bare local identifier such as part_of.
type UnprefixedIdent string

func (id UnprefixedIdent) String() string { return string(id) }
func (UnprefixedIdent) isIdent()          {}

// URLIdent is an absolute URL used as an identifier.
type URLIdent string

func (id URLIdent) String() string { return string(id) }
func (URLIdent) isIdent()          {}

var urlScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// ParseIdent classifies s. Backslash escapes are resolved and an escaped
// colon does not separate prefix from local part.
func ParseIdent(s string) Ident {
	if urlScheme.MatchString(s) || strings.HasPrefix(s, "urn:") {
		return URLIdent(s)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ':':
			if i == 0 {
				return UnprefixedIdent(unescape(s))
			}
			return PrefixedIdent{Prefix: unescape(s[:i]), Local: unescape(s[i+1:])}
		}
	}
	return UnprefixedIdent(unescape(s))
}

// IdentEqual reports whether a and b denote the same identifier.
func IdentEqual(a, b Ident) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
