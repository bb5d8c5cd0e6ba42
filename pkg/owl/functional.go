package owl

import "strings"

// Node is any model value with a functional-syntax rendering.
type Node interface {
	functional(w *fnWriter)
}

// Abbreviator shortens an IRI to a CURIE. It returns "" when the IRI has no
// usable prefix, in which case the full <IRI> form is written.
type Abbreviator func(IRI) string

// Functional renders n in OWL functional syntax. A nil abbrev writes every
// IRI in full, which is the canonical form used for equality and ordering.
func Functional(n Node, abbrev Abbreviator) string {
	w := &fnWriter{abbrev: abbrev}
	n.functional(w)
	return w.b.String()
}

type fnWriter struct {
	b      strings.Builder
	abbrev Abbreviator
}

func (w *fnWriter) iri(i IRI) {
	if w.abbrev != nil {
		if s := w.abbrev(i); s != "" {
			w.b.WriteString(s)
			return
		}
	}
	w.b.WriteByte('<')
	w.b.WriteString(string(i))
	w.b.WriteByte('>')
}

// call writes name(arg arg ...).
func (w *fnWriter) call(name string, args ...Node) {
	w.b.WriteString(name)
	w.b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		a.functional(w)
	}
	w.b.WriteByte(')')
}

func (w *fnWriter) quoted(s string) {
	w.b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			w.b.WriteByte('\\')
		}
		w.b.WriteByte(s[i])
	}
	w.b.WriteByte('"')
}

// raw is a Node writing fixed text.
type raw string

func (r raw) functional(w *fnWriter) { w.b.WriteString(string(r)) }

func (i IRI) functional(w *fnWriter) { w.iri(i) }
