package owl

import (
	"sort"
	"strings"
)

// AnnotatedComponent is a component with its annotation set.
type AnnotatedComponent struct {
	Component   Component
	Annotations []Annotation
}

// Annotated wraps c with the given annotations.
func Annotated(c Component, anns ...Annotation) AnnotatedComponent {
	return AnnotatedComponent{Component: c, Annotations: normalize(anns)}
}

func (ac AnnotatedComponent) functional(w *fnWriter) {
	w.b.WriteString(ac.Component.Kind().String())
	w.b.WriteByte('(')
	first := true
	for _, a := range ac.Annotations {
		if !first {
			w.b.WriteByte(' ')
		}
		a.functional(w)
		first = false
	}
	for _, a := range ac.Component.args() {
		if !first {
			w.b.WriteByte(' ')
		}
		a.functional(w)
		first = false
	}
	w.b.WriteByte(')')
}

// Key is the canonical rendering used for set membership.
func (ac AnnotatedComponent) Key() string { return Functional(ac, nil) }

// normalize sorts annotations by their canonical rendering and removes
// duplicates.
func normalize(anns []Annotation) []Annotation {
	if len(anns) == 0 {
		return nil
	}
	type keyed struct {
		key string
		ann Annotation
	}
	ks := make([]keyed, 0, len(anns))
	for _, a := range anns {
		ks = append(ks, keyed{Functional(a, nil), a})
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	out := make([]Annotation, 0, len(ks))
	for i, k := range ks {
		if i > 0 && k.key == ks[i-1].key {
			continue
		}
		out = append(out, k.ann)
	}
	return out
}

// Ontology is a set of annotated components.
type Ontology struct {
	items map[string]AnnotatedComponent
}

// NewOntology returns an empty ontology.
func NewOntology() *Ontology {
	return &Ontology{items: make(map[string]AnnotatedComponent)}
}

// Insert adds ac and reports whether it was not already present.
func (o *Ontology) Insert(ac AnnotatedComponent) bool {
	ac.Annotations = normalize(ac.Annotations)
	key := ac.Key()
	if _, ok := o.items[key]; ok {
		return false
	}
	o.items[key] = ac
	return true
}

// Add inserts c with the given annotations.
func (o *Ontology) Add(c Component, anns ...Annotation) bool {
	return o.Insert(AnnotatedComponent{Component: c, Annotations: anns})
}

// Remove deletes ac and reports whether it was present.
func (o *Ontology) Remove(ac AnnotatedComponent) bool {
	ac.Annotations = normalize(ac.Annotations)
	key := ac.Key()
	if _, ok := o.items[key]; !ok {
		return false
	}
	delete(o.items, key)
	return true
}

// Contains reports whether ac is an element of the ontology.
func (o *Ontology) Contains(ac AnnotatedComponent) bool {
	ac.Annotations = normalize(ac.Annotations)
	_, ok := o.items[ac.Key()]
	return ok
}

// Len returns the number of components.
func (o *Ontology) Len() int { return len(o.items) }

// Count returns the number of components of kind k.
func (o *Ontology) Count(k Kind) int {
	n := 0
	for _, ac := range o.items {
		if ac.Component.Kind() == k {
			n++
		}
	}
	return n
}

// Components returns every component ordered by kind, then by canonical
// rendering.
func (o *Ontology) Components() []AnnotatedComponent {
	keys := make([]string, 0, len(o.items))
	for k := range o.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := o.items[keys[i]].Component.Kind(), o.items[keys[j]].Component.Kind()
		if ki != kj {
			return ki < kj
		}
		return keys[i] < keys[j]
	})
	out := make([]AnnotatedComponent, len(keys))
	for i, k := range keys {
		out[i] = o.items[k]
	}
	return out
}

// ByKind returns the components of kind k in order.
func (o *Ontology) ByKind(k Kind) []AnnotatedComponent {
	var out []AnnotatedComponent
	for _, ac := range o.Components() {
		if ac.Component.Kind() == k {
			out = append(out, ac)
		}
	}
	return out
}

// ID returns the ontology id component, if any.
func (o *Ontology) ID() (OntologyID, bool) {
	for _, ac := range o.items {
		if id, ok := ac.Component.(OntologyID); ok {
			return id, true
		}
	}
	return OntologyID{}, false
}

// Merge inserts every component of other.
func (o *Ontology) Merge(other *Ontology) {
	for _, ac := range other.items {
		o.Insert(ac)
	}
}

// String renders every component on its own line with full IRIs.
func (o *Ontology) String() string {
	var b strings.Builder
	for _, ac := range o.Components() {
		b.WriteString(ac.Key())
		b.WriteByte('\n')
	}
	return b.String()
}
