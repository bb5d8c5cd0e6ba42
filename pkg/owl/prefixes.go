package owl

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Prefixes maps CURIE prefixes to namespace IRIs. It wraps a cayley
// voc.Namespaces registry, whose prefixes carry a trailing colon.
type Prefixes struct {
	ns *voc.Namespaces
}

// NewPrefixes returns an empty mapping.
func NewPrefixes() *Prefixes {
	return &Prefixes{ns: &voc.Namespaces{}}
}

// DefaultPrefixes returns the prefixes every converted ontology declares:
// xsd, owl, obo, oboInOwl, xml, rdf, dc and rdfs.
func DefaultPrefixes() *Prefixes {
	p := NewPrefixes()
	p.Add("xsd", NSXSD)
	p.Add("owl", NSOWL)
	p.Add("obo", NSOBO)
	p.Add("oboInOwl", NSOboInOwl)
	p.Add("xml", NSXML)
	p.Add(strings.TrimSuffix(rdf.Prefix, ":"), rdf.NS)
	p.Add("dc", NSDC)
	p.Add(strings.TrimSuffix(rdfs.Prefix, ":"), rdfs.NS)
	return p
}

// Add registers prefix (without colon) for namespace. A later call for the
// same prefix replaces the namespace.
func (p *Prefixes) Add(prefix, namespace string) {
	if old, ok := p.Namespace(prefix); ok {
		if old == namespace {
			return
		}
		fresh := &voc.Namespaces{}
		for _, n := range p.ns.List() {
			if n.Prefix != prefix+":" {
				fresh.Register(n)
			}
		}
		p.ns = fresh
	}
	p.ns.Register(voc.Namespace{Prefix: prefix + ":", Full: namespace})
}

// Clone returns an independent copy.
func (p *Prefixes) Clone() *Prefixes {
	c := NewPrefixes()
	for _, n := range p.ns.List() {
		c.ns.Register(n)
	}
	return c
}

// Namespace returns the namespace registered for prefix.
func (p *Prefixes) Namespace(prefix string) (string, bool) {
	for _, n := range p.ns.List() {
		if n.Prefix == prefix+":" {
			return n.Full, true
		}
	}
	return "", false
}

// Prefix is one prefix declaration.
type Prefix struct {
	Name      string
	Namespace string
}

// List returns the declarations sorted by prefix name.
func (p *Prefixes) List() []Prefix {
	var out []Prefix
	for _, n := range p.ns.List() {
		out = append(out, Prefix{Name: strings.TrimSuffix(n.Prefix, ":"), Namespace: n.Full})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Expand resolves a CURIE to a full IRI. Strings that do not start with a
// known prefix are returned unchanged.
func (p *Prefixes) Expand(curie string) IRI {
	return IRI(p.ns.FullIRI(curie))
}

var pnLocal = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// Abbreviate returns the CURIE for iri using the longest matching
// namespace, or "" when no namespace matches or the local part would not
// be a valid CURIE local name.
func (p *Prefixes) Abbreviate(iri IRI) string {
	s := string(iri)
	best := ""
	bestNS := ""
	for _, n := range p.ns.List() {
		if len(n.Full) > len(bestNS) && strings.HasPrefix(s, n.Full) {
			local := s[len(n.Full):]
			if !pnLocal.MatchString(local) || strings.HasSuffix(local, ".") {
				continue
			}
			best, bestNS = n.Prefix+local, n.Full
		}
	}
	return best
}

// Abbreviator returns p.Abbreviate as an Abbreviator.
func (p *Prefixes) Abbreviator() Abbreviator {
	return p.Abbreviate
}
