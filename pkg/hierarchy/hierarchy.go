// Package hierarchy draws the asserted class hierarchy of an ontology.
//
// Only SubClassOf axioms between two named classes contribute edges;
// restrictions and general class inclusions are ignored. Node labels come
// from rdfs:label assertions, falling back to the abbreviated IRI.
package hierarchy

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/obo2owl/pkg/owl"
)

// Graph is a class hierarchy: Parents maps a class to its direct
// superclasses.
type Graph struct {
	Labels  map[owl.IRI]string
	Parents map[owl.IRI][]owl.IRI
	nodes   map[owl.IRI]bool
}

// Options configures Build.
type Options struct {
	// Root limits the graph to Root and its subclasses.
	Root owl.IRI
	// Depth limits how many levels below Root are kept. Zero means no limit.
	Depth int
	// Prefixes abbreviates IRIs of unlabelled classes.
	Prefixes *owl.Prefixes
}

// Build extracts the named-class hierarchy of o.
func Build(o *owl.Ontology, opts Options) *Graph {
	g := &Graph{
		Labels:  make(map[owl.IRI]string),
		Parents: make(map[owl.IRI][]owl.IRI),
		nodes:   make(map[owl.IRI]bool),
	}
	for _, ac := range o.ByKind(owl.KindDeclaration) {
		if c, ok := ac.Component.(owl.Declaration).Entity.(owl.Class); ok {
			g.nodes[owl.IRI(c)] = true
		}
	}
	for _, ac := range o.ByKind(owl.KindSubClassOf) {
		ax := ac.Component.(owl.SubClassOf)
		sub, ok1 := ax.Sub.(owl.Class)
		sup, ok2 := ax.Super.(owl.Class)
		if !ok1 || !ok2 {
			continue
		}
		g.nodes[owl.IRI(sub)] = true
		g.nodes[owl.IRI(sup)] = true
		g.Parents[owl.IRI(sub)] = append(g.Parents[owl.IRI(sub)], owl.IRI(sup))
	}
	for _, ac := range o.ByKind(owl.KindAnnotationAssertion) {
		a := ac.Component.(owl.AnnotationAssertion)
		if a.Annotation.Property != owl.AnnotationProperty(owl.RDFSLabel) || !g.nodes[a.Subject] {
			continue
		}
		if lit, ok := a.Annotation.Value.(owl.Literal); ok {
			if _, seen := g.Labels[a.Subject]; !seen {
				g.Labels[a.Subject] = lit.Lexical
			}
		}
	}
	for iri := range g.nodes {
		if _, ok := g.Labels[iri]; !ok {
			g.Labels[iri] = abbreviate(opts.Prefixes, iri)
		}
	}
	if opts.Root != "" {
		g.restrict(opts.Root, opts.Depth)
	}
	return g
}

func abbreviate(p *owl.Prefixes, iri owl.IRI) string {
	if p != nil {
		if s := p.Abbreviate(iri); s != "" {
			return s
		}
	}
	return string(iri)
}

// restrict keeps root and its descendants up to depth levels.
func (g *Graph) restrict(root owl.IRI, depth int) {
	children := make(map[owl.IRI][]owl.IRI)
	for sub, sups := range g.Parents {
		for _, sup := range sups {
			children[sup] = append(children[sup], sub)
		}
	}

	keep := map[owl.IRI]bool{root: g.nodes[root]}
	frontier := []owl.IRI{root}
	for level := 1; len(frontier) > 0 && (depth == 0 || level <= depth); level++ {
		var next []owl.IRI
		for _, n := range frontier {
			for _, c := range children[n] {
				if !keep[c] {
					keep[c] = true
					next = append(next, c)
				}
			}
		}
		frontier = next
	}

	for n := range g.nodes {
		if !keep[n] {
			delete(g.nodes, n)
			delete(g.Labels, n)
			delete(g.Parents, n)
		}
	}
	for sub, sups := range g.Parents {
		g.Parents[sub] = slices.DeleteFunc(sups, func(s owl.IRI) bool { return !keep[s] })
	}
}

// Nodes returns the classes of the graph in IRI order.
func (g *Graph) Nodes() []owl.IRI {
	out := make([]owl.IRI, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// EdgeCount returns the number of subclass edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, sups := range g.Parents {
		n += len(sups)
	}
	return n
}

// ToDOT renders the graph in Graphviz DOT, superclasses above subclasses.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	nodes := g.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [label=%q, tooltip=%q];\n", string(n), g.Labels[n], string(n))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		sups := slices.Clone(g.Parents[n])
		slices.Sort(sups)
		for _, s := range sups {
			fmt.Fprintf(&buf, "  %q -> %q;\n", string(n), string(s))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces graphviz's point-sized svg element with one
// sized from its viewBox, so the drawing scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Formats supported by Render.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Render returns g as DOT text or SVG.
func Render(ctx context.Context, g *Graph, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatDOT:
		return []byte(g.ToDOT()), nil
	case FormatSVG:
		return RenderSVG(ctx, g.ToDOT())
	}
	return nil, fmt.Errorf("unsupported hierarchy format %q", format)
}
