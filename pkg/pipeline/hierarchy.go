package pipeline

import (
	"context"
	"strings"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/hierarchy"
	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/owl"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

// HierarchyOptions configures a class hierarchy rendering.
type HierarchyOptions struct {
	Options

	// Format is hierarchy.FormatSVG (default) or hierarchy.FormatDOT.
	Format string `json:"format,omitempty"`
	// Root is an OBO id or IRI; empty draws every class.
	Root  string `json:"root,omitempty"`
	Depth int    `json:"depth,omitempty"`
}

func (o *HierarchyOptions) validate() error {
	if err := o.Options.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = hierarchy.FormatSVG
	}
	if err := errors.ValidateFormat(o.Format, hierarchy.FormatSVG, hierarchy.FormatDOT); err != nil {
		return err
	}
	if o.Depth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "depth must not be negative")
	}
	return nil
}

// resolveRoot turns a root given as an OBO id into the IRI the translator
// assigned to it.
func resolveRoot(doc *obo.Document, root string, extra map[string]string) (owl.IRI, error) {
	if root == "" || strings.Contains(root, "://") {
		return owl.IRI(root), nil
	}
	ctx, err := translate.NewContext(doc, extra)
	if err != nil {
		return "", err
	}
	return ctx.Resolve(obo.ParseIdent(root)), nil
}

// HierarchyWithCacheInfo renders the is_a hierarchy of an OBO document.
func (r *Runner) HierarchyWithCacheInfo(ctx context.Context, data []byte, opts HierarchyOptions) ([]byte, bool, error) {
	if err := opts.validate(); err != nil {
		return nil, false, err
	}

	key := r.Keyer.HierarchyKey(cache.Hash(data), cache.HierarchyKeyOpts{
		Format:       opts.Format,
		Root:         opts.Root,
		Depth:        opts.Depth,
		ExtraIdspace: opts.ExtraIdspaces,
		Prefixes:     opts.Prefixes,
	})
	if !opts.Refresh {
		if out, ok := r.lookup(ctx, key, "hierarchy"); ok {
			return out, true, nil
		}
	}

	doc, err := Parse(ctx, opts.Source, data)
	if err != nil {
		return nil, false, err
	}
	res, err := Translate(ctx, doc, opts.Options)
	if err != nil {
		return nil, false, err
	}
	root, err := resolveRoot(doc, opts.Root, opts.ExtraIdspaces)
	if err != nil {
		return nil, false, err
	}

	g := hierarchy.Build(res.Ontology, hierarchy.Options{
		Root:     root,
		Depth:    opts.Depth,
		Prefixes: res.Prefixes,
	})
	out, err := hierarchy.Render(ctx, g, opts.Format)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render hierarchy")
	}
	r.Logger.Info("rendered hierarchy",
		"source", opts.Source,
		"classes", len(g.Nodes()),
		"edges", g.EdgeCount())

	r.store(ctx, key, "hierarchy", out, cache.TTLHierarchy)
	return out, false, nil
}

// Hierarchy is HierarchyWithCacheInfo without the cache hit flag.
func (r *Runner) Hierarchy(ctx context.Context, data []byte, opts HierarchyOptions) ([]byte, error) {
	out, _, err := r.HierarchyWithCacheInfo(ctx, data, opts)
	return out, err
}
