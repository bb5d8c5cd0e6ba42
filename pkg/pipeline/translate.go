package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/observability"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

// Translate converts doc and adds opts.Prefixes to the result's prefixes.
func Translate(ctx context.Context, doc *obo.Document, opts Options) (*translate.Result, error) {
	name, _ := doc.Header.Ontology()
	observability.Conversion().OnTranslateStart(ctx, name)
	start := time.Now()

	res, err := translate.Translate(doc, opts.TranslateOptions())
	if err != nil {
		observability.Conversion().OnTranslateComplete(ctx, name, 0, 0, time.Since(start), err)
		return nil, err
	}
	for prefix, ns := range opts.Prefixes {
		res.Prefixes.Add(prefix, ns)
	}
	observability.Conversion().OnTranslateComplete(ctx, name, res.Ontology.Len(), len(res.Warnings), time.Since(start), nil)
	return res, nil
}
