package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/obo2owl/pkg/obo"
	"github.com/matzehuels/obo2owl/pkg/observability"
)

// Parse reads OBO text. Syntax errors are reported against source.
func Parse(ctx context.Context, source string, data []byte) (*obo.Document, error) {
	observability.Conversion().OnParseStart(ctx, source)
	start := time.Now()

	doc, err := obo.Parse(bytes.NewReader(data))
	var se *obo.SyntaxError
	if stderrors.As(err, &se) && se.Path == "" {
		se.Path = source
	}

	frames := 0
	if doc != nil {
		frames = len(doc.Entities)
	}
	observability.Conversion().OnParseComplete(ctx, source, frames, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
