package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/observability"
	"github.com/matzehuels/obo2owl/pkg/owl/ofn"
	"github.com/matzehuels/obo2owl/pkg/owl/rdf"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

// Serialize writes a translated ontology in the given format.
func Serialize(ctx context.Context, res *translate.Result, format string) ([]byte, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatFunctional:
		data, err = ofn.Marshal(res.Ontology, res.Prefixes)
	case FormatNTriples:
		data, err = rdf.Marshal(res.Ontology)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	observability.Conversion().OnSerializeComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}
