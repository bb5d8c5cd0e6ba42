// Package pipeline provides the OBO to OWL conversion pipeline.
//
// This package implements the parse → translate → serialize pipeline used by
// the CLI and the HTTP server. Centralizing it keeps caching, logging and
// metrics identical across entry points.
//
// # Stages
//
//  1. Parse: read OBO text into an [obo.Document]
//  2. Translate: build the OWL ontology with [translate.Translate]
//  3. Serialize: write functional syntax or N-Triples
//
// Each stage can be run on its own or through a [Runner], which caches the
// serialized output by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Source: "go.obo",
//	    Format: pipeline.FormatNTriples,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("go.nt", result.Output, 0o644)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/owl"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

// Format constants for output formats.
const (
	FormatFunctional = "ofn"
	FormatNTriples   = "nt"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatFunctional

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatFunctional: true,
	FormatNTriples:   true,
}

// Extension returns the file extension for an output format.
func Extension(format string) string {
	if format == FormatNTriples {
		return ".nt"
	}
	return ".owl"
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, FormatFunctional, FormatNTriples)
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Source names the input in logs and errors.
	Source string `json:"source,omitempty"`
	Format string `json:"format,omitempty"`
	// SkipImport disables the forced oboInOwl import.
	SkipImport    bool              `json:"skip_import,omitempty"`
	ExtraIdspaces map[string]string `json:"extra_idspaces,omitempty"`
	// Prefixes are extra CURIE prefixes used only to abbreviate output.
	Prefixes map[string]string `json:"prefixes,omitempty"`
	Refresh  bool              `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger      *log.Logger           `json:"-"`
	AxiomReader translate.AxiomReader `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Ontology is the translated ontology. It is nil when the output came
	// from the cache.
	Ontology *owl.Ontology

	// Prefixes used to abbreviate the output; nil on a cache hit.
	Prefixes *owl.Prefixes

	// Output is the serialized ontology.
	Output []byte

	// Warnings lists constructs the translator approximated or dropped.
	Warnings []translate.Warning

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the output came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Frames        int            `json:"frames"`
	Components    int            `json:"components"`
	Kinds         map[string]int `json:"kinds,omitempty"`
	ParseTime     time.Duration  `json:"parse_time"`
	TranslateTime time.Duration  `json:"translate_time"`
	SerializeTime time.Duration  `json:"serialize_time"`
}

// CacheInfo tracks cache use for a run.
type CacheInfo struct {
	Hit bool
	Key string
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	for prefix, base := range o.ExtraIdspaces {
		if err := errors.ValidateIdspacePrefix(prefix); err != nil {
			return err
		}
		if err := errors.ValidateIRI(base); err != nil {
			return err
		}
	}
	if o.Source == "" {
		o.Source = "<input>"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// TranslateOptions returns the translator options for o.
func (o *Options) TranslateOptions() translate.Options {
	return translate.Options{
		ForceImport:   !o.SkipImport,
		AxiomReader:   o.AxiomReader,
		ExtraIdspaces: o.ExtraIdspaces,
	}
}

// ConversionKeyOpts returns cache key options for a conversion.
func (o *Options) ConversionKeyOpts() cache.ConversionKeyOpts {
	return cache.ConversionKeyOpts{
		Format:       o.Format,
		ForceImport:  !o.SkipImport,
		ExtraIdspace: o.ExtraIdspaces,
		Prefixes:     o.Prefixes,
	}
}
