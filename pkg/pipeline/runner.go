package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/observability"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so that caching behaves the same.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL applies to cached conversions; zero uses cache.TTLConversion.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedConversion is what a conversion stores in the cache.
type cachedConversion struct {
	Output   []byte              `json:"output"`
	Warnings []translate.Warning `json:"warnings,omitempty"`
	Stats    Stats               `json:"stats"`
}

// Execute runs parse → translate → serialize on data, returning cached
// output when the same input was converted with the same options before.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	key := r.Keyer.ConversionKey(cache.Hash(data), opts.ConversionKeyOpts())
	result := &Result{CacheInfo: CacheInfo{Key: key}}

	if !opts.Refresh {
		if raw, ok := r.lookup(ctx, key, "conversion"); ok {
			var cc cachedConversion
			if err := json.Unmarshal(raw, &cc); err == nil {
				result.Output = cc.Output
				result.Warnings = cc.Warnings
				result.Stats = cc.Stats
				result.CacheInfo.Hit = true
				r.Logger.Debug("conversion cache hit", "source", opts.Source)
				return result, nil
			}
		}
	}

	// Stage 1: Parse
	parseStart := time.Now()
	doc, err := Parse(ctx, opts.Source, data)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Frames = len(doc.Entities)

	r.Logger.Info("parsed document",
		"source", opts.Source,
		"frames", result.Stats.Frames,
		"duration", result.Stats.ParseTime)

	// Stage 2: Translate
	translateStart := time.Now()
	res, err := Translate(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Ontology = res.Ontology
	result.Prefixes = res.Prefixes
	result.Warnings = res.Warnings
	result.Stats.TranslateTime = time.Since(translateStart)
	result.Stats.Components = res.Ontology.Len()
	result.Stats.Kinds = countKinds(res)

	r.Logger.Info("translated ontology",
		"source", opts.Source,
		"components", result.Stats.Components,
		"warnings", len(res.Warnings),
		"duration", result.Stats.TranslateTime)
	for _, w := range res.Warnings {
		r.Logger.Debug("translation warning", "source", opts.Source, "warning", w.String())
	}

	// Stage 3: Serialize
	serializeStart := time.Now()
	out, err := Serialize(ctx, res, opts.Format)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.SerializeTime = time.Since(serializeStart)

	r.Logger.Info("serialized ontology",
		"source", opts.Source,
		"format", opts.Format,
		"bytes", len(out),
		"duration", result.Stats.SerializeTime)

	if raw, err := json.Marshal(cachedConversion{Output: out, Warnings: res.Warnings, Stats: result.Stats}); err == nil {
		ttl := r.TTL
		if ttl == 0 {
			ttl = cache.TTLConversion
		}
		r.store(ctx, key, "conversion", raw, ttl)
	}
	return result, nil
}

func countKinds(res *translate.Result) map[string]int {
	kinds := make(map[string]int)
	for _, ac := range res.Ontology.Components() {
		kinds[ac.Component.Kind().String()]++
	}
	return kinds
}

// lookup reads key and reports the hit or miss to the cache hooks.
func (r *Runner) lookup(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key_type", keyType, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key_type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
