package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/matzehuels/obo2owl/pkg/buildinfo"
	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/errors"
)

// Defaults for [NewFetcher].
const (
	DefaultTTL      = 24 * time.Hour
	DefaultAttempts = 3
	DefaultMaxBytes = 1 << 30
)

// Fetcher downloads documents and caches their bodies.
type Fetcher struct {
	Client   *http.Client
	Cache    cache.Cache
	TTL      time.Duration
	Attempts int
	Delay    time.Duration
	// MaxBytes bounds the body size; larger documents are rejected.
	MaxBytes int64
}

// NewFetcher returns a fetcher storing bodies in c. A nil c disables caching.
func NewFetcher(c cache.Cache) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Fetcher{
		Client:   &http.Client{Timeout: 5 * time.Minute},
		Cache:    c,
		TTL:      DefaultTTL,
		Attempts: DefaultAttempts,
		Delay:    time.Second,
		MaxBytes: DefaultMaxBytes,
	}
}

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// BaseName returns the last path element of a URL without its extension,
// e.g. "go" for http://purl.obolibrary.org/obo/go.obo.
func BaseName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "download"
	}
	base := path.Base(u.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

func fetchKey(rawURL string) string {
	return "fetch:" + cache.Hash([]byte(rawURL))
}

// Fetch returns the body at rawURL and whether it came from the cache.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, bool, error) {
	if err := errors.ValidateURL(rawURL); err != nil {
		return nil, false, err
	}

	key := fetchKey(rawURL)
	if data, ok, err := f.Cache.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	var body []byte
	err := Retry(ctx, f.Attempts, f.Delay, func() error {
		var err error
		body, err = f.get(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	_ = f.Cache.Set(ctx, key, body, f.TTL)
	return body, false, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "request %s", rawURL)
	}
	req.Header.Set("User-Agent", "obo2owl/"+buildinfo.Version)
	req.Header.Set("Accept", "text/obo, text/plain;q=0.9, */*;q=0.1")

	resp, err := f.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeInternal, err, "fetch %s", rawURL)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "fetch %s: not found", rawURL)
	case retryableStatus(resp.StatusCode):
		return nil, &RetryableError{Err: errors.New(errors.ErrCodeInternal, "fetch %s: %s", rawURL, resp.Status)}
	case resp.StatusCode >= 400:
		return nil, errors.New(errors.ErrCodeInvalidInput, "fetch %s: %s", rawURL, resp.Status)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeInternal, err, "read %s", rawURL)}
	}
	if int64(len(data)) > limit {
		return nil, errors.New(errors.ErrCodeInvalidInput, "fetch %s: body exceeds %s", rawURL, formatBytes(limit))
	}
	return data, nil
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%d GiB", n>>30)
	case n >= 1<<20:
		return fmt.Sprintf("%d MiB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}
