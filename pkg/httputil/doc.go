// Package httputil downloads OBO documents over HTTP.
//
// Ontologies are usually published at stable PURLs such as
// http://purl.obolibrary.org/obo/go.obo. A [Fetcher] downloads them with
// retries on transient failures (network errors, 429 and 5xx responses) and
// keeps the body in a [cache.Cache] so that repeated conversions of the same
// URL do not download it again.
//
//	f := httputil.NewFetcher(fileCache)
//	data, cached, err := f.Fetch(ctx, "http://purl.obolibrary.org/obo/ro.obo")
package httputil
