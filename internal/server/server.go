// Package server exposes the conversion pipeline over HTTP.
//
//	POST /v1/convert?format=ofn|nt   body: OBO text, response: converted text
//	POST /v1/hierarchy?format=svg|dot&root=ID&depth=N
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/obo2owl/pkg/buildinfo"
	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/hierarchy"
	"github.com/matzehuels/obo2owl/pkg/observability"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

// maxBodySize bounds request bodies; the largest OBO releases are a few
// hundred megabytes.
const maxBodySize = 512 << 20

// Headers set on conversion responses.
const (
	HeaderConversionID = "X-Conversion-Id"
	HeaderCache        = "X-Cache"
	HeaderWarnings     = "X-Translation-Warnings"
)

// Server serves conversions through a pipeline.Runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	gatherer prometheus.Gatherer
	defaults pipeline.Options
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithDefaults sets the options requests start from.
func WithDefaults(o pipeline.Options) Option {
	return func(s *Server) { s.defaults = o }
}

// New returns a server using runner for conversions.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		logger:   logger,
		gatherer: prometheus.DefaultGatherer,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Post("/hierarchy", s.handleHierarchy)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// instrument reports every request to the HTTP hooks, labelled by route
// pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// requestOptions starts from the server defaults and applies query
// parameters.
func (s *Server) requestOptions(r *http.Request) pipeline.Options {
	opts := s.defaults
	opts.Logger = s.logger
	q := r.URL.Query()
	if f := q.Get("format"); f != "" {
		opts.Format = f
	}
	if q.Get("import") == "false" {
		opts.SkipImport = true
	}
	if q.Get("refresh") == "true" {
		opts.Refresh = true
	}
	return opts
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}
	return data, nil
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set(HeaderConversionID, id)

	data, err := readBody(w, r)
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	opts := s.requestOptions(r)
	opts.Source = "request " + id
	res, err := s.runner.Execute(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	ct := "text/owl-functional; charset=utf-8"
	if opts.Format == pipeline.FormatNTriples {
		ct = "application/n-triples; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set(HeaderCache, cacheHeader(res.CacheInfo.Hit))
	w.Header().Set(HeaderWarnings, strconv.Itoa(len(res.Warnings)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output)
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set(HeaderConversionID, id)

	data, err := readBody(w, r)
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.HierarchyOptions{
		Options: s.requestOptions(r),
		Format:  q.Get("format"),
		Root:    q.Get("root"),
	}
	// format selects the drawing here, not the ontology serialization.
	opts.Options.Format = ""
	opts.Source = "request " + id
	if d := q.Get("depth"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			s.writeError(w, id, errors.New(errors.ErrCodeInvalidInput, "depth must be an integer"))
			return
		}
		opts.Depth = n
	}

	out, hit, err := s.runner.HierarchyWithCacheInfo(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	ct := "image/svg+xml"
	if opts.Format == hierarchy.FormatDOT {
		ct = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set(HeaderCache, cacheHeader(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps error codes to HTTP statuses: input problems are 4xx,
// everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInternal):
		return http.StatusInternalServerError
	case errors.Is(err, errors.ErrCodeInvalidFormat), errors.Is(err, errors.ErrCodeInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeParse),
		errors.Is(err, errors.ErrCodeInvalidCardinality),
		errors.Is(err, errors.ErrCodeInvalidQualifier),
		errors.Is(err, errors.ErrCodeInvalidSyntax),
		errors.Is(err, errors.ErrCodeInvalidIRI),
		errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, id string, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	if status >= 500 {
		s.logger.Error("conversion failed", "id", id, "error", err)
	} else {
		s.logger.Debug("conversion rejected", "id", id, "error", err)
	}
	writeJSON(w, status, errorResponse{ID: id, Code: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
