package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/observability"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

const testOBO = `format-version: 1.4
ontology: test

[Term]
id: T:1
name: root

[Term]
id: T:2
is_a: T:1
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	observability.SetHTTPHooks(m)
	t.Cleanup(observability.Reset)

	s := New(pipeline.NewRunner(c, nil, logger), logger, WithGatherer(reg))
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestConvert(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		ctype  string
		expect string
	}{
		{"functional", "", "text/owl-functional", "SubClassOf(obo:T_2 obo:T_1)"},
		{"ntriples", "?format=nt", "application/n-triples", "<http://www.w3.org/2000/01/rdf-schema#subClassOf>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/v1/convert"+tt.query, testOBO)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if _, err := uuid.Parse(resp.Header.Get(HeaderConversionID)); err != nil {
				t.Errorf("conversion id %q is not a uuid", resp.Header.Get(HeaderConversionID))
			}
			if !strings.HasPrefix(resp.Header.Get("Content-Type"), tt.ctype) {
				t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.expect) {
				t.Errorf("body missing %q:\n%s", tt.expect, body)
			}
		})
	}
}

func TestConvertCacheHeader(t *testing.T) {
	srv := newTestServer(t)
	first := post(t, srv.URL+"/v1/convert", testOBO)
	second := post(t, srv.URL+"/v1/convert", testOBO)
	if got := first.Header.Get(HeaderCache); got != "MISS" {
		t.Errorf("first X-Cache = %q", got)
	}
	if got := second.Header.Get(HeaderCache); got != "HIT" {
		t.Errorf("second X-Cache = %q", got)
	}
}

func TestConvertErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   string
	}{
		{"empty body", "", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad format", "?format=ttl", testOBO, http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing ontology", "", "format-version: 1.4\n", http.StatusUnprocessableEntity, "INVALID_CARDINALITY"},
		{"syntax", "", "ontology: x\n[Term\n", http.StatusUnprocessableEntity, "PARSE_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/v1/convert"+tt.query, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
			if e.ID != resp.Header.Get(HeaderConversionID) {
				t.Errorf("body id %q does not match header", e.ID)
			}
		})
	}
}

func TestHierarchy(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/v1/hierarchy?format=dot&root=T:1", testOBO)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `[label="root"`) {
		t.Errorf("unexpected DOT:\n%s", body)
	}

	bad := post(t, srv.URL+"/v1/hierarchy?depth=x", testOBO)
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("depth=x status = %d", bad.StatusCode)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || health["status"] != "ok" {
		t.Errorf("healthz = %v, %v", health, err)
	}

	post(t, srv.URL+"/v1/convert", testOBO)

	mresp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer mresp.Body.Close()
	body, _ := io.ReadAll(mresp.Body)
	if !strings.Contains(string(body), `obo2owl_http_requests_total{method="POST",route="/v1/convert",status="200"} 1`) {
		t.Errorf("metrics missing convert request:\n%s", body)
	}
}
