package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/httputil"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

const testOBO = `format-version: 1.4
ontology: test

[Term]
id: T:1
name: root

[Term]
id: T:2
name: child
is_a: T:1
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// recordingReporter collects finished results.
type recordingReporter struct {
	mu      sync.Mutex
	started []string
	results []fileResult
}

func (r *recordingReporter) started(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, path)
}

func (r *recordingReporter) finished(fr fileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, fr)
}

func newTestBatch(t *testing.T, outputDir string) *batch {
	t.Helper()
	opts := pipeline.Options{Format: pipeline.FormatFunctional, Logger: quietLogger()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	return &batch{
		runner:    pipeline.NewRunner(cache.NewNullCache(), nil, quietLogger()),
		opts:      opts,
		outputDir: outputDir,
		jobs:      2,
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.obo"), testOBO)
	writeFile(t, filepath.Join(dir, "b.obo"), testOBO)
	writeFile(t, filepath.Join(dir, "nested", "c.obo"), testOBO)
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"plain path", []string{filepath.Join(dir, "a.obo")}, []string{"a.obo"}},
		{"glob", []string{filepath.Join(dir, "*.obo")}, []string{"a.obo", "b.obo"}},
		{"double star", []string{filepath.Join(dir, "**", "*.obo")}, []string{"a.obo", "b.obo", filepath.Join("nested", "c.obo")}},
		{"deduplicated", []string{filepath.Join(dir, "a.obo"), filepath.Join(dir, "*.obo")}, []string{"a.obo", "b.obo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandInputs(tt.args)
			if err != nil {
				t.Fatalf("expandInputs() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expandInputs() = %v, want %v", got, tt.want)
			}
			for i, w := range tt.want {
				if got[i] != filepath.Join(dir, w) {
					t.Errorf("expandInputs()[%d] = %q, want %q", i, got[i], filepath.Join(dir, w))
				}
			}
		})
	}
}

func TestExpandInputsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{filepath.Join(dir, "missing.obo")}, errors.ErrCodeFileNotFound},
		{"directory", []string{dir}, errors.ErrCodeInvalidPath},
		{"no matches", []string{filepath.Join(dir, "*.obo")}, errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expandInputs(tt.args)
			if !errors.Is(err, tt.code) {
				t.Errorf("expandInputs() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, outputDir, format string
		want                     string
	}{
		{"data/go.obo", "", pipeline.FormatFunctional, filepath.Join("data", "go.owl")},
		{"data/go.obo", "", pipeline.FormatNTriples, filepath.Join("data", "go.nt")},
		{"data/go.obo", "out", pipeline.FormatFunctional, filepath.Join("out", "go.owl")},
		{"go", "", pipeline.FormatNTriples, "go.nt"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.outputDir, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.input, tt.outputDir, tt.format, got, tt.want)
		}
	}
}

func TestBatchRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.obo")
	bad := filepath.Join(dir, "bad.obo")
	writeFile(t, good, testOBO)
	writeFile(t, bad, "format-version: 1.4\n")

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	b := newTestBatch(t, outDir)
	rep := &recordingReporter{}
	err := b.run(context.Background(), []string{good, bad}, rep)
	if !errors.Is(err, errors.ErrCodeInvalidCardinality) {
		t.Fatalf("run() error = %v, want cardinality error", err)
	}
	if !strings.Contains(err.Error(), "bad.obo") {
		t.Errorf("run() error %q should name the failing file", err)
	}

	if len(rep.started) != 2 || len(rep.results) != 2 {
		t.Fatalf("reporter saw %d starts and %d results, want 2 each", len(rep.started), len(rep.results))
	}

	out, err := os.ReadFile(filepath.Join(outDir, "good.owl"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(out), "Ontology(") {
		t.Errorf("output is not functional syntax:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.owl")); !os.IsNotExist(err) {
		t.Error("failed conversion should not write output")
	}

	entries, _ := os.ReadDir(outDir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestBatchRunCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.obo")
	writeFile(t, path, testOBO)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := &recordingReporter{}
	err := newTestBatch(t, "").run(ctx, []string{path}, rep)
	if err == nil {
		t.Fatal("run() with cancelled context should fail")
	}
	if len(rep.results) != 0 {
		t.Errorf("cancelled batch converted %d files", len(rep.results))
	}
}

func TestConvertStream(t *testing.T) {
	opts := pipeline.Options{Format: pipeline.FormatNTriples}
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, quietLogger())

	var out bytes.Buffer
	err := convertStream(context.Background(), runner, opts, strings.NewReader(testOBO), &out)
	if err != nil {
		t.Fatalf("convertStream() error: %v", err)
	}
	if !strings.Contains(out.String(), "<http://www.w3.org/2002/07/owl#Ontology>") {
		t.Errorf("N-Triples output missing ontology header:\n%s", out.String())
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.owl")
	if err := writeFileAtomic(path, []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := writeFileAtomic(path, []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("content = %q, want %q", got, "two")
	}
}

func TestReadInputURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testOBO))
	}))
	defer srv.Close()

	data, err := readInput(context.Background(), httputil.NewFetcher(nil), srv.URL+"/test.obo")
	if err != nil {
		t.Fatalf("readInput() error: %v", err)
	}
	if string(data) != testOBO {
		t.Errorf("readInput() = %q", data)
	}

	if got := outputPath(srv.URL+"/test.obo", "out", pipeline.FormatNTriples); got != filepath.Join("out", "test.nt") {
		t.Errorf("outputPath(url) = %q", got)
	}
	if got := hierarchyOutput(srv.URL+"/test.obo", "svg"); got != "test.svg" {
		t.Errorf("hierarchyOutput(url) = %q", got)
	}
}
