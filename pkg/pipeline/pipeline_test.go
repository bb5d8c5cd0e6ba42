package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/obo2owl/pkg/cache"
	"github.com/matzehuels/obo2owl/pkg/errors"
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

[Instance]
id: T:9
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, quietLogger())
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"ofn", false},
		{"nt", false},
		{"ttl", true},
		{"OFN", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Format != DefaultFormat || o.Logger == nil || o.Source == "" {
		t.Errorf("defaults not applied: %+v", o)
	}
	if !o.TranslateOptions().ForceImport {
		t.Error("ForceImport should default to true")
	}

	bad := Options{ExtraIdspaces: map[string]string{"EX": "no scheme"}}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidIRI) {
		t.Errorf("err = %v, want INVALID_IRI", err)
	}
}

func TestExtension(t *testing.T) {
	if Extension(FormatFunctional) != ".owl" || Extension(FormatNTriples) != ".nt" {
		t.Error("unexpected extensions")
	}
}

func TestExecuteCaches(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	first, err := r.Execute(ctx, []byte(testOBO), Options{Source: "test.obo"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.Hit {
		t.Error("first run should miss")
	}
	if first.Ontology == nil {
		t.Fatal("Ontology should be set on a miss")
	}
	if !strings.Contains(string(first.Output), "Ontology(<http://purl.obolibrary.org/obo/test.owl>") {
		t.Errorf("unexpected output:\n%s", first.Output)
	}
	if len(first.Warnings) != 1 {
		t.Errorf("warnings = %v, want the dropped instance", first.Warnings)
	}
	if first.Stats.Frames != 3 || first.Stats.Kinds["SubClassOf"] != 1 {
		t.Errorf("stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, []byte(testOBO), Options{Source: "test.obo"})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.Hit {
		t.Error("second run should hit")
	}
	if string(second.Output) != string(first.Output) {
		t.Error("cached output differs")
	}
	if len(second.Warnings) != 1 || second.Stats.Components != first.Stats.Components {
		t.Errorf("cached metadata lost: %+v", second)
	}

	refreshed, err := r.Execute(ctx, []byte(testOBO), Options{Source: "test.obo", Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.Hit {
		t.Error("refresh should bypass the cache")
	}

	other, err := r.Execute(ctx, []byte(testOBO), Options{Source: "test.obo", SkipImport: true})
	if err != nil {
		t.Fatal(err)
	}
	if other.CacheInfo.Hit {
		t.Error("different options must not share a cache entry")
	}
	if strings.Contains(string(other.Output), "Import(") {
		t.Error("SkipImport output still imports oboInOwl")
	}
}

func TestExecuteNTriples(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), []byte(testOBO), Options{Format: FormatNTriples})
	if err != nil {
		t.Fatal(err)
	}
	want := "<http://purl.obolibrary.org/obo/T_2> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://purl.obolibrary.org/obo/T_1> ."
	if !strings.Contains(string(res.Output), want) {
		t.Errorf("missing %s in:\n%s", want, res.Output)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	tests := []struct {
		name string
		src  string
		opts Options
		code errors.Code
	}{
		{"syntax", "ontology: x\n[Term\n", Options{Source: "bad.obo"}, errors.ErrCodeParse},
		{"cardinality", "format-version: 1.4\n", Options{}, errors.ErrCodeInvalidCardinality},
		{"format", testOBO, Options{Format: "ttl"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), []byte(tt.src), tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestHierarchyDOT(t *testing.T) {
	r := newTestRunner(t)
	out, hit, err := r.HierarchyWithCacheInfo(context.Background(), []byte(testOBO), HierarchyOptions{
		Format: "dot",
		Root:   "T:1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first run should miss")
	}
	dot := string(out)
	if !strings.Contains(dot, `[label="child"`) || !strings.Contains(dot, `"http://purl.obolibrary.org/obo/T_2" -> "http://purl.obolibrary.org/obo/T_1"`) {
		t.Errorf("unexpected DOT:\n%s", dot)
	}

	_, hit, err = r.HierarchyWithCacheInfo(context.Background(), []byte(testOBO), HierarchyOptions{Format: "dot", Root: "T:1"})
	if err != nil || !hit {
		t.Errorf("second run: hit=%v err=%v", hit, err)
	}

	if _, err := r.Hierarchy(context.Background(), []byte(testOBO), HierarchyOptions{Format: "png"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("png: err = %v", err)
	}
}
