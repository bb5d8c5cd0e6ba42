package obo

import "testing"

func TestParseIdent(t *testing.T) {
	tests := []struct {
		in   string
		want Ident
	}{
		{"GO:0000001", PrefixedIdent{Prefix: "GO", Local: "0000001"}},
		{"part_of", UnprefixedIdent("part_of")},
		{"http://purl.obolibrary.org/obo/GO_0000001", URLIdent("http://purl.obolibrary.org/obo/GO_0000001")},
		{"urn:isbn:0451450523", URLIdent("urn:isbn:0451450523")},
		{`foo\:bar`, UnprefixedIdent("foo:bar")},
		{`NCBITaxon:9606`, PrefixedIdent{Prefix: "NCBITaxon", Local: "9606"}},
		{`PMID:1234:5`, PrefixedIdent{Prefix: "PMID", Local: "1234:5"}},
		{`:local`, UnprefixedIdent(":local")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseIdent(tt.in)
			if got != tt.want {
				t.Errorf("ParseIdent(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIdentString(t *testing.T) {
	for _, s := range []string{"GO:0000001", "part_of", "http://example.com/x"} {
		if got := ParseIdent(s).String(); got != s {
			t.Errorf("ParseIdent(%q).String() = %q", s, got)
		}
	}
}

func TestIdentEqual(t *testing.T) {
	if !IdentEqual(ParseIdent("GO:1"), PrefixedIdent{"GO", "1"}) {
		t.Error("IdentEqual(GO:1, GO:1) = false")
	}
	if IdentEqual(ParseIdent("GO:1"), nil) {
		t.Error("IdentEqual(GO:1, nil) = true")
	}
	if !IdentEqual(nil, nil) {
		t.Error("IdentEqual(nil, nil) = false")
	}
}
