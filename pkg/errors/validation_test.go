package errors

import (
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "go.obo", false},
		{"absolute", "/data/ontologies/go.obo", false},
		{"nested", "testdata/go/go-basic.obo", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"http://purl.obolibrary.org/obo/go.owl", false},
		{"https://example.com", false},
		{"", true},
		{"ftp://example.com", true},
		{"example.com", true},
	}

	for _, tt := range tests {
		if err := ValidateURL(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateIRI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"obo purl", "http://purl.obolibrary.org/obo/GO_0000001", false},
		{"urn", "urn:isbn:0451450523", false},
		{"fragment", "http://purl.obolibrary.org/obo/go#part_of", false},

		{"empty", "", true},
		{"no scheme", "GO_0000001", true},
		{"space", "http://purl.obolibrary.org/obo/my ontology", true},
		{"angle bracket", "http://example.com/<x>", true},
		{"quote", `http://example.com/"x"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIRI(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIRI(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidIRI {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidIRI)
			}
		})
	}
}

func TestValidateIdspacePrefix(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"GO", false},
		{"NCBITaxon", false},
		{"go_extensions", false},
		{"", true},
		{"GO:", true},
		{"has space", true},
	}

	for _, tt := range tests {
		if err := ValidateIdspacePrefix(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateIdspacePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("ofn", "ofn", "nt"); err != nil {
		t.Errorf("ValidateFormat(ofn) error = %v", err)
	}
	err := ValidateFormat("ttl", "ofn", "nt")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(ttl) error = %v, want %v", err, ErrCodeInvalidFormat)
	}
}
