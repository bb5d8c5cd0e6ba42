package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}

// iriSchemeRegex matches an RFC 3987 scheme followed by a colon.
var iriSchemeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// ValidateIRI checks that s is an absolute IRI: it needs a scheme and must
// not contain whitespace or the characters forbidden in IRI references.
func ValidateIRI(s string) error {
	if s == "" {
		return New(ErrCodeInvalidIRI, "IRI cannot be empty")
	}
	if !iriSchemeRegex.MatchString(s) {
		return New(ErrCodeInvalidIRI, "IRI has no scheme: %q", s)
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidIRI, "IRI contains whitespace: %q", s)
		}
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
			return New(ErrCodeInvalidIRI, "IRI contains forbidden character %q: %q", r, s)
		}
	}
	return nil
}

// idspacePrefixRegex matches an OBO idspace prefix (no colon, no whitespace).
var idspacePrefixRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateIdspacePrefix validates the prefix half of an idspace declaration.
func ValidateIdspacePrefix(prefix string) error {
	if !idspacePrefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidInput, "invalid idspace prefix: %q", prefix)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
