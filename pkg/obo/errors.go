package obo

import (
	"fmt"

	"github.com/matzehuels/obo2owl/pkg/errors"
)

var (
	errCardinality = errors.New(errors.ErrCodeInvalidCardinality, "invalid clause cardinality")
	errSyntax      = errors.New(errors.ErrCodeParse, "invalid OBO syntax")
)

// CardinalityError reports a clause that is missing or appears more times
// than allowed.
type CardinalityError struct {
	Tag     string
	Missing bool
}

func (e *CardinalityError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing %s clause", e.Tag)
	}
	return fmt.Sprintf("duplicate %s clause", e.Tag)
}

// Unwrap lets errors.Is match ErrCodeInvalidCardinality.
func (e *CardinalityError) Unwrap() error { return errCardinality }

// SyntaxError reports a line the parser could not read.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrCodeParse.
func (e *SyntaxError) Unwrap() error { return errSyntax }
