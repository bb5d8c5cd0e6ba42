package translate

import (
	"fmt"

	"github.com/matzehuels/obo2owl/pkg/errors"
)

var (
	errCardinality = errors.New(errors.ErrCodeInvalidCardinality, "invalid clause cardinality")
	errQualifier   = errors.New(errors.ErrCodeInvalidQualifier, "invalid qualifier value")
)

// CardinalityError reports a clause that is missing, duplicated, or
// appears alone where it needs a partner. Frame is empty for header clauses.
type CardinalityError struct {
	Frame string
	Tag   string
	Msg   string
}

func (e *CardinalityError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("%s clause: %s", e.Tag, e.Msg)
	}
	return fmt.Sprintf("frame %s: %s clause: %s", e.Frame, e.Tag, e.Msg)
}

func (e *CardinalityError) Unwrap() error { return errCardinality }

// InvalidQualifierValueError reports a cardinality qualifier whose value is
// not a non-negative integer.
type InvalidQualifierValueError struct {
	Frame string
	Key   string
	Value string
}

func (e *InvalidQualifierValueError) Error() string {
	return fmt.Sprintf("frame %s: invalid value %q for qualifier %s", e.Frame, e.Value, e.Key)
}

func (e *InvalidQualifierValueError) Unwrap() error { return errQualifier }

// Warning records a construct that was approximated or dropped.
type Warning struct {
	Frame   string
	Message string
}

func (w Warning) String() string {
	if w.Frame == "" {
		return w.Message
	}
	return w.Frame + ": " + w.Message
}
