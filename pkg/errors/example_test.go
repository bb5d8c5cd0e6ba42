package errors_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/obo2owl/pkg/errors"
)

func ExampleWrap() {
	_, cause := os.Open("/does/not/exist.obo")
	err := errors.Wrap(errors.ErrCodeFileNotFound, cause, "read %s", "exist.obo")

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.UserMessage(err))
	// Output:
	// FILE_NOT_FOUND
	// read exist.obo
}

func ExampleIs() {
	err := errors.Join(
		errors.New(errors.ErrCodeInvalidQualifier, "qualifier cardinality: %q is not an integer", "one"),
		errors.New(errors.ErrCodeInvalidQualifier, "qualifier minCardinality: %q is not an integer", "-"),
	)

	fmt.Println(errors.Is(err, errors.ErrCodeInvalidQualifier))
	fmt.Println(errors.Is(err, errors.ErrCodeInvalidSyntax))
	// Output:
	// true
	// false
}
