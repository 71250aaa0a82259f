package errs

import (
	"fmt"

	"github.com/arloliu/numpack/scalar"
)

// SelectionError reports a value that violates a type constraint: either no
// candidate type satisfies the configured bounds in strict mode, or a value
// encountered during packing falls outside the already-chosen type.
//
// Expected names the constraint that could not be satisfied, such as a type
// name ("int32") or "integers only" when float candidates were excluded.
type SelectionError struct {
	sentinel error
	Index    int
	Value    scalar.Value
	Expected string
}

// NewSelectionError wraps sentinel with the violating element and the
// constraint it violated.
func NewSelectionError(sentinel error, index int, value scalar.Value, expected string) *SelectionError {
	return &SelectionError{
		sentinel: sentinel,
		Index:    index,
		Value:    value,
		Expected: expected,
	}
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("value at index %d=%s violates expected %s", e.Index, e.Value, e.Expected)
}

// Unwrap exposes the wrapped sentinel so errors.Is can match the category.
func (e *SelectionError) Unwrap() error {
	return e.sentinel
}
