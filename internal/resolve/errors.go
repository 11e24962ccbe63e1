package resolve

import (
	"errors"
	"fmt"
)

// UnsupportedKindError reports a constraint kind outside the closed set the
// resolver was built against. The supported set is coupled to a versioned
// upstream query schema; a mismatch means the engine and the answer
// producer were built against different schema versions, which the caller
// must fix. It is not recoverable by skipping.
type UnsupportedKindError struct {
	// Kind is the concrete Go type of the offending constraint.
	Kind string
}

// NewUnsupportedKindError creates an UnsupportedKindError for the given
// constraint value.
func NewUnsupportedKindError(c any) *UnsupportedKindError {
	return &UnsupportedKindError{Kind: fmt.Sprintf("%T", c)}
}

// Error implements the error interface.
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported constraint kind %s: engine and query schema versions disagree", e.Kind)
}

// IsUnsupportedKind returns true if the error is an UnsupportedKindError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedKind(err error) bool {
	var ue *UnsupportedKindError
	return errors.As(err, &ue)
}
