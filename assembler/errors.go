package assembler

import (
	"fmt"

	"github.com/introspec-io/introspec/specerrors"
)

// AssemblyError wraps a fatal per-resource failure with the path of the
// resource being assembled when it occurred.
type AssemblyError struct {
	// Resource is the path of the resource under assembly.
	Resource string
	// Cause is the underlying error.
	Cause error
}

// Error returns a human-readable error message.
func (e *AssemblyError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("assembler: %v", e.Cause)
	}
	return fmt.Sprintf("assembler: resource %s: %v", e.Resource, e.Cause)
}

// Unwrap returns the underlying cause for error chaining.
func (e *AssemblyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *AssemblyError) Is(target error) bool {
	return target == specerrors.ErrAssembly
}
