package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrAssembly indicates a document assembly failure.
	ErrAssembly = errors.New("assembly error")

	// ErrResolve indicates a declared type token could not be resolved.
	ErrResolve = errors.New("type resolution error")

	// ErrAction indicates a route declared an unknown HTTP action.
	ErrAction = errors.New("unknown route action")

	// ErrGather indicates the metadata gather step failed as a whole.
	ErrGather = errors.New("gather error")

	// ErrEncode indicates the assembled document could not be encoded.
	ErrEncode = errors.New("encode error")
)

// ResolveError represents a failure to resolve a declared type token to a
// schema. The assembler recovers from it locally: the affected parameter or
// response is emitted without a schema.
type ResolveError struct {
	// Token is the declared type token that failed to resolve
	Token string
	// Resource is the path of the resource whose route declared the token
	Resource string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("cannot resolve type %q", e.Token)
	if e.Resource != "" {
		msg += " for resource " + e.Resource
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ResolveError) Is(target error) bool {
	return target == ErrResolve
}

// ActionError represents a route declaring an HTTP action the assembler does
// not know. Unlike type resolution failures this is fatal to the whole run:
// silently dropping an action would misrepresent which operations the
// resource supports.
type ActionError struct {
	// Action is the unknown action literal
	Action string
	// Resource is the path of the resource that declared the route
	Resource string
	// RoutePath is the route's declared path suffix ("" for the resource root)
	RoutePath string
}

// Error returns a human-readable error message.
func (e *ActionError) Error() string {
	msg := fmt.Sprintf("unknown route action %q", e.Action)
	if e.Resource != "" {
		msg += " on resource " + e.Resource
		if e.RoutePath != "" {
			msg += e.RoutePath
		}
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ActionError) Is(target error) bool {
	return target == ErrAction || target == ErrAssembly
}
