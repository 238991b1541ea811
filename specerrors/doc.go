// Package specerrors provides structured error types for introspec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ResolveError: a declared parameter/response type token could not be
//     resolved to a schema (recovered locally, the item stays untyped)
//   - ActionError: a route declared an unknown HTTP action (fatal to the
//     whole assembly run)
//   - Gather and encode failures use the sentinel errors directly
//
// # Usage with errors.Is
//
//	doc, err := asm.Assemble(batch)
//	if err != nil {
//	    var actErr *specerrors.ActionError
//	    if errors.As(err, &actErr) {
//	        // the offending route's action and path are available
//	    }
//	}
package specerrors
