// Package describe resolves document type tokens to JSON schemas.
//
// The assembler never sees Go types directly: resource metadata declares
// request and response shapes as string tokens, and a Provider turns a token
// into a Description carrying a self-contained schema. The default Provider
// is a Reflector, which derives schemas from registered Go types using the
// reflect package. Types are indexed under their full kind identifier as
// well as shortened forms, so metadata may declare either
// "github.com/acme/widgets/model.Widget", "model.Widget", or "Widget".
package describe
