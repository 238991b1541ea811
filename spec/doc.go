// Package spec defines the Swagger 2.0 (OAS2) output document model produced
// by the assembler, together with its JSON/YAML encoding and the minimal
// structured logging interface shared across introspec packages.
//
// All model types carry dual yaml/json struct tags so a document can be
// encoded in either format; the choice is the caller's (see Encode and
// NegotiateFormat). The model is intentionally limited to the fields the
// assembler emits; it is not a general-purpose OAS parser.
package spec
