// Package assembler converts a gathered batch of resource metadata into a
// single Swagger 2.0 document.
//
// An Assembler is configured once with fluent setters and may then serve any
// number of Assemble calls; every call works on a fresh document and a fresh
// schema registry, so concurrent assemblies never share state. Resources are
// processed in sorted path order, which makes the output deterministic for a
// given batch regardless of how the batch was gathered.
//
// Assembly is best-effort per resource: resources whose retrieval failed and
// declared type tokens that cannot be resolved are skipped or degraded with a
// log entry. A route declaring an unknown HTTP action fails the whole run,
// since silently dropping an operation would misrepresent the resource.
package assembler
