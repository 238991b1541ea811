// Package introspec assembles Swagger 2.0 (OAS2) API description documents
// from the live metadata of a fleet of document-oriented services.
//
// Rather than maintaining a hand-written spec file, introspec gathers each
// service's self-description (its backing document type, its declared route
// table, its support level per route) and synthesizes a single consistent
// document covering every discoverable resource: CRUD-shaped factory and
// instance paths, the standard utility sub-paths (stats, config,
// subscriptions, template, available), and deduplicated schema definitions.
//
// # Overview
//
// The library consists of the following packages:
//
//   - spec: the OAS2 output document model and its JSON/YAML encoding
//   - resource: the introspected-service metadata model (routes, parameters,
//     support levels, utility document types)
//   - describe: schema derivation from concrete Go types via reflection
//   - assembler: the assembly engine turning a metadata batch into a document
//   - gather: concurrent collection of per-resource metadata from a source
//   - specerrors: structured error taxonomy shared across packages
//   - service: an HTTP handler serving the assembled document on demand
//
// # Quick Start
//
// Assemble a document from a gathered batch:
//
//	reflector := describe.NewReflector()
//	asm := assembler.New(reflector).
//		SetInfo(&spec.Info{Title: "Fleet API", Version: "1.0.0"}).
//		SetStripPrefixes("github.com/acme/fleet/model")
//	doc, err := asm.Assemble(batch)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := spec.Encode(doc, spec.FormatYAML)
//
// Serve the document over HTTP with Accept-header format negotiation:
//
//	handler := service.NewHandler(source, asm)
//	http.ListenAndServe(":8000", handler)
//
// # Command-Line Interface
//
// In addition to the library packages, introspec provides a CLI:
//
//	# Generate a document from a metadata batch file
//	introspec generate -o api.yaml batch.yaml
//
//	# Serve the document over HTTP
//	introspec serve -addr :8000 batch.yaml
//
// Install the CLI:
//
//	go install github.com/introspec-io/introspec/cmd/introspec@latest
//
// # Concurrency
//
// An assembly run owns its output document and schema registry for the
// duration of one Assemble call; concurrent callers each get independent
// instances. The gather step fans out with bounded concurrency; the assembly
// pass itself is synchronous and performs no I/O.
package introspec
