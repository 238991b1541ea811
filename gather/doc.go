// Package gather collects per-resource metadata into a completed batch the
// assembler can consume.
//
// A Source enumerates resource paths and fetches each resource's metadata;
// a Gatherer fans out over the source with bounded concurrency and records
// every outcome, success or failure, in a Batch. Per-resource fetch errors
// never abort a gather, they are carried in the batch so the assembler can
// omit those resources. The package also loads pre-gathered batches from
// metadata files, which is how the CLI and the MCP server feed the
// assembler without a live service registry.
package gather
