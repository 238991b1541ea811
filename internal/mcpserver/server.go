// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes document assembly as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/introspec-io/introspec"
)

const serverInstructions = `introspec MCP server — assembles Swagger 2.0 documents from resource metadata batch files.

Configuration: All defaults are configurable via INTROSPEC_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- INTROSPEC_SUPPORT_LEVEL (default: DEPRECATED) — minimum route support level to document
- INTROSPEC_EXCLUDE_UTILITIES (default: false) — drop the synthesized utility sub-paths
- INTROSPEC_BASE_PATH (default: /) — document basePath
- INTROSPEC_HOST (default: empty) — document host

A batch file is YAML or JSON with a top-level "resources" list; each entry carries a path, an optional document description (kind, name, description), an optional hasInstances flag, and an optional route table.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "introspec", Version: introspec.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "assemble",
		Description: "Assemble a Swagger 2.0 document from a resource metadata batch file. Returns the full document as JSON or YAML text plus path/definition/tag counts. Support level, utility exclusion, host, and base path default to the INTROSPEC_* env vars and can be overridden per call.",
	}, handleAssemble)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resources",
		Description: "Summarize a resource metadata batch file without assembling: each resource's path, document kind, factory flag, and route count. Use this to inspect a batch before assembling.",
	}, handleResources)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
