package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/introspec-io/introspec/gather"
)

type resourcesInput struct {
	BatchPath string `json:"batch_path" jsonschema:"Path to a YAML or JSON resource metadata batch file"`
}

type resourceSummary struct {
	Path    string `json:"path"`
	Kind    string `json:"kind,omitempty"`
	Name    string `json:"name,omitempty"`
	Factory bool   `json:"factory"`
	Routes  int    `json:"routes"`
}

type resourcesOutput struct {
	Count     int               `json:"count"`
	Resources []resourceSummary `json:"resources,omitempty"`
}

func handleResources(_ context.Context, _ *mcp.CallToolRequest, input resourcesInput) (*mcp.CallToolResult, resourcesOutput, error) {
	batch, err := gather.LoadBatch(input.BatchPath)
	if err != nil {
		return errResult(err), resourcesOutput{}, nil
	}

	output := resourcesOutput{Count: len(batch)}
	for _, path := range batch.Succeeded() {
		meta := batch[path].Meta
		summary := resourceSummary{
			Path:    path,
			Kind:    meta.Kind(),
			Factory: meta.HasInstances,
			Routes:  len(meta.Routes),
		}
		if meta.Description != nil {
			summary.Name = meta.Description.Name
		}
		output.Resources = append(output.Resources, summary)
	}
	return nil, output, nil
}
