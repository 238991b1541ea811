package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/introspec-io/introspec/assembler"
	"github.com/introspec-io/introspec/gather"
	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
)

type assembleInput struct {
	BatchPath        string   `json:"batch_path"                  jsonschema:"Path to a YAML or JSON resource metadata batch file"`
	Format           string   `json:"format,omitempty"            jsonschema:"Output format: json (default) or yaml"`
	Title            string   `json:"title,omitempty"             jsonschema:"Document info title"`
	Version          string   `json:"version,omitempty"           jsonschema:"Document info version"`
	Host             string   `json:"host,omitempty"              jsonschema:"Document host (defaults to INTROSPEC_HOST)"`
	BasePath         string   `json:"base_path,omitempty"         jsonschema:"Document basePath (defaults to INTROSPEC_BASE_PATH)"`
	SupportLevel     string   `json:"support_level,omitempty"     jsonschema:"Minimum route support level: NOTSUPPORTED, DEPRECATED, or SUPPORTED (defaults to INTROSPEC_SUPPORT_LEVEL)"`
	ExcludeUtilities *bool    `json:"exclude_utilities,omitempty" jsonschema:"Drop the synthesized utility sub-paths (defaults to INTROSPEC_EXCLUDE_UTILITIES)"`
	StripPrefixes    []string `json:"strip_prefixes,omitempty"    jsonschema:"Kind prefixes stripped when deriving schema definition names"`
	ExcludedPrefixes []string `json:"excluded_prefixes,omitempty" jsonschema:"Resource path prefixes excluded from the document"`
}

type assembleOutput struct {
	Paths       int    `json:"paths"`
	Definitions int    `json:"definitions"`
	Tags        int    `json:"tags"`
	Format      string `json:"format"`
	Document    string `json:"document"`
}

func handleAssemble(_ context.Context, _ *mcp.CallToolRequest, input assembleInput) (*mcp.CallToolResult, assembleOutput, error) {
	// Apply config defaults when input fields are omitted.
	level := cfg.SupportLevel
	if input.SupportLevel != "" {
		parsed, err := resource.ParseSupportLevel(input.SupportLevel)
		if err != nil {
			return errResult(err), assembleOutput{}, nil
		}
		level = parsed
	}
	excludeUtilities := cfg.ExcludeUtilities
	if input.ExcludeUtilities != nil {
		excludeUtilities = *input.ExcludeUtilities
	}
	basePath := cfg.BasePath
	if input.BasePath != "" {
		basePath = input.BasePath
	}
	host := cfg.Host
	if input.Host != "" {
		host = input.Host
	}

	batch, err := gather.LoadBatch(input.BatchPath)
	if err != nil {
		return errResult(err), assembleOutput{}, nil
	}

	asm := assembler.New().
		SetHost(host).
		SetBasePath(basePath).
		SetSupportLevel(level).
		SetExcludeUtilities(excludeUtilities).
		SetStripPrefixes(input.StripPrefixes...).
		SetExcludedPrefixes(input.ExcludedPrefixes...)
	if input.Title != "" || input.Version != "" {
		asm.SetInfo(&spec.Info{Title: input.Title, Version: input.Version})
	}

	doc, err := asm.Assemble(batch)
	if err != nil {
		return errResult(err), assembleOutput{}, nil
	}

	format := spec.NegotiateFormat(input.Format)
	data, err := spec.Encode(doc, format)
	if err != nil {
		return errResult(err), assembleOutput{}, nil
	}

	return nil, assembleOutput{
		Paths:       len(doc.Paths),
		Definitions: len(doc.Definitions),
		Tags:        len(doc.Tags),
		Format:      format.String(),
		Document:    string(data),
	}, nil
}
