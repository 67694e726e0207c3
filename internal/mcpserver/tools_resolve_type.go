package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/tscodegen/schema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveTypeInput struct {
	Schema string      `json:"schema"           jsonschema:"Schema object as JSON or YAML, e.g. type: array with items referencing a definition"`
	Config configInput `json:"config,omitempty" jsonschema:"Per-call configuration overrides"`
}

type resolveTypeOutput struct {
	Type                     string   `json:"type"`
	AdditionalPropertiesType string   `json:"additional_properties_type,omitempty"`
	Imports                  []string `json:"imports,omitempty"`
	IsBinary                 bool     `json:"is_binary,omitempty"`
	IsFile                   bool     `json:"is_file,omitempty"`
}

func handleResolveType(_ context.Context, _ *mcp.CallToolRequest, input resolveTypeInput) (*mcp.CallToolResult, resolveTypeOutput, error) {
	if input.Schema == "" {
		return errResult(fmt.Errorf("schema is required")), resolveTypeOutput{}, nil
	}
	node, err := schema.Decode([]byte(input.Schema))
	if err != nil {
		return errResult(err), resolveTypeOutput{}, nil
	}
	p, err := input.Config.newProcessor()
	if err != nil {
		return errResult(err), resolveTypeOutput{}, nil
	}
	types := p.Types()

	decl, err := types.Resolve(node)
	if err != nil {
		return errResult(err), resolveTypeOutput{}, nil
	}
	additional, _, err := types.AdditionalPropertiesType(node)
	if err != nil {
		return errResult(err), resolveTypeOutput{}, nil
	}

	return nil, resolveTypeOutput{
		Type:                     decl,
		AdditionalPropertiesType: additional,
		Imports:                  types.ImportNames(node),
		IsBinary:                 types.IsBinary(decl),
		IsFile:                   types.IsFile(decl),
	}, nil
}
