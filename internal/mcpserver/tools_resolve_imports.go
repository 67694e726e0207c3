package mcpserver

import (
	"context"

	"github.com/erraggy/tscodegen/imports"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveImportsInput struct {
	Self         string      `json:"self"            jsonschema:"Class name of the model whose imports are computed"`
	Dependencies []string    `json:"dependencies"    jsonschema:"Model names the model refers to, in any order, duplicates allowed"`
	Config       configInput `json:"config,omitempty" jsonschema:"Per-call configuration overrides"`
}

type resolveImportsOutput struct {
	Imports []imports.Record `json:"imports"`
}

func handleResolveImports(_ context.Context, _ *mcp.CallToolRequest, input resolveImportsInput) (*mcp.CallToolResult, resolveImportsOutput, error) {
	p, err := input.Config.newProcessor()
	if err != nil {
		return errResult(err), resolveImportsOutput{}, nil
	}
	records := imports.Resolve(input.Self, input.Dependencies, p.Names().ToModelFilename)
	return nil, resolveImportsOutput{Imports: records}, nil
}
