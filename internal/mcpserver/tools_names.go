package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type namesInput struct {
	Names  []string    `json:"names"           jsonschema:"Raw schema, tag or parameter names to normalize"`
	Config configInput `json:"config,omitempty" jsonschema:"Per-call configuration overrides"`
}

type nameResult struct {
	Raw           string `json:"raw"`
	ModelName     string `json:"model_name"`
	ModelFilename string `json:"model_filename"`
	ModelImport   string `json:"model_import"`
	APIName       string `json:"api_name"`
	APIFilename   string `json:"api_filename"`
	APIImport     string `json:"api_import"`
	VarName       string `json:"var_name"`
	Reserved      bool   `json:"reserved,omitempty"`
}

type namesOutput struct {
	Results []nameResult `json:"results"`
}

func handleNames(_ context.Context, _ *mcp.CallToolRequest, input namesInput) (*mcp.CallToolResult, namesOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("at least one name is required")), namesOutput{}, nil
	}
	p, err := input.Config.newProcessor()
	if err != nil {
		return errResult(err), namesOutput{}, nil
	}
	n := p.Names()

	output := namesOutput{Results: make([]nameResult, 0, len(input.Names))}
	for _, raw := range input.Names {
		output.Results = append(output.Results, nameResult{
			Raw:           raw,
			ModelName:     n.ToModelName(raw),
			ModelFilename: n.ToModelFilename(raw),
			ModelImport:   n.ToModelImport(raw),
			APIName:       n.ToAPIName(raw),
			APIFilename:   n.ToAPIFilename(raw),
			APIImport:     n.ToAPIImport(raw),
			VarName:       n.ToVarName(raw),
			Reserved:      n.IsReservedWord(raw),
		})
	}
	return nil, output, nil
}
