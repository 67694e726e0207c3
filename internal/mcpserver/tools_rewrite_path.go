package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/tscodegen/pathtemplate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type rewritePathInput struct {
	Paths  []string    `json:"paths"           jsonschema:"Operation path templates, e.g. /pets/{petId}"`
	Config configInput `json:"config,omitempty" jsonschema:"Per-call configuration overrides"`
}

type pathResult struct {
	Raw        string   `json:"raw"`
	Path       string   `json:"path,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type rewritePathOutput struct {
	Results    []pathResult `json:"results"`
	ErrorCount int          `json:"error_count"`
}

func handleRewritePath(_ context.Context, _ *mcp.CallToolRequest, input rewritePathInput) (*mcp.CallToolResult, rewritePathOutput, error) {
	if len(input.Paths) == 0 {
		return errResult(fmt.Errorf("at least one path is required")), rewritePathOutput{}, nil
	}
	p, err := input.Config.newProcessor()
	if err != nil {
		return errResult(err), rewritePathOutput{}, nil
	}
	n := p.Names()
	prefix := p.Config().SkipPathPrefix()

	output := rewritePathOutput{Results: make([]pathResult, 0, len(input.Paths))}
	for _, raw := range input.Paths {
		result := pathResult{Raw: raw}
		rewritten, err := pathtemplate.Rewrite(raw, n.ToVarName, prefix)
		if err != nil {
			result.Error = err.Error()
			output.ErrorCount++
			output.Results = append(output.Results, result)
			continue
		}
		tpl, _ := pathtemplate.Parse(raw)
		result.Path = rewritten
		for _, name := range tpl.ParamNames() {
			result.Parameters = append(result.Parameters, n.ToVarName(name))
		}
		output.Results = append(output.Results, result)
	}
	return nil, output, nil
}
