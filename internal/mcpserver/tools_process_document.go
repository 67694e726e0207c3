package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/tscodegen/codegen"
	"github.com/erraggy/tscodegen/internal/severity"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type processDocumentInput struct {
	Document    documentInput `json:"document"               jsonschema:"The API description to process"`
	Config      configInput   `json:"config,omitempty"       jsonschema:"Per-call configuration overrides"`
	MinSeverity string        `json:"min_severity,omitempty" jsonschema:"Lowest issue severity to return: info (default), warning or error"`
	Offset      int           `json:"offset,omitempty"       jsonschema:"Skip the first N models and groups"`
	Limit       int           `json:"limit,omitempty"        jsonschema:"Maximum models and groups to return (default 100)"`
}

type issueOutput struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Value    string `json:"value,omitempty"`
	Result   string `json:"result,omitempty"`
}

type processDocumentOutput struct {
	ModelCount   int                       `json:"model_count"`
	GroupCount   int                       `json:"group_count"`
	InfoCount    int                       `json:"info_count"`
	WarningCount int                       `json:"warning_count"`
	Returned     int                       `json:"returned"`
	Models       []*codegen.Model          `json:"models,omitempty"`
	Groups       []*codegen.OperationGroup `json:"groups,omitempty"`
	Issues       []issueOutput             `json:"issues,omitempty"`
}

func handleProcessDocument(ctx context.Context, _ *mcp.CallToolRequest, input processDocumentInput) (*mcp.CallToolResult, processDocumentOutput, error) {
	minSeverity := severity.SeverityInfo
	if input.MinSeverity != "" {
		parsed, ok := severity.Parse(input.MinSeverity)
		if !ok {
			return errResult(fmt.Errorf("invalid min_severity %q: must be info, warning or error", input.MinSeverity)), processDocumentOutput{}, nil
		}
		minSeverity = parsed
	}

	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), processDocumentOutput{}, nil
	}
	p, err := input.Config.newProcessor()
	if err != nil {
		return errResult(err), processDocumentOutput{}, nil
	}
	result, err := p.ProcessDocument(ctx, doc)
	if err != nil {
		return errResult(err), processDocumentOutput{}, nil
	}

	output := processDocumentOutput{
		ModelCount:   len(result.Models),
		GroupCount:   len(result.Groups),
		InfoCount:    result.InfoCount(),
		WarningCount: result.WarningCount(),
		Models:       paginate(result.Models, input.Offset, input.Limit),
		Groups:       paginate(result.Groups, input.Offset, input.Limit),
	}
	output.Returned = len(output.Models) + len(output.Groups)

	output.Issues = makeSlice[issueOutput](len(result.Issues))
	for _, issue := range result.Issues {
		if !issue.Severity.AtLeast(minSeverity) {
			continue
		}
		output.Issues = append(output.Issues, issueOutput{
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
			Value:    issue.Value,
			Result:   issue.Result,
		})
	}
	return nil, output, nil
}
