package codegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/tscodegen/imports"
	"github.com/erraggy/tscodegen/pathtemplate"
	"github.com/erraggy/tscodegen/schema"
)

// Parameter is an operation parameter.
type Parameter struct {
	Name string `json:"name" yaml:"name"`
	// In is the parameter location: path, query, header, cookie, formData or body.
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	// Schema is the parameter schema. It is used when DataType is empty.
	Schema *schema.Node `json:"-" yaml:"-"`
	// DataType is the parameter type. A type the host already computed is
	// kept and only passed through the type mapping.
	DataType string `json:"dataType" yaml:"dataType"`
	VarName  string `json:"varName" yaml:"varName"`
	IsFile   bool   `json:"isFile,omitempty" yaml:"isFile,omitempty"`
	IsBinary bool   `json:"isBinary,omitempty" yaml:"isBinary,omitempty"`
}

// Operation is a single API operation.
type Operation struct {
	OperationID string `json:"operationId" yaml:"operationId"`
	Method      string `json:"method" yaml:"method"`
	// Path is the operation path. After processing it holds the
	// template-literal body and RawPath the original path.
	Path       string      `json:"path" yaml:"path"`
	RawPath    string      `json:"rawPath,omitempty" yaml:"rawPath,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// Response is the success response schema, nil when there is none.
	Response   *schema.Node `json:"-" yaml:"-"`
	ReturnType string       `json:"returnType,omitempty" yaml:"returnType,omitempty"`
}

// Import is a model import of an API file.
type Import struct {
	// Import is the model import path, e.g. "model/Pet".
	Import    string `json:"import" yaml:"import"`
	Filename  string `json:"filename" yaml:"filename"`
	ClassName string `json:"classname" yaml:"classname"`
}

// OperationGroup is the set of operations rendered into one API class.
type OperationGroup struct {
	// Name is the raw group name, usually a tag. Empty selects the default API name.
	Name        string      `json:"name" yaml:"name"`
	ClassName   string      `json:"className" yaml:"className"`
	APIFilename string      `json:"apiFilename" yaml:"apiFilename"`
	APIImport   string      `json:"apiImport" yaml:"apiImport"`
	Operations  []Operation `json:"operations" yaml:"operations"`
	Imports     []Import    `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// ProcessOperations processes a copy of group: it names the API class and
// file, rewrites each operation path, resolves parameter and response types
// and collects the model imports.
func (p *Processor) ProcessOperations(group OperationGroup) (*OperationGroup, []Issue, error) {
	out := &OperationGroup{
		Name:        group.Name,
		ClassName:   p.names.ToAPIName(group.Name),
		APIFilename: p.names.ToAPIFilename(group.Name),
		APIImport:   p.names.ToAPIImport(group.Name),
		Operations:  make([]Operation, 0, len(group.Operations)),
	}
	groupPath := "operations." + out.ClassName

	var found []Issue
	if group.Name == "" {
		found = append(found, Issue{
			Path:     groupPath,
			Message:  "empty operation group name uses the default API name",
			Severity: SeverityInfo,
			Result:   out.ClassName,
		})
	}

	var deps []string
	for _, op := range group.Operations {
		processed, opIssues, opDeps, err := p.processOperation(groupPath, op)
		if err != nil {
			return nil, nil, fmt.Errorf("codegen: operation group %q: %w", group.Name, err)
		}
		out.Operations = append(out.Operations, processed)
		found = append(found, opIssues...)
		deps = append(deps, opDeps...)
	}

	for _, name := range imports.ModelNames(imports.Resolve("", deps, nil)) {
		importPath := p.names.ToModelImport(name)
		out.Imports = append(out.Imports, Import{
			Import:    importPath,
			Filename:  importPath,
			ClassName: p.names.ModelNameFromImport(importPath),
		})
	}

	p.logger.Debug("processed operation group",
		"api", out.ClassName,
		"operations", len(out.Operations),
		"imports", len(out.Imports),
	)
	return out, found, nil
}

func (p *Processor) processOperation(groupPath string, op Operation) (Operation, []Issue, []string, error) {
	out := op
	if out.RawPath == "" {
		out.RawPath = op.Path
	}
	opPath := groupPath + "." + op.OperationID
	if op.OperationID == "" {
		opPath = groupPath + "." + strings.ToLower(op.Method) + " " + out.RawPath
	}

	tpl, err := pathtemplate.Parse(out.RawPath)
	if err != nil {
		return Operation{}, nil, nil, fmt.Errorf("operation %q: %w", op.OperationID, err)
	}
	rewritten := tpl.Render(p.names.ToVarName)
	if prefix := p.cfg.SkipPathPrefix(); prefix != "" {
		rewritten = strings.TrimPrefix(rewritten, prefix)
	}
	out.Path = rewritten

	var found []Issue
	var deps []string
	out.Parameters = make([]Parameter, 0, len(op.Parameters))
	declared := make([]string, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		processed, err := p.processParameter(param)
		if err != nil {
			return Operation{}, nil, nil, fmt.Errorf("operation %q parameter %q: %w", op.OperationID, param.Name, err)
		}
		out.Parameters = append(out.Parameters, processed)
		if param.In == "path" {
			declared = append(declared, param.Name)
		}
		if param.Schema != nil {
			deps = append(deps, p.types.ImportNames(param.Schema)...)
		}
	}

	for _, name := range tpl.ParamNames() {
		if !slices.Contains(declared, name) {
			found = append(found, Issue{
				Path:     opPath,
				Message:  "path template parameter has no matching path parameter",
				Severity: SeverityWarning,
				Value:    name,
			})
		}
	}

	if op.Response != nil {
		ret, err := p.types.Resolve(op.Response)
		if err != nil {
			return Operation{}, nil, nil, fmt.Errorf("operation %q response: %w", op.OperationID, err)
		}
		out.ReturnType = ret
		deps = append(deps, p.types.ImportNames(op.Response)...)
	}
	return out, found, deps, nil
}

func (p *Processor) processParameter(param Parameter) (Parameter, error) {
	out := param
	if out.DataType == "" {
		if param.Schema == nil {
			out.DataType = p.cfg.AnyType()
		} else {
			decl, err := p.types.Resolve(param.Schema)
			if err != nil {
				return Parameter{}, err
			}
			out.DataType = decl
		}
	}
	out.DataType = p.types.MapDataType(out.DataType)
	out.VarName = p.names.ToVarName(param.Name)
	out.IsFile = p.types.IsFile(out.DataType)
	out.IsBinary = p.types.IsBinary(out.DataType)
	return out, nil
}
