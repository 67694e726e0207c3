package codegen

import (
	"context"
	"fmt"

	"github.com/erraggy/tscodegen/imports"
	"github.com/erraggy/tscodegen/schema"
	"github.com/erraggy/tscodegen/tserrors"
	"golang.org/x/sync/errgroup"
)

// ExtArrayBuffer is the vendor extension set on properties whose type is the
// binary buffer type.
const ExtArrayBuffer = "x-is-array-buffer"

// Definition is a named schema as it appears in a document's schema section.
type Definition struct {
	Name   string
	Schema *schema.Node
}

// Property is a processed model property.
type Property struct {
	// Name is the property name as it appears on the wire.
	Name string `json:"name" yaml:"name"`
	// VarName is Name as a variable identifier, escaped if it is a reserved word.
	VarName  string `json:"varName" yaml:"varName"`
	DataType string `json:"dataType" yaml:"dataType"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	// VendorExtensions holds template flags such as ExtArrayBuffer.
	VendorExtensions map[string]any `json:"vendorExtensions,omitempty" yaml:"vendorExtensions,omitempty"`
}

// IsArrayBuffer reports whether the property carries the array-buffer flag.
func (p Property) IsArrayBuffer() bool {
	v, _ := p.VendorExtensions[ExtArrayBuffer].(bool)
	return v
}

// Model is a processed model definition.
type Model struct {
	// Name is the raw schema name.
	Name       string `json:"name" yaml:"name"`
	ClassName  string `json:"className" yaml:"className"`
	Filename   string `json:"filename" yaml:"filename"`
	ImportPath string `json:"importPath" yaml:"importPath"`
	// IsAlias is set for models that name another type instead of declaring
	// properties; DataType is the aliased type.
	IsAlias  bool   `json:"isAlias,omitempty" yaml:"isAlias,omitempty"`
	DataType string `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	// AdditionalPropertiesType is the index-signature value type of a
	// map-shaped model, empty when the model accepts no extra keys.
	AdditionalPropertiesType string     `json:"additionalPropertiesType,omitempty" yaml:"additionalPropertiesType,omitempty"`
	Properties               []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	// Imports lists every model the definition refers to, sorted, possibly
	// including the model itself.
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	// TSImports is Imports without the model itself, with file names.
	TSImports []imports.Record `json:"tsImports,omitempty" yaml:"tsImports,omitempty"`
}

// ProcessModel processes the schema definition called name.
func (p *Processor) ProcessModel(name string, node *schema.Node) (*Model, []Issue, error) {
	path := "models." + name
	if name == "" {
		return nil, nil, &tserrors.SchemaError{Path: "models", Message: "model name must not be empty"}
	}
	if node == nil {
		return nil, nil, &tserrors.SchemaError{Path: path, Message: "nil schema node"}
	}

	m := &Model{
		Name:       name,
		ClassName:  p.names.ToModelName(name),
		Filename:   p.names.ToModelFilename(name),
		ImportPath: p.names.ToModelImport(name),
	}

	var found []Issue
	var deps []string

	switch node.Kind {
	case schema.KindObject, schema.KindMap:
		m.Properties = make([]Property, 0, len(node.Properties))
		for _, sp := range node.Properties {
			prop, propIssues, err := p.processProperty(path, sp)
			if err != nil {
				return nil, nil, fmt.Errorf("codegen: model %q: %w", name, err)
			}
			m.Properties = append(m.Properties, prop)
			found = append(found, propIssues...)
			deps = append(deps, p.types.ImportNames(sp.Schema)...)
		}

		decl, ok, err := p.types.AdditionalPropertiesType(node)
		if err != nil {
			return nil, nil, fmt.Errorf("codegen: model %q: %w", name, err)
		}
		if ok {
			m.AdditionalPropertiesType = decl
			deps = append(deps, p.types.ImportNames(node.Value)...)
		}

	default:
		// Aliases import whatever the aliased type refers to.
		decl, err := p.types.Resolve(node)
		if err != nil {
			return nil, nil, fmt.Errorf("codegen: model %q: %w", name, err)
		}
		m.IsAlias = true
		m.DataType = decl
		deps = p.types.ImportNames(node)
	}

	m.Imports = imports.ModelNames(imports.Resolve("", deps, nil))
	m.TSImports = imports.Resolve(m.ClassName, m.Imports, p.names.ToModelFilename)

	p.logger.Debug("processed model",
		"model", m.ClassName,
		"properties", len(m.Properties),
		"imports", len(m.TSImports),
	)
	return m, found, nil
}

func (p *Processor) processProperty(modelPath string, sp schema.Property) (Property, []Issue, error) {
	path := modelPath + ".properties." + sp.Name
	dataType, err := p.types.Resolve(sp.Schema)
	if err != nil {
		return Property{}, nil, err
	}

	prop := Property{
		Name:     sp.Name,
		VarName:  p.names.ToVarName(sp.Name),
		DataType: dataType,
		Required: sp.Required,
	}
	if p.types.IsBinary(dataType) {
		prop.VendorExtensions = map[string]any{ExtArrayBuffer: true}
	}

	var found []Issue
	if p.names.IsReservedWord(sp.Name) {
		found = append(found, Issue{
			Path:     path,
			Message:  "property name is a reserved word",
			Severity: SeverityInfo,
			Value:    sp.Name,
			Result:   prop.VarName,
		})
	}
	if s := sp.Schema; s.Kind == schema.KindObject && s.Name == "" && len(s.Properties) > 0 {
		found = append(found, Issue{
			Path:     path,
			Message:  "inline object with properties is typed as " + dataType,
			Severity: SeverityWarning,
			Result:   dataType,
		})
	}
	return prop, found, nil
}

// ProcessModels processes defs with up to the configured number of models in
// flight. Results keep the order of defs. Two definitions that map to the
// same class name are reported as a warning. Processing stops at the first
// error or when ctx is cancelled.
func (p *Processor) ProcessModels(ctx context.Context, defs []Definition) ([]*Model, []Issue, error) {
	models := make([]*Model, len(defs))
	perModel := make([][]Issue, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, def := range defs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, found, err := p.ProcessModel(def.Name, def.Schema)
			if err != nil {
				return err
			}
			models[i] = m
			perModel[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var found []Issue
	owners := make(map[string]string, len(models))
	for i, m := range models {
		found = append(found, perModel[i]...)
		if prev, ok := owners[m.ClassName]; ok {
			found = append(found, Issue{
				Path:     "models." + m.Name,
				Message:  fmt.Sprintf("class name collides with model %q", prev),
				Severity: SeverityWarning,
				Value:    m.Name,
				Result:   m.ClassName,
			})
			continue
		}
		owners[m.ClassName] = m.Name
	}
	return models, found, nil
}
