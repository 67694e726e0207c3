package codegen

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/erraggy/tscodegen/schema"
	"github.com/erraggy/tscodegen/tserrors"
	"go.yaml.in/yaml/v4"
)

// httpMethods lists the operation keys of a path item in rendering order.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Document is the input to ProcessDocument: the schema definitions and the
// operations of an API description, grouped by their first tag.
type Document struct {
	Models []Definition
	Groups []OperationGroup
}

// LoadDocument reads and parses the API description at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codegen: failed to read document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("codegen: %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument builds a Document from a Swagger 2.0 or OpenAPI 3.x
// description in YAML or JSON. Schemas come from "definitions" or
// "components.schemas" in document order. Operations without tags land in
// the group with an empty name.
func ParseDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &tserrors.SchemaError{Message: "invalid document", Cause: err}
	}
	top := schema.Deref(&root)
	if top == nil {
		return &Document{}, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, &tserrors.SchemaError{Message: "document must be a mapping"}
	}

	d := &docParser{root: top}
	doc := &Document{}
	var err error
	if doc.Models, err = d.definitions(); err != nil {
		return nil, err
	}
	if doc.Groups, err = d.operations(); err != nil {
		return nil, err
	}
	return doc, nil
}

type docParser struct {
	root *yaml.Node
}

func (d *docParser) definitions() ([]Definition, error) {
	section, path := lookup(d.root, "components", "schemas"), "components.schemas"
	if section == nil {
		section, path = lookup(d.root, "definitions"), "definitions"
	}
	if section == nil {
		return nil, nil
	}

	var defs []Definition
	err := eachPair(section, path, func(name string, value *yaml.Node) error {
		node, err := schema.NamedFromYAML(name, path+"."+name, value)
		if err != nil {
			return err
		}
		defs = append(defs, Definition{Name: name, Schema: node})
		return nil
	})
	return defs, err
}

func (d *docParser) operations() ([]OperationGroup, error) {
	paths := lookup(d.root, "paths")
	if paths == nil {
		return nil, nil
	}

	var groups []OperationGroup
	index := make(map[string]int)
	err := eachPair(paths, "paths", func(rawPath string, item *yaml.Node) error {
		itemPath := "paths." + rawPath
		shared, err := d.parameters(itemPath+".parameters", lookup(item, "parameters"))
		if err != nil {
			return err
		}
		for _, method := range httpMethods {
			opNode := lookup(item, method)
			if opNode == nil {
				continue
			}
			op, tag, err := d.operation(itemPath+"."+method, rawPath, method, opNode, shared)
			if err != nil {
				return err
			}
			i, ok := index[tag]
			if !ok {
				i = len(groups)
				index[tag] = i
				groups = append(groups, OperationGroup{Name: tag})
			}
			groups[i].Operations = append(groups[i].Operations, op)
		}
		return nil
	})
	return groups, err
}

func (d *docParser) operation(path, rawPath, method string, n *yaml.Node, shared []Parameter) (Operation, string, error) {
	op := Operation{
		OperationID: scalarValue(lookup(n, "operationId")),
		Method:      strings.ToUpper(method),
		Path:        rawPath,
	}

	tag := ""
	if tags := schema.Deref(lookup(n, "tags")); tags != nil && tags.Kind == yaml.SequenceNode && len(tags.Content) > 0 {
		tag = scalarValue(tags.Content[0])
	}

	own, err := d.parameters(path+".parameters", lookup(n, "parameters"))
	if err != nil {
		return Operation{}, "", err
	}
	op.Parameters = mergeParameters(shared, own)

	if body := d.resolveRef(lookup(n, "requestBody"), "requestBodies"); body != nil {
		bodySchema, err := d.mediaSchema(path+".requestBody", body)
		if err != nil {
			return Operation{}, "", err
		}
		if bodySchema != nil {
			op.Parameters = append(op.Parameters, Parameter{
				Name:     "body",
				In:       "body",
				Required: scalarValue(lookup(body, "required")) == "true",
				Schema:   bodySchema,
			})
		}
	}

	op.Response, err = d.successResponse(path+".responses", lookup(n, "responses"))
	if err != nil {
		return Operation{}, "", err
	}
	return op, tag, nil
}

// parameters decodes a parameter list. Swagger 2.0 parameters other than
// body carry their type inline; "type: file" is kept as the raw type so the
// type mapping can turn it into the file type.
func (d *docParser) parameters(path string, list *yaml.Node) ([]Parameter, error) {
	list = schema.Deref(list)
	if list == nil {
		return nil, nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, &tserrors.SchemaError{Path: path, Message: "parameters must be a sequence"}
	}

	params := make([]Parameter, 0, len(list.Content))
	for i, item := range list.Content {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		n := d.resolveRef(item, "parameters")
		if n == nil {
			return nil, &tserrors.SchemaError{Path: itemPath, Message: "unresolved parameter reference"}
		}
		param := Parameter{
			Name:     scalarValue(lookup(n, "name")),
			In:       scalarValue(lookup(n, "in")),
			Required: scalarValue(lookup(n, "required")) == "true",
		}

		switch {
		case scalarValue(lookup(n, "type")) == "file":
			param.DataType = "file"
		case lookup(n, "schema") != nil:
			node, err := schema.FromYAML(itemPath+".schema", lookup(n, "schema"))
			if err != nil {
				return nil, err
			}
			param.Schema = node
		case lookup(n, "type") != nil:
			node, err := schema.FromYAML(itemPath, n)
			if err != nil {
				return nil, err
			}
			param.Schema = node
		case lookup(n, "content") != nil:
			node, err := d.mediaSchema(itemPath, n)
			if err != nil {
				return nil, err
			}
			param.Schema = node
		}
		params = append(params, param)
	}
	return params, nil
}

// successResponse returns the schema of the first 2xx response, or of the
// default response when there is no 2xx one.
func (d *docParser) successResponse(path string, responses *yaml.Node) (*schema.Node, error) {
	responses = schema.Deref(responses)
	if responses == nil || responses.Kind != yaml.MappingNode {
		return nil, nil
	}

	var chosen *yaml.Node
	var code string
	err := eachPair(responses, path, func(key string, value *yaml.Node) error {
		if chosen == nil && strings.HasPrefix(key, "2") {
			chosen, code = value, key
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		chosen, code = lookup(responses, "default"), "default"
	}
	if chosen == nil {
		return nil, nil
	}

	chosen = d.resolveRef(chosen, "responses")
	respPath := path + "." + code
	if s := lookup(chosen, "schema"); s != nil {
		return schema.FromYAML(respPath+".schema", s)
	}
	return d.mediaSchema(respPath, chosen)
}

// mediaSchema returns the schema of the first media type under n's content.
func (d *docParser) mediaSchema(path string, n *yaml.Node) (*schema.Node, error) {
	content := schema.Deref(lookup(n, "content"))
	if content == nil || content.Kind != yaml.MappingNode || len(content.Content) < 2 {
		return nil, nil
	}
	mediaType := content.Content[0].Value
	s := lookup(content.Content[1], "schema")
	if s == nil {
		return nil, nil
	}
	return schema.FromYAML(path+".content."+mediaType+".schema", s)
}

// resolveRef follows a local $ref to a reusable component in section
// ("parameters", "responses" or "requestBodies"). Nodes without a $ref are
// returned unchanged; an unknown target yields nil.
func (d *docParser) resolveRef(n *yaml.Node, section string) *yaml.Node {
	n = schema.Deref(n)
	ref := scalarValue(lookup(n, "$ref"))
	if ref == "" {
		return n
	}
	name := ref[strings.LastIndex(ref, "/")+1:]
	if target := lookup(d.root, "components", section, name); target != nil {
		return schema.Deref(target)
	}
	return schema.Deref(lookup(d.root, section, name))
}

// mergeParameters overlays operation parameters on path-level ones; a
// parameter is identified by name and location.
func mergeParameters(shared, own []Parameter) []Parameter {
	if len(shared) == 0 {
		return own
	}
	out := make([]Parameter, 0, len(shared)+len(own))
	for _, s := range shared {
		overridden := false
		for _, o := range own {
			if o.Name == s.Name && o.In == s.In {
				overridden = true
				break
			}
		}
		if !overridden {
			out = append(out, s)
		}
	}
	return append(out, own...)
}

// lookup walks mapping keys from n and returns nil when any key is missing.
func lookup(n *yaml.Node, keys ...string) *yaml.Node {
	cur := schema.Deref(n)
	for _, key := range keys {
		if cur == nil || cur.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(cur.Content); i += 2 {
			if cur.Content[i].Value == key {
				next = cur.Content[i+1]
				break
			}
		}
		cur = schema.Deref(next)
	}
	return cur
}

// eachPair calls fn for every key of the mapping n in document order.
func eachPair(n *yaml.Node, path string, fn func(key string, value *yaml.Node) error) error {
	n = schema.Deref(n)
	if n == nil {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return &tserrors.SchemaError{Path: path, Message: "must be a mapping"}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func scalarValue(n *yaml.Node) string {
	n = schema.Deref(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// Result is the outcome of processing a whole document.
type Result struct {
	Models []*Model          `json:"models" yaml:"models"`
	Groups []*OperationGroup `json:"groups" yaml:"groups"`
	Issues []Issue           `json:"issues,omitempty" yaml:"issues,omitempty"`
	// ProcessTime is how long processing took.
	ProcessTime time.Duration `json:"-" yaml:"-"`
}

// InfoCount returns the number of informational issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

// WarningCount returns the number of warnings.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Model returns the processed model with the given class name, or nil.
func (r *Result) Model(className string) *Model {
	for _, m := range r.Models {
		if m.ClassName == className {
			return m
		}
	}
	return nil
}

// Group returns the processed operation group with the given API class name, or nil.
func (r *Result) Group(className string) *OperationGroup {
	for _, g := range r.Groups {
		if g.ClassName == className {
			return g
		}
	}
	return nil
}

// ProcessDocument processes every model and operation group of doc.
func (p *Processor) ProcessDocument(ctx context.Context, doc *Document) (*Result, error) {
	if doc == nil {
		return nil, &tserrors.SchemaError{Message: "nil document"}
	}
	start := time.Now()
	p.logger.Debug("processing document", "models", len(doc.Models), "groups", len(doc.Groups))

	models, found, err := p.ProcessModels(ctx, doc.Models)
	if err != nil {
		return nil, err
	}
	result := &Result{Models: models, Issues: found}

	for _, group := range doc.Groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		processed, groupIssues, err := p.ProcessOperations(group)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, processed)
		result.Issues = append(result.Issues, groupIssues...)
	}

	result.ProcessTime = time.Since(start)
	p.logger.Info("processed document",
		"models", len(result.Models),
		"groups", len(result.Groups),
		"warnings", result.WarningCount(),
		"elapsed", result.ProcessTime,
	)
	return result, nil
}
