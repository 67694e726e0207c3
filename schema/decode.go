package schema

import (
	"fmt"
	"strings"

	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/tserrors"
	"go.yaml.in/yaml/v4"
)

// Decode parses a single YAML or JSON schema object.
func Decode(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &tserrors.SchemaError{Message: "invalid schema document", Cause: err}
	}
	return FromYAML("", &doc)
}

// FromYAML converts a decoded YAML schema object into a Node.
// path is used in error messages to locate the schema in its document.
func FromYAML(path string, n *yaml.Node) (*Node, error) {
	return newDecoder().fromYAML("", path, n, 0)
}

// NamedFromYAML converts a model definition. Object definitions keep name so
// that they resolve like a reference to the model.
func NamedFromYAML(name, path string, n *yaml.Node) (*Node, error) {
	return newDecoder().fromYAML(name, path, n, 0)
}

// decoder tracks the schema mappings on the current descent. An anchor that
// is aliased from inside itself would otherwise recurse forever.
type decoder struct {
	active map[*yaml.Node]bool
}

func newDecoder() *decoder {
	return &decoder{active: make(map[*yaml.Node]bool)}
}

func (d *decoder) fromYAML(name, path string, n *yaml.Node, depth int) (*Node, error) {
	n = Deref(n)
	if n == nil {
		return nil, &tserrors.SchemaError{Path: path, Message: "empty schema"}
	}
	if n.Kind != yaml.MappingNode {
		return nil, &tserrors.SchemaError{Path: path, Message: fmt.Sprintf("schema must be a mapping, got %s", kindName(n.Kind))}
	}
	if depth > config.DefaultMaxDepth {
		return nil, &tserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        config.DefaultMaxDepth,
			Actual:       int64(depth),
			Message:      "schema nested too deeply at " + displayPath(path),
		}
	}
	if d.active[n] {
		return nil, &tserrors.SchemaError{Path: path, Message: "circular alias"}
	}
	d.active[n] = true
	defer delete(d.active, n)

	fields := mappingFields(n)

	if ref, ok := fields["$ref"]; ok {
		target := scalar(ref)
		if target == "" {
			return nil, &tserrors.SchemaError{Path: path + ".$ref", Message: "reference must be a non-empty string"}
		}
		return Ref(refName(target)), nil
	}

	typ := typeName(fields["type"])
	format := scalar(fields["format"])

	switch {
	case typ == "array" || (typ == "" && fields["items"] != nil):
		items := Object("")
		if itemsNode, ok := fields["items"]; ok {
			var err error
			items, err = d.fromYAML("", path+".items", itemsNode, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return ArrayOf(items), nil

	case typ == "file" || (typ == "string" && format == "binary"):
		return File(), nil

	case typ == "object" || (typ == "" && (fields["properties"] != nil || fields["additionalProperties"] != nil)):
		return d.objectFromYAML(name, path, fields, depth)

	case typ == "":
		// {} accepts anything
		return Object(name), nil

	default:
		return Primitive(typ, format), nil
	}
}

func (d *decoder) objectFromYAML(name, path string, fields map[string]*yaml.Node, depth int) (*Node, error) {
	props, err := d.propertiesFromYAML(path, fields, depth)
	if err != nil {
		return nil, err
	}

	node := Object(name, props...)
	additional := Deref(fields["additionalProperties"])
	if additional == nil {
		return node, nil
	}

	switch additional.Kind {
	case yaml.ScalarNode:
		switch strings.ToLower(additional.Value) {
		case "true":
			node.Kind = KindMap
			node.AnyValues = true
		case "false":
			// Closed object; no additional-properties type.
		default:
			return nil, &tserrors.SchemaError{Path: path + ".additionalProperties", Message: "must be a boolean or a schema"}
		}
	case yaml.MappingNode:
		value, err := d.fromYAML("", path+".additionalProperties", additional, depth+1)
		if err != nil {
			return nil, err
		}
		node.Kind = KindMap
		node.Value = value
	default:
		return nil, &tserrors.SchemaError{Path: path + ".additionalProperties", Message: "must be a boolean or a schema"}
	}
	return node, nil
}

func (d *decoder) propertiesFromYAML(path string, fields map[string]*yaml.Node, depth int) ([]Property, error) {
	propsNode := Deref(fields["properties"])
	if propsNode == nil {
		return nil, nil
	}
	if propsNode.Kind != yaml.MappingNode {
		return nil, &tserrors.SchemaError{Path: path + ".properties", Message: "properties must be a mapping"}
	}

	required := make(map[string]bool)
	if req := Deref(fields["required"]); req != nil && req.Kind == yaml.SequenceNode {
		for _, item := range req.Content {
			required[scalar(item)] = true
		}
	}

	props := make([]Property, 0, len(propsNode.Content)/2)
	for i := 0; i+1 < len(propsNode.Content); i += 2 {
		propName := propsNode.Content[i].Value
		propSchema, err := d.fromYAML("", path+".properties."+propName, propsNode.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Name: propName, Schema: propSchema, Required: required[propName]})
	}
	return props, nil
}

// mappingFields indexes the keys of a mapping node.
func mappingFields(n *yaml.Node) map[string]*yaml.Node {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = n.Content[i+1]
	}
	return fields
}

// Deref unwraps document nodes and follows aliases to their anchored node.
// An empty document yields nil.
func Deref(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.DocumentNode:
			return nil
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func scalar(n *yaml.Node) string {
	n = Deref(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// typeName returns the schema type, taking the first non-null entry of an
// OAS 3.1 type array.
func typeName(n *yaml.Node) string {
	n = Deref(n)
	if n == nil {
		return ""
	}
	if n.Kind == yaml.SequenceNode {
		for _, item := range n.Content {
			if v := scalar(item); v != "" && v != "null" {
				return v
			}
		}
		return ""
	}
	return scalar(n)
}

// refName returns the model name at the end of a JSON reference such as
// "#/components/schemas/Pet".
func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}

func displayPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
