// Package typemap resolves schema nodes into TypeScript type declarations.
//
// Resolution follows a fixed precedence: arrays, maps with a value schema,
// free-form maps, binary payloads and anonymous objects are recognised by
// shape first; everything else is looked up in the configured type mapping,
// returned as-is when it names a language primitive or a generic container,
// and otherwise converted into a model name.
//
//	r := typemap.New(cfg)
//	decl, err := r.Resolve(schema.MapOf(schema.Primitive("integer", "")))
//	// decl == "{ [key: string]: number; }"
package typemap

import (
	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/names"
	"github.com/erraggy/tscodegen/schema"
	"github.com/erraggy/tscodegen/tserrors"
)

// Resolver maps schema nodes to type declarations. It holds no mutable state.
type Resolver struct {
	cfg   *config.Config
	names *names.Normalizer
}

// New returns a Resolver for cfg.
func New(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg, names: names.New(cfg)}
}

// Resolve returns the type declaration for node.
// A nil node, or one nested deeper than the configured maximum, is an error.
func (r *Resolver) Resolve(node *schema.Node) (string, error) {
	return r.resolve(node, "", 0)
}

// AdditionalPropertiesType returns the declaration of the values a map-shaped
// model accepts beyond its declared properties. ok is false for schemas that
// do not accept additional properties, which is not an error.
func (r *Resolver) AdditionalPropertiesType(node *schema.Node) (decl string, ok bool, err error) {
	if node == nil {
		return "", false, &tserrors.SchemaError{Message: "nil schema node"}
	}
	switch {
	case node.Kind == schema.KindMap && node.Value != nil:
		decl, err = r.resolve(node.Value, "additionalProperties", 1)
	case node.Kind == schema.KindMap && node.AnyValues:
		decl, err = r.resolve(schema.Object(""), "additionalProperties", 1)
	default:
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return decl, true, nil
}

func (r *Resolver) resolve(node *schema.Node, path string, depth int) (string, error) {
	if node == nil {
		return "", &tserrors.SchemaError{Path: path, Message: "nil schema node"}
	}
	if depth > r.cfg.MaxDepth() {
		return "", &tserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(r.cfg.MaxDepth()),
			Actual:       int64(depth),
			Message:      "schema nested too deeply at " + displayPath(path),
		}
	}

	switch node.Kind {
	case schema.KindArray:
		if node.Items.IsByteFormat() {
			return r.cfg.BinaryType(), nil
		}
		item, err := r.resolve(node.Items, join(path, "items"), depth+1)
		if err != nil {
			return "", err
		}
		return r.cfg.CollectionType() + "<" + item + ">", nil

	case schema.KindMap:
		switch {
		case node.Value != nil:
			return r.indexSignature(node.Value, path, depth)
		case node.AnyValues:
			return r.indexSignature(schema.Object(""), path, depth)
		default:
			// additionalProperties: false leaves a plain object.
			return r.cfg.AnyType(), nil
		}

	case schema.KindFile:
		return r.cfg.BinaryType(), nil

	case schema.KindObject:
		if node.Name == "" {
			return r.cfg.AnyType(), nil
		}
		return r.named(node.Name), nil

	case schema.KindPrimitive:
		return r.named(rawPrimitiveName(node.Name, node.Format)), nil

	case schema.KindReference:
		return r.named(node.Name), nil

	default:
		return "", &tserrors.SchemaError{Path: path, Message: "unknown schema kind " + node.Kind.String()}
	}
}

func (r *Resolver) indexSignature(value *schema.Node, path string, depth int) (string, error) {
	decl, err := r.resolve(value, join(path, "additionalProperties"), depth+1)
	if err != nil {
		return "", err
	}
	return "{ [key: " + r.cfg.MapKeyType() + "]: " + decl + "; }", nil
}

// named applies the type mapping to a raw type name. Primitives and generic
// instantiations, before or after mapping, are final; anything else becomes a
// model name.
func (r *Resolver) named(raw string) string {
	name := raw
	if mapped, ok := r.cfg.MapType(raw); ok {
		name = mapped
	}
	if r.cfg.IsPrimitive(raw) || r.cfg.IsPrimitive(name) || r.cfg.IsGenericType(name) {
		return name
	}
	return r.names.ToModelName(name)
}

// MapDataType applies the type mapping to an already computed data type, as
// done for operation parameters. Unmapped types are returned unchanged.
func (r *Resolver) MapDataType(dataType string) string {
	if mapped, ok := r.cfg.MapType(dataType); ok {
		return mapped
	}
	return dataType
}

// IsBinary reports whether a resolved type is the binary buffer type.
func (r *Resolver) IsBinary(dataType string) bool {
	return dataType == r.cfg.BinaryType()
}

// IsFile reports whether a resolved type is the file upload type.
func (r *Resolver) IsFile(dataType string) bool {
	return dataType == r.cfg.FileType()
}

func join(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

func displayPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

// ImportName returns the model name that a reference to raw brings into a
// file's imports. ok is false when raw resolves to a primitive or generic
// type, which needs no import.
func (r *Resolver) ImportName(raw string) (name string, ok bool) {
	name = r.named(raw)
	if r.cfg.IsPrimitive(raw) || r.cfg.IsPrimitive(name) || r.cfg.IsGenericType(name) {
		return "", false
	}
	return name, true
}

// ImportNames applies ImportName to every reference in node.
func (r *Resolver) ImportNames(node *schema.Node) []string {
	var out []string
	for _, raw := range node.References() {
		if name, ok := r.ImportName(raw); ok {
			out = append(out, name)
		}
	}
	return out
}
