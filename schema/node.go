// Package schema defines the schema graph the resolvers read: a closed set of
// node kinds covering primitives, arrays, maps, objects, binary payloads and
// references to named models.
//
// Nodes are usually produced by the host pipeline. Decode builds them from a
// YAML or JSON schema object for hosts (and the tscodegen CLI) that start
// from an API description document.
package schema

import "fmt"

// Kind identifies the shape of a schema node.
type Kind int

const (
	// KindPrimitive is a scalar such as string, integer or boolean.
	KindPrimitive Kind = iota
	// KindArray is a list of Items.
	KindArray
	// KindMap is an object with additional properties.
	KindMap
	// KindObject is an inline or named object.
	KindObject
	// KindFile is a file upload or binary payload.
	KindFile
	// KindReference points to a separately defined model.
	KindReference
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindFile:
		return "file"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one element of the schema graph.
// Which fields are meaningful depends on Kind.
type Node struct {
	Kind Kind

	// Name is the type name of a primitive, the name of a named object, or
	// the model name a reference points to.
	Name string

	// Format refines a primitive (e.g. "int64", "byte", "date-time").
	Format string

	// Items is the element schema of an array.
	Items *Node

	// Value is the explicit additional-properties schema of a map.
	Value *Node

	// AnyValues is set for maps declared with additionalProperties: true.
	AnyValues bool

	// Properties are the declared properties of an object or map, in order.
	Properties []Property
}

// Property is a named member of an object schema.
type Property struct {
	Name     string
	Schema   *Node
	Required bool
}

// Primitive returns a scalar node.
func Primitive(name, format string) *Node {
	return &Node{Kind: KindPrimitive, Name: name, Format: format}
}

// ArrayOf returns an array of items.
func ArrayOf(items *Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

// MapOf returns a map whose values conform to value.
func MapOf(value *Node) *Node {
	return &Node{Kind: KindMap, Value: value}
}

// FreeFormMap returns a map that accepts arbitrary values.
func FreeFormMap() *Node {
	return &Node{Kind: KindMap, AnyValues: true}
}

// Object returns an object node. An empty name is an anonymous inline object.
func Object(name string, props ...Property) *Node {
	return &Node{Kind: KindObject, Name: name, Properties: props}
}

// File returns a file or binary payload node.
func File() *Node {
	return &Node{Kind: KindFile}
}

// Ref returns a reference to the model called name.
func Ref(name string) *Node {
	return &Node{Kind: KindReference, Name: name}
}

// HasAdditionalProperties reports whether n declares an additional-properties
// type, either explicitly or as "any value". A map built from
// additionalProperties: false reports false.
func (n *Node) HasAdditionalProperties() bool {
	return n != nil && n.Kind == KindMap && (n.Value != nil || n.AnyValues)
}

// IsByteFormat reports whether n is a primitive carrying byte-encoded data.
func (n *Node) IsByteFormat() bool {
	return n != nil && n.Kind == KindPrimitive && n.Format == "byte"
}

// References returns the distinct model names n refers to, directly or
// through nested arrays, maps and properties, in first-seen order.
func (n *Node) References() []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		switch cur.Kind {
		case KindReference:
			if !seen[cur.Name] {
				seen[cur.Name] = true
				names = append(names, cur.Name)
			}
		case KindArray:
			walk(cur.Items)
		case KindMap:
			walk(cur.Value)
			for _, p := range cur.Properties {
				walk(p.Schema)
			}
		case KindObject:
			for _, p := range cur.Properties {
				walk(p.Schema)
			}
		case KindPrimitive, KindFile:
		}
	}
	walk(n)
	return names
}
