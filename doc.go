// Package tscodegen is the type- and name-resolution core of a schema-driven
// TypeScript client generator.
//
// Given an API description it decides which TypeScript type, identifier and
// import every schema element becomes, and rewrites operation paths into
// template-literal interpolation. Rendering templates and writing files is
// left to the host generator.
//
// # Packages
//
//   - config: immutable generator configuration (type mapping, primitives,
//     generic types, reserved words, prefixes, naming conventions)
//   - schema: the schema node model and decoding from YAML or JSON
//   - typemap: schema node to TypeScript type declaration
//   - names: model, file, API and variable names with reserved-word escaping
//   - pathtemplate: "/pets/{petId}" to "/pets/${encodeURIComponent(String(petId))}"
//   - imports: per-model import lists
//   - codegen: post-processing of whole models, operation groups and documents
//   - tserrors: structured errors shared by all packages
//
// # Quick Start
//
//	cfg, err := config.New(config.WithSkipPathPrefix("/v1"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	decl, _ := typemap.New(cfg).Resolve(schema.MapOf(schema.Primitive("integer", "")))
//	// decl == "{ [key: string]: number; }"
//
//	n := names.New(cfg)
//	n.ToModelName("pet_dto")  // "Pet"
//	n.ToAPIName("PetController") // "swgPetApi"
//
//	path, _ := pathtemplate.Rewrite("/v1/users/{id}", n.ToVarName, cfg.SkipPathPrefix())
//	// path == "/users/${encodeURIComponent(String(id))}"
//
// The tscodegen command exposes the same operations on the command line and
// as MCP tools.
package tscodegen
