// Package codegen post-processes the model and operation records a TypeScript
// client generator renders into source files.
//
// A [Processor] combines the type resolver, identifier normalizer, path
// template rewriter and import resolver under one configuration:
//
//	cfg, _ := config.New(config.WithSkipPathPrefix("/v1"))
//	p, err := codegen.New(cfg)
//	if err != nil {
//		return err
//	}
//	model, issues, err := p.ProcessModel("PetDto", node)
//
// For each model it computes the class name, file name, property types, the
// additional-properties type of map-shaped models, the array-buffer marker on
// binary properties and the import list. For each operation group it computes
// the API class and file name, rewrites every path into a template literal,
// re-maps parameter types and lists the model imports the API file needs.
//
// Fallbacks the generator applies silently, such as escaping a reserved word,
// are reported as [Issue] values alongside the records. Errors are
// returned only for input that cannot be processed at all.
//
// [ParseDocument] builds the input records from a Swagger 2.0 or OpenAPI 3.x
// description, so a whole document can be processed with
// [Processor.ProcessDocument]. The package does not validate documents and
// does not render templates; [Processor.FuncMap] exposes the helper functions
// templates use.
package codegen
