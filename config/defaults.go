package config

// TypeScript client defaults.
const (
	DefaultClassPrefix    = "swg"
	DefaultAPIName        = "Default"
	DefaultAPISuffix      = "Api"
	DefaultModelPackage   = "model"
	DefaultAPIPackage     = "api"
	DefaultCollectionType = "Array"
	DefaultMapKeyType     = "string"
	DefaultBinaryType     = "ArrayBuffer"
	DefaultFileType       = "Blob"
	DefaultAnyType        = "any"
	DefaultMaxDepth       = 64
)

// defaultTypeMapping maps the generator's raw schema type names to TypeScript.
func defaultTypeMapping() map[string]string {
	return map[string]string{
		"Array":     "Array",
		"array":     "Array",
		"List":      "Array",
		"boolean":   "boolean",
		"string":    "string",
		"int":       "number",
		"float":     "number",
		"number":    "number",
		"long":      "number",
		"short":     "number",
		"char":      "string",
		"double":    "number",
		"object":    "any",
		"integer":   "number",
		"Map":       "any",
		"date":      "string",
		"DateTime":  "string",
		"binary":    "any",
		"File":      "any",
		"file":      DefaultFileType,
		"ByteArray": "string",
		"UUID":      "string",
		"Error":     "Error",
	}
}

func defaultPrimitives() []string {
	return []string{
		"string", "String", "boolean", "Boolean", "Double", "Integer", "Long",
		"Float", "Object", "Array", "Date", "number", "any", "File", "Error",
		"Map", DefaultFileType,
	}
}

func defaultGenericTypes() []string {
	return []string{DefaultCollectionType}
}

// defaultReservedWords lists TypeScript keywords plus the local variable names
// used inside generated API methods.
func defaultReservedWords() []string {
	return []string{
		// Local variables in generated methods
		"varLocalPath", "queryParameters", "headerParams", "formParams",
		"useFormData", "varLocalDeferred", "requestOptions",
		// Language keywords
		"abstract", "await", "boolean", "break", "byte", "case", "catch", "char",
		"class", "const", "continue", "debugger", "default", "delete", "do",
		"double", "else", "enum", "export", "extends", "false", "final",
		"finally", "float", "for", "function", "goto", "if", "implements",
		"import", "in", "instanceof", "int", "interface", "let", "long",
		"native", "new", "null", "package", "private", "protected", "public",
		"return", "short", "static", "super", "switch", "synchronized", "this",
		"throw", "transient", "true", "try", "typeof", "var", "void",
		"volatile", "while", "with", "yield",
	}
}
