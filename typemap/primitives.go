package typemap

// rawPrimitiveName returns the generator's raw name for a schema type and
// format pair; these raw names are the keys of the type mapping.
func rawPrimitiveName(typ, format string) string {
	switch typ {
	case "integer":
		if format == "int64" {
			return "long"
		}
		return "integer"
	case "number":
		switch format {
		case "float":
			return "float"
		case "double":
			return "double"
		}
		return "number"
	case "string":
		switch format {
		case "date":
			return "date"
		case "date-time":
			return "DateTime"
		case "byte":
			return "ByteArray"
		case "binary":
			return "binary"
		case "uuid":
			return "UUID"
		}
		return "string"
	default:
		return typ
	}
}
