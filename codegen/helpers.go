package codegen

import (
	"fmt"
	"strings"
	"text/template"
)

// FuncMap returns the helper functions client templates call:
//
//	concat    appends every argument to the first: {{concat "swg" .ClassName "Api"}}
//	lc        lowercases a string
//	backSlash returns a single backslash
//	isBinary  reports whether a type is the configured binary buffer type
//
// The map is built per call; callers may add to it.
func (p *Processor) FuncMap() template.FuncMap {
	binary := p.cfg.BinaryType()
	return template.FuncMap{
		"concat":    concat,
		"lc":        strings.ToLower,
		"backSlash": backSlash,
		"isBinary":  func(dataType string) bool { return dataType == binary },
	}
}

func concat(element string, params ...any) string {
	var b strings.Builder
	b.WriteString(element)
	for _, param := range params {
		fmt.Fprint(&b, param)
	}
	return b.String()
}

func backSlash() string { return `\` }
