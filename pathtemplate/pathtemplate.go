// Package pathtemplate rewrites operation paths such as "/pets/{petId}" into
// TypeScript template-literal bodies:
//
//	/pets/${encodeURIComponent(String(petId))}
//
// The path is scanned one character at a time by a two-state machine
// (literal text / inside braces). Braces must pair up and may not nest;
// anything else is reported as a *tserrors.PathTemplateError.
package pathtemplate

import (
	"strings"

	"github.com/erraggy/tscodegen/tserrors"
)

// Interpolation opener and closer wrapped around each parameter reference.
// The parameter value is stringified and URL-escaped before it is inserted.
const (
	ParamOpen  = "${encodeURIComponent(String("
	ParamClose = "))}"
)

// SegmentKind distinguishes literal path text from parameter placeholders.
type SegmentKind int

const (
	// Literal is text copied verbatim.
	Literal SegmentKind = iota
	// Param is a {name} placeholder.
	Param
)

// Segment is one piece of a parsed path.
type Segment struct {
	Kind SegmentKind
	// Text is the literal text or the raw parameter name.
	Text string
}

// Template is a parsed operation path.
type Template struct {
	Raw      string
	Segments []Segment
}

// ParamNames returns the raw parameter names in order of appearance.
func (t Template) ParamNames() []string {
	var params []string
	for _, seg := range t.Segments {
		if seg.Kind == Param {
			params = append(params, seg.Text)
		}
	}
	return params
}

// Render writes the template as a template-literal body, passing every
// parameter name through resolve. A nil resolve leaves names unchanged.
func (t Template) Render(resolve func(string) string) string {
	var buf strings.Builder
	buf.Grow(len(t.Raw) + len(t.Segments)*(len(ParamOpen)+len(ParamClose)))
	for _, seg := range t.Segments {
		switch seg.Kind {
		case Literal:
			buf.WriteString(seg.Text)
		case Param:
			name := seg.Text
			if resolve != nil {
				name = resolve(name)
			}
			buf.WriteString(ParamOpen)
			buf.WriteString(name)
			buf.WriteString(ParamClose)
		}
	}
	return buf.String()
}

type scanState int

const (
	inLiteral scanState = iota
	insideBraces
)

// Parse splits rawPath into literal and parameter segments.
func Parse(rawPath string) (Template, error) {
	tpl := Template{Raw: rawPath}
	state := inLiteral
	start := 0 // start of the pending literal or parameter name
	open := 0  // offset of the last '{'

	for i := 0; i < len(rawPath); i++ {
		c := rawPath[i]
		switch state {
		case inLiteral:
			switch c {
			case '{':
				if i > start {
					tpl.Segments = append(tpl.Segments, Segment{Kind: Literal, Text: rawPath[start:i]})
				}
				state = insideBraces
				open = i
				start = i + 1
			case '}':
				return Template{}, &tserrors.PathTemplateError{Path: rawPath, Offset: i, Message: "closing brace without opening brace"}
			}

		case insideBraces:
			switch c {
			case '{':
				return Template{}, &tserrors.PathTemplateError{Path: rawPath, Offset: i, Message: "nested braces are not supported"}
			case '}':
				if i == start {
					return Template{}, &tserrors.PathTemplateError{Path: rawPath, Offset: open, Message: "empty parameter name"}
				}
				tpl.Segments = append(tpl.Segments, Segment{Kind: Param, Text: rawPath[start:i]})
				state = inLiteral
				start = i + 1
			}
		}
	}

	if state == insideBraces {
		return Template{}, &tserrors.PathTemplateError{Path: rawPath, Offset: open, Message: "unterminated parameter"}
	}
	if start < len(rawPath) {
		tpl.Segments = append(tpl.Segments, Segment{Kind: Literal, Text: rawPath[start:]})
	}
	return tpl, nil
}

// Rewrite converts rawPath into a template-literal body, passing parameter
// names through resolve, then removes stripPrefix from the front of the
// result when it is non-empty and present.
func Rewrite(rawPath string, resolve func(string) string, stripPrefix string) (string, error) {
	tpl, err := Parse(rawPath)
	if err != nil {
		return "", err
	}
	out := tpl.Render(resolve)
	if stripPrefix != "" {
		out = strings.TrimPrefix(out, stripPrefix)
	}
	return out, nil
}
