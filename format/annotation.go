package format

import (
	"strings"

	"github.com/dhamidi/jcanon/java"
)

// wellKnownAnnotationPrefix guards the display heuristic for unnamed
// single-element annotation attributes: only annotations from this
// namespace get their lone positional value shown as "value = ...". The
// string is deliberately hardcoded; widening it would change rendered
// output for unrelated annotations.
const wellKnownAnnotationPrefix = "java.lang."

func renderAnnotation(a java.Annotation) string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Type)
	sb.WriteString("(")
	for i, attr := range a.Attributes {
		if i > 0 {
			sb.WriteString(", ")
		}
		name := attr.Name
		if name == "" && len(a.Attributes) == 1 && strings.HasPrefix(a.Type, wellKnownAnnotationPrefix) {
			name = "value"
		}
		if name != "" {
			sb.WriteString(name)
			sb.WriteString(" = ")
		}
		sb.WriteString(renderElementValue(attr.Value))
	}
	sb.WriteString(")")
	return sb.String()
}

func renderElementValue(v java.ElementValue) string {
	switch v.Kind {
	case java.ValueAnnotation:
		if v.Annotation == nil {
			return ""
		}
		return renderAnnotation(*v.Annotation)
	case java.ValueArray:
		var sb strings.Builder
		sb.WriteString("{")
		for i, elem := range v.Array {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderElementValue(elem))
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return v.Literal
	}
}
