package format

import (
	"strings"

	"github.com/dhamidi/jcanon/java"
)

// isNullabilityAnnotation matches by the final name segment so that the
// org.jetbrains, javax and jakarta spellings are all covered.
func isNullabilityAnnotation(qualifiedName string) bool {
	name := qualifiedName
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	switch name {
	case "Nullable", "NotNull", "NonNull":
		return true
	}
	return false
}

// redundantAnnotation decides whether an annotation is dropped from output.
// Nullability annotations carry no information on primitive or error types
// and only add noise on declarations no external caller can observe (a
// private member, or a parameter of a private method). typ is the declared
// type of the field or parameter, nil for members without one.
func redundantAnnotation(a java.Annotation, typ *java.TypeRef, unobservable bool) bool {
	if !isNullabilityAnnotation(a.Type) {
		return false
	}
	if unobservable {
		return true
	}
	return typ != nil && (typ.IsPrimitive() || typ.IsError())
}

// modifierPrefix renders the annotation and modifier-keyword prefix of a
// member. Surviving annotations are sorted by their rendered text. With
// inline set (parameters), annotations are space-separated on one line;
// otherwise each annotation occupies its own line at indent and the keyword
// run starts a fresh indented line. Keywords follow the canonical source
// order, each with a trailing space.
func modifierPrefix(anns []java.Annotation, mods java.Modifiers, typ *java.TypeRef, unobservable bool, inline bool, indent string) string {
	rendered := make([]string, 0, len(anns))
	for _, a := range anns {
		if redundantAnnotation(a, typ, unobservable) {
			continue
		}
		rendered = append(rendered, renderAnnotation(a))
	}
	sortRendered(rendered)

	var sb strings.Builder
	for _, r := range rendered {
		if inline {
			sb.WriteString(r)
			sb.WriteString(" ")
		} else {
			sb.WriteString(indent)
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}
	if !inline {
		sb.WriteString(indent)
	}
	for _, kw := range mods.Keywords() {
		sb.WriteString(kw)
		sb.WriteString(" ")
	}
	return sb.String()
}
