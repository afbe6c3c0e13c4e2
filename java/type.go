package java

import "strings"

// ErrorTypeName is the sentinel rendered for a type reference the producer
// could not resolve.
const ErrorTypeName = "error.NonExistentClass"

// TypeRef is the canonical textual form of a type reference: a name
// (possibly carrying type arguments, e.g. "java.util.List<T>") plus an
// array depth.
type TypeRef struct {
	Name       string `json:"name"`
	ArrayDepth int    `json:"arrayDepth,omitempty"`
}

func (t TypeRef) String() string {
	var sb strings.Builder
	if t.Name == "" {
		sb.WriteString(ErrorTypeName)
	} else {
		sb.WriteString(t.Name)
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (t TypeRef) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// IsError reports whether the reference is unresolved or the producer's
// explicit error sentinel.
func (t TypeRef) IsError() bool {
	return t.Name == "" || t.Name == ErrorTypeName
}

func (t TypeRef) IsArray() bool {
	return t.ArrayDepth > 0
}

// AsArray returns the reference with one more array dimension. Varargs
// render through this.
func (t TypeRef) AsArray() TypeRef {
	return TypeRef{Name: t.Name, ArrayDepth: t.ArrayDepth + 1}
}

// Erased strips type arguments from the name, keeping the array depth.
func (t TypeRef) Erased() TypeRef {
	name := t.Name
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	return TypeRef{Name: name, ArrayDepth: t.ArrayDepth}
}
