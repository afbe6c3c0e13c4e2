package java

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeDeclaration reads one declaration tree from a YAML document. The
// YAML form is the module's stand-in for an external producer: tools and
// tests describe a tree in YAML and hand the decoded result to a renderer.
func DecodeDeclaration(r io.Reader) (*Declaration, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Declaration
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode declaration: %w", err)
	}
	if d.Kind == "" {
		d.Kind = DeclKindClass
	}
	return &d, nil
}

// ParseTypeRef parses the textual form of a type reference, e.g.
// "java.util.List<T>[][]". Trailing "[]" pairs become array depth.
func ParseTypeRef(s string) TypeRef {
	depth := 0
	for strings.HasSuffix(s, "[]") {
		s = s[:len(s)-2]
		depth++
	}
	return TypeRef{Name: s, ArrayDepth: depth}
}

// UnmarshalYAML accepts a type reference in its textual form.
func (t *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: type reference must be a string", node.Line)
	}
	*t = ParseTypeRef(node.Value)
	return nil
}

// UnmarshalYAML accepts modifiers as a keyword list, e.g.
// [public, static, final]. Visibility keywords and language modifiers may
// be mixed freely; order does not matter.
func (m *Modifiers) UnmarshalYAML(node *yaml.Node) error {
	var kws []string
	if err := node.Decode(&kws); err != nil {
		return fmt.Errorf("line %d: modifiers must be a keyword list: %w", node.Line, err)
	}
	*m = Modifiers{}
	for _, kw := range kws {
		switch kw {
		case "public", "protected", "private":
			m.Visibility = Visibility(kw)
		case "abstract":
			m.IsAbstract = true
		case "default":
			m.IsDefault = true
		case "static":
			m.IsStatic = true
		case "final":
			m.IsFinal = true
		case "transient":
			m.IsTransient = true
		case "volatile":
			m.IsVolatile = true
		case "synchronized":
			m.IsSynchronized = true
		case "native":
			m.IsNative = true
		case "strictfp":
			m.IsStrictfp = true
		default:
			return fmt.Errorf("line %d: unknown modifier keyword %q", node.Line, kw)
		}
	}
	return nil
}

// UnmarshalYAML accepts an annotation value in one of three shapes: a
// scalar (kept verbatim as literal source text), a sequence (an array of
// values) or a mapping (a nested annotation).
func (v *ElementValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = ElementValue{Kind: ValueLiteral, Literal: node.Value}
		return nil
	case yaml.SequenceNode:
		var elems []ElementValue
		if err := node.Decode(&elems); err != nil {
			return err
		}
		*v = ElementValue{Kind: ValueArray, Array: elems}
		return nil
	case yaml.MappingNode:
		var nested Annotation
		if err := node.Decode(&nested); err != nil {
			return err
		}
		*v = ElementValue{Kind: ValueAnnotation, Annotation: &nested}
		return nil
	}
	return fmt.Errorf("line %d: unsupported annotation value", node.Line)
}
