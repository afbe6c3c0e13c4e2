package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jcanon/java"
)

// indentUnit is applied once per nesting level.
const indentUnit = "  "

// CanonicalEncoder projects a declaration tree to its canonical text form:
// a stable rendering intended for byte-exact comparison against golden
// files. Output does not depend on the iteration order of the producer's
// member lists, and rendering the same tree twice yields identical bytes.
// The encoder holds no state across Encode calls beyond the target writer,
// so distinct encoders may run concurrently over distinct trees.
type CanonicalEncoder struct {
	w           io.Writer
	renderInner bool
	decl        *java.Declaration
}

func NewCanonicalEncoder(w io.Writer) *CanonicalEncoder {
	return &CanonicalEncoder{w: w, renderInner: true}
}

// RenderInner controls whether inner classes expand recursively. When
// disabled, an inner class renders as the one-line placeholder
// "class <name> ...", which bounds output size and recursion depth.
func (e *CanonicalEncoder) RenderInner(v bool) {
	e.renderInner = v
}

func (e *CanonicalEncoder) Encode(decl *java.Declaration) error {
	e.decl = decl
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *CanonicalEncoder) MarshalText() ([]byte, error) {
	text, err := renderDeclaration(e.decl, "", e.renderInner)
	if err != nil {
		return nil, err
	}
	return []byte(text + "\n"), nil
}

// RenderCanonical is a convenience wrapper for callers that want the
// canonical text of one declaration as a string.
func RenderCanonical(decl *java.Declaration) (string, error) {
	text, err := renderDeclaration(decl, "", true)
	if err != nil {
		return "", err
	}
	return text + "\n", nil
}

func renderDeclaration(d *java.Declaration, indent string, renderInner bool) (string, error) {
	if d.SimpleName == "" {
		return "", fmt.Errorf("declaration: %w", ErrMissingName)
	}

	var sb strings.Builder
	sb.WriteString(modifierPrefix(d.Annotations, d.Modifiers, nil, d.Modifiers.IsPrivate(), false, indent))
	sb.WriteString(d.Kind.Keyword())
	sb.WriteString(" ")
	sb.WriteString(d.SimpleName)
	sb.WriteString(" /* ")
	if d.Name != "" {
		sb.WriteString(d.Name)
	} else {
		// Unresolved qualified name; fall back to the simple name rather
		// than failing the render.
		sb.WriteString(d.SimpleName)
	}
	sb.WriteString(" */")

	generics, err := genericClause(d.TypeParameters)
	if err != nil {
		return "", fmt.Errorf("declaration %s: %w", d.SimpleName, err)
	}
	sb.WriteString(generics)
	sb.WriteString(supertypeClause(" extends ", d.SuperTypes))
	sb.WriteString(supertypeClause(" implements ", d.Interfaces))
	sb.WriteString(" {\n")

	childIndent := indent + indentUnit

	if len(d.EnumConstants) > 0 {
		constants := make([]string, len(d.EnumConstants))
		for i := range d.EnumConstants {
			text, err := renderEnumConstant(&d.EnumConstants[i], childIndent)
			if err != nil {
				return "", fmt.Errorf("declaration %s: %w", d.SimpleName, err)
			}
			constants[i] = text
		}
		sortRendered(constants)
		sb.WriteString(strings.Join(constants, ",\n"))
		sb.WriteString(";\n")
	}

	fields, err := renderFieldGroup(d.Fields, childIndent)
	if err != nil {
		return "", fmt.Errorf("declaration %s: %w", d.SimpleName, err)
	}
	methods, err := renderMethodGroup(d.Methods, childIndent)
	if err != nil {
		return "", fmt.Errorf("declaration %s: %w", d.SimpleName, err)
	}

	inner := make([]string, len(d.InnerClasses))
	for i, ic := range d.InnerClasses {
		if renderInner {
			text, err := renderDeclaration(ic, childIndent, true)
			if err != nil {
				return "", fmt.Errorf("declaration %s: %w", d.SimpleName, err)
			}
			inner[i] = text
		} else {
			if ic.SimpleName == "" {
				return "", fmt.Errorf("declaration %s: inner class: %w", d.SimpleName, ErrMissingName)
			}
			inner[i] = childIndent + "class " + ic.SimpleName + " ..."
		}
	}
	sortRendered(inner)

	// Fixed group order: fields, methods, inner classes. Each group is
	// already sorted over its rendered text.
	for _, group := range [][]string{fields, methods, inner} {
		for _, member := range group {
			sb.WriteString(member)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(indent)
	sb.WriteString("}")
	return sb.String(), nil
}

func renderFieldGroup(fields []java.Field, indent string) ([]string, error) {
	rendered := make([]string, len(fields))
	for i := range fields {
		text, err := renderField(&fields[i], indent)
		if err != nil {
			return nil, err
		}
		rendered[i] = text
	}
	sortRendered(rendered)
	return rendered, nil
}

func renderMethodGroup(methods []java.Method, indent string) ([]string, error) {
	rendered := make([]string, len(methods))
	for i := range methods {
		text, err := renderMethod(&methods[i], indent)
		if err != nil {
			return nil, err
		}
		rendered[i] = text
	}
	sortRendered(rendered)
	return rendered, nil
}

func renderEnumConstant(c *java.EnumConstant, indent string) (string, error) {
	if c.Name == "" {
		return "", fmt.Errorf("enum constant: %w", ErrMissingName)
	}
	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(c.Name)
	if !c.HasBody() {
		return sb.String(), nil
	}

	sb.WriteString(" {\n")
	bodyIndent := indent + indentUnit
	fields, err := renderFieldGroup(c.Fields, bodyIndent)
	if err != nil {
		return "", fmt.Errorf("enum constant %s: %w", c.Name, err)
	}
	methods, err := renderMethodGroup(c.Methods, bodyIndent)
	if err != nil {
		return "", fmt.Errorf("enum constant %s: %w", c.Name, err)
	}
	for _, group := range [][]string{fields, methods} {
		for _, member := range group {
			sb.WriteString(member)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(indent)
	sb.WriteString("}")
	return sb.String(), nil
}

// supertypeClause renders " extends ..."/" implements ..." with the type
// names sorted alphabetically on their rendered form. Sorting the rendered
// strings gives a total order even for structurally incomparable types.
func supertypeClause(prefix string, types []java.TypeRef) string {
	if len(types) == 0 {
		return ""
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	sortRendered(names)
	return prefix + strings.Join(names, ", ")
}
