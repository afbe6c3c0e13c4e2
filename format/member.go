package format

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jcanon/java"
)

// genericClause renders "<T extends A & B, U>" or "" when there are no
// type parameters. A nameless type parameter violates the producer's
// contract and aborts the render.
func genericClause(tps []java.TypeParameter) (string, error) {
	if len(tps) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("<")
	for i, tp := range tps {
		if tp.Name == "" {
			return "", fmt.Errorf("type parameter %d: %w", i, ErrMissingName)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tp.Name)
		for j, b := range tp.Bounds {
			if j == 0 {
				sb.WriteString(" extends ")
			} else {
				sb.WriteString(" & ")
			}
			sb.WriteString(b.String())
		}
	}
	sb.WriteString(">")
	return sb.String(), nil
}

func renderField(f *java.Field, indent string) (string, error) {
	if f.Name == "" {
		return "", fmt.Errorf("field: %w", ErrMissingName)
	}
	var sb strings.Builder
	sb.WriteString(modifierPrefix(f.Annotations, f.Modifiers, &f.Type, f.Modifiers.IsPrivate(), false, indent))
	sb.WriteString(f.Type.String())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	if f.IsVararg {
		sb.WriteString(" /* vararg */")
	}
	if f.Initializer != "" {
		sb.WriteString(" = ")
		sb.WriteString(f.Initializer)
		sb.WriteString(" /* initializer type: ")
		sb.WriteString(f.InitializerType)
		sb.WriteString(" */")
	}
	if f.ConstantValue != nil {
		sb.WriteString(" /* constant value ")
		sb.WriteString(*f.ConstantValue)
		sb.WriteString(" */")
	}
	return sb.String(), nil
}

func renderMethod(m *java.Method, indent string) (string, error) {
	if m.Name == "" {
		return "", fmt.Errorf("method: %w", ErrMissingName)
	}
	generics, err := genericClause(m.TypeParameters)
	if err != nil {
		return "", fmt.Errorf("method %s: %w", m.Name, err)
	}

	var sb strings.Builder
	sb.WriteString(modifierPrefix(m.Annotations, m.Modifiers, nil, m.Modifiers.IsPrivate(), false, indent))
	if generics != "" {
		sb.WriteString(generics)
		sb.WriteString(" ")
	}
	if m.IsVarargs {
		sb.WriteString("/* vararg */ ")
	}
	if !m.IsConstructor() {
		sb.WriteString(m.ReturnType.String())
		sb.WriteString(" ")
	}
	sb.WriteString(m.Name)
	sb.WriteString("(")
	for i := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderParameter(&m.Parameters[i], m.Modifiers.IsPrivate()))
	}
	sb.WriteString(")")
	if m.DefaultValue != "" {
		sb.WriteString(" default ")
		sb.WriteString(m.DefaultValue)
	}
	if len(m.Throws) > 0 {
		// Declaration order is meaningful for throws clauses and is kept.
		sb.WriteString(" throws ")
		for i, ex := range m.Throws {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ex.String())
		}
	}
	sb.WriteString(";")
	sb.WriteString(" // ")
	sb.WriteString(erasedSignature(m, generics))
	return sb.String(), nil
}

func renderParameter(p *java.Parameter, enclosingPrivate bool) string {
	var sb strings.Builder
	sb.WriteString(modifierPrefix(p.Annotations, p.Modifiers, &p.Type, enclosingPrivate, true, ""))
	typ := p.Type
	if p.IsVararg {
		typ = typ.AsArray()
	}
	sb.WriteString(typ.String())
	if p.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	return sb.String()
}

// erasedSignature renders the overload-disambiguating trailing comment:
// the generic clause, ".ctor" or the method name, and the erased parameter
// types. It survives even when two overloads only differ in generic
// instantiation.
func erasedSignature(m *java.Method, generics string) string {
	var sb strings.Builder
	if generics != "" {
		sb.WriteString(generics)
		sb.WriteString(" ")
	}
	if m.IsConstructor() {
		sb.WriteString(".ctor")
	} else {
		sb.WriteString(m.Name)
	}
	sb.WriteString("(")
	for i, t := range erasedParameterTypes(m) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t)
	}
	sb.WriteString(")")
	return sb.String()
}

// erasedParameterTypes prefers the producer's substituted/erased list and
// falls back to erasing the declared parameter types.
func erasedParameterTypes(m *java.Method) []string {
	if len(m.ErasedParameterTypes) > 0 {
		return m.ErasedParameterTypes
	}
	types := make([]string, len(m.Parameters))
	for i := range m.Parameters {
		t := m.Parameters[i].Type
		if m.Parameters[i].IsVararg {
			t = t.AsArray()
		}
		types[i] = t.Erased().String()
	}
	return types
}
