package java

// DeclKind distinguishes the four top-level declaration forms.
type DeclKind string

const (
	DeclKindClass      DeclKind = "class"
	DeclKindInterface  DeclKind = "interface"
	DeclKindEnum       DeclKind = "enum"
	DeclKindAnnotation DeclKind = "annotation"
)

// Keyword returns the source-level keyword introducing the declaration.
func (k DeclKind) Keyword() string {
	if k == DeclKindAnnotation {
		return "@interface"
	}
	return string(k)
}

// Declaration is one class, interface, enum or annotation type together
// with its directly declared members. The tree is built by an external
// producer (a parser, a decoder, a test) and is never mutated by this
// module; renderers treat it as read-only.
type Declaration struct {
	SimpleName     string          `yaml:"simpleName" json:"simpleName"`
	Name           string          `yaml:"name" json:"name"`
	Kind           DeclKind        `yaml:"kind" json:"kind"`
	Modifiers      Modifiers       `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Annotations    []Annotation    `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	TypeParameters []TypeParameter `yaml:"typeParameters,omitempty" json:"typeParameters,omitempty"`
	SuperTypes     []TypeRef       `yaml:"superTypes,omitempty" json:"superTypes,omitempty"`
	Interfaces     []TypeRef       `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	EnumConstants  []EnumConstant  `yaml:"enumConstants,omitempty" json:"enumConstants,omitempty"`
	Fields         []Field         `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods        []Method        `yaml:"methods,omitempty" json:"methods,omitempty"`
	InnerClasses   []*Declaration  `yaml:"innerClasses,omitempty" json:"innerClasses,omitempty"`
}

// EnumConstant is a single enum constant, optionally carrying the members
// of an anonymous initializing body.
type EnumConstant struct {
	Name    string   `yaml:"name" json:"name"`
	Fields  []Field  `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods []Method `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// HasBody reports whether the constant carries an anonymous class body.
func (c EnumConstant) HasBody() bool {
	return len(c.Fields) > 0 || len(c.Methods) > 0
}

type Field struct {
	Name        string       `yaml:"name" json:"name"`
	Type        TypeRef      `yaml:"type" json:"type"`
	Modifiers   Modifiers    `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	IsVararg    bool         `yaml:"vararg,omitempty" json:"vararg,omitempty"`

	// Initializer is the source text of the initializer expression, empty
	// when the field has none. InitializerType is the rendered type of that
	// expression when the producer knows it.
	Initializer     string `yaml:"initializer,omitempty" json:"initializer,omitempty"`
	InitializerType string `yaml:"initializerType,omitempty" json:"initializerType,omitempty"`

	// ConstantValue is the folded compile-time constant, when the producer
	// could compute one. nil means no constant is known.
	ConstantValue *string `yaml:"constantValue,omitempty" json:"constantValue,omitempty"`
}

type Method struct {
	Name           string          `yaml:"name" json:"name"`
	ReturnType     *TypeRef        `yaml:"returnType,omitempty" json:"returnType,omitempty"`
	TypeParameters []TypeParameter `yaml:"typeParameters,omitempty" json:"typeParameters,omitempty"`
	Parameters     []Parameter     `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Modifiers      Modifiers       `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Annotations    []Annotation    `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	IsVarargs      bool            `yaml:"varargs,omitempty" json:"varargs,omitempty"`

	// Throws preserves declaration order.
	Throws []TypeRef `yaml:"throws,omitempty" json:"throws,omitempty"`

	// DefaultValue is the source text of an annotation-interface element's
	// default, empty otherwise.
	DefaultValue string `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`

	// ErasedParameterTypes is the substituted/erased parameter type list as
	// computed by the producer. When absent, renderers derive a best-effort
	// erasure from the declared parameter types.
	ErasedParameterTypes []string `yaml:"erasedParameterTypes,omitempty" json:"erasedParameterTypes,omitempty"`
}

// IsConstructor reports whether the method is a constructor. Constructors
// carry no return type.
func (m *Method) IsConstructor() bool {
	return m.ReturnType == nil
}

type Parameter struct {
	Name        string       `yaml:"name" json:"name"`
	Type        TypeRef      `yaml:"type" json:"type"`
	Modifiers   Modifiers    `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	IsVararg    bool         `yaml:"vararg,omitempty" json:"vararg,omitempty"`
}

// TypeParameter is one generic parameter with its upper bounds.
// Name is required; a nameless type parameter is a contract violation by
// the producer.
type TypeParameter struct {
	Name   string    `yaml:"name" json:"name"`
	Bounds []TypeRef `yaml:"bounds,omitempty" json:"bounds,omitempty"`
}

// Annotation is one annotation use. Attributes keep the order they were
// declared with; that order is authorial and renderers preserve it.
type Annotation struct {
	Type       string      `yaml:"type" json:"type"`
	Attributes []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Attribute is a single (name, value) pair of an annotation. Name is empty
// for positional values.
type Attribute struct {
	Name  string       `yaml:"name,omitempty" json:"name,omitempty"`
	Value ElementValue `yaml:"value" json:"value"`
}

// ValueKind enumerates the closed set of annotation value variants.
type ValueKind int

const (
	ValueLiteral ValueKind = iota
	ValueAnnotation
	ValueArray
)

// ElementValue is an annotation attribute value: a literal source text, a
// nested annotation, or an array of values. Exactly one variant is set,
// selected by Kind.
type ElementValue struct {
	Kind       ValueKind      `json:"kind"`
	Literal    string         `json:"literal,omitempty"`
	Annotation *Annotation    `json:"annotation,omitempty"`
	Array      []ElementValue `json:"array,omitempty"`
}
