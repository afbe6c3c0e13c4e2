package format

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/jcanon/java"
	"github.com/dhamidi/jcanon/testutil"
)

func widgetTree(reversed bool) *java.Declaration {
	fields := []java.Field{
		{Name: "count", Type: java.TypeRef{Name: "int"}, Modifiers: java.Modifiers{Visibility: java.VisibilityPrivate}},
		{Name: "label", Type: java.TypeRef{Name: "java.lang.String"}, Modifiers: java.Modifiers{Visibility: java.VisibilityPrivate}},
	}
	voidType := java.TypeRef{Name: "void"}
	methods := []java.Method{
		{Name: "getCount", ReturnType: &java.TypeRef{Name: "int"}, Modifiers: java.Modifiers{Visibility: java.VisibilityPublic}},
		{Name: "reset", ReturnType: &voidType, Modifiers: java.Modifiers{Visibility: java.VisibilityPublic}},
	}
	inner := []*java.Declaration{
		{SimpleName: "Handle", Name: "com.example.Widget.Handle", Kind: java.DeclKindClass},
		{SimpleName: "Hook", Name: "com.example.Widget.Hook", Kind: java.DeclKindClass},
	}
	if reversed {
		fields[0], fields[1] = fields[1], fields[0]
		methods[0], methods[1] = methods[1], methods[0]
		inner[0], inner[1] = inner[1], inner[0]
	}
	return &java.Declaration{
		SimpleName:   "Widget",
		Name:         "com.example.Widget",
		Kind:         java.DeclKindClass,
		Modifiers:    java.Modifiers{Visibility: java.VisibilityPublic},
		Fields:       fields,
		Methods:      methods,
		InnerClasses: inner,
	}
}

func TestOrderIndependence(t *testing.T) {
	a, err := RenderCanonical(widgetTree(false))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderCanonical(widgetTree(true))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("sibling order leaked into output:\n%s", diff)
	}
}

func TestIdempotence(t *testing.T) {
	tree := widgetTree(false)
	a, err := RenderCanonical(tree)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderCanonical(tree)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("rendering the same tree twice produced different text")
	}
}

func TestGroupOrderIsFieldsMethodsInnerClasses(t *testing.T) {
	got, err := RenderCanonical(widgetTree(false))
	if err != nil {
		t.Fatal(err)
	}
	want := `public class Widget /* com.example.Widget */ {
  private int count
  private java.lang.String label
  public int getCount(); // getCount()
  public void reset(); // reset()
  class Handle /* com.example.Widget.Handle */ {
  }
  class Hook /* com.example.Widget.Hook */ {
  }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected rendering (-want +got):\n%s", diff)
	}
}

func TestSortedSupertypes(t *testing.T) {
	tree := &java.Declaration{
		SimpleName: "Impl",
		Name:       "p.Impl",
		Kind:       java.DeclKindClass,
		Interfaces: []java.TypeRef{{Name: "Z"}, {Name: "A"}, {Name: "M"}},
	}
	got, err := RenderCanonical(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "class Impl /* p.Impl */ implements A, M, Z {\n}\n"
	if got != want {
		t.Errorf("RenderCanonical() = %q, want %q", got, want)
	}
}

func TestEnumConstants(t *testing.T) {
	voidType := java.TypeRef{Name: "void"}
	tree := &java.Declaration{
		SimpleName: "Mode",
		Name:       "com.example.Mode",
		Kind:       java.DeclKindEnum,
		Modifiers:  java.Modifiers{Visibility: java.VisibilityPublic},
		EnumConstants: []java.EnumConstant{
			{Name: "B"},
			{Name: "A", Methods: []java.Method{
				{Name: "run", ReturnType: &voidType, Modifiers: java.Modifiers{Visibility: java.VisibilityPublic}},
			}},
		},
	}
	got, err := RenderCanonical(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := `public enum Mode /* com.example.Mode */ {
  A {
    public void run(); // run()
  },
  B;
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected enum rendering (-want +got):\n%s", diff)
	}
}

func TestInnerClassPlaceholder(t *testing.T) {
	tree := &java.Declaration{
		SimpleName: "Outer",
		Name:       "p.Outer",
		Kind:       java.DeclKindClass,
		InnerClasses: []*java.Declaration{{
			SimpleName: "Inner",
			Name:       "p.Outer.Inner",
			Kind:       java.DeclKindClass,
			Fields: []java.Field{
				{Name: "x", Type: java.TypeRef{Name: "int"}},
				{Name: "y", Type: java.TypeRef{Name: "int"}},
			},
		}},
	}

	var buf bytes.Buffer
	enc := NewCanonicalEncoder(&buf)
	enc.RenderInner(false)
	if err := enc.Encode(tree); err != nil {
		t.Fatal(err)
	}
	want := "class Outer /* p.Outer */ {\n  class Inner ...\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestAnnotationTypeKeyword(t *testing.T) {
	tree := &java.Declaration{
		SimpleName: "Marker",
		Name:       "p.Marker",
		Kind:       java.DeclKindAnnotation,
		Methods: []java.Method{
			{Name: "value", ReturnType: &java.TypeRef{Name: "java.lang.String"}, DefaultValue: `""`},
		},
	}
	got, err := RenderCanonical(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "@interface Marker /* p.Marker */ {\n  java.lang.String value() default \"\"; // value()\n}\n"
	if got != want {
		t.Errorf("RenderCanonical() = %q, want %q", got, want)
	}
}

func TestMissingDeclarationNameFailsEncode(t *testing.T) {
	var buf bytes.Buffer
	err := NewCanonicalEncoder(&buf).Encode(&java.Declaration{Name: "p.X", Kind: java.DeclKindClass})
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no partial output expected, got %q", buf.String())
	}
}

func TestCanonicalGolden(t *testing.T) {
	f, err := os.Open("testdata/widget.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decl, err := java.DecodeDeclaration(f)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewCanonicalEncoder(&buf).Encode(decl); err != nil {
		t.Fatal(err)
	}
	testutil.Golden(t, "testdata/widget.golden", buf.Bytes())
}
