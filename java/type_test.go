package java

import "testing"

func TestTypeRef(t *testing.T) {
	tests := []struct {
		typ       TypeRef
		str       string
		primitive bool
		array     bool
		isError   bool
	}{
		{TypeRef{Name: "int"}, "int", true, false, false},
		{TypeRef{Name: "boolean"}, "boolean", true, false, false},
		{TypeRef{Name: "java.lang.String"}, "java.lang.String", false, false, false},
		{TypeRef{Name: "int", ArrayDepth: 1}, "int[]", false, true, false},
		{TypeRef{Name: "java.lang.Object", ArrayDepth: 2}, "java.lang.Object[][]", false, true, false},
		{TypeRef{}, "error.NonExistentClass", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.typ.IsPrimitive(); got != tt.primitive {
				t.Errorf("IsPrimitive() = %v, want %v", got, tt.primitive)
			}
			if got := tt.typ.IsArray(); got != tt.array {
				t.Errorf("IsArray() = %v, want %v", got, tt.array)
			}
			if got := tt.typ.IsError(); got != tt.isError {
				t.Errorf("IsError() = %v, want %v", got, tt.isError)
			}
		})
	}
}

func TestErrorSentinelIsError(t *testing.T) {
	if !(TypeRef{Name: ErrorTypeName}).IsError() {
		t.Error("expected the sentinel name to report IsError()")
	}
}

func TestTypeRefErased(t *testing.T) {
	tests := []struct {
		in   TypeRef
		want string
	}{
		{TypeRef{Name: "java.util.List<T>"}, "java.util.List"},
		{TypeRef{Name: "java.util.Map<K, V>", ArrayDepth: 1}, "java.util.Map[]"},
		{TypeRef{Name: "int"}, "int"},
	}
	for _, tt := range tests {
		if got := tt.in.Erased().String(); got != tt.want {
			t.Errorf("Erased(%q) = %q, want %q", tt.in.String(), got, tt.want)
		}
	}
}

func TestTypeRefAsArray(t *testing.T) {
	got := TypeRef{Name: "java.lang.String"}.AsArray()
	if got.String() != "java.lang.String[]" {
		t.Errorf("AsArray() = %q, want %q", got.String(), "java.lang.String[]")
	}
}

func TestParseTypeRef(t *testing.T) {
	got := ParseTypeRef("java.util.List<T>[][]")
	if got.Name != "java.util.List<T>" || got.ArrayDepth != 2 {
		t.Errorf("ParseTypeRef() = %+v", got)
	}
}

func TestModifierKeywordOrder(t *testing.T) {
	m := Modifiers{
		Visibility: VisibilityPublic,
		IsStatic:   true,
		IsFinal:    true,
		IsAbstract: true,
	}
	want := []string{"public", "abstract", "static", "final"}
	got := m.Keywords()
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keywords() = %v, want %v", got, want)
		}
	}
}

func TestPackageVisibilityEmitsNoKeyword(t *testing.T) {
	m := Modifiers{Visibility: VisibilityPackage, IsStatic: true}
	got := m.Keywords()
	if len(got) != 1 || got[0] != "static" {
		t.Errorf("Keywords() = %v, want [static]", got)
	}
}
