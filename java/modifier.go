package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

// Modifiers is the modifier set of a declaration or member.
type Modifiers struct {
	Visibility     Visibility `json:"visibility,omitempty"`
	IsAbstract     bool       `json:"abstract,omitempty"`
	IsDefault      bool       `json:"default,omitempty"`
	IsStatic       bool       `json:"static,omitempty"`
	IsFinal        bool       `json:"final,omitempty"`
	IsTransient    bool       `json:"transient,omitempty"`
	IsVolatile     bool       `json:"volatile,omitempty"`
	IsSynchronized bool       `json:"synchronized,omitempty"`
	IsNative       bool       `json:"native,omitempty"`
	IsStrictfp     bool       `json:"strictfp,omitempty"`
}

func (m Modifiers) IsPrivate() bool {
	return m.Visibility == VisibilityPrivate
}

// Keywords returns the applicable modifier keywords in canonical source
// order. Package visibility contributes no keyword.
func (m Modifiers) Keywords() []string {
	var kws []string
	switch m.Visibility {
	case VisibilityPublic, VisibilityProtected, VisibilityPrivate:
		kws = append(kws, string(m.Visibility))
	}
	if m.IsAbstract {
		kws = append(kws, "abstract")
	}
	if m.IsDefault {
		kws = append(kws, "default")
	}
	if m.IsStatic {
		kws = append(kws, "static")
	}
	if m.IsFinal {
		kws = append(kws, "final")
	}
	if m.IsTransient {
		kws = append(kws, "transient")
	}
	if m.IsVolatile {
		kws = append(kws, "volatile")
	}
	if m.IsSynchronized {
		kws = append(kws, "synchronized")
	}
	if m.IsNative {
		kws = append(kws, "native")
	}
	if m.IsStrictfp {
		kws = append(kws, "strictfp")
	}
	return kws
}
