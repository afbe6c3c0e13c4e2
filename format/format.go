package format

import (
	"encoding"

	"github.com/dhamidi/jcanon/java"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(decl *java.Declaration) error
}
