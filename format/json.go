package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jcanon/java"
)

// JSONEncoder writes the declaration tree itself, not its canonical text.
// It exists for debugging fixtures: the output mirrors the YAML input
// shape.
type JSONEncoder struct {
	w    io.Writer
	decl *java.Declaration
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(decl *java.Declaration) error {
	e.decl = decl
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.decl, "", "  ")
}
