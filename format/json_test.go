package format

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONEncoderRoundTrip(t *testing.T) {
	tree := widgetTree(false)

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(tree); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["simpleName"] != "Widget" {
		t.Errorf("simpleName = %v, want Widget", decoded["simpleName"])
	}
	if decoded["name"] != "com.example.Widget" {
		t.Errorf("name = %v, want com.example.Widget", decoded["name"])
	}
	if _, ok := decoded["fields"]; !ok {
		t.Error("expected a fields key in JSON output")
	}
}
