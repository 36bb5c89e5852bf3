package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"garmindev/internal/uistate"
)

// JSON renders the document as an indented JSON record. Elements keep
// document order; the z-index sort is an XML-path concern only.
func JSON(doc *uistate.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode ui state: %w", err)
	}
	return buf.Bytes(), nil
}
