package render

import (
	"bytes"
	"encoding/json"
)

// IndentJSON encodes v with two-space indentation and no trailing newline.
// Characters such as &, < and > are kept as typed; callers that embed the
// result in HTML rely on the template's escaping.
func IndentJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
