package report

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v as indented JSON to w, matching the format the
// cmd tools' --out flag writes.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
