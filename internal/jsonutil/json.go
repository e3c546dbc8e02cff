// Package jsonutil holds the JSON encoder settings shared by every writer.
// Sequence headers are free text, so HTML escaping is off: "<" in an ID
// stays "<" rather than "\u003c".
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns a compact, one-value-per-line encoder.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
