// Package emit writes record sequences as JSON arrays.
package emit

import (
	"io"

	"github.com/goccy/go-json"
)

// Compact writes v as a single line of compact JSON followed by a newline.
func Compact(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

// Pretty writes v as indented multi-line JSON followed by a newline.
func Pretty(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
